package inmem

import (
	"sync"

	scraper "github.com/aumanusorn/exchanges-dashboard"
)

type IncomeRepository struct {
	incomesMutex sync.RWMutex
	incomes      map[int64]*scraper.Income
}

func NewIncomeRepository() *IncomeRepository {
	return &IncomeRepository{
		incomes: make(map[int64]*scraper.Income),
	}
}

func (ir *IncomeRepository) SaveIncomes(incomes []*scraper.Income) error {
	ir.incomesMutex.Lock()
	defer ir.incomesMutex.Unlock()

	for _, income := range incomes {
		ir.incomes[income.TransactionID] = income
	}

	return nil
}

func (ir *IncomeRepository) NewestIncomeTime() (int64, bool, error) {
	ir.incomesMutex.RLock()
	defer ir.incomesMutex.RUnlock()

	if len(ir.incomes) == 0 {
		return 0, false, nil
	}

	var newestTime int64
	for _, income := range ir.incomes {
		if income.Time > newestTime {
			newestTime = income.Time
		}
	}

	return newestTime, true, nil
}

func (ir *IncomeRepository) Incomes() []*scraper.Income {
	ir.incomesMutex.RLock()
	defer ir.incomesMutex.RUnlock()

	incomes := make([]*scraper.Income, 0, len(ir.incomes))
	for _, income := range ir.incomes {
		incomes = append(incomes, income)
	}

	return incomes
}
