package inmem

import (
	"sync"

	scraper "github.com/aumanusorn/exchanges-dashboard"
)

type TickRepository struct {
	ticksMutex sync.RWMutex
	ticks      map[string]*scraper.Tick
}

func NewTickRepository() *TickRepository {
	return &TickRepository{
		ticks: make(map[string]*scraper.Tick),
	}
}

func (tr *TickRepository) SaveTick(tick *scraper.Tick) error {
	tr.ticksMutex.Lock()
	defer tr.ticksMutex.Unlock()

	tr.ticks[tick.Symbol] = tick

	return nil
}

func (tr *TickRepository) Tick(symbol string) (*scraper.Tick, bool) {
	tr.ticksMutex.RLock()
	defer tr.ticksMutex.RUnlock()

	tick, exists := tr.ticks[symbol]

	return tick, exists
}
