package scraper

// Income is a single entry of the exchange-reported income ledger: realized
// pnl, commissions, funding fees and the like. The ledger is append-only
// and immutable; once stored a record is never mutated or deleted.
// TransactionID is the uniqueness key.
type Income struct {
	Symbol        string
	Asset         string
	Type          string
	Income        float64
	Time          int64 // milliseconds
	TransactionID int64
}

type IncomeRepository interface {
	// SaveIncomes appends the records to the ledger. The operation is
	// idempotent on TransactionID: records already present are silently
	// absorbed, never duplicated.
	SaveIncomes(incomes []*Income) error

	// NewestIncomeTime returns the greatest time over all stored ledger
	// records. The second return value is false when the ledger is empty.
	NewestIncomeTime() (int64, bool, error)
}
