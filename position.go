package scraper

type PositionSide string

const (
	PositionSideLong  PositionSide = "LONG"
	PositionSideShort PositionSide = "SHORT"

	// PositionSideBoth marks one-way mode entries which carry no
	// directional meaning; the syncer never stores them.
	PositionSideBoth PositionSide = "BOTH"
)

// Position is a snapshot entity like Balance: each sync replaces the whole
// set of stored positions.
type Position struct {
	Symbol           string
	EntryPrice       float64
	Size             float64
	Side             PositionSide
	UnrealizedProfit float64
}

type PositionRepository interface {
	ReplacePositions(positions []*Position) error
}
