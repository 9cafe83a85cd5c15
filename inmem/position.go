package inmem

import (
	"sync"

	scraper "github.com/aumanusorn/exchanges-dashboard"
)

type PositionRepository struct {
	positionsMutex sync.RWMutex
	positions      []*scraper.Position
}

func NewPositionRepository() *PositionRepository {
	return &PositionRepository{}
}

func (pr *PositionRepository) ReplacePositions(
	positions []*scraper.Position,
) error {
	pr.positionsMutex.Lock()
	defer pr.positionsMutex.Unlock()

	snapshot := make([]*scraper.Position, len(positions))
	copy(snapshot, positions)

	pr.positions = snapshot

	return nil
}

func (pr *PositionRepository) Positions() []*scraper.Position {
	pr.positionsMutex.RLock()
	defer pr.positionsMutex.RUnlock()

	snapshot := make([]*scraper.Position, len(pr.positions))
	copy(snapshot, pr.positions)

	return snapshot
}
