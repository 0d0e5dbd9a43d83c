package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/nestegg-backend/internal/domain"
)

// portfolioStore implements domain.PortfolioStore
type portfolioStore struct {
	mu     sync.RWMutex
	series []domain.PortfolioPoint
	lots   []domain.Lot
}

// NewPortfolioStore creates an empty portfolio store
func NewPortfolioStore() domain.PortfolioStore {
	return &portfolioStore{}
}

// Series returns a copy of the monthly series
func (s *portfolioStore) Series(ctx context.Context) ([]domain.PortfolioPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.series), nil
}

// ReplaceSeries swaps the series. An invalid series leaves the old one in place.
func (s *portfolioStore) ReplaceSeries(ctx context.Context, series []domain.PortfolioPoint) error {
	if err := domain.ValidateSeries(series); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.series = slices.Clone(series)
	return nil
}

// Lots returns every lot, most recent first
func (s *portfolioStore) Lots(ctx context.Context) ([]domain.Lot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lots), nil
}

// AddLot records a lot, assigning an ID when it has none
func (s *portfolioStore) AddLot(ctx context.Context, lot domain.Lot) error {
	if err := lot.Validate(); err != nil {
		return err
	}
	if lot.ID == uuid.Nil {
		lot.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.lots {
		if l.ID == lot.ID {
			return fmt.Errorf("lot %s: %w", lot.ID, domain.ErrAlreadyExists)
		}
	}
	s.lots = append(s.lots, lot)
	sort.SliceStable(s.lots, func(i, j int) bool {
		return s.lots[i].Date.After(s.lots[j].Date)
	})
	return nil
}
