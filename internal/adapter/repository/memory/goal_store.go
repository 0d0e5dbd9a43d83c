// Package memory holds process-lifetime implementations of the domain stores.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/nestegg-backend/internal/domain"
)

// goalStore implements domain.GoalStore
type goalStore struct {
	mu    sync.RWMutex
	goals map[uuid.UUID]domain.Goal
}

// NewGoalStore creates an empty goal store
func NewGoalStore() domain.GoalStore {
	return &goalStore{goals: make(map[uuid.UUID]domain.Goal)}
}

// Create stores a copy of goal
func (s *goalStore) Create(ctx context.Context, goal *domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[goal.ID]; ok {
		return fmt.Errorf("goal %s: %w", goal.ID, domain.ErrAlreadyExists)
	}
	s.goals[goal.ID] = *goal
	return nil
}

// GetByID returns a copy of the stored goal
func (s *goalStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.goals[id]
	if !ok {
		return nil, fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}
	return &g, nil
}

// List returns copies of every goal, oldest first
func (s *goalStore) List(ctx context.Context) ([]*domain.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		g := g
		out = append(out, &g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateStatus sets the status of a goal
func (s *goalStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.GoalStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}
	g.Status = status
	s.goals[id] = g
	return nil
}

// AddContribution increments the saved amount of a goal
func (s *goalStore) AddContribution(ctx context.Context, id uuid.UUID, amount float64) (*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[id]
	if !ok {
		return nil, fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}
	g.CurrentAmount += amount
	s.goals[id] = g
	return &g, nil
}
