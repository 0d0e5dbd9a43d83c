package goalform

import (
	"sync"

	"github.com/simaogato/nestegg-backend/internal/domain"
)

// Snapshot is a read-only view of a draft after an operation
type Snapshot struct {
	Step    Step
	Fields  Fields
	Preview Preview
}

// Drafts keeps one wizard per user. All methods are safe for concurrent use.
type Drafts struct {
	mu       sync.Mutex
	machines map[string]*Machine
	opts     []Option
}

// NewDrafts creates an empty registry; opts are applied to every new machine
func NewDrafts(opts ...Option) *Drafts {
	return &Drafts{
		machines: make(map[string]*Machine),
		opts:     opts,
	}
}

// Start returns the user's draft, creating it if needed. A cancelled draft is
// reset so the user can begin again.
func (d *Drafts) Start(userID string) Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	m := d.machine(userID)
	if m.Step() == StepCancelled {
		m.Reset()
	}
	return snapshot(m)
}

// Update edits the user's draft
func (d *Drafts) Update(userID string, edit func(f *Fields)) (Snapshot, error) {
	return d.with(userID, func(m *Machine) error {
		return m.Update(edit)
	})
}

// Next advances the user's draft
func (d *Drafts) Next(userID string) (Snapshot, error) {
	return d.with(userID, func(m *Machine) error {
		_, err := m.Next()
		return err
	})
}

// Back moves the user's draft one step back
func (d *Drafts) Back(userID string) (Snapshot, error) {
	return d.with(userID, func(m *Machine) error {
		_, err := m.Back()
		return err
	})
}

// Cancel discards the user's draft
func (d *Drafts) Cancel(userID string) Snapshot {
	snap, _ := d.with(userID, func(m *Machine) error {
		m.Cancel()
		return nil
	})
	return snap
}

// Submit turns the user's reviewed draft into a goal. The draft is reset on success.
func (d *Drafts) Submit(userID string) (*domain.Goal, Snapshot, error) {
	var goal *domain.Goal
	snap, err := d.with(userID, func(m *Machine) error {
		var err error
		goal, err = m.Submit()
		return err
	})
	return goal, snap, err
}

// Restore reopens a draft at the review step with the given fields. It is
// used to give a submitted draft back to the user when the goal could not
// be stored.
func (d *Drafts) Restore(userID string, f Fields) {
	d.mu.Lock()
	defer d.mu.Unlock()

	m := d.machine(userID)
	m.step = StepReview
	m.fields = f
}

func (d *Drafts) with(userID string, fn func(m *Machine) error) (Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	m := d.machine(userID)
	err := fn(m)
	return snapshot(m), err
}

func (d *Drafts) machine(userID string) *Machine {
	m, ok := d.machines[userID]
	if !ok {
		m = NewMachine(d.opts...)
		d.machines[userID] = m
	}
	return m
}

func snapshot(m *Machine) Snapshot {
	return Snapshot{Step: m.Step(), Fields: m.Fields(), Preview: m.Preview()}
}

// FieldsFromGoal rebuilds the wizard fields a goal was created from
func FieldsFromGoal(g *domain.Goal) Fields {
	return Fields{
		Title:               g.Title,
		HomePrice:           g.HomePrice,
		DownPaymentPercent:  g.DownPaymentPercent,
		Location:            g.Location,
		TargetDate:          g.TargetDate,
		MonthlyContribution: g.MonthlyContribution,
		Description:         g.Description,
	}
}
