package strategy

import (
	"context"
	"errors"
	"time"
)

// ErrStrategyNotFound is returned when no strategy has the requested name.
var ErrStrategyNotFound = errors.New("strategy not found")

// Summary describes a stored strategy without loading its slots.
type Summary struct {
	ID            string
	Name          string
	NumberOfSlots int
	BeginTime     int
	SlotDuration  int
	UpdatedAt     time.Time
}

// Repository defines the storage interface for named strategies.
type Repository interface {
	// SaveStrategy stores s under name, replacing any previous version.
	SaveStrategy(ctx context.Context, name string, s *Strategy) error

	// LoadStrategy returns the strategy stored under name.
	// Returns ErrStrategyNotFound if there is none.
	LoadStrategy(ctx context.Context, name string) (*Strategy, error)

	// ListStrategies returns summaries ordered by name.
	ListStrategies(ctx context.Context) ([]Summary, error)

	// DeleteStrategy removes the strategy stored under name.
	DeleteStrategy(ctx context.Context, name string) error

	// Close releases any resources held by the repository.
	Close() error
}
