package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hrutik5321/rollpair/internal/rolls"
)

var ErrNotConnected = errors.New("database not connected")

// Connection parameters for the plan database.
type ConnConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Substance is a paper grade with its own trimming plan.
type Substance struct {
	ID   int64
	Name string
}

// Plan is the stored trimming plan of one substance, reduced to what the
// suggestion table needs.
type Plan struct {
	ID             uuid.UUID
	SubstanceID    int64
	WeightFinal    float64
	RemainingRolls []rolls.Roll
}

type Store interface {
	Connect(ctx context.Context, cfg ConnConfig) error
	Close() error

	ListSubstances(ctx context.Context) ([]Substance, error)
	// LoadPlan returns a zero Plan with no rolls when the substance has none.
	LoadPlan(ctx context.Context, substanceID int64) (Plan, error)
}
