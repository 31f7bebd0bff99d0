package contracts

import (
	"context"
	"time"

	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

// ProgramModule defines the interface for program-specific leaderboard logic.
// This enables the service to expose multiple affiliate programs dynamically.
type ProgramModule interface {
	// GetProgramKey returns the unique identifier for this program
	// (e.g., "rainbet"), used as the path segment in API routes.
	GetProgramKey() string

	// GetDisplayName returns the human-readable name (e.g., "Rainbet Monthly Race")
	GetDisplayName() string

	// GetPeriodBounds returns the current and previous reporting windows
	// for this program's period scheme, computed from now.
	GetPeriodBounds(now time.Time) models.PeriodPair

	// GetPrizeTable returns the fixed rewards for positions 1..10.
	GetPrizeTable() []int

	// DropsNonPositive returns whether zero/negative wagers are excluded.
	// This is a property of the upstream integration, not of the period scheme.
	DropsNonPositive() bool

	// FetchWagers retrieves raw wager records for a window from the
	// program's upstream affiliate API.
	FetchWagers(ctx context.Context, window models.TimeWindow) ([]models.WagerRecord, error)
}
