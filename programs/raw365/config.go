package raw365

import (
	"time"

	"github.com/gambizardonkick/aetricrewardsdata/internal/period"
)

// Config contains the Raw365 weekly program's fixed leaderboard configuration.
type Config struct {
	// Program identification
	ProgramKey  string
	DisplayName string

	// Period scheme for ranking windows
	Period period.Spec

	// Fixed rewards for positions 1..10
	PrizeTable []int

	// Whether zero/negative wagers are excluded before ranking.
	// Raw365 reports individual rows and zero-wager users are dropped.
	DropNonPositive bool
}

// DefaultConfig returns the production Raw365 weekly configuration: 7-day
// windows anchored to the race launch instant.
func DefaultConfig() *Config {
	return &Config{
		ProgramKey:  "raw365",
		DisplayName: "Raw365 Weekly Race",
		Period: period.Spec{
			Mode:       period.AnchoredRolling,
			PeriodDays: 7,
			Anchor:     time.Date(2025, time.October, 21, 0, 0, 0, 0, time.UTC),
		},
		PrizeTable: []int{250, 120, 65, 30, 15, 10, 5, 5, 0, 0},

		DropNonPositive: true,
	}
}
