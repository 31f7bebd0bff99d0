package raw365monthly

import (
	"github.com/gambizardonkick/aetricrewardsdata/internal/period"
)

// Config contains the Raw365 monthly program's fixed leaderboard
// configuration.
type Config struct {
	// Program identification
	ProgramKey  string
	DisplayName string

	// Period scheme for ranking windows
	Period period.Spec

	// Fixed rewards for positions 1..10
	PrizeTable []int

	// Whether zero/negative wagers are excluded before ranking. The filter
	// follows the Raw365 source system, not the period scheme.
	DropNonPositive bool
}

// DefaultConfig returns the production Raw365 monthly configuration: windows
// run from the 8th at 00:00:01 to the 7th of the next month at 23:59:59 UTC,
// matching the program's payout cycle.
func DefaultConfig() *Config {
	return &Config{
		ProgramKey:  "raw365monthly",
		DisplayName: "Raw365 Monthly Race",
		Period:      period.Spec{Mode: period.EighthToSeventh},
		PrizeTable:  []int{500, 240, 130, 60, 30, 20, 10, 10, 5, 5},

		DropNonPositive: true,
	}
}
