package rainbet

import (
	"github.com/gambizardonkick/aetricrewardsdata/internal/period"
)

// Config contains the Rainbet program's fixed leaderboard configuration.
type Config struct {
	// Program identification
	ProgramKey  string
	DisplayName string

	// Period scheme for ranking windows
	Period period.Spec

	// Fixed rewards for positions 1..10
	PrizeTable []int

	// Whether zero/negative wagers are excluded before ranking.
	// Rainbet reports aggregate totals and keeps them all.
	DropNonPositive bool
}

// DefaultConfig returns the production Rainbet configuration: calendar-month
// windows with the standard monthly prize table.
func DefaultConfig() *Config {
	return &Config{
		ProgramKey:  "rainbet",
		DisplayName: "Rainbet Monthly Race",
		Period:      period.Spec{Mode: period.CalendarMonth},
		PrizeTable:  []int{250, 120, 65, 30, 15, 10, 5, 5, 0, 0},

		DropNonPositive: false,
	}
}
