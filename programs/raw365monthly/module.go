package raw365monthly

import (
	"context"
	"time"

	"github.com/gambizardonkick/aetricrewardsdata/pkg/contracts"
	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

// Module implements the ProgramModule interface for the Raw365 monthly race,
// which shares the Raw365 upstream API with the weekly race but runs on the
// 8th-to-7th payout cycle.
type Module struct {
	config  *Config
	adapter contracts.AffiliateAdapter
}

// NewModule creates a new Raw365 monthly program module backed by the given
// adapter.
func NewModule(adapter contracts.AffiliateAdapter) *Module {
	return &Module{
		config:  DefaultConfig(),
		adapter: adapter,
	}
}

// Ensure Module implements ProgramModule
var _ contracts.ProgramModule = (*Module)(nil)

// GetProgramKey returns the program identifier
func (m *Module) GetProgramKey() string {
	return m.config.ProgramKey
}

// GetDisplayName returns the human-readable name
func (m *Module) GetDisplayName() string {
	return m.config.DisplayName
}

// GetPeriodBounds returns the current and previous 8th-to-7th windows
func (m *Module) GetPeriodBounds(now time.Time) models.PeriodPair {
	return m.config.Period.Bounds(now)
}

// GetPrizeTable returns the fixed rewards for positions 1..10
func (m *Module) GetPrizeTable() []int {
	return m.config.PrizeTable
}

// DropsNonPositive returns whether zero/negative wagers are excluded
func (m *Module) DropsNonPositive() bool {
	return m.config.DropNonPositive
}

// FetchWagers retrieves raw wager records from the Raw365 leaderboard API
func (m *Module) FetchWagers(ctx context.Context, window models.TimeWindow) ([]models.WagerRecord, error) {
	return m.adapter.FetchWagers(ctx, window)
}
