package contracts

import (
	"context"
	"errors"

	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

// ErrMalformedPayload indicates an upstream response that was missing the
// expected wager list or carried values that could not be parsed. Callers
// should treat it as a hard failure, never as an empty leaderboard.
var ErrMalformedPayload = errors.New("malformed upstream payload")

// AffiliateAdapter fetches referred-user wager totals from an external
// affiliate program for a given reporting window.
type AffiliateAdapter interface {
	FetchWagers(ctx context.Context, window models.TimeWindow) ([]models.WagerRecord, error)
}
