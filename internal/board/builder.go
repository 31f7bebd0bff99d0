package board

import (
	"sort"
	"time"

	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

// maxEntries caps how many ranked rows a leaderboard exposes.
const maxEntries = 10

// Build turns raw wager records into the display-ready leaderboard payload
// for a window: optional non-positive filter, stable descending sort, top 10,
// masked names, and the full prize table regardless of how many rows remain.
func Build(records []models.WagerRecord, prizes []int, window models.TimeWindow, dropNonPositive bool) models.LeaderboardPayload {
	ranked := make([]models.WagerRecord, 0, len(records))
	for _, rec := range records {
		if dropNonPositive && rec.Amount <= 0 {
			continue
		}
		ranked = append(ranked, rec)
	}

	// Stable sort keeps upstream order among equal amounts deterministic.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})

	if len(ranked) > maxEntries {
		ranked = ranked[:maxEntries]
	}

	entries := make([]models.LeaderboardEntry, 0, len(ranked))
	for _, rec := range ranked {
		entries = append(entries, models.LeaderboardEntry{
			Name:  MaskIdentifier(rec.Identifier),
			Wager: rec.Amount,
		})
	}

	slots := make([]models.PrizeSlot, 0, len(prizes))
	for i, reward := range prizes {
		slots = append(slots, models.PrizeSlot{Position: i + 1, Reward: reward})
	}

	return models.LeaderboardPayload{
		Leaderboard: entries,
		Prizes:      slots,
		StartTime:   window.Start.UTC().Format(time.RFC3339),
		EndTime:     window.End.UTC().Format(time.RFC3339),
	}
}
