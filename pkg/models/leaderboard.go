package models

import "time"

// WagerRecord is a single affiliate wager total as reported by an upstream
// program, before ranking or masking.
type WagerRecord struct {
	Identifier string
	Amount     float64
}

// TimeWindow is one reporting period. Whether End is exclusive or
// inclusive-to-the-second depends on the period scheme that produced it.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// PeriodPair holds the current reporting window and the one before it.
type PeriodPair struct {
	Current  TimeWindow
	Previous TimeWindow
}

// LeaderboardEntry is one ranked, display-ready row. Name is already masked.
type LeaderboardEntry struct {
	Name  string  `json:"name"`
	Wager float64 `json:"wager"`
}

// PrizeSlot ties a leaderboard position (1-indexed) to its fixed reward.
type PrizeSlot struct {
	Position int `json:"position"`
	Reward   int `json:"reward"`
}

// LeaderboardPayload is the response body for the leaderboard endpoints.
// StartTime and EndTime are ISO-8601 instants.
type LeaderboardPayload struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Prizes      []PrizeSlot        `json:"prizes"`
	StartTime   string             `json:"startTime"`
	EndTime     string             `json:"endTime"`
}

// CountdownPayload reports how much of the current window remains.
type CountdownPayload struct {
	PercentageLeft float64 `json:"percentageLeft"`
}
