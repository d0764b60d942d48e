package models

import "time"

// LotteryReward carries a relative probability weight. Weights do not
// have to sum to 100; selection is weighted-roulette over the total.
type LotteryReward struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	ImageURL    string  `json:"image_url"`
}

type DrawRecord struct {
	ID      string    `json:"id"`
	Reward  string    `json:"reward"`
	DrawnAt time.Time `json:"drawn_at"`
}

// LotteryState is the panel snapshot: the unlock flag and the
// externally supplied draws-remaining counter, decremented only by
// successful draws.
type LotteryState struct {
	Unlocked       bool            `json:"unlocked"`
	DrawsRemaining int             `json:"draws_remaining"`
	Rewards        []LotteryReward `json:"rewards"`
	History        []DrawRecord    `json:"history"`
}

// LotteryProgress is the vote-driven display metric: how far the
// session's accumulated votes are toward the next earned draw.
// VotesTowardNext stays in [0, VotesPerDraw); SegmentFilled is the
// displayed fill, which reports a full segment when a draw boundary is
// hit exactly so the bar never appears to regress.
type LotteryProgress struct {
	TotalVotesCast  int `json:"total_votes_cast"`
	DrawsEarned     int `json:"draws_earned"`
	VotesTowardNext int `json:"votes_toward_next"`
	VotesPerDraw    int `json:"votes_per_draw"`
	SegmentFilled   int `json:"segment_filled"`
	VotesNeeded     int `json:"votes_needed"`
}
