package models

import "time"

type MatchStatus string

const (
	MatchStatusOpen   MatchStatus = "open"
	MatchStatusClosed MatchStatus = "closed"
)

// MatchContestant is one side of a head-to-head match. Score and Votes
// are the immutable base counts supplied by the match repository;
// session votes live in the arena ledger on top of them.
type MatchContestant struct {
	WorkID string `json:"work_id"`
	Score  int    `json:"score"`
	Votes  int    `json:"votes"`
}

// Match is a single PK contest between two works. PkNumber is unique
// within a match-set.
type Match struct {
	PkNumber string          `json:"pk_number"`
	Round    string          `json:"round"`
	Deadline time.Time       `json:"deadline"`
	Left     MatchContestant `json:"left"`
	Right    MatchContestant `json:"right"`
	Status   MatchStatus     `json:"status"`
}

// ActivityMeta is the aggregate progress snapshot for a stage variant.
type ActivityMeta struct {
	CurrentRound       string `json:"current_round"`
	TotalGroups        int    `json:"total_groups"`
	CompletedGroups    int    `json:"completed_groups"`
	RemainingTimeLabel string `json:"remaining_time_label"`
}

type VoteSide string

const (
	VoteLeft  VoteSide = "left"
	VoteRight VoteSide = "right"
)

// LedgerEntry records the votes cast this session for one match,
// on top of the immutable base counts. Counts never decrement.
type LedgerEntry struct {
	Left     int       `json:"left"`
	Right    int       `json:"right"`
	LastPick *VoteSide `json:"last_pick,omitempty"`
}

func (e LedgerEntry) Total() int {
	return e.Left + e.Right
}
