package models

type EntryStatus string

const (
	EntryStatusInProgress EntryStatus = "in_progress"
	EntryStatusAdvanced   EntryStatus = "advanced"
	EntryStatusEliminated EntryStatus = "eliminated"
	EntryStatusBye        EntryStatus = "bye"
)

// MyEntry is one of the current user's works as it moves through the
// bracket.
type MyEntry struct {
	ID           string      `json:"id"`
	WorkID       string      `json:"work_id"`
	Status       EntryStatus `json:"status"`
	Opponent     *string     `json:"opponent,omitempty"`
	PkNumber     string      `json:"pk_number"`
	CurrentRound string      `json:"current_round"`
	ResultNote   *string     `json:"result_note,omitempty"`
}

type LeaderboardEntry struct {
	Rank   int     `json:"rank"`
	WorkID string  `json:"work_id"`
	Award  *string `json:"award,omitempty"`
}
