package models

// BracketRound groups the matches of one elimination round for
// bracket rendering, ordered toward the final.
type BracketRound struct {
	Round   string  `json:"round"`
	Matches []Match `json:"matches"`
}

type BracketView struct {
	Variant StageVariant   `json:"variant"`
	Rounds  []BracketRound `json:"rounds"`
}
