package brackets

import (
	"github.com/huashi-art/oc-pk-contest/models"
)

// RoundOrder is the fixed ordering of known round labels, earliest
// first. Rounds are not ordinally comparable across variants except by
// membership in this list.
var RoundOrder = []string{
	"Round of 64",
	"Round of 32",
	"Round of 16",
	"Quarterfinals",
	"Semifinals",
	"Grand Final",
}

func roundRank(round string) int {
	for i, r := range RoundOrder {
		if r == round {
			return i
		}
	}
	return len(RoundOrder)
}

// BuildView groups a variant's matches by round for elimination-bracket
// rendering. Known rounds come out in bracket order; unknown labels keep
// their first-seen order after the known ones. Match order within a
// round is preserved from the repository.
func BuildView(variant models.StageVariant, matches []models.Match) models.BracketView {
	byRound := make(map[string][]models.Match)
	var labels []string
	for _, match := range matches {
		if _, seen := byRound[match.Round]; !seen {
			labels = append(labels, match.Round)
		}
		byRound[match.Round] = append(byRound[match.Round], match)
	}

	// insertion sort by round rank, stable for unknown labels
	for i := 1; i < len(labels); i++ {
		for j := i; j > 0 && roundRank(labels[j]) < roundRank(labels[j-1]); j-- {
			labels[j], labels[j-1] = labels[j-1], labels[j]
		}
	}

	view := models.BracketView{Variant: variant, Rounds: make([]models.BracketRound, 0, len(labels))}
	for _, label := range labels {
		view.Rounds = append(view.Rounds, models.BracketRound{
			Round:   label,
			Matches: byRound[label],
		})
	}
	return view
}
