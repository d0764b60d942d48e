package brackets_test

import (
	"testing"

	"github.com/huashi-art/oc-pk-contest/brackets"
	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func match(pk, round string) models.Match {
	return models.Match{PkNumber: pk, Round: round, Status: models.MatchStatusOpen}
}

func roundLabels(view models.BracketView) []string {
	labels := make([]string, 0, len(view.Rounds))
	for _, round := range view.Rounds {
		labels = append(labels, round.Round)
	}
	return labels
}

func TestBuildView(t *testing.T) {
	t.Run("groups matches by round in bracket order", func(t *testing.T) {
		matches := []models.Match{
			match("GF01", "Grand Final"),
			match("QF01", "Quarterfinals"),
			match("SF01", "Semifinals"),
			match("QF02", "Quarterfinals"),
			match("SF02", "Semifinals"),
		}

		view := brackets.BuildView(models.VariantEvaluation8, matches)

		assert.Equal(t, models.VariantEvaluation8, view.Variant)
		assert.Equal(t, []string{"Quarterfinals", "Semifinals", "Grand Final"}, roundLabels(view))
	})

	t.Run("preserves match order within a round", func(t *testing.T) {
		matches := []models.Match{
			match("QF02", "Quarterfinals"),
			match("SF01", "Semifinals"),
			match("QF01", "Quarterfinals"),
		}

		view := brackets.BuildView(models.VariantEvaluation8, matches)

		require.Len(t, view.Rounds, 2)
		quarters := view.Rounds[0]
		require.Len(t, quarters.Matches, 2)
		assert.Equal(t, "QF02", quarters.Matches[0].PkNumber)
		assert.Equal(t, "QF01", quarters.Matches[1].PkNumber)
	})

	t.Run("unknown round labels come after the known ones", func(t *testing.T) {
		matches := []models.Match{
			match("EX01", "Showcase"),
			match("GF01", "Grand Final"),
			match("EX02", "Exhibition"),
		}

		view := brackets.BuildView(models.VariantAnnouncement, matches)

		assert.Equal(t, []string{"Grand Final", "Showcase", "Exhibition"}, roundLabels(view))
	})

	t.Run("empty input yields no rounds", func(t *testing.T) {
		view := brackets.BuildView(models.VariantRegistration, nil)

		assert.Empty(t, view.Rounds)
	})
}
