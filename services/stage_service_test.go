package services_test

import (
	"testing"

	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVariant(t *testing.T) {
	tests := []struct {
		name   string
		signal string
		want   models.StageVariant
	}{
		{"empty signal falls back", "", models.VariantEvaluation8},
		{"index zero is registration", "0", models.VariantRegistration},
		{"index one is round of 32", "1", models.VariantEvaluation32},
		{"index two is quarterfinals", "2", models.VariantEvaluation8},
		{"index three is announcement", "3", models.VariantAnnouncement},
		{"out of range falls back", "4", models.VariantEvaluation8},
		{"negative falls back", "-1", models.VariantEvaluation8},
		{"non-integer falls back", "abc", models.VariantEvaluation8},
		{"float falls back", "1.5", models.VariantEvaluation8},
		{"surrounding whitespace is trimmed", " 1 ", models.VariantEvaluation32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ResolveVariant(tt.signal))
		})
	}
}

func TestViewLegality(t *testing.T) {
	t.Run("home belongs to the registration flow only", func(t *testing.T) {
		assert.True(t, services.ViewLegalForStage(models.ViewHome, models.StageRegistration))
		assert.False(t, services.ViewLegalForStage(models.ViewHome, models.StageEvaluation))
		assert.False(t, services.ViewLegalForStage(models.ViewHome, models.StageAnnouncement))
	})

	t.Run("voting is evaluation only", func(t *testing.T) {
		assert.True(t, services.ViewLegalForStage(models.ViewVote, models.StageEvaluation))
		assert.False(t, services.ViewLegalForStage(models.ViewVote, models.StageAnnouncement))
	})

	t.Run("leaderboard is announcement only", func(t *testing.T) {
		assert.True(t, services.ViewLegalForStage(models.ViewLeaderboard, models.StageAnnouncement))
		assert.False(t, services.ViewLegalForStage(models.ViewLeaderboard, models.StageEvaluation))
	})

	t.Run("entries and lottery span evaluation and announcement", func(t *testing.T) {
		for _, view := range []models.View{models.ViewMyEntries, models.ViewLottery} {
			assert.True(t, services.ViewLegalForStage(view, models.StageEvaluation))
			assert.True(t, services.ViewLegalForStage(view, models.StageAnnouncement))
			assert.False(t, services.ViewLegalForStage(view, models.StageRegistration))
		}
	})

	t.Run("every stage's default view is legal there", func(t *testing.T) {
		stages := []models.Stage{
			models.StageRegistration,
			models.StageEvaluation,
			models.StageAnnouncement,
		}
		for _, stage := range stages {
			view := services.DefaultViewForStage(stage)
			assert.True(t, services.ViewLegalForStage(view, stage), "stage %s default %s", stage, view)
		}
	})
}

func winnerProfile() models.UserProfile {
	return models.UserProfile{ID: "user-demo", Nickname: "Wind River", IsWinner: true}
}

func TestStageService_Boot(t *testing.T) {
	t.Run("signal 2 lands on the quarterfinal pk list", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "2")

		snapshot := stage.Snapshot()
		assert.Equal(t, models.VariantEvaluation8, snapshot.Variant)
		assert.Equal(t, models.StageEvaluation, snapshot.Stage)
		assert.Equal(t, models.ViewPkList, snapshot.ActiveView)
		assert.False(t, snapshot.ShippingVisible)
	})

	t.Run("garbage signal lands on the default variant", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "??")

		assert.Equal(t, models.VariantEvaluation8, stage.Snapshot().Variant)
	})

	t.Run("booting straight into announcement opens the shipping modal for a winner", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "3")

		snapshot := stage.Snapshot()
		assert.Equal(t, models.ViewLeaderboard, snapshot.ActiveView)
		assert.True(t, snapshot.ShippingVisible)
	})
}

func TestStageService_SetActiveView(t *testing.T) {
	stage := services.NewStageService(nil, nil, winnerProfile(), "2")

	stage.SetActiveView(models.ViewVote)
	assert.Equal(t, models.ViewVote, stage.Snapshot().ActiveView)

	// Illegal for the evaluation stage, silently ignored.
	stage.SetActiveView(models.ViewLeaderboard)
	assert.Equal(t, models.ViewVote, stage.Snapshot().ActiveView)
}

func TestStageService_VariantTransitions(t *testing.T) {
	t.Run("an illegal view is replaced by the stage default", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "2")
		stage.SetActiveView(models.ViewVote)

		stage.SetVariant(models.VariantAnnouncement)

		snapshot := stage.Snapshot()
		assert.Equal(t, models.ViewLeaderboard, snapshot.ActiveView)
	})

	t.Run("a still-legal view survives the transition", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "2")
		stage.SetActiveView(models.ViewLottery)

		stage.SetVariant(models.VariantAnnouncement)

		assert.Equal(t, models.ViewLottery, stage.Snapshot().ActiveView)
	})

	t.Run("sync from signal is idempotent", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "2")

		stage.SyncFromSignal("2")
		assert.Equal(t, models.VariantEvaluation8, stage.Snapshot().Variant)

		stage.SyncFromSignal("3")
		assert.Equal(t, models.VariantAnnouncement, stage.Snapshot().Variant)

		stage.SyncFromSignal("junk")
		assert.Equal(t, models.VariantEvaluation8, stage.Snapshot().Variant)
	})
}

func TestStageService_ShippingModal(t *testing.T) {
	t.Run("reopens on re-entry until info is recorded", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "3")
		require.True(t, stage.Snapshot().ShippingVisible)

		stage.CloseShippingModal()
		assert.False(t, stage.Snapshot().ShippingVisible)

		stage.SetVariant(models.VariantEvaluation8)
		stage.SetVariant(models.VariantAnnouncement)
		assert.True(t, stage.Snapshot().ShippingVisible)
	})

	t.Run("never reopens once info is recorded", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "3")

		err := stage.SubmitShipping(models.ShippingInfo{
			Name:    "Wind River",
			Phone:   "13800000000",
			Address: "1 Harbor Road",
		})
		require.NoError(t, err)
		assert.False(t, stage.Snapshot().ShippingVisible)
		require.NotNil(t, stage.Snapshot().ShippingInfo)

		stage.SetVariant(models.VariantEvaluation8)
		stage.SetVariant(models.VariantAnnouncement)
		assert.False(t, stage.Snapshot().ShippingVisible)
	})

	t.Run("incomplete info is rejected", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "3")

		err := stage.SubmitShipping(models.ShippingInfo{Name: "Wind River", Phone: "  "})
		assert.ErrorIs(t, err, services.ErrShippingIncomplete)
		assert.True(t, stage.Snapshot().ShippingVisible)
	})

	t.Run("never opens for a non-winner", func(t *testing.T) {
		profile := models.UserProfile{ID: "user-demo", Nickname: "Wind River"}
		stage := services.NewStageService(nil, nil, profile, "3")

		assert.False(t, stage.Snapshot().ShippingVisible)
	})

	t.Run("leaving announcement force-hides the modal", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "3")
		require.True(t, stage.Snapshot().ShippingVisible)

		stage.SetVariant(models.VariantEvaluation8)
		assert.False(t, stage.Snapshot().ShippingVisible)
	})
}

func TestStageService_RegistrationModal(t *testing.T) {
	t.Run("opens only during registration", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "0")

		stage.OpenRegistrationModal()
		assert.True(t, stage.Snapshot().RegistrationVisible)

		stage.CloseRegistrationModal()
		assert.False(t, stage.Snapshot().RegistrationVisible)
	})

	t.Run("is a no-op outside registration", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "2")

		stage.OpenRegistrationModal()
		assert.False(t, stage.Snapshot().RegistrationVisible)
	})

	t.Run("leaving registration force-hides it", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "0")
		stage.OpenRegistrationModal()

		stage.SetVariant(models.VariantEvaluation32)
		assert.False(t, stage.Snapshot().RegistrationVisible)
	})
}

func TestStageService_NavItems(t *testing.T) {
	t.Run("registration shows home only", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "0")

		assert.Equal(t, []models.View{models.ViewHome}, stage.Snapshot().NavItems)
	})

	t.Run("evaluation shows the voting surfaces", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "2")

		assert.Equal(t, []models.View{
			models.ViewVote,
			models.ViewMyEntries,
			models.ViewPkList,
			models.ViewLottery,
		}, stage.Snapshot().NavItems)
	})

	t.Run("announcement shows results and lottery", func(t *testing.T) {
		stage := services.NewStageService(nil, nil, winnerProfile(), "3")

		assert.Equal(t, []models.View{
			models.ViewMyEntries,
			models.ViewLeaderboard,
			models.ViewLottery,
		}, stage.Snapshot().NavItems)
	})
}

func TestStageService_NavigateToMatch(t *testing.T) {
	arena := newArenaForTest(models.VariantEvaluation8)
	stage := services.NewStageService(arena, nil, winnerProfile(), "2")

	stage.NavigateToMatch("QF03")

	assert.Equal(t, models.ViewVote, stage.Snapshot().ActiveView)
	assert.Equal(t, "QF03", arena.Snapshot().Match.PkNumber)
}
