package services_test

import (
	"math/rand"
	"testing"

	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/repositories"
	"github.com/huashi-art/oc-pk-contest/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArenaForTest(variant models.StageVariant) services.ArenaService {
	fixtures := repositories.DefaultFixtures()
	matchRepo := repositories.NewInMemoryMatchRepository(fixtures.MatchesByVariant, fixtures.MetaByVariant)
	workRepo := repositories.NewInMemoryWorkRepository(fixtures.Works)
	arena := services.NewArenaService(matchRepo, workRepo, nil, 10, rand.New(rand.NewSource(42)))
	arena.SetActiveVariant(variant)
	return arena
}

type fakeHandle struct {
	pk  string
	set bool
}

func (h *fakeHandle) ActivePk() (string, bool) { return h.pk, h.set }
func (h *fakeHandle) SetActivePk(pk string)    { h.pk = pk; h.set = true }

func TestArenaService_CastVote(t *testing.T) {
	t.Run("votes accumulate into displayed totals", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		arena.SelectMatch("QF01")

		arena.CastVote(models.VoteLeft)
		arena.CastVote(models.VoteLeft)

		snapshot := arena.Snapshot()
		require.NotNil(t, snapshot.Match)
		assert.Equal(t, "QF01", snapshot.Match.PkNumber)
		assert.Equal(t, 618, snapshot.Left.BaseVotes)
		assert.Equal(t, 620, snapshot.Left.DisplayedVotes)
		assert.Equal(t, 564, snapshot.Right.DisplayedVotes)
		assert.Equal(t, "Neo Aurora ahead by 56 votes", snapshot.LeadLabel)
		require.NotNil(t, snapshot.LastPick)
		assert.Equal(t, models.VoteLeft, *snapshot.LastPick)
	})

	t.Run("ledger entry tracks both sides and last pick", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		arena.SelectMatch("QF02")

		arena.CastVote(models.VoteLeft)
		arena.CastVote(models.VoteRight)
		arena.CastVote(models.VoteRight)

		entry, ok := arena.LedgerEntry("QF02")
		require.True(t, ok)
		assert.Equal(t, 1, entry.Left)
		assert.Equal(t, 2, entry.Right)
		assert.Equal(t, 3, entry.Total())
		require.NotNil(t, entry.LastPick)
		assert.Equal(t, models.VoteRight, *entry.LastPick)
	})

	t.Run("votes on a closed match are dropped", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		arena.SelectMatch("SF01")

		arena.CastVote(models.VoteLeft)

		_, ok := arena.LedgerEntry("SF01")
		assert.False(t, ok)
		snapshot := arena.Snapshot()
		assert.Equal(t, 652, snapshot.Left.DisplayedVotes)
	})

	t.Run("unknown side is ignored", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		arena.SelectMatch("QF01")

		arena.CastVote(models.VoteSide("middle"))

		_, ok := arena.LedgerEntry("QF01")
		assert.False(t, ok)
	})
}

func TestArenaService_Selection(t *testing.T) {
	t.Run("defaults to the first match of the set", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)

		snapshot := arena.Snapshot()
		require.NotNil(t, snapshot.Match)
		assert.Equal(t, "QF01", snapshot.Match.PkNumber)
	})

	t.Run("stale selection falls back to the first match", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		arena.SelectMatch("QF03")

		arena.SetActiveVariant(models.VariantEvaluation32)

		snapshot := arena.Snapshot()
		require.NotNil(t, snapshot.Match)
		assert.Equal(t, "R16-01", snapshot.Match.PkNumber)
	})

	t.Run("selecting an unknown pk number is a no-op", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		arena.SelectMatch("QF02")

		arena.SelectMatch("ZZ99")

		snapshot := arena.Snapshot()
		assert.Equal(t, "QF02", snapshot.Match.PkNumber)
	})

	t.Run("empty set yields an explicit empty state", func(t *testing.T) {
		arena := newArenaForTest(models.VariantRegistration)

		snapshot := arena.Snapshot()
		assert.True(t, snapshot.Empty)
		assert.Nil(t, snapshot.Match)
		assert.Equal(t, 0, snapshot.TotalCount)
	})

	t.Run("advance skips closed matches and wraps around", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		arena.SelectMatch("QF04")

		// SF01, SF02 and GF01 are closed, so the wrap lands on QF01.
		arena.AdvanceToNextOpen()

		snapshot := arena.Snapshot()
		assert.Equal(t, "QF01", snapshot.Match.PkNumber)
	})

	t.Run("shuffle moves to a different open match", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		arena.SelectMatch("QF01")

		arena.ShuffleToRandomOpenMatch()

		snapshot := arena.Snapshot()
		assert.NotEqual(t, "QF01", snapshot.Match.PkNumber)
		assert.Equal(t, models.MatchStatusOpen, snapshot.Match.Status)
	})
}

func TestArenaService_Search(t *testing.T) {
	t.Run("is trimmed and case-insensitive", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)

		match, found := arena.SearchByPkNumber("  qf02 ")

		require.True(t, found)
		assert.Equal(t, "QF02", match.PkNumber)
		assert.Equal(t, "QF02", arena.Snapshot().Match.PkNumber)
	})

	t.Run("a miss leaves the selection untouched", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		arena.SelectMatch("QF03")

		_, found := arena.SearchByPkNumber("QF99")

		assert.False(t, found)
		assert.Equal(t, "QF03", arena.Snapshot().Match.PkNumber)
	})

	t.Run("blank input never matches", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)

		_, found := arena.SearchByPkNumber("   ")

		assert.False(t, found)
	})
}

func TestArenaService_ExternalHandle(t *testing.T) {
	t.Run("handle is authoritative when set", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		handle := &fakeHandle{pk: "QF02", set: true}

		arena.SetExternalHandle(handle)

		assert.Equal(t, "QF02", arena.Snapshot().Match.PkNumber)
	})

	t.Run("selection writes flow through the handle", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		handle := &fakeHandle{pk: "QF02", set: true}
		arena.SetExternalHandle(handle)

		arena.SelectMatch("QF03")

		assert.Equal(t, "QF03", handle.pk)
		assert.Equal(t, "QF03", arena.Snapshot().Match.PkNumber)
	})

	t.Run("stale handle value is repaired to the first match", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		handle := &fakeHandle{pk: "GONE", set: true}

		arena.SetExternalHandle(handle)

		assert.Equal(t, "QF01", handle.pk)
		assert.Equal(t, "QF01", arena.Snapshot().Match.PkNumber)
	})
}

func TestArenaService_CompletionCount(t *testing.T) {
	arena := newArenaForTest(models.VariantEvaluation8)

	// SF01, SF02 and GF01 arrive closed.
	assert.Equal(t, 3, arena.CompletionCount())

	arena.SelectMatch("QF01")
	arena.CastVote(models.VoteLeft)
	assert.Equal(t, 4, arena.CompletionCount())

	// More votes on the same match do not count it twice.
	arena.CastVote(models.VoteRight)
	assert.Equal(t, 4, arena.CompletionCount())
}

func TestArenaService_LotteryProgress(t *testing.T) {
	arena := newArenaForTest(models.VariantEvaluation8)
	arena.SelectMatch("QF01")

	progress := arena.LotteryProgress()
	assert.Equal(t, 0, progress.TotalVotesCast)
	assert.Equal(t, 0, progress.DrawsEarned)
	assert.Equal(t, 0, progress.SegmentFilled)
	assert.Equal(t, 10, progress.VotesNeeded)

	for i := 0; i < 3; i++ {
		arena.CastVote(models.VoteLeft)
	}
	progress = arena.LotteryProgress()
	assert.Equal(t, 3, progress.TotalVotesCast)
	assert.Equal(t, 0, progress.DrawsEarned)
	assert.Equal(t, 3, progress.VotesTowardNext)
	assert.Equal(t, 7, progress.VotesNeeded)

	// The tenth vote fills the segment instead of snapping back to zero.
	for i := 0; i < 7; i++ {
		arena.CastVote(models.VoteRight)
	}
	progress = arena.LotteryProgress()
	assert.Equal(t, 10, progress.TotalVotesCast)
	assert.Equal(t, 1, progress.DrawsEarned)
	assert.Equal(t, 0, progress.VotesTowardNext)
	assert.Equal(t, 10, progress.SegmentFilled)
	assert.Equal(t, 0, progress.VotesNeeded)

	// Past the boundary the bar runs on the next segment.
	arena.CastVote(models.VoteLeft)
	progress = arena.LotteryProgress()
	assert.Equal(t, 11, progress.TotalVotesCast)
	assert.Equal(t, 1, progress.DrawsEarned)
	assert.Equal(t, 1, progress.SegmentFilled)
}

func TestArenaService_ProgressSurvivesVariantSwitch(t *testing.T) {
	arena := newArenaForTest(models.VariantEvaluation8)
	arena.SelectMatch("QF01")
	for i := 0; i < 4; i++ {
		arena.CastVote(models.VoteLeft)
	}

	arena.SetActiveVariant(models.VariantEvaluation32)

	assert.Equal(t, 4, arena.LotteryProgress().TotalVotesCast)
	entry, ok := arena.LedgerEntry("QF01")
	require.True(t, ok)
	assert.Equal(t, 4, entry.Left)
}

func TestArenaService_Snapshot(t *testing.T) {
	zeroVoteMatches := map[models.StageVariant][]models.Match{
		models.VariantEvaluation8: {
			{
				PkNumber: "X01", Round: "Quarterfinals",
				Left:   models.MatchContestant{WorkID: "work-a"},
				Right:  models.MatchContestant{WorkID: "work-b"},
				Status: models.MatchStatusOpen,
			},
		},
	}

	t.Run("zero combined votes shows a neutral split", func(t *testing.T) {
		matchRepo := repositories.NewInMemoryMatchRepository(zeroVoteMatches, nil)
		workRepo := repositories.NewInMemoryWorkRepository(nil)
		arena := services.NewArenaService(matchRepo, workRepo, nil, 10, nil)
		arena.SetActiveVariant(models.VariantEvaluation8)

		snapshot := arena.Snapshot()
		assert.True(t, snapshot.NoVotesYet)
		assert.Equal(t, 50, snapshot.Left.Percent)
		assert.Equal(t, 50, snapshot.Right.Percent)
		assert.Equal(t, "no votes yet", snapshot.LeadLabel)
	})

	t.Run("unresolved works fall back to placeholders", func(t *testing.T) {
		matchRepo := repositories.NewInMemoryMatchRepository(zeroVoteMatches, nil)
		workRepo := repositories.NewInMemoryWorkRepository(nil)
		arena := services.NewArenaService(matchRepo, workRepo, nil, 10, nil)
		arena.SetActiveVariant(models.VariantEvaluation8)

		snapshot := arena.Snapshot()
		assert.Equal(t, models.UnknownWorkTitle, snapshot.Left.Title)
		assert.Equal(t, models.UnknownWorkCreator, snapshot.Right.Creator)
	})

	t.Run("equal non-zero totals read as tied", func(t *testing.T) {
		matchRepo := repositories.NewInMemoryMatchRepository(zeroVoteMatches, nil)
		workRepo := repositories.NewInMemoryWorkRepository(nil)
		arena := services.NewArenaService(matchRepo, workRepo, nil, 10, nil)
		arena.SetActiveVariant(models.VariantEvaluation8)

		arena.CastVote(models.VoteLeft)
		arena.CastVote(models.VoteRight)

		snapshot := arena.Snapshot()
		assert.Equal(t, "tied", snapshot.LeadLabel)
		assert.Equal(t, 50, snapshot.Left.Percent)
	})

	t.Run("percentages round independently", func(t *testing.T) {
		matchRepo := repositories.NewInMemoryMatchRepository(zeroVoteMatches, nil)
		workRepo := repositories.NewInMemoryWorkRepository(nil)
		arena := services.NewArenaService(matchRepo, workRepo, nil, 10, nil)
		arena.SetActiveVariant(models.VariantEvaluation8)

		arena.CastVote(models.VoteLeft)
		arena.CastVote(models.VoteRight)
		arena.CastVote(models.VoteRight)

		snapshot := arena.Snapshot()
		assert.Equal(t, 33, snapshot.Left.Percent)
		assert.Equal(t, 67, snapshot.Right.Percent)
	})

	t.Run("fixture quarterfinal splits 52 to 48", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)
		arena.SelectMatch("QF01")

		snapshot := arena.Snapshot()
		assert.Equal(t, 52, snapshot.Left.Percent)
		assert.Equal(t, 48, snapshot.Right.Percent)
		assert.False(t, snapshot.NoVotesYet)
	})

	t.Run("carries activity meta and counts", func(t *testing.T) {
		arena := newArenaForTest(models.VariantEvaluation8)

		snapshot := arena.Snapshot()
		assert.Equal(t, "Quarterfinals", snapshot.Meta.CurrentRound)
		assert.Equal(t, 7, snapshot.TotalCount)
		assert.Equal(t, 3, snapshot.CompletedCount)
	})
}

func TestArenaService_Reset(t *testing.T) {
	arena := newArenaForTest(models.VariantEvaluation8)
	arena.SelectMatch("QF03")
	arena.CastVote(models.VoteLeft)
	arena.CastVote(models.VoteRight)

	arena.Reset()

	_, ok := arena.LedgerEntry("QF03")
	assert.False(t, ok)
	assert.Equal(t, 0, arena.LotteryProgress().TotalVotesCast)
	assert.Equal(t, "QF01", arena.Snapshot().Match.PkNumber)
}
