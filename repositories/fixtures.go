package repositories

import (
	"time"

	"github.com/huashi-art/oc-pk-contest/models"
)

// Fixtures is the immutable demo dataset the service boots from. It is
// constructed once in main and injected into the repositories; nothing
// else in the application reaches for package-level data.
type Fixtures struct {
	Works              []models.Work
	MatchesByVariant   map[models.StageVariant][]models.Match
	MetaByVariant      map[models.StageVariant]models.ActivityMeta
	Leaderboard        []models.LeaderboardEntry
	MyEntries          []models.MyEntry
	RegistrationConfig models.RegistrationConfig
	LotteryRewards     []models.LotteryReward
	LotteryHistory     []models.DrawRecord
	LotteryUnlocked    bool
	DrawsRemaining     int
	Profile            models.UserProfile
}

func strPtr(s string) *string { return &s }

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

const (
	RoundOf32      = "Round of 32"
	RoundQuarters  = "Quarterfinals"
	RoundSemis     = "Semifinals"
	RoundGrandFina = "Grand Final"
)

// DefaultFixtures returns the demo event: eight contestant works, the
// round-of-32 and quarterfinal-onward match-sets, the final
// leaderboard, the demo user's entries and the lottery catalog.
func DefaultFixtures() Fixtures {
	works := []models.Work{
		{
			ID:      "work-neo-aurora",
			Title:   "Neo Aurora",
			Creator: "Lighthouse",
			CoverImages: []string{
				"https://images.unsplash.com/photo-1530122037265-a5f1f91d3b99",
				"https://images.unsplash.com/photo-1545239351-1141bd82e8a6",
			},
			Tags:      []string{"sci-fi", "city hunter"},
			Synopsis:  "A courier wrapped in weavable neon light, riding the maglev skyways to deliver forgotten memories home.",
			Highlight: "Her trump card: light-blade gloves that read emotional spectra.",
			Stats:     models.WorkStats{Likes: 12431, Favorites: 6732, Comments: 836},
		},
		{
			ID:      "work-sandbard",
			Title:   "The Sand Bard",
			Creator: "Sleepless Hill",
			CoverImages: []string{
				"https://images.unsplash.com/photo-1618005198919-d3d4b5a92eee",
				"https://images.unsplash.com/photo-1618005198760-5731d05bb77a",
			},
			Tags:      []string{"fantasy", "minstrel"},
			Synopsis:  "A wandering bard with an ancient lute case, gathering songs buried in the storm sea's sands and folding space with sound.",
			Highlight: "The lute case's resonance can summon storm spirits.",
			Stats:     models.WorkStats{Likes: 8904, Favorites: 5012, Comments: 412},
		},
		{
			ID:      "work-clocktailor",
			Title:   "Clockwork Tailor",
			Creator: "Orange Lantern",
			CoverImages: []string{
				"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee",
			},
			Tags:      []string{"steampunk", "artisan"},
			Synopsis:  "An artisan who stitches time into cloth, mending broken pasts for drifters.",
			Highlight: "Every garment hides a mended memory.",
			Stats:     models.WorkStats{Likes: 11203, Favorites: 7045, Comments: 510},
		},
		{
			ID:      "work-mistrider",
			Title:   "Mist Cape Rider",
			Creator: "Seagull Radio",
			CoverImages: []string{
				"https://images.unsplash.com/photo-1526481280695-3c46973ed155",
				"https://images.unsplash.com/photo-1489515217757-5fd1be406fef",
				"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee",
			},
			Tags:      []string{"adventure", "ocean"},
			Synopsis:  "A girl on a mist-board weaving between reef bridges, collecting tidal spectra and guarding the island lanes.",
			Highlight: "Her tide-memory jars replay lost seascapes.",
			Stats:     models.WorkStats{Likes: 9532, Favorites: 6188, Comments: 377},
		},
		{
			ID:      "work-starseer",
			Title:   "Starline Dream Seer",
			Creator: "Polaris",
			CoverImages: []string{
				"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1446776811953-b23d57bd21aa?auto=format&fit=crop&w=1200&q=80",
			},
			Tags:      []string{"mythic", "astrology"},
			Synopsis:  "A dream seer who travels the star charts, catching echoes of the future for the lost.",
			Highlight: "Her starline compass syncs with the pulse of a whole star field.",
			Stats:     models.WorkStats{Likes: 8120, Favorites: 4521, Comments: 389},
		},
		{
			ID:      "work-inkguard",
			Title:   "Warden of the Ink Realm",
			Creator: "Brushstroke",
			CoverImages: []string{
				"https://images.unsplash.com/photo-1526498460520-4c246339dccb?auto=format&fit=crop&w=1200&q=80",
			},
			Tags:      []string{"wuxia", "guardian"},
			Synopsis:  "A gatekeeper who turns ink into blades to guard the book city's border, sealing legends into scrolls.",
			Highlight: "A falling ink blade can pause time to escort travelers through.",
			Stats:     models.WorkStats{Likes: 7688, Favorites: 4210, Comments: 345},
		},
		{
			ID:      "work-riftchef",
			Title:   "Rift Chef",
			Creator: "South Wind Deli",
			CoverImages: []string{
				"https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=1200&q=80",
				"https://images.unsplash.com/photo-1493770348161-369560ae357d?auto=format&fit=crop&w=1200&q=80",
			},
			Tags:      []string{"whimsy", "food"},
			Synopsis:  "A chef who cooks inside dimensional rifts, stitching lost flavors back together.",
			Highlight: "His cookware captures otherworldly aromas and turns them into real taste.",
			Stats:     models.WorkStats{Likes: 7021, Favorites: 3895, Comments: 298},
		},
		{
			ID:      "work-windcarver",
			Title:   "Windtrace Wing Carver",
			Creator: "Summer Ink",
			CoverImages: []string{
				"https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&w=1200&q=80",
			},
			Tags:      []string{"craft", "flight"},
			Synopsis:  "A carver who shapes wings for the floating city, engraving every flight with wind traces.",
			Highlight: "Carves resonant wings tailored to each flyer's grip on the air.",
			Stats:     models.WorkStats{Likes: 6810, Favorites: 3544, Comments: 276},
		},
	}

	matchesEvaluation32 := []models.Match{
		{
			PkNumber: "R16-01", Round: RoundOf32, Deadline: mustTime("2025-10-28T18:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-neo-aurora", Score: 89, Votes: 412},
			Right: models.MatchContestant{WorkID: "work-riftchef", Score: 84, Votes: 376},
			Status: models.MatchStatusClosed,
		},
		{
			PkNumber: "R16-02", Round: RoundOf32, Deadline: mustTime("2025-10-28T19:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-sandbard", Score: 85, Votes: 398},
			Right: models.MatchContestant{WorkID: "work-windcarver", Score: 80, Votes: 344},
			Status: models.MatchStatusClosed,
		},
		{
			PkNumber: "R16-03", Round: RoundOf32, Deadline: mustTime("2025-10-29T18:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-clocktailor", Score: 90, Votes: 436},
			Right: models.MatchContestant{WorkID: "work-inkguard", Score: 83, Votes: 362},
			Status: models.MatchStatusClosed,
		},
		{
			PkNumber: "R16-04", Round: RoundOf32, Deadline: mustTime("2025-10-29T19:30:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-mistrider", Score: 88, Votes: 421},
			Right: models.MatchContestant{WorkID: "work-starseer", Score: 87, Votes: 415},
			Status: models.MatchStatusClosed,
		},
		{
			PkNumber: "R16-05", Round: RoundOf32, Deadline: mustTime("2025-10-30T18:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-neo-aurora", Score: 91, Votes: 452},
			Right: models.MatchContestant{WorkID: "work-windcarver", Score: 82, Votes: 331},
			Status: models.MatchStatusOpen,
		},
		{
			PkNumber: "R16-06", Round: RoundOf32, Deadline: mustTime("2025-10-30T19:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-clocktailor", Score: 93, Votes: 468},
			Right: models.MatchContestant{WorkID: "work-riftchef", Score: 85, Votes: 352},
			Status: models.MatchStatusOpen,
		},
		{
			PkNumber: "R16-07", Round: RoundOf32, Deadline: mustTime("2025-10-31T18:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-starseer", Score: 89, Votes: 404},
			Right: models.MatchContestant{WorkID: "work-inkguard", Score: 86, Votes: 378},
			Status: models.MatchStatusOpen,
		},
		{
			PkNumber: "R16-08", Round: RoundOf32, Deadline: mustTime("2025-10-31T20:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-mistrider", Score: 90, Votes: 446},
			Right: models.MatchContestant{WorkID: "work-sandbard", Score: 84, Votes: 362},
			Status: models.MatchStatusOpen,
		},
	}

	matchesEvaluation8 := []models.Match{
		{
			PkNumber: "QF01", Round: RoundQuarters, Deadline: mustTime("2025-11-02T18:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-neo-aurora", Score: 92, Votes: 618},
			Right: models.MatchContestant{WorkID: "work-inkguard", Score: 86, Votes: 564},
			Status: models.MatchStatusOpen,
		},
		{
			PkNumber: "QF02", Round: RoundQuarters, Deadline: mustTime("2025-11-02T19:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-sandbard", Score: 88, Votes: 532},
			Right: models.MatchContestant{WorkID: "work-starseer", Score: 90, Votes: 548},
			Status: models.MatchStatusOpen,
		},
		{
			PkNumber: "QF03", Round: RoundQuarters, Deadline: mustTime("2025-11-03T18:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-clocktailor", Score: 94, Votes: 601},
			Right: models.MatchContestant{WorkID: "work-riftchef", Score: 87, Votes: 522},
			Status: models.MatchStatusOpen,
		},
		{
			PkNumber: "QF04", Round: RoundQuarters, Deadline: mustTime("2025-11-03T19:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-mistrider", Score: 90, Votes: 566},
			Right: models.MatchContestant{WorkID: "work-windcarver", Score: 84, Votes: 498},
			Status: models.MatchStatusOpen,
		},
		{
			PkNumber: "SF01", Round: RoundSemis, Deadline: mustTime("2025-11-05T20:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-neo-aurora", Score: 96, Votes: 652},
			Right: models.MatchContestant{WorkID: "work-starseer", Score: 93, Votes: 618},
			Status: models.MatchStatusClosed,
		},
		{
			PkNumber: "SF02", Round: RoundSemis, Deadline: mustTime("2025-11-05T21:00:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-clocktailor", Score: 95, Votes: 640},
			Right: models.MatchContestant{WorkID: "work-mistrider", Score: 91, Votes: 604},
			Status: models.MatchStatusClosed,
		},
		{
			PkNumber: "GF01", Round: RoundGrandFina, Deadline: mustTime("2025-11-07T20:30:00+08:00"),
			Left:  models.MatchContestant{WorkID: "work-neo-aurora", Score: 98, Votes: 712},
			Right: models.MatchContestant{WorkID: "work-clocktailor", Score: 97, Votes: 705},
			Status: models.MatchStatusClosed,
		},
	}

	matchesByVariant := map[models.StageVariant][]models.Match{
		models.VariantRegistration: {},
		models.VariantEvaluation32: matchesEvaluation32,
		models.VariantEvaluation8:  matchesEvaluation8,
		models.VariantAnnouncement: matchesEvaluation8,
	}

	metaByVariant := map[models.StageVariant]models.ActivityMeta{
		models.VariantRegistration: {
			CurrentRound:       "Registration open",
			TotalGroups:        0,
			CompletedGroups:    0,
			RemainingTimeLabel: "05 days 12:00:00 left",
		},
		models.VariantEvaluation32: {
			CurrentRound:       RoundOf32,
			TotalGroups:        16,
			CompletedGroups:    6,
			RemainingTimeLabel: "08:12:45 left",
		},
		models.VariantEvaluation8: {
			CurrentRound:       RoundQuarters,
			TotalGroups:        4,
			CompletedGroups:    2,
			RemainingTimeLabel: "01:12:32 left",
		},
		models.VariantAnnouncement: {
			CurrentRound:       RoundGrandFina,
			TotalGroups:        1,
			CompletedGroups:    1,
			RemainingTimeLabel: "finished",
		},
	}

	leaderboard := []models.LeaderboardEntry{
		{Rank: 1, WorkID: "work-neo-aurora", Award: strPtr("Champion")},
		{Rank: 2, WorkID: "work-clocktailor", Award: strPtr("Runner-up")},
		{Rank: 3, WorkID: "work-mistrider", Award: strPtr("Third place")},
		{Rank: 4, WorkID: "work-sandbard"},
		{Rank: 5, WorkID: "work-starseer"},
		{Rank: 6, WorkID: "work-inkguard"},
		{Rank: 7, WorkID: "work-riftchef"},
		{Rank: 8, WorkID: "work-windcarver"},
	}

	myEntries := []models.MyEntry{
		{
			ID: "entry-1", WorkID: "work-neo-aurora", Status: models.EntryStatusAdvanced,
			Opponent: strPtr("The Sand Bard"), PkNumber: "A102", CurrentRound: "Round of 64",
			ResultNote: strPtr("Advanced with a 22-vote lead"),
		},
		{
			ID: "entry-2", WorkID: "work-sandbard", Status: models.EntryStatusEliminated,
			Opponent: strPtr("Neo Aurora"), PkNumber: "A102", CurrentRound: "Round of 64",
			ResultNote: strPtr("Tiebreak lost on cumulative wins"),
		},
		{
			ID: "entry-3", WorkID: "work-clocktailor", Status: models.EntryStatusInProgress,
			Opponent: strPtr("Mist Cape Rider"), PkNumber: "A204", CurrentRound: "Round of 64",
		},
		{
			ID: "entry-4", WorkID: "work-mistrider", Status: models.EntryStatusBye,
			PkNumber: "B000", CurrentRound: RoundOf32,
			ResultNote: strPtr("Bye this round, advanced automatically"),
		},
	}

	registrationConfig := models.RegistrationConfig{
		EnrollmentCount: 326,
		Rewards: []string{
			"Champion: custom trophy + homepage feature + 5000 points",
			"Runner-up: platform feature + 3000 points",
			"Third place: platform feature + 2000 points",
			"Top 16: exclusive badge + 500 points",
		},
		Rules: []string{
			"Single elimination: registered works are paired at random, winners advance",
			"Entries may include multiple images and video, shown after automated review",
			"Votes reset to zero after each round; the next round starts fresh",
			"Every match has a PK number for direct navigation and friend boosting",
		},
	}

	lotteryRewards := []models.LotteryReward{
		{ID: "reward-badge", Name: "Limited physical badge", Probability: 35, ImageURL: "https://images.unsplash.com/photo-1618005198919-d3d4b5a92eee"},
		{ID: "reward-artbook", Name: "Printed art book", Probability: 28, ImageURL: "https://images.unsplash.com/photo-1521737604893-d14cc237f11d"},
		{ID: "reward-double-points", Name: "Double points card", Probability: 22, ImageURL: "https://images.unsplash.com/photo-1523475472560-d2df97ec485c"},
		{ID: "reward-mystery-box", Name: "Custom merch mystery box", Probability: 15, ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30"},
	}

	lotteryHistory := []models.DrawRecord{
		{ID: "lot-1", Reward: "Double points card", DrawnAt: mustTime("2025-10-18T21:32:00+08:00")},
		{ID: "lot-2", Reward: "Limited physical badge", DrawnAt: mustTime("2025-10-18T21:34:00+08:00")},
	}

	profile := models.UserProfile{
		ID:        "user-demo",
		Nickname:  "Wind River",
		IsWinner:  true,
		AvatarURL: "https://avatars.githubusercontent.com/u/583231?v=4",
	}

	return Fixtures{
		Works:              works,
		MatchesByVariant:   matchesByVariant,
		MetaByVariant:      metaByVariant,
		Leaderboard:        leaderboard,
		MyEntries:          myEntries,
		RegistrationConfig: registrationConfig,
		LotteryRewards:     lotteryRewards,
		LotteryHistory:     lotteryHistory,
		LotteryUnlocked:    true,
		DrawsRemaining:     2,
		Profile:            profile,
	}
}
