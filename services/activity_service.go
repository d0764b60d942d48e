package services

import (
	"context"

	"github.com/huashi-art/oc-pk-contest/brackets"
	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/repositories"
	"golang.org/x/sync/errgroup"
)

// ActivityState is the aggregate boot payload for a stage variant:
// everything the frontend needs to render the activity home in one
// round trip.
type ActivityState struct {
	Variant      models.StageVariant       `json:"variant"`
	Meta         models.ActivityMeta       `json:"meta"`
	Works        []models.Work             `json:"works"`
	Leaderboard  []models.LeaderboardEntry `json:"leaderboard"`
	MyEntries    []models.MyEntry          `json:"my_entries"`
	Registration models.RegistrationConfig `json:"registration"`
	Bracket      models.BracketView        `json:"bracket"`
}

type ActivityService interface {
	GetActivityState(ctx context.Context, variant models.StageVariant) (*ActivityState, error)
}

type activityService struct {
	matchRepo       repositories.MatchRepository
	workRepo        repositories.WorkRepository
	leaderboardRepo repositories.LeaderboardRepository
	entryRepo       repositories.EntryRepository
	regRepo         repositories.RegistrationRepository
}

func NewActivityService(
	matchRepo repositories.MatchRepository,
	workRepo repositories.WorkRepository,
	leaderboardRepo repositories.LeaderboardRepository,
	entryRepo repositories.EntryRepository,
	regRepo repositories.RegistrationRepository,
) ActivityService {
	return &activityService{
		matchRepo:       matchRepo,
		workRepo:        workRepo,
		leaderboardRepo: leaderboardRepo,
		entryRepo:       entryRepo,
		regRepo:         regRepo,
	}
}

// GetActivityState assembles the sections in parallel. Each section is
// independent, so a slow one never serializes the others.
func (s *activityService) GetActivityState(ctx context.Context, variant models.StageVariant) (*ActivityState, error) {
	state := &ActivityState{Variant: variant}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		state.Meta = s.matchRepo.GetActivityMeta(variant)
		state.Bracket = brackets.BuildView(variant, s.matchRepo.ListByVariant(variant))
		return nil
	})
	g.Go(func() error {
		state.Works = s.workRepo.List()
		return nil
	})
	g.Go(func() error {
		state.Leaderboard = s.leaderboardRepo.List()
		return nil
	})
	g.Go(func() error {
		state.MyEntries = s.entryRepo.ListMyEntries()
		return nil
	})
	g.Go(func() error {
		state.Registration = s.regRepo.GetConfig()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return state, nil
}
