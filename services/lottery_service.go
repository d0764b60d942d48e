package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/repositories"
)

// LotteryService runs the prize wheel: weighted-roulette selection over
// the reward catalog, a draws-remaining counter decremented only by
// successful draws, and a prepend-ordered draw history.
//
// DrawsRemaining is supplied externally (seeded from the repository),
// not derived from arena votes; the arena's vote-driven progress is a
// display metric only and never writes into this counter.
type LotteryService interface {
	State() models.LotteryState
	Draw() (models.DrawRecord, error)
}

type lotteryService struct {
	mu sync.Mutex

	rewards        []models.LotteryReward
	history        []models.DrawRecord
	unlocked       bool
	drawsRemaining int

	rng *rand.Rand
	now func() time.Time
}

func NewLotteryService(rewardRepo repositories.RewardRepository, rng *rand.Rand) LotteryService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	unlocked, drawsRemaining := rewardRepo.InitialState()
	return &lotteryService{
		rewards:        rewardRepo.ListRewards(),
		history:        rewardRepo.SeedHistory(),
		unlocked:       unlocked,
		drawsRemaining: drawsRemaining,
		rng:            rng,
		now:            time.Now,
	}
}

func (s *lotteryService) State() models.LotteryState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.LotteryState{
		Unlocked:       s.unlocked,
		DrawsRemaining: s.drawsRemaining,
		Rewards:        append([]models.LotteryReward(nil), s.rewards...),
		History:        append([]models.DrawRecord(nil), s.history...),
	}
}

// Draw samples one reward and spends one remaining draw.
func (s *lotteryService) Draw() (models.DrawRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return models.DrawRecord{}, ErrLotteryLocked
	}
	if s.drawsRemaining <= 0 {
		return models.DrawRecord{}, ErrNoDrawsRemaining
	}
	if len(s.rewards) == 0 {
		return models.DrawRecord{}, ErrNoRewards
	}

	reward := s.pickWeightedLocked()

	if s.drawsRemaining > 0 {
		s.drawsRemaining--
	}

	record := models.DrawRecord{
		ID:      uuid.NewString(),
		Reward:  reward.Name,
		DrawnAt: s.now(),
	}
	s.history = append([]models.DrawRecord{record}, s.history...)
	return record, nil
}

// pickWeightedLocked runs standard roulette selection: sample uniformly
// in [0, totalWeight) and take the first reward whose cumulative weight
// boundary exceeds the sample. The last reward absorbs floating-point
// edge cases at the upper bound.
func (s *lotteryService) pickWeightedLocked() models.LotteryReward {
	totalWeight := 0.0
	for _, reward := range s.rewards {
		totalWeight += reward.Probability
	}
	if totalWeight <= 0 {
		return s.rewards[len(s.rewards)-1]
	}

	sample := s.rng.Float64() * totalWeight
	cumulative := 0.0
	for _, reward := range s.rewards {
		cumulative += reward.Probability
		if sample < cumulative {
			return reward
		}
	}
	return s.rewards[len(s.rewards)-1]
}
