package repositories

import (
	"github.com/huashi-art/oc-pk-contest/models"
)

// RewardRepository supplies the weighted lottery catalog and the seeded
// draw history the panel starts with.
type RewardRepository interface {
	ListRewards() []models.LotteryReward
	SeedHistory() []models.DrawRecord
	InitialState() (unlocked bool, drawsRemaining int)
}

type inMemoryRewardRepository struct {
	rewards        []models.LotteryReward
	history        []models.DrawRecord
	unlocked       bool
	drawsRemaining int
}

func NewInMemoryRewardRepository(
	rewards []models.LotteryReward,
	history []models.DrawRecord,
	unlocked bool,
	drawsRemaining int,
) RewardRepository {
	return &inMemoryRewardRepository{
		rewards:        append([]models.LotteryReward(nil), rewards...),
		history:        append([]models.DrawRecord(nil), history...),
		unlocked:       unlocked,
		drawsRemaining: drawsRemaining,
	}
}

func (r *inMemoryRewardRepository) ListRewards() []models.LotteryReward {
	return append([]models.LotteryReward(nil), r.rewards...)
}

func (r *inMemoryRewardRepository) SeedHistory() []models.DrawRecord {
	return append([]models.DrawRecord(nil), r.history...)
}

func (r *inMemoryRewardRepository) InitialState() (bool, int) {
	return r.unlocked, r.drawsRemaining
}
