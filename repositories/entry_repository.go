package repositories

import (
	"github.com/huashi-art/oc-pk-contest/models"
)

// EntryRepository lists the current user's contest entries.
type EntryRepository interface {
	ListMyEntries() []models.MyEntry
}

// LeaderboardRepository supplies the final ranking wall.
type LeaderboardRepository interface {
	List() []models.LeaderboardEntry
}

type inMemoryEntryRepository struct {
	entries []models.MyEntry
}

func NewInMemoryEntryRepository(entries []models.MyEntry) EntryRepository {
	return &inMemoryEntryRepository{entries: append([]models.MyEntry(nil), entries...)}
}

func (r *inMemoryEntryRepository) ListMyEntries() []models.MyEntry {
	return append([]models.MyEntry(nil), r.entries...)
}

type inMemoryLeaderboardRepository struct {
	entries []models.LeaderboardEntry
}

func NewInMemoryLeaderboardRepository(entries []models.LeaderboardEntry) LeaderboardRepository {
	return &inMemoryLeaderboardRepository{entries: append([]models.LeaderboardEntry(nil), entries...)}
}

func (r *inMemoryLeaderboardRepository) List() []models.LeaderboardEntry {
	return append([]models.LeaderboardEntry(nil), r.entries...)
}
