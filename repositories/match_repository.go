package repositories

import (
	"strings"
	"sync"
	"time"

	"github.com/huashi-art/oc-pk-contest/models"
)

// MatchRepository supplies, per stage variant, the ordered match-set and
// the aggregate activity metadata. Returned slices are stable snapshots:
// callers can hold them across later repository mutations.
type MatchRepository interface {
	ListByVariant(variant models.StageVariant) []models.Match
	GetByPkNumber(variant models.StageVariant, pkNumber string) (models.Match, bool)
	GetActivityMeta(variant models.StageVariant) models.ActivityMeta
	// CloseExpiredMatches flips open matches whose deadline has passed to
	// closed and reports the ones that changed, per variant. Driven by
	// the scheduler.
	CloseExpiredMatches(now time.Time) map[models.StageVariant][]models.Match
}

type inMemoryMatchRepository struct {
	mu      sync.RWMutex
	matches map[models.StageVariant][]models.Match
	metas   map[models.StageVariant]models.ActivityMeta
}

func NewInMemoryMatchRepository(
	matches map[models.StageVariant][]models.Match,
	metas map[models.StageVariant]models.ActivityMeta,
) MatchRepository {
	owned := make(map[models.StageVariant][]models.Match, len(matches))
	for variant, set := range matches {
		owned[variant] = append([]models.Match(nil), set...)
	}
	ownedMetas := make(map[models.StageVariant]models.ActivityMeta, len(metas))
	for variant, meta := range metas {
		ownedMetas[variant] = meta
	}
	return &inMemoryMatchRepository{matches: owned, metas: ownedMetas}
}

func (r *inMemoryMatchRepository) ListByVariant(variant models.StageVariant) []models.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.matches[variant]
	if !ok {
		return []models.Match{}
	}
	return append([]models.Match(nil), set...)
}

func (r *inMemoryMatchRepository) GetByPkNumber(variant models.StageVariant, pkNumber string) (models.Match, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, match := range r.matches[variant] {
		if strings.EqualFold(match.PkNumber, pkNumber) {
			return match, true
		}
	}
	return models.Match{}, false
}

func (r *inMemoryMatchRepository) GetActivityMeta(variant models.StageVariant) models.ActivityMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.metas[variant]
}

func (r *inMemoryMatchRepository) CloseExpiredMatches(now time.Time) map[models.StageVariant][]models.Match {
	r.mu.Lock()
	defer r.mu.Unlock()

	closed := make(map[models.StageVariant][]models.Match)
	for variant, set := range r.matches {
		for i := range set {
			if set[i].Status == models.MatchStatusOpen && set[i].Deadline.Before(now) {
				set[i].Status = models.MatchStatusClosed
				closed[variant] = append(closed[variant], set[i])
			}
		}
		r.matches[variant] = set
	}
	return closed
}
