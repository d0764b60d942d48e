package repositories

import (
	"github.com/huashi-art/oc-pk-contest/models"
)

// WorkRepository resolves contestant works by ID. Lookups never fail
// loudly: an absent ID reports ok=false and the caller substitutes
// placeholder text.
type WorkRepository interface {
	GetByID(id string) (models.Work, bool)
	List() []models.Work
}

type inMemoryWorkRepository struct {
	order []string
	works map[string]models.Work
}

func NewInMemoryWorkRepository(works []models.Work) WorkRepository {
	r := &inMemoryWorkRepository{
		order: make([]string, 0, len(works)),
		works: make(map[string]models.Work, len(works)),
	}
	for _, work := range works {
		if _, exists := r.works[work.ID]; exists {
			continue
		}
		r.order = append(r.order, work.ID)
		r.works[work.ID] = work
	}
	return r
}

func (r *inMemoryWorkRepository) GetByID(id string) (models.Work, bool) {
	work, ok := r.works[id]
	return work, ok
}

func (r *inMemoryWorkRepository) List() []models.Work {
	out := make([]models.Work, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.works[id])
	}
	return out
}
