package repositories

import (
	"sync"

	"github.com/huashi-art/oc-pk-contest/models"
)

// RegistrationRepository holds the static intake configuration and the
// registrations submitted this session.
type RegistrationRepository interface {
	GetConfig() models.RegistrationConfig
	Save(registration models.Registration)
	ListSubmitted() []models.Registration
}

type inMemoryRegistrationRepository struct {
	mu        sync.RWMutex
	config    models.RegistrationConfig
	submitted []models.Registration
}

func NewInMemoryRegistrationRepository(config models.RegistrationConfig) RegistrationRepository {
	return &inMemoryRegistrationRepository{config: config}
}

func (r *inMemoryRegistrationRepository) GetConfig() models.RegistrationConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg := r.config
	cfg.Rewards = append([]string(nil), r.config.Rewards...)
	cfg.Rules = append([]string(nil), r.config.Rules...)
	return cfg
}

func (r *inMemoryRegistrationRepository) Save(registration models.Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.submitted = append(r.submitted, registration)
	r.config.EnrollmentCount++
}

func (r *inMemoryRegistrationRepository) ListSubmitted() []models.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.Registration(nil), r.submitted...)
}
