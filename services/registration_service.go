package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/repositories"
)

// submissionLinkBase is where a shared entry points; the token makes
// each share traceable.
const submissionLinkBase = "https://oc-pk.huashi.art/works"

// RegistrationService accepts contest intakes: a creator picks works,
// optionally attaches remarks, and receives one shareable submission
// link per work.
type RegistrationService interface {
	GetConfig() models.RegistrationConfig
	Register(workIDs []string, remarks map[string]models.RegistrationRemark) ([]models.SubmissionLink, error)
}

type registrationService struct {
	regRepo  repositories.RegistrationRepository
	workRepo repositories.WorkRepository
	stage    StageService
}

func NewRegistrationService(
	regRepo repositories.RegistrationRepository,
	workRepo repositories.WorkRepository,
	stage StageService,
) RegistrationService {
	return &registrationService{
		regRepo:  regRepo,
		workRepo: workRepo,
		stage:    stage,
	}
}

func (s *registrationService) GetConfig() models.RegistrationConfig {
	return s.regRepo.GetConfig()
}

func (s *registrationService) Register(workIDs []string, remarks map[string]models.RegistrationRemark) ([]models.SubmissionLink, error) {
	if s.stage != nil && s.stage.Snapshot().Stage != models.StageRegistration {
		return nil, ErrRegistrationClosed
	}
	if len(workIDs) == 0 {
		return nil, ErrNoWorksSelected
	}
	for _, id := range workIDs {
		if _, ok := s.workRepo.GetByID(id); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownWorkSelected, id)
		}
	}

	registration := models.Registration{
		ID:          uuid.NewString(),
		WorkIDs:     append([]string(nil), workIDs...),
		Remarks:     remarks,
		SubmittedAt: time.Now(),
	}
	s.regRepo.Save(registration)

	links := make([]models.SubmissionLink, 0, len(workIDs))
	for _, id := range workIDs {
		links = append(links, models.SubmissionLink{
			WorkID: id,
			URL:    fmt.Sprintf("%s/%s?share=%s", submissionLinkBase, id, registration.ID),
		})
	}
	return links, nil
}
