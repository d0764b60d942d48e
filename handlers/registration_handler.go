package handlers

import (
	"net/http"

	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/services"
)

type RegistrationHandler struct {
	registrationService services.RegistrationService
}

func NewRegistrationHandler(registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

func (h *RegistrationHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, h.registrationService.GetConfig(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		WorkIDs []string                             `json:"work_ids"`
		Remarks map[string]models.RegistrationRemark `json:"remarks"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	links, err := h.registrationService.Register(input.WorkIDs, input.Remarks)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"submission_links": links}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
