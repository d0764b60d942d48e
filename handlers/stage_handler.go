package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/services"
)

type StageHandler struct {
	stageService services.StageService
}

func NewStageHandler(stageService services.StageService) *StageHandler {
	return &StageHandler{stageService: stageService}
}

// GetState returns the orchestrator snapshot. When a "stage" query
// parameter is present, the stage is first re-resolved from it — this
// is the initial-load path of the frontend, which forwards its URL
// query string here.
func (h *StageHandler) GetState(w http.ResponseWriter, r *http.Request) {
	if signal := r.URL.Query(); signal.Has("stage") {
		h.stageService.SyncFromSignal(signal.Get("stage"))
	}

	if err := writeJSON(w, http.StatusOK, h.stageService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SyncStage is the navigation-change hook (browser back/forward): it
// re-resolves the stage from the signal and applies it only when it
// differs. Invalid signals fall back to the default stage; this
// endpoint never fails.
func (h *StageHandler) SyncStage(w http.ResponseWriter, r *http.Request) {
	h.stageService.SyncFromSignal(r.URL.Query().Get("stage"))

	if err := writeJSON(w, http.StatusOK, h.stageService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetActiveView switches the view. Views illegal for the current stage
// are silently ignored and the unchanged snapshot is returned.
func (h *StageHandler) SetActiveView(w http.ResponseWriter, r *http.Request) {
	view := models.View(chi.URLParam(r, "view"))
	h.stageService.SetActiveView(view)

	if err := writeJSON(w, http.StatusOK, h.stageService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StageHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	var input models.ShippingInfo
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.stageService.SubmitShipping(input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, h.stageService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StageHandler) CloseShippingModal(w http.ResponseWriter, r *http.Request) {
	h.stageService.CloseShippingModal()

	if err := writeJSON(w, http.StatusOK, h.stageService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StageHandler) OpenRegistrationModal(w http.ResponseWriter, r *http.Request) {
	h.stageService.OpenRegistrationModal()

	if err := writeJSON(w, http.StatusOK, h.stageService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StageHandler) CloseRegistrationModal(w http.ResponseWriter, r *http.Request) {
	h.stageService.CloseRegistrationModal()

	if err := writeJSON(w, http.StatusOK, h.stageService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
