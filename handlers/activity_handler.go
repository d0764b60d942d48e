package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/repositories"
	"github.com/huashi-art/oc-pk-contest/services"
)

// ActivityHandler serves the aggregate boot payload and the simple
// reference-data lists (works, leaderboard, entries, bracket).
type ActivityHandler struct {
	activityService services.ActivityService
	bracketService  services.BracketService
	stageService    services.StageService
	workRepo        repositories.WorkRepository
	leaderboardRepo repositories.LeaderboardRepository
	entryRepo       repositories.EntryRepository
}

func NewActivityHandler(
	activityService services.ActivityService,
	bracketService services.BracketService,
	stageService services.StageService,
	workRepo repositories.WorkRepository,
	leaderboardRepo repositories.LeaderboardRepository,
	entryRepo repositories.EntryRepository,
) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		bracketService:  bracketService,
		stageService:    stageService,
		workRepo:        workRepo,
		leaderboardRepo: leaderboardRepo,
		entryRepo:       entryRepo,
	}
}

// activeVariant resolves the variant the request targets: an explicit
// "stage" signal wins, otherwise the orchestrator's current variant.
func (h *ActivityHandler) activeVariant(r *http.Request) models.StageVariant {
	if r.URL.Query().Has("stage") {
		return services.ResolveVariant(r.URL.Query().Get("stage"))
	}
	return h.stageService.Snapshot().Variant
}

func (h *ActivityHandler) GetActivityState(w http.ResponseWriter, r *http.Request) {
	state, err := h.activityService.GetActivityState(r.Context(), h.activeVariant(r))
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, state, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ActivityHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	bracket := h.bracketService.GetBracket(h.activeVariant(r))

	if err := writeJSON(w, http.StatusOK, bracket, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ActivityHandler) ListWorks(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"works": h.workRepo.List()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ActivityHandler) GetWork(w http.ResponseWriter, r *http.Request) {
	work, ok := h.workRepo.GetByID(chi.URLParam(r, "workID"))
	if !ok {
		notFoundResponse(w, r)
		return
	}

	if err := writeJSON(w, http.StatusOK, work, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ActivityHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": h.leaderboardRepo.List()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ActivityHandler) ListMyEntries(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"entries": h.entryRepo.ListMyEntries()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
