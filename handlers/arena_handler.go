package handlers

import (
	"net/http"

	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/services"
)

type ArenaHandler struct {
	arenaService services.ArenaService
	stageService services.StageService
}

func NewArenaHandler(arenaService services.ArenaService, stageService services.StageService) *ArenaHandler {
	return &ArenaHandler{arenaService: arenaService, stageService: stageService}
}

func (h *ArenaHandler) GetArena(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, h.arenaService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CastVote records one vote for the current match. Votes against a
// closed match or an empty set are dropped without an error; the caller
// simply gets back an unchanged snapshot.
func (h *ArenaHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Side models.VoteSide `json:"side"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	h.arenaService.CastVote(input.Side)

	if err := writeJSON(w, http.StatusOK, h.arenaService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ArenaHandler) SelectMatch(w http.ResponseWriter, r *http.Request) {
	var input struct {
		PkNumber string `json:"pk_number"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	h.arenaService.SelectMatch(input.PkNumber)

	if err := writeJSON(w, http.StatusOK, h.arenaService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Search navigates to a match by pk number (trimmed, case-insensitive).
// A miss answers 404 with a "pk number not found" indicator and leaves
// the current selection untouched.
func (h *ArenaHandler) Search(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Query string `json:"query"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, found := h.arenaService.SearchByPkNumber(input.Query)
	if !found {
		mapServiceErrorToHTTP(w, r, services.ErrPkNumberNotFound)
		return
	}

	// A successful search lands the user on the voting view.
	if h.stageService != nil {
		h.stageService.SetActiveView(models.ViewVote)
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{
		"match":    match,
		"snapshot": h.arenaService.Snapshot(),
	}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ArenaHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	h.arenaService.ShuffleToRandomOpenMatch()

	if err := writeJSON(w, http.StatusOK, h.arenaService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ArenaHandler) AdvanceToNextOpen(w http.ResponseWriter, r *http.Request) {
	h.arenaService.AdvanceToNextOpen()

	if err := writeJSON(w, http.StatusOK, h.arenaService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reset clears the whole session ledger (full application reset).
func (h *ArenaHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.arenaService.Reset()

	if err := writeJSON(w, http.StatusOK, h.arenaService.Snapshot(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
