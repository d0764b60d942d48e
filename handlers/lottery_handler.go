package handlers

import (
	"net/http"

	"github.com/huashi-art/oc-pk-contest/services"
)

type LotteryHandler struct {
	lotteryService services.LotteryService
	arenaService   services.ArenaService
}

func NewLotteryHandler(lotteryService services.LotteryService, arenaService services.ArenaService) *LotteryHandler {
	return &LotteryHandler{lotteryService: lotteryService, arenaService: arenaService}
}

// GetPanel returns the lottery state plus the vote-driven progress
// metric. The two live side by side: progress is display-only and
// never feeds the draws-remaining counter.
func (h *LotteryHandler) GetPanel(w http.ResponseWriter, r *http.Request) {
	payload := jsonResponse{
		"lottery": h.lotteryService.State(),
	}
	if h.arenaService != nil {
		payload["progress"] = h.arenaService.LotteryProgress()
	}

	if err := writeJSON(w, http.StatusOK, payload, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LotteryHandler) Draw(w http.ResponseWriter, r *http.Request) {
	record, err := h.lotteryService.Draw()
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{
		"record":  record,
		"lottery": h.lotteryService.State(),
	}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
