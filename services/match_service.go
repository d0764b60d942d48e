package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/huashi-art/oc-pk-contest/brackets"
	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/repositories"
)

// MatchService exposes the per-variant match-sets and runs the
// deadline sweep the scheduler triggers.
type MatchService interface {
	ListByVariant(variant models.StageVariant) []models.Match
	GetActivityMeta(variant models.StageVariant) models.ActivityMeta
	CloseExpiredMatches(ctx context.Context) int
}

type matchService struct {
	matchRepo repositories.MatchRepository
	arena     ArenaService
	hub       *brackets.Hub
	logger    *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	arena ArenaService,
	hub *brackets.Hub,
	logger *slog.Logger,
) MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &matchService{
		matchRepo: matchRepo,
		arena:     arena,
		hub:       hub,
		logger:    logger,
	}
}

func (s *matchService) ListByVariant(variant models.StageVariant) []models.Match {
	return s.matchRepo.ListByVariant(variant)
}

func (s *matchService) GetActivityMeta(variant models.StageVariant) models.ActivityMeta {
	return s.matchRepo.GetActivityMeta(variant)
}

// CloseExpiredMatches closes every open match past its deadline,
// refreshes the arena's cached set and notifies variant rooms. Returns
// the number of matches closed.
func (s *matchService) CloseExpiredMatches(ctx context.Context) int {
	closedByVariant := s.matchRepo.CloseExpiredMatches(time.Now())
	if len(closedByVariant) == 0 {
		return 0
	}

	if s.arena != nil {
		s.arena.Refresh()
	}

	total := 0
	for variant, closed := range closedByVariant {
		total += len(closed)
		for _, match := range closed {
			s.logger.Info("match closed at deadline",
				slog.String("variant", string(variant)),
				slog.String("pk_number", match.PkNumber),
			)
			if s.hub != nil {
				roomID := brackets.RoomForVariant(string(variant))
				s.hub.BroadcastToRoom(roomID, brackets.WebSocketMessage{
					Type:    brackets.MsgMatchClosed,
					Payload: match,
					RoomID:  roomID,
				})
			}
		}
	}
	return total
}
