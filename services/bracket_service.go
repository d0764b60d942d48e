package services

import (
	"github.com/huashi-art/oc-pk-contest/brackets"
	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/repositories"
)

// BracketService renders a variant's match-set as an elimination
// bracket grouped by round.
type BracketService interface {
	GetBracket(variant models.StageVariant) models.BracketView
}

type bracketService struct {
	matchRepo repositories.MatchRepository
}

func NewBracketService(matchRepo repositories.MatchRepository) BracketService {
	return &bracketService{matchRepo: matchRepo}
}

func (s *bracketService) GetBracket(variant models.StageVariant) models.BracketView {
	matches := s.matchRepo.ListByVariant(variant)
	return brackets.BuildView(variant, matches)
}
