package services

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/huashi-art/oc-pk-contest/brackets"
	"github.com/huashi-art/oc-pk-contest/models"
	"github.com/huashi-art/oc-pk-contest/repositories"
)

const DefaultVotesPerDraw = 10

// ExternalPkHandle lets an embedding surface own the current-match
// selection. When present it is authoritative: the arena reads the
// active pk number from it and funnels every selection write through
// it, keeping its internal copy as the fallback for an unset handle.
type ExternalPkHandle interface {
	ActivePk() (string, bool)
	SetActivePk(pkNumber string)
}

// ArenaCard is one side of the arena, ready for rendering. Work fields
// fall back to placeholders when the referenced work cannot be resolved.
type ArenaCard struct {
	WorkID         string `json:"work_id"`
	Title          string `json:"title"`
	Creator        string `json:"creator"`
	Highlight      string `json:"highlight"`
	Score          int    `json:"score"`
	BaseVotes      int    `json:"base_votes"`
	DisplayedVotes int    `json:"displayed_votes"`
	Percent        int    `json:"percent"`
}

// ArenaSnapshot is the full derived state of the voting arena for the
// active match-set.
type ArenaSnapshot struct {
	Variant        models.StageVariant    `json:"variant"`
	Empty          bool                   `json:"empty"`
	Match          *models.Match          `json:"match,omitempty"`
	Left           ArenaCard              `json:"left"`
	Right          ArenaCard              `json:"right"`
	LastPick       *models.VoteSide       `json:"last_pick,omitempty"`
	NoVotesYet     bool                   `json:"no_votes_yet"`
	LeadLabel      string                 `json:"lead_label"`
	CompletedCount int                    `json:"completed_count"`
	TotalCount     int                    `json:"total_count"`
	Meta           models.ActivityMeta    `json:"meta"`
	Lottery        models.LotteryProgress `json:"lottery"`
}

// ArenaService tracks the current match of the active match-set,
// accepts votes into the session ledger and computes the derived
// display metrics.
type ArenaService interface {
	SetActiveVariant(variant models.StageVariant)
	Refresh()
	SetExternalHandle(handle ExternalPkHandle)
	SelectMatch(pkNumber string)
	CastVote(side models.VoteSide)
	AdvanceToNextOpen()
	SearchByPkNumber(text string) (models.Match, bool)
	ShuffleToRandomOpenMatch()
	LedgerEntry(pkNumber string) (models.LedgerEntry, bool)
	CompletionCount() int
	LotteryProgress() models.LotteryProgress
	Snapshot() ArenaSnapshot
	Reset()
}

type arenaService struct {
	mu sync.Mutex

	matchRepo repositories.MatchRepository
	workRepo  repositories.WorkRepository
	hub       *brackets.Hub

	variant    models.StageVariant
	matches    []models.Match
	ledger     map[string]*models.LedgerEntry
	internalPk string
	external   ExternalPkHandle

	votesPerDraw int
	rng          *rand.Rand
}

func NewArenaService(
	matchRepo repositories.MatchRepository,
	workRepo repositories.WorkRepository,
	hub *brackets.Hub,
	votesPerDraw int,
	rng *rand.Rand,
) ArenaService {
	if votesPerDraw <= 0 {
		votesPerDraw = DefaultVotesPerDraw
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &arenaService{
		matchRepo:    matchRepo,
		workRepo:     workRepo,
		hub:          hub,
		ledger:       make(map[string]*models.LedgerEntry),
		votesPerDraw: votesPerDraw,
		rng:          rng,
	}
}

// SetActiveVariant swaps the active match-set. The ledger is left
// untouched: votes already cast keep counting toward lottery progress
// even when the selection they belonged to is no longer visible.
func (s *arenaService) SetActiveVariant(variant models.StageVariant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.variant = variant
	s.matches = s.matchRepo.ListByVariant(variant)
	s.revalidateSelectionLocked()
}

// Refresh re-reads the active match-set, picking up matches the
// scheduler has closed since the last read.
func (s *arenaService) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.variant == "" {
		return
	}
	s.matches = s.matchRepo.ListByVariant(s.variant)
	s.revalidateSelectionLocked()
}

func (s *arenaService) SetExternalHandle(handle ExternalPkHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.external = handle
	s.revalidateSelectionLocked()
}

func (s *arenaService) SelectMatch(pkNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findMatchLocked(pkNumber); !ok {
		return
	}
	s.setPkLocked(pkNumber)
}

// CastVote appends one vote for the current match on the chosen side.
// Votes on a closed match, or with nothing selected, are silently
// dropped. There is deliberately no per-session cap or dedup here.
func (s *arenaService) CastVote(side models.VoteSide) {
	s.mu.Lock()

	match, ok := s.currentMatchLocked()
	if !ok || match.Status == models.MatchStatusClosed {
		s.mu.Unlock()
		return
	}
	if side != models.VoteLeft && side != models.VoteRight {
		s.mu.Unlock()
		return
	}

	entry, ok := s.ledger[match.PkNumber]
	if !ok {
		entry = &models.LedgerEntry{}
		s.ledger[match.PkNumber] = entry
	}
	if side == models.VoteLeft {
		entry.Left++
	} else {
		entry.Right++
	}
	pick := side
	entry.LastPick = &pick

	snapshot := s.snapshotLocked()
	variant := s.variant
	s.mu.Unlock()

	s.broadcast(variant, brackets.MsgArenaUpdated, snapshot)
}

// AdvanceToNextOpen moves the selection to the next open match after the
// current one, wrapping around the set. No-op when nothing qualifies.
func (s *arenaService) AdvanceToNextOpen() {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, ok := s.currentMatchLocked()
	if !ok {
		return
	}
	start := s.indexOfLocked(match.PkNumber)
	n := len(s.matches)
	for offset := 1; offset < n; offset++ {
		candidate := s.matches[(start+offset)%n]
		if candidate.Status == models.MatchStatusOpen {
			s.setPkLocked(candidate.PkNumber)
			return
		}
	}
}

// SearchByPkNumber looks up a match by its pk number, trimmed and
// case-insensitive. On success the match becomes current; on failure
// the current selection is untouched and found is false.
func (s *arenaService) SearchByPkNumber(text string) (models.Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.Match{}, false
	}
	match, ok := s.findMatchLocked(trimmed)
	if !ok {
		return models.Match{}, false
	}
	s.setPkLocked(match.PkNumber)
	return match, true
}

// ShuffleToRandomOpenMatch selects uniformly among open matches other
// than the current one.
func (s *arenaService) ShuffleToRandomOpenMatch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.currentMatchLocked()
	var candidates []string
	for _, match := range s.matches {
		if match.Status != models.MatchStatusOpen {
			continue
		}
		if match.PkNumber == current.PkNumber {
			continue
		}
		candidates = append(candidates, match.PkNumber)
	}
	if len(candidates) == 0 {
		return
	}
	s.setPkLocked(candidates[s.rng.Intn(len(candidates))])
}

func (s *arenaService) LedgerEntry(pkNumber string) (models.LedgerEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.ledger[pkNumber]
	if !ok {
		return models.LedgerEntry{}, false
	}
	return *entry, true
}

// CompletionCount counts matches in the active set that are closed or
// have at least one session vote.
func (s *arenaService) CompletionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.completionCountLocked()
}

func (s *arenaService) LotteryProgress() models.LotteryProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lotteryProgressLocked()
}

func (s *arenaService) Snapshot() ArenaSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Reset clears the entire session ledger and returns the selection to
// the head of the active set.
func (s *arenaService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger = make(map[string]*models.LedgerEntry)
	s.internalPk = ""
	if s.external != nil {
		if _, ok := s.external.ActivePk(); ok {
			s.external.SetActivePk("")
		}
	}
	s.revalidateSelectionLocked()
}

// --- internals ---

func (s *arenaService) findMatchLocked(pkNumber string) (models.Match, bool) {
	for _, match := range s.matches {
		if strings.EqualFold(match.PkNumber, pkNumber) {
			return match, true
		}
	}
	return models.Match{}, false
}

func (s *arenaService) indexOfLocked(pkNumber string) int {
	for i, match := range s.matches {
		if match.PkNumber == pkNumber {
			return i
		}
	}
	return 0
}

// setPkLocked is the single write path for the current selection: it
// updates the external owner when present and always keeps the internal
// copy in sync, so the two representations cannot drift.
func (s *arenaService) setPkLocked(pkNumber string) {
	if s.external != nil {
		s.external.SetActivePk(pkNumber)
	}
	s.internalPk = pkNumber
}

func (s *arenaService) activePkLocked() string {
	if s.external != nil {
		if pk, ok := s.external.ActivePk(); ok {
			return pk
		}
	}
	return s.internalPk
}

// currentMatchLocked resolves the current match, falling back to the
// first match of the set when the selection is absent or stale. An
// empty set resolves to nothing.
func (s *arenaService) currentMatchLocked() (models.Match, bool) {
	if len(s.matches) == 0 {
		return models.Match{}, false
	}
	if pk := s.activePkLocked(); pk != "" {
		if match, ok := s.findMatchLocked(pk); ok {
			return match, true
		}
	}
	return s.matches[0], true
}

func (s *arenaService) revalidateSelectionLocked() {
	if len(s.matches) == 0 {
		return
	}
	pk := s.activePkLocked()
	if pk != "" {
		if _, ok := s.findMatchLocked(pk); ok {
			return
		}
	}
	s.setPkLocked(s.matches[0].PkNumber)
}

func (s *arenaService) completionCountLocked() int {
	count := 0
	for _, match := range s.matches {
		if match.Status == models.MatchStatusClosed {
			count++
			continue
		}
		if entry, ok := s.ledger[match.PkNumber]; ok && entry.Total() > 0 {
			count++
		}
	}
	return count
}

func (s *arenaService) lotteryProgressLocked() models.LotteryProgress {
	total := 0
	for _, entry := range s.ledger {
		total += entry.Total()
	}

	progress := models.LotteryProgress{
		TotalVotesCast:  total,
		DrawsEarned:     total / s.votesPerDraw,
		VotesTowardNext: total % s.votesPerDraw,
		VotesPerDraw:    s.votesPerDraw,
	}
	progress.SegmentFilled = progress.VotesTowardNext
	if progress.DrawsEarned > 0 && progress.VotesTowardNext == 0 {
		// A boundary was hit exactly: show the segment as complete
		// instead of dropping the bar back to zero.
		progress.SegmentFilled = s.votesPerDraw
	}
	progress.VotesNeeded = s.votesPerDraw - progress.SegmentFilled
	return progress
}

func (s *arenaService) cardLocked(contestant models.MatchContestant, ledgerVotes int) ArenaCard {
	card := ArenaCard{
		WorkID:         contestant.WorkID,
		Title:          models.UnknownWorkTitle,
		Creator:        models.UnknownWorkCreator,
		Score:          contestant.Score,
		BaseVotes:      contestant.Votes,
		DisplayedVotes: contestant.Votes + ledgerVotes,
	}
	if work, ok := s.workRepo.GetByID(contestant.WorkID); ok {
		card.Title = work.Title
		card.Creator = work.Creator
		card.Highlight = work.Highlight
	}
	return card
}

func (s *arenaService) snapshotLocked() ArenaSnapshot {
	snapshot := ArenaSnapshot{
		Variant:        s.variant,
		Meta:           s.matchRepo.GetActivityMeta(s.variant),
		CompletedCount: s.completionCountLocked(),
		TotalCount:     len(s.matches),
		Lottery:        s.lotteryProgressLocked(),
	}

	match, ok := s.currentMatchLocked()
	if !ok {
		snapshot.Empty = true
		return snapshot
	}
	snapshot.Match = &match

	var ledgerLeft, ledgerRight int
	if entry, present := s.ledger[match.PkNumber]; present {
		ledgerLeft = entry.Left
		ledgerRight = entry.Right
		snapshot.LastPick = entry.LastPick
	}
	snapshot.Left = s.cardLocked(match.Left, ledgerLeft)
	snapshot.Right = s.cardLocked(match.Right, ledgerRight)

	combined := snapshot.Left.DisplayedVotes + snapshot.Right.DisplayedVotes
	if combined == 0 {
		// Neutral split instead of a divide-by-zero or a misleading 0%.
		snapshot.NoVotesYet = true
		snapshot.Left.Percent = 50
		snapshot.Right.Percent = 50
		snapshot.LeadLabel = "no votes yet"
		return snapshot
	}

	// Sides are rounded independently and may not sum to exactly 100.
	snapshot.Left.Percent = int(math.Round(float64(snapshot.Left.DisplayedVotes) / float64(combined) * 100))
	snapshot.Right.Percent = int(math.Round(float64(snapshot.Right.DisplayedVotes) / float64(combined) * 100))

	switch {
	case snapshot.Left.DisplayedVotes == snapshot.Right.DisplayedVotes:
		snapshot.LeadLabel = "tied"
	case snapshot.Left.DisplayedVotes > snapshot.Right.DisplayedVotes:
		snapshot.LeadLabel = fmt.Sprintf("%s ahead by %d votes", snapshot.Left.Title, snapshot.Left.DisplayedVotes-snapshot.Right.DisplayedVotes)
	default:
		snapshot.LeadLabel = fmt.Sprintf("%s ahead by %d votes", snapshot.Right.Title, snapshot.Right.DisplayedVotes-snapshot.Left.DisplayedVotes)
	}
	return snapshot
}

func (s *arenaService) broadcast(variant models.StageVariant, msgType string, payload interface{}) {
	if s.hub == nil {
		return
	}
	roomID := brackets.RoomForVariant(string(variant))
	s.hub.BroadcastToRoom(roomID, brackets.WebSocketMessage{
		Type:    msgType,
		Payload: payload,
		RoomID:  roomID,
	})
}
