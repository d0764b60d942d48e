package services

import (
	"strconv"
	"strings"
	"sync"

	"github.com/huashi-art/oc-pk-contest/brackets"
	"github.com/huashi-art/oc-pk-contest/models"
)

// DefaultVariant is the fallback for an absent or unparseable stage
// signal: mid-bracket evaluation.
const DefaultVariant = models.VariantEvaluation8

// viewStageRules is the static legality table: a view is reachable only
// while its stage is active. Home (and the register entry) belong to the
// dedicated registration flow, so they are legal during registration
// only.
var viewStageRules = map[models.View][]models.Stage{
	models.ViewHome:        {models.StageRegistration},
	models.ViewRegister:    {models.StageRegistration},
	models.ViewVote:        {models.StageEvaluation},
	models.ViewMyEntries:   {models.StageEvaluation, models.StageAnnouncement},
	models.ViewPkList:      {models.StageEvaluation},
	models.ViewLeaderboard: {models.StageAnnouncement},
	models.ViewLottery:     {models.StageEvaluation, models.StageAnnouncement},
}

var defaultViewByStage = map[models.Stage]models.View{
	models.StageRegistration: models.ViewHome,
	models.StageEvaluation:   models.ViewPkList,
	models.StageAnnouncement: models.ViewLeaderboard,
}

// navOrder fixes the order of the top navigation.
var navOrder = []models.View{
	models.ViewHome,
	models.ViewRegister,
	models.ViewVote,
	models.ViewMyEntries,
	models.ViewPkList,
	models.ViewLeaderboard,
	models.ViewLottery,
}

// ResolveVariant parses the external stage signal: a decimal index into
// VariantOrder. Absent, non-integer or out-of-range values fall back to
// DefaultVariant; resolution never fails.
func ResolveVariant(signal string) models.StageVariant {
	trimmed := strings.TrimSpace(signal)
	if trimmed == "" {
		return DefaultVariant
	}
	index, err := strconv.Atoi(trimmed)
	if err != nil {
		return DefaultVariant
	}
	if index < 0 || index >= len(models.VariantOrder) {
		return DefaultVariant
	}
	return models.VariantOrder[index]
}

// ViewLegalForStage reports whether a view is reachable in a stage.
func ViewLegalForStage(view models.View, stage models.Stage) bool {
	for _, s := range viewStageRules[view] {
		if s == stage {
			return true
		}
	}
	return false
}

// DefaultViewForStage returns the view a stage lands on. Every stage's
// default view is legal for that stage.
func DefaultViewForStage(stage models.Stage) models.View {
	return defaultViewByStage[stage]
}

// StageSnapshot is the orchestrator state handed to the frontend.
type StageSnapshot struct {
	Variant             models.StageVariant  `json:"variant"`
	Stage               models.Stage         `json:"stage"`
	ActiveView          models.View          `json:"active_view"`
	NavItems            []models.View        `json:"nav_items"`
	ShippingVisible     bool                 `json:"shipping_visible"`
	RegistrationVisible bool                 `json:"registration_visible"`
	ShippingInfo        *models.ShippingInfo `json:"shipping_info,omitempty"`
	Profile             models.UserProfile   `json:"profile"`
}

// StageService owns the lifecycle stage and active view, enforces view
// legality and drives the stage-transition side effects (winner
// shipping modal, registration intake modal).
type StageService interface {
	SetVariant(variant models.StageVariant)
	SyncFromSignal(signal string)
	SetActiveView(view models.View)
	NavigateToMatch(pkNumber string)
	OpenRegistrationModal()
	CloseRegistrationModal()
	CloseShippingModal()
	SubmitShipping(info models.ShippingInfo) error
	Snapshot() StageSnapshot
}

type stageService struct {
	mu sync.Mutex

	arena   ArenaService
	hub     *brackets.Hub
	profile models.UserProfile

	variant             models.StageVariant
	activeView          models.View
	shippingVisible     bool
	registrationVisible bool
	shippingInfo        *models.ShippingInfo
}

func NewStageService(
	arena ArenaService,
	hub *brackets.Hub,
	profile models.UserProfile,
	initialSignal string,
) StageService {
	s := &stageService{
		arena:   arena,
		hub:     hub,
		profile: profile,
	}
	variant := ResolveVariant(initialSignal)
	s.variant = variant
	s.activeView = DefaultViewForStage(variant.Stage())
	if s.arena != nil {
		s.arena.SetActiveVariant(variant)
	}
	s.applySideEffectsLocked()
	return s
}

// SetVariant replaces the current stage variant. The active view is
// re-validated against the new stage; the arena is pointed at the new
// match-set but its ledger is never touched here.
func (s *stageService) SetVariant(variant models.StageVariant) {
	s.mu.Lock()

	s.variant = variant
	if !ViewLegalForStage(s.activeView, variant.Stage()) {
		s.activeView = DefaultViewForStage(variant.Stage())
	}
	if s.arena != nil {
		s.arena.SetActiveVariant(variant)
	}
	s.applySideEffectsLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.broadcast(variant, snapshot)
}

// SyncFromSignal re-resolves the stage from an external navigation
// signal and applies it only when it differs. Idempotent.
func (s *stageService) SyncFromSignal(signal string) {
	next := ResolveVariant(signal)

	s.mu.Lock()
	current := s.variant
	s.mu.Unlock()

	if next == current {
		return
	}
	s.SetVariant(next)
}

// SetActiveView switches the view, silently ignoring views that are not
// legal for the current stage. The guard is authoritative even though
// callers are expected to only offer legal views.
func (s *stageService) SetActiveView(view models.View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !ViewLegalForStage(view, s.variant.Stage()) {
		return
	}
	s.activeView = view
	s.applySideEffectsLocked()
}

// NavigateToMatch jumps to the voting arena for a given pk number, the
// way the pk-list and search flows do.
func (s *stageService) NavigateToMatch(pkNumber string) {
	if s.arena != nil {
		s.arena.SelectMatch(pkNumber)
	}
	s.SetActiveView(models.ViewVote)
}

func (s *stageService) OpenRegistrationModal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.variant.Stage() != models.StageRegistration {
		return
	}
	s.registrationVisible = true
}

func (s *stageService) CloseRegistrationModal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registrationVisible = false
}

func (s *stageService) CloseShippingModal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shippingVisible = false
}

// SubmitShipping records the winner's shipping info and closes the
// modal. Once recorded, the modal never auto-opens again.
func (s *stageService) SubmitShipping(info models.ShippingInfo) error {
	if strings.TrimSpace(info.Name) == "" ||
		strings.TrimSpace(info.Phone) == "" ||
		strings.TrimSpace(info.Address) == "" {
		return ErrShippingIncomplete
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.shippingInfo = &info
	s.shippingVisible = false
	return nil
}

func (s *stageService) Snapshot() StageSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// applySideEffectsLocked re-evaluates the modal flags whenever stage or
// view changes:
//   - entering announcement with a winning profile and no recorded
//     shipping info surfaces the shipping modal;
//   - leaving announcement force-hides it (recorded info is kept);
//   - leaving registration force-hides the registration intake modal.
func (s *stageService) applySideEffectsLocked() {
	stage := s.variant.Stage()

	if stage == models.StageAnnouncement && s.profile.IsWinner && s.shippingInfo == nil {
		s.shippingVisible = true
	}
	if stage != models.StageAnnouncement {
		s.shippingVisible = false
	}
	if stage != models.StageRegistration {
		s.registrationVisible = false
	}
}

func (s *stageService) navItemsLocked() []models.View {
	stage := s.variant.Stage()
	items := make([]models.View, 0, len(navOrder))
	for _, view := range navOrder {
		// The register entry is reached through the intake modal, not
		// the top navigation.
		if stage == models.StageRegistration && view == models.ViewRegister {
			continue
		}
		if ViewLegalForStage(view, stage) {
			items = append(items, view)
		}
	}
	return items
}

func (s *stageService) snapshotLocked() StageSnapshot {
	return StageSnapshot{
		Variant:             s.variant,
		Stage:               s.variant.Stage(),
		ActiveView:          s.activeView,
		NavItems:            s.navItemsLocked(),
		ShippingVisible:     s.shippingVisible,
		RegistrationVisible: s.registrationVisible,
		ShippingInfo:        s.shippingInfo,
		Profile:             s.profile,
	}
}

func (s *stageService) broadcast(variant models.StageVariant, snapshot StageSnapshot) {
	if s.hub == nil {
		return
	}
	roomID := brackets.RoomForVariant(string(variant))
	s.hub.BroadcastToRoom(roomID, brackets.WebSocketMessage{
		Type:    brackets.MsgStageChanged,
		Payload: snapshot,
		RoomID:  roomID,
	})
}
