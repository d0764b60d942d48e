package models

// Stage is the top-level lifecycle phase of the contest.
type Stage string

const (
	StageRegistration Stage = "registration"
	StageEvaluation   Stage = "evaluation"
	StageAnnouncement Stage = "announcement"
)

// StageVariant refines a stage and selects which match-set and
// activity metadata snapshot is active.
type StageVariant string

const (
	VariantRegistration StageVariant = "registration"
	VariantEvaluation32 StageVariant = "evaluation-32"
	VariantEvaluation8  StageVariant = "evaluation-8"
	VariantAnnouncement StageVariant = "announcement"
)

// VariantOrder is the fixed sequence the external stage signal indexes into.
var VariantOrder = []StageVariant{
	VariantRegistration,
	VariantEvaluation32,
	VariantEvaluation8,
	VariantAnnouncement,
}

func (v StageVariant) Stage() Stage {
	switch v {
	case VariantRegistration:
		return StageRegistration
	case VariantEvaluation32, VariantEvaluation8:
		return StageEvaluation
	case VariantAnnouncement:
		return StageAnnouncement
	}
	return StageEvaluation
}

// View identifies one of the screens of the single-page frontend.
type View string

const (
	ViewHome        View = "home"
	ViewRegister    View = "register"
	ViewVote        View = "vote"
	ViewMyEntries   View = "myEntries"
	ViewPkList      View = "pkList"
	ViewLeaderboard View = "leaderboard"
	ViewLottery     View = "lottery"
)
