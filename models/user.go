package models

import "time"

type UserProfile struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	IsWinner  bool   `json:"is_winner"`
	AvatarURL string `json:"avatar_url"`
}

type ShippingInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// RegistrationConfig is the static intake page content: rules, reward
// tiers and the running enrollment counter.
type RegistrationConfig struct {
	EnrollmentCount int      `json:"enrollment_count"`
	Rewards         []string `json:"rewards"`
	Rules           []string `json:"rules"`
}

// RegistrationRemark is the optional per-work note attached when a
// creator enters a work into the contest.
type RegistrationRemark struct {
	Title     string `json:"title"`
	Highlight string `json:"highlight"`
}

// Registration is one submitted intake: a set of the creator's works
// plus remarks, answered with a shareable submission link per work.
type Registration struct {
	ID          string                        `json:"id"`
	WorkIDs     []string                      `json:"work_ids"`
	Remarks     map[string]RegistrationRemark `json:"remarks,omitempty"`
	SubmittedAt time.Time                     `json:"submitted_at"`
}

type SubmissionLink struct {
	WorkID string `json:"work_id"`
	URL    string `json:"url"`
}
