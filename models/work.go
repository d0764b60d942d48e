package models

type WorkStats struct {
	Likes     int `json:"likes"`
	Favorites int `json:"favorites"`
	Comments  int `json:"comments"`
}

// Work is a contestant's creative submission. Reference data, looked up
// by ID and never mutated by voting.
type Work struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Creator     string    `json:"creator"`
	CoverImages []string  `json:"cover_images"`
	Tags        []string  `json:"tags"`
	Synopsis    string    `json:"synopsis"`
	Highlight   string    `json:"highlight"`
	Stats       WorkStats `json:"stats"`
}

// placeholders rendered when a match references a work that cannot be
// resolved; lookups never fail loudly.
const (
	UnknownWorkTitle   = "to be announced"
	UnknownWorkCreator = "unknown"
)
