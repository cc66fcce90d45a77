package storage

import (
	"cine-match/catalog"
	"cine-match/recommend"
	"time"
)

// Run modes recorded with each history entry
const (
	ModeInteractive = "interactive"
	ModeDigest      = "digest"
)

// Run is one recorded recommendation run
type Run struct {
	ID          int64                 `json:"id"`
	Mode        string                `json:"mode"`
	Preferences recommend.Preferences `json:"preferences"`
	MatchCount  int                   `json:"match_count"`
	CreatedAt   time.Time             `json:"created_at"`
	Matches     []catalog.Movie       `json:"matches,omitempty"`
}
