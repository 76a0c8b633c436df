package feed

import (
	"communityhub/pkg/posts"
)

type SortMode string

const (
	SortNew SortMode = "new"
	SortTop          = "top"
	SortHot          = "hot"
)

// ParseSortMode never fails: anything it does not recognize means "new",
// so a bad sort query parameter cannot break feed rendering.
func ParseSortMode(in string) SortMode {
	switch SortMode(in) {
	case SortTop:
		return SortTop
	case SortHot:
		return SortHot
	default:
		return SortNew
	}
}

const (
	// MaxPinnedDisplay caps how many pinned posts are forced to the top of
	// a page; pins beyond the cap compete with organic posts for ranking.
	MaxPinnedDisplay = 5

	DefaultLimit = 20
	MaxLimit     = 100
)

type FeedQuery struct {
	CommunityID string
	RequesterID int64 // 0 skips the membership check (system callers)
	CategoryID  string
	Sort        SortMode
	Limit       int
	Offset      int
	Cursor      string
}

type FeedPage struct {
	Items      []*posts.Post `json:"items"`
	NextCursor string        `json:"nextCursor,omitempty"`
	HasMore    bool          `json:"hasMore"`
}

// Engagement holds the per-post counters resolved from the reaction and
// comment stores for one ranking pass.
type Engagement struct {
	Likes    int64
	Comments int64
}
