package feed

import (
	"context"
	"math"
	"sort"
	"time"

	"communityhub/pkg/posts"
)

type PostsRepo interface {
	GetFeedCandidates(ctx context.Context, communityID, categoryID string) ([]*posts.Post, error)
}

type LikeCounter interface {
	CountLikesBatch(ctx context.Context, targetType string, targetIDs []string) (map[string]int64, error)
}

type CommentCounter interface {
	CountByPostIDs(ctx context.Context, postIDs []interface{}) (map[string]int64, error)
}

// Engine orders the posts of one community feed. It only ever reads: the
// candidate set comes from the post store, engagement counters from the
// reaction and comment stores, and everything after that happens in memory.
type Engine struct {
	posts    PostsRepo
	likes    LikeCounter
	comments CommentCounter
	now      func() time.Time
}

func NewEngine(postsRepo PostsRepo, likes LikeCounter, comments CommentCounter) *Engine {
	return &Engine{posts: postsRepo, likes: likes, comments: comments, now: time.Now}
}

// Rank returns up to limit posts of the community at the given offset,
// ordered by mode with the pinned-post rule applied to the returned window.
// An unknown community or category yields an empty result, never an error.
func (e *Engine) Rank(ctx context.Context, communityID, categoryID string, mode SortMode, limit, offset int) ([]*posts.Post, error) {
	if limit <= 0 || offset < 0 {
		return nil, nil
	}

	candidates, err := e.posts.GetFeedCandidates(ctx, communityID, categoryID)
	if err != nil {
		return nil, err
	}

	if offset >= len(candidates) {
		return nil, nil
	}

	var counts map[string]Engagement
	if mode == SortTop || mode == SortHot {
		counts, err = e.fetchEngagement(ctx, candidates)
		if err != nil {
			return nil, err
		}
	}

	sortPosts(candidates, counts, mode, e.now())

	end := offset + limit
	if end > len(candidates) {
		end = len(candidates)
	}

	// Pin priority is a per-window heuristic: the partition is computed on
	// the page being returned, not on the whole candidate set.
	return applyPinPriority(candidates[offset:end]), nil
}

func (e *Engine) fetchEngagement(ctx context.Context, candidates []*posts.Post) (map[string]Engagement, error) {
	keys := make([]string, 0, len(candidates))
	ids := make([]interface{}, 0, len(candidates))
	for _, p := range candidates {
		keys = append(keys, p.IDKey())
		ids = append(ids, p.ID)
	}

	likes, err := e.likes.CountLikesBatch(ctx, "post", keys)
	if err != nil {
		return nil, err
	}

	comments, err := e.comments.CountByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]Engagement, len(candidates))
	for _, key := range keys {
		counts[key] = Engagement{Likes: likes[key], Comments: comments[key]}
	}

	return counts, nil
}

// hotScore rewards recent engagement and decays with age. The +2 hour offset
// keeps brand-new posts from dividing by near zero; the 1.5 exponent lets a
// day-old post with strong engagement outrank an hour-old quiet one, but not
// forever.
func hotScore(eng Engagement, createdAt, now time.Time) float64 {
	hours := now.Sub(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}

	return float64(eng.Likes+2*eng.Comments) / math.Pow(hours+2, 1.5)
}

func sortPosts(candidates []*posts.Post, counts map[string]Engagement, mode SortMode, now time.Time) {
	switch mode {
	case SortTop:
		sort.SliceStable(candidates, func(i, j int) bool {
			li, lj := counts[candidates[i].IDKey()].Likes, counts[candidates[j].IDKey()].Likes
			if li != lj {
				return li > lj
			}
			return newerFirst(candidates[i], candidates[j])
		})
	case SortHot:
		scores := make(map[string]float64, len(candidates))
		for _, p := range candidates {
			scores[p.IDKey()] = hotScore(counts[p.IDKey()], p.CreatedAt, now)
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			si, sj := scores[candidates[i].IDKey()], scores[candidates[j].IDKey()]
			if si != sj {
				return si > sj
			}
			return newerFirst(candidates[i], candidates[j])
		})
	default:
		sort.SliceStable(candidates, func(i, j int) bool {
			return newerFirst(candidates[i], candidates[j])
		})
	}
}

// newerFirst orders by creation time descending with the post id as a
// deterministic secondary key, so repeated calls over equal timestamps
// always agree.
func newerFirst(a, b *posts.Post) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}

	return a.IDKey() > b.IDKey()
}

// applyPinPriority reorders one page window. Up to MaxPinnedDisplay pinned
// posts lead the window; when there are more, the most recently pinned ones
// take those slots and the overflow keeps competing at its sort position
// among the unpinned posts.
func applyPinPriority(window []*posts.Post) []*posts.Post {
	pinned := make([]*posts.Post, 0, MaxPinnedDisplay)
	unpinned := make([]*posts.Post, 0, len(window))
	for _, p := range window {
		if p.IsPinned {
			pinned = append(pinned, p)
		} else {
			unpinned = append(unpinned, p)
		}
	}

	if len(pinned) == 0 {
		return window
	}

	if len(pinned) <= MaxPinnedDisplay {
		return append(pinned, unpinned...)
	}

	displayed := selectDisplayedPinned(pinned)

	result := make([]*posts.Post, 0, len(window))
	result = append(result, displayed...)
	for _, p := range window {
		if !isDisplayed(displayed, p) {
			result = append(result, p)
		}
	}

	return result
}

// selectDisplayedPinned picks the MaxPinnedDisplay most recently pinned
// posts, by pinnedAt descending rather than by sort-mode score.
func selectDisplayedPinned(pinned []*posts.Post) []*posts.Post {
	byPinTime := make([]*posts.Post, len(pinned))
	copy(byPinTime, pinned)

	sort.SliceStable(byPinTime, func(i, j int) bool {
		ti, tj := pinTime(byPinTime[i]), pinTime(byPinTime[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return byPinTime[i].IDKey() > byPinTime[j].IDKey()
	})

	return byPinTime[:MaxPinnedDisplay]
}

func pinTime(p *posts.Post) time.Time {
	if p.PinnedAt == nil {
		return time.Time{}
	}

	return *p.PinnedAt
}

func isDisplayed(displayed []*posts.Post, p *posts.Post) bool {
	for _, d := range displayed {
		if d == p {
			return true
		}
	}

	return false
}
