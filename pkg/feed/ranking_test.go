package feed

import (
	"context"
	"fmt"
	"testing"
	"time"

	"communityhub/pkg/posts"

	"github.com/golang/mock/gomock"
)

const (
	community = "gophers"
)

var rankNow = time.Date(2021, 3, 14, 12, 0, 0, 0, time.UTC)

func testPost(id string, createdAgo time.Duration) *posts.Post {
	author := int64(1)
	created := rankNow.Add(-createdAgo)
	return &posts.Post{
		ID:          id,
		CommunityID: community,
		AuthorID:    &author,
		CategoryID:  "general",
		Title:       "post " + id,
		Content:     "body " + id,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func pinnedPost(id string, createdAgo, pinnedAgo time.Duration) *posts.Post {
	p := testPost(id, createdAgo)
	p.IsPinned = true
	pinnedAt := rankNow.Add(-pinnedAgo)
	p.PinnedAt = &pinnedAt
	return p
}

func newTestEngine(ctrl *gomock.Controller, candidates []*posts.Post) (*Engine, *MockLikeCounter, *MockCommentCounter) {
	repo := NewMockPostsRepo(ctrl)
	likes := NewMockLikeCounter(ctrl)
	comments := NewMockCommentCounter(ctrl)

	repo.EXPECT().GetFeedCandidates(gomock.Any(), community, "").Return(candidates, nil).AnyTimes()

	engine := NewEngine(repo, likes, comments)
	engine.now = func() time.Time { return rankNow }

	return engine, likes, comments
}

func expectEngagement(likes *MockLikeCounter, comments *MockCommentCounter, likeCounts, commentCounts map[string]int64) {
	likes.EXPECT().CountLikesBatch(gomock.Any(), "post", gomock.Any()).Return(likeCounts, nil).AnyTimes()
	comments.EXPECT().CountByPostIDs(gomock.Any(), gomock.Any()).Return(commentCounts, nil).AnyTimes()
}

func assertOrder(t *testing.T, got []*posts.Post, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d posts, got %d", len(want), len(got))
	}

	for i := range want {
		if got[i].IDKey() != want[i] {
			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.IDKey())
			}
			t.Fatalf("position %d: expected %s, order was %v", i, want[i], gotIDs)
		}
	}
}

func TestRankNewOrdersByCreatedDesc(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := testPost("a", 2*time.Hour)
	b := testPost("b", 1*time.Hour)

	engine, _, _ := newTestEngine(ctrl, []*posts.Post{b, a})

	res, err := engine.Rank(context.Background(), community, "", SortNew, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, res, []string{"b", "a"})
}

func TestRankUnknownSortFallsBackToNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := testPost("a", 2*time.Hour)
	b := testPost("b", 1*time.Hour)

	engine, _, _ := newTestEngine(ctrl, []*posts.Post{a, b})

	res, err := engine.Rank(context.Background(), community, "", ParseSortMode("banana"), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, res, []string{"b", "a"})
}

func TestRankTopOrdersByLikes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := testPost("a", time.Hour)
	b := testPost("b", time.Hour)
	b.CreatedAt = a.CreatedAt

	engine, likes, comments := newTestEngine(ctrl, []*posts.Post{b, a})
	expectEngagement(likes, comments,
		map[string]int64{"a": 3, "b": 1},
		map[string]int64{})

	res, err := engine.Rank(context.Background(), community, "", SortTop, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, res, []string{"a", "b"})
}

func TestRankTopTieBreaksByCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	older := testPost("older", 5*time.Hour)
	newer := testPost("newer", 1*time.Hour)

	engine, likes, comments := newTestEngine(ctrl, []*posts.Post{older, newer})
	expectEngagement(likes, comments,
		map[string]int64{"older": 2, "newer": 2},
		map[string]int64{})

	res, err := engine.Rank(context.Background(), community, "", SortTop, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, res, []string{"newer", "older"})
}

func TestRankHotDecaysWithAge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A day-old post with heavy engagement should still beat an hour-old
	// quiet one, and a fresh post with similar engagement beats both.
	dayOld := testPost("dayOld", 24*time.Hour)
	hourOld := testPost("hourOld", time.Hour)
	fresh := testPost("fresh", 10*time.Minute)

	engine, likes, comments := newTestEngine(ctrl, []*posts.Post{hourOld, dayOld, fresh})
	expectEngagement(likes, comments,
		map[string]int64{"dayOld": 100, "hourOld": 1, "fresh": 40},
		map[string]int64{"dayOld": 20, "fresh": 5})

	// dayOld: (100+40)/26^1.5 ~ 1.06, hourOld: 1/3^1.5 ~ 0.19,
	// fresh: (40+10)/2.17^1.5 ~ 15.7
	res, err := engine.Rank(context.Background(), community, "", SortHot, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, res, []string{"fresh", "dayOld", "hourOld"})
}

func TestRankPinnedUnderCapLeadThePage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	candidates := []*posts.Post{
		testPost("u1", 1*time.Hour),
		pinnedPost("p1", 10*time.Hour, 2*time.Hour),
		testPost("u2", 3*time.Hour),
		pinnedPost("p2", 20*time.Hour, 1*time.Hour),
		testPost("u3", 4*time.Hour),
	}

	engine, _, _ := newTestEngine(ctrl, candidates)

	res, err := engine.Rank(context.Background(), community, "", SortNew, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pinned posts first in sort order, then unpinned in sort order.
	assertOrder(t, res, []string{"p1", "p2", "u1", "u2", "u3"})
}

func TestRankPinnedOverflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	candidates := make([]*posts.Post, 0, 10)
	// Seven pins: p1 pinned most recently, p7 longest ago. p6 and p7
	// overflow the display cap and must compete on creation time.
	for i := 1; i <= 7; i++ {
		candidates = append(candidates,
			pinnedPost(fmt.Sprintf("p%d", i), time.Duration(10+i)*time.Hour, time.Duration(i)*time.Hour))
	}
	candidates = append(candidates,
		testPost("u1", 12*time.Hour),
		testPost("u2", 14*time.Hour),
		testPost("u3", 20*time.Hour),
	)

	engine, _, _ := newTestEngine(ctrl, candidates)

	res, err := engine.Rank(context.Background(), community, "", SortNew, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Created-desc order of the whole set: p1 u1 p2 u2 p3 p4 p5 p6 p7 u3
	// (u2 and p3 share a timestamp, id desc puts u2 first). Displayed block
	// is the five most recently pinned; the overflow pins p6, p7 stay at
	// their creation-time slots among the unpinned posts.
	assertOrder(t, res, []string{"p1", "p2", "p3", "p4", "p5", "u1", "u2", "p6", "p7", "u3"})
}

func TestRankWindowBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	candidates := make([]*posts.Post, 0, 7)
	for i := 1; i <= 7; i++ {
		candidates = append(candidates, testPost(fmt.Sprintf("c%d", i), time.Duration(i)*time.Hour))
	}

	engine, _, _ := newTestEngine(ctrl, candidates)

	res, err := engine.Rank(context.Background(), community, "", SortNew, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, res, []string{"c3", "c4", "c5"})

	res, err = engine.Rank(context.Background(), community, "", SortNew, 3, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res) != 0 {
		t.Errorf("offset past the candidate set should be empty, got %d posts", len(res))
	}
}

func TestRankEmptyCommunity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockPostsRepo(ctrl)
	repo.EXPECT().GetFeedCandidates(gomock.Any(), "ghost-town", "").Return(nil, nil)

	engine := NewEngine(repo, NewMockLikeCounter(ctrl), NewMockCommentCounter(ctrl))

	res, err := engine.Rank(context.Background(), "ghost-town", "", SortNew, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res) != 0 {
		t.Errorf("expected empty result, got %d posts", len(res))
	}
}

func TestRankIsStableAcrossCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Identical timestamps: the id tie-break must hold the order steady.
	a := testPost("aaa", time.Hour)
	b := testPost("bbb", time.Hour)
	c := testPost("ccc", time.Hour)

	engine, _, _ := newTestEngine(ctrl, []*posts.Post{a, b, c})

	first, err := engine.Rank(context.Background(), community, "", SortNew, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := engine.Rank(context.Background(), community, "", SortNew, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, first, []string{"ccc", "bbb", "aaa"})
	assertOrder(t, second, []string{"ccc", "bbb", "aaa"})
}
