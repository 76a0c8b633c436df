package reactions

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/go-redis/redis/v8"
)

func newTestCounter(t *testing.T) (*CounterRedis, *miniredis.Miniredis) {
	t.Helper()

	srv, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	return NewCounterRedis(rdb), srv
}

func TestAddAndCountLikes(t *testing.T) {
	counter, srv := newTestCounter(t)
	defer srv.Close()

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := counter.AddLike(ctx, TargetPost, "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	count, err := counter.CountLikes(ctx, TargetPost, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count != 3 {
		t.Errorf("expected 3 likes, got %d", count)
	}
}

func TestRemoveLike(t *testing.T) {
	counter, srv := newTestCounter(t)
	defer srv.Close()

	ctx := context.Background()

	counter.AddLike(ctx, TargetPost, "p1")
	counter.AddLike(ctx, TargetPost, "p1")

	left, err := counter.RemoveLike(ctx, TargetPost, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if left != 1 {
		t.Errorf("expected 1 like left, got %d", left)
	}
}

func TestCountLikesUnknownTarget(t *testing.T) {
	counter, srv := newTestCounter(t)
	defer srv.Close()

	count, err := counter.CountLikes(context.Background(), TargetPost, "never-liked")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count != 0 {
		t.Errorf("expected 0 likes, got %d", count)
	}
}

func TestCountLikesBatch(t *testing.T) {
	counter, srv := newTestCounter(t)
	defer srv.Close()

	ctx := context.Background()

	counter.AddLike(ctx, TargetPost, "p1")
	counter.AddLike(ctx, TargetPost, "p1")
	counter.AddLike(ctx, TargetPost, "p3")

	counts, err := counter.CountLikesBatch(ctx, TargetPost, []string{"p1", "p2", "p3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]int64{"p1": 2, "p2": 0, "p3": 1}
	for id, want := range expected {
		if counts[id] != want {
			t.Errorf("target %s: expected %d, got %d", id, want, counts[id])
		}
	}
}

func TestCountLikesBatchEmpty(t *testing.T) {
	counter, srv := newTestCounter(t)
	defer srv.Close()

	counts, err := counter.CountLikesBatch(context.Background(), TargetPost, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(counts) != 0 {
		t.Errorf("expected empty map, got %v", counts)
	}
}

func TestCommentTargetKeysAreSeparate(t *testing.T) {
	counter, srv := newTestCounter(t)
	defer srv.Close()

	ctx := context.Background()

	counter.AddLike(ctx, TargetPost, "x")
	counter.AddLike(ctx, TargetComment, "x")
	counter.AddLike(ctx, TargetComment, "x")

	postLikes, _ := counter.CountLikes(ctx, TargetPost, "x")
	commentLikes, _ := counter.CountLikes(ctx, TargetComment, "x")

	if postLikes != 1 || commentLikes != 2 {
		t.Errorf("expected 1 post like and 2 comment likes, got %d and %d", postLikes, commentLikes)
	}
}
