package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"communityhub/pkg/feed"
	"communityhub/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type FeedService interface {
	GetFeed(ctx context.Context, q feed.FeedQuery) (*feed.FeedPage, error)
}

type FeedHandler struct {
	Feed   FeedService
	Logger *zap.SugaredLogger
}

// GetFeed serves GET /api/community/{community_id}/feed. Recognized query
// parameters: sort, category, limit, cursor, offset. Bad sort values and
// broken cursors degrade to defaults instead of failing; the only rejection
// is for requesters outside the community.
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	q := feed.FeedQuery{
		CommunityID: mux.Vars(r)["community_id"],
		CategoryID:  r.URL.Query().Get("category"),
		Sort:        feed.ParseSortMode(r.URL.Query().Get("sort")),
		Cursor:      r.URL.Query().Get("cursor"),
	}

	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		q.Limit = limit
	}

	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil {
		q.Offset = offset
	}

	if sess, err := session.SessionFromContext(r.Context()); err == nil {
		q.RequesterID = sess.User.ID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	page, err := h.Feed.GetFeed(ctx, q)
	if errors.Is(err, feed.ErrNotCommunityMember) {
		WriteResponse(w, "not a member of this community", http.StatusForbidden)
		return
	}
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteJSON(w, page, http.StatusOK)
}
