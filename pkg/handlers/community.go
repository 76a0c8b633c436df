package handlers

import (
	"context"
	"net/http"
	"time"

	"communityhub/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type MembershipRepo interface {
	Join(ctx context.Context, userID int64, communityID string) error
	Leave(ctx context.Context, userID int64, communityID string) (bool, error)
}

type CommunityHandler struct {
	Memberships MembershipRepo
	Logger      *zap.SugaredLogger
}

func (h *CommunityHandler) Join(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = h.Memberships.Join(ctx, sess.User.ID, mux.Vars(r)["community_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}

func (h *CommunityHandler) Leave(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	left, err := h.Memberships.Leave(ctx, sess.User.ID, mux.Vars(r)["community_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !left {
		WriteResponse(w, "not an active member", http.StatusConflict)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}
