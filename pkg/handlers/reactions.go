package handlers

import (
	"context"
	"net/http"
	"time"

	"communityhub/pkg/reactions"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type LikeCounter interface {
	AddLike(ctx context.Context, targetType, targetID string) (int64, error)
	RemoveLike(ctx context.Context, targetType, targetID string) (int64, error)
}

type ReactionHandler struct {
	Likes  LikeCounter
	Logger *zap.SugaredLogger
}

type likeResponse struct {
	Likes int64 `json:"likes"`
}

func (h *ReactionHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.Likes.AddLike)
}

func (h *ReactionHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.Likes.RemoveLike)
}

func (h *ReactionHandler) react(w http.ResponseWriter, r *http.Request,
	action func(ctx context.Context, targetType, targetID string) (int64, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	likes, err := action(ctx, reactions.TargetPost, mux.Vars(r)["post_id"])
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteJSON(w, &likeResponse{Likes: likes}, http.StatusOK)
}
