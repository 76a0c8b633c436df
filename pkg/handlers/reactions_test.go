package handlers

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityhub/pkg/reactions"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func TestLikePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	likes := NewMockLikeCounter(ctrl)
	h := &ReactionHandler{Likes: likes, Logger: zap.NewNop().Sugar()}

	likes.EXPECT().AddLike(gomock.Any(), reactions.TargetPost, "p1").Return(int64(3), nil)

	w := httptest.NewRecorder()
	r := authorRequest(http.MethodPost, "/api/post/p1/like", nil)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})
	h.Like(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}

	res, _ := ioutil.ReadAll(w.Body)
	expected := `{"likes":3}`
	if string(res) != expected {
		t.Fatalf("unexpected response: %s but expected %s", res, expected)
	}
}

func TestUnlikePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	likes := NewMockLikeCounter(ctrl)
	h := &ReactionHandler{Likes: likes, Logger: zap.NewNop().Sugar()}

	likes.EXPECT().RemoveLike(gomock.Any(), reactions.TargetPost, "p1").Return(int64(2), nil)

	w := httptest.NewRecorder()
	r := authorRequest(http.MethodPost, "/api/post/p1/unlike", nil)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})
	h.Unlike(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}
}

func TestLikePostCounterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	likes := NewMockLikeCounter(ctrl)
	h := &ReactionHandler{Likes: likes, Logger: zap.NewNop().Sugar()}

	likes.EXPECT().AddLike(gomock.Any(), reactions.TargetPost, "p1").Return(int64(0), fmt.Errorf("redis down"))

	w := httptest.NewRecorder()
	r := authorRequest(http.MethodPost, "/api/post/p1/like", nil)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})
	h.Like(w, r)

	if w.Result().StatusCode != http.StatusInternalServerError {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}
}
