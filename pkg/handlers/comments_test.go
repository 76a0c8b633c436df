package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"communityhub/pkg/comments"
	"communityhub/pkg/posts"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func newCommentHandler(t *testing.T) (*CommentHandler, *MockCommentsRepo, *MockPostsRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	commentsRepo := NewMockCommentsRepo(ctrl)
	postsRepo := NewMockPostsRepo(ctrl)
	h := &CommentHandler{CommentsRepo: commentsRepo, PostsRepo: postsRepo, Logger: zap.NewNop().Sugar()}
	return h, commentsRepo, postsRepo, ctrl
}

func TestListComments(t *testing.T) {
	h, commentsRepo, _, ctrl := newCommentHandler(t)
	defer ctrl.Finish()

	commentsRepo.EXPECT().ParseID("p1").Return("p1", nil)
	commentsRepo.EXPECT().GetByPostID(gomock.Any(), "p1").
		Return([]*comments.Comment{{ID: "c1", PostID: "p1", AuthorID: 42, Body: "nice"}}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/post/p1/comments", nil)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})
	h.List(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}

	res, _ := ioutil.ReadAll(w.Body)
	if !strings.Contains(string(res), `"body":"nice"`) {
		t.Fatalf("unexpected response: %s", res)
	}
}

func TestListCommentsEmpty(t *testing.T) {
	h, commentsRepo, _, ctrl := newCommentHandler(t)
	defer ctrl.Finish()

	commentsRepo.EXPECT().ParseID("p1").Return("p1", nil)
	commentsRepo.EXPECT().GetByPostID(gomock.Any(), "p1").Return(nil, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/post/p1/comments", nil)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})
	h.List(w, r)

	res, _ := ioutil.ReadAll(w.Body)
	if string(res) != "[]" {
		t.Fatalf("expected empty array, got %s", res)
	}
}

func TestAddComment(t *testing.T) {
	h, commentsRepo, postsRepo, ctrl := newCommentHandler(t)
	defer ctrl.Finish()

	commentsRepo.EXPECT().ParseID("p1").Return("p1", nil)
	postsRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(&posts.Post{ID: "p1"}, nil)
	commentsRepo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *comments.Comment) (interface{}, error) {
			if c.Body != "nice" || c.AuthorID != int64(42) || c.CreatedAt.IsZero() {
				t.Fatalf("unexpected comment passed to repo: %+v", c)
			}
			return "c1", nil
		})

	body, _ := json.Marshal(map[string]string{"comment": "nice"})
	w := httptest.NewRecorder()
	r := authorRequest(http.MethodPost, "/api/post/p1/comments", body)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})
	h.Add(w, r)

	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}

	res, _ := ioutil.ReadAll(w.Body)
	if !strings.Contains(string(res), `"id":"c1"`) {
		t.Fatalf("response misses created id: %s", res)
	}
}

func TestAddCommentLockedPost(t *testing.T) {
	h, commentsRepo, postsRepo, ctrl := newCommentHandler(t)
	defer ctrl.Finish()

	commentsRepo.EXPECT().ParseID("p1").Return("p1", nil)
	postsRepo.EXPECT().GetByID(gomock.Any(), "p1").Return(&posts.Post{ID: "p1", IsLocked: true}, nil)

	body, _ := json.Marshal(map[string]string{"comment": "nice"})
	w := httptest.NewRecorder()
	r := authorRequest(http.MethodPost, "/api/post/p1/comments", body)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})
	h.Add(w, r)

	if w.Result().StatusCode != http.StatusForbidden {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}
}

func TestAddCommentValidation(t *testing.T) {
	h, commentsRepo, _, ctrl := newCommentHandler(t)
	defer ctrl.Finish()

	commentsRepo.EXPECT().ParseID("p1").Return("p1", nil)

	body, _ := json.Marshal(map[string]string{"comment": ""})
	w := httptest.NewRecorder()
	r := authorRequest(http.MethodPost, "/api/post/p1/comments", body)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1"})
	h.Add(w, r)

	if w.Result().StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}
}

func TestDeleteComment(t *testing.T) {
	h, commentsRepo, _, ctrl := newCommentHandler(t)
	defer ctrl.Finish()

	commentsRepo.EXPECT().ParseID("c1").Return("c1", nil)
	commentsRepo.EXPECT().SoftDelete(gomock.Any(), "c1").Return(true, nil)

	w := httptest.NewRecorder()
	r := authorRequest(http.MethodDelete, "/api/post/p1/c1", nil)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1", "comment_id": "c1"})
	h.Delete(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}
}

func TestDeleteCommentNotFound(t *testing.T) {
	h, commentsRepo, _, ctrl := newCommentHandler(t)
	defer ctrl.Finish()

	commentsRepo.EXPECT().ParseID("c1").Return("c1", nil)
	commentsRepo.EXPECT().SoftDelete(gomock.Any(), "c1").Return(false, nil)

	w := httptest.NewRecorder()
	r := authorRequest(http.MethodDelete, "/api/post/p1/c1", nil)
	r = mux.SetURLVars(r, map[string]string{"post_id": "p1", "comment_id": "c1"})
	h.Delete(w, r)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}
}
