package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"communityhub/pkg/comments"
	"communityhub/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type CommentsRepo interface {
	GetByPostID(ctx context.Context, postID interface{}) ([]*comments.Comment, error)
	Add(ctx context.Context, comment *comments.Comment) (interface{}, error)
	SoftDelete(ctx context.Context, id interface{}) (bool, error)
	ParseID(string) (interface{}, error)
}

type CommentHandler struct {
	CommentsRepo CommentsRepo
	PostsRepo    PostsRepo
	Logger       *zap.SugaredLogger
}

type addCommentReq struct {
	Comment *string `json:"comment"`
}

func (c *addCommentReq) validate() []*CustomError {
	body := &Validator{value: c.Comment, location: "body", field: "comment"}
	err := body.Required()
	if err == nil {
		err = body.Empty()
	}

	return mergeErrors(err)
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID, err := h.CommentsRepo.ParseID(mux.Vars(r)["post_id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	list, err := h.CommentsRepo.GetByPostID(ctx, postID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if list == nil {
		list = []*comments.Comment{}
	}

	WriteJSON(w, list, http.StatusOK)
}

func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	postID, err := h.CommentsRepo.ParseID(mux.Vars(r)["post_id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req addCommentReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	post, err := h.PostsRepo.GetByID(ctx, postID)
	if err != nil {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	if post.IsLocked {
		WriteResponse(w, "post is locked", http.StatusForbidden)
		return
	}

	comment := &comments.Comment{
		PostID:    postID,
		AuthorID:  sess.User.ID,
		Body:      *req.Comment,
		CreatedAt: time.Now().UTC(),
	}

	id, err := h.CommentsRepo.Add(ctx, comment)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	comment.ID = id

	WriteJSON(w, comment, http.StatusCreated)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.CommentsRepo.ParseID(mux.Vars(r)["comment_id"])
	if err != nil {
		WriteResponse(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	ok, err := h.CommentsRepo.SoftDelete(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		WriteResponse(w, "comment not found", http.StatusNotFound)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}
