package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"communityhub/pkg/posts"
	"communityhub/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostsRepo interface {
	GetByID(ctx context.Context, id interface{}) (*posts.Post, error)
	Add(ctx context.Context, p *posts.Post) (interface{}, error)
	SoftDelete(ctx context.Context, id interface{}) (bool, error)
	Pin(ctx context.Context, id interface{}, pinnedAt time.Time) (*posts.Post, error)
	Unpin(ctx context.Context, id interface{}) (*posts.Post, error)
	Lock(ctx context.Context, id interface{}) (*posts.Post, error)
	Unlock(ctx context.Context, id interface{}) (*posts.Post, error)

	ParseID(string) (interface{}, error)
}

type PostHandler struct {
	PostsRepo PostsRepo
	Logger    *zap.SugaredLogger
}

type CreatePostReq struct {
	CommunityID *string `json:"communityId"`
	CategoryID  *string `json:"categoryId"`
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	ImageURL    *string `json:"imageUrl"`
}

func (p *CreatePostReq) validate() []*CustomError {
	title := &Validator{value: p.Title, location: "body", field: "title"}
	titleErr := func() *CustomError {
		err := title.Required()
		if err != nil {
			return err
		}
		err = title.Empty()
		if err != nil {
			return err
		}
		err = title.MaxLength(200)
		if err != nil {
			return err
		}
		return title.Custom(func(value string) bool {
			return strings.TrimSpace(value) == value
		}, "cannot start or end with whitespace")
	}()

	content := &Validator{value: p.Content, location: "body", field: "content"}
	contentErr := func() *CustomError {
		err := content.Required()
		if err != nil {
			return err
		}
		return content.Empty()
	}()

	community := &Validator{value: p.CommunityID, location: "body", field: "communityId"}
	communityErr := func() *CustomError {
		err := community.Required()
		if err != nil {
			return err
		}
		return community.Empty()
	}()

	var imageErr *CustomError
	if p.ImageURL != nil && *p.ImageURL != "" {
		image := &Validator{value: p.ImageURL, location: "body", field: "imageUrl"}
		imageErr = image.URL()
	}

	return mergeErrors(titleErr, contentErr, communityErr, imageErr)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CreatePostReq
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

	now := time.Now().UTC()
	authorID := sess.User.ID
	post := &posts.Post{
		CommunityID: *req.CommunityID,
		AuthorID:    &authorID,
		Title:       *req.Title,
		Content:     *req.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.CategoryID != nil {
		post.CategoryID = *req.CategoryID
	}

	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	id, err := h.PostsRepo.Add(ctx, post)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	post.ID = id

	WriteJSON(w, post, http.StatusCreated)
}

func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	post, err := h.PostsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	ok, err := h.PostsRepo.SoftDelete(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}

func (h *PostHandler) Pin(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, func(ctx context.Context, id interface{}) (*posts.Post, error) {
		return h.PostsRepo.Pin(ctx, id, time.Now().UTC())
	})
}

func (h *PostHandler) Unpin(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.PostsRepo.Unpin)
}

func (h *PostHandler) Lock(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.PostsRepo.Lock)
}

func (h *PostHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.PostsRepo.Unlock)
}

func (h *PostHandler) moderate(w http.ResponseWriter, r *http.Request,
	action func(context.Context, interface{}) (*posts.Post, error)) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["post_id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	post, err := action(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}
