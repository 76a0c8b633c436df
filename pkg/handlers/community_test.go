package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func TestJoinCommunity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockMembershipRepo(ctrl)
	h := &CommunityHandler{Memberships: repo, Logger: zap.NewNop().Sugar()}

	repo.EXPECT().Join(gomock.Any(), int64(42), "golang").Return(nil)

	w := httptest.NewRecorder()
	r := authorRequest(http.MethodPost, "/api/community/golang/join", nil)
	r = mux.SetURLVars(r, map[string]string{"community_id": "golang"})
	h.Join(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}
}

func TestLeaveCommunity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockMembershipRepo(ctrl)
	h := &CommunityHandler{Memberships: repo, Logger: zap.NewNop().Sugar()}

	repo.EXPECT().Leave(gomock.Any(), int64(42), "golang").Return(true, nil)

	w := httptest.NewRecorder()
	r := authorRequest(http.MethodPost, "/api/community/golang/leave", nil)
	r = mux.SetURLVars(r, map[string]string{"community_id": "golang"})
	h.Leave(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}
}

func TestLeaveCommunityNotMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockMembershipRepo(ctrl)
	h := &CommunityHandler{Memberships: repo, Logger: zap.NewNop().Sugar()}

	repo.EXPECT().Leave(gomock.Any(), int64(42), "golang").Return(false, nil)

	w := httptest.NewRecorder()
	r := authorRequest(http.MethodPost, "/api/community/golang/leave", nil)
	r = mux.SetURLVars(r, map[string]string{"community_id": "golang"})
	h.Leave(w, r)

	if w.Result().StatusCode != http.StatusConflict {
		t.Fatalf("wrong status code: %d", w.Result().StatusCode)
	}
}
