package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"communityhub/pkg/session"

	"go.uber.org/zap"
)

var authRoutes = map[string]string{
	"/api/posts": http.MethodPost,
}

var protectedPostSuffixes = []string{"/pin", "/unpin", "/lock", "/unlock", "/like", "/unlike", "/comments"}

func requiresAuth(r *http.Request) bool {
	if m, ok := authRoutes[r.URL.Path]; ok && m == r.Method {
		return true
	}

	if strings.HasPrefix(r.URL.Path, "/api/community/") && r.Method == http.MethodPost &&
		(strings.HasSuffix(r.URL.Path, "/join") || strings.HasSuffix(r.URL.Path, "/leave")) {
		return true
	}

	if strings.HasPrefix(r.URL.Path, "/api/post/") {
		if r.Method == http.MethodDelete {
			return true
		}
		for _, suffix := range protectedPostSuffixes {
			if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, suffix) {
				return true
			}
		}
	}

	return false
}

// Auth resolves the session for every request and attaches it to the
// context when valid. Routes that mutate state reject requests without a
// session; read routes pass through and let handlers treat the requester
// as anonymous.
func Auth(logger *zap.SugaredLogger, sm session.SessionManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sess, err := sm.Check(ctx, r)
		if err != nil {
			if !requiresAuth(r) {
				next.ServeHTTP(w, r)
				return
			}

			logger.Error(err.Error())
			w.Header().Set("Content-type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			errorBody, _ := json.Marshal(map[string]string{"message": "unauthorized"})
			w.Write(errorBody)

			return
		}

		reqCtx := context.WithValue(r.Context(), session.SessionKey, sess)

		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}
