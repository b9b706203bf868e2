package app

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/lifeos/lifeos/internal/config"
	"github.com/lifeos/lifeos/pkg/user"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Propagate X-User-Id header into context for downstream services.
	// Authentication happens in front of this service; an absent header just
	// means the remote mirror is skipped.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			uid := req.Header.Get("X-User-Id")
			if uid != "" {
				log.Debugf("request for user %s", uid)
				displayName := req.Header.Get("X-User-Name")
				ctx = user.WithUser(ctx, user.User{Uid: uid, DisplayName: displayName})
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
