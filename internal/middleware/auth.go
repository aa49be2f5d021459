package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/v-brkic/FitnessTrackingApp/internal/auth"
	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type authenticator interface {
	Authenticate(ctx context.Context, token string) (int64, error)
}

const livePathPrefix = "/live/"

type AuthMiddlewareHandler struct {
	authenticator authenticator
	allowedPaths  map[string]bool
}

func NewAuthMiddlewareHandler(authenticator authenticator) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		authenticator: authenticator,
		allowedPaths: map[string]bool{
			"/":       true,
			"/health": true,

			"/auth/register": true,
			"/auth/login":    true,
			"/auth/logout":   true,
		},
	}
}

// sessionToken also accepts ?token= on live streams, since EventSource
// cannot set request headers.
func sessionToken(r *http.Request) string {
	if token := auth.TokenFromRequest(r); token != "" {
		return token
	}
	if strings.HasPrefix(r.URL.Path, livePathPrefix) {
		return r.URL.Query().Get("token")
	}
	return ""
}

// AuthCheck resolves the session token into a user id stored in the request
// context. Live streams pass through without a user and get an empty stream.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			isLive := strings.HasPrefix(r.URL.Path, livePathPrefix)
			token := sessionToken(r)
			if token == "" {
				if isLive {
					span.SetStatus(codes.Ok, "live-anonymous")
					next.ServeHTTP(w, r)
					return
				}
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.authenticator.Authenticate(ctx, token)
			if err != nil {
				if !errors.Is(err, errs.ErrUnauthorized) {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
					span.RecordError(err)
				}
				if isLive {
					span.SetStatus(codes.Ok, "live-anonymous")
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), userID)))
		})
	}
}
