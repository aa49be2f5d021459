package auth

import (
	"context"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

const TokenHeader = "X-Fitness-Token"

type authService interface {
	Register(ctx context.Context, creds Credentials) (*User, error)
	Login(ctx context.Context, creds Credentials) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	service authService
}

func NewHandler(service authService) *Handler {
	return &Handler{service: service}
}

// TokenFromRequest reads the session token from the custom header or a bearer Authorization header.
func TokenFromRequest(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}
	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var creds Credentials
	if err := pkg.DecodeJSONRequest(r, &creds); err != nil {
		http.Error(w, "invalid register request", http.StatusBadRequest)
		return
	}

	user, err := h.service.Register(ctx, creds)
	if err != nil {
		log.Errorf("register user [%s]: %s", creds.Username, err)
		errs.WriteHTTP(w, err, "failed to register")
		return
	}

	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var creds Credentials
	if err := pkg.DecodeJSONRequest(r, &creds); err != nil {
		http.Error(w, "invalid login request", http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(ctx, creds)
	if err != nil {
		log.Warnf("login [%s] failed: %s", creds.Username, err)
		errs.WriteHTTP(w, err, "failed to login")
		return
	}

	pkg.WriteJSON(w, LoginResponse{Token: token}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := TokenFromRequest(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.service.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		errs.WriteHTTP(w, err, "failed to logout")
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"status":"logged-out"}`)
}
