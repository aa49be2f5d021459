package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/v-brkic/FitnessTrackingApp/internal/errs"
	"github.com/v-brkic/FitnessTrackingApp/internal/telemetry/tracing"
	"github.com/v-brkic/FitnessTrackingApp/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=auth_test

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitness-session||"

	minPasswordLength = 6
)

var (
	ErrWrongCredentials = fmt.Errorf("wrong username or password: %w", errs.ErrUnauthorized)
	ErrInvalidToken     = fmt.Errorf("invalid token: %w", errs.ErrUnauthorized)
)

type usersRepo interface {
	Create(ctx context.Context, username, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenConfig struct {
	Secret string
	Issuer string
}

// Service registers users and manages login sessions. A session token is a
// signed JWT; its id is kept in redis for the session TTL so logout can
// revoke it before expiry.
type Service struct {
	users       usersRepo
	redisClient *redis.Client
	tokenConfig TokenConfig
	ttl         time.Duration
	bcryptCost  int

	// injectable for unit and dev testing
	NowFunc       func() time.Time
	SessionIDFunc func() string
}

func NewService(
	users usersRepo,
	redisClient *redis.Client,
	tokenConfig TokenConfig,
	ttl time.Duration,
	bcryptCost int,
) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		users:         users,
		redisClient:   redisClient,
		tokenConfig:   tokenConfig,
		ttl:           ttl,
		bcryptCost:    bcryptCost,
		NowFunc:       time.Now,
		SessionIDFunc: uuid.NewString,
	}
}

func (s *Service) Register(ctx context.Context, creds Credentials) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username := strings.TrimSpace(creds.Username)
	if username == "" {
		return nil, errs.Validation("username", "required")
	}
	if len(creds.Password) < minPasswordLength {
		return nil, errs.Validation("password", fmt.Sprintf("must have at least %d characters", minPasswordLength))
	}

	hash, err := pkg.HashPassword(creds.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, username, hash)
}

func (s *Service) Login(ctx context.Context, creds Credentials) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(creds.Username))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", ErrWrongCredentials
		}
		return "", err
	}
	if !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		return "", ErrWrongCredentials
	}

	now := s.NowFunc()
	sessionID := s.SessionIDFunc()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   strconv.FormatInt(user.ID, 10),
		Issuer:    s.tokenConfig.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.tokenConfig.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	if err := s.redisClient.Set(ctx, sessionKeyPrefix+sessionID, user.ID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	log.Debugf("user %d logged in, session %s", user.ID, sessionID)
	return token, nil
}

// Logout revokes the session behind token. It reports whether a live session was removed.
func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	claims, err := s.parse(token)
	if err != nil {
		return false, err
	}

	deleted, err := s.redisClient.Del(ctx, sessionKeyPrefix+claims.ID).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return deleted > 0, nil
}

// Authenticate validates token and returns the id of the logged-in user.
func (s *Service) Authenticate(ctx context.Context, token string) (int64, error) {
	claims, err := s.parse(token)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidToken
	}

	storedID, err := s.redisClient.Get(ctx, sessionKeyPrefix+claims.ID).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// logged out or expired
			return 0, errs.ErrUnauthorized
		}
		return 0, fmt.Errorf("get session: %w", err)
	}
	if storedID != userID {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func (s *Service) parse(token string) (*jwt.RegisteredClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(s.tokenConfig.Secret), nil
	},
		jwt.WithIssuer(s.tokenConfig.Issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.NowFunc),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
