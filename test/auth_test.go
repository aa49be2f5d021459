//go:build integration

package test

import (
	"net/http"

	"github.com/v-brkic/FitnessTrackingApp/internal/auth"
	pkgtesting "github.com/v-brkic/FitnessTrackingApp/pkg/testing"
)

const sessionKeyPattern = "fitness-session||*"

func (s *IntegrationTestSuite) TestAuthFlow() {
	ctx, rdb := pkgtesting.GetRedisClientAndCtx(s.T(), s.redisPort)

	token := s.registerAndLogin("auth-flow")
	sessions, err := rdb.Keys(ctx, sessionKeyPattern).Result()
	s.Require().NoError(err)
	s.Require().NotEmpty(sessions)

	creds := auth.Credentials{Username: "auth-flow", Password: "other-pass"}
	s.Equal(http.StatusConflict, s.do(http.MethodPost, "/auth/register", "", creds, nil))
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/auth/login", "", creds, nil))

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/workouts", token, nil, nil))
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/auth/logout", token, nil, nil))
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/workouts", token, nil, nil))

	afterLogout, err := rdb.Keys(ctx, sessionKeyPattern).Result()
	s.Require().NoError(err)
	s.Len(afterLogout, len(sessions)-1)
}
