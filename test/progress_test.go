//go:build integration

package test

import (
	"net/http"

	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/progress"
)

func (s *IntegrationTestSuite) TestProgress() {
	token := s.registerAndLogin("progress-user")

	for _, set := range []map[string]any{
		{"lift": "bench", "weight": 100, "reps": 5, "date": "2024-01-01"},
		{"lift": "bench", "weight": 105, "reps": 3, "date": "2024-01-03"},
		{"lift": "squat", "weight": 140, "reps": 5, "date": "2024-01-09"},
	} {
		s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/progress/lifts", token, set, nil))
	}
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/progress/lifts", token,
		map[string]any{"lift": "curl", "weight": 20, "reps": 10, "date": "2024-01-01"}, nil))

	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/progress/runs", token,
		map[string]any{"time": "21:30", "date": "2024-01-08"}, nil))
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/progress/runs", token,
		map[string]any{"time": "", "date": "2024-01-08"}, nil))

	var sets []progress.LiftSet
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/progress/lifts?lift=bench", token, nil, &sets))
	s.Len(sets, 2)

	var volume []progress.WeeklyVolumePoint
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/progress/volume", token, nil, &volume))
	s.Require().Len(volume, 2)
	s.Equal("2024-01-01", volume[0].WeekStart)
	s.InDelta(815.0, volume[0].Volume, 0.001)

	var bests progress.PersonalBests
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/progress/bests", token, nil, &bests))
	s.Require().NotNil(bests.FiveK)
	s.Equal(1290, bests.FiveK.Seconds)
	s.Equal("21:30", bests.FiveK.Formatted)
	s.Require().Contains(bests.Lifts, progress.LiftSquat)
	s.InDelta(163.3, bests.Lifts[progress.LiftSquat].Value, 0.001)

	// other users never see these records
	otherToken := s.registerAndLogin("progress-other")
	var otherSets []progress.LiftSet
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/progress/lifts", otherToken, nil, &otherSets))
	s.Empty(otherSets)
}
