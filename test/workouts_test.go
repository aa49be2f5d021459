//go:build integration

package test

import (
	"fmt"
	"net/http"

	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/stats"
	"github.com/v-brkic/FitnessTrackingApp/internal/gymstats/workouts"
)

func (s *IntegrationTestSuite) TestWorkoutToStats() {
	token := s.registerAndLogin("workouts-user")

	req := map[string]any{
		"name":       "Push day",
		"difficulty": 3,
		"rows": []map[string]any{
			{"superset": false, "a": map[string]any{"name": "Bench", "group": "Chest", "sets": "3", "reps": "8", "weight": "80"}},
			{"superset": true,
				"a": map[string]any{"name": "Dips", "group": "Triceps", "sets": 3, "reps": 10},
				"b": map[string]any{"name": "Bike", "group": "Cardio", "minutes": 10},
			},
		},
	}
	var created workouts.Workout
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/workouts", token, req, &created))
	s.Require().Len(created.Exercises, 3)
	s.Require().NotNil(created.Exercises[1].SuperID)
	s.Equal(created.Exercises[1].SuperID, created.Exercises[2].SuperID)

	var rows []workouts.Row
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, fmt.Sprintf("/workouts/%d/rows", created.ID), token, nil, &rows))
	s.Require().Len(rows, 2)
	s.True(rows[1].Superset)

	var toggled workouts.ToggleResult
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost,
		fmt.Sprintf("/workouts/%d/exercises/0/toggle-done", created.ID), token, nil, &toggled))
	s.True(toggled.Workout.Exercises[0].Done)
	s.Require().NotNil(toggled.Log)

	// un-marking keeps the log
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost,
		fmt.Sprintf("/workouts/%d/exercises/0/toggle-done", created.ID), token, nil, &toggled))
	s.False(toggled.Workout.Exercises[0].Done)

	var logs []workouts.ExerciseLog
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/exercise-logs", token, nil, &logs))
	s.Require().Len(logs, 1)
	s.Equal("Bench", logs[0].ExerciseName)

	var resp stats.Response
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/stats?period=week", token, nil, &resp))
	s.Equal(1, resp.SessionCount)
	s.Equal(1, resp.TotalExercises)
	s.InDelta(1920.0, resp.Volume, 0.001)
	s.Equal(1, resp.StrengthCount)

	s.Equal(http.StatusNotFound, s.do(http.MethodPost,
		fmt.Sprintf("/workouts/%d/exercises/9/toggle-done", created.ID), token, nil, nil))
	s.Equal(http.StatusOK, s.do(http.MethodDelete, fmt.Sprintf("/workouts/%d", created.ID), token, nil, nil))
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, fmt.Sprintf("/workouts/%d", created.ID), token, nil, nil))
}

func (s *IntegrationTestSuite) TestBodyweight() {
	token := s.registerAndLogin("bodyweight-user")

	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/bodyweight", token,
		map[string]any{"kg": 81.4, "date": "2024-03-02"}, nil))
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/bodyweight", token,
		map[string]any{"weight": 82.0, "dateIso": "2024-03-01"}, nil))

	var entries []map[string]any
	s.Require().Equal(http.StatusOK, s.do(http.MethodGet, "/bodyweight", token, nil, &entries))
	s.Require().Len(entries, 2)
	s.Equal("2024-03-01", entries[0]["date"])
	s.Equal(82.0, entries[0]["kg"])
}
