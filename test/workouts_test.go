package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/disciplinedaf/backend/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createWorkout(
	ctx context.Context, t *testing.T,
	token, name, date string,
) *workouts.Workout {
	req := authedReq(ctx, t, "POST", "/api/workouts/create", token, workouts.CreateWorkoutRequest{
		Name: name,
		Date: date,
	})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var workout workouts.Workout
	require.NoError(t, json.Unmarshal(respBytes, &workout))
	require.NotZero(t, workout.ID)
	return &workout
}

func addEntry(
	ctx context.Context, t *testing.T,
	token string, workoutID int,
	exerciseName string, setIndex, reps int, weight float64, rpe *float64,
) {
	req := authedReq(ctx, t, "POST", "/api/workouts/add-entry", token, workouts.AddEntryRequest{
		WorkoutID:    workoutID,
		ExerciseName: exerciseName,
		SetIndex:     setIndex,
		Reps:         reps,
		Weight:       weight,
		RPE:          rpe,
	})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestWorkouts_CreateAndList() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := signupRandomUser(ctx, t)

	createWorkout(ctx, t, token, "push day", "2026-08-20")
	createWorkout(ctx, t, token, "pull day", "2026-08-22")
	w3 := createWorkout(ctx, t, token, "leg day", "2026-08-21")

	addEntry(ctx, t, token, w3.ID, "Squat", 1, 5, 120, nil)
	addEntry(ctx, t, token, w3.ID, "Squat", 2, 5, 125, nil)

	req := authedReq(ctx, t, "GET", "/api/workouts/all", token, nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var listResp workouts.ListWorkoutsResponse
	require.NoError(t, json.Unmarshal(respBytes, &listResp))
	require.Equal(t, 3, listResp.Count)

	// newest first
	assert.Equal(t, "pull day", listResp.Workouts[0].Name)
	assert.Equal(t, "leg day", listResp.Workouts[1].Name)
	assert.Equal(t, "push day", listResp.Workouts[2].Name)

	entriesPath := fmt.Sprintf("/api/workouts/%d/entries", w3.ID)
	req = authedReq(ctx, t, "GET", entriesPath, token, nil)
	entriesResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer entriesResp.Body.Close()
	require.Equal(t, http.StatusOK, entriesResp.StatusCode)

	respBytes, err = io.ReadAll(entriesResp.Body)
	require.NoError(t, err)

	var entriesListResp workouts.ListEntriesResponse
	require.NoError(t, json.Unmarshal(respBytes, &entriesListResp))
	require.Equal(t, 2, entriesListResp.Count)
	assert.Equal(t, 1, entriesListResp.Entries[0].SetIndex)
	assert.Equal(t, "Squat", entriesListResp.Entries[0].ExerciseName)
}

func (s *IntegrationTestSuite) TestWorkouts_OtherUsersWorkoutsInvisible() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token1, _ := signupRandomUser(ctx, t)
	token2, _ := signupRandomUser(ctx, t)

	workout := createWorkout(ctx, t, token1, "private session", "2026-08-25")

	// second user cannot attach entries to it
	req := authedReq(ctx, t, "POST", "/api/workouts/add-entry", token2, workouts.AddEntryRequest{
		WorkoutID:    workout.ID,
		ExerciseName: "Deadlift",
		SetIndex:     1,
		Reps:         3,
		Weight:       180,
	})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// nor see it in the list
	req = authedReq(ctx, t, "GET", "/api/workouts/all", token2, nil)
	listResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	respBytes, err := io.ReadAll(listResp.Body)
	require.NoError(t, err)

	var list workouts.ListWorkoutsResponse
	require.NoError(t, json.Unmarshal(respBytes, &list))
	for _, w := range list.Workouts {
		assert.NotEqual(t, workout.ID, w.ID)
	}
}

func (s *IntegrationTestSuite) TestWorkouts_Unauthorized() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(
		ctx, "GET", serverEndpoint+"/api/workouts/all", nil,
	)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
