package test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/disciplinedaf/backend/internal/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seeds two bench press workouts: 2026-08-10 with a heavy top set,
// 2026-08-12 with a higher volume set
func seedBenchPressWorkouts(ctx context.Context, t *testing.T, token string) {
	rpe1 := 9.0
	w1 := createWorkout(ctx, t, token, "bench heavy", "2026-08-10")
	addEntry(ctx, t, token, w1.ID, "Bench Press", 1, 5, 100, &rpe1)
	addEntry(ctx, t, token, w1.ID, "Bench Press", 2, 5, 95, nil)

	w2 := createWorkout(ctx, t, token, "bench volume", "2026-08-12")
	addEntry(ctx, t, token, w2.ID, "Bench Press", 1, 10, 60, nil)
}

func (s *IntegrationTestSuite) TestProgress_ExerciseTrend() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := signupRandomUser(ctx, t)
	seedBenchPressWorkouts(ctx, t, token)

	path := "/api/metrics/exercise/" + url.PathEscape("Bench Press") +
		"/trends?from=2026-08-01&to=2026-08-31"
	req := authedReq(ctx, t, "GET", path, token, nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var trend progress.Trend
	require.NoError(t, json.Unmarshal(respBytes, &trend))
	assert.Equal(t, "Bench Press", trend.Exercise)
	require.Len(t, trend.Points, 2)

	// oldest first
	assert.Equal(t, "2026-08-10", trend.Points[0].Date)
	assert.Equal(t, 2, trend.Points[0].SetsCount)
	assert.Equal(t, float64(5*100+5*95), trend.Points[0].TotalVolume)

	assert.Equal(t, "2026-08-12", trend.Points[1].Date)
	assert.Equal(t, 1, trend.Points[1].SetsCount)
	assert.Equal(t, float64(10*60), trend.Points[1].TotalVolume)
}

func (s *IntegrationTestSuite) TestProgress_PersonalRecords() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := signupRandomUser(ctx, t)
	seedBenchPressWorkouts(ctx, t, token)

	path := "/api/metrics/exercise/" + url.PathEscape("Bench Press") + "/prs"
	req := authedReq(ctx, t, "GET", path, token, nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var prs progress.PersonalRecords
	require.NoError(t, json.Unmarshal(respBytes, &prs))

	require.NotNil(t, prs.BestWeightSet)
	assert.Equal(t, 100.0, prs.BestWeightSet.Weight)
	assert.Equal(t, 5, prs.BestWeightSet.Reps)

	require.NotNil(t, prs.BestVolumeSet)
	assert.Equal(t, 600.0, prs.BestVolumeSet.Volume)
	assert.Equal(t, 10, prs.BestVolumeSet.Reps)
}

func (s *IntegrationTestSuite) TestProgress_PersonalRecordsUnknownExercise() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := signupRandomUser(ctx, t)

	req := authedReq(ctx, t, "GET", "/api/metrics/exercise/Snatch/prs", token, nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var prs progress.PersonalRecords
	require.NoError(t, json.Unmarshal(respBytes, &prs))
	assert.Nil(t, prs.BestWeightSet)
	assert.Nil(t, prs.BestVolumeSet)
}

func (s *IntegrationTestSuite) TestProgress_Summary() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := signupRandomUser(ctx, t)
	seedBenchPressWorkouts(ctx, t, token)

	req := authedReq(
		ctx, t, "GET",
		"/api/metrics/summary?from=2026-08-01&to=2026-08-31",
		token, nil,
	)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var summary progress.Summary
	require.NoError(t, json.Unmarshal(respBytes, &summary))
	assert.Equal(t, 2, summary.WorkoutCount)
	assert.Equal(t, 3, summary.SetsCount)
	assert.Equal(t, float64(500+475+600), summary.TotalVolume)
}
