package test

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/disciplinedaf/backend/internal/nutrition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) downloadExport(
	ctx context.Context, token, query string,
) (*http.Response, string) {
	t := s.T()
	req := authedReq(ctx, t, "GET", "/api/export/download"+query, token, nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (s *IntegrationTestSuite) TestExport_Download() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := signupRandomUser(ctx, t)

	w := createWorkout(ctx, t, token, "export, with comma", "2026-08-15")
	addEntry(ctx, t, token, w.ID, "Row", 1, 8, 70, nil)

	calories := 2100.0
	req := authedReq(ctx, t, "POST", "/api/nutrition/add", token, nutrition.AddLogRequest{
		Date:     "2026-08-15",
		Calories: &calories,
		Micros:   map[string]float64{"zinc": 11},
	})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	exportResp, body := s.downloadExport(ctx, token, "")
	require.Equal(t, http.StatusOK, exportResp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", exportResp.Header.Get("Content-Type"))
	assert.Contains(t, exportResp.Header.Get("Content-Disposition"), "diciplinedaf_export_all_")
	assert.Contains(t, exportResp.Header.Get("Content-Disposition"), ".csv")

	// all three sections, in order
	workoutsIdx := strings.Index(body, `"WORKOUTS"`)
	nutritionIdx := strings.Index(body, `"NUTRITION"`)
	progressIdx := strings.Index(body, `"PROGRESS"`)
	require.NotEqual(t, -1, workoutsIdx)
	require.NotEqual(t, -1, nutritionIdx)
	require.NotEqual(t, -1, progressIdx)
	assert.Less(t, workoutsIdx, nutritionIdx)
	assert.Less(t, nutritionIdx, progressIdx)

	// every cell quoted, commas in values stay inside their cell
	assert.Contains(t, body, `"export, with comma"`)
	assert.Contains(t, body, `"2100"`)
	assert.Contains(t, body, `{""zinc"":11}`)
}

func (s *IntegrationTestSuite) TestExport_SingleCategory() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := signupRandomUser(ctx, t)
	createWorkout(ctx, t, token, "solo session", "2026-08-16")

	exportResp, body := s.downloadExport(ctx, token, "?type=workouts")
	require.Equal(t, http.StatusOK, exportResp.StatusCode)
	assert.Contains(t, exportResp.Header.Get("Content-Disposition"), "diciplinedaf_export_workouts_")

	assert.Contains(t, body, `"WORKOUTS"`)
	assert.NotContains(t, body, `"NUTRITION"`)
	assert.NotContains(t, body, `"PROGRESS"`)
	assert.Contains(t, body, `"solo session"`)
}

func (s *IntegrationTestSuite) TestExport_UnknownType() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := signupRandomUser(ctx, t)

	exportResp, _ := s.downloadExport(ctx, token, "?type=spreadsheets")
	assert.Equal(t, http.StatusBadRequest, exportResp.StatusCode)
}
