package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/disciplinedaf/backend/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestSignupAndLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, user := signupRandomUser(ctx, t)
	require.NotEmpty(t, token)

	// same email again - conflict
	signupReq := users.SignupRequest{
		Email:    user.Email,
		Password: testPassword,
	}
	signupReqJson, err := json.Marshal(signupReq)
	require.NoError(t, err)
	req, err := http.NewRequestWithContext(
		ctx, "POST",
		fmt.Sprintf("%s/api/auth/signup", serverEndpoint),
		bytes.NewBuffer(signupReqJson),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	cases := map[string]struct {
		loginReq           users.LoginRequest
		expectedStatusCode int
	}{
		"good creds": {
			loginReq: users.LoginRequest{
				Email:    user.Email,
				Password: testPassword,
			},
			expectedStatusCode: http.StatusOK,
		},
		"wrong password": {
			loginReq: users.LoginRequest{
				Email:    user.Email,
				Password: "not-the-password",
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		"unknown email": {
			loginReq: users.LoginRequest{
				Email:    "nobody@disciplinedaf.app",
				Password: testPassword,
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for name, tc := range cases {
		loginReqJson, err := json.Marshal(tc.loginReq)
		require.NoError(t, err)

		req, err := http.NewRequestWithContext(
			ctx, "POST",
			fmt.Sprintf("%s/api/auth/login", serverEndpoint),
			bytes.NewBuffer(loginReqJson),
		)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, tc.expectedStatusCode, resp.StatusCode, name)
		require.NoError(t, resp.Body.Close())
	}
}

func (s *IntegrationTestSuite) TestLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := signupRandomUser(ctx, t)

	req := authedReq(ctx, t, "GET", "/api/auth/logout", token, nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// token now stale, protected endpoint refuses it
	req = authedReq(ctx, t, "GET", "/api/auth/profile", token, nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestUpdateProfile() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := signupRandomUser(ctx, t)

	name := "Maya"
	weight := 63.5
	bodyGoal := "recomp"
	updateReq := users.Profile{
		Name:     &name,
		Weight:   &weight,
		BodyGoal: &bodyGoal,
	}

	req := authedReq(ctx, t, "PUT", "/api/auth/profile", token, updateReq)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = authedReq(ctx, t, "GET", "/api/auth/profile", token, nil)
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	respBytes, err := io.ReadAll(resp2.Body)
	require.NoError(t, err)

	var profileResp users.ProfileResponse
	require.NoError(t, json.Unmarshal(respBytes, &profileResp))
	require.NotNil(t, profileResp.User)
	require.NotNil(t, profileResp.User.Name)
	assert.Equal(t, "Maya", *profileResp.User.Name)
	require.NotNil(t, profileResp.User.Weight)
	assert.Equal(t, 63.5, *profileResp.User.Weight)
}
