package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cbodonnell/moralmaze/pkg/api/middleware"
	"github.com/cbodonnell/moralmaze/pkg/game"
	"github.com/cbodonnell/moralmaze/pkg/messages"
	"github.com/cbodonnell/moralmaze/pkg/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	repo, err := repositories.NewFileRepository(filepath.Join(t.TempDir(), "profile.json"))
	require.NoError(t, err)
	seed := int64(11)
	session, err := game.NewSessionController(context.Background(), game.NewSessionControllerOptions{
		Settings:   game.Settings{Width: 8, Height: 6, Seed: &seed},
		Repository: repo,
	})
	require.NoError(t, err)
	return NewRouter(NewAPIServerOptions{Session: session, AllowedOrigin: "http://localhost:3000"})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Ping(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_GetState(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, rec.Code)

	state := &messages.StateView{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), state))
	assert.Equal(t, 10, state.Age)
	assert.Equal(t, 100, state.HeroHealth)
	assert.NotEmpty(t, state.ActiveDecisions)
}

func TestRouter_Errors(t *testing.T) {
	h := newTestRouter(t)
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantKind   string
		wantReason string
	}{
		{
			name:       "validation",
			method:     http.MethodPost,
			path:       "/api/player/move",
			body:       `{"x":-5,"y":0}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
			wantReason: "invalid_step",
		},
		{
			name:       "resource exhausted",
			method:     http.MethodPost,
			path:       "/api/ally/freeze/hit",
			wantStatus: http.StatusTooManyRequests,
			wantKind:   "resource_exhausted",
			wantReason: "no_charges",
		},
		{
			name:       "stale reference",
			method:     http.MethodPost,
			path:       "/api/decision/submit",
			body:       `{"question_id":"missing","choice_id":0}`,
			wantStatus: http.StatusConflict,
			wantKind:   "stale_reference",
			wantReason: "question_not_found",
		},
		{
			name:       "malformed json",
			method:     http.MethodPost,
			path:       "/api/player/jump",
			body:       `{"direction":`,
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
			wantReason: "malformed_request",
		},
		{
			name:       "missing body",
			method:     http.MethodPost,
			path:       "/api/player/move",
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
			wantReason: "malformed_request",
		},
		{
			name:       "partial escape position",
			method:     http.MethodPost,
			path:       "/api/hero/escape",
			body:       `{"x":1}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
			wantReason: "malformed_request",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			body := &messages.ErrorBody{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), body))
			assert.Equal(t, tt.wantKind, body.Error.Kind)
			assert.Equal(t, tt.wantReason, body.Error.Reason)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestRouter_Routing(t *testing.T) {
	h := newTestRouter(t)
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "preflight", method: http.MethodOptions, path: "/api/player/move", wantStatus: http.StatusNoContent},
		{name: "unknown route", method: http.MethodGet, path: "/api/nowhere", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodGet, path: "/api/player/move", wantStatus: http.StatusMethodNotAllowed},
		{name: "no stream configured", method: http.MethodGet, path: "/api/stream", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_DecisionRoundTrip(t *testing.T) {
	h := newTestRouter(t)

	state := &messages.StateView{}
	require.NoError(t, json.Unmarshal(do(t, h, http.MethodGet, "/api/state", "").Body.Bytes(), state))
	node := state.ActiveDecisions[0]

	body, err := json.Marshal(messages.PositionRequest{X: node.X, Y: node.Y})
	require.NoError(t, err)
	rec := do(t, h, http.MethodPost, "/api/decision/start", string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	started := &messages.StartDecisionResult{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), started))

	rec = do(t, h, http.MethodPost, "/api/decision/start", string(body))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/decision/submit", `{"question_id":"`+started.Question.ID+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/decision/submit", `{"question_id":"`+started.Question.ID+`","choice_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	submitted := &messages.SubmitDecisionResult{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), submitted))
	assert.Equal(t, started.Question.ID, submitted.Question.ID)
	assert.Equal(t, 0, submitted.State.PendingDecisions)

	timeline := &messages.TimelineResult{}
	require.NoError(t, json.Unmarshal(do(t, h, http.MethodGet, "/api/timeline", "").Body.Bytes(), timeline))
	assert.Equal(t, 1, timeline.Summary.Decisions)
}
