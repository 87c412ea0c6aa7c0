package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordscramble/internal/api"
	"github.com/mcoot/wordscramble/internal/api/apierr"
	"github.com/mcoot/wordscramble/internal/api/response"
	"github.com/mcoot/wordscramble/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)
	require.NoError(t, app.LoadWordLists(context.Background(), "", ""))
	// A single root keeps the game predictable
	require.NoError(t, app.WordSource.LoadWords([]string{"silkworm"}))

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	assert.Len(t, game.ID, 12)
	assert.Equal(t, "silkworm", game.RootWord)
	assert.Empty(t, game.Words)
	assert.NotNil(t, game.Words)
	assert.Equal(t, 0, game.Score)
	assert.Equal(t, "en", game.Language)
}

func TestGetGame(t *testing.T) {
	ts := newTestServer(t)
	id := createGame(t, ts)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	assert.Equal(t, id, game.ID)
}

func TestGetGameNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/NOPE", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeGameNotFound, decodeError(t, rr).Code)
}

func TestFullGameFlow(t *testing.T) {
	ts := newTestServer(t)
	id := createGame(t, ts)

	// Accept worms then silk
	game := submitWord(t, ts, id, "worms")
	assert.Equal(t, 5, game.Score)
	game = submitWord(t, ts, id, "SILK")
	assert.Equal(t, 9, game.Score)
	assert.Equal(t, []response.Word{
		{Word: "silk", Points: 4},
		{Word: "worms", Points: 5},
	}, game.Words)

	// Rejections come back as 422 with the reason
	rejections := map[string]string{
		"wor":      "too_short",
		"silkworm": "same_as_root",
		"worms":    "already_used",
		"wormss":   "not_derivable",
		"smilk":    "not_recognized",
	}
	for word, reason := range rejections {
		rr := ts.request(http.MethodPost, "/api/v1/games/"+id+"/words", map[string]string{"word": word})
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, word)
		apiErr := decodeError(t, rr)
		assert.Equal(t, apierr.CodeWordRejected, apiErr.Code, word)
		assert.Equal(t, reason, apiErr.Reason, word)
		assert.NotEmpty(t, apiErr.Title, word)
		assert.NotEmpty(t, apiErr.Message, word)
	}

	// Score unchanged by rejections
	rr := ts.request(http.MethodGet, "/api/v1/games/"+id, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var stored response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stored))
	assert.Equal(t, 9, stored.Score)
	assert.Len(t, stored.Words, 2)

	// Restart clears everything
	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/restart", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var restarted response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &restarted))
	assert.Equal(t, "silkworm", restarted.RootWord)
	assert.Empty(t, restarted.Words)
	assert.Equal(t, 0, restarted.Score)
	assert.Equal(t, 1, restarted.Restarts)

	// And the word is new again
	game = submitWord(t, ts, id, "worms")
	assert.Equal(t, 5, game.Score)
}

func TestSubmitWordRawLengthScoring(t *testing.T) {
	ts := newTestServer(t)
	id := createGame(t, ts)

	game := submitWord(t, ts, id, "  Worms ")
	assert.Equal(t, 8, game.Score)
	assert.Equal(t, []response.Word{{Word: "worms", Points: 5}}, game.Words)
}

func TestSubmitWordInvalidBody(t *testing.T) {
	ts := newTestServer(t)
	id := createGame(t, ts)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/games/"+id+"/words", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

func TestSubmitWordUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/NOPE/words", map[string]string{"word": "worms"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t)
	id := createGame(t, ts)

	rr := ts.request(http.MethodDelete, "/api/v1/games/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.request(http.MethodDelete, "/api/v1/games/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	id := createGame(t, ts)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/v1/games"},
		{http.MethodGet, "/api/v1/games"},
		{http.MethodPut, "/api/v1/games/" + id},
		{http.MethodPatch, "/api/v1/games/" + id},
		{http.MethodGet, "/api/v1/games/" + id + "/words"},
		{http.MethodDelete, "/api/v1/games/" + id + "/restart"},
		{http.MethodPost, "/api/v1/health"},
	}
	for _, tt := range tests {
		rr := ts.request(tt.method, tt.path, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, "%s %s", tt.method, tt.path)
		assert.Equal(t, apierr.CodeMethodNotAllowed, decodeError(t, rr).Code, "%s %s", tt.method, tt.path)
	}
}

func TestUnknownPathNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func createGame(t *testing.T, ts *testServer) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/games", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	return game.ID
}

func submitWord(t *testing.T, ts *testServer, id, word string) response.Game {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/games/"+id+"/words", map[string]string{"word": word})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	return game
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}
