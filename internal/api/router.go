package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordscramble/internal/api/handler"
	apimiddleware "github.com/mcoot/wordscramble/internal/api/middleware"
	"github.com/mcoot/wordscramble/internal/api/response"
	"github.com/mcoot/wordscramble/internal/middleware"
	"github.com/mcoot/wordscramble/internal/services/game"
)

const apiPrefix = "/api/v1"

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
}

// NewRouter creates a new API router with all routes configured.
// Routes use full paths on the root router so a known path hit with the
// wrong method always reaches MethodNotAllowedHandler.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	r.Use(apimiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)

	// Game routes
	r.HandleFunc(apiPrefix+"/games", gameHandler.Create).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	r.HandleFunc(apiPrefix+"/games/{id}/words", gameHandler.SubmitWord).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/games/{id}/restart", gameHandler.Restart).Methods(http.MethodPost)

	// Health check endpoint
	r.HandleFunc(apiPrefix+"/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	handler.WriteError(w, handler.NewMethodNotAllowedError(r.Method))
}
