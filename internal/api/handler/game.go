package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordscramble/internal/api/request"
	"github.com/mcoot/wordscramble/internal/api/response"
	"github.com/mcoot/wordscramble/internal/model"
	"github.com/mcoot/wordscramble/internal/services/game"
)

// GameHandler handles game endpoints
type GameHandler struct {
	controller *game.Controller
	logger     *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *game.Controller, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		controller: controller,
		logger:     logger,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.NewGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// SubmitWord handles POST /api/v1/games/{id}/words
func (h *GameHandler) SubmitWord(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	g, err := h.controller.SubmitWord(r.Context(), gameID(r), req.Word)
	if err != nil {
		if !errors.Is(err, model.ErrRejected) && !errors.Is(err, model.ErrGameNotFound) {
			h.logger.Error("submit word failed",
				slog.String("game_id", string(gameID(r))),
				slog.String("error", err.Error()),
			)
		}
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Restart handles POST /api/v1/games/{id}/restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.Restart(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.DeleteGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}
