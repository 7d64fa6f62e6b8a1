package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/gameplayers/internal/api/request"
	"github.com/mcoot/gameplayers/internal/api/response"
	"github.com/mcoot/gameplayers/internal/model"
	"github.com/mcoot/gameplayers/internal/services/player"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	service *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(service *player.Service) *PlayerHandler {
	return &PlayerHandler{
		service: service,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := request.ParseListQuery(r.URL.Query())
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.service.List(r.Context(), params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.WritePlayers(w, players)
}

// Count handles GET /api/v1/players/count
func (h *PlayerHandler) Count(w http.ResponseWriter, r *http.Request) {
	criteria, err := request.ParseCriteria(r.URL.Query())
	if err != nil {
		WriteError(w, err)
		return
	}

	count, err := h.service.Count(r.Context(), criteria)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, count)
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodePlayerRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToInput())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.WritePlayer(w, created)
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := playerIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.WritePlayer(w, p)
}

// Update handles POST and PATCH /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := playerIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := decodePlayerRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var patch model.PlayerInput
	if in := req.ToInput(); in != nil {
		patch = *in
	}

	updated, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.WritePlayer(w, updated)
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := playerIDFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.WritePlayer(w, deleted)
}

// decodePlayerRequest reads the JSON body. A literal null decodes to a nil request.
func decodePlayerRequest(r *http.Request) (*request.PlayerRequest, error) {
	var req *request.PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, NewInvalidRequestError("request body is required")
		}
		return nil, NewInvalidRequestError("invalid request body")
	}
	return req, nil
}

func playerIDFromPath(r *http.Request) (model.PlayerID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, model.NewFieldError("id", "must be a positive integer")
	}
	return model.PlayerID(id), nil
}
