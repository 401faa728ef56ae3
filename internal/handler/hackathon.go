package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hackbuddy/hackbuddy/internal/ctxkeys"
	"github.com/hackbuddy/hackbuddy/internal/model"
	"github.com/hackbuddy/hackbuddy/internal/repository"
	"github.com/hackbuddy/hackbuddy/internal/service"
)

type HackathonHandler struct {
	hackathonService *service.HackathonService
}

func NewHackathonHandler(hackathonService *service.HackathonService) *HackathonHandler {
	return &HackathonHandler{hackathonService: hackathonService}
}

func (h *HackathonHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	hackathons, err := h.hackathonService.ByUserID(user.ID)
	if err != nil {
		slog.Error("failed to list hackathons", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to list hackathons")
		return
	}
	if hackathons == nil {
		hackathons = []*model.Hackathon{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"hackathons": hackathons})
}

func (h *HackathonHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var hackathon model.Hackathon
	err := decodeJSON(r, &hackathon)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.hackathonService.Create(user.ID, &hackathon)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			respondError(w, http.StatusBadRequest, "title is required")
			return
		}
		slog.Error("failed to create hackathon", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create hackathon")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"hackathon": hackathon})
}

func (h *HackathonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	id := r.PathValue("id")

	err := h.hackathonService.Delete(user.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrHackathonNotFound) {
			respondError(w, http.StatusNotFound, "hackathon not found")
			return
		}
		if errors.Is(err, service.ErrNotOwner) {
			respondError(w, http.StatusForbidden, "not allowed")
			return
		}
		slog.Error("failed to delete hackathon", "error", err, "user_id", user.ID, "hackathon_id", id)
		respondError(w, http.StatusInternalServerError, "failed to delete hackathon")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
