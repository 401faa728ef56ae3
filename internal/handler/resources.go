package handler

import (
	"log/slog"
	"net/http"

	"github.com/hackbuddy/hackbuddy/internal/model"
	"github.com/hackbuddy/hackbuddy/internal/service"
)

type ResourcesHandler struct {
	resourcesService *service.ResourcesService
}

func NewResourcesHandler(resourcesService *service.ResourcesService) *ResourcesHandler {
	return &ResourcesHandler{resourcesService: resourcesService}
}

func (h *ResourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourcesService.Resources()
	if err != nil {
		slog.Error("failed to list resources", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list resources")
		return
	}
	if resources == nil {
		resources = []*model.Resource{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"resources": resources})
}

func (h *ResourcesHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	resource, err := h.resourcesService.Resource(slug)
	if err != nil {
		respondError(w, http.StatusNotFound, "resource not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"resource": resource})
}
