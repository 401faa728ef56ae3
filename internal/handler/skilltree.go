package handler

import (
	"net/http"

	"github.com/hackbuddy/hackbuddy/internal/skilltree"
)

type SkillTreeHandler struct{}

func NewSkillTreeHandler() *SkillTreeHandler {
	return &SkillTreeHandler{}
}

func (h *SkillTreeHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, skilltree.Get())
}
