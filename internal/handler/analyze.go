package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hackbuddy/hackbuddy/internal/ai"
	"github.com/hackbuddy/hackbuddy/internal/ctxkeys"
	"github.com/hackbuddy/hackbuddy/internal/service"
)

// AnalyzeHandler exposes resume analysis as a callable endpoint:
// {cvUrl, userId} in, {analysis} out.
type AnalyzeHandler struct {
	analyzer service.ResumeAnalyzer
}

func NewAnalyzeHandler(analyzer service.ResumeAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

type analyzeRequest struct {
	CVURL  string `json:"cvUrl"`
	UserID string `json:"userId"`
}

func (h *AnalyzeHandler) AnalyzeCV(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req analyzeRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CVURL == "" {
		respondError(w, http.StatusBadRequest, "CV URL is required")
		return
	}
	if req.UserID == "" {
		req.UserID = user.ID
	}

	analysis, fromAI, err := h.analyzer.AnalyzeResume(r.Context(), req.CVURL, req.UserID)
	if err != nil {
		// Transport failure reaching the AI service; "responded oddly" never
		// lands here, it degrades to the placeholder instead
		slog.Error("cv analysis failed", "error", err, "user_id", req.UserID)
		if errors.Is(err, ai.ErrServiceUnavailable) {
			respondError(w, http.StatusInternalServerError, "analysis service unavailable")
			return
		}
		respondError(w, http.StatusInternalServerError, "an error occurred during CV analysis")
		return
	}

	slog.Info("analyzed cv", "user_id", req.UserID, "from_ai", fromAI)
	respondJSON(w, http.StatusOK, map[string]any{
		"analysis": analysis,
		"fromAI":   fromAI,
	})
}
