package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hackbuddy/hackbuddy/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.chatService.Reply(r.Context(), req.Message)
	if err != nil {
		slog.Error("chat reply failed", "error", err)
		respondError(w, http.StatusInternalServerError, "assistant unavailable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"response": reply})
}
