// internal/handlers/chat.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-backend/internal/i18n"
	"github.com/javajoker/shopsmart-backend/internal/services"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// POST /v1/chat
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req services.ChatRequest
	if !bindJSON(c, &req) {
		return
	}

	reply, err := h.chatService.Reply(req.Message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			utils.WarningResponse(c, http.StatusBadRequest, "EMPTY_MESSAGE", i18n.KeyChatEmptyMessage)
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, reply)
}
