package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoos-helper/advisor-api/internal/models"
	appErrors "github.com/hoos-helper/advisor-api/pkg/errors"
	"github.com/hoos-helper/advisor-api/pkg/response"
)

type chatService interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// ChatHandler exposes the advising chat endpoint.
type ChatHandler struct {
	service chatService
}

// NewChatHandler constructs a chat handler.
func NewChatHandler(svc chatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// Chat godoc
// @Summary Chat with the advising assistant
// @Description Retrieval-augmented chat over scraped reference documents
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body models.ChatRequest true "Conversation payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chat payload"))
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reply, nil)
}
