package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoos-helper/advisor-api/internal/models"
	appErrors "github.com/hoos-helper/advisor-api/pkg/errors"
)

type chatServiceMock struct {
	resp    *models.ChatResponse
	err     error
	lastReq models.ChatRequest
}

func (m *chatServiceMock) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

func TestChatHandlerChat(t *testing.T) {
	mockSvc := &chatServiceMock{
		resp: &models.ChatResponse{
			Message: "CS 1110 is the usual starting point.",
			Context: []models.ContextSnippet{{Source: "https://advising.virginia.edu/faq", Title: "Advising FAQ", Content: "..."}},
		},
	}
	handler := NewChatHandler(mockSvc)

	w, c := postJSON(t, `{"messages":[{"role":"user","content":"Where do I start with CS?"}]}`)
	handler.Chat(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CS 1110 is the usual starting point.")
	require.Len(t, mockSvc.lastReq.Messages, 1)
	assert.Equal(t, "user", mockSvc.lastReq.Messages[0].Role)
}

func TestChatHandlerChatInvalidBody(t *testing.T) {
	handler := NewChatHandler(&chatServiceMock{})

	w, c := postJSON(t, `{"messages":`)
	handler.Chat(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandlerChatEmptyConversation(t *testing.T) {
	mockSvc := &chatServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "no messages provided")}
	handler := NewChatHandler(mockSvc)

	w, c := postJSON(t, `{"messages":[]}`)
	handler.Chat(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no messages provided")
}
