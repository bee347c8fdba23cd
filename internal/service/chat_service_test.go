package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoos-helper/advisor-api/internal/models"
)

type retrieverMock struct {
	matches   []models.DocumentMatch
	err       error
	lastQuery string
	lastK     int
}

func (m *retrieverMock) Search(ctx context.Context, query string, k int) ([]models.DocumentMatch, error) {
	m.lastQuery = query
	m.lastK = k
	return m.matches, m.err
}

func TestChatServiceChat(t *testing.T) {
	retriever := &retrieverMock{
		matches: []models.DocumentMatch{{
			Document: models.Document{
				Source:  "https://advising.virginia.edu/faq",
				Title:   "Advising FAQ",
				Content: "CS 1110 is the introductory programming course.",
			},
			Rank: 0.42,
		}},
	}
	generator := &generatorMock{text: "Start with CS 1110."}
	svc := NewChatService(retriever, generator, 4, nil)

	resp, err := svc.Chat(context.Background(), models.ChatRequest{
		Messages: []models.ChatMessage{
			{Role: "assistant", Content: "How can I help?"},
			{Role: "user", Content: "Where do I start with CS?"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Start with CS 1110.", resp.Message)
	require.Len(t, resp.Context, 1)
	assert.Equal(t, "https://advising.virginia.edu/faq", resp.Context[0].Source)

	assert.Equal(t, "Where do I start with CS?", retriever.lastQuery)
	assert.Equal(t, 4, retriever.lastK)

	prompt := generator.lastReq.Messages[0].Content
	assert.Contains(t, prompt, "Context from UVA resources:")
	assert.Contains(t, prompt, "Source: https://advising.virginia.edu/faq")
	assert.Contains(t, prompt, "Student question: Where do I start with CS?")
	assert.Contains(t, generator.lastReq.System, "HoosHelper")
}

func TestChatServiceChatNoMessages(t *testing.T) {
	svc := NewChatService(nil, &generatorMock{}, 0, nil)

	_, err := svc.Chat(context.Background(), models.ChatRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no messages provided")
}

func TestChatServiceChatLastMessageNotUser(t *testing.T) {
	svc := NewChatService(nil, &generatorMock{}, 0, nil)

	_, err := svc.Chat(context.Background(), models.ChatRequest{
		Messages: []models.ChatMessage{{Role: "assistant", Content: "hello"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "last message must be from user")
}

func TestChatServiceChatDegradesWithoutRetrieval(t *testing.T) {
	retriever := &retrieverMock{err: errors.New("index offline")}
	generator := &generatorMock{text: "I can still help."}
	svc := NewChatService(retriever, generator, 0, nil)

	resp, err := svc.Chat(context.Background(), models.ChatRequest{
		Messages: []models.ChatMessage{{Role: "user", Content: "What clubs should I join?"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "I can still help.", resp.Message)
	assert.Empty(t, resp.Context)
}

func TestChatServiceChatGeneratorError(t *testing.T) {
	generator := &generatorMock{err: errors.New("rate limited")}
	svc := NewChatService(nil, generator, 0, nil)

	_, err := svc.Chat(context.Background(), models.ChatRequest{
		Messages: []models.ChatMessage{{Role: "user", Content: "hello"}},
	})

	assert.Error(t, err)
}
