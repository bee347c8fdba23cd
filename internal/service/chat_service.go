package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hoos-helper/advisor-api/internal/llm"
	"github.com/hoos-helper/advisor-api/internal/models"
	appErrors "github.com/hoos-helper/advisor-api/pkg/errors"
)

type documentRetriever interface {
	Search(ctx context.Context, query string, k int) ([]models.DocumentMatch, error)
}

const chatSystemPrompt = `You are HoosHelper, an AI assistant for UVA students.
You help with course planning, academic questions, club recommendations, and general UVA information.

Be helpful, concise, and specific to UVA. Use the provided context to answer questions accurately.
If you don't know something, say so - don't make up information.

You can also help students modify their 4-year plans by understanding natural language commands like:
- "Add CS 2100 to my spring semester"
- "Remove MATH 1310 from year 2"
- "Move CS 3100 to fall of junior year"
`

// ChatService answers advising questions with retrieval-augmented
// generation: reference snippets are fetched for the latest question
// and handed to the model alongside it.
type ChatService struct {
	retriever documentRetriever
	generator llm.Generator
	retrieveK int
	logger    *zap.Logger
}

// NewChatService constructs a ChatService. A nil retriever disables
// retrieval; generation then runs without context.
func NewChatService(retriever documentRetriever, generator llm.Generator, retrieveK int, logger *zap.Logger) *ChatService {
	if retrieveK <= 0 {
		retrieveK = 4
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{retriever: retriever, generator: generator, retrieveK: retrieveK, logger: logger}
}

// Chat validates the conversation, retrieves context for the last user
// message, and generates a reply.
func (s *ChatService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no messages provided")
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != "user" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "last message must be from user")
	}
	if s.generator == nil {
		return nil, appErrors.Clone(appErrors.ErrUnavailable, "chat is not configured")
	}

	snippets := s.retrieve(ctx, last.Content)

	text, err := s.generator.Generate(ctx, llm.GenerateRequest{
		System:   chatSystemPrompt,
		Messages: []llm.Message{{Role: "user", Content: buildChatPrompt(last.Content, snippets)}},
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "chat generation failed")
	}

	return &models.ChatResponse{Message: text, Context: snippets}, nil
}

// retrieve degrades to an empty context on failure: a broken index
// should not take chat down with it.
func (s *ChatService) retrieve(ctx context.Context, query string) []models.ContextSnippet {
	if s.retriever == nil {
		return nil
	}

	matches, err := s.retriever.Search(ctx, query, s.retrieveK)
	if err != nil {
		s.logger.Warn("context retrieval failed", zap.Error(err))
		return nil
	}

	snippets := make([]models.ContextSnippet, 0, len(matches))
	for _, match := range matches {
		snippets = append(snippets, models.ContextSnippet{
			Content: match.Content,
			Source:  match.Source,
			Title:   match.Title,
		})
	}
	if len(snippets) == 0 {
		return nil
	}
	return snippets
}

func buildChatPrompt(query string, snippets []models.ContextSnippet) string {
	var builder strings.Builder

	builder.WriteString("Context from UVA resources:\n")
	for i, snippet := range snippets {
		if i > 0 {
			builder.WriteString("\n\n")
		}
		fmt.Fprintf(&builder, "Source: %s\n%s", snippet.Source, snippet.Content)
	}

	fmt.Fprintf(&builder, "\n\nStudent question: %s\n\nPlease provide a helpful response based on the context above.", query)

	return builder.String()
}
