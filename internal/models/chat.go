package models

// ChatMessage is one turn of the advising conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest is the advising chat payload.
type ChatRequest struct {
	Messages  []ChatMessage `json:"messages"`
	SessionID string        `json:"sessionId,omitempty"`
}

// ContextSnippet is one retrieved reference passage supplied to the
// model and echoed back to the client.
type ContextSnippet struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Title   string `json:"title"`
}

// ChatResponse carries the generated answer plus the snippets it was
// grounded on, when any were found.
type ChatResponse struct {
	Message string           `json:"message"`
	Context []ContextSnippet `json:"context,omitempty"`
}
