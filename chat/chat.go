// Package chat implements the buddy conversation mode and the assistant
// message envelope shared by all chat modes.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"broobot/llm"
)

// MessageResponse is the assistant message envelope returned to clients.
type MessageResponse struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Mode      string         `json:"mode"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewMessageResponse wraps assistant content in the standard envelope.
func NewMessageResponse(content, mode string, metadata map[string]any) MessageResponse {
	return MessageResponse{
		ID:        newMessageID(),
		Role:      "assistant",
		Content:   content,
		Timestamp: time.Now().UTC(),
		Mode:      mode,
		Metadata:  metadata,
	}
}

// newMessageID generates a unique message ID (msg_<unixms>_<suffix>).
func newMessageID() string {
	return fmt.Sprintf("msg_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Response bundles the assistant message with session and usage accounting.
type Response struct {
	Message   MessageResponse `json:"message"`
	SessionID string          `json:"sessionId,omitempty"`
	Usage     llm.Usage       `json:"usage"`
	Cost      float64         `json:"cost"`
}

// Buddy handles general-assistant conversations. A nil completer runs the
// mode entirely on canned mock responses, as does a rate-limited provider.
type Buddy struct {
	completer llm.Completer
}

// NewBuddy creates the buddy mode handler. Pass a nil completer for
// mock-only operation.
func NewBuddy(completer llm.Completer) *Buddy {
	return &Buddy{completer: completer}
}

// Handle answers the conversation. Rate limiting falls back to a mock
// response immediately; any other provider failure is returned to the
// caller.
func (b *Buddy) Handle(ctx context.Context, messages []llm.Message, userID, sessionID string) (*Response, error) {
	if b.completer == nil {
		return b.mockResponse(messages, sessionID), nil
	}

	completion, err := b.completer.Complete(ctx, systemPrompt(userID), messages)
	if err != nil {
		if errors.Is(err, llm.ErrRateLimited) {
			slog.Warn("buddy mode rate limited, falling back to mock", "user", userID)
			return b.mockResponse(messages, sessionID), nil
		}
		return nil, fmt.Errorf("buddy completion: %w", err)
	}

	cost := completion.Cost()
	slog.Info("buddy request completed",
		"user", userID,
		"tokens", completion.Usage.InputTokens+completion.Usage.OutputTokens,
		"cost", cost)

	return &Response{
		Message: NewMessageResponse(completion.Text, "buddy", map[string]any{
			"model": completion.Model,
			"usage": completion.Usage,
		}),
		SessionID: sessionID,
		Usage:     completion.Usage,
		Cost:      cost,
	}, nil
}

func (b *Buddy) mockResponse(messages []llm.Message, sessionID string) *Response {
	lastMessage := ""
	if len(messages) > 0 {
		lastMessage = messages[len(messages)-1].Content
	}

	return &Response{
		Message: NewMessageResponse(mockReply(lastMessage), "buddy", map[string]any{
			"model":  "mock",
			"isMock": true,
		}),
		SessionID: sessionID,
	}
}

func systemPrompt(userID string) string {
	return fmt.Sprintf(`You are BrooBot, a friendly and helpful AI assistant created to help users with a wide variety of tasks.

Your personality:
- Friendly, approachable, and conversational
- Professional but not overly formal
- Patient and helpful
- Clear and concise in explanations

Your capabilities:
- General conversation and questions
- Writing assistance (essays, articles, emails, creative writing)
- Coding help (debugging, explanations, code generation)
- Problem-solving and brainstorming
- Learning support and tutoring

Guidelines:
- Be conversational and natural
- Provide clear, well-structured answers
- Ask clarifying questions when needed
- Use appropriate formatting (markdown, code blocks, lists)

Remember: You're a helpful buddy, not just a search engine. Engage meaningfully with the user.

User ID: %s`, userID)
}
