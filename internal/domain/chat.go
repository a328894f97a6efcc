package domain

import "time"

type ChatSessionStatus string

const (
	ChatSessionStatusActive ChatSessionStatus = "active"
	ChatSessionStatusClosed ChatSessionStatus = "closed"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" ou "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatSession struct {
	ID            string            `json:"id"`
	CompanyID     string            `json:"company_id"`
	CreatedAt     time.Time         `json:"created_at"`
	LastMessageAt time.Time         `json:"last_message_at"`
	Messages      []ChatMessage     `json:"messages"`
	Status        ChatSessionStatus `json:"status"`
	Topic         *string           `json:"topic,omitempty"`
}

type ChatRequest struct {
	SessionID string         `json:"session_id"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
}

type ChatResponse struct {
	Message           string   `json:"message"`
	SuggestedActions  []string `json:"suggested_actions"`
	RelatedInsights   []string `json:"related_insights"`
	FollowUpQuestions []string `json:"follow_up_questions"`
}

type CreateChatSessionRequest struct {
	CompanyID string  `json:"company_id"`
	Topic     *string `json:"topic,omitempty"`
}
