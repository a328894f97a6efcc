package chatting

import (
	"context"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
)

// Chatter agrupa o assistente de insights e o armazenamento de sessões de chat
//
//go:generate mockgen -source=interfaces.go -destination=mocks/chatter_mock.go -package=mocks
type Chatter interface {
	// ChatWithAI responde a mensagem com um dos pacotes de resposta pré-definidos
	ChatWithAI(request *domain.ChatRequest) *domain.ChatResponse

	// CreateChatSession cria e persiste uma nova sessão ativa para a empresa
	CreateChatSession(ctx context.Context, companyID string, topic *string) (*domain.ChatSession, error)

	// GetChatSession retorna a sessão ou nil quando ela não existe
	GetChatSession(ctx context.Context, sessionID string) (*domain.ChatSession, error)

	// GetChatHistory retorna as mensagens da sessão; sessão desconhecida resulta em lista vazia
	GetChatHistory(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
}
