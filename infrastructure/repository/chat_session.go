package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/autoworkz/senseiiwyze-dashboard/infrastructure/database/postgres"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/lib/pq"
)

const (
	chatSessionsTable = "chat_sessions cs"
)

//go:generate mockgen -source=chat_session.go -destination=mocks/chat_session_mock.go -package=mocks
type ChatSessionRepository interface {
	Save(ctx context.Context, session *domain.ChatSession) error
	GetByID(ctx context.Context, sessionID string) (*domain.ChatSession, error)
}

type chatSessionRepository struct {
	conn postgres.Conn
}

func NewChatSessionRepository(conn postgres.Conn) ChatSessionRepository {
	return &chatSessionRepository{
		conn: conn,
	}
}

// Save insere a sessão ou atualiza mensagens, status e last_message_at se ela já existir
func (r *chatSessionRepository) Save(ctx context.Context, session *domain.ChatSession) error {
	messages := session.Messages
	if messages == nil {
		messages = []domain.ChatMessage{}
	}

	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("error serializing messages to JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("chat_sessions").
		Columns("id", "company_id", "topic", "status", "messages", "created_at", "last_message_at").
		Values(
			session.ID,
			session.CompanyID,
			session.Topic,
			string(session.Status),
			messagesJSON,
			session.CreatedAt,
			session.LastMessageAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			messages = EXCLUDED.messages,
			status = EXCLUDED.status,
			last_message_at = EXCLUDED.last_message_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *chatSessionRepository) GetByID(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.company_id, cs.topic, cs.status, cs.messages, cs.created_at, cs.last_message_at").
		From(chatSessionsTable).
		Where(squirrel.Eq{"cs.id": sessionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	session := &domain.ChatSession{}
	var topic sql.NullString
	var status string
	var messagesJSON []byte

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.CompanyID,
		&topic,
		&status,
		&messagesJSON,
		&session.CreatedAt,
		&session.LastMessageAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning chat session: %w", err)
	}

	if topic.Valid {
		session.Topic = &topic.String
	}
	session.Status = domain.ChatSessionStatus(status)

	session.Messages = []domain.ChatMessage{}
	if len(messagesJSON) > 0 {
		if err := json.Unmarshal(messagesJSON, &session.Messages); err != nil {
			return nil, fmt.Errorf("error deserializing messages JSON: %w", err)
		}
	}

	return session, nil
}
