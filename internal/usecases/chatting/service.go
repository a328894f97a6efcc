package chatting

import (
	"context"
	"time"

	"github.com/autoworkz/senseiiwyze-dashboard/infrastructure/repository"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/apiErrors"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Service struct {
	sessionRepository repository.ChatSessionRepository
	now               func() time.Time
	idGenerator       func() string
}

func NewService(sessionRepository repository.ChatSessionRepository) Chatter {
	return &Service{
		sessionRepository: sessionRepository,
		now:               time.Now,
		idGenerator:       uuid.NewString,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithIDGenerator(generator func() string) *Service {
	s.idGenerator = generator
	return s
}

func (s *Service) ChatWithAI(request *domain.ChatRequest) *domain.ChatResponse {
	response := Respond(request.Message)

	logrus.WithFields(logrus.Fields{
		"session_id":       request.SessionID,
		"related_insights": response.RelatedInsights,
	}).Debug("chat: response selected")

	return response
}

// CreateChatSession gera o ID no formato chat-{company_id}-{uuid}
func (s *Service) CreateChatSession(ctx context.Context, companyID string, topic *string) (*domain.ChatSession, error) {
	if companyID == "" {
		return nil, NewChatError(ErrCompanyIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	now := s.now()
	session := &domain.ChatSession{
		ID:            "chat-" + companyID + "-" + s.idGenerator(),
		CompanyID:     companyID,
		CreatedAt:     now,
		LastMessageAt: now,
		Messages:      []domain.ChatMessage{},
		Status:        domain.ChatSessionStatusActive,
		Topic:         topic,
	}

	if err := s.sessionRepository.Save(ctx, session); err != nil {
		logrus.WithError(err).WithField("company_id", companyID).Error("chat: failed to save session")
		return nil, NewChatError(errors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, session.ID, "")
	}

	return session, nil
}

func (s *Service) GetChatSession(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	if sessionID == "" {
		return nil, nil
	}

	session, err := s.sessionRepository.GetByID(ctx, sessionID)
	if err != nil {
		return nil, NewChatError(errors.Wrap(err, ErrDatabaseOperation.Error()), apiErrors.ErrDatabaseOperation, sessionID, "")
	}

	return session, nil
}

func (s *Service) GetChatHistory(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	session, err := s.GetChatSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session == nil || session.Messages == nil {
		return []domain.ChatMessage{}, nil
	}

	return session.Messages, nil
}
