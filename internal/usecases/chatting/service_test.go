package chatting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/autoworkz/senseiiwyze-dashboard/infrastructure/repository/mocks"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRespond_KeywordRouting(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		wantContains string
	}{
		{name: "retention keyword", message: "How can we improve retention?", wantContains: "retention"},
		{name: "turnover keyword uppercase", message: "Our TURNOVER is too high", wantContains: "retention"},
		{name: "training keyword", message: "Is our training working?", wantContains: "training"},
		{name: "learning keyword mixed case", message: "Tell me about Learning paths", wantContains: "training"},
		{name: "retention wins over training", message: "does training affect retention", wantContains: "retention"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := Respond(tt.message)

			assert.Contains(t, strings.ToLower(response.Message), tt.wantContains)
			assert.NotEmpty(t, response.SuggestedActions)
			assert.NotEmpty(t, response.FollowUpQuestions)
		})
	}
}

func TestRespond_DefaultBundle(t *testing.T) {
	for _, message := range []string{"", "hello", "what is our productivity?"} {
		response := Respond(message)

		assert.NotEmpty(t, response.Message, "message %q", message)
		assert.GreaterOrEqual(t, len(response.FollowUpQuestions), 1, "message %q", message)
		assert.Equal(t, defaultResponse.Message, response.Message)
	}
}

func TestRespond_ReturnsIndependentCopies(t *testing.T) {
	first := Respond("retention")
	first.SuggestedActions[0] = "changed"
	first.FollowUpQuestions = nil

	second := Respond("retention")
	assert.NotEqual(t, "changed", second.SuggestedActions[0])
	assert.NotEmpty(t, second.FollowUpQuestions)
}

func TestService_ChatWithAI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockChatSessionRepository(ctrl))

	response := service.ChatWithAI(&domain.ChatRequest{
		SessionID: "chat-acme-1",
		Message:   "We need better learning programs",
		Context:   map[string]any{"page": "dashboard"},
	})

	require.NotNil(t, response)
	assert.Contains(t, strings.ToLower(response.Message), "training")
}

func TestService_CreateChatSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixedNow := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	repo := mocks.NewMockChatSessionRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	service := NewService(repo).(*Service).WithClock(func() time.Time { return fixedNow })

	topic := "retention"
	first, err := service.CreateChatSession(context.Background(), "acme", &topic)
	require.NoError(t, err)
	second, err := service.CreateChatSession(context.Background(), "acme", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, strings.HasPrefix(first.ID, "chat-acme-"))
	assert.Contains(t, second.ID, "acme")

	assert.Equal(t, "acme", first.CompanyID)
	assert.Equal(t, fixedNow, first.CreatedAt)
	assert.Equal(t, fixedNow, first.LastMessageAt)
	assert.Equal(t, domain.ChatSessionStatusActive, first.Status)
	assert.NotNil(t, first.Messages)
	assert.Empty(t, first.Messages)
	require.NotNil(t, first.Topic)
	assert.Equal(t, "retention", *first.Topic)
	assert.Nil(t, second.Topic)
}

func TestService_CreateChatSession_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("company ID required", func(t *testing.T) {
		service := NewService(mocks.NewMockChatSessionRepository(ctrl))

		session, err := service.CreateChatSession(context.Background(), "", nil)

		assert.Nil(t, session)
		var chatErr *ChatError
		require.ErrorAs(t, err, &chatErr)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, chatErr.Code)
		assert.ErrorIs(t, err, ErrCompanyIDRequired)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := mocks.NewMockChatSessionRepository(ctrl)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
		service := NewService(repo)

		session, err := service.CreateChatSession(context.Background(), "acme", nil)

		assert.Nil(t, session)
		var chatErr *ChatError
		require.ErrorAs(t, err, &chatErr)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, chatErr.Code)
	})
}

func TestService_GetChatHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := &domain.ChatSession{
		ID:        "chat-acme-1",
		CompanyID: "acme",
		Messages: []domain.ChatMessage{
			{ID: "m1", Role: "user", Content: "hi"},
		},
	}

	tests := []struct {
		name      string
		sessionID string
		setup     func(repo *mocks.MockChatSessionRepository)
		wantLen   int
		wantErr   bool
	}{
		{
			name:      "stored session returns its messages",
			sessionID: "chat-acme-1",
			setup: func(repo *mocks.MockChatSessionRepository) {
				repo.EXPECT().GetByID(gomock.Any(), "chat-acme-1").Return(stored, nil)
			},
			wantLen: 1,
		},
		{
			name:      "unknown session returns empty list",
			sessionID: "chat-missing-1",
			setup: func(repo *mocks.MockChatSessionRepository) {
				repo.EXPECT().GetByID(gomock.Any(), "chat-missing-1").Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name:      "empty session ID skips the repository",
			sessionID: "",
			setup:     func(repo *mocks.MockChatSessionRepository) {},
			wantLen:   0,
		},
		{
			name:      "repository failure",
			sessionID: "chat-acme-2",
			setup: func(repo *mocks.MockChatSessionRepository) {
				repo.EXPECT().GetByID(gomock.Any(), "chat-acme-2").Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockChatSessionRepository(ctrl)
			tt.setup(repo)
			service := NewService(repo)

			messages, err := service.GetChatHistory(context.Background(), tt.sessionID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, messages)
			assert.Len(t, messages, tt.wantLen)
		})
	}
}
