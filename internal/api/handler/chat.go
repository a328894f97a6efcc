package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
	"github.com/autoworkz/senseiiwyze-dashboard/internal/usecases/chatting"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/apiErrors"
	"github.com/autoworkz/senseiiwyze-dashboard/pkg/log"
)

// ChatWithAI responde a mensagem do usuário. Mensagem vazia recebe a resposta padrão.
func ChatWithAI(service chatting.Chatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", err.Error())
			return
		}

		respondJSON(w, r, http.StatusOK, service.ChatWithAI(&request))
	})
}

func CreateChatSession(service chatting.Chatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.CreateChatSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid request body", err.Error())
			return
		}

		if request.CompanyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "company_id is required", nil)
			return
		}

		if !requireCompanyAccess(w, r, request.CompanyID) {
			return
		}

		session, err := service.CreateChatSession(r.Context(), request.CompanyID, request.Topic)
		if err != nil {
			logger.WithError(err).WithField("company_id", request.CompanyID).Error("chat: failed to create session")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		logger.WithFields(log.Fields{
			"company_id": session.CompanyID,
			"session_id": session.ID,
		}).Info("chat: session created")

		respondJSON(w, r, http.StatusCreated, session)
	})
}

// GetChatHistory retorna as mensagens da sessão. Sessão desconhecida resulta em lista vazia.
func GetChatHistory(service chatting.Chatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		session, err := service.GetChatSession(r.Context(), sessionID)
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		if session != nil && !requireCompanyAccess(w, r, session.CompanyID) {
			return
		}

		messages, err := service.GetChatHistory(r.Context(), sessionID)
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		respondJSON(w, r, http.StatusOK, messages)
	})
}
