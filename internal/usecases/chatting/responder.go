package chatting

import (
	"strings"

	"github.com/autoworkz/senseiiwyze-dashboard/internal/domain"
)

// Palavras-chave avaliadas em ordem: retenção tem precedência sobre treinamento
var (
	retentionKeywords = []string{"retention", "turnover"}
	trainingKeywords  = []string{"training", "learning"}
)

var retentionResponse = domain.ChatResponse{
	Message: "Your retention rate is the biggest lever on workforce cost right now. " +
		"Turnover is concentrated in new hires during the first six months, so structured onboarding " +
		"and clear career paths for mid-level contributors should deliver the fastest retention gains.",
	SuggestedActions: []string{
		"Launch a structured 90-day onboarding program",
		"Introduce stay interviews for employees in their first year",
		"Publish career progression frameworks for mid-level roles",
		"Review compensation against market benchmarks",
	},
	RelatedInsights: []string{"retention-analysis", "turnover-cost-savings"},
	FollowUpQuestions: []string{
		"Which teams have the highest turnover this quarter?",
		"What does exit interview feedback say about why people leave?",
		"How much would a 10% retention improvement save us?",
	},
}

var trainingResponse = domain.ChatResponse{
	Message: "Training completion is directly tied to time to proficiency. " +
		"Incomplete programs waste a large share of the training budget, so shorter modules, " +
		"manager follow-up and personalized learning paths tend to raise completion the most.",
	SuggestedActions: []string{
		"Split long courses into microlearning modules",
		"Send managers weekly completion reports for their teams",
		"Create personalized learning paths from skill gap assessments",
		"Recognize employees who complete certifications",
	},
	RelatedInsights: []string{"training-roi", "skill-gap-analysis"},
	FollowUpQuestions: []string{
		"Which training programs have the lowest completion rates?",
		"How does certification pass rate compare across departments?",
		"What is the ROI of our current training budget?",
	},
}

var defaultResponse = domain.ChatResponse{
	Message: "I can help you understand your workforce readiness metrics. " +
		"Ask me about employee retention, training effectiveness, engagement or productivity " +
		"and I will point you to the highest impact opportunities.",
	SuggestedActions: []string{
		"Review your overall health score",
		"Explore the top profitability opportunities",
		"Check engagement recommendations",
	},
	RelatedInsights: []string{"health-score", "top-opportunities"},
	FollowUpQuestions: []string{
		"What are our biggest opportunities to reduce costs?",
		"How does our retention compare to the industry benchmark?",
		"Where should we focus training investment next?",
	},
}

// Respond escolhe o pacote de resposta pela presença de palavras-chave na mensagem.
// Métricas e contexto da sessão não são consultados.
func Respond(message string) *domain.ChatResponse {
	query := strings.ToLower(message)

	switch {
	case containsAny(query, retentionKeywords):
		return cloneResponse(retentionResponse)
	case containsAny(query, trainingKeywords):
		return cloneResponse(trainingResponse)
	default:
		return cloneResponse(defaultResponse)
	}
}

func containsAny(s string, substrs []string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// cloneResponse evita que o chamador altere os pacotes compartilhados
func cloneResponse(r domain.ChatResponse) *domain.ChatResponse {
	return &domain.ChatResponse{
		Message:           r.Message,
		SuggestedActions:  append([]string(nil), r.SuggestedActions...),
		RelatedInsights:   append([]string(nil), r.RelatedInsights...),
		FollowUpQuestions: append([]string(nil), r.FollowUpQuestions...),
	}
}
