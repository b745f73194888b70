package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	gscdomain "github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
	"github.com/vfg2006/seo-analyst-api/internal/usecases/chatting"
	"github.com/vfg2006/seo-analyst-api/pkg/apiErrors"
	"github.com/vfg2006/seo-analyst-api/pkg/log"
	"github.com/vfg2006/seo-analyst-api/pkg/middleware"
)

// ChatHandler responde perguntas em linguagem natural sobre os dados do
// Search Console do site informado
func ChatHandler(service chatting.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Not authenticated", nil)
			return
		}

		var req domain.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		req.Question = strings.TrimSpace(req.Question)
		req.SiteURL = strings.TrimSpace(req.SiteURL)

		if req.Question == "" || req.SiteURL == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos question e siteUrl são obrigatórios", nil)
			return
		}

		logger.WithFields(log.Fields{
			"site_url": req.SiteURL,
		}).Info("chat: processando pergunta")

		response, err := service.Ask(r.Context(), session, req.Question, req.SiteURL)
		if err != nil {
			handleChatError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta do chat")
		}
	}
}

// handleChatError traduz falhas do pipeline para a resposta da API
func handleChatError(w http.ResponseWriter, logger log.Logger, err error) {
	logger.WithError(err).Error("Erro no pipeline de chat")

	// Refresh do token falhou: a sessão Google não serve mais
	if errors.Is(err, gscdomain.ErrUnauthorized) {
		apiErrors.WriteError(w, apiErrors.ErrSessionExpired, "Sessão Google expirada, faça login novamente", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrSearchConsole, "Erro ao consultar o Search Console", nil)
}
