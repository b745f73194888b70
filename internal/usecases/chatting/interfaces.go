package chatting

import (
	"context"

	"github.com/vfg2006/seo-analyst-api/internal/domain"
)

// ChatService orquestra o pipeline de pergunta em linguagem natural:
// interpretação da intenção, consulta ao Search Console e síntese do insight.
type ChatService interface {
	Ask(ctx context.Context, session *domain.Session, question, siteURL string) (*domain.ChatResponse, error)
}
