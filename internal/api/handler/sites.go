package handler

import (
	"net/http"

	"github.com/vfg2006/seo-analyst-api/infrastructure/integrator/gsc"
	"github.com/vfg2006/seo-analyst-api/internal/domain"
	"github.com/vfg2006/seo-analyst-api/pkg/apiErrors"
	"github.com/vfg2006/seo-analyst-api/pkg/log"
	"github.com/vfg2006/seo-analyst-api/pkg/middleware"
)

type SitesResponse struct {
	Sites []domain.Site `json:"sites"`
}

// ListSites devolve as propriedades do Search Console visíveis para a conta
// Google da sessão
func ListSites(service gsc.SearchConsoleIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotAuthenticated, "Not authenticated", nil)
			return
		}

		sites, err := service.ListSites(r.Context(), session)
		if err != nil {
			logger.WithError(err).Error("Erro ao listar propriedades do Search Console")
			apiErrors.WriteError(w, apiErrors.ErrSearchConsole, "Erro ao consultar o Search Console", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(SitesResponse{Sites: sites}); err != nil {
			logger.WithError(err).Error("Erro ao enviar lista de propriedades")
		}
	}
}
