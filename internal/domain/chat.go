package domain

// ChatRequest é o corpo aceito pelo endpoint de chat
type ChatRequest struct {
	Question string `json:"question"`
	SiteURL  string `json:"siteUrl"`
}

// ChatResponse é a resposta do pipeline de chat. Data carrega apenas as linhas
// do período principal; as linhas de comparação alimentam a síntese mas não são
// expostas no payload.
type ChatResponse struct {
	Insight string      `json:"insight"`
	Data    []MetricRow `json:"data,omitempty"`
}
