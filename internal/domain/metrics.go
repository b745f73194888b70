package domain

// MetricRow é uma linha retornada pela API de search analytics. Keys segue a
// ordem das dimensões solicitadas na consulta. O núcleo nunca recalcula essas
// métricas; elas são repassadas como vieram para a síntese e para o cliente.
type MetricRow struct {
	Keys        []string `json:"keys"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}
