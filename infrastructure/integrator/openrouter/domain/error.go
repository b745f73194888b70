package openrouterdomain

// ErrorResponse representa a estrutura de erro da API do OpenRouter
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do OpenRouter
type ErrorDetails struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
