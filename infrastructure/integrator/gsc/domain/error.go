package gscdomain

import "errors"

// ErrUnauthorized indica que o access token foi rejeitado pela API do Google.
// O integrador usa este sinal para renovar o token e repetir a chamada uma vez.
var ErrUnauthorized = errors.New("access token rejeitado pela API do Google")

// ErrorResponse representa a estrutura de erro das APIs do Google
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro das APIs do Google
type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
