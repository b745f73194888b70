package openrouterdomain

// Papéis das mensagens no formato chat-completions
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message é uma mensagem com papel enviada ao serviço de completions
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest é o corpo enviado ao endpoint /chat/completions
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
}

// ChatCompletionResponse é a resposta do endpoint /chat/completions
type ChatCompletionResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message Message `json:"message"`
}
