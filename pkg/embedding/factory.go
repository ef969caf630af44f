package embedding

import "fmt"

func NewEmbeddingProvider(providerType, baseURL, model string) (EmbeddingProvider, error) {
	switch providerType {
	case "lmstudio":
		return NewLMStudioProvider(baseURL, model), nil
	case "ollama":
		return NewOllamaProvider(baseURL, model), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", providerType)
	}
}
