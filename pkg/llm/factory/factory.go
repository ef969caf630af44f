package factory

import (
	"fmt"

	"ai-grading-be/pkg/llm"
	"ai-grading-be/pkg/llm/lmstudio"
	"ai-grading-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "lmstudio":
		if baseURL == "" {
			baseURL = "http://localhost:1234/v1"
		}
		return lmstudio.NewLMStudioProvider(baseURL, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
