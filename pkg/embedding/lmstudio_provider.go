package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// LMStudioProvider implements EmbeddingProvider against LM Studio's
// OpenAI-compatible /embeddings endpoint.
type LMStudioProvider struct {
	BaseURL string
	Model   string
}

func NewLMStudioProvider(baseURL string, model string) EmbeddingProvider {
	if baseURL == "" {
		baseURL = "http://localhost:1234/v1"
	}
	return &LMStudioProvider{
		BaseURL: baseURL,
		Model:   model,
	}
}

type lmStudioEmbeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type lmStudioEmbeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

func (p *LMStudioProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	// taskType is accepted for interface compatibility; the OpenAI-style API
	// has no equivalent field.

	reqBody := lmStudioEmbeddingRequest{
		Model: p.Model,
		Input: text,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/embeddings", p.BaseURL)
	resp, err := http.Post(endpoint, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lmstudio embedding error: %s", string(bodyBytes))
	}

	var embResp lmStudioEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &embResp); err != nil {
		return nil, err
	}

	if len(embResp.Data) == 0 {
		return nil, fmt.Errorf("lmstudio embedding returned no data")
	}

	// Normalize so cosine distance in pgvector behaves consistently across
	// models that do and do not normalize their output.
	normalizedValues := normalizeVector(embResp.Data[0].Embedding)

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{
			Values: normalizedValues,
		},
	}, nil
}
