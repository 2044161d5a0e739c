package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiService generates text for a system instruction and a single user
// message. The raw provider response is returned so callers can judge
// whether it is well formed.
type GeminiService interface {
	GenerateContent(ctx context.Context, systemInstruction, userMessage string) (*genai.GenerateContentResponse, error)
	ModelName() string
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateContent implements GeminiService.
func (g *geminiService) GenerateContent(ctx context.Context, systemInstruction, userMessage string) (*genai.GenerateContentResponse, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userMessage, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return resp, nil
}

// ModelName implements GeminiService.
func (g *geminiService) ModelName() string {
	return g.modelName
}
