package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"google.golang.org/genai"
)

type MockGeminiService struct {
	mock.Mock
}

func (m *MockGeminiService) GenerateContent(ctx context.Context, systemInstruction, userMessage string) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, systemInstruction, userMessage)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

func (m *MockGeminiService) ModelName() string {
	return "mock-model"
}
