package testutil

import "google.golang.org/genai"

// TextResponse is a well-formed provider response carrying text.
func TextResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(text, genai.RoleModel)},
		},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     120,
			CandidatesTokenCount: 40,
			TotalTokenCount:      160,
		},
	}
}

// ResponseWithoutUsage carries text but no usage metadata.
func ResponseWithoutUsage(text string) *genai.GenerateContentResponse {
	resp := TextResponse(text)
	resp.UsageMetadata = nil
	return resp
}
