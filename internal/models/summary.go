package models

// Usage mirrors the provider's token accounting for one generation.
type Usage struct {
	PromptTokens     int32 `json:"prompt_tokens"`
	CandidatesTokens int32 `json:"candidates_tokens"`
	TotalTokens      int32 `json:"total_tokens"`
}

type Summary struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}
