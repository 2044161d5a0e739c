package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"alfredoptarigan/resume-summarizer/internal/models"
)

type FailureReason string

const (
	FailureProviderError FailureReason = "provider_error"
	FailureEmptyResponse FailureReason = "empty_response"
	FailureMissingUsage  FailureReason = "missing_usage"
)

// SummaryResult is either a summary or a failure with its reason, never both.
type SummaryResult struct {
	Summary *models.Summary
	Failure FailureReason
	Err     error
}

func (r SummaryResult) OK() bool {
	return r.Failure == "" && r.Summary != nil
}

func failed(reason FailureReason, err error) SummaryResult {
	return SummaryResult{Failure: reason, Err: err}
}

type SummaryClient interface {
	Summarize(ctx context.Context, prompt Prompt) SummaryResult
}

type summaryClient struct {
	geminiService GeminiService
	timeout       time.Duration
	maxAttempts   int
}

// NewSummaryClient wraps the provider. A zero timeout leaves the transport
// default in place; maxAttempts below one is treated as one.
func NewSummaryClient(geminiService GeminiService, timeout time.Duration, maxAttempts int) SummaryClient {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &summaryClient{
		geminiService: geminiService,
		timeout:       timeout,
		maxAttempts:   maxAttempts,
	}
}

// Summarize implements SummaryClient.
func (s *summaryClient) Summarize(ctx context.Context, prompt Prompt) SummaryResult {
	var result SummaryResult

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		result = s.generate(ctx, prompt)
		if result.OK() {
			return result
		}

		select {
		case <-ctx.Done():
			return failed(FailureProviderError, fmt.Errorf("%w: context cancelled: %w", ErrProviderCall, ctx.Err()))
		default:
		}

		if attempt < s.maxAttempts {
			log.Printf("⚠️ Attempt %d failed: %v. Retrying...\n", attempt, result.Err)
		}
	}

	return result
}

func (s *summaryClient) generate(ctx context.Context, prompt Prompt) SummaryResult {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	log.Printf("📝 Prompt lengths: system %d, user %d characters\n", len(prompt.SystemInstruction), len(prompt.UserMessage))

	resp, err := s.geminiService.GenerateContent(ctx, prompt.SystemInstruction, prompt.UserMessage)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return failed(FailureProviderError, fmt.Errorf("%w: %w", ErrProviderCall, err))
	}

	if resp == nil || len(resp.Candidates) == 0 {
		log.Println("❌ Gemini API returned an empty response")
		return failed(FailureEmptyResponse, ErrEmptyResponse)
	}

	if resp.UsageMetadata == nil {
		log.Println("❌ Gemini response is malformed: no usage metadata")
		return failed(FailureMissingUsage, ErrMissingUsage)
	}

	text := resp.Text()
	if text == "" {
		log.Println("❌ No text content in response")
		return failed(FailureEmptyResponse, ErrEmptyResponse)
	}

	summary := &models.Summary{
		Text: text,
		Usage: models.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CandidatesTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		},
	}

	log.Printf("📊 Gemini response received: %d prompt tokens, %d output tokens\n",
		summary.Usage.PromptTokens, summary.Usage.CandidatesTokens)

	return SummaryResult{Summary: summary}
}
