// Package reason provides optional natural-language phrasing for
// qualification decisions. Score, tier and routing are computed
// deterministically elsewhere; this service only rewrites the reasoning
// text and is never required for correctness.
package reason

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"

	"leadline/internal/engine"
)

const systemPrompt = `You are a sales assistant summarizing an inbound call qualification.
Given the decision facts, write one short paragraph (max 60 words) a sales rep
can skim: what the caller wants, why they scored as they did, and where the
call is being routed. State only the supplied facts. Do not change the score,
tier, urgency or routing.`

// Service phrases decision reasoning through a chat-completion model.
type Service struct {
	client *openai.Client
	model  string
}

// New creates a reasoning service.
func New(apiKey, model string) *Service {
	return &Service{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Phrase rewrites the deterministic reasoning into a natural summary. On any
// failure the deterministic reasoning is returned unchanged.
func (s *Service) Phrase(ctx context.Context, transcript string, decision engine.Decision) string {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	facts := fmt.Sprintf(
		"Transcript: %s\nScore: %d\nTier: %s\nUrgency: %s\nTransfer: %v (%s)\nDeterministic reasoning: %s",
		transcript,
		decision.Qualification.Score,
		decision.Qualification.Tier,
		decision.Qualification.Urgency,
		decision.Routing.ShouldTransfer,
		decision.Routing.Target,
		decision.Reasoning,
	)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		MaxTokens:   150,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: facts},
		},
	})
	if err != nil {
		slog.Warn("reasoning service unavailable, using deterministic reasoning", "error", err)
		return decision.Reasoning
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return decision.Reasoning
	}
	return resp.Choices[0].Message.Content
}
