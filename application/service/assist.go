// Package service orchestrates the gateway's upstream calls.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clerkd/clerkd/domain/assist"
	"github.com/clerkd/clerkd/domain/catalog"
	"github.com/clerkd/clerkd/internal/domain"
	"github.com/clerkd/clerkd/infrastructure/provider"
)

// CatalogSource fetches the item collection the prompts are built from.
type CatalogSource interface {
	FetchAll(ctx context.Context) ([]catalog.Item, error)
}

// AssistService answers natural-language questions about the catalog by
// chaining a catalog fetch and an inference call. It holds no state across
// requests; every call performs a fresh fetch-and-inference round trip.
type AssistService struct {
	source    CatalogSource
	generator provider.TextGenerator
	maxTokens int
	logger    *slog.Logger
}

// NewAssistService creates an AssistService.
func NewAssistService(source CatalogSource, generator provider.TextGenerator, maxTokens int, logger *slog.Logger) *AssistService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssistService{
		source:    source,
		generator: generator,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Answer validates the query, fetches the catalog, submits the composed
// prompt, and returns the trimmed answer. Validation failures return before
// any upstream call is made.
func (s *AssistService) Answer(ctx context.Context, userQuery string) (assist.Answer, error) {
	if strings.TrimSpace(userQuery) == "" {
		return assist.Answer{}, fmt.Errorf("%w: query parameter %q is required", domain.ErrValidation, "q")
	}

	items, err := s.source.FetchAll(ctx)
	if err != nil {
		return assist.Answer{}, err
	}
	s.logger.Debug("fetched catalog for query", "items", len(items))

	text, err := s.complete(ctx, BuildAnswerPrompt(items, userQuery))
	if err != nil {
		return assist.Answer{}, err
	}

	return assist.NewAnswer(userQuery, text), nil
}

// Recommend fetches the catalog, submits the recommendation prompt, and
// parses the model's JSON block. Output with no parseable JSON degrades to
// an explanation-only result instead of failing.
func (s *AssistService) Recommend(ctx context.Context, req assist.RecommendationRequest) (assist.Recommendation, error) {
	items, err := s.source.FetchAll(ctx)
	if err != nil {
		return assist.Recommendation{}, err
	}
	s.logger.Debug("fetched catalog for recommendation", "items", len(items))

	text, err := s.complete(ctx, BuildRecommendationPrompt(items, req))
	if err != nil {
		return assist.Recommendation{}, err
	}

	return parseRecommendation(text), nil
}

// complete runs a single-turn completion and normalizes empty output into
// a protocol error. No partial or best-effort answer is ever synthesized.
func (s *AssistService) complete(ctx context.Context, prompt string) (string, error) {
	req := provider.NewChatCompletionRequest([]provider.Message{
		provider.UserMessage(prompt),
	}).WithMaxTokens(s.maxTokens)

	resp, err := s.generator.ChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("inference call: %w", err)
	}

	text := strings.TrimSpace(resp.Content())
	if text == "" {
		return "", fmt.Errorf("%w: response contains no text content", domain.ErrMalformedCompletion)
	}
	return text, nil
}
