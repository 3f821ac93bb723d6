// Package chat merges an AI text reply with a catalog venue selection into a
// single chat response.
package chat

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"sydneyplanner/internal/catalog"
	"sydneyplanner/internal/venue"
)

const (
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 15 * time.Second

	systemPrompt = "You are Sydney Planner, a friendly local guide for Sydney, Australia. " +
		"Answer in two or three short sentences with concrete suggestions. " +
		"Matching venues are attached to your reply separately, so do not list venue details yourself."

	// FallbackMessage replaces the AI reply whenever the AI call fails. The
	// venue list is independent and is returned regardless.
	FallbackMessage = "Here are some great spots in Sydney I think you'll love! " +
		"Tap a venue to see it on the map."
)

// Reply is one chat turn: prose plus the venues selected for the query.
type Reply struct {
	Message string        `json:"message"`
	Venues  []venue.Venue `json:"venues"`
}

// Service orchestrates the AI call and the catalog filter.
type Service struct {
	ai      *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// NewService builds the orchestrator. An empty apiKey disables the AI branch
// entirely; every reply then carries the fallback message. baseURL overrides
// the OpenAI default so any chat-completions-compatible host works.
func NewService(apiKey, baseURL, model string, logger *zap.SugaredLogger) *Service {
	s := &Service{
		model:   model,
		timeout: defaultTimeout,
		logger:  logger,
	}
	if s.model == "" {
		s.model = defaultModel
	}
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		s.ai = openai.NewClientWithConfig(cfg)
	}
	return s
}

// Respond answers a chat query. The AI call and the catalog filter run
// concurrently and both are waited on: a join, not a race. The caller is
// responsible for rejecting empty queries before this point.
func (s *Service) Respond(ctx context.Context, query string) Reply {
	msgCh := make(chan string, 1)
	go func() {
		msgCh <- s.completion(ctx, query)
	}()

	venues := catalog.Filter(query)
	message := <-msgCh

	return Reply{Message: message, Venues: venues}
}

// completion returns the AI reply, or the fallback message on any failure.
// AI failures are never surfaced to the user.
func (s *Service) completion(ctx context.Context, query string) string {
	if s.ai == nil {
		return FallbackMessage
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		MaxTokens: 300,
	})
	if err != nil {
		s.logger.Warnw("ai completion failed, using fallback", "error", err)
		return FallbackMessage
	}
	if len(resp.Choices) == 0 {
		return FallbackMessage
	}

	message := strings.TrimSpace(resp.Choices[0].Message.Content)
	if message == "" {
		return FallbackMessage
	}
	return message
}
