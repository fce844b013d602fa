// Package translate provides machine translation of vocabulary entries
// through the Anthropic Messages API.
package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/wordwell/backend/internal/config"
)

// Provider translates short texts with a Claude model.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

// New creates a translation provider from config.
// Returns nil when no API key is configured; callers treat a nil
// provider as the feature being unavailable.
func New(cfg config.TranslateConfig) *Provider {
	if cfg.APIKey == "" {
		return nil
	}
	return &Provider{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
}

// Translate renders text from sourceLang into targetLang.
func (p *Provider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: p.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(text, sourceLang, targetLang))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("translate api call for %q: %w", text, err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty response for %q", text)
	}

	translated := cleanResponse(msg.Content[0].Text)
	if translated == "" {
		return "", fmt.Errorf("blank translation for %q", text)
	}

	return translated, nil
}

// buildPrompt creates the translation prompt for a single text.
func buildPrompt(text, sourceLang, targetLang string) string {
	return fmt.Sprintf(`You are a professional translator.

Translate the following %s text into %s.

Text: %s

Rules:
- Output ONLY the translation, no explanations, no quotes
- Preserve the register of the original (a single word stays a single word)
- For vocabulary entries, prefer the most common everyday equivalent`,
		sourceLang, targetLang, text)
}

// cleanResponse strips whitespace and any quoting the model wrapped
// around the translation.
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
