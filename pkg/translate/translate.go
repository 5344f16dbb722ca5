// Package translate produces text translations through the completion
// provider.
package translate

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bhasha-labs/bhasha/pkg/completion"
	"github.com/bhasha-labs/bhasha/pkg/language"
)

// GuidanceMessage is returned instead of calling the provider when the
// request is missing its text or target language.
const GuidanceMessage = "Please provide text and select a language."

// Config holds the generation parameters for translation calls.
type Config struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// Translator turns text from one supported language into another.
type Translator struct {
	provider completion.Provider
	cfg      Config
	logger   zerolog.Logger
}

// New creates a translator.
func New(provider completion.Provider, cfg Config, logger zerolog.Logger) *Translator {
	return &Translator{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With().Str("component", "translate").Logger(),
	}
}

// Translate returns only the translated text, with no commentary. Errors
// from the provider are wrapped and propagated.
func (t *Translator) Translate(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error) {
	if text == "" || targetLanguage == "" {
		return GuidanceMessage, nil
	}

	prompt := fmt.Sprintf(
		"Translate the following text from %s to %s. "+
			"Return only the translated text, with no additional explanation, transliteration, or formatting: %s",
		sourceLanguage, targetLanguage, text)

	translated, err := t.provider.Complete(ctx, completion.Request{
		Model:       t.cfg.Model,
		Messages:    []completion.Message{{Role: "user", Content: prompt}},
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	})
	if err != nil {
		t.logger.Error().Err(err).Msg("Translation failed")
		return "", fmt.Errorf("translation failed: %w", err)
	}

	return translated, nil
}

// Languages returns the supported language display names.
func (t *Translator) Languages() []string {
	return language.DisplayNames()
}
