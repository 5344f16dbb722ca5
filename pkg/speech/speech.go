// Package speech converts text to spoken audio through the Google Translate
// TTS engine.
package speech

import (
	"context"

	"github.com/bhasha-labs/bhasha/pkg/language"
)

// Synthesizer produces audio bytes for text in the given language. Failures
// are recoverable: chat callers degrade to a text-only response.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang language.Code) ([]byte, error)
}
