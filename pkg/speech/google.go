package speech

import (
	"context"
	"fmt"
	"os"

	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/rs/zerolog"

	"github.com/bhasha-labs/bhasha/pkg/language"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GoogleTTS synthesizes speech via the Google Translate TTS endpoint. Audio
// lands in a request-scoped temp file that is removed before returning,
// whether synthesis succeeds or not.
type GoogleTTS struct {
	dir    string
	logger zerolog.Logger
}

// NewGoogleTTS creates a synthesizer writing scratch files under dir. An
// empty dir falls back to the system temp directory.
func NewGoogleTTS(dir string, logger zerolog.Logger) *GoogleTTS {
	if dir == "" {
		dir = os.TempDir()
	}
	return &GoogleTTS{
		dir:    dir,
		logger: logger.With().Str("component", "google-tts").Logger(),
	}
}

// Synthesize generates MP3 audio for text in lang.
func (g *GoogleTTS) Synthesize(ctx context.Context, text string, lang language.Code) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("no text to synthesize")
	}

	name, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate audio file name: %w", err)
	}

	engine := htgotts.Speech{Folder: g.dir, Language: string(lang)}
	path, err := engine.CreateSpeechFile(text, name)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			g.logger.Warn().Str("path", path).Err(err).Msg("Failed to remove audio file")
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}

	g.logger.Debug().Str("language", string(lang)).Int("bytes", len(data)).Msg("Audio synthesized")
	return data, nil
}
