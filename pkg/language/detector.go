package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/rs/zerolog"
)

// Marker substrings that identify a language more reliably than the
// statistical detector, which struggles with short, mixed-script, or
// transliterated chat input. Hindi markers are checked first.
var (
	hindiMarkers  = []string{"namaste", "hindi", "बात", "नमस्ते", "हिंदी"}
	teluguMarkers = []string{"telugu", "తెలుగు", "నమస్కారం"}
)

// statistical detector results mapped into the supported set
var detectorLangs = map[whatlanggo.Lang]Code{
	whatlanggo.Eng: English,
	whatlanggo.Hin: Hindi,
	whatlanggo.Tel: Telugu,
	whatlanggo.Kan: Kannada,
	whatlanggo.Tam: Tamil,
}

// Detector guesses the language of free-form text. Keyword overrides win
// over the statistical detector; anything ambiguous falls back to English.
type Detector struct {
	logger zerolog.Logger
}

// NewDetector creates a detector.
func NewDetector(logger zerolog.Logger) *Detector {
	return &Detector{
		logger: logger.With().Str("component", "language-detector").Logger(),
	}
}

// Detect returns the best-guess language code for text. It never fails:
// empty input, digit-only input, or an unsupported detection all yield the
// default code.
func (d *Detector) Detect(text string) Code {
	lowered := strings.ToLower(text)

	for _, marker := range hindiMarkers {
		if strings.Contains(lowered, marker) {
			d.logger.Debug().Str("marker", marker).Msg("Hindi detected from marker")
			return Hindi
		}
	}
	for _, marker := range teluguMarkers {
		if strings.Contains(lowered, marker) {
			d.logger.Debug().Str("marker", marker).Msg("Telugu detected from marker")
			return Telugu
		}
	}

	if strings.TrimSpace(text) == "" {
		return Default
	}

	info := whatlanggo.Detect(text)
	if code, ok := detectorLangs[info.Lang]; ok {
		d.logger.Debug().
			Str("language", string(code)).
			Float64("confidence", info.Confidence).
			Msg("Language detected")
		return code
	}

	d.logger.Debug().Msg("No supported language detected, defaulting to English")
	return Default
}
