package language

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestDetector() *Detector {
	return NewDetector(zerolog.Nop())
}

func TestDetector_HindiMarkers(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name string
		text string
	}{
		{"transliterated greeting", "Namaste, how are you doing today my friend?"},
		{"language name", "Can you talk to me in Hindi please"},
		{"devanagari word", "मुझे आपसे बात करनी है"},
		{"devanagari greeting", "नमस्ते"},
		{"mixed case marker", "NAMASTE ji"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Hindi, d.Detect(tt.text))
		})
	}
}

func TestDetector_TeluguMarkers(t *testing.T) {
	d := newTestDetector()

	assert.Equal(t, Telugu, d.Detect("Please answer in Telugu from now on"))
	assert.Equal(t, Telugu, d.Detect("తెలుగు"))
	assert.Equal(t, Telugu, d.Detect("నమస్కారం"))
}

func TestDetector_HindiMarkerWinsOverTelugu(t *testing.T) {
	d := newTestDetector()

	// Both marker lists match; Hindi is checked first.
	assert.Equal(t, Hindi, d.Detect("namaste, can you speak telugu?"))
}

func TestDetector_NoSignalDefaultsToEnglish(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   \t\n"},
		{"digits only", "1234567890"},
		{"punctuation", "?!.,;:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, English, d.Detect(tt.text))
		})
	}
}

func TestDetector_ScriptNativeText(t *testing.T) {
	d := newTestDetector()

	// No marker substrings here; the statistical detector has to carry it.
	assert.Equal(t, Telugu, d.Detect("మీరు ఈ రోజు ఎలా ఉన్నారు చెప్పండి"))
	assert.Equal(t, Tamil, d.Detect("வணக்கம் நீங்கள் எப்படி இருக்கிறீர்கள்"))
	assert.Equal(t, Kannada, d.Detect("ನೀವು ಇವತ್ತು ಹೇಗಿದ್ದೀರಿ ಹೇಳಿ"))
}

func TestDetector_UnsupportedLanguageClampsToEnglish(t *testing.T) {
	d := newTestDetector()

	// Cyrillic resolves to Russian, which is outside the supported set.
	assert.Equal(t, English, d.Detect("Привет, как у тебя дела сегодня?"))
}

func TestLanguageTable(t *testing.T) {
	assert.True(t, IsSupported(Hindi))
	assert.False(t, IsSupported(Code("fr")))

	assert.Equal(t, "Telugu", DisplayName(Telugu))
	assert.Equal(t, "English", DisplayName(Code("zz")))

	assert.Equal(t, Hindi, TTSCode(Hindi))
	assert.Equal(t, English, TTSCode(Kannada))
	assert.Equal(t, English, TTSCode(Tamil))
	assert.Equal(t, English, TTSCode(Code("fr")))

	assert.Equal(t, []string{"English", "Hindi", "Telugu", "Kannada", "Tamil"}, DisplayNames())
	assert.Len(t, Codes(), 5)
}
