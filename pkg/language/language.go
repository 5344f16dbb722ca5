package language

// Code is a two-letter code for one of the supported languages.
type Code string

const (
	English Code = "en"
	Hindi   Code = "hi"
	Telugu  Code = "te"
	Kannada Code = "kn"
	Tamil   Code = "ta"
)

// Default is returned whenever detection finds no usable signal.
const Default = English

type languageInfo struct {
	displayName string
	ttsCapable  bool
}

// Single lookup table for everything keyed by language code. The TTS flag
// marks the subset the speech engine is allowed to receive; everything else
// is clamped to English before synthesis.
var languages = map[Code]languageInfo{
	English: {displayName: "English", ttsCapable: true},
	Hindi:   {displayName: "Hindi", ttsCapable: true},
	Telugu:  {displayName: "Telugu", ttsCapable: true},
	Kannada: {displayName: "Kannada", ttsCapable: false},
	Tamil:   {displayName: "Tamil", ttsCapable: false},
}

// ordered listing used for API responses, matching the product's fixed order
var ordered = []Code{English, Hindi, Telugu, Kannada, Tamil}

// IsSupported reports whether code belongs to the closed supported set.
func IsSupported(code Code) bool {
	_, ok := languages[code]
	return ok
}

// DisplayName returns the human-readable name for code, defaulting to
// English for anything outside the supported set.
func DisplayName(code Code) string {
	if info, ok := languages[code]; ok {
		return info.displayName
	}
	return languages[Default].displayName
}

// TTSCode clamps code to the subset the speech engine supports.
func TTSCode(code Code) Code {
	if info, ok := languages[code]; ok && info.ttsCapable {
		return code
	}
	return Default
}

// Codes returns the supported codes in display order.
func Codes() []Code {
	out := make([]Code, len(ordered))
	copy(out, ordered)
	return out
}

// DisplayNames returns the supported display names in display order.
func DisplayNames() []string {
	out := make([]string, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, languages[c].displayName)
	}
	return out
}
