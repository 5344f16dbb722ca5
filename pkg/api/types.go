package api

import (
	"github.com/bhasha-labs/bhasha/pkg/session"
)

// TextQueryRequest submits a chat query. SessionID may be empty or unknown,
// in which case a fresh session is created.
type TextQueryRequest struct {
	Query         string `json:"query"`
	SessionID     string `json:"session_id,omitempty"`
	OutputAsVoice bool   `json:"output_as_voice,omitempty"`
}

// EditMessageRequest rewrites one turn's content in a session transcript.
type EditMessageRequest struct {
	SessionID    string `json:"session_id"`
	MessageIndex int    `json:"message_index"`
	NewContent   string `json:"new_content"`
}

// DeleteSessionRequest removes a session wholesale.
type DeleteSessionRequest struct {
	SessionID string `json:"session_id"`
}

// TranslationRequest asks for a translation between two display-named
// languages.
type TranslationRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// TranslationResponse carries only the translated text.
type TranslationResponse struct {
	TranslatedText string `json:"translated_text"`
}

// LanguageListResponse lists the supported language display names.
type LanguageListResponse struct {
	Languages []string `json:"languages"`
}

// SpeakRequest converts text to speech in the given language code.
type SpeakRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// SessionListResponse maps session ids to their metadata.
type SessionListResponse struct {
	Sessions map[string]session.Info `json:"sessions"`
}

// EditMessageResponse returns the updated transcript after an edit.
type EditMessageResponse struct {
	Status      string         `json:"status"`
	ChatHistory []session.Turn `json:"chat_history"`
}

// StatusResponse acknowledges a mutation with no payload.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse carries the failure detail for 4xx/5xx replies.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
