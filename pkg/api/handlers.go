package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/bhasha-labs/bhasha/pkg/language"
	"github.com/bhasha-labs/bhasha/pkg/session"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Seconds(),
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SessionListResponse{Sessions: s.store.List()})
}

func (s *Server) handleTextQuery(w http.ResponseWriter, r *http.Request) {
	var req TextQueryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.processQuery(w, r, req)
}

// handleVoiceQuery is the legacy voice endpoint: identical to text-query
// with voice output forced on.
func (s *Server) handleVoiceQuery(w http.ResponseWriter, r *http.Request) {
	var req TextQueryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.OutputAsVoice = true
	s.processQuery(w, r, req)
}

func (s *Server) processQuery(w http.ResponseWriter, r *http.Request, req TextQueryRequest) {
	result, err := s.chatService.ProcessTextQuery(r.Context(), req.Query, req.SessionID, req.OutputAsVoice)
	if err != nil {
		s.logger.Error().Err(err).Msg("Query processing failed")
		writeError(w, http.StatusInternalServerError, "Error processing query: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleEditMessage(w http.ResponseWriter, r *http.Request) {
	var req EditMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	history, err := s.store.EditTurn(req.SessionID, req.MessageIndex, req.NewContent)
	if err != nil {
		s.writeStoreError(w, err, "Error editing message")
		return
	}
	writeJSON(w, http.StatusOK, EditMessageResponse{Status: "success", ChatHistory: history})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	var req DeleteSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.store.Delete(req.SessionID); err != nil {
		s.writeStoreError(w, err, "Error deleting session")
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "success", Message: "Chat session deleted successfully"})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req TranslationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	translated, err := s.translator.Translate(r.Context(), req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		s.logger.Error().Err(err).Msg("Translation failed")
		writeError(w, http.StatusInternalServerError, "Translation failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, TranslationResponse{TranslatedText: translated})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LanguageListResponse{Languages: s.translator.Languages()})
}

func (s *Server) handleTextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req SpeakRequest
	if !decodeBody(w, r, &req) {
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	code := language.Code(req.Language)
	if req.Language == "" {
		code = language.Default
	}
	if !language.IsSupported(code) {
		writeError(w, http.StatusBadRequest, "Language '"+req.Language+"' is not supported for speech")
		return
	}

	audio, err := s.synth.Synthesize(r.Context(), text, language.TTSCode(code))
	if err != nil {
		s.logger.Error().Err(err).Msg("Speech generation failed")
		writeError(w, http.StatusInternalServerError, "Failed to generate speech: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="output.mp3"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to write audio response")
	}
}

// writeStoreError maps store errors to the client-error class the way the
// product surface expects: unknown sessions and bad indexes are the
// caller's fault.
func (s *Server) writeStoreError(w http.ResponseWriter, err error, context string) {
	if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrInvalidIndex) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error().Err(err).Msg(context)
	writeError(w, http.StatusInternalServerError, context+": "+err.Error())
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
