package chat

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhasha-labs/bhasha/pkg/completion"
	"github.com/bhasha-labs/bhasha/pkg/language"
	"github.com/bhasha-labs/bhasha/pkg/moderation"
	"github.com/bhasha-labs/bhasha/pkg/session"
	"github.com/bhasha-labs/bhasha/pkg/speech"
)

// historySentinel returns the existing transcript without generating
// anything or touching state. Compared trimmed and case-insensitive.
const historySentinel = "load history"

// historyContextTurns is how many trailing turns travel as prompt context.
const historyContextTurns = 5

// Config holds the generation parameters passed on every completion call.
type Config struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// QueryResult is the outcome of one chat query. AudioResponse is set only
// when voice output was requested and synthesis succeeded.
type QueryResult struct {
	TextResponse  string         `json:"text_response"`
	SessionID     string         `json:"session_id,omitempty"`
	ChatHistory   []session.Turn `json:"chat_history,omitempty"`
	AudioResponse *string        `json:"audio_response,omitempty"`
}

// Service orchestrates chat queries: screening, session handling, language
// pinned generation, and optional voice output.
type Service struct {
	provider completion.Provider
	store    *session.Store
	detector *language.Detector
	filter   *moderation.ContentFilter
	synth    speech.Synthesizer
	cfg      Config
	logger   zerolog.Logger
	now      func() time.Time
}

// NewService creates a chat service.
func NewService(provider completion.Provider, store *session.Store, detector *language.Detector, synth speech.Synthesizer, cfg Config, logger zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		store:    store,
		detector: detector,
		filter:   moderation.New(),
		synth:    synth,
		cfg:      cfg,
		logger:   logger.With().Str("component", "chat").Logger(),
		now:      time.Now,
	}
}

// ProcessTextQuery handles one chat query end to end. Completion failures
// surface as errors; voice synthesis failures degrade to a text-only result.
func (s *Service) ProcessTextQuery(ctx context.Context, query, sessionID string, voice bool) (QueryResult, error) {
	if refusal, blocked := s.filter.Check(query); blocked {
		s.logger.Info().Msg("Query refused by content screening")
		return QueryResult{TextResponse: refusal}, nil
	}

	sessionID, history := s.store.Resolve(sessionID)

	if strings.EqualFold(strings.TrimSpace(query), historySentinel) {
		return QueryResult{SessionID: sessionID, ChatHistory: history}, nil
	}

	answer, err := s.generate(ctx, query, history)
	if err != nil {
		return QueryResult{}, fmt.Errorf("error processing query with AI: %w", err)
	}

	now := s.now()
	if err := s.store.Append(sessionID,
		session.UserTurn(query, now),
		session.AssistantTurn(answer, now),
	); err != nil {
		return QueryResult{}, fmt.Errorf("failed to record turns: %w", err)
	}

	history, err = s.store.History(sessionID)
	if err != nil {
		return QueryResult{}, fmt.Errorf("failed to reload history: %w", err)
	}

	result := QueryResult{
		TextResponse: answer,
		SessionID:    sessionID,
		ChatHistory:  history,
	}

	if voice {
		result.AudioResponse = s.synthesizeAnswer(ctx, answer)
	}

	return result, nil
}

// generate produces a language-pinned answer for query given prior history.
func (s *Service) generate(ctx context.Context, query string, history []session.Turn) (string, error) {
	queryLang := s.detector.Detect(query)
	langName := language.DisplayName(queryLang)

	request := completion.Request{
		Model:       s.cfg.Model,
		System:      systemPrompt(langName),
		Messages:    []completion.Message{{Role: "user", Content: userPrompt(query, history, langName, s.now())}},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	answer, err := s.provider.Complete(ctx, request)
	if err != nil {
		return "", err
	}

	if answerLang := s.detector.Detect(answer); answerLang != queryLang {
		s.logger.Warn().
			Str("expected", string(queryLang)).
			Str("got", string(answerLang)).
			Msg("Response language mismatch")
		if apology, ok := apologies[queryLang]; ok {
			answer = apology + answer
		}
	}

	return answer, nil
}

// synthesizeAnswer returns base64 MP3 audio for answer, or nil when
// synthesis fails. The answer's own language picks the voice, clamped to
// the subset the engine supports.
func (s *Service) synthesizeAnswer(ctx context.Context, answer string) *string {
	lang := language.TTSCode(s.detector.Detect(answer))

	audio, err := s.synth.Synthesize(ctx, answer, lang)
	if err != nil {
		s.logger.Error().Err(err).Msg("Voice synthesis failed, returning text only")
		return nil
	}

	encoded := base64.StdEncoding.EncodeToString(audio)
	return &encoded
}
