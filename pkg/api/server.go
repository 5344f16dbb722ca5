package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhasha-labs/bhasha/pkg/chat"
	"github.com/bhasha-labs/bhasha/pkg/session"
	"github.com/bhasha-labs/bhasha/pkg/speech"
	"github.com/bhasha-labs/bhasha/pkg/translate"
)

// apiPrefix is the versioned path all product routes live under.
const apiPrefix = "/api/v1"

// Options configures the HTTP server.
type Options struct {
	Host               string
	Port               int
	CORSOrigins        []string
	RateLimitPerMinute int
}

// Server is the HTTP boundary for chat, translation, and speech.
type Server struct {
	options        Options
	server         *http.Server
	chatService    *chat.Service
	store          *session.Store
	translator     *translate.Translator
	synth          speech.Synthesizer
	rateLimiter    *RateLimiter
	logger         zerolog.Logger
	startTime      time.Time
	isShuttingDown bool
	shutdownMu     sync.RWMutex
	inFlightReqs   sync.WaitGroup
}

// NewServer creates the HTTP server.
func NewServer(options Options, chatService *chat.Service, store *session.Store, translator *translate.Translator, synth speech.Synthesizer, logger zerolog.Logger) (*Server, error) {
	if options.Port == 0 {
		options.Port = 8000
	}
	if options.Host == "" {
		options.Host = "0.0.0.0"
	}
	if options.RateLimitPerMinute == 0 {
		options.RateLimitPerMinute = 100
	}
	if len(options.CORSOrigins) == 0 {
		options.CORSOrigins = []string{"*"}
	}

	if chatService == nil {
		return nil, fmt.Errorf("chat service is required")
	}
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if translator == nil {
		return nil, fmt.Errorf("translator is required")
	}
	if synth == nil {
		return nil, fmt.Errorf("synthesizer is required")
	}

	return &Server{
		options:     options,
		chatService: chatService,
		store:       store,
		translator:  translator,
		synth:       synth,
		rateLimiter: NewRateLimiter(options.RateLimitPerMinute),
		logger:      logger.With().Str("component", "api").Logger(),
		startTime:   time.Now(),
	}, nil
}

// Handler builds the full route table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET "+apiPrefix+"/chat-sessions/", s.handleListSessions)
	mux.HandleFunc("POST "+apiPrefix+"/text-query/", s.handleTextQuery)
	mux.HandleFunc("POST "+apiPrefix+"/voice-query/", s.handleVoiceQuery)
	mux.HandleFunc("POST "+apiPrefix+"/edit-message/", s.handleEditMessage)
	mux.HandleFunc("DELETE "+apiPrefix+"/chat-session/", s.handleDeleteSession)
	mux.HandleFunc("POST "+apiPrefix+"/translate", s.handleTranslate)
	mux.HandleFunc("GET "+apiPrefix+"/languages", s.handleLanguages)
	mux.HandleFunc("POST "+apiPrefix+"/text-to-speech", s.handleTextToSpeech)

	var handler http.Handler = mux
	handler = s.withRateLimit(handler)
	handler = s.withCORS(handler)
	handler = s.withLogging(handler)
	handler = s.withRequestID(handler)
	handler = s.withShutdownGuard(handler)
	return handler
}

// Start runs the server until Stop is called or listening fails.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.options.Host, s.options.Port),
		Handler: s.Handler(),
	}

	s.logger.Info().
		Str("host", s.options.Host).
		Int("port", s.options.Port).
		Msg("Starting API server")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start API server: %w", err)
	}
	return nil
}

// Stop gracefully stops the server, draining in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	s.shutdownMu.Lock()
	s.isShuttingDown = true
	s.shutdownMu.Unlock()

	s.logger.Info().Msg("Stopping API server")

	done := make(chan struct{})
	go func() {
		s.inFlightReqs.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn().Msg("Timed out waiting for in-flight requests")
	}

	s.rateLimiter.Stop()

	if s.server == nil {
		return nil
	}
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop API server: %w", err)
	}
	return nil
}
