package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store owns every chat session. It mirrors a single JSON document on disk:
// the document is loaded once at construction and the whole file is rewritten
// after every mutation. Corrupt or schema-invalid content degrades to an
// empty store instead of failing startup.
type Store struct {
	path     string
	mu       sync.RWMutex
	sessions map[string]*Session
	logger   zerolog.Logger
}

// Open loads the store document at path, creating parent directories as
// needed. A missing file yields an empty store.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	s := &Store{
		path:     path,
		sessions: make(map[string]*Session),
		logger:   logger.With().Str("component", "session-store").Logger(),
	}
	s.load()

	s.logger.Info().Str("path", path).Int("sessions", len(s.sessions)).Msg("Session store opened")
	return s, nil
}

// load reads the persisted document into memory. Any read, schema, or decode
// failure leaves the store empty.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Msg("Failed to read store file, starting empty")
		}
		return
	}

	if err := validateDocument(data); err != nil {
		s.logger.Warn().Err(err).Msg("Store file failed schema check, starting empty")
		return
	}

	var sessions map[string]*Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to decode store file, starting empty")
		return
	}
	if sessions != nil {
		s.sessions = sessions
	}
}

// persist rewrites the whole document. Callers must hold the write lock.
// The tmp-file rename keeps a half-written file from replacing a good one,
// but there is no transactional guarantee across process crashes.
func (s *Store) persist() error {
	data, err := json.Marshal(s.sessions)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// Resolve returns the session for id, creating a fresh one with a new unique
// id when id is empty or unknown. Creation is in-memory only; the file is
// rewritten on the first mutation that touches the transcript.
func (s *Store) Resolve(id string) (string, []Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" || s.sessions[id] == nil {
		id = uuid.NewString()
		s.sessions[id] = &Session{Created: time.Now()}
		s.logger.Info().Str("session_id", id).Msg("Session created")
	}
	return id, cloneTurns(s.sessions[id].Turns)
}

// History returns a copy of the transcript for id.
func (s *Store) History(id string) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneTurns(sess.Turns), nil
}

// Append adds turns to the end of the session's transcript and persists.
func (s *Store) Append(id string, turns ...Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.Turns = append(sess.Turns, turns...)
	return s.persist()
}

// List returns the derived id -> metadata view. No mutation.
func (s *Store) List() map[string]Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Info, len(s.sessions))
	for id, sess := range s.sessions {
		out[id] = Info{Created: sess.Created, MessageCount: len(sess.Turns)}
	}
	return out
}

// EditTurn overwrites the content and time stamp of one turn, persists, and
// returns the updated transcript. Turn order and count never change.
func (s *Store) EditTurn(id string, index int, content string) ([]Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if index < 0 || index >= len(sess.Turns) {
		return nil, ErrInvalidIndex
	}

	sess.Turns[index].Content = content
	sess.Turns[index].Time = time.Now().Format(TimeLayout)

	if err := s.persist(); err != nil {
		return nil, err
	}

	s.logger.Info().Str("session_id", id).Int("index", index).Msg("Turn edited")
	return cloneTurns(sess.Turns), nil
}

// Delete removes the session wholesale and persists.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)

	if err := s.persist(); err != nil {
		return err
	}

	s.logger.Info().Str("session_id", id).Msg("Session deleted")
	return nil
}

// Flush rewrites the document from the in-memory view.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

// Path returns the store file location.
func (s *Store) Path() string {
	return s.path
}

// Close flushes the store a final time.
func (s *Store) Close() error {
	if err := s.Flush(); err != nil {
		return err
	}
	s.logger.Info().Msg("Session store closed")
	return nil
}

func cloneTurns(turns []Turn) []Turn {
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}
