package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Backup takes scheduled snapshot copies of the store file. Snapshots are
// plain copies; they never touch live sessions.
type Backup struct {
	store    *Store
	dir      string
	schedule string
	c        *cron.Cron
	logger   zerolog.Logger
}

// NewBackup creates a snapshot scheduler. schedule uses cron syntax
// (descriptors like "@hourly" included).
func NewBackup(store *Store, dir, schedule string, logger zerolog.Logger) (*Backup, error) {
	if dir == "" {
		return nil, fmt.Errorf("backup directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	return &Backup{
		store:    store,
		dir:      dir,
		schedule: schedule,
		c:        cron.New(),
		logger:   logger.With().Str("component", "store-backup").Logger(),
	}, nil
}

// Start registers the schedule and begins taking snapshots.
func (b *Backup) Start() error {
	if _, err := b.c.AddFunc(b.schedule, func() {
		if err := b.Snapshot(); err != nil {
			b.logger.Error().Err(err).Msg("Snapshot failed")
		}
	}); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", b.schedule, err)
	}

	b.c.Start()
	b.logger.Info().Str("schedule", b.schedule).Str("dir", b.dir).Msg("Store backup started")
	return nil
}

// Stop halts the scheduler, waiting for a running snapshot to finish.
func (b *Backup) Stop() {
	<-b.c.Stop().Done()
	b.logger.Info().Msg("Store backup stopped")
}

// Snapshot flushes the store and copies its file into the backup directory
// with a timestamped name.
func (b *Backup) Snapshot() error {
	if err := b.store.Flush(); err != nil {
		return fmt.Errorf("failed to flush store: %w", err)
	}

	data, err := os.ReadFile(b.store.Path())
	if err != nil {
		return fmt.Errorf("failed to read store file: %w", err)
	}

	name := fmt.Sprintf("%s-%s.json",
		trimExt(filepath.Base(b.store.Path())),
		time.Now().Format("20060102T150405"))
	target := filepath.Join(b.dir, name)

	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	b.logger.Info().Str("snapshot", target).Msg("Snapshot written")
	return nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
