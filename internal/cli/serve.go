package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhasha-labs/bhasha/internal/config"
	"github.com/bhasha-labs/bhasha/internal/logger"
	"github.com/bhasha-labs/bhasha/pkg/api"
	"github.com/bhasha-labs/bhasha/pkg/chat"
	"github.com/bhasha-labs/bhasha/pkg/completion"
	"github.com/bhasha-labs/bhasha/pkg/language"
	"github.com/bhasha-labs/bhasha/pkg/session"
	"github.com/bhasha-labs/bhasha/pkg/speech"
	"github.com/bhasha-labs/bhasha/pkg/translate"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Bhasha HTTP server",
	Long: `Run the Bhasha HTTP server in the foreground.
The server exposes chat, translation, and text-to-speech endpoints and
stops cleanly on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader(cfgFile)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := config.NewValidator().Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	lg, err := logger.New(logger.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: cfg.Logging.Console,
		Pretty:  cfg.Logging.Pretty,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer lg.Close()
	zl := lg.GetZerolog()

	store, err := session.Open(cfg.Store.Path, zl)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer store.Close()

	provider, err := completion.NewProvider(completion.Config{
		Provider: cfg.Completion.Provider,
		APIKey:   cfg.Completion.APIKey,
		BaseURL:  cfg.Completion.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create completion provider: %w", err)
	}

	detector := language.NewDetector(zl)
	synth := speech.NewGoogleTTS(cfg.Speech.ScratchDir, zl)

	chatService := chat.NewService(provider, store, detector, synth, chat.Config{
		Model:       cfg.Completion.Model,
		MaxTokens:   cfg.Completion.MaxTokens,
		Temperature: cfg.Completion.Temperature,
	}, zl)

	translator := translate.New(provider, translate.Config{
		Model:       cfg.Completion.Model,
		MaxTokens:   cfg.Completion.MaxTokens,
		Temperature: cfg.Completion.Temperature,
	}, zl)

	if cfg.Store.Backup.Enabled {
		backup, err := session.NewBackup(store, cfg.Store.Backup.Dir, cfg.Store.Backup.Schedule, zl)
		if err != nil {
			return fmt.Errorf("failed to create store backup: %w", err)
		}
		if err := backup.Start(); err != nil {
			return fmt.Errorf("failed to start store backup: %w", err)
		}
		defer backup.Stop()
	}

	server, err := api.NewServer(api.Options{
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		CORSOrigins:        cfg.Server.CORSOrigins,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	}, chatService, store, translator, synth, zl)
	if err != nil {
		return fmt.Errorf("failed to create API server: %w", err)
	}

	// Config edits take effect on restart; the watch only surfaces them.
	loader.Watch(func(*config.Config) {
		zl.Info().Msg("Config file changed; restart to apply")
	}, func(err error) {
		zl.Warn().Err(err).Msg("Config reload failed")
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		zl.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop API server: %w", err)
	}
	return nil
}
