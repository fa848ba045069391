package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/bowerhall/sisters/internal/agent"
	"github.com/bowerhall/sisters/internal/backup"
	"github.com/bowerhall/sisters/internal/config"
	"github.com/bowerhall/sisters/internal/llm"
	"github.com/bowerhall/sisters/internal/logger"
	"github.com/bowerhall/sisters/internal/session"
	"github.com/bowerhall/sisters/internal/store"
	"github.com/bowerhall/sisters/internal/web"
)

func init() {
	godotenv.Load()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", "error", err)
	}
	defer st.Close()

	stats, err := st.Stats()
	if err != nil {
		logger.Fatal("failed to read database stats", "error", err)
	}
	logger.Info("database ready",
		"path", cfg.DatabasePath,
		"conversations", stats.Conversations,
		"memos", stats.Memos,
		"schedules", stats.Schedules,
		"profiles", stats.UserProfiles,
	)

	model, err := llm.New(llm.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if err != nil {
		logger.Fatal("failed to create llm", "error", err)
	}

	persona := agent.DefaultPersona()
	if cfg.PersonaFile != "" {
		persona, err = agent.LoadPersona(cfg.PersonaFile)
		if err != nil {
			logger.Fatal("failed to load persona", "error", err, "path", cfg.PersonaFile)
		}
		logger.Info("persona loaded", "path", cfg.PersonaFile, "name", persona.Name)
	}

	sister := agent.New(model, st, persona)

	// minio backup (optional)
	var backupClient *backup.Client
	if cfg.Backup.Enabled {
		backupClient, err = backup.NewClient(cfg.Backup)
		if err != nil {
			logger.Error("failed to create backup client", "error", err)
			backupClient = nil
		} else {
			initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := backupClient.Init(initCtx); err != nil {
				logger.Error("failed to init backup bucket", "error", err)
				backupClient = nil
			} else {
				logger.Info("backup enabled", "endpoint", cfg.Backup.Endpoint, "bucket", cfg.Backup.Bucket)
			}
			cancel()
		}
	}

	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("invalid timezone", "error", err, "timezone", cfg.Timezone)
	}

	scheduler := cron.New(cron.WithLocation(tz))
	_, err = scheduler.AddFunc(cfg.Retention.Schedule, func() {
		deleted, err := st.CleanupTurns(cfg.Retention.Days)
		if err != nil {
			logger.Error("retention cleanup failed", "error", err)
			return
		}
		if deleted > 0 {
			logger.Info("retention cleanup completed", "deleted", deleted, "days", cfg.Retention.Days)
		}

		if backupClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			name, err := backupClient.BackupFile(ctx, cfg.DatabasePath)
			if err != nil {
				logger.Error("backup failed", "error", err)
				return
			}
			logger.Info("backup completed", "name", name)

			if pruned, err := backupClient.Prune(ctx, cfg.Retention.Days); err != nil {
				logger.Error("backup prune failed", "error", err)
			} else if pruned > 0 {
				logger.Info("old backups pruned", "count", pruned)
			}
		}
	})
	if err != nil {
		logger.Fatal("invalid retention schedule", "error", err, "schedule", cfg.Retention.Schedule)
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := web.New(sister, st, session.OriginProvider{}, persona)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("sisters network starting", "port", cfg.Port, "llm", cfg.LLM.Provider, "timezone", cfg.Timezone)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
