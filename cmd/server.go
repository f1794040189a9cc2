package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/GayathriPCh/LoLCode-AI/internal/auth"
	"github.com/GayathriPCh/LoLCode-AI/internal/chat"
	"github.com/GayathriPCh/LoLCode-AI/internal/render"
	"github.com/GayathriPCh/LoLCode-AI/internal/server"
	"github.com/GayathriPCh/LoLCode-AI/internal/web"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the chat server",
	Long:  `Starts the lolcode HTTP server with the chat API, account routes, markdown rendering and the web chat UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}
		logger := setupLogger(cfg)

		proxy, err := createProxyFromConfig(cfg, logger)
		if err != nil {
			return err
		}
		warnMissingAPIKey(cfg, logger)

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:           cfg.Port,
			AllowedOrigins: cfg.AllowedOrigins,
		}, database, logger)

		authSvc := auth.NewService(auth.NewStore(database), cfg.SessionTTL, logger)

		r := srv.Router()
		chat.RegisterRoutes(r, proxy)
		auth.RegisterRoutes(r, authSvc)
		render.RegisterRoutes(r, render.New(render.DefaultStyle))
		web.New(proxy, logger).RegisterRoutes(r)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go purgeSessions(ctx, authSvc, logger)

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		logger.Info("lolcode server starting",
			"version", Version,
			"port", cfg.Port,
			"provider", cfg.Provider,
			"model", proxy.Model(),
			"database", database.Path(),
		)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	},
}

// purgeSessions deletes expired sessions once an hour until ctx is done.
func purgeSessions(ctx context.Context, svc *auth.Service, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := svc.Store().PurgeExpired(ctx, now)
			if err != nil && ctx.Err() == nil {
				logger.Warn("purging expired sessions", "error", err)
			} else if n > 0 {
				logger.Debug("purged expired sessions", "count", n)
			}
		}
	}
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 3000, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
