package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shivanand-hulikatti/event-finder/internal/auth"
	"github.com/Shivanand-hulikatti/event-finder/internal/database"
	"github.com/Shivanand-hulikatti/event-finder/internal/handler"
	"github.com/Shivanand-hulikatti/event-finder/internal/repository"
	"github.com/Shivanand-hulikatti/event-finder/internal/repository/memstore"
	"github.com/Shivanand-hulikatti/event-finder/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	servePort   string
	serveMemory bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server.

By default events are stored in PostgreSQL (DATABASE_URL or DB_*). With
--memory the server keeps everything in process, which is handy for local
frontend work.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&serveMemory, "memory", false, "Use the in-memory store instead of PostgreSQL")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logrus.StandardLogger()

	provider, err := auth.NewProvider(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	if err != nil {
		return err
	}

	// ── 1. Storage ───────────────────────────────────────────────────────
	var (
		events    service.EventStore
		favorites service.FavoriteStore
		history   service.HistoryStore
		users     service.UserStore
	)
	if serveMemory {
		events = memstore.NewEvents(time.Now)
		favorites = memstore.NewMarks(time.Now)
		history = memstore.NewMarks(time.Now)
		users = memstore.NewUsers(time.Now)
		log.Info("using in-memory store")
	} else {
		pool, err := database.NewPool(ctx, cfg.DSN())
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()
		log.Info("connected to PostgreSQL")

		events = repository.NewEventRepository(pool)
		favorites = repository.NewFavoriteRepository(pool)
		history = repository.NewHistoryRepository(pool)
		users = repository.NewUserRepository(pool)
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	svc := service.NewEventService(events, favorites, history, users,
		service.WithLocation(cfg.Location),
		service.WithPageSize(cfg.PageSize),
		service.WithLogger(log),
	)

	// ── 3. Start server with graceful shutdown ───────────────────────────
	port := cfg.Port
	if servePort != "" {
		port = servePort
	}
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler.NewRouter(svc, provider, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
