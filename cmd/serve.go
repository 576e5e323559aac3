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

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dclhub/dcl-hub-backend/internal/kvstore"
	"github.com/dclhub/dcl-hub-backend/internal/notification"
	"github.com/dclhub/dcl-hub-backend/middleware"
	"github.com/dclhub/dcl-hub-backend/routes"
	"github.com/dclhub/dcl-hub-backend/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	store, err := openStore(ctx, cfg, db)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.KVBackend, err)
	}
	defer kvstore.Close(store)

	publisher, subscriber, err := openBus(cfg)
	if err != nil {
		return fmt.Errorf("opening %s event bus: %w", cfg.EventTransport, err)
	}
	defer publisher.Close()

	auditRepo, err := openAuditRepo(db)
	if err != nil {
		return err
	}
	backups, err := openBackups(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening backup destination: %w", err)
	}

	// 🔔 Notifications
	if err := utils.InitFirebase(ctx, cfg); err != nil {
		log.Warn().Err(err).Msg("⚠️ Firebase unavailable, staff push notifications disabled")
	}
	dispatcher := notification.NewDispatcher(
		subscriber,
		notification.NewEmailChannel(cfg),
		notification.NewFCMChannel(utils.FCMClient),
		cfg.FCMStaffTopic,
	)
	go func() {
		if err := dispatcher.Run(ctx); err != nil {
			log.Error().Err(err).Msg("❌ Notification dispatcher stopped")
		}
	}()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.Setup(router, cfg, routes.Infra{
		Store:     store,
		Publisher: publisher,
		AuditRepo: auditRepo,
		Backups:   backups,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("prefix", cfg.ServicePrefix).
			Str("store", cfg.KVBackend).Str("events", cfg.EventTransport).
			Msg("🚀 Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("🛑 Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return subscriber.Close()
}
