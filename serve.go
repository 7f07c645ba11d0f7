// path: serve.go
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kausheya2006/RaiseUrVoice/controllers"
	"github.com/Kausheya2006/RaiseUrVoice/database"
	"github.com/Kausheya2006/RaiseUrVoice/operator"
	"github.com/Kausheya2006/RaiseUrVoice/routes"
	"github.com/Kausheya2006/RaiseUrVoice/store"
)

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return err
	}
	defer disconnect(db, logger)

	verifier := operator.New(cfg.Operator.ID, cfg.Operator.PasswordHash)
	if _, ok := verifier.(operator.DenyAll); ok {
		logger.Warn("operator credential not configured; authority maintenance is disabled")
	}

	h := controllers.New(
		store.NewReportStore(db.Reports()),
		store.NewAuthorityStore(db.Authorities()),
		verifier,
		logger,
		controllers.Options{
			Timeout:           cfg.RequestTimeout,
			Location:          cfg.Location(),
			LegacyMonthLabels: cfg.LegacyMonthLabels,
		},
	)
	app := routes.NewApp(routes.AppConfig{
		BodyLimit:   cfg.BodyLimitBytes(),
		CORSOrigins: cfg.CORSOrigins,
	}, h, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("port", cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return err
	}
	return <-errCh
}

type disconnecter interface {
	Disconnect(ctx context.Context) error
}

// disconnect closes the client pool, giving in-flight operations 5s.
func disconnect(db disconnecter, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Disconnect(ctx); err != nil {
		log.Warn("mongo: disconnect failed", zap.Error(err))
	}
}
