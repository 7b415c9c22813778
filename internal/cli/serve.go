package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/logger"
	"github.com/Bhishaj9/redbull-backend/internal/notify"
	"github.com/Bhishaj9/redbull-backend/internal/payout"
	"github.com/Bhishaj9/redbull-backend/internal/plan"
	"github.com/Bhishaj9/redbull-backend/internal/server"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API, payout scheduler and notification worker",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Info("starting redbull backend")

	cfg, database, err := bootstrap()
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog := plan.NewCatalog(plan.NewRepository(database))
	if err := catalog.Load(ctx); err != nil {
		return err
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	notifier := notify.New(rdb, notify.SMTPSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Pass:     cfg.SMTPPass,
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
	}, cfg.AdminEmail)
	defer notifier.Close()
	go notifier.Start(ctx)

	engine := payout.NewEngine(payout.NewRepository(database), cfg.PayoutLocation(), notifier)
	if cfg.PayoutSchedulerEnabled {
		scheduler := payout.NewScheduler(engine, cfg.PayoutLocation(), cfg.PayoutHour)
		go func() {
			if err := scheduler.Start(ctx); err != nil {
				logger.Error("payout scheduler not started", "error", err)
			}
		}()
	}

	srv := server.New(ctx, cfg, server.Deps{
		DB:       database,
		Catalog:  catalog,
		Payouts:  engine,
		Notifier: notifier,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("received signal", "signal", s.String())
	case err := <-serverErr:
		logger.Error("server error", "error", err)
		return err
	}

	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
