// Command worker runs the background task worker and its schedules.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/itplanet/retail-backend/internal/app"
	"github.com/itplanet/retail-backend/internal/platform/db"
	"github.com/itplanet/retail-backend/jobs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})
	worker := jobs.NewWorker(logger, pool)

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register("@every 1h", jobs.NewPaymentsStatusSyncTask()); err != nil {
		logger.Error("register payment status sync", slog.Any("error", err))
		os.Exit(1)
	}
	lowStock, err := jobs.NewLowStockScanTask(cfg.LowStockThreshold)
	if err != nil {
		logger.Error("build low stock task", slog.Any("error", err))
		os.Exit(1)
	}
	if _, err := scheduler.Register("0 8 * * *", lowStock); err != nil {
		logger.Error("register low stock scan", slog.Any("error", err))
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(worker.Mux())
	})
	g.Go(func() error {
		return scheduler.Run()
	})
	g.Go(func() error {
		<-ctx.Done()
		scheduler.Shutdown()
		srv.Shutdown()
		return nil
	})

	logger.Info("worker started")
	if err := g.Wait(); err != nil {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
