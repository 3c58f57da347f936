package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"bills/internal/cli"
	"bills/internal/config"
	"bills/internal/core"
	"bills/internal/log"
	"bills/internal/observability"
	"bills/internal/services"
)

func main() {
	// Load .env file for local development
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(cfg)

	if err := run(context.Background(), cfg, logger, os.Args[1:], os.Stdout, time.Now()); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		cli.Fatal(logger, "Command failed", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string, out io.Writer, now time.Time) error {
	res, err := cli.InitStore(ctx, logger, cfg)
	if err != nil {
		return err
	}
	if res.Cleanup != nil {
		defer func() {
			if err := res.Cleanup(); err != nil {
				logger.Warn("Failed to close store", log.FieldError, err)
			}
		}()
	}

	metrics := observability.NewMetrics()
	opts := []services.Option{
		services.WithLogger(logger),
		services.WithMetrics(metrics),
		services.WithNotifier(services.NotifierFunc(func(_ context.Context, b core.Bill) {
			state := "unpaid"
			if b.IsPaid {
				state = "paid"
			}
			fmt.Fprintf(out, "%s marked as %s\n", b.Name, state)
		})),
	}
	if !cfg.SeedDemoBills {
		opts = append(opts, services.WithSeed(nil))
	}
	svc := services.NewBillService(res.Store, opts...)

	today := core.Today(now)
	if err := svc.Load(ctx, today); err != nil {
		if !core.IsPersistence(err) {
			return err
		}
		logger.Warn("Saved bills could not be read, showing defaults", log.FieldError, err)
	}

	services.NewReminder(cfg.ReminderDays, logger).Check(ctx, svc.Bills(), today)

	a := &app{
		svc:          svc,
		store:        res.Store,
		out:          out,
		today:        today,
		reminderDays: cfg.ReminderDays,
		logger:       logger,
	}
	err = a.dispatch(ctx, args)

	if cfg.MetricsTextfile != "" {
		if werr := metrics.WriteTextfile(cfg.MetricsTextfile); werr != nil {
			logger.Warn("Failed to write metrics textfile",
				log.FieldPath, cfg.MetricsTextfile,
				log.FieldError, werr)
		}
	}
	return err
}
