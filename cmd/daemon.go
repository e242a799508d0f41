package cmd

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/notifyme/notifyme/internal/metrics"
	"github.com/notifyme/notifyme/internal/notify"
	"github.com/notifyme/notifyme/internal/scheduler"
	"github.com/notifyme/notifyme/pkg/logger"
)

// daemon runs the scheduling loop in the foreground until SIGINT or
// SIGTERM arrives; an in-flight tick completes before exit.
func daemon(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		printRuntimeErr(ctx, "daemon", "load_config", err)
		return nil
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if tickSeconds > 0 {
		cfg.TickSeconds = tickSeconds
	}
	if leadMinutes > 0 {
		cfg.LeadMinutes = leadMinutes
	}
	if metricsListen != "" {
		cfg.MetricsListen = metricsListen
	}

	log := logger.NewStandardLogger(stdlog.Default())
	defer log.Close()

	st, err := openStore()
	if err != nil {
		printRuntimeErr(ctx, "daemon", "open_store", err)
		return nil
	}
	defer st.Close()

	notifier, err := notify.NewDesktop()
	if err != nil {
		printRuntimeErr(ctx, "daemon", "new_notifier", err)
		return nil
	}
	defer notifier.Close()

	if cfg.MetricsListen != "" {
		go func() {
			if err := metrics.Serve(cfg.MetricsListen); err != nil {
				log.Error("metrics listener: %v", err)
			}
		}()
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(st, notifier, log, scheduler.Options{
		Interval: time.Duration(cfg.TickSeconds) * time.Second,
		Lead:     time.Duration(cfg.LeadMinutes) * time.Minute,
	})
	sched.Run(runCtx)
	return nil
}
