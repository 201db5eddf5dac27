package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CryptoLive/internal/collector"
	"CryptoLive/internal/config"
	"CryptoLive/internal/logger"
	"CryptoLive/internal/notifier"
	"CryptoLive/internal/reporter"
	"CryptoLive/internal/scheduler"

	"go.uber.org/zap"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	fetcher := collector.NewCoinGeckoFetcher(cfg.DataSource.BaseURL, cfg.Proxy, cfg.DataSource.Timeout)
	zl.Info("data source", zap.String("name", fetcher.Name()), zap.String("base_url", fetcher.BaseURL))
	col := collector.NewCollector(fetcher, zl)

	var rep reporter.Reporter
	if cfg.Report.DryRun {
		zl.Info("dry run enabled, spreadsheet will not be written")
		rep = reporter.NewNoopReporter()
	} else {
		rep = reporter.NewExcelReporter(cfg.Report.OutputFile, zl)
	}
	defer rep.Close()

	var post notifier.PostWriteNotifier = notifier.NoopNotifier{}
	if cfg.Report.AutoOpen {
		post = notifier.NewOSOpener()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fmt.Println("Starting live updates...")
	sched := scheduler.NewScheduler(ctx, col, rep, post, cfg.Schedule.Interval, os.Stdout, zl)
	if err := sched.Start(); err != nil {
		zl.Fatal("start scheduler", zap.Error(err))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zl.Info("shutdown signal received, stopping...")
	sched.Stop()
}
