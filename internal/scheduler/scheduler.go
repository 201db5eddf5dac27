package scheduler

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"CryptoLive/internal/analyzer"
	"CryptoLive/internal/collector"
	"CryptoLive/internal/logger"
	"CryptoLive/internal/model"
	"CryptoLive/internal/notifier"
	"CryptoLive/internal/reporter"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the fetch, report and analyze cycle on a fixed interval.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Reporter  reporter.Reporter
	Notifier  notifier.PostWriteNotifier
	Interval  time.Duration
	Out       io.Writer

	ctx     context.Context
	cancel  context.CancelFunc
	log     *zap.Logger
	job     cron.Job
	cycleMu sync.Mutex
	wg      sync.WaitGroup
}

// NewScheduler creates a new Scheduler. Cancelling ctx aborts an in-flight
// fetch; Stop does the same.
func NewScheduler(ctx context.Context, col *collector.Collector, rep reporter.Reporter, post notifier.PostWriteNotifier,
	interval time.Duration, out io.Writer, log *zap.Logger) *Scheduler {
	if post == nil {
		post = notifier.NoopNotifier{}
	}
	cl := logger.NewCronLogger(log)
	ctx, cancel := context.WithCancel(ctx)
	s := &Scheduler{
		Cron:      cron.New(cron.WithLogger(cl)),
		Collector: col,
		Reporter:  rep,
		Notifier:  post,
		Interval:  interval,
		Out:       out,
		ctx:       ctx,
		cancel:    cancel,
		log:       log.Named("scheduler"),
	}
	s.job = cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)).Then(cron.FuncJob(func() { s.RunNow() }))
	return s
}

// Start runs one cycle immediately, then one per Interval.
func (s *Scheduler) Start() error {
	if s.Interval < time.Second {
		return fmt.Errorf("poll interval must be at least 1s, got %s", s.Interval)
	}
	s.Cron.Schedule(cron.Every(s.Interval), s.job)
	s.Cron.Start()
	s.log.Info("scheduler started", zap.Duration("interval", s.Interval))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.job.Run()
	}()
	return nil
}

// Stop cancels any in-flight fetch and waits for the running cycle to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.Cron.Stop().Done()
	s.wg.Wait()
	s.log.Info("scheduler stopped")
}

// RunNow executes one poll cycle and returns its analysis, or nil when the
// fetch produced no data.
func (s *Scheduler) RunNow() *model.MarketAnalysis {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	table := s.Collector.Collect(s.ctx)
	if table.Empty() {
		fmt.Fprintln(s.Out, "Failed to fetch data. Retrying...")
		return nil
	}

	written := s.report(table)

	analysis := analyzer.Analyze(table)
	if written {
		fmt.Fprintln(s.Out, "Excel updated and analysis generated:")
	} else {
		fmt.Fprintln(s.Out, "Analysis generated:")
	}
	fmt.Fprintln(s.Out, notifier.FormatAnalysis(analysis))
	return analysis
}

// report writes the table and hands the file to the post-write notifier.
// It reports whether a file was written.
func (s *Scheduler) report(table model.SnapshotTable) bool {
	path, err := s.Reporter.Write(table)
	if err != nil {
		s.log.Error("write report", zap.Error(err))
		return false
	}
	if path == "" {
		return false
	}
	if err := s.Notifier.Notify(s.ctx, path); err != nil {
		s.log.Warn("post-write notify", zap.String("path", path), zap.Error(err))
	}
	return true
}
