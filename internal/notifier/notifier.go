package notifier

import "context"

// PostWriteNotifier is told about every report file after it is written.
type PostWriteNotifier interface {
	Notify(ctx context.Context, path string) error
}

// NoopNotifier ignores every report.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, string) error { return nil }
