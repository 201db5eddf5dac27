package logger

import "go.uber.org/zap"

// CronLogger adapts a zap logger to the cron.Logger interface.
type CronLogger struct {
	log *zap.SugaredLogger
}

// NewCronLogger wraps log for use with cron.WithLogger and cron job wrappers.
func NewCronLogger(log *zap.Logger) CronLogger {
	return CronLogger{log: log.Named("cron").Sugar()}
}

// Info logs routine scheduler messages at debug level; cron is chatty.
func (l CronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
