// Package audit persists one EmailLogEntry per send attempt. The write is
// awaited, but its failure never reaches the caller: a dropped log row is
// not a delivery failure.
package audit

import (
	"context"

	"go.uber.org/zap"

	"SceneMail/internal/metrics"
	"SceneMail/internal/models"
)

// Recorder is the slice of the log store the audit logger needs.
type Recorder interface {
	InsertLog(ctx context.Context, e *models.EmailLogEntry) error
}

type Logger struct {
	store Recorder
	log   *zap.Logger
}

func New(store Recorder, log *zap.Logger) *Logger {
	return &Logger{store: store, log: log}
}

// Record writes the entry and swallows any error after reporting it to
// the diagnostic log and the failure counter.
func (l *Logger) Record(ctx context.Context, e *models.EmailLogEntry) {
	if err := l.store.InsertLog(ctx, e); err != nil {
		metrics.LogWriteFailures.Inc()
		l.log.Error("email log write failed",
			zap.String("to", e.EmailTo),
			zap.String("scene", string(e.Scene)),
			zap.String("status", string(e.Status)),
			zap.Error(err),
		)
	}
}
