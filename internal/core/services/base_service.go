package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/metrics"
	"github.com/SscSPs/concierge_backoffice/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock   func() time.Time
	metrics *metrics.Recorder
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(b *BaseService) {
		b.clock = now
	}
}

// WithMetrics makes the service report to the given Prometheus recorder.
func WithMetrics(rec *metrics.Recorder) ServiceOption {
	return func(b *BaseService) {
		b.metrics = rec
	}
}

func newBaseService(opts []ServiceOption) BaseService {
	b := BaseService{clock: time.Now}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Now returns the current time according to the configured clock.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a recoverable failure, such as an undelivered notification.
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// validationError wraps a message as apperrors.ErrValidation.
func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// notify sends n and turns a failure into a reported outcome.
func (s *BaseService) notify(ctx context.Context, notifier portssvc.Notifier, purpose string, n domain.Notification) portssvc.NotificationOutcome {
	if err := notifier.Send(ctx, n); err != nil {
		s.LogWarn(ctx, err, "Notification not delivered", slog.String("purpose", purpose))
		s.metrics.NotificationFailed(purpose)
		return portssvc.NotificationOutcome{Attempted: true, Err: err}
	}
	s.LogDebug(ctx, "Notification delivered", slog.String("purpose", purpose))
	return portssvc.NotificationOutcome{Attempted: true}
}
