// Package logger wraps a global zap logger whose error entries are forwarded to sentry.
package logger

import (
	"context"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log          *zap.Logger
	sentryClient *sentry.Client
)

// Config holds logger configuration. Sentry is disabled without a DSN.
type Config struct {
	Debug     bool
	SentryDSN string
	// BreadcrumbLevel defaults to info
	BreadcrumbLevel zapcore.Level
	// Tags are attached to every sentry event, e.g. service and chain
	Tags map[string]string
}

// Initialize builds the global logger
func Initialize(cfg Config) error {
	zapConfig := zap.NewProductionConfig()
	if cfg.Debug {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	base, err := zapConfig.Build()
	if err != nil {
		return err
	}
	if cfg.SentryDSN == "" {
		log = base
		return nil
	}

	core, err := newSentryCore(cfg)
	if err != nil {
		return err
	}
	log = zapsentry.AttachCoreToLogger(core, base)
	return nil
}

func newSentryCore(cfg Config) (zapcore.Core, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:   cfg.SentryDSN,
		Debug: cfg.Debug,
	})
	if err != nil {
		return nil, err
	}
	sentryClient = client

	breadcrumbs := cfg.BreadcrumbLevel
	if breadcrumbs == zapcore.InvalidLevel {
		breadcrumbs = zapcore.InfoLevel
	}

	return zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   breadcrumbs,
		Tags:              cfg.Tags,
	}, zapsentry.NewSentryClientFromClient(client))
}

// Flush waits for buffered sentry events
func Flush(timeout time.Duration) {
	if sentryClient != nil {
		sentryClient.Flush(timeout)
	}
}

// FromContext returns the logger scoped to the sentry hub of ctx
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return log
	}
	return log.With(zapsentry.Context(ctx))
}

// AlertCtx logs an operator-visible alert. Alerts are always sent to sentry
// and carry the alert name as a field so they can be routed separately.
func AlertCtx(ctx context.Context, alert string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("alert", alert))
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	FromContext(ctx).Error("ALERT: "+alert, fields...)
}

func errorMessage(err error) string {
	if err == nil {
		return "error occurred"
	}
	return err.Error()
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Warn(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Debug(msg, fields...)
}

// Error logs err as the message
func Error(err error, fields ...zap.Field) {
	log.Error(errorMessage(err), fields...)
}

func ErrorCtx(ctx context.Context, err error, fields ...zap.Field) {
	FromContext(ctx).Error(errorMessage(err), fields...)
}

// FatalCtx logs and exits the process
func FatalCtx(ctx context.Context, msg string, fields ...zap.Field) {
	FromContext(ctx).Fatal(msg, fields...)
}
