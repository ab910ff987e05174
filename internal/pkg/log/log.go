package log

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Logger is the context-first logger consumed by usecases and repositories.
type Logger interface {
	Info(ctx context.Context, message string, args ...interface{})
	Warn(ctx context.Context, message string, args ...interface{})
	Error(ctx context.Context, message string, args ...interface{})
}

var logger Logger

func SetupLogger() *otelzap.Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to setup logger: %v", err))
	}
	return otelzap.New(zapLogger)
}

func Init(l *otelzap.Logger) {
	logger = &otelLogger{l: l}
}

func GetLogger() Logger {
	return logger
}

type otelLogger struct {
	l *otelzap.Logger
}

func (o *otelLogger) Info(ctx context.Context, message string, args ...interface{}) {
	o.l.Ctx(ctx).Info(withArgs(message, args...))
}

func (o *otelLogger) Warn(ctx context.Context, message string, args ...interface{}) {
	o.l.Ctx(ctx).Warn(withArgs(message, args...))
}

func (o *otelLogger) Error(ctx context.Context, message string, args ...interface{}) {
	o.l.Ctx(ctx).Error(withArgs(message, args...))
}

func withArgs(message string, args ...interface{}) string {
	if len(args) == 0 {
		return message
	}
	return fmt.Sprintf("%s: %v", message, args)
}
