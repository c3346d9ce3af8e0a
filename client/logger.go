package client

import "go.uber.org/zap"

// zapLogger adapts a *zap.SugaredLogger to the Logger interface, giving
// EventLoop structured output (mid, revision, direction fields added by
// callers via Sugar's Infof-style formatting) in place of the teacher's
// bare log.Printf calls.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l zapLogger) Printf(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// NewZapLogger builds a production zap logger and adapts it to Logger.
// Panics if the underlying zap.NewProduction build fails, since that only
// happens on a broken encoder/sink configuration — a programming error,
// not a runtime condition.
func NewZapLogger() Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("client: failed to build zap logger: " + err.Error())
	}
	return zapLogger{sugar: logger.Sugar()}
}
