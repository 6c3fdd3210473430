// Package logging builds the zap logger used for diagnostics. The prompt
// itself goes to stdout, so logs only ever go to the given writer.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a debug-level console logger writing to w when verbose is
// set, and a no-op logger otherwise.
func New(verbose bool, w io.Writer) *zap.Logger {
	if !verbose || w == nil {
		return zap.NewNop()
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named("powerline")
}

// Enabled reports whether the environment asks for debug logs.
func Enabled(getenv func(string) string) bool {
	switch getenv("POWERLINE_DEBUG") {
	case "", "0", "false":
		return false
	}
	return true
}
