package assimpexport

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogTag names every diagnostic line written by the service.
const LogTag = "assimp_export"

func bracketName(name string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + name + "]")
}

// NewLogger builds the diagnostic logger. Lines go to stderr, console
// encoded and tagged "[assimp_export]".
func NewLogger(level string, development bool) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", level)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig.TimeKey = ""
		encoderConfig.CallerKey = ""
	}
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeName = bracketName

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(lvl),
	)
	opts := []zap.Option{}
	if development {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Named(LogTag), nil
}

func defaultLogger() *zap.Logger {
	logger, err := NewLogger("", false)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
