package logger

import (
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Build the CLI logger from the environment. LOG_LEVEL uses zap's numbering
// (-1 is debug), and LOG_TIME_FORMAT is a Go time layout.
func New() (*zap.Logger, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LOG_LEVEL", INFO_LEVEL)
	v.SetDefault("LOG_TIME_FORMAT", time.RFC3339Nano)

	cfg := Configuration{
		Level:      v.GetInt("LOG_LEVEL"),
		TimeFormat: v.GetString("LOG_TIME_FORMAT"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return NewWithConfig(cfg)
}

// Logs go to stderr, so they never mix with the diagonals on stdout.
func NewWithConfig(cfg Configuration) (*zap.Logger, error) {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zapConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	return zapConfig.Build()
}
