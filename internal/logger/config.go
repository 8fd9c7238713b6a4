package logger

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Levels follow zapcore's numbering
const (
	DEBUG_LEVEL = int(zapcore.DebugLevel)
	INFO_LEVEL  = int(zapcore.InfoLevel)
	WARN_LEVEL  = int(zapcore.WarnLevel)
	ERROR_LEVEL = int(zapcore.ErrorLevel)
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return errors.Errorf("log level %d not in [%d, %d]", c.Level, DEBUG_LEVEL, ERROR_LEVEL)
	}
	if c.TimeFormat == "" {
		return errors.New("log time format is empty")
	}
	// A layout without any reference time component formats every time the same
	if time.Unix(0, 0).UTC().Format(c.TimeFormat) == time.Unix(86400*400+3661, 0).UTC().Format(c.TimeFormat) {
		return errors.Errorf("log time format %q has no time fields", c.TimeFormat)
	}
	return nil
}
