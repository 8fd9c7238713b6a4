package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestConfigurationValidate(t *testing.T) {
	assert.NoError(t, Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339}.Validate())
	assert.NoError(t, Configuration{Level: DEBUG_LEVEL, TimeFormat: time.Kitchen}.Validate())
	assert.Error(t, Configuration{Level: 7, TimeFormat: time.RFC3339}.Validate())
	assert.Error(t, Configuration{Level: INFO_LEVEL}.Validate())
	assert.Error(t, Configuration{Level: INFO_LEVEL, TimeFormat: "no fields"}.Validate())
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_TIME_FORMAT", "")
		log, err := New()
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("debug from environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "-1")
		log, err := New()
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "9")
		_, err := New()
		assert.Error(t, err)
	})
}
