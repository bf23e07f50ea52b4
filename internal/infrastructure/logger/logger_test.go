package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("creates logger with console format", func(t *testing.T) {
		log, err := New(DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("creates logger with json format", func(t *testing.T) {
		log, err := New(ProductionConfig())
		require.NoError(t, err)
		assert.NotNil(t, log)
	})
}

func TestParseLevel(t *testing.T) {
	t.Run("maps known levels", func(t *testing.T) {
		assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
		assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
		assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
		assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
		assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	})

	t.Run("defaults to info for unknown level", func(t *testing.T) {
		assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
	})
}

func TestContext(t *testing.T) {
	t.Run("round trips the logger through context", func(t *testing.T) {
		log, err := New(DefaultConfig())
		require.NoError(t, err)

		ctx := WithContext(context.Background(), log)
		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("returns no-op logger when absent", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}
