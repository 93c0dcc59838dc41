package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l := New()
	require.NotNil(t, l.Log)
	require.False(t, l.Log.Core().Enabled(zapcore.ErrorLevel))
}

func TestInit(t *testing.T) {
	l := New()
	require.NoError(t, l.Init("WARN"))
	require.True(t, l.Log.Core().Enabled(zapcore.WarnLevel))
	require.False(t, l.Log.Core().Enabled(zapcore.InfoLevel))

	require.NoError(t, l.Init("debug"))
	require.True(t, l.Log.Core().Enabled(zapcore.DebugLevel))
}

func TestInitInvalidLevel(t *testing.T) {
	l := New()
	require.Error(t, l.Init("verbose"))
	require.NotNil(t, l.Log)
}
