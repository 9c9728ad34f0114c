package logging

import (
	"testing"

	"github.com/naijatax/paye/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestNew(t *testing.T) {
	dev, err := New(Config{Level: "debug", Stage: "development"})
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod, err := New(Config{Level: "warn", Stage: "production"})
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, prod.Core().Enabled(zapcore.WarnLevel))
}

func TestNewCLI_SatisfiesEngineLogger(t *testing.T) {
	sugar, err := NewCLI(false)
	require.NoError(t, err)

	var l calculation.Logger = sugar
	assert.NotNil(t, l)
	assert.False(t, sugar.Desugar().Core().Enabled(zapcore.InfoLevel), "quiet CLI only logs warnings")

	verbose, err := NewCLI(true)
	require.NoError(t, err)
	assert.True(t, verbose.Desugar().Core().Enabled(zapcore.DebugLevel))
}
