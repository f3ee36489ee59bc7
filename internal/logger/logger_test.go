package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestBuildConfig(t *testing.T) {
	prod := buildConfig(Config{Level: "info", Stage: "prod", EnableJSON: true})
	assert.Equal(t, "json", prod.Encoding)
	assert.Equal(t, "taxpro-api", prod.InitialFields["service"])
	assert.True(t, prod.DisableStacktrace)

	local := buildConfig(Config{Level: "debug", Stage: "local", EnableColor: true})
	assert.Equal(t, "console", local.Encoding)
	assert.Equal(t, zapcore.DebugLevel, local.Level.Level())
	assert.False(t, local.DisableStacktrace)
}

func TestInitLogger(t *testing.T) {
	InitLogger("test")
	assert.NotNil(t, Log)
	assert.NotNil(t, WithCorrelationID("abc"))
}
