package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		production bool
		want       zapcore.Level
	}{
		{"configured level wins in production", "debug", true, zapcore.DebugLevel},
		{"configured level wins in development", "warn", false, zapcore.WarnLevel},
		{"error level", "error", true, zapcore.ErrorLevel},
		{"unset falls back to info in production", "", true, zapcore.InfoLevel},
		{"unset falls back to debug in development", "", false, zapcore.DebugLevel},
		{"unparsable falls back in production", "loudest", true, zapcore.InfoLevel},
		{"unparsable falls back in development", "loudest", false, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveLevel(tt.level, tt.production))
		})
	}
}
