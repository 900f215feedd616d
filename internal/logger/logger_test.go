package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/kidlingo/internal/logbuf"
)

func TestLogger_RedactsSecrets(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(&out, zapcore.DebugLevel, nil)

	log.Info("configured", "openai_api_key", "sk-123", "model", "gpt-4o")
	log.Sync()

	assert.NotContains(t, out.String(), "sk-123")
	assert.Contains(t, out.String(), "[REDACTED]")
	assert.Contains(t, out.String(), "gpt-4o")
}

func TestLogger_RedactionKeepsUsageCounts(t *testing.T) {
	tests := []struct {
		key    string
		redact bool
	}{
		{"api_key", true},
		{"OPENAI_API_KEY", true},
		{"token", true},
		{"access_token", true},
		{"client_secret", true},
		{"Authorization", true},
		{"input_tokens", false},
		{"output_tokens", false},
		{"max_tokens", false},
		{"tokenizer", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var out bytes.Buffer
			log := NewWriter(&out, zapcore.DebugLevel, nil)
			log.Info("llm request", tt.key, "v-4821")
			log.Sync()

			if tt.redact {
				assert.NotContains(t, out.String(), "v-4821")
				assert.Contains(t, out.String(), "[REDACTED]")
			} else {
				assert.Contains(t, out.String(), "v-4821")
				assert.NotContains(t, out.String(), "[REDACTED]")
			}
		})
	}
}

func TestLogger_NestedNamesJoin(t *testing.T) {
	var out bytes.Buffer
	buf := logbuf.New(5)
	log := NewWriter(&out, zapcore.InfoLevel, buf).Named("pipeline").Named("queue")

	log.Info("drained", "count", 2)

	entries := buf.Entries(0, time.Time{})
	require.Len(t, entries, 1)
	assert.Equal(t, "pipeline.queue", entries[0].Source)
	assert.Equal(t, 1, strings.Count(out.String(), "pipeline.queue"))
	assert.NotContains(t, out.String(), "component")
}

func TestLogger_TeesIntoBuffer(t *testing.T) {
	var out bytes.Buffer
	buf := logbuf.New(5)
	log := NewWriter(&out, zapcore.InfoLevel, buf).Named("watcher")

	log.Warn("skipping empty file", "path", "/videos/a.mp4")
	log.Debug("not captured")

	entries := buf.Entries(0, time.Time{})
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "watcher", entries[0].Source)
	assert.Contains(t, entries[0].Message, "path=/videos/a.mp4")
}

func TestNew_RejectsBadLevel(t *testing.T) {
	_, err := New(Options{Mode: "dev", Level: "loud"})
	assert.Error(t, err)
}
