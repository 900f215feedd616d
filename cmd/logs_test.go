package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/kidlingo/internal/logbuf"
)

func TestFilterLogs(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []logbuf.Entry{
		{Timestamp: now.Add(-2 * time.Hour), Level: "ERROR", Source: "pipeline", Message: "old"},
		{Timestamp: now.Add(-time.Minute), Level: "INFO", Source: "pipeline.queue", Message: "drained"},
		{Timestamp: now.Add(-time.Minute), Level: "DEBUG", Source: "watcher", Message: "event"},
		{Timestamp: now.Add(-time.Minute), Level: "WARN", Source: "llm", Message: "retry"},
	}

	messages := func(es []logbuf.Entry) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.Message)
		}
		return out
	}

	assert.Equal(t, []string{"old", "drained", "retry"}, messages(filterLogs(entries, "info", "", 0, now)))
	assert.Equal(t, []string{"old", "retry"}, messages(filterLogs(entries, "warn", "", 0, now)))
	assert.Equal(t, []string{"drained", "event", "retry"}, messages(filterLogs(entries, "", "", time.Hour, now)))
	assert.Equal(t, []string{"old", "drained"}, messages(filterLogs(entries, "", "pipeline", 0, now)))
	assert.Equal(t, []string{"drained"}, messages(filterLogs(entries, "", "QUEUE", 0, now)))
	assert.Equal(t, []string{"drained"}, messages(filterLogs(entries, "", "pipeline.queue", 0, now)))
}
