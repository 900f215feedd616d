package logbuf

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuffer_EvictsOldest(t *testing.T) {
	b := New(3)
	for i := 0; i < 5; i++ {
		b.Add(Entry{Message: fmt.Sprintf("m%d", i), Level: "INFO"})
	}

	got := b.Entries(0, time.Time{})
	require.Len(t, got, 3)
	assert.Equal(t, "m2", got[0].Message)
	assert.Equal(t, "m4", got[2].Message)
	assert.Equal(t, 3, b.Len())
}

func TestBuffer_LimitReturnsNewest(t *testing.T) {
	b := New(10)
	for i := 0; i < 6; i++ {
		b.Add(Entry{Message: fmt.Sprintf("m%d", i)})
	}

	got := b.Entries(2, time.Time{})
	require.Len(t, got, 2)
	assert.Equal(t, "m4", got[0].Message)
	assert.Equal(t, "m5", got[1].Message)
}

func TestBuffer_Since(t *testing.T) {
	b := New(10)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		b.Add(Entry{Timestamp: base.Add(time.Duration(i) * time.Minute), Message: fmt.Sprintf("m%d", i)})
	}

	got := b.Entries(0, base.Add(time.Minute))
	require.Len(t, got, 2)
	assert.Equal(t, "m2", got[0].Message)
}

func TestBuffer_Clear(t *testing.T) {
	b := New(2)
	b.Add(Entry{Message: "x"})
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Entries(0, time.Time{}))
}

func TestBuffer_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New(0).Capacity())
}

func TestCore_WritesFieldsAndComponent(t *testing.T) {
	b := New(10)
	log := zap.New(NewCore(b, zapcore.InfoLevel))

	log.With(zap.String("component", "pipeline")).Info("processed", zap.Int("cards", 12), zap.String("media", "a.mp4"))
	log.Debug("hidden")

	got := b.Entries(0, time.Time{})
	require.Len(t, got, 1)
	assert.Equal(t, "INFO", got[0].Level)
	assert.Equal(t, "pipeline", got[0].Source)
	assert.Equal(t, "processed cards=12 media=a.mp4", got[0].Message)
}

func TestSnapshot_RoundTripsThroughFile(t *testing.T) {
	path := t.TempDir() + "/nested/logs.json"

	b := New(2)
	b.Add(Entry{Message: "old", Level: "INFO"})
	b.Add(Entry{Message: "kept", Level: "WARN", Source: "pipeline"})
	b.Add(Entry{Message: "newest", Level: "ERROR"})
	require.NoError(t, b.SaveSnapshot(path))

	got, err := LoadSnapshot(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "kept", got[0].Message)
	assert.Equal(t, "pipeline", got[0].Source)
	assert.Equal(t, "newest", got[1].Message)
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	got, err := LoadSnapshot(t.TempDir() + "/none.json")
	require.NoError(t, err)
	assert.Empty(t, got)
}
