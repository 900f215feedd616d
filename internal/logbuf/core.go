package logbuf

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

// core is a zapcore.Core that mirrors log lines into a Buffer.
type core struct {
	zapcore.LevelEnabler
	buf    *Buffer
	fields []zapcore.Field
}

// NewCore returns a zapcore.Core writing entries at or above level into buf.
// Structured fields are rendered as key=value pairs after the message.
func NewCore(buf *Buffer, level zapcore.LevelEnabler) zapcore.Core {
	return &core{LevelEnabler: level, buf: buf}
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &core{LevelEnabler: c.LevelEnabler, buf: c.buf, fields: merged}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	source := ent.LoggerName
	if comp, ok := enc.Fields["component"].(string); ok && comp != "" {
		source = comp
		delete(enc.Fields, "component")
	}
	if source == "" {
		source = "system"
	}

	c.buf.Add(Entry{
		Timestamp: ent.Time,
		Level:     strings.ToUpper(ent.Level.String()),
		Message:   formatMessage(ent.Message, enc.Fields),
		Source:    source,
	})
	return nil
}

func (c *core) Sync() error { return nil }

func formatMessage(msg string, fields map[string]any) string {
	if len(fields) == 0 {
		return msg
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(msg)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}
