package jsonrepair

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DumpWriter saves unrecoverable responses for offline inspection.
type DumpWriter struct {
	dir string
	now func() time.Time
}

// NewDumpWriter writes dumps under dir. An empty dir disables dumping.
func NewDumpWriter(dir string) *DumpWriter {
	return &DumpWriter{dir: dir, now: time.Now}
}

// Write stores the raw and cleaned bodies of perr and returns the file path.
// A nil writer or empty directory writes nothing and returns "".
func (w *DumpWriter) Write(perr *ParseError) (string, error) {
	if w == nil || w.dir == "" || perr == nil {
		return "", nil
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create dump dir: %w", err)
	}

	name := fmt.Sprintf("ai_response_error_%d_%s.txt", w.now().Unix(), uuid.NewString()[:8])
	path := filepath.Join(w.dir, name)

	line, col := perr.Position()
	var b strings.Builder
	b.WriteString("=== ORIGINAL RESPONSE ===\n")
	b.WriteString(perr.Raw)
	b.WriteString("\n\n=== CLEANED ===\n")
	b.WriteString(perr.Cleaned)
	b.WriteString("\n\n=== ERROR ===\n")
	if perr.Err != nil {
		b.WriteString(perr.Err.Error())
	}
	fmt.Fprintf(&b, "\n\nOffset: %d, line %d, column %d\n", perr.Offset, line, col)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write dump: %w", err)
	}
	return path, nil
}
