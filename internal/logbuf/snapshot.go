package logbuf

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// SaveSnapshot writes the retained entries to path as JSON, replacing any
// previous snapshot atomically.
func (b *Buffer) SaveSnapshot(path string) error {
	data, err := json.Marshal(b.Entries(0, time.Time{}))
	if err != nil {
		return fmt.Errorf("encode log snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write log snapshot: %w", err)
	}
	return os.Rename(tmp, path)
}

// LoadSnapshot reads entries written by SaveSnapshot. A missing file yields
// no entries.
func LoadSnapshot(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode log snapshot %s: %w", path, err)
	}
	return entries, nil
}
