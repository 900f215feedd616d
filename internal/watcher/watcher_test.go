package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kidlingo/internal/store"
	"github.com/abhisek/kidlingo/internal/store/storetest"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func newTestWatcher(t *testing.T, dir string, recursive bool) (*Watcher, *store.Store) {
	t.Helper()
	s := storetest.Open(t)
	cfg := DefaultConfig()
	cfg.Dir = dir
	cfg.Recursive = recursive
	cfg.SettleInterval = 25 * time.Millisecond
	cfg.SettleChecks = 4
	return New(cfg, s.MediaRepo(), nil), s
}

func TestIsVideo(t *testing.T) {
	w, _ := newTestWatcher(t, t.TempDir(), true)
	assert.True(t, w.IsVideo("/a/lesson.MP4"))
	assert.True(t, w.IsVideo("b.webm"))
	assert.False(t, w.IsVideo("notes.txt"))
	assert.False(t, w.IsVideo("noext"))
}

func TestCustomExtensions(t *testing.T) {
	s := storetest.Open(t)
	w := New(Config{Dir: t.TempDir(), Extensions: []string{"MP4", ".ts"}}, s.MediaRepo(), nil)
	assert.True(t, w.IsVideo("x.ts"))
	assert.True(t, w.IsVideo("x.mp4"))
	assert.False(t, w.IsVideo("x.mkv"))
}

func TestRegisterSkipsEmptyMissingAndKnown(t *testing.T) {
	dir := t.TempDir()
	w, s := newTestWatcher(t, dir, true)
	ctx := context.Background()

	empty := filepath.Join(dir, "empty.mp4")
	writeFile(t, empty, "")
	ok, err := w.Register(ctx, empty)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = w.Register(ctx, filepath.Join(dir, "missing.mp4"))
	require.NoError(t, err)
	assert.False(t, ok)

	video := filepath.Join(dir, "lesson.mp4")
	writeFile(t, video, "data")
	mtime := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(video, mtime, mtime))

	ok, err = w.Register(ctx, video)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = w.Register(ctx, video)
	require.NoError(t, err)
	assert.False(t, ok)

	m, err := s.MediaRepo().GetByPath(ctx, video)
	require.NoError(t, err)
	assert.Equal(t, store.StatusPending, m.Status)
	assert.Equal(t, "lesson.mp4", m.Name)
	assert.Equal(t, int64(4), m.Size)
	assert.True(t, m.CreatedAt.Equal(mtime), "created_at = %v", m.CreatedAt)

	select {
	case id := <-w.Registered():
		assert.Equal(t, m.ID, id)
	default:
		t.Fatal("no registration notification")
	}
}

func TestScanExisting(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.mp4"), "a")
	writeFile(t, filepath.Join(dir, "notes.txt"), "n")
	writeFile(t, filepath.Join(dir, "empty.mkv"), "")
	writeFile(t, filepath.Join(dir, "sub", "b.MOV"), "b")

	w, _ := newTestWatcher(t, dir, true)
	n, err := w.ScanExisting(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = w.ScanExisting(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestScanExistingNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.mp4"), "a")
	writeFile(t, filepath.Join(dir, "sub", "b.mp4"), "b")

	w, _ := newTestWatcher(t, dir, false)
	n, err := w.ScanExisting(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScanCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "incoming")
	w, _ := newTestWatcher(t, dir, true)

	_, err := w.ScanExisting(context.Background())
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func startWatcher(t *testing.T, w *Watcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher time to install its watches.
	time.Sleep(100 * time.Millisecond)
}

func TestRunRegistersMovedInFile(t *testing.T) {
	dir := t.TempDir()
	staging := t.TempDir()
	w, _ := newTestWatcher(t, dir, true)
	startWatcher(t, w)

	src := filepath.Join(staging, "new.mp4")
	writeFile(t, src, "video bytes")
	require.NoError(t, os.Rename(src, filepath.Join(dir, "new.mp4")))

	select {
	case id := <-w.Registered():
		assert.Positive(t, id)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for registration")
	}
}

func TestRunWaitsForCopyToFinish(t *testing.T) {
	dir := t.TempDir()
	w, s := newTestWatcher(t, dir, true)
	startWatcher(t, w)

	path := filepath.Join(dir, "copying.mp4")
	f, err := os.Create(path)
	require.NoError(t, err)

	chunk := make([]byte, 4096)
	const chunks = 20
	for range chunks {
		_, err := f.Write(chunk)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)

		select {
		case id := <-w.Registered():
			t.Fatalf("media %d registered while still being written", id)
		default:
		}
	}
	require.NoError(t, f.Close())

	select {
	case id := <-w.Registered():
		m, err := s.MediaRepo().Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, path, m.Path)
		assert.Equal(t, int64(chunks*len(chunk)), m.Size)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for registration")
	}

	select {
	case id := <-w.Registered():
		t.Fatalf("second notification for media %d", id)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestRunWaitsForEmptyFileToFill(t *testing.T) {
	dir := t.TempDir()
	w, _ := newTestWatcher(t, dir, true)
	startWatcher(t, w)

	path := filepath.Join(dir, "later.mp4")
	writeFile(t, path, "")

	select {
	case id := <-w.Registered():
		t.Fatalf("empty file registered as media %d", id)
	case <-time.After(300 * time.Millisecond):
	}

	writeFile(t, path, "video bytes")
	select {
	case id := <-w.Registered():
		assert.Positive(t, id)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for registration")
	}
}

func TestRunForgetsRemovedFile(t *testing.T) {
	dir := t.TempDir()
	w, _ := newTestWatcher(t, dir, true)
	startWatcher(t, w)

	path := filepath.Join(dir, "gone.mp4")
	writeFile(t, path, "partial")
	require.NoError(t, os.Remove(path))

	select {
	case id := <-w.Registered():
		t.Fatalf("removed file registered as media %d", id)
	case <-time.After(400 * time.Millisecond):
	}
}
