package transcribe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeExtractor writes one chunk per entry of chunks (default one).
type fakeExtractor struct {
	err    error
	chunks int
	dirs   []string
}

func (f *fakeExtractor) Extract(_ context.Context, _, outDir string) ([]string, error) {
	f.dirs = append(f.dirs, outDir)
	if f.err != nil {
		return nil, f.err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	n := f.chunks
	if n == 0 {
		n = 1
	}
	for i := range n {
		name := filepath.Join(outDir, fmt.Sprintf(segmentPattern, i))
		if err := os.WriteFile(name, []byte("ID3"), 0o644); err != nil {
			return nil, err
		}
	}
	return listChunks(outDir)
}

func writeVideo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lesson.mp4")
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestTranscriber(t *testing.T, handler http.HandlerFunc, ex AudioExtractor) *WhisperTranscriber {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = server.URL + "/v1"
	cfg.TempDir = t.TempDir()
	cfg.Language = "en"

	w, err := NewWhisper(cfg, ex, nil)
	if err != nil {
		t.Fatalf("NewWhisper: %v", err)
	}
	return w
}

func TestTranscribe_HappyPath(t *testing.T) {
	var gotPath, gotModel, gotLang string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotModel = r.FormValue("model")
		gotLang = r.FormValue("language")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"text": "  Hello, it's sunny today.  "})
	}

	ex := &fakeExtractor{}
	tr := newTestTranscriber(t, handler, ex)

	text, err := tr.Transcribe(context.Background(), writeVideo(t))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "Hello, it's sunny today." {
		t.Errorf("text = %q", text)
	}
	if gotPath != "/v1/audio/transcriptions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotModel != "whisper-1" || gotLang != "en" {
		t.Errorf("model = %q, language = %q", gotModel, gotLang)
	}
	if len(ex.dirs) != 1 {
		t.Fatalf("extract calls = %d", len(ex.dirs))
	}
	if _, err := os.Stat(ex.dirs[0]); !os.IsNotExist(err) {
		t.Errorf("temp audio not removed: %v", err)
	}
}

func TestTranscribe_JoinsChunksInOrder(t *testing.T) {
	texts := map[string]string{
		"chunk-000.mp3": " First part. ",
		"chunk-001.mp3": "Second part.",
		"chunk-002.mp3": "",
		"chunk-003.mp3": "Last part.",
	}
	var mu sync.Mutex
	var uploaded []string
	handler := func(w http.ResponseWriter, r *http.Request) {
		_, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		mu.Lock()
		uploaded = append(uploaded, hdr.Filename)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"text": texts[hdr.Filename]})
	}

	ex := &fakeExtractor{chunks: 4}
	tr := newTestTranscriber(t, handler, ex)

	text, err := tr.Transcribe(context.Background(), writeVideo(t))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "First part. Second part. Last part." {
		t.Errorf("text = %q", text)
	}
	want := []string{"chunk-000.mp3", "chunk-001.mp3", "chunk-002.mp3", "chunk-003.mp3"}
	if strings.Join(uploaded, ",") != strings.Join(want, ",") {
		t.Errorf("uploaded = %v, want %v", uploaded, want)
	}
	if _, err := os.Stat(ex.dirs[0]); !os.IsNotExist(err) {
		t.Errorf("chunk dir not removed: %v", err)
	}
}

func TestTranscribe_ChunkFailureStops(t *testing.T) {
	calls := 0
	handler := func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if calls == 2 {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "too large", "type": "invalid_request_error"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"text": "ok"})
	}
	tr := newTestTranscriber(t, handler, &fakeExtractor{chunks: 3})

	_, err := tr.Transcribe(context.Background(), writeVideo(t))
	if err == nil || !strings.Contains(err.Error(), "chunk 2 of 3") {
		t.Fatalf("err = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestTranscribe_MissingFile(t *testing.T) {
	called := false
	tr := newTestTranscriber(t, func(w http.ResponseWriter, r *http.Request) { called = true }, &fakeExtractor{})

	_, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "gone.mp4"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
	if called {
		t.Error("endpoint called for a missing file")
	}
}

func TestTranscribe_ExtractFailure(t *testing.T) {
	ex := &fakeExtractor{err: errors.New("unsupported codec")}
	tr := newTestTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("endpoint should not be called")
	}, ex)

	_, err := tr.Transcribe(context.Background(), writeVideo(t))
	if err == nil || err.Error() != "unsupported codec" {
		t.Fatalf("err = %v", err)
	}
}

func TestTranscribe_APIError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "boom", "type": "server_error"},
		})
	}
	ex := &fakeExtractor{}
	tr := newTestTranscriber(t, handler, ex)

	if _, err := tr.Transcribe(context.Background(), writeVideo(t)); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(ex.dirs[0]); !os.IsNotExist(err) {
		t.Errorf("temp audio not removed after failure: %v", err)
	}
}

func TestNewWhisperRequiresKey(t *testing.T) {
	if _, err := NewWhisper(DefaultConfig(), nil, nil); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestFFmpegArgs(t *testing.T) {
	args := ffmpegArgs("/in/v.mp4", "/tmp/job", 10*time.Minute)
	want := []string{
		"-y", "-i", "/in/v.mp4", "-vn", "-ac", "1", "-ar", "16000",
		"-c:a", "libmp3lame", "-b:a", "32k",
		"-f", "segment", "-segment_time", "600", "-reset_timestamps", "1",
		"/tmp/job/chunk-%03d.mp3",
	}
	if strings.Join(args, " ") != strings.Join(want, " ") {
		t.Errorf("args = %v\nwant   %v", args, want)
	}

	if got := ffmpegArgs("/in/v.mp4", "/tmp/job", 0); got[15] != "600" {
		t.Errorf("default segment_time = %q", got[15])
	}
}

func TestListChunksSortsByIndex(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"chunk-010.mp3", "chunk-002.mp3", "chunk-000.mp3", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := listChunks(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, p := range got {
		names = append(names, filepath.Base(p))
	}
	if strings.Join(names, ",") != "chunk-000.mp3,chunk-002.mp3,chunk-010.mp3" {
		t.Errorf("chunks = %v", names)
	}
}
