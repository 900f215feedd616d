package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/abhisek/kidlingo/internal/completion"
	"github.com/abhisek/kidlingo/internal/ingest"
	"github.com/abhisek/kidlingo/internal/lessongen"
	"github.com/abhisek/kidlingo/internal/llm"
	"github.com/abhisek/kidlingo/internal/logbuf"
	"github.com/abhisek/kidlingo/internal/logger"
	"github.com/abhisek/kidlingo/internal/repetition"
	"github.com/abhisek/kidlingo/internal/store"
	"github.com/abhisek/kidlingo/internal/store/storetest"
)

const longTranscript = "Hello children! Today we talk about the weather. It's sunny, it's rainy, it's cloudy. " +
	"Can you run? Yes, I can run. Can you jump? No, I can't jump."

const analysis = `{
  "lessonTitle": "Weather and Actions",
  "lessonDescription": "Мы учили погоду и действия.",
  "languageLevel": "A1",
  "topics": [
    {"topic": "weather", "topicName": "Погода", "keyWords": ["sunny"],
     "cardPlan": {"repeat": 2, "translate": 2, "choose": 2, "spelling": 2, "new_words": 2, "writing": 2}},
    {"topic": "actions", "topicName": "Действия", "keyWords": ["run"],
     "cardPlan": {"repeat": 2, "translate": 2, "choose": 2, "spelling": 2, "new_words": 2, "writing": 2}}
  ]
}`

func cardsJSON(n int, prefix string) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"cardType":"repeat","questionText":"%s %d","promptText":"Повтори","orderIndex":%d}`, prefix, i, i)
	}
	return `{"cards": [` + strings.Join(items, ",") + `]}`
}

type fakeTranscriber struct {
	text  string
	err   error
	calls int
}

func (f *fakeTranscriber) Transcribe(context.Context, string) (string, error) {
	f.calls++
	return f.text, f.err
}

type harness struct {
	store *store.Store
	mock  *llm.MockProvider
	tr    *fakeTranscriber
	proc  *Processor
	logs  *logbuf.Buffer
	out   *bytes.Buffer
}

func newHarness(t *testing.T, transcript string, responses ...llm.MockResponse) *harness {
	t.Helper()
	s := storetest.Open(t)
	mock := llm.NewMockProvider(responses...)
	tr := &fakeTranscriber{text: transcript}
	logs := logbuf.New(100)
	var out bytes.Buffer
	log := logger.NewWriter(&out, zapcore.DebugLevel, logs)

	gen := lessongen.New(completion.New(mock, completion.DefaultConfig(), log), lessongen.DefaultConfig(), nil, log)
	asm := ingest.New(s, log, ingest.WithReviewer(repetition.New(s.LessonRepo(), nil, log), repetition.DefaultCount))
	proc := NewProcessor(s, tr, gen, asm, logs, DefaultConfig(), log)
	return &harness{store: s, mock: mock, tr: tr, proc: proc, logs: logs, out: &out}
}

func (h *harness) addMedia(t *testing.T, withFile bool) *store.Media {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lesson.mp4")
	if withFile {
		if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	m, _, err := h.store.MediaRepo().Register(context.Background(), store.NewMedia{Path: path, Name: "lesson.mp4", Size: 5})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return m
}

func (h *harness) reload(t *testing.T, id int) *store.Media {
	t.Helper()
	m, err := h.store.MediaRepo().Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get media: %v", err)
	}
	return m
}

func TestProcessTranscriptTooShort(t *testing.T) {
	h := newHarness(t, strings.Repeat("a", 40))
	m := h.addMedia(t, true)

	_, err := h.proc.Process(context.Background(), m.ID, Options{})
	if !errors.Is(err, ErrTranscriptTooShort) {
		t.Fatalf("err = %v, want ErrTranscriptTooShort", err)
	}
	var perr *Error
	if !errors.As(err, &perr) || perr.Stage != store.StageTranscribing || perr.MediaID != m.ID {
		t.Fatalf("err = %#v", err)
	}
	if h.mock.CallCount() != 0 {
		t.Errorf("model called %d times", h.mock.CallCount())
	}

	got := h.reload(t, m.ID)
	if got.Status != store.StatusError || got.Stage != store.StageError {
		t.Errorf("status = %s/%s", got.Status, got.Stage)
	}
	if !strings.HasPrefix(got.ProcessingMessage, "Error: transcript too short") {
		t.Errorf("message = %q", got.ProcessingMessage)
	}
	if got.ErrorMessage == "" {
		t.Error("error detail not stored")
	}
}

func TestProcessSkipsFailedTopic(t *testing.T) {
	h := newHarness(t, longTranscript,
		llm.MockResponse{Content: analysis},
		llm.MockResponse{Content: cardsJSON(12, "sun")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("connection reset")}},
	)
	m := h.addMedia(t, true)

	lesson, err := h.proc.Process(context.Background(), m.ID, Options{})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if lesson.Title != "Weather and Actions" {
		t.Errorf("title = %q", lesson.Title)
	}
	if len(lesson.Cards) != 12 {
		t.Fatalf("cards = %d, want 12", len(lesson.Cards))
	}
	for _, c := range lesson.Cards {
		if c.Topic != "weather" {
			t.Errorf("card %q has topic %q", c.QuestionText, c.Topic)
		}
	}
	if !strings.Contains(h.out.String(), "topic skipped") {
		t.Error("skipped topic was not logged")
	}

	got := h.reload(t, m.ID)
	if got.Status != store.StatusDone || got.Stage != store.StageDone || !got.HasTranscript {
		t.Errorf("media = %+v", got)
	}
	if got.ProcessingMessage != "Lesson created: Weather and Actions" {
		t.Errorf("message = %q", got.ProcessingMessage)
	}
	if got.ProcessedAt == nil {
		t.Error("processed_at not set")
	}
	if _, err := os.Stat(m.Path); !os.IsNotExist(err) {
		t.Error("video file not removed after success")
	}
	if lesson.TranscriptText != FilterTranscript(longTranscript) {
		t.Errorf("transcript not filtered: %q", lesson.TranscriptText)
	}
}

// failingDone is a media repo whose MarkDone always fails.
type failingDone struct {
	store.MediaRepo
}

func (failingDone) MarkDone(context.Context, int, string) error {
	return errors.New("database is locked")
}

func TestProcessMarkDoneFailureRecordsError(t *testing.T) {
	h := newHarness(t, longTranscript,
		llm.MockResponse{Content: analysis},
		llm.MockResponse{Content: cardsJSON(12, "sun")},
		llm.MockResponse{Content: cardsJSON(12, "run")},
		llm.MockResponse{Content: analysis},
		llm.MockResponse{Content: cardsJSON(12, "rain")},
		llm.MockResponse{Content: cardsJSON(12, "jump")},
	)
	h.proc.media = failingDone{h.store.MediaRepo()}
	m := h.addMedia(t, true)

	_, err := h.proc.Process(context.Background(), m.ID, Options{})
	var perr *Error
	if !errors.As(err, &perr) || perr.Stage != store.StageGeneratingLesson || perr.MediaID != m.ID {
		t.Fatalf("err = %#v, want *Error at generating_lesson", err)
	}
	if !strings.Contains(err.Error(), "database is locked") {
		t.Errorf("err = %v", err)
	}

	got := h.reload(t, m.ID)
	if got.Status != store.StatusError || got.Stage != store.StageError {
		t.Errorf("status = %s/%s, want error/error", got.Status, got.Stage)
	}
	if _, err := os.Stat(m.Path); err != nil {
		t.Errorf("video removed although the run failed: %v", err)
	}

	// The saved lesson is picked up on the next run.
	h.proc.media = h.store.MediaRepo()
	lesson, err := h.proc.Process(context.Background(), m.ID, Options{})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if lesson.CardCount != 24 {
		t.Errorf("cards = %d, want 24", lesson.CardCount)
	}
	if got := h.reload(t, m.ID); got.Status != store.StatusDone || got.ProcessingMessage != MsgLessonExists {
		t.Errorf("media after retry = %s %q", got.Status, got.ProcessingMessage)
	}
}

func TestProcessMissingFile(t *testing.T) {
	h := newHarness(t, longTranscript)
	m := h.addMedia(t, false)

	_, err := h.proc.Process(context.Background(), m.ID, Options{})
	if !errors.Is(err, ErrMediaMissing) {
		t.Fatalf("err = %v, want ErrMediaMissing", err)
	}
	if h.tr.calls != 0 {
		t.Error("transcriber called for a missing file")
	}
	got := h.reload(t, m.ID)
	if got.Status != store.StatusError {
		t.Errorf("status = %s", got.Status)
	}
	if got.ProcessingMessage != "Video file not found: "+m.Path {
		t.Errorf("message = %q", got.ProcessingMessage)
	}
}

func TestProcessGenerationFailureMarksError(t *testing.T) {
	h := newHarness(t, longTranscript,
		llm.MockResponse{Content: "I cannot help with that."},
		llm.MockResponse{Content: "still no JSON"},
	)
	m := h.addMedia(t, true)

	_, err := h.proc.Process(context.Background(), m.ID, Options{})
	var perr *Error
	if !errors.As(err, &perr) || perr.Stage != store.StageGeneratingLesson {
		t.Fatalf("err = %v", err)
	}
	got := h.reload(t, m.ID)
	if got.Status != store.StatusError || !got.HasTranscript {
		t.Errorf("media = %+v", got)
	}
	if _, err := os.Stat(m.Path); err != nil {
		t.Error("video file removed after failure")
	}
}

func TestProcessReturnsExistingLesson(t *testing.T) {
	h := newHarness(t, longTranscript,
		llm.MockResponse{Content: analysis},
		llm.MockResponse{Content: cardsJSON(12, "sun")},
		llm.MockResponse{Content: cardsJSON(12, "run")},
	)
	h.proc.cfg.DeleteMediaOnSuccess = false
	m := h.addMedia(t, true)
	ctx := context.Background()

	first, err := h.proc.Process(ctx, m.ID, Options{})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := h.proc.Process(ctx, m.ID, Options{})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("lesson id changed: %d -> %d", first.ID, second.ID)
	}
	if h.tr.calls != 1 || h.mock.CallCount() != 3 {
		t.Errorf("transcriber calls = %d, model calls = %d", h.tr.calls, h.mock.CallCount())
	}
}

func TestProcessForceRecreates(t *testing.T) {
	h := newHarness(t, longTranscript,
		llm.MockResponse{Content: analysis},
		llm.MockResponse{Content: cardsJSON(12, "sun")},
		llm.MockResponse{Content: cardsJSON(12, "run")},
		llm.MockResponse{Content: analysis},
		llm.MockResponse{Content: cardsJSON(3, "rain")},
		llm.MockResponse{Content: cardsJSON(3, "jump")},
	)
	h.proc.cfg.DeleteMediaOnSuccess = false
	m := h.addMedia(t, true)
	ctx := context.Background()

	first, err := h.proc.Process(ctx, m.ID, Options{})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := h.proc.Process(ctx, m.ID, Options{Force: true})
	if err != nil {
		t.Fatalf("force: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("force did not recreate the lesson")
	}
	if len(second.Cards) != 6 {
		t.Errorf("cards = %d, want 6", len(second.Cards))
	}
}

func TestProcessSkipsInFlightMedia(t *testing.T) {
	h := newHarness(t, longTranscript)
	m := h.addMedia(t, true)
	ctx := context.Background()
	status := store.StatusProcessing
	if err := h.store.MediaRepo().UpdateStatus(ctx, m.ID, store.StatusUpdate{Status: &status}); err != nil {
		t.Fatal(err)
	}

	l, err := h.proc.Process(ctx, m.ID, Options{})
	if err != nil || l != nil {
		t.Fatalf("Process = %v, %v", l, err)
	}
	if h.tr.calls != 0 {
		t.Error("in-flight media was processed again")
	}
}

func TestProcessPending(t *testing.T) {
	h := newHarness(t, strings.Repeat("b", 10))
	ctx := context.Background()
	h.logs.Add(logbuf.Entry{Message: "from an earlier run"})

	// Has a lesson already but was never marked done.
	withLesson := h.addMedia(t, true)
	l, err := h.store.LessonRepo().Create(ctx, store.NewLesson{MediaID: withLesson.ID, Title: "Old", TranscriptText: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.store.LessonRepo().AddCards(ctx, l.ID, []store.Card{{CardType: "repeat", QuestionText: "a"}}); err != nil {
		t.Fatal(err)
	}

	// Being processed right now by someone else.
	busy := h.addMedia(t, true)
	processing := store.StatusProcessing
	if err := h.store.MediaRepo().UpdateStatus(ctx, busy.ID, store.StatusUpdate{Status: &processing}); err != nil {
		t.Fatal(err)
	}

	// Failed before; retried and fails again on the short transcript.
	failed := h.addMedia(t, true)
	if err := h.store.MediaRepo().MarkError(ctx, failed.ID, "Error: boom", "boom"); err != nil {
		t.Fatal(err)
	}

	report, err := h.proc.ProcessPending(ctx)
	if err != nil {
		t.Fatalf("ProcessPending: %v", err)
	}
	if report.Total != 3 || report.Skipped != 2 || report.Processed != 0 || len(report.Errors) != 1 {
		t.Fatalf("report = %+v", report)
	}
	if report.Errors[0].MediaID != failed.ID || !errors.Is(report.Errors[0].Err, ErrTranscriptTooShort) {
		t.Errorf("item error = %+v", report.Errors[0])
	}
	if got := h.reload(t, withLesson.ID); got.Status != store.StatusDone || got.ProcessingMessage != MsgLessonExists {
		t.Errorf("media with lesson = %+v", got)
	}
	if got := h.reload(t, busy.ID); got.Status != store.StatusProcessing {
		t.Errorf("busy media status = %s", got.Status)
	}

	for _, e := range h.logs.Entries(0, time.Time{}) {
		if e.Message == "from an earlier run" {
			t.Error("log buffer was not cleared at batch start")
		}
	}
	if h.logs.Len() == 0 {
		t.Error("batch run left no log entries")
	}
}

func TestProcessPendingRetriesStaleProcessing(t *testing.T) {
	h := newHarness(t, longTranscript,
		llm.MockResponse{Content: analysis},
		llm.MockResponse{Content: cardsJSON(2, "sun")},
		llm.MockResponse{Content: cardsJSON(2, "run")},
	)
	h.proc.now = func() time.Time { return time.Now().Add(time.Hour) }
	m := h.addMedia(t, true)
	ctx := context.Background()
	processing := store.StatusProcessing
	if err := h.store.MediaRepo().UpdateStatus(ctx, m.ID, store.StatusUpdate{Status: &processing}); err != nil {
		t.Fatal(err)
	}

	report, err := h.proc.ProcessPending(ctx)
	if err != nil {
		t.Fatalf("ProcessPending: %v", err)
	}
	if report.Processed != 1 || len(report.Errors) != 0 {
		t.Fatalf("report = %+v", report)
	}
	if got := h.reload(t, m.ID); got.Status != store.StatusDone {
		t.Errorf("status = %s", got.Status)
	}
}

func TestSweep(t *testing.T) {
	h := newHarness(t, longTranscript)
	ctx := context.Background()
	processing := store.StatusProcessing

	present := h.addMedia(t, true)
	gone := h.addMedia(t, false)
	fresh := h.addMedia(t, true)
	for _, m := range []*store.Media{present, gone} {
		if err := h.store.MediaRepo().UpdateStatus(ctx, m.ID, store.StatusUpdate{Status: &processing}); err != nil {
			t.Fatal(err)
		}
	}

	sw := NewSweeper(h.store.MediaRepo(), nil)
	sw.now = func() time.Time { return time.Now().Add(3 * time.Hour) }

	dry, err := sw.Sweep(ctx, 2*time.Hour, true)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if len(dry.Items) != 2 || dry.Reset != 1 || dry.Failed != 1 {
		t.Fatalf("dry report = %+v", dry)
	}
	if got := h.reload(t, present.ID); got.Status != store.StatusProcessing {
		t.Fatal("dry run changed status")
	}

	report, err := sw.Sweep(ctx, 2*time.Hour, false)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if report.Reset != 1 || report.Failed != 1 {
		t.Fatalf("report = %+v", report)
	}
	if got := h.reload(t, present.ID); got.Status != store.StatusPending || got.Stage != store.StageIdle {
		t.Errorf("present = %s/%s", got.Status, got.Stage)
	}
	if got := h.reload(t, gone.ID); got.Status != store.StatusError {
		t.Errorf("gone = %s", got.Status)
	}
	if got := h.reload(t, fresh.ID); got.Status != store.StatusPending {
		t.Errorf("fresh = %s", got.Status)
	}
}

func TestFilterTranscript(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello   world\n\tagain", "Hello world again"},
		{"Price: $5 & more #tags", "Price: 5 more tags"},
		{"It's sunny - really!", "It's sunny really!"},
		{"Привет, мир ♪", "Привет, мир"},
		{"a I 1 ok", "a I 1 ok"},
	}
	for _, tt := range tests {
		if got := FilterTranscript(tt.in); got != tt.want {
			t.Errorf("FilterTranscript(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
