package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

var testDBCounter atomic.Int64

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", testDBCounter.Add(1)))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func registerMedia(t *testing.T, s *Store, path string, created time.Time) *Media {
	t.Helper()
	m, ok, err := s.MediaRepo().Register(context.Background(), NewMedia{
		Path:      path,
		Name:      path,
		Size:      100,
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("register %s: %v", path, err)
	}
	if !ok {
		t.Fatalf("register %s: expected new row", path)
	}
	return m
}

func strPtr(s string) *string { return &s }

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWithPragmas(t *testing.T) {
	got := withPragmas("/tmp/x.db")
	if got[:len("/tmp/x.db?_pragma=")] != "/tmp/x.db?_pragma=" {
		t.Errorf("withPragmas = %q", got)
	}
	if withPragmas("a.db?_pragma=foreign_keys(1)") != "a.db?_pragma=foreign_keys(1)" {
		t.Error("explicit pragmas should be left alone")
	}
	got = withPragmas("file:x?mode=memory")
	if got[:len("file:x?mode=memory&_pragma=")] != "file:x?mode=memory&_pragma=" {
		t.Errorf("withPragmas = %q", got)
	}
}

func TestMediaRegisterIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.MediaRepo()

	first := registerMedia(t, s, "/videos/a.mp4", time.Time{})
	if first.Status != StatusPending || first.Stage != StageIdle {
		t.Fatalf("new media = %s/%s, want pending/idle", first.Status, first.Stage)
	}

	again, created, err := repo.Register(ctx, NewMedia{Path: "/videos/a.mp4", Name: "a.mp4"})
	if err != nil {
		t.Fatalf("register again: %v", err)
	}
	if created {
		t.Error("second register should not create")
	}
	if again.ID != first.ID {
		t.Errorf("id = %d, want %d", again.ID, first.ID)
	}
}

func TestMediaGetNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.MediaRepo().Get(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	_, err = s.MediaRepo().GetByPath(context.Background(), "/nope.mp4")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMediaLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.MediaRepo()
	m := registerMedia(t, s, "/videos/b.mp4", time.Time{})

	processing := StatusProcessing
	stage := StageTranscribing
	if err := repo.UpdateStatus(ctx, m.ID, StatusUpdate{Status: &processing, Stage: &stage, Message: strPtr("Transcribing")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := repo.Get(ctx, m.ID)
	if got.Status != StatusProcessing || got.Stage != StageTranscribing || got.ProcessingMessage != "Transcribing" {
		t.Fatalf("after update = %+v", got)
	}

	if err := repo.MarkError(ctx, m.ID, "Error: boom", "boom"); err != nil {
		t.Fatalf("mark error: %v", err)
	}
	got, _ = repo.Get(ctx, m.ID)
	if got.Status != StatusError || got.Stage != StageError || got.ErrorMessage != "boom" {
		t.Fatalf("after error = %+v", got)
	}

	if err := repo.ResetPending(ctx, m.ID); err != nil {
		t.Fatalf("reset: %v", err)
	}
	got, _ = repo.Get(ctx, m.ID)
	if got.Status != StatusPending || got.ErrorMessage != "" || got.ProcessingMessage != "" {
		t.Fatalf("after reset = %+v", got)
	}

	if err := repo.MarkDone(ctx, m.ID, "Lesson created: Weather"); err != nil {
		t.Fatalf("mark done: %v", err)
	}
	got, _ = repo.Get(ctx, m.ID)
	if got.Status != StatusDone || got.ProcessedAt == nil {
		t.Fatalf("after done = %+v", got)
	}

	counts, err := repo.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[StatusDone] != 1 || counts[StatusPending] != 0 {
		t.Errorf("counts = %v", counts)
	}
}

func TestMediaListNotDoneOrderedByCreation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	late := registerMedia(t, s, "/v/late.mp4", base.Add(time.Hour))
	early := registerMedia(t, s, "/v/early.mp4", base)
	done := registerMedia(t, s, "/v/done.mp4", base.Add(-time.Hour))
	if err := s.MediaRepo().MarkDone(ctx, done.ID, "ok"); err != nil {
		t.Fatalf("mark done: %v", err)
	}

	got, err := s.MediaRepo().ListNotDone(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != early.ID || got[1].ID != late.ID {
		t.Fatalf("order = %+v", got)
	}
}

func TestMediaListStuck(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	m := registerMedia(t, s, "/v/stuck.mp4", time.Time{})
	registerMedia(t, s, "/v/idle.mp4", time.Time{})

	processing := StatusProcessing
	if err := s.MediaRepo().UpdateStatus(ctx, m.ID, StatusUpdate{Status: &processing}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stuck, err := s.MediaRepo().ListStuck(ctx, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("list stuck: %v", err)
	}
	if len(stuck) != 1 || stuck[0].ID != m.ID {
		t.Fatalf("stuck = %+v", stuck)
	}

	stuck, err = s.MediaRepo().ListStuck(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("list stuck: %v", err)
	}
	if len(stuck) != 0 {
		t.Fatalf("expected nothing older than an hour, got %d", len(stuck))
	}
}

func createLesson(t *testing.T, s *Store, mediaID int, title string, cards []Card) *Lesson {
	t.Helper()
	ctx := context.Background()
	l, err := s.LessonRepo().Create(ctx, NewLesson{
		MediaID:        mediaID,
		Title:          title,
		TranscriptText: "hello",
		LanguageLevel:  "A1",
	})
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	n, err := s.LessonRepo().AddCards(ctx, l.ID, cards)
	if err != nil {
		t.Fatalf("add cards: %v", err)
	}
	if n != len(cards) {
		t.Fatalf("added %d cards, want %d", n, len(cards))
	}
	return l
}

func TestLessonCreateAndFetch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	m := registerMedia(t, s, "/v/l.mp4", time.Time{})

	l := createLesson(t, s, m.ID, "Weather", []Card{
		{CardType: "repeat", QuestionText: "sunny", Topic: "weather", OrderIndex: 1},
		{CardType: "spelling", QuestionText: "rain", CorrectAnswer: strPtr("rain"), Topic: "weather", OrderIndex: 0,
			ExtraData: map[string]any{"scrambledLetters": []any{"n", "i", "a", "r"}}},
	})

	got, err := s.LessonRepo().ForMedia(ctx, m.ID)
	if err != nil {
		t.Fatalf("for media: %v", err)
	}
	if got == nil || got.ID != l.ID || got.MediaID != m.ID || got.CardCount != 2 {
		t.Fatalf("for media = %+v", got)
	}

	full, err := s.LessonRepo().Get(ctx, l.ID, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(full.Cards) != 2 || full.Cards[0].QuestionText != "rain" {
		t.Fatalf("cards not ordered by index: %+v", full.Cards)
	}
	if full.Cards[0].ExtraData["scrambledLetters"] == nil {
		t.Error("extra data lost")
	}

	none, err := s.LessonRepo().ForMedia(ctx, 12345)
	if err != nil || none != nil {
		t.Fatalf("missing lesson = %v, %v", none, err)
	}
}

func TestLessonOnePerMedia(t *testing.T) {
	s := openTestStore(t)
	m := registerMedia(t, s, "/v/one.mp4", time.Time{})
	createLesson(t, s, m.ID, "First", []Card{{CardType: "repeat", QuestionText: "a"}})

	_, err := s.LessonRepo().Create(context.Background(), NewLesson{MediaID: m.ID, Title: "Second", TranscriptText: "x"})
	if err == nil {
		t.Fatal("expected second lesson for the same media to fail")
	}
}

func TestLessonDeleteRemovesCards(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	m := registerMedia(t, s, "/v/del.mp4", time.Time{})
	l := createLesson(t, s, m.ID, "Del", []Card{{CardType: "repeat", QuestionText: "a"}})

	if err := s.LessonRepo().Delete(ctx, l.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	n, err := s.Client().ExerciseCard.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("cards left = %d", n)
	}
	if err := s.LessonRepo().Delete(ctx, l.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestCardsExcludingLessonSkipsReview(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	m1 := registerMedia(t, s, "/v/1.mp4", time.Time{})
	m2 := registerMedia(t, s, "/v/2.mp4", time.Time{})

	l1 := createLesson(t, s, m1.ID, "One", []Card{
		{CardType: "repeat", QuestionText: "cat", Topic: "animals"},
		{CardType: "writing", QuestionText: "dog", Topic: ReviewTopic, IsRepetition: true},
	})
	l2 := createLesson(t, s, m2.ID, "Two", []Card{
		{CardType: "choose", QuestionText: "red", Topic: "colors"},
	})

	got, err := s.LessonRepo().CardsExcludingLesson(ctx, l2.ID)
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(got) != 1 || got[0].QuestionText != "cat" || got[0].LessonID != l1.ID {
		t.Fatalf("cards = %+v", got)
	}

	all, err := s.LessonRepo().CardsExcludingLesson(ctx, 0)
	if err != nil {
		t.Fatalf("cards: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all non-review cards = %d, want 2", len(all))
	}
}

func TestRecentSummaries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	m1 := registerMedia(t, s, "/v/r1.mp4", time.Time{})
	m2 := registerMedia(t, s, "/v/r2.mp4", time.Time{})

	createLesson(t, s, m1.ID, "Animals", []Card{
		{CardType: "repeat", QuestionText: "cat", Topic: "animals", OrderIndex: 0},
		{CardType: "repeat", QuestionText: "red", Topic: "colors", OrderIndex: 1},
		{CardType: "repeat", QuestionText: "dog", Topic: "animals", OrderIndex: 2},
		{CardType: "writing", QuestionText: "sun", Topic: ReviewTopic, OrderIndex: 3},
	})
	createLesson(t, s, m2.ID, "Weather", []Card{{CardType: "repeat", QuestionText: "rain", Topic: "weather"}})

	got, err := s.LessonRepo().RecentSummaries(ctx, 5, m2.ID)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("summaries = %+v", got)
	}
	if got[0].Title != "Animals" || got[0].CardCount != 4 {
		t.Errorf("summary = %+v", got[0])
	}
	if len(got[0].Topics) != 2 || got[0].Topics[0] != "animals" || got[0].Topics[1] != "colors" {
		t.Errorf("topics = %v", got[0].Topics)
	}

	n, err := s.LessonRepo().Count(ctx)
	if err != nil || n != 2 {
		t.Errorf("count = %d, %v", n, err)
	}
}

func TestWithTxRollsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	m := registerMedia(t, s, "/v/tx.mp4", time.Time{})

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx *Store) error {
		if _, err := tx.LessonRepo().Create(ctx, NewLesson{MediaID: m.ID, Title: "T", TranscriptText: "x"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	l, err := s.LessonRepo().ForMedia(ctx, m.ID)
	if err != nil {
		t.Fatalf("for media: %v", err)
	}
	if l != nil {
		t.Fatal("lesson should have been rolled back")
	}
}

func TestEventRepoQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "openrouter", Model: "m1", Purpose: "lesson-analysis", RunID: "r1", InputTokens: 10, OutputTokens: 5, Success: true, StopReason: "end"},
		{Provider: "openrouter", Model: "m1", Purpose: "topic-cards", RunID: "r1", InputTokens: 20, OutputTokens: 50, Success: true, StopReason: "max_tokens"},
		{Provider: "openrouter", Model: "m2", Purpose: "topic-cards", RunID: "r2", InputTokens: 1, Success: false, ErrorMessage: "down"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 || all[0].Sequence <= all[1].Sequence {
		t.Fatalf("expected newest first, got %+v", all)
	}

	run, err := repo.QueryLLMEvents(ctx, QueryOpts{RunID: "r1", Purpose: "topic-cards"})
	if err != nil {
		t.Fatalf("query run: %v", err)
	}
	if len(run) != 1 || run[0].StopReason != "max_tokens" {
		t.Fatalf("run events = %+v", run)
	}

	one, err := repo.GetLLMEvent(ctx, run[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one.OutputTokens != 50 {
		t.Errorf("output tokens = %d", one.OutputTokens)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(byPurpose) != 2 || byPurpose[0].Key != "topic-cards" || byPurpose[0].Requests != 2 || byPurpose[0].Failures != 1 {
		t.Fatalf("by purpose = %+v", byPurpose)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if byModel[0].Key != "m1" || byModel[0].InputTokens != 30 {
		t.Fatalf("by model = %+v", byModel)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"media_sources", "lessons", "exercise_cards", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}
