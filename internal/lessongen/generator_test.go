package lessongen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/abhisek/kidlingo/internal/completion"
	"github.com/abhisek/kidlingo/internal/jsonrepair"
	"github.com/abhisek/kidlingo/internal/llm"
	"github.com/abhisek/kidlingo/internal/logger"
)

const twoTopicAnalysis = `{
  "lessonTitle": "Weather and Actions",
  "lessonDescription": "Мы учили погоду и действия.",
  "languageLevel": "a1",
  "topics": [
    {"topic": "weather", "topicName": "Погода", "keyWords": ["sunny", "rainy"],
     "cardPlan": {"repeat": 2, "translate": 2, "choose": 2, "spelling": 2, "new_words": 2, "writing": 2}},
    {"topic": "actions", "topicName": "Действия", "keyWords": ["run", "jump"],
     "cardPlan": {"repeat": 2, "translate": 2, "choose": 2, "spelling": 2, "new_words": 2, "writing": 2}}
  ]
}`

func cardsJSON(n int, prefix string) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"cardType":"repeat","questionText":"%s %d","promptText":"Повтори","orderIndex":%d}`, prefix, i, i)
	}
	return "```json\n{\"cards\": [" + strings.Join(items, ",") + "]}\n```"
}

func newTestGenerator(t *testing.T, mock *llm.MockProvider, mutate ...func(*Config)) (*Generator, *bytes.Buffer) {
	t.Helper()
	cfg := DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, zapcore.DebugLevel, nil)
	client := completion.New(mock, completion.DefaultConfig(), log)
	return New(client, cfg, jsonrepair.NewDumpWriter(t.TempDir()), log), &buf
}

func TestGenerateTwoStage(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: twoTopicAnalysis},
		llm.MockResponse{Content: cardsJSON(3, "sun")},
		llm.MockResponse{Content: cardsJSON(2, "jump")},
	)
	g, _ := newTestGenerator(t, mock)

	p, err := g.GenerateTwoStage(context.Background(), Input{Transcript: "It's sunny. I can jump."})
	if err != nil {
		t.Fatalf("GenerateTwoStage() error = %v", err)
	}
	if !p.TwoStage || p.Raw != "" {
		t.Errorf("TwoStage = %v, Raw = %q", p.TwoStage, p.Raw)
	}
	if p.Title != "Weather and Actions" || p.LanguageLevel != "A1" {
		t.Errorf("Title = %q, LanguageLevel = %q", p.Title, p.LanguageLevel)
	}
	if len(p.Topics) != 2 || p.Topics[0].Topic != "weather" || p.Topics[1].Topic != "actions" {
		t.Fatalf("unexpected topics %+v", p.Topics)
	}
	if p.CardCount() != 5 {
		t.Errorf("CardCount() = %d, want 5", p.CardCount())
	}

	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
	analysisReq := mock.Calls[0]
	if analysisReq.MaxTokens != 4000 || !strings.Contains(analysisReq.Messages[0].Content, "It's sunny. I can jump.") {
		t.Errorf("unexpected analysis request: %+v", analysisReq)
	}
	cardsReq := mock.Calls[1]
	if cardsReq.MaxTokens != 6000 || !strings.Contains(cardsReq.Messages[0].Content, "Topic: Погода (weather)") {
		t.Errorf("unexpected cards request: %+v", cardsReq)
	}
	if !strings.Contains(cardsReq.Messages[0].Content, "  - spelling: 2 cards") {
		t.Error("card plan missing from topic prompt")
	}
}

func TestGenerateTwoStageSkipsFailedTopic(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: twoTopicAnalysis},
		llm.MockResponse{Content: cardsJSON(12, "sun")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("connection reset")}},
	)
	g, logs := newTestGenerator(t, mock)

	p, err := g.GenerateTwoStage(context.Background(), Input{Transcript: "transcript"})
	if err != nil {
		t.Fatalf("GenerateTwoStage() error = %v", err)
	}
	if len(p.Topics) != 1 || p.Topics[0].Topic != "weather" {
		t.Fatalf("expected only the weather topic, got %+v", p.Topics)
	}
	if p.CardCount() != 12 {
		t.Errorf("CardCount() = %d, want 12", p.CardCount())
	}
	if !strings.Contains(logs.String(), "topic skipped") {
		t.Error("expected a topic skipped log line")
	}
}

func TestGenerateTwoStageNoCards(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: twoTopicAnalysis},
		llm.MockResponse{Err: errors.New("boom")},
		llm.MockResponse{Content: `{"cards": []}`},
	)
	g, _ := newTestGenerator(t, mock)

	_, err := g.GenerateTwoStage(context.Background(), Input{Transcript: "transcript"})
	if !errors.Is(err, ErrNoCards) {
		t.Fatalf("expected ErrNoCards, got %v", err)
	}
}

func TestGenerateFallsBackToSingleStage(t *testing.T) {
	single := `Sure! {"lessonTitle": "Colors", "languageLevel": "B3",
	  "sections": [
	    {"cards": [{"cardType": "color", "questionText": "red"}, {"cardType": "color", "questionText": "blue", "orderIndex": 9}]},
	    {"cards": [{"cardType": "repeat", "questionText": "green"}]}
	  ]}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "I cannot produce a plan right now."},
		llm.MockResponse{Content: single},
	)
	g, _ := newTestGenerator(t, mock)

	p, err := g.Generate(context.Background(), Input{Transcript: "red blue green"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if p.TwoStage {
		t.Error("expected single-stage payload")
	}
	if p.Title != "Colors" || p.LanguageLevel != "A1" {
		t.Errorf("Title = %q, LanguageLevel = %q", p.Title, p.LanguageLevel)
	}
	if p.Raw == "" || strings.HasPrefix(p.Raw, "Sure!") {
		t.Errorf("Raw should hold the cleaned response, got %q", p.Raw)
	}
	if len(p.Cards) != 3 {
		t.Fatalf("expected 3 flattened cards, got %d", len(p.Cards))
	}

	wantOrder := []int{0, 9, 2}
	for i, raw := range p.Cards {
		var c struct {
			OrderIndex int `json:"orderIndex"`
		}
		if err := json.Unmarshal(raw, &c); err != nil {
			t.Fatalf("card %d: %v", i, err)
		}
		if c.OrderIndex != wantOrder[i] {
			t.Errorf("card %d orderIndex = %d, want %d", i, c.OrderIndex, wantOrder[i])
		}
	}

	if req := mock.Calls[1]; req.MaxTokens != 16000 || req.Temperature != 0.7 {
		t.Errorf("single-stage request MaxTokens=%d Temperature=%v", req.MaxTokens, req.Temperature)
	}
}

func TestGenerateBothPathsFail(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: `{"lessonTitle": "x", "topics": []}`},
		llm.MockResponse{Content: `{"lessonDescription": "d"}`},
	)
	g, _ := newTestGenerator(t, mock)

	_, err := g.Generate(context.Background(), Input{Transcript: "t"})
	if err == nil {
		t.Fatal("expected an error")
	}
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("expected the analysis schema failure to be kept, got %v", err)
	}
	var structErr *StructureError
	if !errors.As(err, &structErr) {
		t.Fatalf("expected *StructureError, got %v", err)
	}
	if strings.Join(structErr.Missing, ",") != "lessonTitle,cards,topics" {
		t.Errorf("Missing = %v", structErr.Missing)
	}
}

func TestGenerateSingleStageOnly(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: `{"lessonTitle": "Pets", "cards": [{"questionText": "cat"}`, StopReason: llm.StopMaxTokens},
		llm.MockResponse{Content: `, {"questionText": "dog"}]}`},
	)
	g, _ := newTestGenerator(t, mock, func(c *Config) { c.TwoStage = false })

	p, err := g.Generate(context.Background(), Input{Transcript: "cat dog"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(p.Cards) != 2 {
		t.Errorf("expected 2 cards after continuation, got %d", len(p.Cards))
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected request + continuation, got %d calls", mock.CallCount())
	}
}

func TestGenerateDumpsUnparseableResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "not json"})
	g, _ := newTestGenerator(t, mock, func(c *Config) { c.TwoStage = false })
	dir := t.TempDir()
	g.dumps = jsonrepair.NewDumpWriter(dir)

	_, err := g.Generate(context.Background(), Input{Transcript: "t"})
	var perr *jsonrepair.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *jsonrepair.ParseError, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "ai_response_error_") {
		t.Errorf("expected one dump file, got %v", entries)
	}
}

func TestAnalyzeNormalizesPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: `{"lessonTitle": "T", "topics": [
		{"topic": "pets", "cardPlan": {"repeat": 2, "dance": 3}}]}`})
	g, logs := newTestGenerator(t, mock)

	a, err := g.Analyze(context.Background(), Input{Transcript: "t"})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	plan := a.Topics[0].CardPlan
	if _, ok := plan["dance"]; ok || plan["repeat"] != 2 {
		t.Errorf("plan not normalised: %v", plan)
	}
	if a.Topics[0].Expected() != 2 {
		t.Errorf("Expected() = %d", a.Topics[0].Expected())
	}
	if a.Topics[0].Name() != "pets" {
		t.Errorf("Name() should fall back to the topic id")
	}
	if !strings.Contains(logs.String(), "card plan total differs from target") {
		t.Error("expected a plan total warning")
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := map[string]string{"A0": "A0", "b2": "B2", " A2 ": "A2", "C1": "A1", "": "A1"}
	for in, want := range tests {
		if got := NormalizeLevel(in); got != want {
			t.Errorf("NormalizeLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAnalysisPromptCapsPriorLessons(t *testing.T) {
	in := Input{Transcript: "t"}
	for i := 0; i < 7; i++ {
		in.PriorLessons = append(in.PriorLessons, PriorLesson{
			Title: fmt.Sprintf("Lesson %d", i), Topics: []string{"a", "b"}, CardCount: 12,
		})
	}
	msg := buildAnalysisUserMessage(in, 5, 12)
	if n := strings.Count(msg, "- Lesson "); n != 5 {
		t.Errorf("prompt lists %d prior lessons, want 5", n)
	}
	if !strings.Contains(msg, "- Lesson 0: topics a, b, 12 cards") {
		t.Error("prior lesson line has the wrong format")
	}
	if strings.Contains(buildAnalysisUserMessage(Input{Transcript: "t"}, 5, 12), "already completed") {
		t.Error("no prior lessons should mean no review section")
	}
}
