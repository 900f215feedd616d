package completion

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/kidlingo/internal/llm"
)

func newTestClient(p llm.Provider, mutate ...func(*Config)) *Client {
	cfg := DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	return New(p, cfg, nil)
}

func TestCompleteSingleResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: `{"a":1}`})
	c := newTestClient(mock)

	got, err := c.Complete(context.Background(), Prompt{System: "sys", User: "usr", MaxTokens: 4000, Purpose: "analysis"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != `{"a":1}` {
		t.Errorf("Complete() = %q", got)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != "sys" || req.Messages[0].Content != "usr" || req.MaxTokens != 4000 {
		t.Errorf("unexpected request %+v", req)
	}
	if req.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want config default 0.7", req.Temperature)
	}
}

func TestCompleteJoinsContinuations(t *testing.T) {
	first := `{"cards":[{"q":"` + strings.Repeat("x", 600)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: first, StopReason: llm.StopMaxTokens},
		llm.MockResponse{Content: `yy`, StopReason: llm.StopMaxTokens},
		llm.MockResponse{Content: `"}]}`},
	)
	c := newTestClient(mock)

	got, err := c.Complete(context.Background(), Prompt{System: "s", User: "u", MaxTokens: 6000})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if want := first + `yy"}]}`; got != want {
		t.Errorf("Complete() = %q, want %q", got, want)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}

	cont := mock.Calls[1]
	if cont.MaxTokens != 4000 {
		t.Errorf("continuation MaxTokens = %d, want 4000", cont.MaxTokens)
	}
	if strings.Contains(cont.Messages[0].Content, `{"cards"`) {
		t.Error("continuation prompt should quote only the tail of the text")
	}
	if !strings.Contains(cont.Messages[0].Content, strings.Repeat("x", 500)) {
		t.Error("continuation prompt is missing the tail")
	}
	// The second continuation quotes the cumulative text.
	if !strings.Contains(mock.Calls[2].Messages[0].Content, "xxyy") {
		t.Error("second continuation should quote the cumulative tail")
	}
}

// purposeRecorder records the purpose label of every request.
type purposeRecorder struct {
	llm.Provider
	purposes []string
}

func (r *purposeRecorder) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	r.purposes = append(r.purposes, llm.PurposeFrom(ctx))
	return r.Provider.Generate(ctx, req)
}

func TestCompletePurposeLabels(t *testing.T) {
	responses := func() []llm.MockResponse {
		return []llm.MockResponse{
			{Content: `{"a":`, StopReason: llm.StopMaxTokens},
			{Content: `1}`},
		}
	}
	tests := []struct {
		name   string
		ctx    context.Context
		prompt string
		want   []string
	}{
		{"prompt purpose", context.Background(), "lesson-cards", []string{"lesson-cards", "lesson-cards-continuation"}},
		{"context purpose", llm.WithPurpose(context.Background(), "lesson-analysis"), "", []string{"lesson-analysis", "lesson-analysis-continuation"}},
		{"no purpose", context.Background(), "", []string{"completion", "completion-continuation"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &purposeRecorder{Provider: llm.NewMockProvider(responses()...)}
			if _, err := newTestClient(rec).Complete(tt.ctx, Prompt{User: "u", Purpose: tt.prompt}); err != nil {
				t.Fatalf("Complete() error = %v", err)
			}
			if strings.Join(rec.purposes, ",") != strings.Join(tt.want, ",") {
				t.Errorf("purposes = %v, want %v", rec.purposes, tt.want)
			}
		})
	}
}

func TestCompleteContinuationLimit(t *testing.T) {
	mock := llm.NewMockProvider()
	for i := 0; i < 5; i++ {
		mock.AddResponse(llm.MockResponse{Content: "part", StopReason: llm.StopMaxTokens})
	}
	c := newTestClient(mock, func(cfg *Config) { cfg.MaxContinuations = 2 })

	_, err := c.Complete(context.Background(), Prompt{User: "u"})
	if !IsKind(err, KindContinuationLimit) {
		t.Fatalf("expected continuation limit error, got %v", err)
	}
	var maxErr *llm.ErrMaxTokensExceeded
	if !errors.As(err, &maxErr) {
		t.Fatalf("expected ErrMaxTokensExceeded cause, got %v", err)
	}
	if maxErr.Content != "partpartpart" {
		t.Errorf("partial content = %q", maxErr.Content)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 1 request + 2 continuations, got %d calls", mock.CallCount())
	}
}

func TestCompleteContinuationFailureFailsCall(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: "{", StopReason: llm.StopMaxTokens},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("503")}},
	)
	c := newTestClient(mock)

	_, err := c.Complete(context.Background(), Prompt{User: "u"})
	if !IsKind(err, KindConnection) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestCompleteErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"deadline", context.DeadlineExceeded, KindTimeout},
		{"unavailable", &llm.ErrProviderUnavailable{Err: errors.New("dial tcp: refused")}, KindConnection},
		{"wrapped deadline", &llm.ErrProviderUnavailable{Err: context.DeadlineExceeded}, KindTimeout},
		{"stream cut", io.ErrUnexpectedEOF, KindTruncatedStream},
		{"rate limit", &llm.ErrRateLimit{Err: errors.New("429")}, KindProvider},
		{"invalid", &llm.ErrInvalidResponse{Err: errors.New("no choices")}, KindProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Err: tt.err})
			_, err := newTestClient(mock).Complete(context.Background(), Prompt{User: "u", Purpose: "cards"})

			var ce *Error
			if !errors.As(err, &ce) {
				t.Fatalf("expected *Error, got %T %v", err, err)
			}
			if ce.Kind != tt.want {
				t.Errorf("Kind = %q, want %q", ce.Kind, tt.want)
			}
			if ce.Purpose != "cards" {
				t.Errorf("Purpose = %q", ce.Purpose)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("cause not preserved: %v", err)
			}
		})
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestCompleteAppliesTimeout(t *testing.T) {
	c := newTestClient(blockingProvider{})
	start := time.Now()
	_, err := c.Complete(context.Background(), Prompt{User: "u", Timeout: 20 * time.Millisecond})
	if !IsKind(err, KindTimeout) {
		t.Fatalf("expected timeout, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("timeout was not applied")
	}
}

func TestTail(t *testing.T) {
	if got := tail("привет", 3); got != "вет" {
		t.Errorf("tail() = %q", got)
	}
	if got := tail("ab", 5); got != "ab" {
		t.Errorf("tail() = %q", got)
	}
}
