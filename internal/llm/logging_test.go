package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/kidlingo/internal/store"
	"github.com/abhisek/kidlingo/internal/store/storetest"
)

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	s := storetest.Open(t)
	mock := NewMockProvider(
		MockResponse{Content: `{"lessonTitle":"Food"}`, Usage: Usage{InputTokens: 12, OutputTokens: 7}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}},
	)
	p := WithLogging(mock, "openrouter", s.EventRepo(), nil)

	ctx := WithRunID(WithPurpose(context.Background(), "lesson-analysis"), "run-42")
	if _, err := p.Generate(ctx, UserRequest("system text", "user text", 4000, 0.7)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(WithPurpose(context.Background(), "topic-cards"), Request{}); err == nil {
		t.Fatal("expected error to pass through")
	}

	events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	failed, ok := events[0], events[1]
	if !ok.Success || ok.Purpose != "lesson-analysis" || ok.RunID != "run-42" {
		t.Fatalf("unexpected success event: %+v", ok)
	}
	if ok.Provider != "openrouter" || ok.Model != "mock" || ok.StopReason != StopEnd {
		t.Fatalf("unexpected provider fields: %+v", ok)
	}
	if ok.InputTokens != 12 || ok.ResponseBody != `{"lessonTitle":"Food"}` {
		t.Fatalf("unexpected usage/body: %+v", ok)
	}
	if !strings.Contains(ok.RequestBody, "[system]\nsystem text") || !strings.Contains(ok.RequestBody, "[user]\nuser text") {
		t.Fatalf("request body = %q", ok.RequestBody)
	}

	if failed.Success || !strings.Contains(failed.ErrorMessage, "connection refused") {
		t.Fatalf("unexpected failure event: %+v", failed)
	}
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: "ok"})
	p := WithLogging(mock, "mock", nil, nil)
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil || resp.Content != "ok" {
		t.Fatalf("resp = %+v, err = %v", resp, err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID = %q", p.ModelID())
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, isRetry := p.(*RetryProvider); isRetry {
		t.Fatal("retry should not wrap when MaxAttempts <= 1")
	}

	p, err = NewProvider(context.Background(), Config{Provider: "mock", Retry: RetryConfig{MaxAttempts: 3}}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, isRetry := p.(*RetryProvider); !isRetry {
		t.Fatalf("expected retry wrapper, got %T", p)
	}

	if _, err := NewProvider(context.Background(), Config{Provider: "bogus"}, nil, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
