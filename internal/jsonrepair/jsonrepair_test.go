package jsonrepair

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fenced json", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"trailing comma object", `{"a":1,}`, `{"a":1}`},
		{"trailing comma array", `{"a": [1, 2,]}`, `{"a": [1, 2]}`},
		{"repeated commas", `{"a":[1,,]}`, `{"a":[1]}`},
		{"prose around", "Here is the lesson:\n{\"a\": 1}\nHope it helps!", `{"a": 1}`},
		{"no braces", "no json here", "no json here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeComments(t *testing.T) {
	in := "{\n  // planner note\n  \"url\": \"http://example.com/a\", /* block */ \"b\": 2\n}"
	got := Sanitize(in)
	if !json.Valid([]byte(got)) {
		t.Fatalf("Sanitize() produced invalid JSON: %q", got)
	}
	if !strings.Contains(got, "http://example.com/a") {
		t.Errorf("comment stripping touched a string literal: %q", got)
	}
	if strings.Contains(got, "planner note") || strings.Contains(got, "block") {
		t.Errorf("comments survived: %q", got)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\":1,}\n```",
		`{"a":[1,,],}`,
		"text {\"a\": \"//not a comment\"} more text",
		"{\"a\": 1} /* x */ }",
		"/**/ /",
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", in, once, twice)
		}
		if strings.Contains(once, ",}") || strings.Contains(once, ",]") {
			t.Errorf("trailing comma survived in %q", once)
		}
	}
}

func TestRepairTruncated(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"unterminated card list", `{"cards": [{"id": 1}`, `{"cards": [{"id": 1}]}`, true},
		{"drops partial element", `{"cards": [{"id": 1}, {"id": 2, "q": "abc`, `{"cards": [{"id": 1}]}`, true},
		{"nested extra data", `{"cards":[{"a":1,"extraData":{"w":["x"]}`, `{"cards":[{"a":1,"extraData":{"w":["x"]}}]}`, true},
		{"closes everything", `{"title": "x", "tags": ["a", "b"`, `{"title": "x", "tags": ["a", "b"]}`, true},
		{"open string", `{"title": "Weath`, `{"title": "Weath"}`, true},
		{"dangling comma", `{"tags": ["a",`, `{"tags": ["a"]}`, true},
		{"hopeless", `{"a": tru`, `{"a": tru}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RepairTruncated(tt.in, len(tt.in))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("RepairTruncated() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
			if ok {
				assertBalanced(t, got)
			}
		})
	}
}

func TestRepairTruncatedUsesOffset(t *testing.T) {
	in := `{"cards": [{"id": 1}, {"id": 2}] GARBAGE`
	got, ok := RepairTruncated(in, strings.Index(in, "}, {")+1)
	require.True(t, ok)
	assert.Equal(t, `{"cards": [{"id": 1}]}`, got)
}

func TestRepairGeneric(t *testing.T) {
	t.Run("unterminated string at line end", func(t *testing.T) {
		in := "{\"a\": \"unterminated\n}"
		got, ok := RepairGeneric(in, 6)
		require.True(t, ok)
		assert.True(t, json.Valid([]byte(got)))
	})

	t.Run("comment residue and trailing comma", func(t *testing.T) {
		got, ok := RepairGeneric("{\"a\": 1, // c\n}", 10)
		require.True(t, ok)
		assert.True(t, json.Valid([]byte(got)))
	})

	t.Run("truncation past threshold", func(t *testing.T) {
		in := `{"cards": [{"id": 1}, {"id": 2`
		got, ok := RepairGeneric(in, len(in))
		require.True(t, ok)
		assert.Equal(t, `{"cards": [{"id": 1}]}`, got)
	})

	t.Run("mid-document corruption is not truncated", func(t *testing.T) {
		in := `{"a": 1 "b": 2, "c": [1, 2, 3, 4, 5]}`
		_, ok := RepairGeneric(in, 8)
		assert.False(t, ok)
	})
}

func TestDecode(t *testing.T) {
	type lesson struct {
		Title string            `json:"lessonTitle"`
		Cards []json.RawMessage `json:"cards"`
	}

	t.Run("clean", func(t *testing.T) {
		var l lesson
		res, err := Decode("```json\n{\"lessonTitle\":\"Weather\",\"cards\":[{}]}\n```", &l)
		require.NoError(t, err)
		assert.Equal(t, StrategyNone, res.Strategy)
		assert.False(t, res.Repaired)
		assert.Equal(t, "Weather", l.Title)
	})

	t.Run("truncated", func(t *testing.T) {
		var l lesson
		raw := `{"lessonTitle":"X","cards":[{"questionText":"a"},{"questionText":"b`
		res, err := Decode(raw, &l)
		require.NoError(t, err)
		assert.True(t, res.Repaired)
		assert.Equal(t, "X", l.Title)
		assert.Len(t, l.Cards, 1)
	})

	t.Run("garbage", func(t *testing.T) {
		var l lesson
		_, err := Decode("not json at all", &l)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "want *ParseError, got %v", err)
		assert.Equal(t, "not json at all", perr.Raw)
	})

	t.Run("early corruption is not cut down", func(t *testing.T) {
		var l lesson
		raw := `{"lessonTitle":"X" "cards":[{"questionText":"a"},{"questionText":"b"},{"questionText":"c"}]}`
		_, err := Decode(raw, &l)
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "want *ParseError, got %v", err)
		assert.Less(t, perr.Offset, len(perr.Cleaned)/2)
		assert.Empty(t, l.Cards)
	})

	t.Run("shape mismatch", func(t *testing.T) {
		var l lesson
		_, err := Decode(`{"lessonTitle": 5}`, &l)
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
	})
}

func TestParseErrorPosition(t *testing.T) {
	perr := &ParseError{Cleaned: "{\n  \"a\": x}", Offset: 9}
	line, col := perr.Position()
	if line != 2 || col != 8 {
		t.Errorf("Position() = %d:%d, want 2:8", line, col)
	}
}

func TestDumpWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "debug")
	w := NewDumpWriter(dir)

	path, err := w.Write(&ParseError{Raw: "RAW BODY", Cleaned: "CLEANED BODY", Offset: 3, Err: errors.New("boom")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "ai_response_error_"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, want := range []string{"RAW BODY", "CLEANED BODY", "boom", "Offset: 3"} {
		assert.Contains(t, string(data), want)
	}

	path, err = NewDumpWriter("").Write(&ParseError{})
	require.NoError(t, err)
	assert.Empty(t, path)
}

func assertBalanced(t *testing.T, s string) {
	t.Helper()
	if strings.Count(s, "{") != strings.Count(s, "}") || strings.Count(s, "[") != strings.Count(s, "]") {
		t.Errorf("unbalanced output %q", s)
	}
}
