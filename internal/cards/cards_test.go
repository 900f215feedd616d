package cards

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in     string
		want   Type
		wantOK bool
	}{
		{"spelling", TypeSpelling, true},
		{"new_words", TypeNewWords, true},
		{"", TypeRepeat, true},
		{"dance", TypeRepeat, false},
	}
	for _, tt := range tests {
		got, ok := ParseType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseType(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRepetitionTarget(t *testing.T) {
	want := map[Type]Type{
		TypeRepeat:    TypeWriting,
		TypeSpeak:     TypeWriting,
		TypeTranslate: TypeSpelling,
		TypeChoose:    TypeSpelling,
		TypeSpelling:  TypeRepeat,
		TypeWriting:   TypeSpeak,
		TypeNewWords:  TypeTranslate,
		TypeColor:     TypeChoose,
		TypeMatch:     TypeChoose,
	}
	for _, typ := range AllTypes {
		if got := RepetitionTarget(typ); got != want[typ] {
			t.Errorf("RepetitionTarget(%q) = %q, want %q", typ, got, want[typ])
		}
	}
	if got := RepetitionTarget("bogus"); got != TypeRepeat {
		t.Errorf("RepetitionTarget(bogus) = %q, want repeat", got)
	}
}

func TestDefaultPrompt(t *testing.T) {
	if p, ok := DefaultPrompt(TypeSpelling); !ok || p != PromptAssemble {
		t.Errorf("spelling prompt = %q, %v", p, ok)
	}
	if p, ok := DefaultPrompt(TypeSpeak); !ok || p != PromptSayAloud {
		t.Errorf("speak prompt = %q, %v", p, ok)
	}
	if _, ok := DefaultPrompt(TypeColor); ok {
		t.Error("color should keep the source prompt")
	}
}

func TestCleanText(t *testing.T) {
	tests := map[string]string{
		`It\'s sunny`:          "It's sunny",
		`It\\'s sunny`:         "It's sunny",
		`say \"hi\"`:           `say "hi"`,
		"don&#39;t &quot;x&quot;": `don't "x"`,
		"it&apos;s":            "it's",
		"  padded \n":          "padded",
	}
	for in, want := range tests {
		if got := CleanText(in); got != want {
			t.Errorf("CleanText(%q) = %q, want %q", in, got, want)
		}
	}
	if got := CleanTextPtr(ptr("   ")); got != nil {
		t.Errorf("blank text should clean to nil, got %q", *got)
	}
}

func TestScrambleLetters(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, word := range []string{"jump", "Sunny", "it's", "elephant"} {
		letters := Letters(word)
		got := ScrambleLetters(word, rng)

		sortedGot := slices.Clone(got)
		sortedWant := slices.Clone(letters)
		slices.Sort(sortedGot)
		slices.Sort(sortedWant)
		if !slices.Equal(sortedGot, sortedWant) {
			t.Fatalf("ScrambleLetters(%q) = %v is not a permutation of %v", word, got, letters)
		}
		if slices.Equal(got, letters) {
			t.Errorf("ScrambleLetters(%q) kept the original order", word)
		}
	}
}

func TestScrambleLettersDegenerate(t *testing.T) {
	if got := ScrambleLetters("123 !", nil); got != nil {
		t.Errorf("no letters should give nil, got %v", got)
	}
	// A single repeated letter can never differ; the loop must still end.
	got := ScrambleLetters("aaa", rand.New(rand.NewPCG(3, 4)))
	if !slices.Equal(got, []string{"a", "a", "a"}) {
		t.Errorf("got %v", got)
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"It's sunny, it's rainy", []string{"It's sunny", "it's rainy"}},
		{"hello", []string{"hello"}},
		{" a , , b ,", []string{"a", "b"}},
		{" , ", []string{","}},
	}
	for _, tt := range tests {
		if got := SplitWords(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("SplitWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPayloadUnmarshal(t *testing.T) {
	raw := `{
		"cardType": "translate",
		"questionText": "Как по-английски 'облачно'?",
		"prompt_text": "Выбери правильный вариант",
		"correctAnswer": "it's cloudy",
		"options": ["it's sunny", "it's cloudy"],
		"iconName": "cloud",
		"hint_text": "Подумай о небе",
		"extraData": {"n": 2},
		"orderIndex": "3",
		"isReview": false
	}`
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.CardType != TypeTranslate {
		t.Errorf("CardType = %q", p.CardType)
	}
	if p.PromptText != "Выбери правильный вариант" {
		t.Errorf("snake_case prompt not read: %q", p.PromptText)
	}
	if p.HintText == nil || *p.HintText != "Подумай о небе" {
		t.Errorf("HintText = %v", p.HintText)
	}
	if p.OrderIndex == nil || *p.OrderIndex != 3 {
		t.Errorf("OrderIndex = %v, want 3", p.OrderIndex)
	}
	if len(p.Options) != 2 {
		t.Errorf("Options = %v", p.Options)
	}
	if p.ExtraData["n"] != int64(2) {
		t.Errorf("ExtraData[n] = %#v, want int64(2)", p.ExtraData["n"])
	}
	if p.TranslationText != nil {
		t.Errorf("TranslationText should be nil")
	}
}

func TestPayloadUnmarshalCoercion(t *testing.T) {
	var p Payload
	if err := json.Unmarshal([]byte(`{"cardType":"dance","correctAnswer":7,"orderIndex":2.0}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.CardType != TypeRepeat || p.RawType != "dance" {
		t.Errorf("unknown type: CardType=%q RawType=%q", p.CardType, p.RawType)
	}
	if p.CorrectAnswer == nil || *p.CorrectAnswer != "7" {
		t.Errorf("numeric answer not coerced: %v", p.CorrectAnswer)
	}
	if p.OrderIndex == nil || *p.OrderIndex != 2 {
		t.Errorf("OrderIndex = %v", p.OrderIndex)
	}
}

func TestPayloadUnmarshalNotObject(t *testing.T) {
	for _, raw := range []string{`"text"`, `[1,2]`, `null`, `42`} {
		var p Payload
		err := json.Unmarshal([]byte(raw), &p)
		if !errors.Is(err, ErrNotObject) {
			t.Errorf("Unmarshal(%s) error = %v, want ErrNotObject", raw, err)
		}
	}
}

func ptr(s string) *string { return &s }
