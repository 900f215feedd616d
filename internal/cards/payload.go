package cards

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrNotObject is returned when a card element is not a JSON object.
var ErrNotObject = errors.New("card is not a JSON object")

// Payload is one card as produced by the model or by the repetition
// synthesizer, before validation and persistence.
type Payload struct {
	CardType        Type           `json:"cardType"`
	QuestionText    string         `json:"questionText"`
	PromptText      string         `json:"promptText"`
	CorrectAnswer   *string        `json:"correctAnswer,omitempty"`
	Options         []any          `json:"options,omitempty"`
	IconName        *string        `json:"iconName,omitempty"`
	ImageURL        *string        `json:"imageUrl,omitempty"`
	TranslationText *string        `json:"translationText,omitempty"`
	HintText        *string        `json:"hintText,omitempty"`
	ExtraData       map[string]any `json:"extraData,omitempty"`
	Topic           string         `json:"topic,omitempty"`
	OrderIndex      *int           `json:"orderIndex,omitempty"`
	IsReview        bool           `json:"isReview,omitempty"`
	OriginalCardID  *int           `json:"originalCardId,omitempty"`

	// RawType keeps the type name as the model spelled it when it was not
	// a known type.
	RawType string `json:"-"`
}

// UnmarshalJSON accepts both camelCase and snake_case keys and coerces
// scalar values the model sometimes emits with the wrong JSON type (numeric
// answers, string order indexes).
func (p *Payload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return ErrNotObject
		}
		return err
	}
	if m == nil {
		return ErrNotObject
	}

	f := fields(m)
	*p = Payload{}

	if name, ok := f.str("cardType", "card_type"); ok {
		t, known := ParseType(strings.TrimSpace(name))
		p.CardType = t
		if !known {
			p.RawType = name
		}
	} else {
		p.CardType = TypeRepeat
	}

	p.QuestionText, _ = f.str("questionText", "question_text")
	p.PromptText, _ = f.str("promptText", "prompt_text")
	p.CorrectAnswer = f.strPtr("correctAnswer", "correct_answer")
	p.IconName = f.strPtr("iconName", "icon_name")
	p.ImageURL = f.strPtr("imageUrl", "image_url")
	p.TranslationText = f.strPtr("translationText", "translation_text")
	p.HintText = f.strPtr("hintText", "hint_text")
	p.Topic, _ = f.str("topic")

	if v := f.get("options"); v != nil {
		if opts, ok := v.([]any); ok {
			p.Options = normalizeNumbers(opts).([]any)
		}
	}
	if v := f.get("extraData", "extra_data"); v != nil {
		if extra, ok := v.(map[string]any); ok {
			p.ExtraData = normalizeNumbers(extra).(map[string]any)
		}
	}

	p.OrderIndex = f.intPtr("orderIndex", "order_index")
	p.OriginalCardID = f.intPtr("originalCardId", "original_card_id")

	switch v := f.get("isReview", "is_review").(type) {
	case bool:
		p.IsReview = v
	case string:
		p.IsReview, _ = strconv.ParseBool(strings.TrimSpace(v))
	}
	return nil
}

// fields looks keys up in a decoded card object. The first value that is
// neither null nor an empty string wins.
type fields map[string]any

func (f fields) get(keys ...string) any {
	for _, k := range keys {
		v, ok := f[k]
		if !ok || v == nil || v == "" {
			continue
		}
		return v
	}
	return nil
}

func (f fields) str(keys ...string) (string, bool) {
	v := f.get(keys...)
	if v == nil {
		return "", false
	}
	return scalarString(v)
}

func (f fields) strPtr(keys ...string) *string {
	s, ok := f.str(keys...)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func (f fields) intPtr(keys ...string) *int {
	var n int64
	switch v := f.get(keys...).(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			fl, ferr := v.Float64()
			if ferr != nil {
				return nil
			}
			i = int64(fl)
		}
		n = i
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil
		}
		n = int64(i)
	default:
		return nil
	}
	out := int(n)
	return &out
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// normalizeNumbers turns json.Number leaves into int64 or float64 so the
// values serialise back the way they came in.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		for i := range t {
			t[i] = normalizeNumbers(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalizeNumbers(t[k])
		}
		return t
	default:
		return v
	}
}
