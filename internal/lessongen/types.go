package lessongen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/kidlingo/internal/cards"
)

// ErrNoCards is returned when generation produced no cards at all.
var ErrNoCards = errors.New("model produced no cards for the lesson")

// StructureError reports a lesson document missing required keys.
type StructureError struct {
	Missing []string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid lesson structure: missing %s", strings.Join(e.Missing, ", "))
}

// PriorLesson summarises an earlier lesson so the model can avoid
// re-proposing covered topics.
type PriorLesson struct {
	Title     string
	Topics    []string
	CardCount int
}

// Input is everything generation needs for one transcript.
type Input struct {
	Transcript   string
	PriorLessons []PriorLesson
}

// TopicPlan is one topic from the analysis phase.
type TopicPlan struct {
	Topic     string         `json:"topic"`
	TopicName string         `json:"topicName"`
	KeyWords  []string       `json:"keyWords"`
	CardPlan  map[string]int `json:"cardPlan"`
}

// Expected returns the number of cards the plan asks for.
func (p TopicPlan) Expected() int {
	n := 0
	for _, c := range p.CardPlan {
		n += c
	}
	return n
}

// Name returns the display name, falling back to the topic id.
func (p TopicPlan) Name() string {
	if p.TopicName != "" {
		return p.TopicName
	}
	return p.Topic
}

// Analysis is the parsed output of the analysis phase.
type Analysis struct {
	LessonTitle       string      `json:"lessonTitle"`
	LessonDescription string      `json:"lessonDescription"`
	LanguageLevel     string      `json:"languageLevel"`
	Topics            []TopicPlan `json:"topics"`
}

// TopicCards holds the cards generated for one topic. Cards are kept as
// raw JSON so ingestion can judge each element on its own.
type TopicCards struct {
	Topic     string            `json:"topic"`
	TopicName string            `json:"topicName"`
	Cards     []json.RawMessage `json:"cards"`
}

// LessonPayload is the generated lesson before ingestion.
type LessonPayload struct {
	Title         string
	Description   string
	LanguageLevel string

	// Topics carries per-topic cards. When set, ingestion tags every card
	// with its topic id and ignores Cards.
	Topics []TopicCards
	// Cards is the flat card list of a single-stage response.
	Cards []json.RawMessage

	TwoStage bool
	// Raw is the cleaned single-stage response, kept for auditing.
	Raw string
}

// CardCount returns the number of raw card elements in the payload.
func (p *LessonPayload) CardCount() int {
	if len(p.Topics) == 0 {
		return len(p.Cards)
	}
	n := 0
	for _, t := range p.Topics {
		n += len(t.Cards)
	}
	return n
}

var languageLevels = map[string]bool{"A0": true, "A1": true, "A2": true, "B1": true, "B2": true}

// NormalizeLevel maps a model-supplied CEFR level onto A0-B2. Anything
// else becomes A1.
func NormalizeLevel(s string) string {
	l := strings.ToUpper(strings.TrimSpace(s))
	if languageLevels[l] {
		return l
	}
	return "A1"
}

// normalizePlan drops card types the system does not know and returns the
// names that were dropped.
func normalizePlan(plan map[string]int) (dropped []string) {
	for name, n := range plan {
		if !cards.Type(name).Valid() || n < 0 {
			dropped = append(dropped, name)
			delete(plan, name)
		}
	}
	return dropped
}
