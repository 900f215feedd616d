// Package lessongen turns a lesson transcript into a lesson payload by
// talking to the model: an analysis request that plans topics, then one
// card request per topic, with a single-request path as fallback.
package lessongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/kidlingo/internal/completion"
	"github.com/abhisek/kidlingo/internal/jsonrepair"
	"github.com/abhisek/kidlingo/internal/logger"
)

// LLM purposes recorded in the request event log.
const (
	PurposeAnalysis    = "lesson-analysis"
	PurposeTopicCards  = "lesson-cards"
	PurposeSingleStage = "lesson-single"
)

const untitledLesson = "Untitled Lesson"

// Generator produces lesson payloads from transcripts.
type Generator struct {
	client *completion.Client
	cfg    Config
	dumps  *jsonrepair.DumpWriter
	log    *logger.Logger
}

// New creates a Generator. dumps may be nil to disable debug dumps.
func New(client *completion.Client, cfg Config, dumps *jsonrepair.DumpWriter, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{client: client, cfg: cfg, dumps: dumps, log: log.Named("lessongen")}
}

// Generate runs the two-stage flow and falls back to the single-request
// flow when it fails. With TwoStage disabled only the single request runs.
func (g *Generator) Generate(ctx context.Context, in Input) (*LessonPayload, error) {
	if !g.cfg.TwoStage {
		return g.GenerateSingleStage(ctx, in)
	}

	payload, err := g.GenerateTwoStage(ctx, in)
	if err == nil {
		return payload, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	g.log.Warn("two-stage generation failed, trying single request", "error", err)
	payload, fallbackErr := g.GenerateSingleStage(ctx, in)
	if fallbackErr != nil {
		return nil, errors.Join(err, fmt.Errorf("single-stage fallback: %w", fallbackErr))
	}
	return payload, nil
}

// GenerateTwoStage plans topics, then generates cards for each topic in
// plan order. A topic whose generation fails is logged and skipped; the
// call fails only when no topic yields cards.
func (g *Generator) GenerateTwoStage(ctx context.Context, in Input) (*LessonPayload, error) {
	analysis, err := g.Analyze(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("analyze transcript: %w", err)
	}
	g.log.Info("analysis complete", "title", analysis.LessonTitle, "topics", len(analysis.Topics))

	payload := &LessonPayload{
		Title:         orDefault(analysis.LessonTitle, untitledLesson),
		Description:   analysis.LessonDescription,
		LanguageLevel: NormalizeLevel(analysis.LanguageLevel),
		TwoStage:      true,
	}

	expected := 0
	for _, topic := range analysis.Topics {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		expected += topic.Expected()

		batch, err := g.GenerateTopicCards(ctx, topic, in.Transcript)
		if err != nil {
			g.log.Warn("topic skipped", "topic", topic.Topic, "error", err)
			continue
		}
		if len(batch) < topic.Expected() {
			g.log.Warn("topic returned fewer cards than planned",
				"topic", topic.Topic, "planned", topic.Expected(), "got", len(batch))
		}
		g.log.Info("topic cards generated", "topic", topic.Topic, "cards", len(batch))

		payload.Topics = append(payload.Topics, TopicCards{
			Topic:     topic.Topic,
			TopicName: topic.Name(),
			Cards:     batch,
		})
	}

	total := payload.CardCount()
	if total == 0 {
		return nil, ErrNoCards
	}
	if total < expected {
		g.log.Warn("lesson has fewer cards than planned", "planned", expected, "got", total)
	}
	return payload, nil
}

// Analyze runs the analysis phase and returns the normalised topic plan.
func (g *Generator) Analyze(ctx context.Context, in Input) (*Analysis, error) {
	text, err := g.client.Complete(ctx, completion.Prompt{
		System:    analysisSystem(g.cfg.CardsPerTopic),
		User:      buildAnalysisUserMessage(in, g.cfg.MaxPriorLessons, g.cfg.CardsPerTopic),
		MaxTokens: g.cfg.AnalysisMaxTokens,
		Timeout:   g.cfg.AnalysisTimeout,
		Purpose:   PurposeAnalysis,
	})
	if err != nil {
		return nil, err
	}

	var out Analysis
	if _, err := g.decode(text, AnalysisSchema, &out); err != nil {
		return nil, err
	}

	for i := range out.Topics {
		topic := &out.Topics[i]
		if dropped := normalizePlan(topic.CardPlan); len(dropped) > 0 {
			g.log.Warn("dropped unknown card types from plan", "topic", topic.Topic, "types", dropped)
		}
		if n := topic.Expected(); n != g.cfg.CardsPerTopic {
			g.log.Warn("card plan total differs from target",
				"topic", topic.Topic, "planned", n, "target", g.cfg.CardsPerTopic)
		}
	}
	return &out, nil
}

// GenerateTopicCards requests the cards for one planned topic.
func (g *Generator) GenerateTopicCards(ctx context.Context, topic TopicPlan, transcript string) ([]json.RawMessage, error) {
	text, err := g.client.Complete(ctx, completion.Prompt{
		System:    cardsSystem(),
		User:      buildCardsUserMessage(topic, transcript),
		MaxTokens: g.cfg.CardsMaxTokens,
		Timeout:   g.cfg.CardsTimeout,
		Purpose:   PurposeTopicCards,
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		Cards []json.RawMessage `json:"cards"`
	}
	if _, err := g.decode(text, CardsSchema, &out); err != nil {
		return nil, err
	}
	return out.Cards, nil
}

type lessonDocument struct {
	LessonTitle       *string           `json:"lessonTitle"`
	LessonDescription string            `json:"lessonDescription"`
	LanguageLevel     string            `json:"languageLevel"`
	Cards             []json.RawMessage `json:"cards"`
	Sections          []struct {
		Cards []json.RawMessage `json:"cards"`
	} `json:"sections"`
	Topics []TopicCards `json:"topics"`
}

// GenerateSingleStage asks for the whole lesson in one request. Cards
// nested under sections are flattened in order, with orderIndex filled in
// where the model left it out.
func (g *Generator) GenerateSingleStage(ctx context.Context, in Input) (*LessonPayload, error) {
	text, err := g.client.Complete(ctx, completion.Prompt{
		System:      singleStageSystem(g.cfg.CardsPerTopic),
		User:        buildSingleStageUserMessage(in, g.cfg.MaxPriorLessons),
		MaxTokens:   g.cfg.SingleStageMaxTokens,
		Timeout:     g.cfg.SingleStageTimeout,
		Temperature: g.cfg.Temperature,
		Purpose:     PurposeSingleStage,
	})
	if err != nil {
		return nil, err
	}

	var doc lessonDocument
	res, err := g.decode(text, LessonSchema, &doc)
	if err != nil {
		return nil, err
	}

	if doc.Cards == nil && len(doc.Sections) > 0 {
		idx := 0
		for _, section := range doc.Sections {
			for _, card := range section.Cards {
				doc.Cards = append(doc.Cards, withOrderIndex(card, idx))
				idx++
			}
		}
		g.log.Info("flattened sections into cards", "sections", len(doc.Sections), "cards", len(doc.Cards))
	}

	var missing []string
	if doc.LessonTitle == nil {
		missing = append(missing, "lessonTitle")
	}
	if len(doc.Cards) == 0 && len(doc.Topics) == 0 {
		missing = append(missing, "cards", "topics")
	}
	if len(missing) > 0 {
		return nil, &StructureError{Missing: missing}
	}

	payload := &LessonPayload{
		Title:         orDefault(*doc.LessonTitle, untitledLesson),
		Description:   doc.LessonDescription,
		LanguageLevel: NormalizeLevel(doc.LanguageLevel),
		Topics:        doc.Topics,
		Cards:         doc.Cards,
		Raw:           res.Cleaned,
	}
	g.log.Info("single-stage lesson parsed",
		"title", payload.Title, "topics", len(payload.Topics), "cards", payload.CardCount())
	return payload, nil
}

// decode repairs text if needed, validates it against schema and decodes
// it into out. Unrecoverable text is written to the debug dump.
func (g *Generator) decode(text string, schema *Schema, out any) (*jsonrepair.Result, error) {
	var doc any
	res, err := jsonrepair.Decode(text, &doc)
	if err != nil {
		var perr *jsonrepair.ParseError
		if errors.As(err, &perr) {
			g.dump(perr)
		}
		return nil, err
	}
	if res.Repaired {
		g.log.Warn("model response repaired", "schema", schema.Name, "strategy", res.Strategy)
	}

	if err := validateDocument(schema, doc, res.Text); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(res.Text), out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", schema.Name, err)
	}
	return res, nil
}

func (g *Generator) dump(perr *jsonrepair.ParseError) {
	path, err := g.dumps.Write(perr)
	switch {
	case err != nil:
		g.log.Error("could not save unparseable response", "error", err)
	case path != "":
		g.log.Error("unparseable response saved", "path", path, "offset", perr.Offset)
	}
}

func withOrderIndex(raw json.RawMessage, idx int) json.RawMessage {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return raw
	}
	if _, ok := m["orderIndex"]; ok {
		return raw
	}
	m["orderIndex"] = idx
	out, err := json.Marshal(m)
	if err != nil {
		return raw
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
