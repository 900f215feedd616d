// Package ingest validates model-generated cards and persists them, with
// the review cards, as one lesson.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/kidlingo/internal/cards"
	"github.com/abhisek/kidlingo/internal/lessongen"
	"github.com/abhisek/kidlingo/internal/logger"
	"github.com/abhisek/kidlingo/internal/store"
)

// ErrNoValidCards is returned when no generated card survives validation.
// Nothing is written in that case.
var ErrNoValidCards = errors.New("no valid cards to save")

const untitledLesson = "Untitled Lesson"

// Reviewer supplies review cards drawn from earlier lessons.
type Reviewer interface {
	Build(ctx context.Context, excludeLessonID, count int) ([]cards.Payload, error)
}

// Result reports what Assemble did.
type Result struct {
	Lesson *store.Lesson

	// Existing is set when the media already had a lesson and nothing was
	// written.
	Existing bool

	Created int
	Reviews int
	Skipped int
}

// Assembler turns a lesson payload into a persisted lesson.
type Assembler struct {
	store       *store.Store
	rng         *rand.Rand
	validators  []Validator
	reviewer    Reviewer
	reviewCount int
	log         *logger.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithReviewer appends up to count review cards from r to every new lesson.
func WithReviewer(r Reviewer, count int) Option {
	return func(a *Assembler) {
		a.reviewer = r
		a.reviewCount = count
	}
}

// WithRand sets the source used to scramble spelling letters.
func WithRand(rng *rand.Rand) Option {
	return func(a *Assembler) { a.rng = rng }
}

// WithValidators replaces the default validator chain.
func WithValidators(vs ...Validator) Option {
	return func(a *Assembler) { a.validators = vs }
}

// New creates an Assembler writing to s.
func New(s *store.Store, log *logger.Logger, opts ...Option) *Assembler {
	if log == nil {
		log = logger.Nop()
	}
	a := &Assembler{
		store:      s,
		validators: DefaultValidators(),
		log:        log.Named("ingest"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble persists payload as the lesson for media. An existing lesson is
// returned untouched unless force is set, in which case it is replaced.
// The old lesson's removal, the new lesson and all of its cards are
// written in one transaction.
func (a *Assembler) Assemble(ctx context.Context, media *store.Media, transcript string, payload *lessongen.LessonPayload, force bool) (*Result, error) {
	existing, err := a.store.LessonRepo().ForMedia(ctx, media.ID)
	if err != nil {
		return nil, fmt.Errorf("look up lesson for media %d: %w", media.ID, err)
	}
	if existing != nil && !force {
		a.log.Info("lesson already exists", "media_id", media.ID, "lesson_id", existing.ID)
		return &Result{Lesson: existing, Existing: true}, nil
	}

	generated, skipped := a.buildCards(candidates(payload))
	if len(generated) == 0 {
		a.log.Error("no valid cards in payload", "media_id", media.ID, "skipped", skipped)
		return nil, ErrNoValidCards
	}

	excludeID := 0
	if existing != nil {
		excludeID = existing.ID
	}
	reviews := a.reviewCards(ctx, excludeID, nextOrder(generated))

	all := append(generated, reviews...)
	title := payload.Title
	if title == "" {
		title = untitledLesson
	}

	var lessonID, created int
	err = a.store.WithTx(ctx, func(tx *store.Store) error {
		lessons := tx.LessonRepo()
		if existing != nil {
			if err := lessons.Delete(ctx, existing.ID); err != nil {
				return fmt.Errorf("delete old lesson %d: %w", existing.ID, err)
			}
			a.log.Info("old lesson deleted", "lesson_id", existing.ID)
		}

		l, err := lessons.Create(ctx, store.NewLesson{
			MediaID:        media.ID,
			Title:          title,
			Description:    payload.Description,
			TranscriptText: transcript,
			RawResponse:    payload.Raw,
			LanguageLevel:  lessongen.NormalizeLevel(payload.LanguageLevel),
		})
		if err != nil {
			return err
		}

		n, err := lessons.AddCards(ctx, l.ID, all)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNoValidCards
		}
		lessonID, created = l.ID, n
		return nil
	})
	if err != nil {
		return nil, err
	}

	lesson, err := a.store.LessonRepo().Get(ctx, lessonID, true)
	if err != nil {
		return nil, fmt.Errorf("reload lesson %d: %w", lessonID, err)
	}

	a.log.Info("lesson saved",
		"lesson_id", lessonID, "title", title, "cards", created, "reviews", len(reviews), "skipped", skipped)
	return &Result{Lesson: lesson, Created: created, Reviews: len(reviews), Skipped: skipped}, nil
}

// candidates flattens the payload into card elements. Cards grouped by
// topic are tagged with the topic id.
func candidates(payload *lessongen.LessonPayload) []Candidate {
	var out []Candidate
	add := func(raw json.RawMessage, topic string) {
		c := Candidate{Index: len(out), Raw: raw}
		var p cards.Payload
		if err := json.Unmarshal(raw, &p); err != nil {
			c.DecodeErr = err
		} else {
			if topic != "" {
				p.Topic = topic
			}
			c.Card = &p
		}
		out = append(out, c)
	}

	if len(payload.Topics) > 0 {
		for _, t := range payload.Topics {
			for _, raw := range t.Cards {
				add(raw, t.Topic)
			}
		}
		return out
	}
	for _, raw := range payload.Cards {
		add(raw, "")
	}
	return out
}

func (a *Assembler) buildCards(cs []Candidate) (built []store.Card, skipped int) {
	for i := range cs {
		c := &cs[i]
		if c.Card != nil {
			normalize(c.Card)
		}
		if verr := a.validate(c); verr != nil {
			skipped++
			a.log.Warn("card skipped", "index", c.Index, "reason", verr.Error())
			continue
		}

		p := c.Card
		if p.RawType != "" {
			a.log.Warn("unknown card type, using repeat", "index", c.Index, "type", p.RawType)
		}
		if p.OrderIndex == nil {
			idx := c.Index
			p.OrderIndex = &idx
		}
		a.enrich(p)
		built = append(built, toStoreCard(p))
	}
	return built, skipped
}

func (a *Assembler) validate(c *Candidate) *ValidationError {
	for _, v := range a.validators {
		if err := v.Validate(c); err != nil {
			return err
		}
	}
	return nil
}

// normalize cleans the text fields and backfills an empty question from
// the prompt or the answer.
func normalize(p *cards.Payload) {
	p.QuestionText = cards.CleanText(p.QuestionText)
	p.PromptText = cards.CleanText(p.PromptText)
	p.CorrectAnswer = cards.CleanTextPtr(p.CorrectAnswer)
	p.TranslationText = cards.CleanTextPtr(p.TranslationText)
	p.HintText = cards.CleanTextPtr(p.HintText)

	if p.QuestionText == "" {
		switch {
		case p.PromptText != "":
			p.QuestionText = p.PromptText
		case p.CorrectAnswer != nil:
			p.QuestionText = *p.CorrectAnswer
		}
	}
}

// enrich fills in the extra data a card type needs when the model left it
// out.
func (a *Assembler) enrich(p *cards.Payload) {
	switch p.CardType {
	case cards.TypeSpelling:
		if hasItems(p.ExtraData, "scrambledLetters") || p.CorrectAnswer == nil {
			return
		}
		if letters := cards.ScrambleLetters(*p.CorrectAnswer, a.rng); len(letters) > 0 {
			setExtra(p, "scrambledLetters", letters)
		}
	case cards.TypeRepeat:
		if hasItems(p.ExtraData, "words") {
			return
		}
		setExtra(p, "words", cards.SplitWords(p.QuestionText))
	}
}

func (a *Assembler) reviewCards(ctx context.Context, excludeLessonID, firstOrder int) []store.Card {
	if a.reviewer == nil {
		return nil
	}
	payloads, err := a.reviewer.Build(ctx, excludeLessonID, a.reviewCount)
	if err != nil {
		a.log.Warn("review cards unavailable", "error", err)
		return nil
	}

	out := make([]store.Card, 0, len(payloads))
	for i := range payloads {
		p := &payloads[i]
		order := firstOrder + i
		p.OrderIndex = &order
		out = append(out, toStoreCard(p))
	}
	return out
}

func nextOrder(cs []store.Card) int {
	next := 0
	for _, c := range cs {
		if c.OrderIndex >= next {
			next = c.OrderIndex + 1
		}
	}
	return next
}

func hasItems(extra map[string]any, key string) bool {
	switch v := extra[key].(type) {
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case string:
		return v != ""
	default:
		return false
	}
}

func setExtra(p *cards.Payload, key string, v any) {
	if p.ExtraData == nil {
		p.ExtraData = map[string]any{}
	}
	p.ExtraData[key] = v
}

func toStoreCard(p *cards.Payload) store.Card {
	c := store.Card{
		CardType:        string(p.CardType),
		QuestionText:    p.QuestionText,
		PromptText:      p.PromptText,
		CorrectAnswer:   p.CorrectAnswer,
		Options:         p.Options,
		ExtraData:       p.ExtraData,
		Topic:           p.Topic,
		IsRepetition:    p.IsReview,
		OriginalCardID:  p.OriginalCardID,
		IconName:        p.IconName,
		ImageURL:        p.ImageURL,
		TranslationText: p.TranslationText,
		HintText:        p.HintText,
	}
	if p.OrderIndex != nil {
		c.OrderIndex = *p.OrderIndex
	}
	return c
}
