// Package repetition builds review cards from earlier lessons. Each sampled
// card is re-typed so the same word is practiced through a different skill.
package repetition

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/kidlingo/internal/cards"
	"github.com/abhisek/kidlingo/internal/logger"
	"github.com/abhisek/kidlingo/internal/store"
)

// DefaultCount is the number of review cards added to a new lesson.
const DefaultCount = 22

// Synthesizer samples review cards from the lesson store.
type Synthesizer struct {
	repo store.LessonRepo
	rng  *rand.Rand
	log  *logger.Logger
}

// New creates a Synthesizer. A nil rng uses the global source.
func New(repo store.LessonRepo, rng *rand.Rand, log *logger.Logger) *Synthesizer {
	if log == nil {
		log = logger.Nop()
	}
	return &Synthesizer{repo: repo, rng: rng, log: log.Named("repetition")}
}

// Build samples up to count non-review cards from every lesson except
// excludeLessonID, without replacement, and returns them as review card
// payloads ordered 0..n-1. count <= 0 means DefaultCount.
func (s *Synthesizer) Build(ctx context.Context, excludeLessonID, count int) ([]cards.Payload, error) {
	if count <= 0 {
		count = DefaultCount
	}

	pool, err := s.repo.CardsExcludingLesson(ctx, excludeLessonID)
	if err != nil {
		return nil, fmt.Errorf("load review candidates: %w", err)
	}
	if len(pool) == 0 {
		s.log.Info("no earlier cards to review")
		return nil, nil
	}

	n := min(count, len(pool))
	picks := s.perm(len(pool))[:n]

	out := make([]cards.Payload, 0, n)
	for i, idx := range picks {
		out = append(out, s.reviewCard(pool[idx], i))
	}
	s.log.Info("review cards selected", "selected", n, "pool", len(pool))
	return out, nil
}

func (s *Synthesizer) reviewCard(src store.Card, order int) cards.Payload {
	srcType, _ := cards.ParseType(src.CardType)
	target := cards.RepetitionTarget(srcType)

	prompt := src.PromptText
	if p, ok := cards.DefaultPrompt(target); ok {
		prompt = p
	}

	id := src.ID
	p := cards.Payload{
		CardType:        target,
		QuestionText:    src.QuestionText,
		PromptText:      prompt,
		CorrectAnswer:   src.CorrectAnswer,
		Options:         src.Options,
		IconName:        src.IconName,
		TranslationText: src.TranslationText,
		HintText:        src.HintText,
		Topic:           store.ReviewTopic,
		OrderIndex:      &order,
		IsReview:        true,
		OriginalCardID:  &id,
	}

	if target == cards.TypeSpelling && src.CorrectAnswer != nil {
		if letters := cards.ScrambleLetters(*src.CorrectAnswer, s.rng); len(letters) > 0 {
			p.ExtraData = map[string]any{"scrambledLetters": letters}
		}
	}
	return p
}

func (s *Synthesizer) perm(n int) []int {
	if s.rng == nil {
		return rand.Perm(n)
	}
	return s.rng.Perm(n)
}
