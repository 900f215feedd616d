package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kidlingo/internal/cards"
	"github.com/abhisek/kidlingo/internal/lessongen"
	"github.com/abhisek/kidlingo/internal/store"
	"github.com/abhisek/kidlingo/internal/store/storetest"
)

func registerMedia(t *testing.T, s *store.Store, path string) *store.Media {
	t.Helper()
	m, _, err := s.MediaRepo().Register(context.Background(), store.NewMedia{Path: path, Name: path, Size: 1})
	require.NoError(t, err)
	return m
}

func raws(t *testing.T, docs ...string) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		require.True(t, json.Valid([]byte(d)), "invalid test JSON: %s", d)
		out[i] = json.RawMessage(d)
	}
	return out
}

func newAssembler(s *store.Store, opts ...Option) *Assembler {
	opts = append([]Option{WithRand(rand.New(rand.NewPCG(3, 4)))}, opts...)
	return New(s, nil, opts...)
}

type stubReviewer struct {
	cards    []cards.Payload
	err      error
	excluded []int
}

func (r *stubReviewer) Build(_ context.Context, excludeLessonID, _ int) ([]cards.Payload, error) {
	r.excluded = append(r.excluded, excludeLessonID)
	return r.cards, r.err
}

func TestAssembleFlatCards(t *testing.T) {
	s := storetest.Open(t)
	m := registerMedia(t, s, "/v/flat.mp4")

	payload := &lessongen.LessonPayload{
		Title:         "Weather",
		Description:   "Погода",
		LanguageLevel: "a2",
		Raw:           `{"lessonTitle":"Weather"}`,
		Cards: raws(t,
			`{"cardType":"repeat","questionText":"It's sunny, it's rainy","promptText":"Повтори"}`,
			`{"cardType":"spelling","questionText":"Собери слово","correctAnswer":"rain"}`,
		),
	}

	res, err := newAssembler(s).Assemble(context.Background(), m, "transcript text", payload, false)
	require.NoError(t, err)
	assert.False(t, res.Existing)
	assert.Equal(t, 2, res.Created)
	assert.Zero(t, res.Skipped)

	l := res.Lesson
	assert.Equal(t, "Weather", l.Title)
	assert.Equal(t, "A2", l.LanguageLevel)
	assert.Equal(t, "transcript text", l.TranscriptText)
	assert.Equal(t, payload.Raw, l.RawResponse)
	require.Len(t, l.Cards, 2)

	rep := l.Cards[0]
	assert.Equal(t, "repeat", rep.CardType)
	assert.Equal(t, 0, rep.OrderIndex)
	assert.Equal(t, []any{"It's sunny", "it's rainy"}, rep.ExtraData["words"])

	sp := l.Cards[1]
	assert.Equal(t, 1, sp.OrderIndex)
	letters, ok := sp.ExtraData["scrambledLetters"].([]any)
	require.True(t, ok, "scrambledLetters = %#v", sp.ExtraData["scrambledLetters"])
	assert.ElementsMatch(t, []any{"r", "a", "i", "n"}, letters)
}

func TestAssembleIsIdempotent(t *testing.T) {
	s := storetest.Open(t)
	m := registerMedia(t, s, "/v/idem.mp4")
	payload := &lessongen.LessonPayload{
		Title: "Colors",
		Cards: raws(t, `{"cardType":"choose","questionText":"red","correctAnswer":"red","options":["red","blue"]}`),
	}
	a := newAssembler(s)

	first, err := a.Assemble(context.Background(), m, "t", payload, false)
	require.NoError(t, err)
	second, err := a.Assemble(context.Background(), m, "t", payload, false)
	require.NoError(t, err)

	assert.True(t, second.Existing)
	assert.Equal(t, first.Lesson.ID, second.Lesson.ID)

	n, err := s.Client().ExerciseCard.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAssembleSkipsEmptyAndBackfills(t *testing.T) {
	s := storetest.Open(t)
	m := registerMedia(t, s, "/v/skip.mp4")
	payload := &lessongen.LessonPayload{
		Title: "Mixed",
		Cards: raws(t,
			`{"cardType":"translate","questionText":"","promptText":"","correctAnswer":null}`,
			`{"cardType":"translate","correctAnswer":"it\\'s cloudy"}`,
			`"just a string"`,
			`{"cardType":"dance","promptText":"&quot;Hop&quot;"}`,
		),
	}

	res, err := newAssembler(s).Assemble(context.Background(), m, "t", payload, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Lesson.Cards, 2)

	byType := map[string]store.Card{}
	for _, c := range res.Lesson.Cards {
		byType[c.CardType] = c
	}
	tr := byType["translate"]
	assert.Equal(t, "it's cloudy", tr.QuestionText)
	assert.Equal(t, 1, tr.OrderIndex)

	unknown := byType["repeat"]
	assert.Equal(t, `"Hop"`, unknown.QuestionText)
	assert.Equal(t, 3, unknown.OrderIndex)
}

func TestAssembleNoValidCardsWritesNothing(t *testing.T) {
	s := storetest.Open(t)
	m := registerMedia(t, s, "/v/none.mp4")
	payload := &lessongen.LessonPayload{
		Title: "Empty",
		Cards: raws(t, `{"questionText":"  "}`, `[1,2]`),
	}

	_, err := newAssembler(s).Assemble(context.Background(), m, "t", payload, false)
	require.True(t, errors.Is(err, ErrNoValidCards), "err = %v", err)

	n, err := s.LessonRepo().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAssembleTopicsTagged(t *testing.T) {
	s := storetest.Open(t)
	m := registerMedia(t, s, "/v/topics.mp4")
	payload := &lessongen.LessonPayload{
		Title: "",
		Topics: []lessongen.TopicCards{
			{Topic: "weather", Cards: raws(t, `{"cardType":"repeat","questionText":"sunny","topic":"other"}`)},
			{Topic: "colors", Cards: raws(t, `{"cardType":"choose","questionText":"red","orderIndex":"5"}`)},
		},
		Cards: raws(t, `{"questionText":"ignored"}`),
	}

	res, err := newAssembler(s).Assemble(context.Background(), m, "t", payload, false)
	require.NoError(t, err)
	assert.Equal(t, "Untitled Lesson", res.Lesson.Title)
	require.Len(t, res.Lesson.Cards, 2)
	assert.Equal(t, "weather", res.Lesson.Cards[0].Topic)
	assert.Equal(t, "colors", res.Lesson.Cards[1].Topic)
	assert.Equal(t, 5, res.Lesson.Cards[1].OrderIndex)
}

func TestAssembleForceRecreate(t *testing.T) {
	s := storetest.Open(t)
	m := registerMedia(t, s, "/v/force.mp4")
	reviewer := &stubReviewer{}
	a := newAssembler(s, WithReviewer(reviewer, 5))

	first, err := a.Assemble(context.Background(), m, "t", &lessongen.LessonPayload{
		Title: "Old",
		Cards: raws(t, `{"questionText":"a"}`, `{"questionText":"b"}`),
	}, false)
	require.NoError(t, err)

	second, err := a.Assemble(context.Background(), m, "t", &lessongen.LessonPayload{
		Title: "New",
		Cards: raws(t, `{"questionText":"c"}`),
	}, true)
	require.NoError(t, err)

	assert.NotEqual(t, first.Lesson.ID, second.Lesson.ID)
	assert.Equal(t, "New", second.Lesson.Title)
	assert.Equal(t, []int{0, first.Lesson.ID}, reviewer.excluded)

	n, err := s.Client().ExerciseCard.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.LessonRepo().Get(context.Background(), first.Lesson.ID, false)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestAssembleAppendsReviewCards(t *testing.T) {
	s := storetest.Open(t)
	m := registerMedia(t, s, "/v/review.mp4")

	orig := 42
	zero := 0
	reviewer := &stubReviewer{cards: []cards.Payload{{
		CardType:       cards.TypeWriting,
		QuestionText:   "cat",
		PromptText:     cards.PromptWrite,
		Topic:          store.ReviewTopic,
		IsReview:       true,
		OriginalCardID: &orig,
		OrderIndex:     &zero,
	}}}

	res, err := newAssembler(s, WithReviewer(reviewer, 22)).Assemble(context.Background(), m, "t", &lessongen.LessonPayload{
		Title: "With review",
		Cards: raws(t, `{"questionText":"dog","orderIndex":0}`, `{"questionText":"fish","orderIndex":3}`),
	}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Reviews)
	assert.Equal(t, 3, res.Created)

	last := res.Lesson.Cards[len(res.Lesson.Cards)-1]
	assert.Equal(t, "cat", last.QuestionText)
	assert.Equal(t, 4, last.OrderIndex)
	assert.True(t, last.IsRepetition)
	assert.Equal(t, store.ReviewTopic, last.Topic)
	require.NotNil(t, last.OriginalCardID)
	assert.Equal(t, 42, *last.OriginalCardID)
}

func TestAssembleReviewerFailureIsNotFatal(t *testing.T) {
	s := storetest.Open(t)
	m := registerMedia(t, s, "/v/rfail.mp4")
	reviewer := &stubReviewer{err: errors.New("db busy")}

	res, err := newAssembler(s, WithReviewer(reviewer, 22)).Assemble(context.Background(), m, "t", &lessongen.LessonPayload{
		Title: "Solo",
		Cards: raws(t, `{"questionText":"dog"}`),
	}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Zero(t, res.Reviews)
}
