package repetition

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kidlingo/internal/cards"
	"github.com/abhisek/kidlingo/internal/store"
	"github.com/abhisek/kidlingo/internal/store/storetest"
)

func strPtr(s string) *string { return &s }

func seedLesson(t *testing.T, s *store.Store, path string, cs []store.Card) *store.Lesson {
	t.Helper()
	ctx := context.Background()
	m, _, err := s.MediaRepo().Register(ctx, store.NewMedia{Path: path, Name: path, Size: 10})
	require.NoError(t, err)
	l, err := s.LessonRepo().Create(ctx, store.NewLesson{
		MediaID:        m.ID,
		Title:          path,
		TranscriptText: "transcript",
		LanguageLevel:  "A1",
	})
	require.NoError(t, err)
	_, err = s.LessonRepo().AddCards(ctx, l.ID, cs)
	require.NoError(t, err)
	return l
}

func newRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestBuildEmptyPool(t *testing.T) {
	s := storetest.Open(t)
	syn := New(s.LessonRepo(), newRand(), nil)

	got, err := syn.Build(context.Background(), 0, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBuildTransformsCards(t *testing.T) {
	s := storetest.Open(t)
	seedLesson(t, s, "/v/a.mp4", []store.Card{
		{CardType: "repeat", QuestionText: "cat", PromptText: "Повтори", Topic: "animals",
			IconName: strPtr("cat"), TranslationText: strPtr("кошка")},
		{CardType: "translate", QuestionText: "Как по-английски кошка?", PromptText: "Выбери",
			CorrectAnswer: strPtr("cat"), Options: []any{"cat", "dog"}, Topic: "animals", OrderIndex: 1},
		{CardType: "color", QuestionText: "red", PromptText: "Найди цвет", Topic: "colors", OrderIndex: 2},
	})

	syn := New(s.LessonRepo(), newRand(), nil)
	got, err := syn.Build(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	byQuestion := map[string]cards.Payload{}
	for i, p := range got {
		require.NotNil(t, p.OrderIndex)
		assert.Equal(t, i, *p.OrderIndex)
		assert.Equal(t, store.ReviewTopic, p.Topic)
		assert.True(t, p.IsReview)
		require.NotNil(t, p.OriginalCardID)
		byQuestion[p.QuestionText] = p
	}

	rep := byQuestion["cat"]
	assert.Equal(t, cards.TypeWriting, rep.CardType)
	assert.Equal(t, cards.PromptWrite, rep.PromptText)
	assert.Equal(t, "кошка", *rep.TranslationText)
	assert.Equal(t, "cat", *rep.IconName)

	tr := byQuestion["Как по-английски кошка?"]
	assert.Equal(t, cards.TypeSpelling, tr.CardType)
	assert.Equal(t, cards.PromptAssemble, tr.PromptText)
	assert.Equal(t, []any{"cat", "dog"}, tr.Options)
	letters, ok := tr.ExtraData["scrambledLetters"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"c", "a", "t"}, letters)

	col := byQuestion["red"]
	assert.Equal(t, cards.RepetitionTarget(cards.TypeColor), col.CardType)
}

func TestBuildExcludesLessonAndReviewCards(t *testing.T) {
	s := storetest.Open(t)
	old := seedLesson(t, s, "/v/old.mp4", []store.Card{
		{CardType: "repeat", QuestionText: "sun"},
		{CardType: "writing", QuestionText: "already review", Topic: store.ReviewTopic, IsRepetition: true},
	})
	cur := seedLesson(t, s, "/v/cur.mp4", []store.Card{
		{CardType: "repeat", QuestionText: "moon"},
	})

	syn := New(s.LessonRepo(), newRand(), nil)
	got, err := syn.Build(context.Background(), cur.ID, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "sun", got[0].QuestionText)

	full, err := s.LessonRepo().Get(context.Background(), old.ID, true)
	require.NoError(t, err)
	var sunID int
	for _, c := range full.Cards {
		if c.QuestionText == "sun" {
			sunID = c.ID
		}
	}
	assert.Equal(t, sunID, *got[0].OriginalCardID)
}

func TestBuildSamplesWithoutReplacement(t *testing.T) {
	s := storetest.Open(t)
	var pool []store.Card
	for i := range 40 {
		pool = append(pool, store.Card{CardType: "choose", QuestionText: fmt.Sprintf("word-%d", i), OrderIndex: i})
	}
	seedLesson(t, s, "/v/big.mp4", pool)

	syn := New(s.LessonRepo(), newRand(), nil)
	got, err := syn.Build(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, got, DefaultCount)

	seen := map[int]bool{}
	for _, p := range got {
		assert.False(t, seen[*p.OriginalCardID], "card %d picked twice", *p.OriginalCardID)
		seen[*p.OriginalCardID] = true
		assert.Equal(t, cards.TypeTranslate, p.CardType)
		assert.Equal(t, cards.PromptTranslate, p.PromptText)
	}
}

func TestSpellingWithoutLettersHasNoExtraData(t *testing.T) {
	syn := New(nil, newRand(), nil)
	p := syn.reviewCard(store.Card{ID: 7, CardType: "translate", QuestionText: "?", CorrectAnswer: strPtr("123")}, 0)
	assert.Equal(t, cards.TypeSpelling, p.CardType)
	assert.Nil(t, p.ExtraData)
	assert.Equal(t, 7, *p.OriginalCardID)
}
