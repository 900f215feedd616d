package store

import (
	"context"
	"fmt"

	"github.com/abhisek/kidlingo/ent"
	"github.com/abhisek/kidlingo/ent/exercisecard"
	"github.com/abhisek/kidlingo/ent/lesson"
	"github.com/abhisek/kidlingo/ent/mediasource"
)

// ReviewTopic labels repetition cards; they never seed further repetition.
const ReviewTopic = "review"

type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) ForMedia(ctx context.Context, mediaID int) (*Lesson, error) {
	row, err := r.client.Lesson.Query().
		Where(lesson.HasMediaWith(mediasource.ID(mediaID))).
		WithMedia().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lesson for media %d: %w", mediaID, err)
	}

	out := toLesson(row)
	out.CardCount, err = row.QueryCards().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cards for lesson %d: %w", row.ID, err)
	}
	return out, nil
}

func (r *lessonRepo) Get(ctx context.Context, id int, withCards bool) (*Lesson, error) {
	q := r.client.Lesson.Query().
		Where(lesson.ID(id)).
		WithMedia()
	if withCards {
		q = q.WithCards(func(cq *ent.ExerciseCardQuery) {
			cq.Order(ent.Asc(exercisecard.FieldOrderIndex), ent.Asc(exercisecard.FieldID))
		})
	}

	row, err := q.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lesson %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get lesson %d: %w", id, err)
	}

	out := toLesson(row)
	if withCards {
		out.Cards = toCards(row.Edges.Cards, row.ID)
		out.CardCount = len(out.Cards)
		return out, nil
	}
	out.CardCount, err = row.QueryCards().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cards for lesson %d: %w", id, err)
	}
	return out, nil
}

func (r *lessonRepo) Create(ctx context.Context, l NewLesson) (*Lesson, error) {
	create := r.client.Lesson.Create().
		SetMediaID(l.MediaID).
		SetTitle(l.Title).
		SetDescription(l.Description).
		SetTranscriptText(l.TranscriptText)
	if l.LanguageLevel != "" {
		create = create.SetLanguageLevel(lesson.LanguageLevel(l.LanguageLevel))
	}
	if l.RawResponse != "" {
		create = create.SetRawResponse(l.RawResponse)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save lesson for media %d: %w", l.MediaID, err)
	}
	out := toLesson(row)
	out.MediaID = l.MediaID
	return out, nil
}

func (r *lessonRepo) AddCards(ctx context.Context, lessonID int, cards []Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	builders := make([]*ent.ExerciseCardCreate, len(cards))
	for i, c := range cards {
		b := r.client.ExerciseCard.Create().
			SetLessonID(lessonID).
			SetCardType(exercisecard.CardType(c.CardType)).
			SetQuestionText(c.QuestionText).
			SetPromptText(c.PromptText).
			SetOrderIndex(c.OrderIndex).
			SetTopic(c.Topic).
			SetIsRepetition(c.IsRepetition).
			SetNillableCorrectAnswer(c.CorrectAnswer).
			SetNillableOriginalCardID(c.OriginalCardID).
			SetNillableIconName(c.IconName).
			SetNillableImageURL(c.ImageURL).
			SetNillableTranslationText(c.TranslationText).
			SetNillableHintText(c.HintText)
		if c.Options != nil {
			b.SetOptions(c.Options)
		}
		if c.ExtraData != nil {
			b.SetExtraData(c.ExtraData)
		}
		builders[i] = b
	}

	created, err := r.client.ExerciseCard.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk insert %d cards for lesson %d: %w", len(cards), lessonID, err)
	}
	return len(created), nil
}

func (r *lessonRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.client.ExerciseCard.Delete().
		Where(exercisecard.HasLessonWith(lesson.ID(id))).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete cards of lesson %d: %w", id, err)
	}
	if err := r.client.Lesson.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("lesson %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("delete lesson %d: %w", id, err)
	}
	return nil
}

func (r *lessonRepo) RecentSummaries(ctx context.Context, limit, excludeMediaID int) ([]LessonSummary, error) {
	q := r.client.Lesson.Query().
		Order(ent.Desc(lesson.FieldCreatedAt), ent.Desc(lesson.FieldID)).
		WithCards(func(cq *ent.ExerciseCardQuery) {
			cq.Order(ent.Asc(exercisecard.FieldOrderIndex), ent.Asc(exercisecard.FieldID))
		})
	if excludeMediaID > 0 {
		q = q.Where(lesson.Not(lesson.HasMediaWith(mediasource.ID(excludeMediaID))))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent lessons: %w", err)
	}

	out := make([]LessonSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, LessonSummary{
			ID:        row.ID,
			Title:     row.Title,
			Topics:    distinctTopics(row.Edges.Cards),
			CardCount: len(row.Edges.Cards),
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *lessonRepo) CardsExcludingLesson(ctx context.Context, lessonID int) ([]Card, error) {
	q := r.client.Lesson.Query().
		Order(ent.Desc(lesson.FieldCreatedAt), ent.Desc(lesson.FieldID)).
		WithCards(func(cq *ent.ExerciseCardQuery) {
			cq.Where(exercisecard.TopicNEQ(ReviewTopic)).
				Order(ent.Asc(exercisecard.FieldOrderIndex), ent.Asc(exercisecard.FieldID))
		})
	if lessonID > 0 {
		q = q.Where(lesson.IDNEQ(lessonID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("cards excluding lesson %d: %w", lessonID, err)
	}

	var out []Card
	for _, row := range rows {
		out = append(out, toCards(row.Edges.Cards, row.ID)...)
	}
	return out, nil
}

func (r *lessonRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Lesson.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count lessons: %w", err)
	}
	return n, nil
}

func distinctTopics(cards []*ent.ExerciseCard) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, c := range cards {
		if c.Topic == "" || c.Topic == ReviewTopic || seen[c.Topic] {
			continue
		}
		seen[c.Topic] = true
		topics = append(topics, c.Topic)
	}
	return topics
}

func toLesson(row *ent.Lesson) *Lesson {
	out := &Lesson{
		ID:             row.ID,
		Title:          row.Title,
		Description:    row.Description,
		TranscriptText: row.TranscriptText,
		LanguageLevel:  string(row.LanguageLevel),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.RawResponse != nil {
		out.RawResponse = *row.RawResponse
	}
	if row.Edges.Media != nil {
		out.MediaID = row.Edges.Media.ID
	}
	return out
}

func toCards(rows []*ent.ExerciseCard, lessonID int) []Card {
	out := make([]Card, len(rows))
	for i, c := range rows {
		out[i] = Card{
			ID:              c.ID,
			LessonID:        lessonID,
			CardType:        string(c.CardType),
			QuestionText:    c.QuestionText,
			PromptText:      c.PromptText,
			CorrectAnswer:   c.CorrectAnswer,
			Options:         c.Options,
			ExtraData:       c.ExtraData,
			OrderIndex:      c.OrderIndex,
			Topic:           c.Topic,
			IsRepetition:    c.IsRepetition,
			OriginalCardID:  c.OriginalCardID,
			IconName:        c.IconName,
			ImageURL:        c.ImageURL,
			TranslationText: c.TranslationText,
			HintText:        c.HintText,
		}
	}
	return out
}
