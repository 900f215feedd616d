package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExerciseCard is one practice item inside a lesson. Cards are written in
// bulk when the lesson is assembled and are not mutated afterwards.
type ExerciseCard struct {
	ent.Schema
}

func (ExerciseCard) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("card_type").
			Values("repeat", "translate", "choose", "color", "speak", "match", "spelling", "new_words", "writing"),
		field.Text("question_text").
			NotEmpty(),
		field.Text("prompt_text").
			Default(""),
		field.Text("correct_answer").
			Optional().
			Nillable(),
		field.JSON("options", []any{}).
			Optional(),
		field.JSON("extra_data", map[string]any{}).
			Optional(),
		field.Int("order_index").
			Default(0),
		field.String("topic").
			Default("").
			Comment(`Topic id from the plan, or "review" for repetition cards`),
		field.Bool("is_repetition").
			Default(false),
		field.Int("original_card_id").
			Optional().
			Nillable().
			Comment("Source card for repetition cards"),
		field.String("icon_name").
			Optional().
			Nillable(),
		field.String("image_url").
			Optional().
			Nillable(),
		field.Text("translation_text").
			Optional().
			Nillable(),
		field.Text("hint_text").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ExerciseCard) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lesson", Lesson.Type).
			Ref("cards").
			Unique().
			Required(),
	}
}

func (ExerciseCard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("order_index"),
	}
}
