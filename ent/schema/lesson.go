package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is the learning unit synthesized from one media source's transcript.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.Text("transcript_text"),
		field.Text("raw_response").
			Optional().
			Nillable().
			Comment("Cleaned model response kept for auditing (single-stage only)"),
		field.Enum("language_level").
			Values("A0", "A1", "A2", "B1", "B2").
			Default("A1"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("media", MediaSource.Type).
			Ref("lesson").
			Unique().
			Required(),
		edge.To("cards", ExerciseCard.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
