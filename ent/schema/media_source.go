package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MediaSource is a recorded video tracked through the lesson pipeline.
// Status moves pending -> processing -> done|error; processing_status is
// the finer-grained stage shown while a run is in flight.
type MediaSource struct {
	ent.Schema
}

func (MediaSource) Fields() []ent.Field {
	return []ent.Field{
		field.String("path").
			Unique().
			NotEmpty().
			Comment("Normalized absolute path of the video file"),
		field.String("name").
			NotEmpty().
			Comment("Display name (base file name)"),
		field.Int64("size").
			Default(0).
			Comment("File size in bytes at registration"),
		field.Enum("status").
			Values("pending", "processing", "done", "error").
			Default("pending"),
		field.Enum("processing_status").
			Values("idle", "transcribing", "generating_lesson", "done", "error").
			Default("idle"),
		field.String("processing_message").
			Default("").
			Comment("Human-readable progress message"),
		field.Text("error_message").
			Default(""),
		field.Bool("has_transcript").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Comment("File creation time on disk when registered by the watcher"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

func (MediaSource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("lesson", Lesson.Type).
			Unique(),
	}
}

func (MediaSource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
