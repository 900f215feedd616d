// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExerciseCardsColumns holds the columns for the "exercise_cards" table.
	ExerciseCardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "card_type", Type: field.TypeEnum, Enums: []string{"repeat", "translate", "choose", "color", "speak", "match", "spelling", "new_words", "writing"}},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "prompt_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "correct_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "extra_data", Type: field.TypeJSON, Nullable: true},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "is_repetition", Type: field.TypeBool, Default: false},
		{Name: "original_card_id", Type: field.TypeInt, Nullable: true},
		{Name: "icon_name", Type: field.TypeString, Nullable: true},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "translation_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "hint_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lesson_cards", Type: field.TypeInt},
	}
	// ExerciseCardsTable holds the schema information for the "exercise_cards" table.
	ExerciseCardsTable = &schema.Table{
		Name:       "exercise_cards",
		Columns:    ExerciseCardsColumns,
		PrimaryKey: []*schema.Column{ExerciseCardsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "exercise_cards_lessons_cards",
				Columns:    []*schema.Column{ExerciseCardsColumns[16]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "exercisecard_topic",
				Unique:  false,
				Columns: []*schema.Column{ExerciseCardsColumns[8]},
			},
			{
				Name:    "exercisecard_order_index",
				Unique:  false,
				Columns: []*schema.Column{ExerciseCardsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "run_id", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "stop_reason", Type: field.TypeString, Default: ""},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[6]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[11]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "transcript_text", Type: field.TypeString, Size: 2147483647},
		{Name: "raw_response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "language_level", Type: field.TypeEnum, Enums: []string{"A0", "A1", "A2", "B1", "B2"}, Default: "A1"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "media_source_lesson", Type: field.TypeInt, Unique: true},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_media_sources_lesson",
				Columns:    []*schema.Column{LessonsColumns[8]},
				RefColumns: []*schema.Column{MediaSourcesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_created_at",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[6]},
			},
		},
	}
	// MediaSourcesColumns holds the columns for the "media_sources" table.
	MediaSourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "size", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "done", "error"}, Default: "pending"},
		{Name: "processing_status", Type: field.TypeEnum, Enums: []string{"idle", "transcribing", "generating_lesson", "done", "error"}, Default: "idle"},
		{Name: "processing_message", Type: field.TypeString, Default: ""},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "has_transcript", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// MediaSourcesTable holds the schema information for the "media_sources" table.
	MediaSourcesTable = &schema.Table{
		Name:       "media_sources",
		Columns:    MediaSourcesColumns,
		PrimaryKey: []*schema.Column{MediaSourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mediasource_status",
				Unique:  false,
				Columns: []*schema.Column{MediaSourcesColumns[4]},
			},
			{
				Name:    "mediasource_created_at",
				Unique:  false,
				Columns: []*schema.Column{MediaSourcesColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExerciseCardsTable,
		LlmRequestEventsTable,
		LessonsTable,
		MediaSourcesTable,
	}
)

func init() {
	ExerciseCardsTable.ForeignKeys[0].RefTable = LessonsTable
	LessonsTable.ForeignKeys[0].RefTable = MediaSourcesTable
}
