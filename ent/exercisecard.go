// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kidlingo/ent/exercisecard"
	"github.com/abhisek/kidlingo/ent/lesson"
)

// ExerciseCard is the model entity for the ExerciseCard schema.
type ExerciseCard struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CardType holds the value of the "card_type" field.
	CardType exercisecard.CardType `json:"card_type,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// PromptText holds the value of the "prompt_text" field.
	PromptText string `json:"prompt_text,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer *string `json:"correct_answer,omitempty"`
	// Options holds the value of the "options" field.
	Options []interface{} `json:"options,omitempty"`
	// ExtraData holds the value of the "extra_data" field.
	ExtraData map[string]interface{} `json:"extra_data,omitempty"`
	// OrderIndex holds the value of the "order_index" field.
	OrderIndex int `json:"order_index,omitempty"`
	// Topic id from the plan, or "review" for repetition cards
	Topic string `json:"topic,omitempty"`
	// IsRepetition holds the value of the "is_repetition" field.
	IsRepetition bool `json:"is_repetition,omitempty"`
	// Source card for repetition cards
	OriginalCardID *int `json:"original_card_id,omitempty"`
	// IconName holds the value of the "icon_name" field.
	IconName *string `json:"icon_name,omitempty"`
	// ImageURL holds the value of the "image_url" field.
	ImageURL *string `json:"image_url,omitempty"`
	// TranslationText holds the value of the "translation_text" field.
	TranslationText *string `json:"translation_text,omitempty"`
	// HintText holds the value of the "hint_text" field.
	HintText *string `json:"hint_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExerciseCardQuery when eager-loading is set.
	Edges        ExerciseCardEdges `json:"edges"`
	lesson_cards *int
	selectValues sql.SelectValues
}

// ExerciseCardEdges holds the relations/edges for other nodes in the graph.
type ExerciseCardEdges struct {
	// Lesson holds the value of the lesson edge.
	Lesson *Lesson `json:"lesson,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LessonOrErr returns the Lesson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExerciseCardEdges) LessonOrErr() (*Lesson, error) {
	if e.Lesson != nil {
		return e.Lesson, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lesson.Label}
	}
	return nil, &NotLoadedError{edge: "lesson"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExerciseCard) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case exercisecard.FieldOptions, exercisecard.FieldExtraData:
			values[i] = new([]byte)
		case exercisecard.FieldIsRepetition:
			values[i] = new(sql.NullBool)
		case exercisecard.FieldID, exercisecard.FieldOrderIndex, exercisecard.FieldOriginalCardID:
			values[i] = new(sql.NullInt64)
		case exercisecard.FieldCardType, exercisecard.FieldQuestionText, exercisecard.FieldPromptText, exercisecard.FieldCorrectAnswer, exercisecard.FieldTopic, exercisecard.FieldIconName, exercisecard.FieldImageURL, exercisecard.FieldTranslationText, exercisecard.FieldHintText:
			values[i] = new(sql.NullString)
		case exercisecard.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case exercisecard.ForeignKeys[0]: // lesson_cards
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExerciseCard fields.
func (_m *ExerciseCard) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case exercisecard.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case exercisecard.FieldCardType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_type", values[i])
			} else if value.Valid {
				_m.CardType = exercisecard.CardType(value.String)
			}
		case exercisecard.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case exercisecard.FieldPromptText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_text", values[i])
			} else if value.Valid {
				_m.PromptText = value.String
			}
		case exercisecard.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = new(string)
				*_m.CorrectAnswer = value.String
			}
		case exercisecard.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case exercisecard.FieldExtraData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extra_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtraData); err != nil {
					return fmt.Errorf("unmarshal field extra_data: %w", err)
				}
			}
		case exercisecard.FieldOrderIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order_index", values[i])
			} else if value.Valid {
				_m.OrderIndex = int(value.Int64)
			}
		case exercisecard.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case exercisecard.FieldIsRepetition:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_repetition", values[i])
			} else if value.Valid {
				_m.IsRepetition = value.Bool
			}
		case exercisecard.FieldOriginalCardID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field original_card_id", values[i])
			} else if value.Valid {
				_m.OriginalCardID = new(int)
				*_m.OriginalCardID = int(value.Int64)
			}
		case exercisecard.FieldIconName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field icon_name", values[i])
			} else if value.Valid {
				_m.IconName = new(string)
				*_m.IconName = value.String
			}
		case exercisecard.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = new(string)
				*_m.ImageURL = value.String
			}
		case exercisecard.FieldTranslationText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translation_text", values[i])
			} else if value.Valid {
				_m.TranslationText = new(string)
				*_m.TranslationText = value.String
			}
		case exercisecard.FieldHintText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hint_text", values[i])
			} else if value.Valid {
				_m.HintText = new(string)
				*_m.HintText = value.String
			}
		case exercisecard.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case exercisecard.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field lesson_cards", value)
			} else if value.Valid {
				_m.lesson_cards = new(int)
				*_m.lesson_cards = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExerciseCard.
// This includes values selected through modifiers, order, etc.
func (_m *ExerciseCard) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLesson queries the "lesson" edge of the ExerciseCard entity.
func (_m *ExerciseCard) QueryLesson() *LessonQuery {
	return NewExerciseCardClient(_m.config).QueryLesson(_m)
}

// Update returns a builder for updating this ExerciseCard.
// Note that you need to call ExerciseCard.Unwrap() before calling this method if this ExerciseCard
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExerciseCard) Update() *ExerciseCardUpdateOne {
	return NewExerciseCardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExerciseCard entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExerciseCard) Unwrap() *ExerciseCard {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExerciseCard is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExerciseCard) String() string {
	var builder strings.Builder
	builder.WriteString("ExerciseCard(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("card_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CardType))
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("prompt_text=")
	builder.WriteString(_m.PromptText)
	builder.WriteString(", ")
	if v := _m.CorrectAnswer; v != nil {
		builder.WriteString("correct_answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("extra_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtraData))
	builder.WriteString(", ")
	builder.WriteString("order_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderIndex))
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("is_repetition=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRepetition))
	builder.WriteString(", ")
	if v := _m.OriginalCardID; v != nil {
		builder.WriteString("original_card_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.IconName; v != nil {
		builder.WriteString("icon_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImageURL; v != nil {
		builder.WriteString("image_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TranslationText; v != nil {
		builder.WriteString("translation_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.HintText; v != nil {
		builder.WriteString("hint_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExerciseCards is a parsable slice of ExerciseCard.
type ExerciseCards []*ExerciseCard
