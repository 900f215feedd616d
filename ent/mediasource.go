// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kidlingo/ent/lesson"
	"github.com/abhisek/kidlingo/ent/mediasource"
)

// MediaSource is the model entity for the MediaSource schema.
type MediaSource struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Normalized absolute path of the video file
	Path string `json:"path,omitempty"`
	// Display name (base file name)
	Name string `json:"name,omitempty"`
	// File size in bytes at registration
	Size int64 `json:"size,omitempty"`
	// Status holds the value of the "status" field.
	Status mediasource.Status `json:"status,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus mediasource.ProcessingStatus `json:"processing_status,omitempty"`
	// Human-readable progress message
	ProcessingMessage string `json:"processing_message,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// HasTranscript holds the value of the "has_transcript" field.
	HasTranscript bool `json:"has_transcript,omitempty"`
	// File creation time on disk when registered by the watcher
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MediaSourceQuery when eager-loading is set.
	Edges        MediaSourceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MediaSourceEdges holds the relations/edges for other nodes in the graph.
type MediaSourceEdges struct {
	// Lesson holds the value of the lesson edge.
	Lesson *Lesson `json:"lesson,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LessonOrErr returns the Lesson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MediaSourceEdges) LessonOrErr() (*Lesson, error) {
	if e.Lesson != nil {
		return e.Lesson, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lesson.Label}
	}
	return nil, &NotLoadedError{edge: "lesson"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MediaSource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mediasource.FieldHasTranscript:
			values[i] = new(sql.NullBool)
		case mediasource.FieldID, mediasource.FieldSize:
			values[i] = new(sql.NullInt64)
		case mediasource.FieldPath, mediasource.FieldName, mediasource.FieldStatus, mediasource.FieldProcessingStatus, mediasource.FieldProcessingMessage, mediasource.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case mediasource.FieldCreatedAt, mediasource.FieldUpdatedAt, mediasource.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MediaSource fields.
func (_m *MediaSource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mediasource.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mediasource.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = value.String
			}
		case mediasource.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case mediasource.FieldSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = value.Int64
			}
		case mediasource.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = mediasource.Status(value.String)
			}
		case mediasource.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = mediasource.ProcessingStatus(value.String)
			}
		case mediasource.FieldProcessingMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_message", values[i])
			} else if value.Valid {
				_m.ProcessingMessage = value.String
			}
		case mediasource.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case mediasource.FieldHasTranscript:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_transcript", values[i])
			} else if value.Valid {
				_m.HasTranscript = value.Bool
			}
		case mediasource.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mediasource.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case mediasource.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MediaSource.
// This includes values selected through modifiers, order, etc.
func (_m *MediaSource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLesson queries the "lesson" edge of the MediaSource entity.
func (_m *MediaSource) QueryLesson() *LessonQuery {
	return NewMediaSourceClient(_m.config).QueryLesson(_m)
}

// Update returns a builder for updating this MediaSource.
// Note that you need to call MediaSource.Unwrap() before calling this method if this MediaSource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MediaSource) Update() *MediaSourceUpdateOne {
	return NewMediaSourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MediaSource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MediaSource) Unwrap() *MediaSource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MediaSource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MediaSource) String() string {
	var builder strings.Builder
	builder.WriteString("MediaSource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("path=")
	builder.WriteString(_m.Path)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", _m.Size))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingStatus))
	builder.WriteString(", ")
	builder.WriteString("processing_message=")
	builder.WriteString(_m.ProcessingMessage)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("has_transcript=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasTranscript))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MediaSources is a parsable slice of MediaSource.
type MediaSources []*MediaSource
