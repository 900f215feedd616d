// Code generated by ent, DO NOT EDIT.

package lesson

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the lesson type in the database.
	Label = "lesson"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTranscriptText holds the string denoting the transcript_text field in the database.
	FieldTranscriptText = "transcript_text"
	// FieldRawResponse holds the string denoting the raw_response field in the database.
	FieldRawResponse = "raw_response"
	// FieldLanguageLevel holds the string denoting the language_level field in the database.
	FieldLanguageLevel = "language_level"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMedia holds the string denoting the media edge name in mutations.
	EdgeMedia = "media"
	// EdgeCards holds the string denoting the cards edge name in mutations.
	EdgeCards = "cards"
	// Table holds the table name of the lesson in the database.
	Table = "lessons"
	// MediaTable is the table that holds the media relation/edge.
	MediaTable = "lessons"
	// MediaInverseTable is the table name for the MediaSource entity.
	// It exists in this package in order to avoid circular dependency with the "mediasource" package.
	MediaInverseTable = "media_sources"
	// MediaColumn is the table column denoting the media relation/edge.
	MediaColumn = "media_source_lesson"
	// CardsTable is the table that holds the cards relation/edge.
	CardsTable = "exercise_cards"
	// CardsInverseTable is the table name for the ExerciseCard entity.
	// It exists in this package in order to avoid circular dependency with the "exercisecard" package.
	CardsInverseTable = "exercise_cards"
	// CardsColumn is the table column denoting the cards relation/edge.
	CardsColumn = "lesson_cards"
)

// Columns holds all SQL columns for lesson fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldTranscriptText,
	FieldRawResponse,
	FieldLanguageLevel,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "lessons"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"media_source_lesson",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// LanguageLevel defines the type for the "language_level" enum field.
type LanguageLevel string

// LanguageLevelA1 is the default value of the LanguageLevel enum.
const DefaultLanguageLevel = LanguageLevelA1

// LanguageLevel values.
const (
	LanguageLevelA0 LanguageLevel = "A0"
	LanguageLevelA1 LanguageLevel = "A1"
	LanguageLevelA2 LanguageLevel = "A2"
	LanguageLevelB1 LanguageLevel = "B1"
	LanguageLevelB2 LanguageLevel = "B2"
)

func (ll LanguageLevel) String() string {
	return string(ll)
}

// LanguageLevelValidator is a validator for the "language_level" field enum values. It is called by the builders before save.
func LanguageLevelValidator(ll LanguageLevel) error {
	switch ll {
	case LanguageLevelA0, LanguageLevelA1, LanguageLevelA2, LanguageLevelB1, LanguageLevelB2:
		return nil
	default:
		return fmt.Errorf("lesson: invalid enum value for language_level field: %q", ll)
	}
}

// OrderOption defines the ordering options for the Lesson queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTranscriptText orders the results by the transcript_text field.
func ByTranscriptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptText, opts...).ToFunc()
}

// ByRawResponse orders the results by the raw_response field.
func ByRawResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawResponse, opts...).ToFunc()
}

// ByLanguageLevel orders the results by the language_level field.
func ByLanguageLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguageLevel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMediaField orders the results by media field.
func ByMediaField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMediaStep(), sql.OrderByField(field, opts...))
	}
}

// ByCardsCount orders the results by cards count.
func ByCardsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCardsStep(), opts...)
	}
}

// ByCards orders the results by cards terms.
func ByCards(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCardsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMediaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MediaInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, MediaTable, MediaColumn),
	)
}
func newCardsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CardsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CardsTable, CardsColumn),
	)
}
