// Code generated by ent, DO NOT EDIT.

package exercisecard

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the exercisecard type in the database.
	Label = "exercise_card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCardType holds the string denoting the card_type field in the database.
	FieldCardType = "card_type"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldPromptText holds the string denoting the prompt_text field in the database.
	FieldPromptText = "prompt_text"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldExtraData holds the string denoting the extra_data field in the database.
	FieldExtraData = "extra_data"
	// FieldOrderIndex holds the string denoting the order_index field in the database.
	FieldOrderIndex = "order_index"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldIsRepetition holds the string denoting the is_repetition field in the database.
	FieldIsRepetition = "is_repetition"
	// FieldOriginalCardID holds the string denoting the original_card_id field in the database.
	FieldOriginalCardID = "original_card_id"
	// FieldIconName holds the string denoting the icon_name field in the database.
	FieldIconName = "icon_name"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldTranslationText holds the string denoting the translation_text field in the database.
	FieldTranslationText = "translation_text"
	// FieldHintText holds the string denoting the hint_text field in the database.
	FieldHintText = "hint_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLesson holds the string denoting the lesson edge name in mutations.
	EdgeLesson = "lesson"
	// Table holds the table name of the exercisecard in the database.
	Table = "exercise_cards"
	// LessonTable is the table that holds the lesson relation/edge.
	LessonTable = "exercise_cards"
	// LessonInverseTable is the table name for the Lesson entity.
	// It exists in this package in order to avoid circular dependency with the "lesson" package.
	LessonInverseTable = "lessons"
	// LessonColumn is the table column denoting the lesson relation/edge.
	LessonColumn = "lesson_cards"
)

// Columns holds all SQL columns for exercisecard fields.
var Columns = []string{
	FieldID,
	FieldCardType,
	FieldQuestionText,
	FieldPromptText,
	FieldCorrectAnswer,
	FieldOptions,
	FieldExtraData,
	FieldOrderIndex,
	FieldTopic,
	FieldIsRepetition,
	FieldOriginalCardID,
	FieldIconName,
	FieldImageURL,
	FieldTranslationText,
	FieldHintText,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "exercise_cards"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"lesson_cards",
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
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// DefaultPromptText holds the default value on creation for the "prompt_text" field.
	DefaultPromptText string
	// DefaultOrderIndex holds the default value on creation for the "order_index" field.
	DefaultOrderIndex int
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultIsRepetition holds the default value on creation for the "is_repetition" field.
	DefaultIsRepetition bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// CardType defines the type for the "card_type" enum field.
type CardType string

// CardType values.
const (
	CardTypeRepeat    CardType = "repeat"
	CardTypeTranslate CardType = "translate"
	CardTypeChoose    CardType = "choose"
	CardTypeColor     CardType = "color"
	CardTypeSpeak     CardType = "speak"
	CardTypeMatch     CardType = "match"
	CardTypeSpelling  CardType = "spelling"
	CardTypeNewWords  CardType = "new_words"
	CardTypeWriting   CardType = "writing"
)

func (ct CardType) String() string {
	return string(ct)
}

// CardTypeValidator is a validator for the "card_type" field enum values. It is called by the builders before save.
func CardTypeValidator(ct CardType) error {
	switch ct {
	case CardTypeRepeat, CardTypeTranslate, CardTypeChoose, CardTypeColor, CardTypeSpeak, CardTypeMatch, CardTypeSpelling, CardTypeNewWords, CardTypeWriting:
		return nil
	default:
		return fmt.Errorf("exercisecard: invalid enum value for card_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the ExerciseCard queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCardType orders the results by the card_type field.
func ByCardType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCardType, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByPromptText orders the results by the prompt_text field.
func ByPromptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptText, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByOrderIndex orders the results by the order_index field.
func ByOrderIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderIndex, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByIsRepetition orders the results by the is_repetition field.
func ByIsRepetition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRepetition, opts...).ToFunc()
}

// ByOriginalCardID orders the results by the original_card_id field.
func ByOriginalCardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalCardID, opts...).ToFunc()
}

// ByIconName orders the results by the icon_name field.
func ByIconName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIconName, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByTranslationText orders the results by the translation_text field.
func ByTranslationText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslationText, opts...).ToFunc()
}

// ByHintText orders the results by the hint_text field.
func ByHintText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLessonField orders the results by lesson field.
func ByLessonField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLessonStep(), sql.OrderByField(field, opts...))
	}
}
func newLessonStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LessonInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LessonTable, LessonColumn),
	)
}
