// Code generated by ent, DO NOT EDIT.

package mediasource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/kidlingo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLTE(FieldID, id))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldPath, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldName, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v int64) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldSize, v))
}

// ProcessingMessage applies equality check predicate on the "processing_message" field. It's identical to ProcessingMessageEQ.
func ProcessingMessage(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldProcessingMessage, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldErrorMessage, v))
}

// HasTranscript applies equality check predicate on the "has_transcript" field. It's identical to HasTranscriptEQ.
func HasTranscript(v bool) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldHasTranscript, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldProcessedAt, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldContainsFold(FieldPath, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldContainsFold(FieldName, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v int64) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v int64) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...int64) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...int64) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v int64) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v int64) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v int64) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v int64) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLTE(FieldSize, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldStatus, vs...))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v ProcessingStatus) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v ProcessingStatus) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...ProcessingStatus) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...ProcessingStatus) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingMessageEQ applies the EQ predicate on the "processing_message" field.
func ProcessingMessageEQ(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldProcessingMessage, v))
}

// ProcessingMessageNEQ applies the NEQ predicate on the "processing_message" field.
func ProcessingMessageNEQ(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldProcessingMessage, v))
}

// ProcessingMessageIn applies the In predicate on the "processing_message" field.
func ProcessingMessageIn(vs ...string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldProcessingMessage, vs...))
}

// ProcessingMessageNotIn applies the NotIn predicate on the "processing_message" field.
func ProcessingMessageNotIn(vs ...string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldProcessingMessage, vs...))
}

// ProcessingMessageGT applies the GT predicate on the "processing_message" field.
func ProcessingMessageGT(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGT(FieldProcessingMessage, v))
}

// ProcessingMessageGTE applies the GTE predicate on the "processing_message" field.
func ProcessingMessageGTE(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGTE(FieldProcessingMessage, v))
}

// ProcessingMessageLT applies the LT predicate on the "processing_message" field.
func ProcessingMessageLT(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLT(FieldProcessingMessage, v))
}

// ProcessingMessageLTE applies the LTE predicate on the "processing_message" field.
func ProcessingMessageLTE(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLTE(FieldProcessingMessage, v))
}

// ProcessingMessageContains applies the Contains predicate on the "processing_message" field.
func ProcessingMessageContains(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldContains(FieldProcessingMessage, v))
}

// ProcessingMessageHasPrefix applies the HasPrefix predicate on the "processing_message" field.
func ProcessingMessageHasPrefix(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldHasPrefix(FieldProcessingMessage, v))
}

// ProcessingMessageHasSuffix applies the HasSuffix predicate on the "processing_message" field.
func ProcessingMessageHasSuffix(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldHasSuffix(FieldProcessingMessage, v))
}

// ProcessingMessageEqualFold applies the EqualFold predicate on the "processing_message" field.
func ProcessingMessageEqualFold(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEqualFold(FieldProcessingMessage, v))
}

// ProcessingMessageContainsFold applies the ContainsFold predicate on the "processing_message" field.
func ProcessingMessageContainsFold(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldContainsFold(FieldProcessingMessage, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasTranscriptEQ applies the EQ predicate on the "has_transcript" field.
func HasTranscriptEQ(v bool) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldHasTranscript, v))
}

// HasTranscriptNEQ applies the NEQ predicate on the "has_transcript" field.
func HasTranscriptNEQ(v bool) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldHasTranscript, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLTE(FieldUpdatedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.MediaSource {
	return predicate.MediaSource(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.MediaSource {
	return predicate.MediaSource(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.MediaSource {
	return predicate.MediaSource(sql.FieldNotNull(FieldProcessedAt))
}

// HasLesson applies the HasEdge predicate on the "lesson" edge.
func HasLesson() predicate.MediaSource {
	return predicate.MediaSource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, LessonTable, LessonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonWith applies the HasEdge predicate on the "lesson" edge with a given conditions (other predicates).
func HasLessonWith(preds ...predicate.Lesson) predicate.MediaSource {
	return predicate.MediaSource(func(s *sql.Selector) {
		step := newLessonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MediaSource) predicate.MediaSource {
	return predicate.MediaSource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MediaSource) predicate.MediaSource {
	return predicate.MediaSource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MediaSource) predicate.MediaSource {
	return predicate.MediaSource(sql.NotPredicates(p))
}
