// Code generated by ent, DO NOT EDIT.

package exercisecard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/kidlingo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldID, id))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldQuestionText, v))
}

// PromptText applies equality check predicate on the "prompt_text" field. It's identical to PromptTextEQ.
func PromptText(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldPromptText, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldCorrectAnswer, v))
}

// OrderIndex applies equality check predicate on the "order_index" field. It's identical to OrderIndexEQ.
func OrderIndex(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldOrderIndex, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldTopic, v))
}

// IsRepetition applies equality check predicate on the "is_repetition" field. It's identical to IsRepetitionEQ.
func IsRepetition(v bool) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldIsRepetition, v))
}

// OriginalCardID applies equality check predicate on the "original_card_id" field. It's identical to OriginalCardIDEQ.
func OriginalCardID(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldOriginalCardID, v))
}

// IconName applies equality check predicate on the "icon_name" field. It's identical to IconNameEQ.
func IconName(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldIconName, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldImageURL, v))
}

// TranslationText applies equality check predicate on the "translation_text" field. It's identical to TranslationTextEQ.
func TranslationText(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldTranslationText, v))
}

// HintText applies equality check predicate on the "hint_text" field. It's identical to HintTextEQ.
func HintText(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldHintText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldCreatedAt, v))
}

// CardTypeEQ applies the EQ predicate on the "card_type" field.
func CardTypeEQ(v CardType) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldCardType, v))
}

// CardTypeNEQ applies the NEQ predicate on the "card_type" field.
func CardTypeNEQ(v CardType) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldCardType, v))
}

// CardTypeIn applies the In predicate on the "card_type" field.
func CardTypeIn(vs ...CardType) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldCardType, vs...))
}

// CardTypeNotIn applies the NotIn predicate on the "card_type" field.
func CardTypeNotIn(vs ...CardType) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldCardType, vs...))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContainsFold(FieldQuestionText, v))
}

// PromptTextEQ applies the EQ predicate on the "prompt_text" field.
func PromptTextEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldPromptText, v))
}

// PromptTextNEQ applies the NEQ predicate on the "prompt_text" field.
func PromptTextNEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldPromptText, v))
}

// PromptTextIn applies the In predicate on the "prompt_text" field.
func PromptTextIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldPromptText, vs...))
}

// PromptTextNotIn applies the NotIn predicate on the "prompt_text" field.
func PromptTextNotIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldPromptText, vs...))
}

// PromptTextGT applies the GT predicate on the "prompt_text" field.
func PromptTextGT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldPromptText, v))
}

// PromptTextGTE applies the GTE predicate on the "prompt_text" field.
func PromptTextGTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldPromptText, v))
}

// PromptTextLT applies the LT predicate on the "prompt_text" field.
func PromptTextLT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldPromptText, v))
}

// PromptTextLTE applies the LTE predicate on the "prompt_text" field.
func PromptTextLTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldPromptText, v))
}

// PromptTextContains applies the Contains predicate on the "prompt_text" field.
func PromptTextContains(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContains(FieldPromptText, v))
}

// PromptTextHasPrefix applies the HasPrefix predicate on the "prompt_text" field.
func PromptTextHasPrefix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasPrefix(FieldPromptText, v))
}

// PromptTextHasSuffix applies the HasSuffix predicate on the "prompt_text" field.
func PromptTextHasSuffix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasSuffix(FieldPromptText, v))
}

// PromptTextEqualFold applies the EqualFold predicate on the "prompt_text" field.
func PromptTextEqualFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEqualFold(FieldPromptText, v))
}

// PromptTextContainsFold applies the ContainsFold predicate on the "prompt_text" field.
func PromptTextContainsFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContainsFold(FieldPromptText, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerIsNil applies the IsNil predicate on the "correct_answer" field.
func CorrectAnswerIsNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIsNull(FieldCorrectAnswer))
}

// CorrectAnswerNotNil applies the NotNil predicate on the "correct_answer" field.
func CorrectAnswerNotNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotNull(FieldCorrectAnswer))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotNull(FieldOptions))
}

// ExtraDataIsNil applies the IsNil predicate on the "extra_data" field.
func ExtraDataIsNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIsNull(FieldExtraData))
}

// ExtraDataNotNil applies the NotNil predicate on the "extra_data" field.
func ExtraDataNotNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotNull(FieldExtraData))
}

// OrderIndexEQ applies the EQ predicate on the "order_index" field.
func OrderIndexEQ(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldOrderIndex, v))
}

// OrderIndexNEQ applies the NEQ predicate on the "order_index" field.
func OrderIndexNEQ(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldOrderIndex, v))
}

// OrderIndexIn applies the In predicate on the "order_index" field.
func OrderIndexIn(vs ...int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldOrderIndex, vs...))
}

// OrderIndexNotIn applies the NotIn predicate on the "order_index" field.
func OrderIndexNotIn(vs ...int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldOrderIndex, vs...))
}

// OrderIndexGT applies the GT predicate on the "order_index" field.
func OrderIndexGT(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldOrderIndex, v))
}

// OrderIndexGTE applies the GTE predicate on the "order_index" field.
func OrderIndexGTE(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldOrderIndex, v))
}

// OrderIndexLT applies the LT predicate on the "order_index" field.
func OrderIndexLT(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldOrderIndex, v))
}

// OrderIndexLTE applies the LTE predicate on the "order_index" field.
func OrderIndexLTE(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldOrderIndex, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContainsFold(FieldTopic, v))
}

// IsRepetitionEQ applies the EQ predicate on the "is_repetition" field.
func IsRepetitionEQ(v bool) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldIsRepetition, v))
}

// IsRepetitionNEQ applies the NEQ predicate on the "is_repetition" field.
func IsRepetitionNEQ(v bool) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldIsRepetition, v))
}

// OriginalCardIDEQ applies the EQ predicate on the "original_card_id" field.
func OriginalCardIDEQ(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldOriginalCardID, v))
}

// OriginalCardIDNEQ applies the NEQ predicate on the "original_card_id" field.
func OriginalCardIDNEQ(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldOriginalCardID, v))
}

// OriginalCardIDIn applies the In predicate on the "original_card_id" field.
func OriginalCardIDIn(vs ...int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldOriginalCardID, vs...))
}

// OriginalCardIDNotIn applies the NotIn predicate on the "original_card_id" field.
func OriginalCardIDNotIn(vs ...int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldOriginalCardID, vs...))
}

// OriginalCardIDGT applies the GT predicate on the "original_card_id" field.
func OriginalCardIDGT(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldOriginalCardID, v))
}

// OriginalCardIDGTE applies the GTE predicate on the "original_card_id" field.
func OriginalCardIDGTE(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldOriginalCardID, v))
}

// OriginalCardIDLT applies the LT predicate on the "original_card_id" field.
func OriginalCardIDLT(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldOriginalCardID, v))
}

// OriginalCardIDLTE applies the LTE predicate on the "original_card_id" field.
func OriginalCardIDLTE(v int) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldOriginalCardID, v))
}

// OriginalCardIDIsNil applies the IsNil predicate on the "original_card_id" field.
func OriginalCardIDIsNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIsNull(FieldOriginalCardID))
}

// OriginalCardIDNotNil applies the NotNil predicate on the "original_card_id" field.
func OriginalCardIDNotNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotNull(FieldOriginalCardID))
}

// IconNameEQ applies the EQ predicate on the "icon_name" field.
func IconNameEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldIconName, v))
}

// IconNameNEQ applies the NEQ predicate on the "icon_name" field.
func IconNameNEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldIconName, v))
}

// IconNameIn applies the In predicate on the "icon_name" field.
func IconNameIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldIconName, vs...))
}

// IconNameNotIn applies the NotIn predicate on the "icon_name" field.
func IconNameNotIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldIconName, vs...))
}

// IconNameGT applies the GT predicate on the "icon_name" field.
func IconNameGT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldIconName, v))
}

// IconNameGTE applies the GTE predicate on the "icon_name" field.
func IconNameGTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldIconName, v))
}

// IconNameLT applies the LT predicate on the "icon_name" field.
func IconNameLT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldIconName, v))
}

// IconNameLTE applies the LTE predicate on the "icon_name" field.
func IconNameLTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldIconName, v))
}

// IconNameContains applies the Contains predicate on the "icon_name" field.
func IconNameContains(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContains(FieldIconName, v))
}

// IconNameHasPrefix applies the HasPrefix predicate on the "icon_name" field.
func IconNameHasPrefix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasPrefix(FieldIconName, v))
}

// IconNameHasSuffix applies the HasSuffix predicate on the "icon_name" field.
func IconNameHasSuffix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasSuffix(FieldIconName, v))
}

// IconNameIsNil applies the IsNil predicate on the "icon_name" field.
func IconNameIsNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIsNull(FieldIconName))
}

// IconNameNotNil applies the NotNil predicate on the "icon_name" field.
func IconNameNotNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotNull(FieldIconName))
}

// IconNameEqualFold applies the EqualFold predicate on the "icon_name" field.
func IconNameEqualFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEqualFold(FieldIconName, v))
}

// IconNameContainsFold applies the ContainsFold predicate on the "icon_name" field.
func IconNameContainsFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContainsFold(FieldIconName, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContainsFold(FieldImageURL, v))
}

// TranslationTextEQ applies the EQ predicate on the "translation_text" field.
func TranslationTextEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldTranslationText, v))
}

// TranslationTextNEQ applies the NEQ predicate on the "translation_text" field.
func TranslationTextNEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldTranslationText, v))
}

// TranslationTextIn applies the In predicate on the "translation_text" field.
func TranslationTextIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldTranslationText, vs...))
}

// TranslationTextNotIn applies the NotIn predicate on the "translation_text" field.
func TranslationTextNotIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldTranslationText, vs...))
}

// TranslationTextGT applies the GT predicate on the "translation_text" field.
func TranslationTextGT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldTranslationText, v))
}

// TranslationTextGTE applies the GTE predicate on the "translation_text" field.
func TranslationTextGTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldTranslationText, v))
}

// TranslationTextLT applies the LT predicate on the "translation_text" field.
func TranslationTextLT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldTranslationText, v))
}

// TranslationTextLTE applies the LTE predicate on the "translation_text" field.
func TranslationTextLTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldTranslationText, v))
}

// TranslationTextContains applies the Contains predicate on the "translation_text" field.
func TranslationTextContains(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContains(FieldTranslationText, v))
}

// TranslationTextHasPrefix applies the HasPrefix predicate on the "translation_text" field.
func TranslationTextHasPrefix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasPrefix(FieldTranslationText, v))
}

// TranslationTextHasSuffix applies the HasSuffix predicate on the "translation_text" field.
func TranslationTextHasSuffix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasSuffix(FieldTranslationText, v))
}

// TranslationTextIsNil applies the IsNil predicate on the "translation_text" field.
func TranslationTextIsNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIsNull(FieldTranslationText))
}

// TranslationTextNotNil applies the NotNil predicate on the "translation_text" field.
func TranslationTextNotNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotNull(FieldTranslationText))
}

// TranslationTextEqualFold applies the EqualFold predicate on the "translation_text" field.
func TranslationTextEqualFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEqualFold(FieldTranslationText, v))
}

// TranslationTextContainsFold applies the ContainsFold predicate on the "translation_text" field.
func TranslationTextContainsFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContainsFold(FieldTranslationText, v))
}

// HintTextEQ applies the EQ predicate on the "hint_text" field.
func HintTextEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldHintText, v))
}

// HintTextNEQ applies the NEQ predicate on the "hint_text" field.
func HintTextNEQ(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldHintText, v))
}

// HintTextIn applies the In predicate on the "hint_text" field.
func HintTextIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldHintText, vs...))
}

// HintTextNotIn applies the NotIn predicate on the "hint_text" field.
func HintTextNotIn(vs ...string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldHintText, vs...))
}

// HintTextGT applies the GT predicate on the "hint_text" field.
func HintTextGT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldHintText, v))
}

// HintTextGTE applies the GTE predicate on the "hint_text" field.
func HintTextGTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldHintText, v))
}

// HintTextLT applies the LT predicate on the "hint_text" field.
func HintTextLT(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldHintText, v))
}

// HintTextLTE applies the LTE predicate on the "hint_text" field.
func HintTextLTE(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldHintText, v))
}

// HintTextContains applies the Contains predicate on the "hint_text" field.
func HintTextContains(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContains(FieldHintText, v))
}

// HintTextHasPrefix applies the HasPrefix predicate on the "hint_text" field.
func HintTextHasPrefix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasPrefix(FieldHintText, v))
}

// HintTextHasSuffix applies the HasSuffix predicate on the "hint_text" field.
func HintTextHasSuffix(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldHasSuffix(FieldHintText, v))
}

// HintTextIsNil applies the IsNil predicate on the "hint_text" field.
func HintTextIsNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIsNull(FieldHintText))
}

// HintTextNotNil applies the NotNil predicate on the "hint_text" field.
func HintTextNotNil() predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotNull(FieldHintText))
}

// HintTextEqualFold applies the EqualFold predicate on the "hint_text" field.
func HintTextEqualFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEqualFold(FieldHintText, v))
}

// HintTextContainsFold applies the ContainsFold predicate on the "hint_text" field.
func HintTextContainsFold(v string) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldContainsFold(FieldHintText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLesson applies the HasEdge predicate on the "lesson" edge.
func HasLesson() predicate.ExerciseCard {
	return predicate.ExerciseCard(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LessonTable, LessonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonWith applies the HasEdge predicate on the "lesson" edge with a given conditions (other predicates).
func HasLessonWith(preds ...predicate.Lesson) predicate.ExerciseCard {
	return predicate.ExerciseCard(func(s *sql.Selector) {
		step := newLessonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExerciseCard) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExerciseCard) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExerciseCard) predicate.ExerciseCard {
	return predicate.ExerciseCard(sql.NotPredicates(p))
}
