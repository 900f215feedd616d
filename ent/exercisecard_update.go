// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kidlingo/ent/exercisecard"
	"github.com/abhisek/kidlingo/ent/lesson"
	"github.com/abhisek/kidlingo/ent/predicate"
)

// ExerciseCardUpdate is the builder for updating ExerciseCard entities.
type ExerciseCardUpdate struct {
	config
	hooks    []Hook
	mutation *ExerciseCardMutation
}

// Where appends a list predicates to the ExerciseCardUpdate builder.
func (_u *ExerciseCardUpdate) Where(ps ...predicate.ExerciseCard) *ExerciseCardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardType sets the "card_type" field.
func (_u *ExerciseCardUpdate) SetCardType(v exercisecard.CardType) *ExerciseCardUpdate {
	_u.mutation.SetCardType(v)
	return _u
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableCardType(v *exercisecard.CardType) *ExerciseCardUpdate {
	if v != nil {
		_u.SetCardType(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ExerciseCardUpdate) SetQuestionText(v string) *ExerciseCardUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableQuestionText(v *string) *ExerciseCardUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetPromptText sets the "prompt_text" field.
func (_u *ExerciseCardUpdate) SetPromptText(v string) *ExerciseCardUpdate {
	_u.mutation.SetPromptText(v)
	return _u
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillablePromptText(v *string) *ExerciseCardUpdate {
	if v != nil {
		_u.SetPromptText(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ExerciseCardUpdate) SetCorrectAnswer(v string) *ExerciseCardUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableCorrectAnswer(v *string) *ExerciseCardUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *ExerciseCardUpdate) ClearCorrectAnswer() *ExerciseCardUpdate {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetOptions sets the "options" field.
func (_u *ExerciseCardUpdate) SetOptions(v []interface{}) *ExerciseCardUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ExerciseCardUpdate) AppendOptions(v []interface{}) *ExerciseCardUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ExerciseCardUpdate) ClearOptions() *ExerciseCardUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetExtraData sets the "extra_data" field.
func (_u *ExerciseCardUpdate) SetExtraData(v map[string]interface{}) *ExerciseCardUpdate {
	_u.mutation.SetExtraData(v)
	return _u
}

// ClearExtraData clears the value of the "extra_data" field.
func (_u *ExerciseCardUpdate) ClearExtraData() *ExerciseCardUpdate {
	_u.mutation.ClearExtraData()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExerciseCardUpdate) SetOrderIndex(v int) *ExerciseCardUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableOrderIndex(v *int) *ExerciseCardUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExerciseCardUpdate) AddOrderIndex(v int) *ExerciseCardUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ExerciseCardUpdate) SetTopic(v string) *ExerciseCardUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableTopic(v *string) *ExerciseCardUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetIsRepetition sets the "is_repetition" field.
func (_u *ExerciseCardUpdate) SetIsRepetition(v bool) *ExerciseCardUpdate {
	_u.mutation.SetIsRepetition(v)
	return _u
}

// SetNillableIsRepetition sets the "is_repetition" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableIsRepetition(v *bool) *ExerciseCardUpdate {
	if v != nil {
		_u.SetIsRepetition(*v)
	}
	return _u
}

// SetOriginalCardID sets the "original_card_id" field.
func (_u *ExerciseCardUpdate) SetOriginalCardID(v int) *ExerciseCardUpdate {
	_u.mutation.ResetOriginalCardID()
	_u.mutation.SetOriginalCardID(v)
	return _u
}

// SetNillableOriginalCardID sets the "original_card_id" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableOriginalCardID(v *int) *ExerciseCardUpdate {
	if v != nil {
		_u.SetOriginalCardID(*v)
	}
	return _u
}

// AddOriginalCardID adds value to the "original_card_id" field.
func (_u *ExerciseCardUpdate) AddOriginalCardID(v int) *ExerciseCardUpdate {
	_u.mutation.AddOriginalCardID(v)
	return _u
}

// ClearOriginalCardID clears the value of the "original_card_id" field.
func (_u *ExerciseCardUpdate) ClearOriginalCardID() *ExerciseCardUpdate {
	_u.mutation.ClearOriginalCardID()
	return _u
}

// SetIconName sets the "icon_name" field.
func (_u *ExerciseCardUpdate) SetIconName(v string) *ExerciseCardUpdate {
	_u.mutation.SetIconName(v)
	return _u
}

// SetNillableIconName sets the "icon_name" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableIconName(v *string) *ExerciseCardUpdate {
	if v != nil {
		_u.SetIconName(*v)
	}
	return _u
}

// ClearIconName clears the value of the "icon_name" field.
func (_u *ExerciseCardUpdate) ClearIconName() *ExerciseCardUpdate {
	_u.mutation.ClearIconName()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ExerciseCardUpdate) SetImageURL(v string) *ExerciseCardUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableImageURL(v *string) *ExerciseCardUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *ExerciseCardUpdate) ClearImageURL() *ExerciseCardUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetTranslationText sets the "translation_text" field.
func (_u *ExerciseCardUpdate) SetTranslationText(v string) *ExerciseCardUpdate {
	_u.mutation.SetTranslationText(v)
	return _u
}

// SetNillableTranslationText sets the "translation_text" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableTranslationText(v *string) *ExerciseCardUpdate {
	if v != nil {
		_u.SetTranslationText(*v)
	}
	return _u
}

// ClearTranslationText clears the value of the "translation_text" field.
func (_u *ExerciseCardUpdate) ClearTranslationText() *ExerciseCardUpdate {
	_u.mutation.ClearTranslationText()
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *ExerciseCardUpdate) SetHintText(v string) *ExerciseCardUpdate {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *ExerciseCardUpdate) SetNillableHintText(v *string) *ExerciseCardUpdate {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// ClearHintText clears the value of the "hint_text" field.
func (_u *ExerciseCardUpdate) ClearHintText() *ExerciseCardUpdate {
	_u.mutation.ClearHintText()
	return _u
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_u *ExerciseCardUpdate) SetLessonID(id int) *ExerciseCardUpdate {
	_u.mutation.SetLessonID(id)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *ExerciseCardUpdate) SetLesson(v *Lesson) *ExerciseCardUpdate {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the ExerciseCardMutation object of the builder.
func (_u *ExerciseCardUpdate) Mutation() *ExerciseCardMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *ExerciseCardUpdate) ClearLesson() *ExerciseCardUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExerciseCardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseCardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExerciseCardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseCardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseCardUpdate) check() error {
	if v, ok := _u.mutation.CardType(); ok {
		if err := exercisecard.CardTypeValidator(v); err != nil {
			return &ValidationError{Name: "card_type", err: fmt.Errorf(`ent: validator failed for field "ExerciseCard.card_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := exercisecard.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ExerciseCard.question_text": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExerciseCard.lesson"`)
	}
	return nil
}

func (_u *ExerciseCardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exercisecard.Table, exercisecard.Columns, sqlgraph.NewFieldSpec(exercisecard.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardType(); ok {
		_spec.SetField(exercisecard.FieldCardType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(exercisecard.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptText(); ok {
		_spec.SetField(exercisecard.FieldPromptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(exercisecard.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(exercisecard.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(exercisecard.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exercisecard.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(exercisecard.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtraData(); ok {
		_spec.SetField(exercisecard.FieldExtraData, field.TypeJSON, value)
	}
	if _u.mutation.ExtraDataCleared() {
		_spec.ClearField(exercisecard.FieldExtraData, field.TypeJSON)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(exercisecard.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(exercisecard.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(exercisecard.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsRepetition(); ok {
		_spec.SetField(exercisecard.FieldIsRepetition, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OriginalCardID(); ok {
		_spec.SetField(exercisecard.FieldOriginalCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginalCardID(); ok {
		_spec.AddField(exercisecard.FieldOriginalCardID, field.TypeInt, value)
	}
	if _u.mutation.OriginalCardIDCleared() {
		_spec.ClearField(exercisecard.FieldOriginalCardID, field.TypeInt)
	}
	if value, ok := _u.mutation.IconName(); ok {
		_spec.SetField(exercisecard.FieldIconName, field.TypeString, value)
	}
	if _u.mutation.IconNameCleared() {
		_spec.ClearField(exercisecard.FieldIconName, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(exercisecard.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(exercisecard.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.TranslationText(); ok {
		_spec.SetField(exercisecard.FieldTranslationText, field.TypeString, value)
	}
	if _u.mutation.TranslationTextCleared() {
		_spec.ClearField(exercisecard.FieldTranslationText, field.TypeString)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(exercisecard.FieldHintText, field.TypeString, value)
	}
	if _u.mutation.HintTextCleared() {
		_spec.ClearField(exercisecard.FieldHintText, field.TypeString)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exercisecard.LessonTable,
			Columns: []string{exercisecard.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exercisecard.LessonTable,
			Columns: []string{exercisecard.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exercisecard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExerciseCardUpdateOne is the builder for updating a single ExerciseCard entity.
type ExerciseCardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExerciseCardMutation
}

// SetCardType sets the "card_type" field.
func (_u *ExerciseCardUpdateOne) SetCardType(v exercisecard.CardType) *ExerciseCardUpdateOne {
	_u.mutation.SetCardType(v)
	return _u
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableCardType(v *exercisecard.CardType) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetCardType(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *ExerciseCardUpdateOne) SetQuestionText(v string) *ExerciseCardUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableQuestionText(v *string) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetPromptText sets the "prompt_text" field.
func (_u *ExerciseCardUpdateOne) SetPromptText(v string) *ExerciseCardUpdateOne {
	_u.mutation.SetPromptText(v)
	return _u
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillablePromptText(v *string) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetPromptText(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ExerciseCardUpdateOne) SetCorrectAnswer(v string) *ExerciseCardUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableCorrectAnswer(v *string) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *ExerciseCardUpdateOne) ClearCorrectAnswer() *ExerciseCardUpdateOne {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetOptions sets the "options" field.
func (_u *ExerciseCardUpdateOne) SetOptions(v []interface{}) *ExerciseCardUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *ExerciseCardUpdateOne) AppendOptions(v []interface{}) *ExerciseCardUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ExerciseCardUpdateOne) ClearOptions() *ExerciseCardUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetExtraData sets the "extra_data" field.
func (_u *ExerciseCardUpdateOne) SetExtraData(v map[string]interface{}) *ExerciseCardUpdateOne {
	_u.mutation.SetExtraData(v)
	return _u
}

// ClearExtraData clears the value of the "extra_data" field.
func (_u *ExerciseCardUpdateOne) ClearExtraData() *ExerciseCardUpdateOne {
	_u.mutation.ClearExtraData()
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *ExerciseCardUpdateOne) SetOrderIndex(v int) *ExerciseCardUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableOrderIndex(v *int) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *ExerciseCardUpdateOne) AddOrderIndex(v int) *ExerciseCardUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ExerciseCardUpdateOne) SetTopic(v string) *ExerciseCardUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableTopic(v *string) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetIsRepetition sets the "is_repetition" field.
func (_u *ExerciseCardUpdateOne) SetIsRepetition(v bool) *ExerciseCardUpdateOne {
	_u.mutation.SetIsRepetition(v)
	return _u
}

// SetNillableIsRepetition sets the "is_repetition" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableIsRepetition(v *bool) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetIsRepetition(*v)
	}
	return _u
}

// SetOriginalCardID sets the "original_card_id" field.
func (_u *ExerciseCardUpdateOne) SetOriginalCardID(v int) *ExerciseCardUpdateOne {
	_u.mutation.ResetOriginalCardID()
	_u.mutation.SetOriginalCardID(v)
	return _u
}

// SetNillableOriginalCardID sets the "original_card_id" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableOriginalCardID(v *int) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetOriginalCardID(*v)
	}
	return _u
}

// AddOriginalCardID adds value to the "original_card_id" field.
func (_u *ExerciseCardUpdateOne) AddOriginalCardID(v int) *ExerciseCardUpdateOne {
	_u.mutation.AddOriginalCardID(v)
	return _u
}

// ClearOriginalCardID clears the value of the "original_card_id" field.
func (_u *ExerciseCardUpdateOne) ClearOriginalCardID() *ExerciseCardUpdateOne {
	_u.mutation.ClearOriginalCardID()
	return _u
}

// SetIconName sets the "icon_name" field.
func (_u *ExerciseCardUpdateOne) SetIconName(v string) *ExerciseCardUpdateOne {
	_u.mutation.SetIconName(v)
	return _u
}

// SetNillableIconName sets the "icon_name" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableIconName(v *string) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetIconName(*v)
	}
	return _u
}

// ClearIconName clears the value of the "icon_name" field.
func (_u *ExerciseCardUpdateOne) ClearIconName() *ExerciseCardUpdateOne {
	_u.mutation.ClearIconName()
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *ExerciseCardUpdateOne) SetImageURL(v string) *ExerciseCardUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableImageURL(v *string) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *ExerciseCardUpdateOne) ClearImageURL() *ExerciseCardUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetTranslationText sets the "translation_text" field.
func (_u *ExerciseCardUpdateOne) SetTranslationText(v string) *ExerciseCardUpdateOne {
	_u.mutation.SetTranslationText(v)
	return _u
}

// SetNillableTranslationText sets the "translation_text" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableTranslationText(v *string) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetTranslationText(*v)
	}
	return _u
}

// ClearTranslationText clears the value of the "translation_text" field.
func (_u *ExerciseCardUpdateOne) ClearTranslationText() *ExerciseCardUpdateOne {
	_u.mutation.ClearTranslationText()
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *ExerciseCardUpdateOne) SetHintText(v string) *ExerciseCardUpdateOne {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *ExerciseCardUpdateOne) SetNillableHintText(v *string) *ExerciseCardUpdateOne {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// ClearHintText clears the value of the "hint_text" field.
func (_u *ExerciseCardUpdateOne) ClearHintText() *ExerciseCardUpdateOne {
	_u.mutation.ClearHintText()
	return _u
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_u *ExerciseCardUpdateOne) SetLessonID(id int) *ExerciseCardUpdateOne {
	_u.mutation.SetLessonID(id)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *ExerciseCardUpdateOne) SetLesson(v *Lesson) *ExerciseCardUpdateOne {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the ExerciseCardMutation object of the builder.
func (_u *ExerciseCardUpdateOne) Mutation() *ExerciseCardMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *ExerciseCardUpdateOne) ClearLesson() *ExerciseCardUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// Where appends a list predicates to the ExerciseCardUpdate builder.
func (_u *ExerciseCardUpdateOne) Where(ps ...predicate.ExerciseCard) *ExerciseCardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExerciseCardUpdateOne) Select(field string, fields ...string) *ExerciseCardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExerciseCard entity.
func (_u *ExerciseCardUpdateOne) Save(ctx context.Context) (*ExerciseCard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExerciseCardUpdateOne) SaveX(ctx context.Context) *ExerciseCard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExerciseCardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExerciseCardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExerciseCardUpdateOne) check() error {
	if v, ok := _u.mutation.CardType(); ok {
		if err := exercisecard.CardTypeValidator(v); err != nil {
			return &ValidationError{Name: "card_type", err: fmt.Errorf(`ent: validator failed for field "ExerciseCard.card_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := exercisecard.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ExerciseCard.question_text": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExerciseCard.lesson"`)
	}
	return nil
}

func (_u *ExerciseCardUpdateOne) sqlSave(ctx context.Context) (_node *ExerciseCard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(exercisecard.Table, exercisecard.Columns, sqlgraph.NewFieldSpec(exercisecard.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExerciseCard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, exercisecard.FieldID)
		for _, f := range fields {
			if !exercisecard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != exercisecard.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardType(); ok {
		_spec.SetField(exercisecard.FieldCardType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(exercisecard.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptText(); ok {
		_spec.SetField(exercisecard.FieldPromptText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(exercisecard.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(exercisecard.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(exercisecard.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, exercisecard.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(exercisecard.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtraData(); ok {
		_spec.SetField(exercisecard.FieldExtraData, field.TypeJSON, value)
	}
	if _u.mutation.ExtraDataCleared() {
		_spec.ClearField(exercisecard.FieldExtraData, field.TypeJSON)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(exercisecard.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(exercisecard.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(exercisecard.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsRepetition(); ok {
		_spec.SetField(exercisecard.FieldIsRepetition, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OriginalCardID(); ok {
		_spec.SetField(exercisecard.FieldOriginalCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginalCardID(); ok {
		_spec.AddField(exercisecard.FieldOriginalCardID, field.TypeInt, value)
	}
	if _u.mutation.OriginalCardIDCleared() {
		_spec.ClearField(exercisecard.FieldOriginalCardID, field.TypeInt)
	}
	if value, ok := _u.mutation.IconName(); ok {
		_spec.SetField(exercisecard.FieldIconName, field.TypeString, value)
	}
	if _u.mutation.IconNameCleared() {
		_spec.ClearField(exercisecard.FieldIconName, field.TypeString)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(exercisecard.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(exercisecard.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.TranslationText(); ok {
		_spec.SetField(exercisecard.FieldTranslationText, field.TypeString, value)
	}
	if _u.mutation.TranslationTextCleared() {
		_spec.ClearField(exercisecard.FieldTranslationText, field.TypeString)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(exercisecard.FieldHintText, field.TypeString, value)
	}
	if _u.mutation.HintTextCleared() {
		_spec.ClearField(exercisecard.FieldHintText, field.TypeString)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exercisecard.LessonTable,
			Columns: []string{exercisecard.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   exercisecard.LessonTable,
			Columns: []string{exercisecard.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExerciseCard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{exercisecard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
