// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kidlingo/ent/exercisecard"
	"github.com/abhisek/kidlingo/ent/lesson"
)

// ExerciseCardCreate is the builder for creating a ExerciseCard entity.
type ExerciseCardCreate struct {
	config
	mutation *ExerciseCardMutation
	hooks    []Hook
}

// SetCardType sets the "card_type" field.
func (_c *ExerciseCardCreate) SetCardType(v exercisecard.CardType) *ExerciseCardCreate {
	_c.mutation.SetCardType(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *ExerciseCardCreate) SetQuestionText(v string) *ExerciseCardCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetPromptText sets the "prompt_text" field.
func (_c *ExerciseCardCreate) SetPromptText(v string) *ExerciseCardCreate {
	_c.mutation.SetPromptText(v)
	return _c
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillablePromptText(v *string) *ExerciseCardCreate {
	if v != nil {
		_c.SetPromptText(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *ExerciseCardCreate) SetCorrectAnswer(v string) *ExerciseCardCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillableCorrectAnswer(v *string) *ExerciseCardCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *ExerciseCardCreate) SetOptions(v []interface{}) *ExerciseCardCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetExtraData sets the "extra_data" field.
func (_c *ExerciseCardCreate) SetExtraData(v map[string]interface{}) *ExerciseCardCreate {
	_c.mutation.SetExtraData(v)
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *ExerciseCardCreate) SetOrderIndex(v int) *ExerciseCardCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillableOrderIndex(v *int) *ExerciseCardCreate {
	if v != nil {
		_c.SetOrderIndex(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ExerciseCardCreate) SetTopic(v string) *ExerciseCardCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillableTopic(v *string) *ExerciseCardCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetIsRepetition sets the "is_repetition" field.
func (_c *ExerciseCardCreate) SetIsRepetition(v bool) *ExerciseCardCreate {
	_c.mutation.SetIsRepetition(v)
	return _c
}

// SetNillableIsRepetition sets the "is_repetition" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillableIsRepetition(v *bool) *ExerciseCardCreate {
	if v != nil {
		_c.SetIsRepetition(*v)
	}
	return _c
}

// SetOriginalCardID sets the "original_card_id" field.
func (_c *ExerciseCardCreate) SetOriginalCardID(v int) *ExerciseCardCreate {
	_c.mutation.SetOriginalCardID(v)
	return _c
}

// SetNillableOriginalCardID sets the "original_card_id" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillableOriginalCardID(v *int) *ExerciseCardCreate {
	if v != nil {
		_c.SetOriginalCardID(*v)
	}
	return _c
}

// SetIconName sets the "icon_name" field.
func (_c *ExerciseCardCreate) SetIconName(v string) *ExerciseCardCreate {
	_c.mutation.SetIconName(v)
	return _c
}

// SetNillableIconName sets the "icon_name" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillableIconName(v *string) *ExerciseCardCreate {
	if v != nil {
		_c.SetIconName(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *ExerciseCardCreate) SetImageURL(v string) *ExerciseCardCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillableImageURL(v *string) *ExerciseCardCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetTranslationText sets the "translation_text" field.
func (_c *ExerciseCardCreate) SetTranslationText(v string) *ExerciseCardCreate {
	_c.mutation.SetTranslationText(v)
	return _c
}

// SetNillableTranslationText sets the "translation_text" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillableTranslationText(v *string) *ExerciseCardCreate {
	if v != nil {
		_c.SetTranslationText(*v)
	}
	return _c
}

// SetHintText sets the "hint_text" field.
func (_c *ExerciseCardCreate) SetHintText(v string) *ExerciseCardCreate {
	_c.mutation.SetHintText(v)
	return _c
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillableHintText(v *string) *ExerciseCardCreate {
	if v != nil {
		_c.SetHintText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExerciseCardCreate) SetCreatedAt(v time.Time) *ExerciseCardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExerciseCardCreate) SetNillableCreatedAt(v *time.Time) *ExerciseCardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_c *ExerciseCardCreate) SetLessonID(id int) *ExerciseCardCreate {
	_c.mutation.SetLessonID(id)
	return _c
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_c *ExerciseCardCreate) SetLesson(v *Lesson) *ExerciseCardCreate {
	return _c.SetLessonID(v.ID)
}

// Mutation returns the ExerciseCardMutation object of the builder.
func (_c *ExerciseCardCreate) Mutation() *ExerciseCardMutation {
	return _c.mutation
}

// Save creates the ExerciseCard in the database.
func (_c *ExerciseCardCreate) Save(ctx context.Context) (*ExerciseCard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExerciseCardCreate) SaveX(ctx context.Context) *ExerciseCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseCardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseCardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExerciseCardCreate) defaults() {
	if _, ok := _c.mutation.PromptText(); !ok {
		v := exercisecard.DefaultPromptText
		_c.mutation.SetPromptText(v)
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		v := exercisecard.DefaultOrderIndex
		_c.mutation.SetOrderIndex(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := exercisecard.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.IsRepetition(); !ok {
		v := exercisecard.DefaultIsRepetition
		_c.mutation.SetIsRepetition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := exercisecard.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExerciseCardCreate) check() error {
	if _, ok := _c.mutation.CardType(); !ok {
		return &ValidationError{Name: "card_type", err: errors.New(`ent: missing required field "ExerciseCard.card_type"`)}
	}
	if v, ok := _c.mutation.CardType(); ok {
		if err := exercisecard.CardTypeValidator(v); err != nil {
			return &ValidationError{Name: "card_type", err: fmt.Errorf(`ent: validator failed for field "ExerciseCard.card_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "ExerciseCard.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := exercisecard.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "ExerciseCard.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptText(); !ok {
		return &ValidationError{Name: "prompt_text", err: errors.New(`ent: missing required field "ExerciseCard.prompt_text"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "ExerciseCard.order_index"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ExerciseCard.topic"`)}
	}
	if _, ok := _c.mutation.IsRepetition(); !ok {
		return &ValidationError{Name: "is_repetition", err: errors.New(`ent: missing required field "ExerciseCard.is_repetition"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExerciseCard.created_at"`)}
	}
	if len(_c.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required edge "ExerciseCard.lesson"`)}
	}
	return nil
}

func (_c *ExerciseCardCreate) sqlSave(ctx context.Context) (*ExerciseCard, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExerciseCardCreate) createSpec() (*ExerciseCard, *sqlgraph.CreateSpec) {
	var (
		_node = &ExerciseCard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(exercisecard.Table, sqlgraph.NewFieldSpec(exercisecard.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CardType(); ok {
		_spec.SetField(exercisecard.FieldCardType, field.TypeEnum, value)
		_node.CardType = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(exercisecard.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.PromptText(); ok {
		_spec.SetField(exercisecard.FieldPromptText, field.TypeString, value)
		_node.PromptText = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(exercisecard.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = &value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(exercisecard.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.ExtraData(); ok {
		_spec.SetField(exercisecard.FieldExtraData, field.TypeJSON, value)
		_node.ExtraData = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(exercisecard.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(exercisecard.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.IsRepetition(); ok {
		_spec.SetField(exercisecard.FieldIsRepetition, field.TypeBool, value)
		_node.IsRepetition = value
	}
	if value, ok := _c.mutation.OriginalCardID(); ok {
		_spec.SetField(exercisecard.FieldOriginalCardID, field.TypeInt, value)
		_node.OriginalCardID = &value
	}
	if value, ok := _c.mutation.IconName(); ok {
		_spec.SetField(exercisecard.FieldIconName, field.TypeString, value)
		_node.IconName = &value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(exercisecard.FieldImageURL, field.TypeString, value)
		_node.ImageURL = &value
	}
	if value, ok := _c.mutation.TranslationText(); ok {
		_spec.SetField(exercisecard.FieldTranslationText, field.TypeString, value)
		_node.TranslationText = &value
	}
	if value, ok := _c.mutation.HintText(); ok {
		_spec.SetField(exercisecard.FieldHintText, field.TypeString, value)
		_node.HintText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(exercisecard.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
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
		_node.lesson_cards = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExerciseCardCreateBulk is the builder for creating many ExerciseCard entities in bulk.
type ExerciseCardCreateBulk struct {
	config
	err      error
	builders []*ExerciseCardCreate
}

// Save creates the ExerciseCard entities in the database.
func (_c *ExerciseCardCreateBulk) Save(ctx context.Context) ([]*ExerciseCard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExerciseCard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExerciseCardMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExerciseCardCreateBulk) SaveX(ctx context.Context) []*ExerciseCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExerciseCardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExerciseCardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
