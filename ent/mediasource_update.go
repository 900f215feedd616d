// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kidlingo/ent/lesson"
	"github.com/abhisek/kidlingo/ent/mediasource"
	"github.com/abhisek/kidlingo/ent/predicate"
)

// MediaSourceUpdate is the builder for updating MediaSource entities.
type MediaSourceUpdate struct {
	config
	hooks    []Hook
	mutation *MediaSourceMutation
}

// Where appends a list predicates to the MediaSourceUpdate builder.
func (_u *MediaSourceUpdate) Where(ps ...predicate.MediaSource) *MediaSourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPath sets the "path" field.
func (_u *MediaSourceUpdate) SetPath(v string) *MediaSourceUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillablePath(v *string) *MediaSourceUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MediaSourceUpdate) SetName(v string) *MediaSourceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillableName(v *string) *MediaSourceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *MediaSourceUpdate) SetSize(v int64) *MediaSourceUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillableSize(v *int64) *MediaSourceUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *MediaSourceUpdate) AddSize(v int64) *MediaSourceUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MediaSourceUpdate) SetStatus(v mediasource.Status) *MediaSourceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillableStatus(v *mediasource.Status) *MediaSourceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *MediaSourceUpdate) SetProcessingStatus(v mediasource.ProcessingStatus) *MediaSourceUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillableProcessingStatus(v *mediasource.ProcessingStatus) *MediaSourceUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetProcessingMessage sets the "processing_message" field.
func (_u *MediaSourceUpdate) SetProcessingMessage(v string) *MediaSourceUpdate {
	_u.mutation.SetProcessingMessage(v)
	return _u
}

// SetNillableProcessingMessage sets the "processing_message" field if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillableProcessingMessage(v *string) *MediaSourceUpdate {
	if v != nil {
		_u.SetProcessingMessage(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MediaSourceUpdate) SetErrorMessage(v string) *MediaSourceUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillableErrorMessage(v *string) *MediaSourceUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetHasTranscript sets the "has_transcript" field.
func (_u *MediaSourceUpdate) SetHasTranscript(v bool) *MediaSourceUpdate {
	_u.mutation.SetHasTranscript(v)
	return _u
}

// SetNillableHasTranscript sets the "has_transcript" field if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillableHasTranscript(v *bool) *MediaSourceUpdate {
	if v != nil {
		_u.SetHasTranscript(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MediaSourceUpdate) SetCreatedAt(v time.Time) *MediaSourceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillableCreatedAt(v *time.Time) *MediaSourceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MediaSourceUpdate) SetUpdatedAt(v time.Time) *MediaSourceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *MediaSourceUpdate) SetProcessedAt(v time.Time) *MediaSourceUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillableProcessedAt(v *time.Time) *MediaSourceUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *MediaSourceUpdate) ClearProcessedAt() *MediaSourceUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_u *MediaSourceUpdate) SetLessonID(id int) *MediaSourceUpdate {
	_u.mutation.SetLessonID(id)
	return _u
}

// SetNillableLessonID sets the "lesson" edge to the Lesson entity by ID if the given value is not nil.
func (_u *MediaSourceUpdate) SetNillableLessonID(id *int) *MediaSourceUpdate {
	if id != nil {
		_u = _u.SetLessonID(*id)
	}
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *MediaSourceUpdate) SetLesson(v *Lesson) *MediaSourceUpdate {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the MediaSourceMutation object of the builder.
func (_u *MediaSourceUpdate) Mutation() *MediaSourceMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *MediaSourceUpdate) ClearLesson() *MediaSourceUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MediaSourceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaSourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MediaSourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaSourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MediaSourceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mediasource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaSourceUpdate) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := mediasource.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "MediaSource.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := mediasource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MediaSource.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := mediasource.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MediaSource.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := mediasource.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "MediaSource.processing_status": %w`, err)}
		}
	}
	return nil
}

func (_u *MediaSourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediasource.Table, mediasource.Columns, sqlgraph.NewFieldSpec(mediasource.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(mediasource.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mediasource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(mediasource.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(mediasource.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mediasource.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(mediasource.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessingMessage(); ok {
		_spec.SetField(mediasource.FieldProcessingMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(mediasource.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasTranscript(); ok {
		_spec.SetField(mediasource.FieldHasTranscript, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mediasource.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mediasource.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(mediasource.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(mediasource.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   mediasource.LessonTable,
			Columns: []string{mediasource.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   mediasource.LessonTable,
			Columns: []string{mediasource.LessonColumn},
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
			err = &NotFoundError{mediasource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MediaSourceUpdateOne is the builder for updating a single MediaSource entity.
type MediaSourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MediaSourceMutation
}

// SetPath sets the "path" field.
func (_u *MediaSourceUpdateOne) SetPath(v string) *MediaSourceUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillablePath(v *string) *MediaSourceUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MediaSourceUpdateOne) SetName(v string) *MediaSourceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillableName(v *string) *MediaSourceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *MediaSourceUpdateOne) SetSize(v int64) *MediaSourceUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillableSize(v *int64) *MediaSourceUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *MediaSourceUpdateOne) AddSize(v int64) *MediaSourceUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MediaSourceUpdateOne) SetStatus(v mediasource.Status) *MediaSourceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillableStatus(v *mediasource.Status) *MediaSourceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *MediaSourceUpdateOne) SetProcessingStatus(v mediasource.ProcessingStatus) *MediaSourceUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillableProcessingStatus(v *mediasource.ProcessingStatus) *MediaSourceUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetProcessingMessage sets the "processing_message" field.
func (_u *MediaSourceUpdateOne) SetProcessingMessage(v string) *MediaSourceUpdateOne {
	_u.mutation.SetProcessingMessage(v)
	return _u
}

// SetNillableProcessingMessage sets the "processing_message" field if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillableProcessingMessage(v *string) *MediaSourceUpdateOne {
	if v != nil {
		_u.SetProcessingMessage(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *MediaSourceUpdateOne) SetErrorMessage(v string) *MediaSourceUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillableErrorMessage(v *string) *MediaSourceUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetHasTranscript sets the "has_transcript" field.
func (_u *MediaSourceUpdateOne) SetHasTranscript(v bool) *MediaSourceUpdateOne {
	_u.mutation.SetHasTranscript(v)
	return _u
}

// SetNillableHasTranscript sets the "has_transcript" field if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillableHasTranscript(v *bool) *MediaSourceUpdateOne {
	if v != nil {
		_u.SetHasTranscript(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MediaSourceUpdateOne) SetCreatedAt(v time.Time) *MediaSourceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillableCreatedAt(v *time.Time) *MediaSourceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MediaSourceUpdateOne) SetUpdatedAt(v time.Time) *MediaSourceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *MediaSourceUpdateOne) SetProcessedAt(v time.Time) *MediaSourceUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillableProcessedAt(v *time.Time) *MediaSourceUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *MediaSourceUpdateOne) ClearProcessedAt() *MediaSourceUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_u *MediaSourceUpdateOne) SetLessonID(id int) *MediaSourceUpdateOne {
	_u.mutation.SetLessonID(id)
	return _u
}

// SetNillableLessonID sets the "lesson" edge to the Lesson entity by ID if the given value is not nil.
func (_u *MediaSourceUpdateOne) SetNillableLessonID(id *int) *MediaSourceUpdateOne {
	if id != nil {
		_u = _u.SetLessonID(*id)
	}
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *MediaSourceUpdateOne) SetLesson(v *Lesson) *MediaSourceUpdateOne {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the MediaSourceMutation object of the builder.
func (_u *MediaSourceUpdateOne) Mutation() *MediaSourceMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *MediaSourceUpdateOne) ClearLesson() *MediaSourceUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// Where appends a list predicates to the MediaSourceUpdate builder.
func (_u *MediaSourceUpdateOne) Where(ps ...predicate.MediaSource) *MediaSourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MediaSourceUpdateOne) Select(field string, fields ...string) *MediaSourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MediaSource entity.
func (_u *MediaSourceUpdateOne) Save(ctx context.Context) (*MediaSource, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaSourceUpdateOne) SaveX(ctx context.Context) *MediaSource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MediaSourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaSourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MediaSourceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mediasource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaSourceUpdateOne) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := mediasource.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "MediaSource.path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := mediasource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MediaSource.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := mediasource.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MediaSource.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := mediasource.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "MediaSource.processing_status": %w`, err)}
		}
	}
	return nil
}

func (_u *MediaSourceUpdateOne) sqlSave(ctx context.Context) (_node *MediaSource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediasource.Table, mediasource.Columns, sqlgraph.NewFieldSpec(mediasource.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MediaSource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mediasource.FieldID)
		for _, f := range fields {
			if !mediasource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mediasource.FieldID {
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
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(mediasource.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mediasource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(mediasource.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(mediasource.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mediasource.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(mediasource.FieldProcessingStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProcessingMessage(); ok {
		_spec.SetField(mediasource.FieldProcessingMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(mediasource.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasTranscript(); ok {
		_spec.SetField(mediasource.FieldHasTranscript, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mediasource.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mediasource.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(mediasource.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(mediasource.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   mediasource.LessonTable,
			Columns: []string{mediasource.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   mediasource.LessonTable,
			Columns: []string{mediasource.LessonColumn},
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
	_node = &MediaSource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediasource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
