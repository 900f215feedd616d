// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kidlingo/ent/lesson"
	"github.com/abhisek/kidlingo/ent/mediasource"
)

// MediaSourceCreate is the builder for creating a MediaSource entity.
type MediaSourceCreate struct {
	config
	mutation *MediaSourceMutation
	hooks    []Hook
}

// SetPath sets the "path" field.
func (_c *MediaSourceCreate) SetPath(v string) *MediaSourceCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MediaSourceCreate) SetName(v string) *MediaSourceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *MediaSourceCreate) SetSize(v int64) *MediaSourceCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_c *MediaSourceCreate) SetNillableSize(v *int64) *MediaSourceCreate {
	if v != nil {
		_c.SetSize(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MediaSourceCreate) SetStatus(v mediasource.Status) *MediaSourceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MediaSourceCreate) SetNillableStatus(v *mediasource.Status) *MediaSourceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *MediaSourceCreate) SetProcessingStatus(v mediasource.ProcessingStatus) *MediaSourceCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *MediaSourceCreate) SetNillableProcessingStatus(v *mediasource.ProcessingStatus) *MediaSourceCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetProcessingMessage sets the "processing_message" field.
func (_c *MediaSourceCreate) SetProcessingMessage(v string) *MediaSourceCreate {
	_c.mutation.SetProcessingMessage(v)
	return _c
}

// SetNillableProcessingMessage sets the "processing_message" field if the given value is not nil.
func (_c *MediaSourceCreate) SetNillableProcessingMessage(v *string) *MediaSourceCreate {
	if v != nil {
		_c.SetProcessingMessage(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *MediaSourceCreate) SetErrorMessage(v string) *MediaSourceCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *MediaSourceCreate) SetNillableErrorMessage(v *string) *MediaSourceCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetHasTranscript sets the "has_transcript" field.
func (_c *MediaSourceCreate) SetHasTranscript(v bool) *MediaSourceCreate {
	_c.mutation.SetHasTranscript(v)
	return _c
}

// SetNillableHasTranscript sets the "has_transcript" field if the given value is not nil.
func (_c *MediaSourceCreate) SetNillableHasTranscript(v *bool) *MediaSourceCreate {
	if v != nil {
		_c.SetHasTranscript(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MediaSourceCreate) SetCreatedAt(v time.Time) *MediaSourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MediaSourceCreate) SetNillableCreatedAt(v *time.Time) *MediaSourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MediaSourceCreate) SetUpdatedAt(v time.Time) *MediaSourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MediaSourceCreate) SetNillableUpdatedAt(v *time.Time) *MediaSourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *MediaSourceCreate) SetProcessedAt(v time.Time) *MediaSourceCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *MediaSourceCreate) SetNillableProcessedAt(v *time.Time) *MediaSourceCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_c *MediaSourceCreate) SetLessonID(id int) *MediaSourceCreate {
	_c.mutation.SetLessonID(id)
	return _c
}

// SetNillableLessonID sets the "lesson" edge to the Lesson entity by ID if the given value is not nil.
func (_c *MediaSourceCreate) SetNillableLessonID(id *int) *MediaSourceCreate {
	if id != nil {
		_c = _c.SetLessonID(*id)
	}
	return _c
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_c *MediaSourceCreate) SetLesson(v *Lesson) *MediaSourceCreate {
	return _c.SetLessonID(v.ID)
}

// Mutation returns the MediaSourceMutation object of the builder.
func (_c *MediaSourceCreate) Mutation() *MediaSourceMutation {
	return _c.mutation
}

// Save creates the MediaSource in the database.
func (_c *MediaSourceCreate) Save(ctx context.Context) (*MediaSource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MediaSourceCreate) SaveX(ctx context.Context) *MediaSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaSourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaSourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MediaSourceCreate) defaults() {
	if _, ok := _c.mutation.Size(); !ok {
		v := mediasource.DefaultSize
		_c.mutation.SetSize(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := mediasource.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := mediasource.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.ProcessingMessage(); !ok {
		v := mediasource.DefaultProcessingMessage
		_c.mutation.SetProcessingMessage(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := mediasource.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.HasTranscript(); !ok {
		v := mediasource.DefaultHasTranscript
		_c.mutation.SetHasTranscript(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mediasource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mediasource.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MediaSourceCreate) check() error {
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "MediaSource.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := mediasource.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "MediaSource.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MediaSource.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := mediasource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MediaSource.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "MediaSource.size"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MediaSource.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := mediasource.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MediaSource.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "MediaSource.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := mediasource.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "MediaSource.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingMessage(); !ok {
		return &ValidationError{Name: "processing_message", err: errors.New(`ent: missing required field "MediaSource.processing_message"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "MediaSource.error_message"`)}
	}
	if _, ok := _c.mutation.HasTranscript(); !ok {
		return &ValidationError{Name: "has_transcript", err: errors.New(`ent: missing required field "MediaSource.has_transcript"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MediaSource.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MediaSource.updated_at"`)}
	}
	return nil
}

func (_c *MediaSourceCreate) sqlSave(ctx context.Context) (*MediaSource, error) {
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

func (_c *MediaSourceCreate) createSpec() (*MediaSource, *sqlgraph.CreateSpec) {
	var (
		_node = &MediaSource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mediasource.Table, sqlgraph.NewFieldSpec(mediasource.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(mediasource.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(mediasource.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(mediasource.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mediasource.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(mediasource.FieldProcessingStatus, field.TypeEnum, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.ProcessingMessage(); ok {
		_spec.SetField(mediasource.FieldProcessingMessage, field.TypeString, value)
		_node.ProcessingMessage = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(mediasource.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.HasTranscript(); ok {
		_spec.SetField(mediasource.FieldHasTranscript, field.TypeBool, value)
		_node.HasTranscript = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mediasource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mediasource.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(mediasource.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MediaSourceCreateBulk is the builder for creating many MediaSource entities in bulk.
type MediaSourceCreateBulk struct {
	config
	err      error
	builders []*MediaSourceCreate
}

// Save creates the MediaSource entities in the database.
func (_c *MediaSourceCreateBulk) Save(ctx context.Context) ([]*MediaSource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MediaSource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MediaSourceMutation)
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
func (_c *MediaSourceCreateBulk) SaveX(ctx context.Context) []*MediaSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaSourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaSourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
