// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nexonbooks/docintake/gen/ent/reviewitem"
	"github.com/nexonbooks/docintake/gen/ent/workspace"
)

// ReviewItemCreate is the builder for creating a ReviewItem entity.
type ReviewItemCreate struct {
	config
	mutation *ReviewItemMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ReviewItemCreate) SetWorkspaceID(v uuid.UUID) *ReviewItemCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *ReviewItemCreate) SetFilePath(v string) *ReviewItemCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ReviewItemCreate) SetReason(v string) *ReviewItemCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetPartialData sets the "partial_data" field.
func (_c *ReviewItemCreate) SetPartialData(v json.RawMessage) *ReviewItemCreate {
	_c.mutation.SetPartialData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewItemCreate) SetCreatedAt(v time.Time) *ReviewItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableCreatedAt(v *time.Time) *ReviewItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReviewItemCreate) SetID(v uuid.UUID) *ReviewItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReviewItemCreate) SetNillableID(v *uuid.UUID) *ReviewItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *ReviewItemCreate) SetWorkspace(v *Workspace) *ReviewItemCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_c *ReviewItemCreate) Mutation() *ReviewItemMutation {
	return _c.mutation
}

// Save creates the ReviewItem in the database.
func (_c *ReviewItemCreate) Save(ctx context.Context) (*ReviewItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewItemCreate) SaveX(ctx context.Context) *ReviewItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reviewitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reviewitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewItemCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "ReviewItem.workspace_id"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "ReviewItem.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := reviewitem.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ReviewItem.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := reviewitem.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewItem.created_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "ReviewItem.workspace"`)}
	}
	return nil
}

func (_c *ReviewItemCreate) sqlSave(ctx context.Context) (*ReviewItem, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewItemCreate) createSpec() (*ReviewItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewitem.Table, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(reviewitem.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(reviewitem.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.PartialData(); ok {
		_spec.SetField(reviewitem.FieldPartialData, field.TypeJSON, value)
		_node.PartialData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reviewitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reviewitem.WorkspaceTable,
			Columns: []string{reviewitem.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReviewItemCreateBulk is the builder for creating many ReviewItem entities in bulk.
type ReviewItemCreateBulk struct {
	config
	err      error
	builders []*ReviewItemCreate
}

// Save creates the ReviewItem entities in the database.
func (_c *ReviewItemCreateBulk) Save(ctx context.Context) ([]*ReviewItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewItemMutation)
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
func (_c *ReviewItemCreateBulk) SaveX(ctx context.Context) []*ReviewItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
