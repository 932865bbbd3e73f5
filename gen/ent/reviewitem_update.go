// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nexonbooks/docintake/gen/ent/predicate"
	"github.com/nexonbooks/docintake/gen/ent/reviewitem"
	"github.com/nexonbooks/docintake/gen/ent/workspace"
)

// ReviewItemUpdate is the builder for updating ReviewItem entities.
type ReviewItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewItemMutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdate) Where(ps ...predicate.ReviewItem) *ReviewItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ReviewItemUpdate) SetWorkspaceID(v uuid.UUID) *ReviewItemUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableWorkspaceID(v *uuid.UUID) *ReviewItemUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ReviewItemUpdate) SetFilePath(v string) *ReviewItemUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableFilePath(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ReviewItemUpdate) SetReason(v string) *ReviewItemUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableReason(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetPartialData sets the "partial_data" field.
func (_u *ReviewItemUpdate) SetPartialData(v json.RawMessage) *ReviewItemUpdate {
	_u.mutation.SetPartialData(v)
	return _u
}

// AppendPartialData appends value to the "partial_data" field.
func (_u *ReviewItemUpdate) AppendPartialData(v json.RawMessage) *ReviewItemUpdate {
	_u.mutation.AppendPartialData(v)
	return _u
}

// ClearPartialData clears the value of the "partial_data" field.
func (_u *ReviewItemUpdate) ClearPartialData() *ReviewItemUpdate {
	_u.mutation.ClearPartialData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReviewItemUpdate) SetCreatedAt(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableCreatedAt(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ReviewItemUpdate) SetWorkspace(v *Workspace) *ReviewItemUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdate) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ReviewItemUpdate) ClearWorkspace() *ReviewItemUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := reviewitem.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := reviewitem.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.reason": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReviewItem.workspace"`)
	}
	return nil
}

func (_u *ReviewItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(reviewitem.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(reviewitem.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartialData(); ok {
		_spec.SetField(reviewitem.FieldPartialData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartialData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewitem.FieldPartialData, value)
		})
	}
	if _u.mutation.PartialDataCleared() {
		_spec.ClearField(reviewitem.FieldPartialData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reviewitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewItemUpdateOne is the builder for updating a single ReviewItem entity.
type ReviewItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewItemMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ReviewItemUpdateOne) SetWorkspaceID(v uuid.UUID) *ReviewItemUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ReviewItemUpdateOne) SetFilePath(v string) *ReviewItemUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableFilePath(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ReviewItemUpdateOne) SetReason(v string) *ReviewItemUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableReason(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetPartialData sets the "partial_data" field.
func (_u *ReviewItemUpdateOne) SetPartialData(v json.RawMessage) *ReviewItemUpdateOne {
	_u.mutation.SetPartialData(v)
	return _u
}

// AppendPartialData appends value to the "partial_data" field.
func (_u *ReviewItemUpdateOne) AppendPartialData(v json.RawMessage) *ReviewItemUpdateOne {
	_u.mutation.AppendPartialData(v)
	return _u
}

// ClearPartialData clears the value of the "partial_data" field.
func (_u *ReviewItemUpdateOne) ClearPartialData() *ReviewItemUpdateOne {
	_u.mutation.ClearPartialData()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReviewItemUpdateOne) SetCreatedAt(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableCreatedAt(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ReviewItemUpdateOne) SetWorkspace(v *Workspace) *ReviewItemUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdateOne) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ReviewItemUpdateOne) ClearWorkspace() *ReviewItemUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdateOne) Where(ps ...predicate.ReviewItem) *ReviewItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewItemUpdateOne) Select(field string, fields ...string) *ReviewItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewItem entity.
func (_u *ReviewItemUpdateOne) Save(ctx context.Context) (*ReviewItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) SaveX(ctx context.Context) *ReviewItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := reviewitem.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := reviewitem.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.reason": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReviewItem.workspace"`)
	}
	return nil
}

func (_u *ReviewItemUpdateOne) sqlSave(ctx context.Context) (_node *ReviewItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for _, f := range fields {
			if !reviewitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewitem.FieldID {
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
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(reviewitem.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(reviewitem.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartialData(); ok {
		_spec.SetField(reviewitem.FieldPartialData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartialData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewitem.FieldPartialData, value)
		})
	}
	if _u.mutation.PartialDataCleared() {
		_spec.ClearField(reviewitem.FieldPartialData, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reviewitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReviewItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
