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
	"github.com/nexonbooks/docintake/gen/ent/customer"
	"github.com/nexonbooks/docintake/gen/ent/invoice"
	"github.com/nexonbooks/docintake/gen/ent/predicate"
	"github.com/nexonbooks/docintake/gen/ent/workspace"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *InvoiceUpdate) SetWorkspaceID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableWorkspaceID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *InvoiceUpdate) SetCustomerID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetInvoiceType sets the "invoice_type" field.
func (_u *InvoiceUpdate) SetInvoiceType(v invoice.InvoiceType) *InvoiceUpdate {
	_u.mutation.SetInvoiceType(v)
	return _u
}

// SetNillableInvoiceType sets the "invoice_type" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceType(v *invoice.InvoiceType) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceType(*v)
	}
	return _u
}

// SetAmountExclVat sets the "amount_excl_vat" field.
func (_u *InvoiceUpdate) SetAmountExclVat(v float64) *InvoiceUpdate {
	_u.mutation.ResetAmountExclVat()
	_u.mutation.SetAmountExclVat(v)
	return _u
}

// SetNillableAmountExclVat sets the "amount_excl_vat" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAmountExclVat(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetAmountExclVat(*v)
	}
	return _u
}

// AddAmountExclVat adds value to the "amount_excl_vat" field.
func (_u *InvoiceUpdate) AddAmountExclVat(v float64) *InvoiceUpdate {
	_u.mutation.AddAmountExclVat(v)
	return _u
}

// SetAmountInclVat sets the "amount_incl_vat" field.
func (_u *InvoiceUpdate) SetAmountInclVat(v float64) *InvoiceUpdate {
	_u.mutation.ResetAmountInclVat()
	_u.mutation.SetAmountInclVat(v)
	return _u
}

// SetNillableAmountInclVat sets the "amount_incl_vat" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAmountInclVat(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetAmountInclVat(*v)
	}
	return _u
}

// AddAmountInclVat adds value to the "amount_incl_vat" field.
func (_u *InvoiceUpdate) AddAmountInclVat(v float64) *InvoiceUpdate {
	_u.mutation.AddAmountInclVat(v)
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *InvoiceUpdate) SetVatAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVatAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *InvoiceUpdate) AddVatAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddVatAmount(v)
	return _u
}

// SetVatRate sets the "vat_rate" field.
func (_u *InvoiceUpdate) SetVatRate(v float64) *InvoiceUpdate {
	_u.mutation.ResetVatRate()
	_u.mutation.SetVatRate(v)
	return _u
}

// SetNillableVatRate sets the "vat_rate" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVatRate(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetVatRate(*v)
	}
	return _u
}

// AddVatRate adds value to the "vat_rate" field.
func (_u *InvoiceUpdate) AddVatRate(v float64) *InvoiceUpdate {
	_u.mutation.AddVatRate(v)
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *InvoiceUpdate) SetLineItems(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *InvoiceUpdate) AppendLineItems(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *InvoiceUpdate) ClearLineItems() *InvoiceUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *InvoiceUpdate) SetFilePath(v string) *InvoiceUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFilePath(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *InvoiceUpdate) ClearFilePath() *InvoiceUpdate {
	_u.mutation.ClearFilePath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *InvoiceUpdate) SetWorkspace(v *Workspace) *InvoiceUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *InvoiceUpdate) SetCustomer(v *Customer) *InvoiceUpdate {
	return _u.SetCustomerID(v.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *InvoiceUpdate) ClearWorkspace() *InvoiceUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *InvoiceUpdate) ClearCustomer() *InvoiceUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceType(); ok {
		if err := invoice.InvoiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "invoice_type", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_type": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.workspace"`)
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.customer"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InvoiceType(); ok {
		_spec.SetField(invoice.FieldInvoiceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AmountExclVat(); ok {
		_spec.SetField(invoice.FieldAmountExclVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountExclVat(); ok {
		_spec.AddField(invoice.FieldAmountExclVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AmountInclVat(); ok {
		_spec.SetField(invoice.FieldAmountInclVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountInclVat(); ok {
		_spec.AddField(invoice.FieldAmountInclVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(invoice.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(invoice.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatRate(); ok {
		_spec.SetField(invoice.FieldVatRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatRate(); ok {
		_spec.AddField(invoice.FieldVatRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(invoice.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(invoice.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(invoice.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.WorkspaceTable,
			Columns: []string{invoice.WorkspaceColumn},
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
			Table:   invoice.WorkspaceTable,
			Columns: []string{invoice.WorkspaceColumn},
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
	if _u.mutation.CustomerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.CustomerTable,
			Columns: []string{invoice.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.CustomerTable,
			Columns: []string{invoice.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *InvoiceUpdateOne) SetWorkspaceID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *InvoiceUpdateOne) SetCustomerID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetInvoiceType sets the "invoice_type" field.
func (_u *InvoiceUpdateOne) SetInvoiceType(v invoice.InvoiceType) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceType(v)
	return _u
}

// SetNillableInvoiceType sets the "invoice_type" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceType(v *invoice.InvoiceType) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceType(*v)
	}
	return _u
}

// SetAmountExclVat sets the "amount_excl_vat" field.
func (_u *InvoiceUpdateOne) SetAmountExclVat(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetAmountExclVat()
	_u.mutation.SetAmountExclVat(v)
	return _u
}

// SetNillableAmountExclVat sets the "amount_excl_vat" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAmountExclVat(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAmountExclVat(*v)
	}
	return _u
}

// AddAmountExclVat adds value to the "amount_excl_vat" field.
func (_u *InvoiceUpdateOne) AddAmountExclVat(v float64) *InvoiceUpdateOne {
	_u.mutation.AddAmountExclVat(v)
	return _u
}

// SetAmountInclVat sets the "amount_incl_vat" field.
func (_u *InvoiceUpdateOne) SetAmountInclVat(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetAmountInclVat()
	_u.mutation.SetAmountInclVat(v)
	return _u
}

// SetNillableAmountInclVat sets the "amount_incl_vat" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAmountInclVat(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAmountInclVat(*v)
	}
	return _u
}

// AddAmountInclVat adds value to the "amount_incl_vat" field.
func (_u *InvoiceUpdateOne) AddAmountInclVat(v float64) *InvoiceUpdateOne {
	_u.mutation.AddAmountInclVat(v)
	return _u
}

// SetVatAmount sets the "vat_amount" field.
func (_u *InvoiceUpdateOne) SetVatAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetVatAmount()
	_u.mutation.SetVatAmount(v)
	return _u
}

// SetNillableVatAmount sets the "vat_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVatAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVatAmount(*v)
	}
	return _u
}

// AddVatAmount adds value to the "vat_amount" field.
func (_u *InvoiceUpdateOne) AddVatAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddVatAmount(v)
	return _u
}

// SetVatRate sets the "vat_rate" field.
func (_u *InvoiceUpdateOne) SetVatRate(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetVatRate()
	_u.mutation.SetVatRate(v)
	return _u
}

// SetNillableVatRate sets the "vat_rate" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVatRate(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVatRate(*v)
	}
	return _u
}

// AddVatRate adds value to the "vat_rate" field.
func (_u *InvoiceUpdateOne) AddVatRate(v float64) *InvoiceUpdateOne {
	_u.mutation.AddVatRate(v)
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *InvoiceUpdateOne) SetLineItems(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *InvoiceUpdateOne) AppendLineItems(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendLineItems(v)
	return _u
}

// ClearLineItems clears the value of the "line_items" field.
func (_u *InvoiceUpdateOne) ClearLineItems() *InvoiceUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *InvoiceUpdateOne) SetFilePath(v string) *InvoiceUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFilePath(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *InvoiceUpdateOne) ClearFilePath() *InvoiceUpdateOne {
	_u.mutation.ClearFilePath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *InvoiceUpdateOne) SetWorkspace(v *Workspace) *InvoiceUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *InvoiceUpdateOne) SetCustomer(v *Customer) *InvoiceUpdateOne {
	return _u.SetCustomerID(v.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *InvoiceUpdateOne) ClearWorkspace() *InvoiceUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *InvoiceUpdateOne) ClearCustomer() *InvoiceUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceType(); ok {
		if err := invoice.InvoiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "invoice_type", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_type": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.workspace"`)
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.customer"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InvoiceType(); ok {
		_spec.SetField(invoice.FieldInvoiceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AmountExclVat(); ok {
		_spec.SetField(invoice.FieldAmountExclVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountExclVat(); ok {
		_spec.AddField(invoice.FieldAmountExclVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AmountInclVat(); ok {
		_spec.SetField(invoice.FieldAmountInclVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmountInclVat(); ok {
		_spec.AddField(invoice.FieldAmountInclVat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatAmount(); ok {
		_spec.SetField(invoice.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatAmount(); ok {
		_spec.AddField(invoice.FieldVatAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VatRate(); ok {
		_spec.SetField(invoice.FieldVatRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVatRate(); ok {
		_spec.AddField(invoice.FieldVatRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(invoice.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldLineItems, value)
		})
	}
	if _u.mutation.LineItemsCleared() {
		_spec.ClearField(invoice.FieldLineItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(invoice.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.WorkspaceTable,
			Columns: []string{invoice.WorkspaceColumn},
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
			Table:   invoice.WorkspaceTable,
			Columns: []string{invoice.WorkspaceColumn},
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
	if _u.mutation.CustomerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.CustomerTable,
			Columns: []string{invoice.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.CustomerTable,
			Columns: []string{invoice.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
