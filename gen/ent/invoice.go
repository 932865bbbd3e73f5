// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nexonbooks/docintake/gen/ent/customer"
	"github.com/nexonbooks/docintake/gen/ent/invoice"
	"github.com/nexonbooks/docintake/gen/ent/workspace"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID uuid.UUID `json:"customer_id,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber string `json:"invoice_number,omitempty"`
	// InvoiceDate holds the value of the "invoice_date" field.
	InvoiceDate time.Time `json:"invoice_date,omitempty"`
	// InvoiceType holds the value of the "invoice_type" field.
	InvoiceType invoice.InvoiceType `json:"invoice_type,omitempty"`
	// AmountExclVat holds the value of the "amount_excl_vat" field.
	AmountExclVat float64 `json:"amount_excl_vat,omitempty"`
	// AmountInclVat holds the value of the "amount_incl_vat" field.
	AmountInclVat float64 `json:"amount_incl_vat,omitempty"`
	// VatAmount holds the value of the "vat_amount" field.
	VatAmount float64 `json:"vat_amount,omitempty"`
	// VatRate holds the value of the "vat_rate" field.
	VatRate float64 `json:"vat_rate,omitempty"`
	// LineItems holds the value of the "line_items" field.
	LineItems json.RawMessage `json:"line_items,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath *string `json:"file_path,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// Customer holds the value of the customer edge.
	Customer *Customer `json:"customer,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// CustomerOrErr returns the Customer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) CustomerOrErr() (*Customer, error) {
	if e.Customer != nil {
		return e.Customer, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: customer.Label}
	}
	return nil, &NotLoadedError{edge: "customer"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldLineItems:
			values[i] = new([]byte)
		case invoice.FieldAmountExclVat, invoice.FieldAmountInclVat, invoice.FieldVatAmount, invoice.FieldVatRate:
			values[i] = new(sql.NullFloat64)
		case invoice.FieldInvoiceNumber, invoice.FieldInvoiceType, invoice.FieldFilePath:
			values[i] = new(sql.NullString)
		case invoice.FieldInvoiceDate, invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID, invoice.FieldWorkspaceID, invoice.FieldCustomerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldWorkspaceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value != nil {
				_m.WorkspaceID = *value
			}
		case invoice.FieldCustomerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value != nil {
				_m.CustomerID = *value
			}
		case invoice.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = value.String
			}
		case invoice.FieldInvoiceDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_date", values[i])
			} else if value.Valid {
				_m.InvoiceDate = value.Time
			}
		case invoice.FieldInvoiceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_type", values[i])
			} else if value.Valid {
				_m.InvoiceType = invoice.InvoiceType(value.String)
			}
		case invoice.FieldAmountExclVat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_excl_vat", values[i])
			} else if value.Valid {
				_m.AmountExclVat = value.Float64
			}
		case invoice.FieldAmountInclVat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_incl_vat", values[i])
			} else if value.Valid {
				_m.AmountInclVat = value.Float64
			}
		case invoice.FieldVatAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_amount", values[i])
			} else if value.Valid {
				_m.VatAmount = value.Float64
			}
		case invoice.FieldVatRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_rate", values[i])
			} else if value.Valid {
				_m.VatRate = value.Float64
			}
		case invoice.FieldLineItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field line_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LineItems); err != nil {
					return fmt.Errorf("unmarshal field line_items: %w", err)
				}
			}
		case invoice.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = new(string)
				*_m.FilePath = value.String
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the Invoice entity.
func (_m *Invoice) QueryWorkspace() *WorkspaceQuery {
	return NewInvoiceClient(_m.config).QueryWorkspace(_m)
}

// QueryCustomer queries the "customer" edge of the Invoice entity.
func (_m *Invoice) QueryCustomer() *CustomerQuery {
	return NewInvoiceClient(_m.config).QueryCustomer(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("customer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomerID))
	builder.WriteString(", ")
	builder.WriteString("invoice_number=")
	builder.WriteString(_m.InvoiceNumber)
	builder.WriteString(", ")
	builder.WriteString("invoice_date=")
	builder.WriteString(_m.InvoiceDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("invoice_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.InvoiceType))
	builder.WriteString(", ")
	builder.WriteString("amount_excl_vat=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountExclVat))
	builder.WriteString(", ")
	builder.WriteString("amount_incl_vat=")
	builder.WriteString(fmt.Sprintf("%v", _m.AmountInclVat))
	builder.WriteString(", ")
	builder.WriteString("vat_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.VatAmount))
	builder.WriteString(", ")
	builder.WriteString("vat_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.VatRate))
	builder.WriteString(", ")
	builder.WriteString("line_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.LineItems))
	builder.WriteString(", ")
	if v := _m.FilePath; v != nil {
		builder.WriteString("file_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
