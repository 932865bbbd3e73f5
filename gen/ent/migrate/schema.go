// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "vat_number", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "customers_workspaces_customers",
				Columns:    []*schema.Column{CustomersColumns[7]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "customer_workspace_id_name",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[7], CustomersColumns[1]},
			},
			{
				Name:    "customer_workspace_id_vat_number",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[7], CustomersColumns[3]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString},
		{Name: "invoice_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "invoice_type", Type: field.TypeEnum, Enums: []string{"income", "expense"}, Default: "expense"},
		{Name: "amount_excl_vat", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "amount_incl_vat", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "vat_rate", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "line_items", Type: field.TypeJSON, Nullable: true},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeUUID},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_customers_invoices",
				Columns:    []*schema.Column{InvoicesColumns[12]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "invoices_workspaces_invoices",
				Columns:    []*schema.Column{InvoicesColumns[13]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_workspace_id_invoice_number",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[13], InvoicesColumns[1]},
			},
			{
				Name:    "invoice_workspace_id_customer_id_invoice_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[13], InvoicesColumns[12], InvoicesColumns[2]},
			},
		},
	}
	// ReviewItemsColumns holds the columns for the "review_items" table.
	ReviewItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "partial_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// ReviewItemsTable holds the schema information for the "review_items" table.
	ReviewItemsTable = &schema.Table{
		Name:       "review_items",
		Columns:    ReviewItemsColumns,
		PrimaryKey: []*schema.Column{ReviewItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "review_items_workspaces_review_items",
				Columns:    []*schema.Column{ReviewItemsColumns[5]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reviewitem_workspace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[5], ReviewItemsColumns[4]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CustomersTable,
		InvoicesTable,
		ReviewItemsTable,
		WorkspacesTable,
	}
)

func init() {
	CustomersTable.ForeignKeys[0].RefTable = WorkspacesTable
	CustomersTable.Annotation = &entsql.Annotation{
		Table: "customers",
	}
	InvoicesTable.ForeignKeys[0].RefTable = CustomersTable
	InvoicesTable.ForeignKeys[1].RefTable = WorkspacesTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	ReviewItemsTable.ForeignKeys[0].RefTable = WorkspacesTable
	ReviewItemsTable.Annotation = &entsql.Annotation{
		Table: "review_items",
	}
	WorkspacesTable.Annotation = &entsql.Annotation{
		Table: "workspaces",
	}
}
