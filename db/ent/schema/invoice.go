package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.UUID("customer_id", uuid.UUID{}),
		field.String("invoice_number").NotEmpty(),
		field.Time("invoice_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Enum("invoice_type").Values("income", "expense").Default("expense"),
		field.Float("amount_excl_vat").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("amount_incl_vat").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("vat_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("vat_rate").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.JSON("line_items", json.RawMessage{}).Optional(),
		field.String("file_path").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE workspace (FK: invoices.workspace_id)
		edge.From("workspace", Workspace.Type).
			Ref("invoices").
			Field("workspace_id").
			Required().
			Unique(),
		// MANY invoices -> ONE customer (FK: invoices.customer_id)
		edge.From("customer", Customer.Type).
			Ref("invoices").
			Field("customer_id").
			Required().
			Unique(),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "invoice_number").Unique(),
		index.Fields("workspace_id", "customer_id", "invoice_date"),
	}
}
