package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Customer struct{ ent.Schema }

func (Customer) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "customers"},
	}
}

func (Customer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("address").Optional().Nillable(),
		field.String("vat_number").Optional().Nillable(),
		field.String("email").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Customer) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY customers -> ONE workspace (FK: customers.workspace_id)
		edge.From("workspace", Workspace.Type).
			Ref("customers").
			Field("workspace_id").
			Required().
			Unique(),
		// ONE customer -> MANY invoices
		edge.To("invoices", Invoice.Type),
	}
}

func (Customer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "name"),
		index.Fields("workspace_id", "vat_number"),
	}
}
