package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ReviewItem struct{ ent.Schema }

func (ReviewItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "review_items"},
	}
}

func (ReviewItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("file_path").NotEmpty(),
		field.String("reason").NotEmpty(),
		field.JSON("partial_data", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ReviewItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY review items -> ONE workspace (FK: review_items.workspace_id)
		edge.From("workspace", Workspace.Type).
			Ref("review_items").
			Field("workspace_id").
			Required().
			Unique(),
	}
}

func (ReviewItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "created_at"),
	}
}
