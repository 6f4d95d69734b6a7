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

	"ai-doc-parser/constants"
	"ai-doc-parser/db/ent/schema/utils"

	"github.com/google/uuid"
)

// Document is a processed upload, content-addressed by sha-256 so identical
// uploads share one row (and one blob).
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("file_hash").NotEmpty().Unique().Immutable(),
		field.String("file_name").NotEmpty(),
		field.Int64("file_size").Default(0),
		field.String("content_type").Optional().Nillable(),
		field.String("document_kind").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentKinds...)),
		field.String("storage_key").NotEmpty(),
		field.JSON("extracted_data", json.RawMessage{}).Optional(),
		field.JSON("validation_status", json.RawMessage{}).Optional(),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_hash"),
	}
}
