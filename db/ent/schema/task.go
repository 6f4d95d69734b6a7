package schema

import (
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

type Task struct{ ent.Schema }

func (Task) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "task"},
	}
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("status").
			Default(string(constants.TaskStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.TaskStatusPending),
				string(constants.TaskStatusProcessing),
				string(constants.TaskStatusCompleted),
				string(constants.TaskStatusFailed),
			)),
		field.String("document_kind").NotEmpty().
			Validate(utils.EnumValidator(constants.DocumentKinds...)),
		field.String("file_name").NotEmpty(),
		// set once before extraction, immutable after
		field.String("storage_key").Optional().Nillable(),
		field.String("callback_url").Optional().Nillable(),
		field.String("error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.UUID("document_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("tasks").
			Field("document_id").
			Unique(),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("document_id"),
	}
}
