// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentColumns holds the columns for the "document" table.
	DocumentColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_hash", Type: field.TypeString, Unique: true},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64, Default: 0},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "document_kind", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "validation_status", Type: field.TypeJSON, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentTable holds the schema information for the "document" table.
	DocumentTable = &schema.Table{
		Name:       "document",
		Columns:    DocumentColumns,
		PrimaryKey: []*schema.Column{DocumentColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_file_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentColumns[1]},
			},
		},
	}
	// TaskColumns holds the columns for the "task" table.
	TaskColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "document_kind", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "storage_key", Type: field.TypeString, Nullable: true},
		{Name: "callback_url", Type: field.TypeString, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
	}
	// TaskTable holds the schema information for the "task" table.
	TaskTable = &schema.Table{
		Name:       "task",
		Columns:    TaskColumns,
		PrimaryKey: []*schema.Column{TaskColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_document_tasks",
				Columns:    []*schema.Column{TaskColumns[9]},
				RefColumns: []*schema.Column{DocumentColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskColumns[1], TaskColumns[7]},
			},
			{
				Name:    "task_document_id",
				Unique:  false,
				Columns: []*schema.Column{TaskColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentTable,
		TaskTable,
	}
)

func init() {
	DocumentTable.Annotation = &entsql.Annotation{
		Table: "document",
	}
	TaskTable.ForeignKeys[0].RefTable = DocumentTable
	TaskTable.Annotation = &entsql.Annotation{
		Table: "task",
	}
}
