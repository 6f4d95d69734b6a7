// Code generated by ent, DO NOT EDIT.

package ent

import (
	"ai-doc-parser/db/ent/schema"
	"ai-doc-parser/gen/ent/document"
	"ai-doc-parser/gen/ent/task"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileHash is the schema descriptor for file_hash field.
	documentDescFileHash := documentFields[1].Descriptor()
	// document.FileHashValidator is a validator for the "file_hash" field. It is called by the builders before save.
	document.FileHashValidator = documentDescFileHash.Validators[0].(func(string) error)
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[2].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[3].Descriptor()
	// document.DefaultFileSize holds the default value on creation for the file_size field.
	document.DefaultFileSize = documentDescFileSize.Default.(int64)
	// documentDescDocumentKind is the schema descriptor for document_kind field.
	documentDescDocumentKind := documentFields[5].Descriptor()
	// document.DocumentKindValidator is a validator for the "document_kind" field. It is called by the builders before save.
	document.DocumentKindValidator = func() func(string) error {
		validators := documentDescDocumentKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_kind string) error {
			for _, fn := range fns {
				if err := fn(document_kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStorageKey is the schema descriptor for storage_key field.
	documentDescStorageKey := documentFields[6].Descriptor()
	// document.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	document.StorageKeyValidator = documentDescStorageKey.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[10].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescStatus is the schema descriptor for status field.
	taskDescStatus := taskFields[1].Descriptor()
	// task.DefaultStatus holds the default value on creation for the status field.
	task.DefaultStatus = taskDescStatus.Default.(string)
	// task.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	task.StatusValidator = taskDescStatus.Validators[0].(func(string) error)
	// taskDescDocumentKind is the schema descriptor for document_kind field.
	taskDescDocumentKind := taskFields[2].Descriptor()
	// task.DocumentKindValidator is a validator for the "document_kind" field. It is called by the builders before save.
	task.DocumentKindValidator = func() func(string) error {
		validators := taskDescDocumentKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_kind string) error {
			for _, fn := range fns {
				if err := fn(document_kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescFileName is the schema descriptor for file_name field.
	taskDescFileName := taskFields[3].Descriptor()
	// task.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	task.FileNameValidator = taskDescFileName.Validators[0].(func(string) error)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[8].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[9].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
}
