package constants

// TaskStatus is the canonical status for rows in the task table.
type TaskStatus string

// Stable values (store these exact strings in DB).
const (
	TaskStatusPending    TaskStatus = "pending"    // created, not yet picked up
	TaskStatusProcessing TaskStatus = "processing" // pipeline running
	TaskStatusCompleted  TaskStatus = "completed"  // terminal success
	TaskStatusFailed     TaskStatus = "failed"     // terminal failure
)

// Terminal reports whether no further status transition is allowed.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// DocumentKind selects the extraction schema and prompt template for a task.
type DocumentKind string

const (
	KindContract    DocumentKind = "contract"
	KindPBMContract DocumentKind = "pbm_contract"
)

// DocumentKinds holds the allowed values for the document_kind field.
var DocumentKinds = []string{string(KindContract), string(KindPBMContract)}
