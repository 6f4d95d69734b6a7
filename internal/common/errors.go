package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error kinds. Each terminal-failing stage wraps its cause in one of
// these so the orchestrator can record a stable code on the task row.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnreadableDocument = errors.New("unreadable document")
	ErrOCRUnavailable     = errors.New("ocr unavailable")
	ErrStructuringFailed  = errors.New("structuring failed")
	ErrNotFound           = errors.New("resource not found")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// PipelineErrorCode maps a pipeline error to the code stored on a failed task.
func PipelineErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrStorageUnavailable):
		return "STORAGE_UNAVAILABLE"
	case errors.Is(err, ErrUnreadableDocument):
		return "UNREADABLE_DOCUMENT"
	case errors.Is(err, ErrOCRUnavailable):
		return "OCR_UNAVAILABLE"
	case errors.Is(err, ErrStructuringFailed):
		return "STRUCTURING_FAILED"
	default:
		return "PIPELINE_ERROR"
	}
}
