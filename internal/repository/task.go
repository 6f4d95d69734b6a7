package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"ai-doc-parser/constants"
	"ai-doc-parser/gen/ent"
	"ai-doc-parser/gen/ent/task"
	"ai-doc-parser/internal/common"
)

// CreateTaskParams is everything known about a task at submission time.
type CreateTaskParams struct {
	Kind        constants.DocumentKind
	FileName    string
	StorageKey  string
	CallbackURL string
}

// TaskRepository is the durable task table. A single pipeline instance is the
// only writer for a given task_id; readers poll concurrently. Terminal states
// are enforced with conditional updates so a late writer can never resurrect
// a finished task.
type TaskRepository interface {
	Create(ctx context.Context, p CreateTaskParams) (*ent.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.Task, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, documentID uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
}

type taskRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTaskRepository(entc *ent.Client, log *slog.Logger) TaskRepository {
	return &taskRepo{ent: entc, log: log}
}

func (r *taskRepo) Create(ctx context.Context, p CreateTaskParams) (*ent.Task, error) {
	create := r.ent.Task.
		Create().
		SetDocumentKind(string(p.Kind)).
		SetFileName(p.FileName).
		SetStorageKey(p.StorageKey)
	if p.CallbackURL != "" {
		create = create.SetCallbackURL(p.CallbackURL)
	}
	t, err := create.Save(ctx)
	if err != nil {
		r.log.Error("task create failed", "kind", p.Kind, "err", err)
		return nil, err
	}
	r.log.Info("task created", "task_id", t.ID, "kind", p.Kind, "file", p.FileName)
	return t, nil
}

func (r *taskRepo) Get(ctx context.Context, id uuid.UUID) (*ent.Task, error) {
	t, err := r.ent.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *taskRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Task.
		Update().
		Where(task.IDEQ(id), task.StatusEQ(string(constants.TaskStatusPending))).
		SetStatus(string(constants.TaskStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("task mark processing failed", "task_id", id, "err", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("task %s: invalid transition to processing", id)
	}
	return nil
}

func (r *taskRepo) MarkCompleted(ctx context.Context, id uuid.UUID, documentID uuid.UUID) error {
	n, err := r.ent.Task.
		Update().
		Where(task.IDEQ(id), task.StatusIn(
			string(constants.TaskStatusPending),
			string(constants.TaskStatusProcessing),
		)).
		SetStatus(string(constants.TaskStatusCompleted)).
		SetDocumentID(documentID).
		Save(ctx)
	if err != nil {
		r.log.Error("task mark completed failed", "task_id", id, "err", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("task %s: invalid transition to completed", id)
	}
	r.log.Info("task completed", "task_id", id, "document_id", documentID)
	return nil
}

func (r *taskRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	n, err := r.ent.Task.
		Update().
		Where(task.IDEQ(id), task.StatusIn(
			string(constants.TaskStatusPending),
			string(constants.TaskStatusProcessing),
		)).
		SetStatus(string(constants.TaskStatusFailed)).
		SetError(message).
		Save(ctx)
	if err != nil {
		r.log.Error("task mark failed failed", "task_id", id, "err", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("task %s: invalid transition to failed", id)
	}
	r.log.Warn("task failed", "task_id", id, "error", message)
	return nil
}
