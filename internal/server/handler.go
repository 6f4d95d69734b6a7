// Package server exposes the HTTP API: document submission, task polling,
// and the service banner. Heavy work happens in the pipeline workers; the
// handlers validate, store, record, enqueue, and return.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ai-doc-parser/constants"
	"ai-doc-parser/internal/common"
	"ai-doc-parser/internal/pipeline"
	"ai-doc-parser/internal/repository"
	"ai-doc-parser/internal/storage"
	"ai-doc-parser/internal/validate"
)

// Enqueuer hands accepted jobs to the worker pool.
type Enqueuer interface {
	Enqueue(ctx context.Context, job pipeline.Job) error
}

type Handler struct {
	tasks     repository.TaskRepository
	documents repository.DocumentRepository
	blobs     storage.Gateway
	queue     Enqueuer
	log       *slog.Logger
}

func NewHandler(
	tasks repository.TaskRepository,
	documents repository.DocumentRepository,
	blobs storage.Gateway,
	queue Enqueuer,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		tasks:     tasks,
		documents: documents,
		blobs:     blobs,
		queue:     queue,
		log:       logger,
	}
}

// ProcessDocument accepts a general contract document.
func (h *Handler) ProcessDocument(c *gin.Context) {
	h.process(c, constants.KindContract)
}

// ProcessPBMDocument accepts a pharmacy benefits management contract.
func (h *Handler) ProcessPBMDocument(c *gin.Context) {
	h.process(c, constants.KindPBMContract)
}

func (h *Handler) process(c *gin.Context, kind constants.DocumentKind) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	detected, verr := validate.Check(header.Filename, content)
	if verr != nil {
		h.log.Warn("upload rejected",
			"file", header.Filename, "kind", kind,
			"reason", verr.Kind, "detail", verr.Detail,
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Detail, "reason": string(verr.Kind)})
		return
	}

	hash := storage.HashContent(content)
	callbackURL := c.PostForm("callback_url")

	// Hash dedupe: identical bytes were already processed, so the answer is
	// immediate. A fresh task still gets created so callers have an ID to poll.
	if doc, err := h.documents.GetByHash(c.Request.Context(), hash); err == nil {
		task, err := h.tasks.Create(c.Request.Context(), repository.CreateTaskParams{
			Kind:        kind,
			FileName:    header.Filename,
			StorageKey:  doc.StorageKey,
			CallbackURL: callbackURL,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
			return
		}
		if err := h.tasks.MarkCompleted(c.Request.Context(), task.ID, doc.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"task_id": task.ID,
			"status":  constants.TaskStatusCompleted,
			"message": "Document already processed",
		})
		return
	} else if !errors.Is(err, common.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check for existing document"})
		return
	}

	ext := constants.NormalizeExt(filepath.Ext(header.Filename))
	key := storage.BlobKey(kind, hash, ext)
	if _, err := h.blobs.Put(c.Request.Context(), key, content, detected.ContentType); err != nil {
		h.log.Error("blob upload failed", "key", key, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), repository.CreateTaskParams{
		Kind:        kind,
		FileName:    header.Filename,
		StorageKey:  key,
		CallbackURL: callbackURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	if err := h.queue.Enqueue(c.Request.Context(), pipeline.Job{
		TaskID:      task.ID,
		Kind:        kind,
		FileName:    header.Filename,
		FileHash:    hash,
		FileSize:    int64(len(content)),
		ContentType: detected.ContentType,
		StorageKey:  key,
		CallbackURL: callbackURL,
	}); err != nil {
		h.log.Error("enqueue failed", "task_id", task.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue document for processing"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task_id": task.ID,
		"status":  constants.TaskStatusPending,
		"message": "Document processing started",
	})
}

// GetTask returns the state of a task, including the document payload once
// processing has completed.
func (h *Handler) GetTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task " + c.Param("task_id") + " not found"})
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task " + id.String() + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load task"})
		return
	}

	resp := gin.H{
		"task_id":    task.ID,
		"status":     task.Status,
		"created_at": task.CreatedAt,
		"updated_at": task.UpdatedAt,
	}
	if task.Error != nil {
		resp["error"] = *task.Error
	}

	if task.Status == string(constants.TaskStatusCompleted) && task.DocumentID != nil {
		doc, err := h.documents.GetByID(c.Request.Context(), *task.DocumentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load document"})
			return
		}
		resp["document_id"] = doc.ID
		resp["extracted_data"] = doc.ExtractedData
		resp["validation_status"] = doc.ValidationStatus
		resp["storage_key"] = doc.StorageKey
	}

	c.JSON(http.StatusOK, resp)
}

// Welcome is the service banner.
func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to AI Doc Parser API",
		"status":  "active",
		"version": "1.0.1",
	})
}
