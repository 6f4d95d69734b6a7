// Package pipeline runs the document processing flow for one task: fetch
// the stored blob, extract content, structure it with the language model,
// apply business rules, persist the document, and notify the callback URL.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"ai-doc-parser/constants"
	"ai-doc-parser/internal/common"
	"ai-doc-parser/internal/extract"
	"ai-doc-parser/internal/llm"
	"ai-doc-parser/internal/notify"
	"ai-doc-parser/internal/repository"
	"ai-doc-parser/internal/rules"
	"ai-doc-parser/internal/storage"
)

// Job carries everything a worker needs to process one task without
// re-reading the task row.
type Job struct {
	TaskID      uuid.UUID
	Kind        constants.DocumentKind
	FileName    string
	FileHash    string
	FileSize    int64
	ContentType string
	StorageKey  string
	CallbackURL string
}

type Processor struct {
	tasks     repository.TaskRepository
	documents repository.DocumentRepository
	blobs     storage.Gateway
	extractor *extract.Extractor
	model     llm.Structurer
	validator *rules.Validator
	notifier  *notify.Notifier
	logger    *slog.Logger
}

func NewProcessor(
	tasks repository.TaskRepository,
	documents repository.DocumentRepository,
	blobs storage.Gateway,
	extractor *extract.Extractor,
	model llm.Structurer,
	validator *rules.Validator,
	notifier *notify.Notifier,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		tasks:     tasks,
		documents: documents,
		blobs:     blobs,
		extractor: extractor,
		model:     model,
		validator: validator,
		notifier:  notifier,
		logger:    logger,
	}
}

// Process drives one task from pending to a terminal state. Failures mark
// the task failed and still fire the callback; the returned error is for
// worker logging only.
func (p *Processor) Process(ctx context.Context, job Job) error {
	start := time.Now()
	log := p.logger.With("task_id", job.TaskID, "kind", job.Kind, "file", job.FileName)
	log.Info("pipeline.start")

	if err := p.tasks.MarkProcessing(ctx, job.TaskID); err != nil {
		// Typically a duplicate enqueue racing a finished task. Nothing to do.
		log.Warn("pipeline.claim_failed", "error", err)
		return err
	}

	doc, err := p.run(ctx, job)
	if err != nil {
		log.Error("pipeline.failed",
			"error", err,
			"code", common.PipelineErrorCode(err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		message := fmt.Sprintf("%s: %v", common.PipelineErrorCode(err), err)
		if markErr := p.tasks.MarkFailed(ctx, job.TaskID, message); markErr != nil {
			log.Error("pipeline.mark_failed_error", "error", markErr)
		}
		p.enqueueCallback(log, job, map[string]any{
			"task_id": job.TaskID.String(),
			"status":  string(constants.TaskStatusFailed),
			"error":   message,
		})
		return err
	}

	if err := p.tasks.MarkCompleted(ctx, job.TaskID, doc.id); err != nil {
		log.Error("pipeline.mark_completed_error", "error", err)
		return err
	}

	log.Info("pipeline.ok",
		"document_id", doc.id,
		"method", doc.method,
		"is_valid", doc.report.IsValid,
		"warnings", len(doc.report.Warnings),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	p.enqueueCallback(log, job, completedPayload(job, doc))
	return nil
}

type processedDoc struct {
	id        uuid.UUID
	extracted json.RawMessage
	report    *rules.Report
	method    string
}

func (p *Processor) run(ctx context.Context, job Job) (*processedDoc, error) {
	content, err := p.blobs.Get(ctx, job.StorageKey)
	if err != nil {
		return nil, err
	}

	path, cleanup, err := writeTemp(content, job.FileName)
	if err != nil {
		return nil, common.WrapError(err, "stage blob to disk")
	}
	defer cleanup()

	ext := constants.NormalizeExt(filepath.Ext(job.FileName))
	extracted, err := p.extractor.Extract(ctx, constants.MapExtToFormat(ext), ext, path)
	if err != nil {
		return nil, err
	}

	structured, err := p.model.Structure(ctx, llm.StructureRequest{
		Kind:     job.Kind,
		Text:     extracted.Text,
		Tables:   extracted.Tables,
		FileName: job.FileName,
		Pages:    extracted.Pages,
		Method:   extracted.Method,
	})
	if err != nil {
		return nil, err
	}

	report := p.validator.Validate(job.Kind, structured)
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, common.WrapError(err, "marshal validation report")
	}

	var ocrText string
	if extracted.Method == "pdf-ocr" {
		ocrText = extracted.Text
	}
	doc, err := p.documents.Save(ctx, repository.SaveDocumentParams{
		FileHash:         job.FileHash,
		FileName:         job.FileName,
		FileSize:         job.FileSize,
		ContentType:      job.ContentType,
		Kind:             job.Kind,
		StorageKey:       job.StorageKey,
		ExtractedData:    structured,
		ValidationStatus: reportJSON,
		OCRText:          ocrText,
	})
	if err != nil {
		return nil, common.WrapError(err, "persist document")
	}

	return &processedDoc{
		id:        doc.ID,
		extracted: structured,
		report:    report,
		method:    extracted.Method,
	}, nil
}

func (p *Processor) enqueueCallback(log *slog.Logger, job Job, payload map[string]any) {
	if p.notifier == nil || job.CallbackURL == "" {
		return
	}
	if err := p.notifier.Enqueue(notify.Delivery{
		TaskID:  job.TaskID.String(),
		URL:     job.CallbackURL,
		Payload: payload,
	}); err != nil {
		log.Error("pipeline.callback_enqueue_failed", "error", err)
	}
}

// completedPayload flattens the extracted fields into the callback body so
// subscribers read values directly, with task metadata alongside.
func completedPayload(job Job, doc *processedDoc) map[string]any {
	payload := map[string]any{}
	var fields map[string]any
	if err := json.Unmarshal(doc.extracted, &fields); err == nil {
		for k, v := range fields {
			payload[k] = v
		}
	}
	payload["task_id"] = job.TaskID.String()
	payload["status"] = string(constants.TaskStatusCompleted)
	payload["file_name"] = job.FileName
	payload["storage_key"] = job.StorageKey
	payload["validation_status"] = doc.report
	return payload
}

func writeTemp(content []byte, fileName string) (string, func(), error) {
	f, err := os.CreateTemp("", "adp-doc-*"+filepath.Ext(fileName))
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }
	if _, err := f.Write(content); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
