package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"ai-doc-parser/constants"
	"ai-doc-parser/gen/ent"
	"ai-doc-parser/gen/ent/document"
	"ai-doc-parser/internal/common"
)

// SaveDocumentParams holds the final output of a successful pipeline run.
type SaveDocumentParams struct {
	FileHash         string
	FileName         string
	FileSize         int64
	ContentType      string
	Kind             constants.DocumentKind
	StorageKey       string
	ExtractedData    json.RawMessage
	ValidationStatus json.RawMessage
	OCRText          string
}

// DocumentRepository stores processed documents keyed by content hash.
type DocumentRepository interface {
	GetByHash(ctx context.Context, hash string) (*ent.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	Save(ctx context.Context, p SaveDocumentParams) (*ent.Document, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) GetByHash(ctx context.Context, hash string) (*ent.Document, error) {
	d, err := r.ent.Document.
		Query().
		Where(document.FileHashEQ(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	d, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *documentRepo) Save(ctx context.Context, p SaveDocumentParams) (*ent.Document, error) {
	create := r.ent.Document.
		Create().
		SetFileHash(p.FileHash).
		SetFileName(p.FileName).
		SetFileSize(p.FileSize).
		SetDocumentKind(string(p.Kind)).
		SetStorageKey(p.StorageKey).
		SetExtractedData(p.ExtractedData).
		SetValidationStatus(p.ValidationStatus)
	if p.ContentType != "" {
		create = create.SetContentType(p.ContentType)
	}
	if p.OCRText != "" {
		create = create.SetOcrText(p.OCRText)
	}
	d, err := create.Save(ctx)
	if err != nil {
		r.log.Error("document save failed", "hash", p.FileHash, "err", err)
		return nil, err
	}
	r.log.Info("document saved", "document_id", d.ID, "hash", p.FileHash, "kind", p.Kind)
	return d, nil
}
