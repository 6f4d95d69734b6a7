// Package extract turns a validated document into a normalized text+table
// representation. Extraction is all-or-nothing: a partial result is never
// returned.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ai-doc-parser/constants"
	"ai-doc-parser/internal/common"
)

// Table is a normalized grid extracted from a document.
type Table struct {
	Name string     `json:"name,omitempty"`
	Rows [][]string `json:"rows"`
}

// Content is the extraction result handed to the structuring engine.
type Content struct {
	Text     string
	Tables   []Table
	Pages    int
	Method   string // "pdf-text" | "pdf-ocr" | "docx" | "doc-convert" | "xlsx" | "xls-convert" | "csv"
	Duration time.Duration
	Warnings []string
}

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Soffice   string // binary name or absolute path; if empty -> "soffice"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	// A PDF whose direct text averages fewer characters per page than this
	// is treated as scanned and routed through OCR.
	MinCharsPerPage int // default 16
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Soffice == "" {
		cfg.Soffice = "soffice"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinCharsPerPage <= 0 {
		cfg.MinCharsPerPage = 16
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on the validated format.
func (e *Extractor) Extract(ctx context.Context, format constants.FileFormat, ext, path string) (Content, error) {
	start := time.Now()
	e.logger.Debug("extract.start", "path", path, "format", format, "ext", ext)

	var (
		res Content
		err error
	)
	switch format {
	case constants.PDF:
		res, err = e.extractPDF(ctx, path)
	case constants.Word:
		res, err = e.extractWord(ctx, ext, path)
	case constants.Excel:
		res, err = e.extractExcel(ctx, ext, path)
	case constants.CSV:
		res, err = e.extractCSV(path)
	default:
		return Content{}, common.WrapError(common.ErrUnreadableDocument, fmt.Sprintf("unsupported format: %q", format))
	}
	if err != nil {
		e.logger.Error("extract.failed", "path", path, "format", format, "error", err)
		return Content{}, err
	}

	res.Duration = time.Since(start)
	e.logger.Info("extract.ok",
		"path", path,
		"method", res.Method,
		"pages", res.Pages,
		"text_len", len(res.Text),
		"tables", len(res.Tables),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
