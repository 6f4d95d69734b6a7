// runextract runs validation, extraction, structuring, and rule checks on a
// local file without touching the task store. Useful for tuning prompts and
// OCR settings against real documents.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ai-doc-parser/constants"
	"ai-doc-parser/internal/extract"
	"ai-doc-parser/internal/llm"
	"ai-doc-parser/internal/llm/openai"
	"ai-doc-parser/internal/rules"
	"ai-doc-parser/internal/validate"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage", "cmd", "runextract <file> [contract|pbm_contract]")
		os.Exit(2)
	}
	path := os.Args[1]
	kind := constants.KindContract
	if len(os.Args) == 3 {
		switch os.Args[2] {
		case string(constants.KindContract):
		case string(constants.KindPBMContract):
			kind = constants.KindPBMContract
		default:
			logger.Error("unknown document kind", "arg", os.Args[2])
			os.Exit(2)
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	detected, verr := validate.Check(filepath.Base(path), content)
	if verr != nil {
		logger.Error("validation failed", "reason", verr.Kind, "detail", verr.Detail)
		os.Exit(1)
	}
	logger.Info("validation ok", "format", detected.Format, "content_type", detected.ContentType)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	extractor := extract.NewExtractor(extract.Config{}, logger)
	extracted, err := extractor.Extract(ctx, detected.Format, detected.Ext, path)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}
	logger.Info("extraction ok",
		"method", extracted.Method,
		"pages", extracted.Pages,
		"text_len", len(extracted.Text),
		"tables", len(extracted.Tables),
	)

	model := openai.NewClient(openai.Config{}, logger)
	structured, err := model.Structure(ctx, llm.StructureRequest{
		Kind:     kind,
		Text:     extracted.Text,
		Tables:   extracted.Tables,
		FileName: filepath.Base(path),
		Pages:    extracted.Pages,
		Method:   extracted.Method,
	})
	if err != nil {
		logger.Error("structuring failed", "error", err)
		os.Exit(1)
	}

	report := rules.NewValidator().Validate(kind, structured)

	out, err := json.MarshalIndent(map[string]any{
		"extracted_data":    json.RawMessage(structured),
		"validation_status": report,
	}, "", "  ")
	if err != nil {
		logger.Error("marshal output", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
