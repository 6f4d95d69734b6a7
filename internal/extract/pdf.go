package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ai-doc-parser/internal/common"
)

func (e *Extractor) extractPDF(ctx context.Context, path string) (Content, error) {
	text, pages, warns, err := e.pdfToText(ctx, path)
	if err != nil {
		return Content{}, common.WrapError(common.ErrUnreadableDocument, fmt.Sprintf("pdftotext: %v", err))
	}

	// Scanned PDFs come back with a page count but almost no text.
	if e.looksScanned(text, pages) {
		e.logger.Info("extract.pdf.ocr_fallback", "path", path, "pages", pages, "direct_chars", len(strings.TrimSpace(text)))
		ocrText, ocrPages, ocrWarns, err := e.pdfToOCR(ctx, path)
		if err != nil {
			return Content{}, common.WrapError(common.ErrOCRUnavailable, err.Error())
		}
		return Content{
			Text:     ocrText,
			Pages:    ocrPages,
			Method:   "pdf-ocr",
			Warnings: append(warns, ocrWarns...),
		}, nil
	}

	return Content{Text: text, Pages: pages, Method: "pdf-text", Warnings: warns}, nil
}

func (e *Extractor) looksScanned(text string, pages int) bool {
	if pages <= 0 {
		return false
	}
	return len(strings.TrimSpace(text)) < pages*e.cfg.MinCharsPerPage
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "adp-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("extract.pdf.tmp_cleanup_failed", "dir", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	var b strings.Builder
	var warns []string
	ocrOK := 0
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		ocrOK++
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	if ocrOK == 0 {
		return "", 0, warns, fmt.Errorf("ocr failed on all %d pages", len(matches))
	}
	return b.String(), len(matches), warns, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, imgPath string) (string, []string, error) {
	args := []string{imgPath, "stdout", "-l", e.cfg.TesseractLang}
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	// de-hyphenate line breaks the way scanners split words
	txt := strings.ReplaceAll(string(out), "-\n", "")
	return txt, nil, nil
}
