package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"ai-doc-parser/constants"
	"ai-doc-parser/internal/common"
)

type fakeRunner struct {
	run func(name string, args []string) ([]byte, []byte, error)
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	return f.run(name, args)
}

func newTestExtractor(t *testing.T, run func(name string, args []string) ([]byte, []byte, error)) *Extractor {
	t.Helper()
	e := NewExtractor(Config{}, nil)
	if run != nil {
		e.runner = &fakeRunner{run: run}
	}
	return e
}

func TestExtractPDFDirectText(t *testing.T) {
	direct := "MASTER SERVICES AGREEMENT\nThis agreement is made between Acme Corp and Example LLC.\n\fSection 2. Fees.\nThe commitment fee is $10,000.00.\n"
	e := newTestExtractor(t, func(name string, args []string) ([]byte, []byte, error) {
		if strings.Contains(name, "pdftotext") {
			return []byte(direct), nil, nil
		}
		t.Fatalf("unexpected command %q", name)
		return nil, nil, nil
	})

	res, err := e.Extract(context.Background(), constants.PDF, "pdf", "/tmp/contract.pdf")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q, want pdf-text", res.Method)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
	if !strings.Contains(res.Text, "commitment fee") && !strings.Contains(res.Text, "commitment") {
		t.Errorf("text lost content: %q", res.Text)
	}
}

func TestExtractPDFScannedFallsBackToOCR(t *testing.T) {
	var sawTesseract int
	e := newTestExtractor(t, func(name string, args []string) ([]byte, []byte, error) {
		switch {
		case strings.Contains(name, "pdftotext"):
			// three pages, essentially no text layer
			return []byte(" \f \f "), nil, nil
		case strings.Contains(name, "pdftoppm"):
			prefix := args[len(args)-1]
			for _, n := range []string{"-1.png", "-2.png", "-3.png"} {
				if err := os.WriteFile(prefix+n, []byte("png"), 0o644); err != nil {
					return nil, nil, err
				}
			}
			return nil, nil, nil
		case strings.Contains(name, "tesseract"):
			sawTesseract++
			return []byte("SUPPLY AGREEMENT dated Janu-\nary 2, 2020 between parties."), nil, nil
		}
		return nil, nil, errors.New("unexpected command " + name)
	})

	res, err := e.Extract(context.Background(), constants.PDF, "pdf", "/tmp/scan.pdf")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if res.Method != "pdf-ocr" {
		t.Errorf("method = %q, want pdf-ocr", res.Method)
	}
	if res.Pages != 3 || sawTesseract != 3 {
		t.Errorf("pages = %d, tesseract calls = %d, want 3/3", res.Pages, sawTesseract)
	}
	if strings.TrimSpace(res.Text) == "" {
		t.Error("ocr text is empty")
	}
	if strings.Contains(res.Text, "Janu-\nary") {
		t.Error("hyphenated line break not joined")
	}
}

func TestExtractPDFOCREngineDown(t *testing.T) {
	e := newTestExtractor(t, func(name string, args []string) ([]byte, []byte, error) {
		switch {
		case strings.Contains(name, "pdftotext"):
			return []byte(""), nil, nil
		case strings.Contains(name, "pdftoppm"):
			return nil, []byte("cannot render"), errors.New("exit status 1")
		}
		return nil, nil, nil
	})

	_, err := e.Extract(context.Background(), constants.PDF, "pdf", "/tmp/scan.pdf")
	if !errors.Is(err, common.ErrOCRUnavailable) {
		t.Fatalf("Extract() error = %v, want ErrOCRUnavailable", err)
	}
}

func writeDocx(t *testing.T, dir string) string {
	t.Helper()
	const documentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Service Agreement</w:t></w:r></w:p>
    <w:p><w:r><w:t>Customer: </w:t></w:r><w:r><w:t>Acme Corp</w:t></w:r></w:p>
    <w:tbl>
      <w:tr><w:tc><w:p><w:r><w:t>Fee</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>10000</w:t></w:r></w:p></w:tc></w:tr>
      <w:tr><w:tc><w:p><w:r><w:t>Credit</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>2500</w:t></w:r></w:p></w:tc></w:tr>
    </w:tbl>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		"[Content_Types].xml": `<Types/>`,
		"word/document.xml":   documentXML,
	} {
		f, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := f.Write([]byte(body)); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	path := filepath.Join(dir, "agreement.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	return path
}

func TestExtractDocx(t *testing.T) {
	path := writeDocx(t, t.TempDir())
	e := newTestExtractor(t, nil)

	res, err := e.Extract(context.Background(), constants.Word, "docx", path)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if res.Method != "docx" {
		t.Errorf("method = %q, want docx", res.Method)
	}
	if !strings.Contains(res.Text, "Service Agreement") || !strings.Contains(res.Text, "Customer: Acme Corp") {
		t.Errorf("paragraph text missing: %q", res.Text)
	}
	if len(res.Tables) != 1 || len(res.Tables[0].Rows) != 2 {
		t.Fatalf("tables = %+v, want one table with two rows", res.Tables)
	}
	if res.Tables[0].Rows[0][0] != "Fee" || res.Tables[0].Rows[0][1] != "10000" {
		t.Errorf("first row = %v", res.Tables[0].Rows[0])
	}
}

func TestExtractXlsx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fees.xlsx")

	f := excelize.NewFile()
	must := func(err error) {
		if err != nil {
			t.Fatalf("build xlsx: %v", err)
		}
	}
	must(f.SetCellValue("Sheet1", "A1", "Item"))
	must(f.SetCellValue("Sheet1", "B1", "Amount"))
	must(f.SetCellValue("Sheet1", "A2", "CommitmentFee"))
	must(f.SetCellValue("Sheet1", "B2", 10000))
	must(f.SaveAs(path))

	e := newTestExtractor(t, nil)
	res, err := e.Extract(context.Background(), constants.Excel, "xlsx", path)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if res.Method != "xlsx" {
		t.Errorf("method = %q, want xlsx", res.Method)
	}
	if len(res.Tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(res.Tables))
	}
	if !strings.Contains(res.Text, "CommitmentFee") {
		t.Errorf("text missing cell content: %q", res.Text)
	}
}

func TestExtractCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.csv")
	if err := os.WriteFile(path, []byte("customer,fee\nAcme,10000\nGlobex,2500\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	e := newTestExtractor(t, nil)
	res, err := e.Extract(context.Background(), constants.CSV, "csv", path)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if res.Method != "csv" {
		t.Errorf("method = %q, want csv", res.Method)
	}
	if len(res.Tables[0].Rows) != 3 {
		t.Errorf("rows = %d, want 3", len(res.Tables[0].Rows))
	}
}

func TestExtractUnreadableWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	e := newTestExtractor(t, nil)
	_, err := e.Extract(context.Background(), constants.Excel, "xlsx", path)
	if !errors.Is(err, common.ErrUnreadableDocument) {
		t.Fatalf("Extract() error = %v, want ErrUnreadableDocument", err)
	}
}
