package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ai-doc-parser/internal/common"
)

func (e *Extractor) extractWord(ctx context.Context, ext, path string) (Content, error) {
	method := "docx"
	if ext == "doc" {
		converted, cleanup, err := e.convertLegacy(ctx, path, "docx")
		if err != nil {
			return Content{}, common.WrapError(common.ErrUnreadableDocument, err.Error())
		}
		defer cleanup()
		path = converted
		method = "doc-convert"
	}

	paragraphs, tables, err := readDocx(path)
	if err != nil {
		return Content{}, common.WrapError(common.ErrUnreadableDocument, err.Error())
	}

	var b strings.Builder
	b.WriteString(strings.Join(paragraphs, "\n"))
	return Content{
		Text:   b.String(),
		Tables: tables,
		Pages:  1,
		Method: method,
	}, nil
}

// convertLegacy rewrites a pre-2007 Office file (.doc/.xls) into its OOXML
// equivalent with LibreOffice so the structural parsers can read it.
func (e *Extractor) convertLegacy(ctx context.Context, path, target string) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "adp-conv-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	_, errb, err := e.runner.Run(ctx, e.cfg.Soffice, "--headless", "--convert-to", target, "--outdir", tmpDir, path)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("soffice convert to %s: %v: %s", target, err, truncate(string(errb), 1<<10))
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(tmpDir, base+"."+target)
	if _, statErr := os.Stat(out); statErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("soffice produced no output: %v", statErr)
	}
	return out, cleanup, nil
}

// readDocx pulls paragraphs and tables out of word/document.xml. The walk is
// namespace-agnostic: WordprocessingML local names are stable (p, t, tbl, tr, tc).
func readDocx(path string) ([]string, []Table, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return nil, nil, fmt.Errorf("open document part: %w", err)
			}
			break
		}
	}
	if doc == nil {
		return nil, nil, fmt.Errorf("docx has no word/document.xml part")
	}
	defer doc.Close()

	return walkDocumentXML(doc)
}

func walkDocumentXML(r io.Reader) ([]string, []Table, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		tables     []Table

		para     strings.Builder
		cell     strings.Builder
		row      []string
		table    *Table
		inText   bool
		inTable  bool
		tableRow bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				inTable = true
				table = &Table{}
			case "tr":
				tableRow = true
				row = nil
			case "tc":
				cell.Reset()
			case "t":
				inText = true
			case "br", "cr":
				if inTable {
					cell.WriteString(" ")
				} else {
					para.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "tc":
				row = append(row, strings.TrimSpace(cell.String()))
			case "tr":
				if tableRow && table != nil {
					table.Rows = append(table.Rows, row)
				}
				tableRow = false
			case "tbl":
				if table != nil && len(table.Rows) > 0 {
					tables = append(tables, *table)
				}
				table = nil
				inTable = false
			case "p":
				if !inTable {
					if s := strings.TrimSpace(para.String()); s != "" {
						paragraphs = append(paragraphs, s)
					}
					para.Reset()
				}
			}
		case xml.CharData:
			if !inText {
				continue
			}
			if inTable {
				cell.Write(t)
			} else {
				para.Write(t)
			}
		}
	}
	return paragraphs, tables, nil
}
