package extract

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"ai-doc-parser/internal/common"
)

func (e *Extractor) extractExcel(ctx context.Context, ext, path string) (Content, error) {
	method := "xlsx"
	if ext == "xls" {
		converted, cleanup, err := e.convertLegacy(ctx, path, "xlsx")
		if err != nil {
			return Content{}, common.WrapError(common.ErrUnreadableDocument, err.Error())
		}
		defer cleanup()
		path = converted
		method = "xls-convert"
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Content{}, common.WrapError(common.ErrUnreadableDocument, fmt.Sprintf("open workbook: %v", err))
	}
	defer f.Close()

	var tables []Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return Content{}, common.WrapError(common.ErrUnreadableDocument, fmt.Sprintf("read sheet %q: %v", sheet, err))
		}
		if len(rows) == 0 {
			continue
		}
		tables = append(tables, Table{Name: sheet, Rows: rows})
	}
	if len(tables) == 0 {
		return Content{}, common.WrapError(common.ErrUnreadableDocument, "workbook has no data")
	}

	return Content{
		Text:   tablesToText(tables),
		Tables: tables,
		Pages:  len(tables),
		Method: method,
	}, nil
}

func (e *Extractor) extractCSV(path string) (Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return Content{}, common.WrapError(common.ErrUnreadableDocument, err.Error())
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Content{}, common.WrapError(common.ErrUnreadableDocument, fmt.Sprintf("parse csv: %v", err))
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return Content{}, common.WrapError(common.ErrUnreadableDocument, "csv has no records")
	}

	tables := []Table{{Rows: rows}}
	return Content{
		Text:   tablesToText(tables),
		Tables: tables,
		Pages:  1,
		Method: "csv",
	}, nil
}

// tablesToText renders grids as tab-separated lines so table content is
// visible to the language model alongside free text.
func tablesToText(tables []Table) string {
	var b strings.Builder
	for i, t := range tables {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if t.Name != "" {
			b.WriteString("Sheet: " + t.Name + "\n")
		}
		for _, row := range t.Rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteString("\n")
		}
	}
	return b.String()
}
