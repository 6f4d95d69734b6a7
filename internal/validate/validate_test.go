package validate

import (
	"archive/zip"
	"bytes"
	"testing"

	"ai-doc-parser/constants"
)

func minimalPDF() []byte {
	return []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
}

func zipWithPart(t *testing.T, parts ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, p := range parts {
		f, err := w.Create(p)
		if err != nil {
			t.Fatalf("create zip part: %v", err)
		}
		if _, err := f.Write([]byte("<x/>")); err != nil {
			t.Fatalf("write zip part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		wantKind ErrorKind // "" means expect success
		wantFmt  constants.FileFormat
	}{
		{
			name:     "valid pdf",
			filename: "contract.pdf",
			content:  minimalPDF(),
			wantFmt:  constants.PDF,
		},
		{
			name:     "unknown extension",
			filename: "malware.exe",
			content:  []byte("MZ....."),
			wantKind: UnsupportedExtension,
		},
		{
			name:     "exe renamed to pdf",
			filename: "contract.pdf",
			content:  []byte("MZ\x90\x00\x03\x00\x00\x00"),
			wantKind: InvalidSignature,
		},
		{
			name:     "empty pdf",
			filename: "empty.pdf",
			content:  nil,
			wantKind: EmptyFile,
		},
		{
			name:     "empty csv",
			filename: "empty.csv",
			content:  []byte{},
			wantKind: EmptyFile,
		},
		{
			name:     "pdf missing trailer",
			filename: "cut.pdf",
			content:  []byte("%PDF-1.4\nsome content with no end"),
			wantKind: CorruptContent,
		},
		{
			name:     "docx not a zip",
			filename: "report.docx",
			content:  []byte("this is not a zip archive at all"),
			wantKind: InvalidSignature,
		},
		{
			name:     "xlsx missing workbook part",
			filename: "sheet.xlsx",
			content:  nil, // filled below
			wantKind: CorruptContent,
		},
		{
			name:     "doc without ole header",
			filename: "old.doc",
			content:  []byte("plain text pretending to be doc"),
			wantKind: InvalidSignature,
		},
		{
			name:     "valid csv",
			filename: "rows.csv",
			content:  []byte("name,amount,date\nacme,10.00,2024-01-02\n"),
			wantFmt:  constants.CSV,
		},
		{
			name:     "binary csv",
			filename: "rows.csv",
			content:  []byte{'a', ',', 'b', '\n', 0x00, 0x01},
			wantKind: InvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := tt.content
			switch tt.name {
			case "xlsx missing workbook part":
				content = zipWithPart(t, "[Content_Types].xml")
			}

			det, verr := Check(tt.filename, content)
			if tt.wantKind == "" {
				if verr != nil {
					t.Fatalf("Check() unexpected error: %v", verr)
				}
				if det.Format != tt.wantFmt {
					t.Errorf("Check() format = %q, want %q", det.Format, tt.wantFmt)
				}
				return
			}
			if verr == nil {
				t.Fatalf("Check() expected %s error, got none", tt.wantKind)
			}
			if verr.Kind != tt.wantKind {
				t.Errorf("Check() kind = %s, want %s", verr.Kind, tt.wantKind)
			}
			if verr.Detail == "" {
				t.Errorf("Check() rejection has no detail")
			}
		})
	}
}

func TestCheckValidOOXML(t *testing.T) {
	docx := zipWithPart(t, "[Content_Types].xml", "word/document.xml")
	det, err := Check("report.docx", docx)
	if err != nil {
		t.Fatalf("Check(docx) error: %v", err)
	}
	if det.Format != constants.Word {
		t.Errorf("format = %q, want WORD", det.Format)
	}

	xlsx := zipWithPart(t, "[Content_Types].xml", "xl/workbook.xml")
	det, err = Check("sheet.xlsx", xlsx)
	if err != nil {
		t.Fatalf("Check(xlsx) error: %v", err)
	}
	if det.Format != constants.Excel {
		t.Errorf("format = %q, want EXCEL", det.Format)
	}
}
