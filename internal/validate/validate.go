// Package validate rejects spoofed or corrupted uploads before any expensive
// pipeline work. All checks are pure functions over the uploaded bytes.
package validate

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/richardlehane/mscfb"

	"ai-doc-parser/constants"
)

// ErrorKind classifies why an upload was rejected.
type ErrorKind string

const (
	UnsupportedExtension ErrorKind = "UNSUPPORTED_EXTENSION"
	EmptyFile            ErrorKind = "EMPTY_FILE"
	InvalidSignature     ErrorKind = "INVALID_SIGNATURE"
	MimeMismatch         ErrorKind = "MIME_MISMATCH"
	CorruptContent       ErrorKind = "CORRUPT_CONTENT"
)

// Error is a client-caused rejection, surfaced synchronously at submission.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Detected describes a validated upload.
type Detected struct {
	Ext         string // normalized, no dot
	Format      constants.FileFormat
	ContentType string // canonical MIME for the extension
}

var (
	pdfMagic = []byte("%PDF")
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Check runs the validation layers in order, short-circuiting on the first
// failure: extension allow-list, empty content, magic-byte signature, MIME
// cross-check, format-specific structural probe. The typed return keeps the
// rejection kind and detail available to handlers without unwrapping.
func Check(filename string, content []byte) (Detected, *Error) {
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return Detected{}, &Error{UnsupportedExtension, fmt.Sprintf("extension %q is not supported", ext)}
	}
	det := Detected{
		Ext:         ext,
		Format:      constants.MapExtToFormat(ext),
		ContentType: constants.MIMETypes[ext][0],
	}

	if len(content) == 0 {
		return Detected{}, &Error{EmptyFile, "file is empty"}
	}

	if err := checkSignature(ext, content); err != nil {
		return Detected{}, err
	}
	if err := checkMIME(ext, content); err != nil {
		return Detected{}, err
	}
	if err := probe(ext, content); err != nil {
		return Detected{}, err
	}
	return det, nil
}

func checkSignature(ext string, content []byte) *Error {
	switch ext {
	case "pdf":
		if !bytes.HasPrefix(content, pdfMagic) {
			return &Error{InvalidSignature, "Invalid PDF signature: file does not start with %PDF"}
		}
	case "docx", "xlsx":
		if !bytes.HasPrefix(content, zipMagic) {
			return &Error{InvalidSignature, fmt.Sprintf("invalid %s signature: not a ZIP container", ext)}
		}
	case "doc", "xls":
		if !bytes.HasPrefix(content, oleMagic) {
			return &Error{InvalidSignature, fmt.Sprintf("invalid %s signature: not an OLE compound document", ext)}
		}
	case "csv":
		// no magic bytes; binary content is a spoof
		if bytes.IndexByte(content, 0x00) >= 0 {
			return &Error{InvalidSignature, "invalid csv content: binary data"}
		}
	}
	return nil
}

func checkMIME(ext string, content []byte) *Error {
	detected := http.DetectContentType(content)
	for _, want := range constants.MIMETypes[ext] {
		if strings.HasPrefix(detected, want) || strings.HasPrefix(want, detected) {
			return nil
		}
	}
	return &Error{MimeMismatch, fmt.Sprintf("detected MIME %q does not match extension %q", detected, ext)}
}

func probe(ext string, content []byte) *Error {
	switch ext {
	case "pdf":
		return probePDF(content)
	case "docx":
		return probeZipPart(content, "word/document.xml")
	case "xlsx":
		return probeZipPart(content, "xl/workbook.xml")
	case "doc":
		return probeOLEStream(content, "WordDocument")
	case "xls":
		return probeOLEStream(content, "Workbook", "Book")
	case "csv":
		return probeCSV(content)
	}
	return nil
}

func probePDF(content []byte) *Error {
	if !bytes.Contains(content, []byte("%%EOF")) {
		return &Error{CorruptContent, "pdf is truncated: missing %%EOF trailer"}
	}
	return nil
}

func probeZipPart(content []byte, part string) *Error {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return &Error{CorruptContent, "cannot open ZIP container: " + err.Error()}
	}
	for _, f := range zr.File {
		if f.Name == part {
			return nil
		}
	}
	return &Error{CorruptContent, fmt.Sprintf("ZIP container is missing expected part %q", part)}
}

func probeOLEStream(content []byte, names ...string) *Error {
	doc, err := mscfb.New(bytes.NewReader(content))
	if err != nil {
		return &Error{CorruptContent, "cannot open OLE compound document: " + err.Error()}
	}
	want := map[string]struct{}{}
	for _, n := range names {
		want[n] = struct{}{}
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if _, ok := want[entry.Name]; ok {
			return nil
		}
	}
	return &Error{CorruptContent, fmt.Sprintf("OLE document is missing expected stream %q", names[0])}
}

func probeCSV(content []byte) *Error {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	rows := 0
	for rows < 10 {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &Error{CorruptContent, "cannot parse as delimited text: " + err.Error()}
		}
		if len(rec) > 0 {
			rows++
		}
	}
	if rows == 0 {
		return &Error{CorruptContent, "csv has no records"}
	}
	return nil
}
