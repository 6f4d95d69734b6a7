package constants

import "strings"

// FileFormat is the coarse format family a file belongs to after validation.
type FileFormat string

const (
	PDF   FileFormat = "PDF"
	Word  FileFormat = "WORD"
	Excel FileFormat = "EXCEL"
	CSV   FileFormat = "CSV"
)

// FileFormats holds the allowed values for the format field on stored documents.
var FileFormats = []string{string(PDF), string(Word), string(Excel), string(CSV)}

// AllowedExtensions holds the allowed upload extensions, lowercased, without dot.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
	"xlsx": {},
	"xls":  {},
	"csv":  {},
}

// MIMETypes maps an extension to the MIME types accepted for it.
// net/http.DetectContentType reports OOXML containers as zip and OLE files
// as generic octet streams, so those are accepted alongside the exact types.
var MIMETypes = map[string][]string{
	"pdf":  {"application/pdf"},
	"doc":  {"application/msword", "application/x-ole-storage", "application/octet-stream"},
	"docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document", "application/zip"},
	"xls":  {"application/vnd.ms-excel", "application/x-ole-storage", "application/octet-stream"},
	"xlsx": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "application/zip"},
	"csv":  {"text/csv", "text/plain; charset=utf-8", "text/plain"},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its format family.
// Returns "" for unknown extensions.
func MapExtToFormat(ext string) FileFormat {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "doc", "docx":
		return Word
	case "xls", "xlsx":
		return Excel
	case "csv":
		return CSV
	default:
		return ""
	}
}

// IsLegacyOfficeExt reports whether ext is an OLE compound document format
// (pre-2007 Office) that needs conversion before structural extraction.
func IsLegacyOfficeExt(ext string) bool {
	e := NormalizeExt(ext)
	return e == "doc" || e == "xls"
}
