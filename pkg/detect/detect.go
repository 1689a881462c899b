package detect

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	pdfMagic  = []byte("%PDF-")
)

// IsJSON reports whether the string is a syntactically valid JSON value.
// Surrounding whitespace is ignored. Bare scalars ("42", `"x"`, "true") are
// valid JSON values and pass; an empty or blank string does not.
func IsJSON(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return json.Valid([]byte(s))
}

// IsGzip reports whether the content starts with the gzip signature
// (0x1f 0x8b). Only the signature is checked; a truncated or corrupt stream
// past the header still passes.
func IsGzip(data []byte) bool {
	return bytes.HasPrefix(data, gzipMagic)
}

// IsPDF reports whether the content starts with the PDF magic ("%PDF-").
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// ContentType returns the sniffed MIME type of the content. Formats with
// explicit magic checks above are resolved first; everything else falls back
// to http.DetectContentType, which never fails and returns
// "application/octet-stream" when the content is unrecognizable.
func ContentType(data []byte) string {
	switch {
	case IsGzip(data):
		return "application/gzip"
	case IsPDF(data):
		return "application/pdf"
	}

	// http.DetectContentType inspects at most the first 512 bytes.
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}
