package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Kind classifies extraction failures.
type Kind string

const (
	// KindNoBackend means no backend is bound for the document's format.
	KindNoBackend Kind = "no_backend_available"
	// KindUnsupported means the declared format is neither pdf nor docx.
	KindUnsupported Kind = "unsupported_format"
	// KindBackend means the bound backend faulted; the message preserves
	// the underlying diagnostic.
	KindBackend Kind = "backend_exception"
)

// Error is a typed extraction failure. Extraction never panics through to
// the caller; backend faults are captured and wrapped here.
type Error struct {
	Kind    Kind
	Format  Format
	Message string
}

func (e *Error) Error() string { return e.Message }

// Extractor converts raw document bytes into plain text using one backend
// bound per format. Backends are resolved once at construction, not per call.
type Extractor struct {
	pdf  Backend
	docx Backend
}

// NewExtractor binds a backend per format. A name selects a registered
// backend explicitly; empty picks the first in priority order. An unknown
// name leaves the format unbound, and every extraction attempt for it
// fails with KindNoBackend.
func NewExtractor(pdfName, docxName string) *Extractor {
	return &Extractor{
		pdf:  resolveBackend(pdfBackends, pdfName),
		docx: resolveBackend(docxBackends, docxName),
	}
}

// Backends reports the bound backend name per format, "none" when unbound.
func (e *Extractor) Backends() map[string]string {
	out := map[string]string{
		string(FormatPDF):  "none",
		string(FormatDOCX): "none",
	}
	if e.pdf != nil {
		out[string(FormatPDF)] = e.pdf.Name()
	}
	if e.docx != nil {
		out[string(FormatDOCX)] = e.docx.Name()
	}
	return out
}

// ExtractText extracts plain text from the document named by fileName. The
// file extension declares the format; anything but .pdf/.docx is rejected
// before any backend runs.
func (e *Extractor) ExtractText(fileName string, data []byte) (string, error) {
	var backend Backend
	var format Format

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		backend, format = e.pdf, FormatPDF
	case ".docx":
		backend, format = e.docx, FormatDOCX
	default:
		return "", &Error{
			Kind:    KindUnsupported,
			Message: fmt.Sprintf("unsupported file type: %s", strings.ToLower(filepath.Ext(fileName))),
		}
	}

	if backend == nil {
		return "", &Error{
			Kind:    KindNoBackend,
			Format:  format,
			Message: fmt.Sprintf("no %s backend available", format),
		}
	}

	text, err := runBackend(backend, data)
	if err != nil {
		return "", &Error{
			Kind:    KindBackend,
			Format:  format,
			Message: err.Error(),
		}
	}
	return text, nil
}

func runBackend(b Backend, data []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s: panic: %v", b.Name(), rec)
		}
	}()
	return b.Extract(data)
}

func resolveBackend(candidates []Backend, name string) Backend {
	if name == "" {
		if len(candidates) > 0 {
			return candidates[0]
		}
		return nil
	}
	for _, b := range candidates {
		if b.Name() == name {
			return b
		}
	}
	return nil
}
