package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// ErrUnavailable reports that no extraction backend could produce text.
var ErrUnavailable = errors.New("no working extraction backend")

// Backend extracts plain text from one PDF file. Backends are tried in
// order; a failure falls through to the next.
type Backend interface {
	Name() string
	ExtractText(path string) (string, error)
}

// SupportedExtensions lists file extensions the extractor can handle for
// explicitly supplied paths. Auto-discovery only considers .pdf.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".txt":      true,
}

// Extractor dispatches on file extension and runs the PDF backend chain.
type Extractor struct {
	backends []Backend
	log      *slog.Logger
}

func New(log *slog.Logger, backends ...Backend) *Extractor {
	return &Extractor{backends: backends, log: log}
}

// DefaultBackends is the PDF backend chain in priority order: the
// layout-aware MuPDF backend first, the pure-Go text-layer backend second.
func DefaultBackends() []Backend {
	return []Backend{&FitzBackend{}, &PlainBackend{}}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ExtractFile extracts the plain text of the document at path.
func (e *Extractor) ExtractFile(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return e.extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	case ".md", ".markdown":
		return extractMarkdown(path)
	case ".html", ".htm":
		return extractHTML(path)
	case ".txt":
		return extractTextFile(path)
	default:
		return "", fmt.Errorf("unsupported file extension: %s", ext)
	}
}

func (e *Extractor) extractPDF(path string) (string, error) {
	if len(e.backends) == 0 {
		return "", fmt.Errorf("%w: no PDF backend configured (go-fitz, ledongthuc/pdf)", ErrUnavailable)
	}

	var failures []string
	for _, b := range e.backends {
		text, err := b.ExtractText(path)
		if err != nil {
			e.log.Warn("pdf backend failed", "backend", b.Name(), "path", path, "error", err)
			failures = append(failures, fmt.Sprintf("%s: %v", b.Name(), err))
			continue
		}
		return text, nil
	}

	return "", fmt.Errorf("%w for %s: %s", ErrUnavailable, filepath.Base(path), strings.Join(failures, "; "))
}
