package docstore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Extractor is the text-extraction dependency of the loader.
type Extractor interface {
	ExtractFile(path string) (string, error)
}

// Loader resolves document paths and populates the Store. A failed load
// leaves the store in its prior state.
type Loader struct {
	store     *Store
	extractor Extractor
	docsDir   string
	mode      Mode
	log       *slog.Logger
}

func NewLoader(store *Store, extractor Extractor, docsDir string, mode Mode, log *slog.Logger) *Loader {
	return &Loader{
		store:     store,
		extractor: extractor,
		docsDir:   docsDir,
		mode:      mode,
		log:       log,
	}
}

// LoadPath loads a single explicit document, replacing any cached content.
func (l *Loader) LoadPath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	l.log.Info("loading document", "path", path)
	text, err := l.extractor.ExtractFile(path)
	if err != nil {
		return err
	}

	l.store.set(text, []Source{{Path: path, Name: filepath.Base(path)}})
	return nil
}

// LoadBatch loads several documents into one combined corpus. A document
// that fails extraction is skipped; the batch only fails when every
// document does. Each document's text is preceded by a header naming it.
func (l *Loader) LoadBatch(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: no PDF files found in %s", ErrNoDocumentFound, l.docsDir)
	}

	var parts []string
	var sources []Source
	for _, path := range paths {
		name := filepath.Base(path)
		l.log.Info("loading document", "path", path)
		text, err := l.extractor.ExtractFile(path)
		if err != nil {
			l.log.Warn("skipping document", "path", path, "error", err)
			continue
		}
		parts = append(parts, fmt.Sprintf("\n\n--- Content from %s ---\n\n%s", name, text))
		sources = append(sources, Source{Path: path, Name: name})
	}

	if len(parts) == 0 {
		return fmt.Errorf("%w in %s", ErrAllExtractionsFailed, l.docsDir)
	}

	l.store.set(strings.Join(parts, "\n"), sources)
	return nil
}

// EnsureLoaded runs auto-discovery and loads the result if the store has
// no content yet.
func (l *Loader) EnsureLoaded() error {
	if l.store.Loaded() {
		return nil
	}

	paths, err := Discover(l.docsDir, l.mode)
	if err != nil {
		return err
	}
	if l.mode == ModeFirst {
		return l.LoadPath(paths[0])
	}
	return l.LoadBatch(paths)
}
