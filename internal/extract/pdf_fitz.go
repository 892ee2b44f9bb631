package extract

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzBackend extracts PDF text with MuPDF, which preserves reading order
// and layout better than the pure-Go text-layer backend.
type FitzBackend struct{}

func (b *FitzBackend) Name() string { return "fitz" }

func (b *FitzBackend) ExtractText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for i := 0; i < numPages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			// A bad page keeps its slot in the join.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	joined := strings.Join(pages, "\n\n")
	if strings.TrimSpace(joined) == "" {
		return "", fmt.Errorf("no text extracted from %d page(s)", numPages)
	}
	return joined, nil
}
