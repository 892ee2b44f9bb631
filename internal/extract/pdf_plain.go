package extract

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PlainBackend extracts the embedded PDF text layer with the pure-Go pdf
// library. Scanned (image-only) PDFs yield nothing here.
type PlainBackend struct{}

func (b *PlainBackend) Name() string { return "plaintext" }

func (b *PlainBackend) ExtractText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
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
