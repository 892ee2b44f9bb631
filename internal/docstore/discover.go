package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Mode selects how auto-discovery picks documents from the docs directory.
type Mode string

const (
	// ModeFirst returns the single best match: conventional CV file names
	// in priority order, then the lexicographically first PDF.
	ModeFirst Mode = "first"

	// ModeAll returns every PDF in the directory, sorted lexicographically.
	ModeAll Mode = "all"
)

var conventionalNames = []string{"CV.pdf", "cv.pdf", "resume.pdf", "Resume.pdf"}

// Discover lists candidate document paths in dir according to mode.
// In ModeFirst a missing directory or no match is ErrNoDocumentFound; in
// ModeAll it is an empty result, escalated by the caller.
func Discover(dir string, mode Mode) ([]string, error) {
	if mode == ModeFirst {
		path, err := findFirst(dir)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}
	return findAll(dir)
}

func findFirst(dir string) (string, error) {
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("%w in %s", ErrNoDocumentFound, dir)
	}

	for _, name := range conventionalNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return "", err
	}
	sort.Strings(matches)
	if len(matches) > 0 {
		return matches[0], nil
	}
	return "", fmt.Errorf("%w in %s", ErrNoDocumentFound, dir)
}

func findAll(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
