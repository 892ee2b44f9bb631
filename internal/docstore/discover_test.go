package docstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("touch %s: %v", name, err)
	}
}

func TestDiscover_FirstPrefersConventionalNames(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "aaa.pdf")
	touch(t, dir, "resume.pdf")
	touch(t, dir, "CV.pdf")

	paths, err := Discover(dir, ModeFirst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "CV.pdf" {
		t.Errorf("expected CV.pdf, got %v", paths)
	}
}

func TestDiscover_FirstFallsBackToLexicographic(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "zeta.pdf")
	touch(t, dir, "alpha.pdf")
	touch(t, dir, "notes.txt")

	paths, err := Discover(dir, ModeFirst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "alpha.pdf" {
		t.Errorf("expected alpha.pdf, got %v", paths)
	}
}

func TestDiscover_FirstNoMatches(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt")

	_, err := Discover(dir, ModeFirst)
	if !errors.Is(err, ErrNoDocumentFound) {
		t.Fatalf("expected ErrNoDocumentFound, got %v", err)
	}
}

func TestDiscover_FirstMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), ModeFirst)
	if !errors.Is(err, ErrNoDocumentFound) {
		t.Fatalf("expected ErrNoDocumentFound, got %v", err)
	}
}

func TestDiscover_AllReturnsSorted(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "zeta.pdf")
	touch(t, dir, "alpha.pdf")
	touch(t, dir, "mid.pdf")
	touch(t, dir, "notes.txt")

	paths, err := Discover(dir, ModeAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha.pdf", "mid.pdf", "zeta.pdf"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %v", len(want), paths)
	}
	for i, w := range want {
		if filepath.Base(paths[i]) != w {
			t.Errorf("paths[%d]: expected %s, got %s", i, w, paths[i])
		}
	}
}

func TestDiscover_AllMissingDirIsEmpty(t *testing.T) {
	// In all mode a missing directory is an empty result; the caller
	// escalates that to a no-document error.
	paths, err := Discover(filepath.Join(t.TempDir(), "nope"), ModeAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}
