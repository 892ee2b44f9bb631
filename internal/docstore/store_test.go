package docstore

import "testing"

func TestStore_StartsUnloaded(t *testing.T) {
	s := NewStore()
	if s.Loaded() {
		t.Error("new store should be unloaded")
	}
	snap := s.Snapshot()
	if snap.Loaded || snap.Text != "" || len(snap.Sources) != 0 {
		t.Errorf("unexpected initial snapshot: %+v", snap)
	}
}

func TestStore_SetAndSnapshot(t *testing.T) {
	s := NewStore()
	s.set("some text", []Source{{Path: "/tmp/cv.pdf", Name: "cv.pdf"}})

	if !s.Loaded() {
		t.Error("store should be loaded after set")
	}
	snap := s.Snapshot()
	if snap.Text != "some text" {
		t.Errorf("unexpected text: %q", snap.Text)
	}
	if len(snap.Sources) != 1 || snap.Sources[0].Name != "cv.pdf" {
		t.Errorf("unexpected sources: %+v", snap.Sources)
	}
}

func TestStore_EmptyTextIsLoaded(t *testing.T) {
	// An empty extraction is a valid loaded state, distinct from unloaded.
	s := NewStore()
	s.set("", []Source{{Path: "/tmp/blank.pdf", Name: "blank.pdf"}})
	if !s.Loaded() {
		t.Error("store with empty text should still count as loaded")
	}
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := NewStore()
	s.set("text", []Source{{Path: "/a", Name: "a"}})

	snap := s.Snapshot()
	snap.Sources[0].Name = "mutated"

	if got := s.Snapshot().Sources[0].Name; got != "a" {
		t.Errorf("snapshot mutation leaked into store: %q", got)
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	s.set("text", []Source{{Path: "/a", Name: "a"}})
	s.Reset()

	if s.Loaded() {
		t.Error("store should be unloaded after reset")
	}
	snap := s.Snapshot()
	if snap.Text != "" || len(snap.Sources) != 0 {
		t.Errorf("unexpected snapshot after reset: %+v", snap)
	}
}
