// Package docstore holds the loaded document corpus and the logic that
// resolves and loads it.
package docstore

import "sync"

// Source identifies one file contributing to the loaded text.
type Source struct {
	Path string
	Name string
}

// Snapshot is an immutable view of the store state. Text is either absent
// (Loaded false) or the full concatenated extraction of Sources.
type Snapshot struct {
	Loaded  bool
	Text    string
	Sources []Source
}

// Store is the single-slot document cache. It has two states, Unloaded and
// Loaded; only a successful load transitions it, and a load replaces text
// and sources together. Readers never observe a half-written state.
type Store struct {
	mu      sync.RWMutex
	loaded  bool
	text    string
	sources []Source
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sources := make([]Source, len(s.sources))
	copy(sources, s.sources)
	return Snapshot{Loaded: s.loaded, Text: s.text, Sources: sources}
}

// Reset returns the store to the Unloaded state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.text = ""
	s.sources = nil
}

// set replaces the whole state atomically. An empty text is a valid Loaded
// state, distinct from Unloaded.
func (s *Store) set(text string, sources []Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.text = text
	s.sources = sources
}
