// Package favorites maintains the user's saved places list: a small,
// deduplicated, most-recent-first collection persisted as one JSON
// snapshot after every mutation.
package favorites

import (
	"context"
	"encoding/json"
	"sync"

	"breathewatch/internal/logger"
	"breathewatch/internal/storage"
)

// MaxEntries caps the favorites list; adding beyond the cap evicts the
// oldest entry
const MaxEntries = 10

// Store holds the in-memory favorites list and mirrors every change to
// persistent storage. The in-memory list stays authoritative even when a
// persistence write fails.
type Store struct {
	mu     sync.Mutex
	client storage.Client
	names  []string
	log    *logger.Logger
}

// NewStore creates a store seeded from the persisted snapshot. Missing,
// corrupt, or unreadable data yields an empty list, never an error.
func NewStore(ctx context.Context, client storage.Client) *Store {
	s := &Store{
		client: client,
		log:    logger.WithComponent("favorites"),
	}
	s.names = s.load(ctx)
	return s
}

// List returns a copy of the current favorites, most recently added first
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.names...)
}

// Contains reports whether name is currently a favorite
func (s *Store) Contains(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Toggle removes name if present, otherwise inserts it at the front and
// truncates to the cap. Returns the resulting list.
func (s *Store) Toggle(ctx context.Context, name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			removed = true
			break
		}
	}

	if !removed {
		s.names = append([]string{name}, s.names...)
		if len(s.names) > MaxEntries {
			s.names = s.names[:MaxEntries]
		}
	}

	s.persist(ctx)
	return append([]string(nil), s.names...)
}

// Remove deletes all occurrences of name; a no-op if absent
func (s *Store) Remove(ctx context.Context, name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.names[:0]
	for _, n := range s.names {
		if n != name {
			kept = append(kept, n)
		}
	}
	if len(kept) != len(s.names) {
		s.names = kept
		s.persist(ctx)
	}
	return append([]string(nil), s.names...)
}

// load reads the persisted snapshot, degrading to empty on any failure
func (s *Store) load(ctx context.Context) []string {
	data, err := s.client.GetFile(ctx, storage.FavoritesObject)
	if err != nil {
		s.log.Debug("No persisted favorites found, starting empty")
		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		s.log.Warn("Persisted favorites are corrupt, starting empty", map[string]interface{}{"size": len(data)})
		return nil
	}

	// Re-apply collection invariants to whatever was stored
	seen := make(map[string]bool, len(names))
	clean := names[:0]
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		clean = append(clean, n)
		if len(clean) == MaxEntries {
			break
		}
	}
	return clean
}

// persist writes the full list snapshot. Failures are logged and
// swallowed; callers keep the in-memory state.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.names)
	if err != nil {
		s.log.Error("Failed to encode favorites", err)
		return
	}

	if err := s.client.StoreFile(ctx, storage.FavoritesObject, data); err != nil {
		s.log.Error("Failed to persist favorites", err, map[string]interface{}{"entries": len(s.names)})
	}
}
