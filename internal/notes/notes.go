// Package notes holds the in-memory note store exposed over MCP resources.
// Notes live for the process lifetime only; persistence is deliberately out
// of scope.
package notes

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/shubhlabs/shubh-mcp/pkg/types"
)

// ErrMissingFields is returned when title or content is empty.
var ErrMissingFields = errors.New("Title and content are required.")

// Store owns all notes. Creation assigns sequential numeric string ids
// starting at "1"; notes are never deleted.
type Store struct {
	mu     sync.Mutex
	nextID int
	order  []string
	notes  map[string]types.Note
}

// NewStore creates an empty note store.
func NewStore() *Store {
	return &Store{
		nextID: 1,
		notes:  map[string]types.Note{},
	}
}

// Create validates and stores a new note.
func (s *Store) Create(title, content string) (types.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return types.Note{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextID)
	s.nextID++
	n := types.Note{ID: id, Title: title, Content: content}
	s.notes[id] = n
	s.order = append(s.order, id)
	return n, nil
}

// List returns all notes in creation order.
func (s *Store) List() []types.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Note, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.notes[id])
	}
	return out
}

// Get returns the note for id, if present.
func (s *Store) Get(id string) (types.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[strings.TrimSpace(id)]
	return n, ok
}
