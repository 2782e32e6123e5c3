package scheduler

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the ephemeral state of one scheduling interaction: the selection
// set being built plus the candidate filters in effect. It lives in memory
// only, is owned by the caller, and is discarded on close or after a fully
// successful commit. Safe for concurrent use.
type Session struct {
	ID string

	mu       sync.Mutex
	selected []string
	filters  CandidateFilters
}

// NewSession creates an empty scheduling session.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// Select adds a task id to the selection. Duplicates are ignored; insertion
// order is preserved.
func (s *Session) Select(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(taskID) >= 0 {
		return
	}
	s.selected = append(s.selected, taskID)
}

// Deselect removes a task id from the selection if present.
func (s *Session) Deselect(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(taskID); i >= 0 {
		s.selected = append(s.selected[:i], s.selected[i+1:]...)
	}
}

// Toggle flips a task id's membership and reports whether it is now selected.
func (s *Session) Toggle(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(taskID); i >= 0 {
		s.selected = append(s.selected[:i], s.selected[i+1:]...)
		return false
	}
	s.selected = append(s.selected, taskID)
	return true
}

// SetSelection replaces the selection wholesale, deduplicating while
// preserving first-seen order.
func (s *Session) SetSelection(taskIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = s.selected[:0]
	seen := make(map[string]struct{}, len(taskIDs))
	for _, id := range taskIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		s.selected = append(s.selected, id)
	}
}

// Selection returns a copy of the selected task ids in insertion order.
func (s *Session) Selection() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Clear empties the selection. Called after a fully successful commit.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = s.selected[:0]
}

// IsEmpty reports whether nothing is selected.
func (s *Session) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected) == 0
}

// SetFilters replaces the candidate filters in effect for this session.
func (s *Session) SetFilters(f CandidateFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

// Filters returns the candidate filters in effect.
func (s *Session) Filters() CandidateFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// indexOf requires s.mu held.
func (s *Session) indexOf(taskID string) int {
	for i, id := range s.selected {
		if id == taskID {
			return i
		}
	}
	return -1
}
