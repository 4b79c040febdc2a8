package anchor

// Entry is one anchor jump: the id that was jumped to and the offset the
// page was at before the jump.
type Entry struct {
	ID     string
	Offset float64
}

// Stack keeps jump history for back navigation.
type Stack struct {
	entries []Entry
	limit   int
}

// NewStack creates an empty stack. A positive limit discards the oldest
// entries once exceeded; zero keeps everything.
func NewStack(limit int) *Stack {
	return &Stack{
		entries: make([]Entry, 0),
		limit:   limit,
	}
}

// Push records a jump.
func (s *Stack) Push(id string, offset float64) {
	s.entries = append(s.entries, Entry{ID: id, Offset: offset})
	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
}

// Pop removes and returns the most recent entry.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the most recent entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
