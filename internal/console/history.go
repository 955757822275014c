package console

// History holds submitted commands in insertion order with a recall cursor.
// The cursor counts back from the newest entry: 0 is the newest, -1 means
// nothing is selected.
type History struct {
	entries []string
	max     int
	cursor  int
}

// NewHistory creates a history that keeps at most max entries; max <= 0
// keeps everything.
func NewHistory(max int) *History {
	return &History{max: max, cursor: -1}
}

// Push records a command and resets the cursor.
func (h *History) Push(cmd string) {
	h.entries = append(h.entries, cmd)
	if h.max > 0 && len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	h.cursor = -1
}

// Prev moves one step older, pinned at the oldest entry.
// Returns ("", false) if history is empty.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	h.cursor = min(h.cursor+1, len(h.entries)-1)
	return h.at(h.cursor), true
}

// Next moves one step newer. Moving past the newest entry deselects and
// returns ("", false).
func (h *History) Next() (string, bool) {
	h.cursor = max(h.cursor-1, -1)
	if h.cursor == -1 {
		return "", false
	}
	return h.at(h.cursor), true
}

func (h *History) ResetCursor() { h.cursor = -1 }

func (h *History) Cursor() int { return h.cursor }

func (h *History) Len() int { return len(h.entries) }

// Entries returns the commands oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *History) at(cursor int) string {
	return h.entries[len(h.entries)-1-cursor]
}
