package console

// Kind tags a transcript entry.
type Kind int

const (
	KindInput Kind = iota
	KindOutput
)

func (k Kind) String() string {
	if k == KindInput {
		return "input"
	}
	return "output"
}

// Entry is one displayed block. Output entries may span several lines.
type Entry struct {
	Kind Kind
	Text string
}

// Transcript is append-only except for growth of the last entry while it is
// being revealed and truncation by Reset.
type Transcript struct {
	entries []Entry
}

func (t *Transcript) Append(e Entry) {
	t.entries = append(t.entries, e)
}

// Entries returns a copy of the entries.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Transcript) Len() int { return len(t.entries) }

// Last returns the most recent entry.
func (t *Transcript) Last() (Entry, bool) {
	if len(t.entries) == 0 {
		return Entry{}, false
	}
	return t.entries[len(t.entries)-1], true
}

// setLast replaces the text of the final entry. No-op on an empty transcript.
func (t *Transcript) setLast(text string) {
	if len(t.entries) == 0 {
		return
	}
	t.entries[len(t.entries)-1].Text = text
}

func (t *Transcript) Reset() {
	t.entries = nil
}
