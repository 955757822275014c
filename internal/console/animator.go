package console

import (
	"strings"
	"time"
)

const (
	DefaultCharDelay = 10 * time.Millisecond
	DefaultLineDelay = 50 * time.Millisecond
)

// Animator reveals queued line sets into the last transcript entry, one rune
// per Step. It is either idle or revealing (line, char) of the job at the
// head of its queue.
type Animator struct {
	transcript *Transcript
	charDelay  time.Duration
	lineDelay  time.Duration

	queue    [][][]rune
	active   bool
	line     int
	char     int
	revealed [][]rune
	gen      uint64
}

func NewAnimator(t *Transcript, charDelay, lineDelay time.Duration) *Animator {
	return &Animator{transcript: t, charDelay: charDelay, lineDelay: lineDelay}
}

// Busy reports whether any reveal is queued or in progress.
func (a *Animator) Busy() bool { return a.active }

// Generation changes whenever pending reveals are cancelled. Hosts tag their
// scheduled steps with it and drop steps whose tag no longer matches.
func (a *Animator) Generation() uint64 { return a.gen }

// Position returns the line and rune index of the reveal in progress.
func (a *Animator) Position() (line, char int) { return a.line, a.char }

// Enqueue schedules a reveal of lines. If the animator was idle the job
// starts immediately by appending an empty output entry.
func (a *Animator) Enqueue(lines []string) {
	job := make([][]rune, len(lines))
	for i, l := range lines {
		job[i] = []rune(l)
	}
	a.queue = append(a.queue, job)
	if !a.active {
		a.begin()
	}
}

// Step advances the reveal by one unit and returns the delay to wait before
// the next call. busy is false once every queued job has been revealed.
func (a *Animator) Step() (delay time.Duration, busy bool) {
	if !a.active {
		return 0, false
	}
	job := a.queue[0]
	if a.line < len(job) {
		if a.char < len(job[a.line]) {
			a.revealed[a.line] = append(a.revealed[a.line], job[a.line][a.char])
			a.char++
			a.transcript.setLast(a.render())
			return a.charDelay, true
		}
		a.line++
		a.char = 0
		if a.line < len(job) {
			a.revealed = append(a.revealed, nil)
			a.transcript.setLast(a.render())
		}
		return a.lineDelay, true
	}

	a.queue = a.queue[1:]
	if len(a.queue) == 0 {
		a.active = false
		a.queue = nil
		a.revealed = nil
		a.line, a.char = 0, 0
		return 0, false
	}
	a.begin()
	return a.lineDelay, true
}

// Flush reveals everything queued without waiting.
func (a *Animator) Flush() {
	for {
		if _, busy := a.Step(); !busy {
			return
		}
	}
}

// Cancel drops the queue and leaves the transcript as it is.
func (a *Animator) Cancel() {
	a.queue = nil
	a.revealed = nil
	a.active = false
	a.line, a.char = 0, 0
	a.gen++
}

func (a *Animator) begin() {
	a.active = true
	a.line, a.char = 0, 0
	a.revealed = [][]rune{nil}
	a.transcript.Append(Entry{Kind: KindOutput})
}

func (a *Animator) render() string {
	var b strings.Builder
	for i, l := range a.revealed {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(l))
	}
	return b.String()
}
