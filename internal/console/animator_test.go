package console

import (
	"strings"
	"testing"
	"time"
)

func TestAnimatorRevealsRuneByRune(t *testing.T) {
	tr := &Transcript{}
	a := NewAnimator(tr, time.Millisecond, 5*time.Millisecond)
	a.Enqueue([]string{"ab", "╔"})

	if !a.Busy() {
		t.Fatal("expected busy after enqueue")
	}
	if tr.Len() != 1 {
		t.Fatalf("expected one output entry, got %d", tr.Len())
	}

	tests := []struct {
		text  string
		delay time.Duration
	}{
		{"a", time.Millisecond},
		{"ab", time.Millisecond},
		{"ab\n", 5 * time.Millisecond},
		{"ab\n╔", time.Millisecond},
		{"ab\n╔", 5 * time.Millisecond},
	}
	for i, tt := range tests {
		delay, busy := a.Step()
		if !busy {
			t.Fatalf("step %d: unexpected idle", i)
		}
		if delay != tt.delay {
			t.Errorf("step %d: expected delay %v, got %v", i, tt.delay, delay)
		}
		last, _ := tr.Last()
		if last.Text != tt.text {
			t.Errorf("step %d: expected %q, got %q", i, tt.text, last.Text)
		}
	}

	if _, busy := a.Step(); busy {
		t.Error("expected idle after final step")
	}
	if a.Busy() {
		t.Error("Busy should be false")
	}
}

func TestAnimatorQueuesJobsInOrder(t *testing.T) {
	tr := &Transcript{}
	a := NewAnimator(tr, time.Millisecond, time.Millisecond)
	a.Enqueue([]string{"first"})
	a.Enqueue([]string{"second"})

	if tr.Len() != 1 {
		t.Fatalf("second job must not start early, got %d entries", tr.Len())
	}
	a.Flush()

	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Text != "first" || entries[1].Text != "second" {
		t.Errorf("unexpected entries %+v", entries)
	}
}

func TestAnimatorEmptyLines(t *testing.T) {
	tr := &Transcript{}
	a := NewAnimator(tr, time.Millisecond, time.Millisecond)
	lines := []string{"x", "", "y", ""}
	a.Enqueue(lines)
	a.Flush()

	last, _ := tr.Last()
	if last.Text != strings.Join(lines, "\n") {
		t.Errorf("expected %q, got %q", strings.Join(lines, "\n"), last.Text)
	}
}

func TestAnimatorCancel(t *testing.T) {
	tr := &Transcript{}
	a := NewAnimator(tr, time.Millisecond, time.Millisecond)
	a.Enqueue([]string{"hello"})
	a.Step()
	gen := a.Generation()

	a.Cancel()
	if a.Busy() {
		t.Error("expected idle after cancel")
	}
	if a.Generation() == gen {
		t.Error("expected generation to change")
	}
	if _, busy := a.Step(); busy {
		t.Error("step after cancel should be idle")
	}
	last, _ := tr.Last()
	if last.Text != "h" {
		t.Errorf("cancel should not touch transcript, got %q", last.Text)
	}
}
