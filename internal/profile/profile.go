// Package profile replays the typewriter schedule of a command without
// sleeping, to show how long a reveal takes with a given timing config.
package profile

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/retrosh/internal/console"
)

type point struct {
	at       time.Duration
	revealed int
}

type Result struct {
	Command  string
	Lines    int
	Runes    int
	Steps    int
	Duration time.Duration
	timeline []point
}

// Run simulates the reveal of a table command.
func Run(name string, charDelay, lineDelay time.Duration) (*Result, error) {
	cmd, ok := console.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", name)
	}

	t := &console.Transcript{}
	a := console.NewAnimator(t, charDelay, lineDelay)
	a.Enqueue(cmd.Lines)

	res := &Result{Command: name, Lines: len(cmd.Lines), timeline: []point{{}}}
	var elapsed time.Duration
	for {
		delay, busy := a.Step()
		if !busy {
			break
		}
		res.Steps++
		last, _ := t.Last()
		res.timeline = append(res.timeline, point{at: elapsed, revealed: revealed(last.Text)})
		elapsed += delay
	}
	res.Duration = elapsed
	for _, l := range cmd.Lines {
		res.Runes += utf8.RuneCountInString(l)
	}
	return res, nil
}

// Samples returns the number of revealed runes at n evenly spaced instants.
func (r *Result) Samples(n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	j := 0
	for i := range out {
		at := time.Duration(int64(r.Duration) * int64(i) / int64(n-1))
		for j+1 < len(r.timeline) && r.timeline[j+1].at <= at {
			j++
		}
		out[i] = float64(r.timeline[j].revealed)
	}
	return out
}

// Plot renders revealed runes over time.
func (r *Result) Plot(width, height int) string {
	return asciigraph.Plot(r.Samples(width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s: runes revealed over %v", r.Command, r.Duration)),
	)
}

func revealed(text string) int {
	return utf8.RuneCountInString(text) - strings.Count(text, "\n")
}
