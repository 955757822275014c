package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/retrosh/internal/console"
)

// play drives the console until its reveal queue is empty, printing new
// transcript text as it appears.
func play(ctx context.Context, c *console.Console, p *printer, animate bool) error {
	if !animate {
		c.Flush()
		p.sync(c.Entries())
		return nil
	}

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			c.Clear()
			return ctx.Err()
		case <-timer.C:
		}
		delay, busy := c.Step()
		p.sync(c.Entries())
		if !busy {
			return nil
		}
		timer.Reset(delay)
	}
}

// printer writes the transcript incrementally. Only the last entry ever
// grows, so it tracks how many entries it has started and how much of the
// last one it has written.
type printer struct {
	w       io.Writer
	seen    int
	written int
}

func (p *printer) sync(entries []console.Entry) {
	if len(entries) < p.seen {
		// cleared
		p.finish()
		p.seen, p.written = 0, 0
	}
	for i := max(p.seen-1, 0); i < len(entries); i++ {
		if i >= p.seen {
			if p.seen > 0 {
				fmt.Fprintln(p.w)
			}
			p.seen++
			p.written = 0
		}
		text := entries[i].Text
		if p.written < len(text) {
			fmt.Fprint(p.w, text[p.written:])
			p.written = len(text)
		}
	}
}

// finish terminates the last entry.
func (p *printer) finish() {
	if p.seen > 0 {
		fmt.Fprintln(p.w)
	}
}
