// Package console implements the simulated command console.
//
// A [Console] owns four pieces of state:
//
//   - [Transcript]: ordered input/output entries shown to the user
//   - [History]: previously submitted commands with a recall cursor
//   - [Animator]: typewriter reveal of queued output lines
//   - the pending-input buffer and the active theme name
//
// Commands are resolved against a static table (see [Lookup]). Only the
// table commands animate; theme changes, clear and unknown commands take
// effect immediately.
//
// # Driving the animator
//
// The console never sleeps. The host calls [Console.Step] and waits the
// returned delay before calling it again, until it reports idle:
//
//	c := console.New(console.Options{})
//	c.Start()
//	for {
//		delay, busy := c.Step()
//		if !busy {
//			break
//		}
//		time.Sleep(delay)
//	}
//
// # Thread Safety
//
// Console is NOT thread-safe. It is meant to be owned by a single event
// loop such as a Bubble Tea program.
package console
