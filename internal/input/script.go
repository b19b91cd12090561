package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/quick/internal/core"
)

// Script is a CommandDevice that replays a fixed timeline, one entry per
// tick. It makes headless runs and tests deterministic.
type Script struct {
	frames []core.CommandSet
	pos    int
}

// NewScript creates a script from per-tick command sets.
func NewScript(frames ...core.CommandSet) *Script {
	return &Script{frames: frames}
}

// ParseScript reads a timeline such as "5-9:Left 12:A+Up".
// Each entry is a tick or inclusive tick range, a colon and the commands
// joined with '+'. Ticks count from zero. Entries may overlap.
func ParseScript(s string) (*Script, error) {
	var frames []core.CommandSet
	for _, entry := range strings.Fields(s) {
		span, names, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("input: script entry %q has no commands", entry)
		}

		from, to, err := parseSpan(span)
		if err != nil {
			return nil, fmt.Errorf("input: script entry %q: %w", entry, err)
		}

		var cmds []core.Command
		for _, name := range strings.Split(names, "+") {
			cmd, ok := core.ParseCommand(name)
			if !ok {
				return nil, fmt.Errorf("input: script entry %q: unknown command %q", entry, name)
			}
			cmds = append(cmds, cmd)
		}

		for len(frames) <= to {
			frames = append(frames, core.NewCommandSet())
		}
		for t := from; t <= to; t++ {
			for _, cmd := range cmds {
				frames[t].Set(cmd)
			}
		}
	}
	return NewScript(frames...), nil
}

func parseSpan(span string) (int, int, error) {
	lo, hi, isRange := strings.Cut(span, "-")
	from, err := strconv.Atoi(lo)
	if err != nil || from < 0 {
		return 0, 0, fmt.Errorf("bad tick %q", lo)
	}
	if !isRange {
		return from, from, nil
	}
	to, err := strconv.Atoi(hi)
	if err != nil || to < from {
		return 0, 0, fmt.Errorf("bad tick range %q", span)
	}
	return from, to, nil
}

// Len returns the number of scripted ticks.
func (s *Script) Len() int {
	return len(s.frames)
}

// Done reports whether the timeline has been fully replayed.
func (s *Script) Done() bool {
	return s.pos >= len(s.frames)
}

// Commands implements CommandDevice.
func (s *Script) Commands() core.CommandSet {
	if s.pos >= len(s.frames) {
		return core.NewCommandSet()
	}
	return s.frames[s.pos]
}

// Poll implements Poller by advancing to the next tick.
func (s *Script) Poll() {
	if s.pos < len(s.frames) {
		s.pos++
	}
}
