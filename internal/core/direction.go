package core

import "strings"

// Direction is a set of four independent side flags produced by collision
// and movement checks.
type Direction struct {
	Left, Right, Top, Bottom bool
}

// Any returns true if at least one side is flagged.
func (d Direction) Any() bool {
	return d.Left || d.Right || d.Top || d.Bottom
}

// String returns the flagged sides joined with '+', or "none".
func (d Direction) String() string {
	var parts []string
	if d.Left {
		parts = append(parts, "left")
	}
	if d.Right {
		parts = append(parts, "right")
	}
	if d.Top {
		parts = append(parts, "top")
	}
	if d.Bottom {
		parts = append(parts, "bottom")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
