package render

// Layers is an ordered set of paint queues. Layer 0 is drawn first.
// Queues are created on demand up to the highest index painted.
type Layers struct {
	queues [][]Renderable
}

// NewLayers creates n empty layers. n below 1 is treated as 1.
func NewLayers(n int) *Layers {
	if n < 1 {
		n = 1
	}
	return &Layers{queues: make([][]Renderable, n)}
}

// Len returns the number of allocated layers.
func (l *Layers) Len() int {
	return len(l.queues)
}

// Pending returns how many renderables are queued across all layers.
func (l *Layers) Pending() int {
	n := 0
	for _, q := range l.queues {
		n += len(q)
	}
	return n
}

// Paint appends r to the queue of the given layer.
// Negative indexes paint into layer 0.
func (l *Layers) Paint(r Renderable, layer int) {
	if r == nil {
		return
	}
	if layer < 0 {
		layer = 0
	}
	for len(l.queues) <= layer {
		l.queues = append(l.queues, nil)
	}
	l.queues[layer] = append(l.queues[layer], r)
}

// Flush renders every queue in layer order onto dst and then empties them.
// A nil dst only clears the queues.
func (l *Layers) Flush(dst Surface) {
	for i, q := range l.queues {
		if dst != nil {
			for _, r := range q {
				r.Render(dst)
			}
		}
		clear(q)
		l.queues[i] = q[:0]
	}
}

// Clear drops everything queued without rendering.
func (l *Layers) Clear() {
	l.Flush(nil)
}
