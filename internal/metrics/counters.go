package metrics

import "github.com/san-kum/expsearch/internal/search"

// statusCount counts events with one status.
type statusCount struct {
	name   string
	status search.Status
	n      int
}

func NewProbes() Metric {
	return &statusCount{name: "probes", status: search.StatusProbing}
}

func NewMidpoints() Metric {
	return &statusCount{name: "midpoints", status: search.StatusChecking}
}

func (c *statusCount) Name() string { return c.name }

func (c *statusCount) Observe(ev search.Event) {
	if ev.Status() == c.status {
		c.n++
	}
}

func (c *statusCount) Value() float64 { return float64(c.n) }
func (c *statusCount) Reset()         { c.n = 0 }

type Steps struct {
	n int
}

func NewSteps() *Steps { return &Steps{} }

func (s *Steps) Name() string            { return "steps" }
func (s *Steps) Observe(ev search.Event) { s.n++ }
func (s *Steps) Value() float64          { return float64(s.n) }
func (s *Steps) Reset()                  { s.n = 0 }

// BoundWidth is the size of the range handed from the bounding phase to the
// binary phase.
type BoundWidth struct {
	width int
}

func NewBoundWidth() *BoundWidth { return &BoundWidth{} }

func (b *BoundWidth) Name() string { return "bound_width" }

func (b *BoundWidth) Observe(ev search.Event) {
	if bf, ok := ev.(search.BoundFound); ok {
		b.width = bf.High - bf.Low + 1
	}
}

func (b *BoundWidth) Value() float64 { return float64(b.width) }
func (b *BoundWidth) Reset()         { b.width = 0 }
