package search

// Event is the payload of a snapshot. The set of implementations is closed:
// Start, Empty, Probing, BoundFound, BinaryStart, Checking, Found,
// BinaryFailed and Done.
type Event interface {
	Status() Status
	event()
}

// Phase names the part of the algorithm that produced a Found event.
type Phase uint8

const (
	// PhaseBounding marks the first-element short-circuit.
	PhaseBounding Phase = iota
	PhaseBinary
)

func (p Phase) String() string {
	if p == PhaseBounding {
		return "bounding"
	}
	return "binary"
}

// Start opens every trace of a non-empty sequence.
type Start struct{}

// Empty is the only snapshot of a search over an empty sequence.
type Empty struct{}

// Probing records an exponential probe at index I whose element is <= target.
type Probing struct {
	I int
}

// BoundFound closes the bounding phase. I is the probe index that stopped
// the doubling, possibly past the end of the sequence.
type BoundFound struct {
	I    int
	Low  int
	High int
}

// BinaryStart opens the binary phase over [Low, High].
type BinaryStart struct {
	Low  int
	High int
}

// Checking records a comparison against the midpoint of [Low, High].
type Checking struct {
	Low  int
	High int
	Mid  int
}

// Found records a match at Index. Low and High are the window in which the
// match happened; both are zero for the bounding short-circuit.
type Found struct {
	Index int
	Low   int
	High  int
	Phase Phase
}

// BinaryFailed records the crossed window left when the binary phase gives up.
type BinaryFailed struct {
	Low  int
	High int
}

// Done confirms that the target is absent.
type Done struct{}

func (Start) Status() Status        { return StatusStart }
func (Empty) Status() Status        { return StatusEmpty }
func (Probing) Status() Status      { return StatusProbing }
func (BoundFound) Status() Status   { return StatusBoundFound }
func (BinaryStart) Status() Status  { return StatusBinaryStart }
func (Checking) Status() Status     { return StatusChecking }
func (Found) Status() Status        { return StatusFound }
func (BinaryFailed) Status() Status { return StatusBinaryFailed }
func (Done) Status() Status         { return StatusDone }

func (Start) event()        {}
func (Empty) event()        {}
func (Probing) event()      {}
func (BoundFound) event()   {}
func (BinaryStart) event()  {}
func (Checking) event()     {}
func (Found) event()        {}
func (BinaryFailed) event() {}
func (Done) event()         {}

// Window returns the [low, high] range an event refers to, if any.
func Window(ev Event) (low, high int, ok bool) {
	switch e := ev.(type) {
	case BoundFound:
		return e.Low, e.High, true
	case BinaryStart:
		return e.Low, e.High, true
	case Checking:
		return e.Low, e.High, true
	case BinaryFailed:
		return e.Low, e.High, true
	case Found:
		if e.Phase == PhaseBinary {
			return e.Low, e.High, true
		}
	}
	return 0, 0, false
}
