package search

import "fmt"

// Status labels the state machine position of a snapshot.
type Status uint8

const (
	StatusStart Status = iota
	StatusEmpty
	StatusProbing
	StatusBoundFound
	StatusBinaryStart
	StatusChecking
	StatusFound
	StatusBinaryFailed
	StatusDone
)

var statusNames = [...]string{
	StatusStart:        "Start",
	StatusEmpty:        "Empty",
	StatusProbing:      "Probing",
	StatusBoundFound:   "BoundFound",
	StatusBinaryStart:  "BinaryStart",
	StatusChecking:     "Checking",
	StatusFound:        "Found",
	StatusBinaryFailed: "BinaryFailed",
	StatusDone:         "Done",
}

// Statuses returns every status in declaration order.
func Statuses() []Status {
	out := make([]Status, len(statusNames))
	for i := range statusNames {
		out[i] = Status(i)
	}
	return out
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool { return int(s) < len(statusNames) }

// Terminal reports whether no snapshot can follow one with this status.
func (s Status) Terminal() bool {
	return s == StatusFound || s == StatusDone || s == StatusEmpty
}

// Binary reports whether the status belongs to the binary phase window.
func (s Status) Binary() bool {
	return s == StatusBinaryStart || s == StatusChecking || s == StatusBinaryFailed
}

// ParseStatus is the inverse of String.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("search: unknown status %q", name)
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("search: invalid status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	v, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
