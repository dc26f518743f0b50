package export

import (
	"cmp"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/expsearch/internal/search"
)

// Document is the JSON form of one search and its trace.
type Document[T cmp.Ordered] struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Sequence  []T       `json:"sequence"`
	Target    T         `json:"target"`
	Index     int       `json:"index"`
	Found     bool      `json:"found"`
	Steps     []Step    `json:"steps"`
}

// Step is one snapshot. Index fields are omitted when the event has none.
type Step struct {
	Step   int           `json:"step"`
	Status search.Status `json:"status"`
	Action string        `json:"action"`
	I      *int          `json:"i,omitempty"`
	Low    *int          `json:"low,omitempty"`
	High   *int          `json:"high,omitempty"`
	Mid    *int          `json:"mid,omitempty"`
	Phase  string        `json:"phase,omitempty"`
}

func NewDocument[T cmp.Ordered](res search.Result[T]) Document[T] {
	doc := Document[T]{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Sequence:  res.Trace.Sequence(),
		Target:    res.Trace.Target(),
		Index:     res.Index,
		Found:     res.Found(),
		Steps:     make([]Step, 0, res.Trace.Len()),
	}
	for i, s := range res.Trace.All() {
		doc.Steps = append(doc.Steps, stepOf(i, s.Event, s.Action))
	}
	return doc
}

// NewStep converts one snapshot into its exported form.
func NewStep[T cmp.Ordered](i int, s search.Snapshot[T]) Step {
	return stepOf(i, s.Event, s.Action)
}

func stepOf(i int, ev search.Event, action string) Step {
	st := Step{Step: i, Status: ev.Status(), Action: action}
	switch e := ev.(type) {
	case search.Probing:
		st.I = intPtr(e.I)
	case search.BoundFound:
		st.I, st.Low, st.High = intPtr(e.I), intPtr(e.Low), intPtr(e.High)
	case search.BinaryStart:
		st.Low, st.High = intPtr(e.Low), intPtr(e.High)
	case search.Checking:
		st.Low, st.High, st.Mid = intPtr(e.Low), intPtr(e.High), intPtr(e.Mid)
	case search.Found:
		st.Phase = e.Phase.String()
		if e.Phase == search.PhaseBounding {
			st.I = intPtr(e.Index)
		} else {
			st.Low, st.High, st.Mid = intPtr(e.Low), intPtr(e.High), intPtr(e.Index)
		}
	case search.BinaryFailed:
		st.Low, st.High = intPtr(e.Low), intPtr(e.High)
	}
	return st
}

func intPtr(v int) *int { return &v }

func WriteJSON[T cmp.Ordered](w io.Writer, doc Document[T]) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
