package export

import (
	"cmp"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/expsearch/internal/search"
)

var csvHeader = []string{"step", "status", "i", "low", "high", "mid", "action"}

// WriteCSV writes one row per snapshot. Index columns without a value are
// left blank.
func WriteCSV[T cmp.Ordered](w io.Writer, tr *search.Trace[T]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, s := range tr.All() {
		st := stepOf(i, s.Event, s.Action)
		row := []string{
			strconv.Itoa(st.Step),
			st.Status.String(),
			optional(st.I),
			optional(st.Low),
			optional(st.High),
			optional(st.Mid),
			st.Action,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func optional(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
