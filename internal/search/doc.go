// Package search implements exponential search with a replayable trace.
//
// A call to [Search] sorts its input, runs the two phases of the algorithm
// and returns the index of the target together with a [Trace] holding one
// [Snapshot] per decision:
//
//   - bounding: probe indices 1, 2, 4, 8, ... until an element exceeds the
//     target or the end of the sequence is passed
//   - binary: classic binary search inside the range found above
//
// # Example
//
//	res := search.Search([]int{2, 4, 8, 16, 32}, 16)
//	for i, snap := range res.Trace.All() {
//	    fmt.Println(i, snap.Status(), snap.Action)
//	}
//
// # Events
//
// Every snapshot carries an [Event]. The concrete type tells which phase
// produced it and which indices are meaningful:
//
//	switch ev := snap.Event.(type) {
//	case search.Probing:
//	    // ev.I
//	case search.Checking:
//	    // ev.Low, ev.High, ev.Mid
//	}
//
// # Thread Safety
//
// The package holds no mutable global state. Each call builds its own trace,
// so calls may run concurrently. A returned Trace is read-only.
package search
