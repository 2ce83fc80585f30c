// Package sorting defines the step protocol between sorting algorithms and
// whatever renders them.
//
// An [Engine] owns a private copy of its input and produces a finite,
// non-restartable sequence of [Snapshot] values, one per visual step:
//
//   - [Snapshot]: frozen copy of the array, sorted boundary, active indices
//   - [Engine]: resumable iterator over the snapshots of one run
//   - [Kind]: closed set of algorithms, selectable by display name
//
// # Example
//
//	e, _ := sorting.New(sorting.Bubble, []int{2, 1})
//	for e.HasNext() {
//	    snap, _ := e.Next()
//	    render(snap.Values, snap.Boundary, snap.Active)
//	}
//
// # Thread Safety
//
// Engines are NOT thread-safe. Each run is driven by a single consumer.
package sorting
