package listdiff

import (
	"errors"
	"fmt"
)

// ErrDiffInconsistency is returned by CalculateDiff when the shortest-path
// search exhausts its theoretical step bound without converging. This happens
// when the lists behind the Callback change during the calculation. The
// partial state is unusable and the whole diff must be recalculated from
// stable data; retrying with the same input would fail the same way.
var ErrDiffInconsistency = errors.New(
	"listdiff: unexpected case while calculating the optimal path, make sure your data is not changing during the diff calculation")

// OutOfRangeError is returned by the position-conversion methods when the
// requested position lies outside the list size captured at calculation time.
type OutOfRangeError struct {
	Position int    // the position that was passed in
	Size     int    // the size of the list it was checked against
	List     string // "old" or "new"
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("listdiff: position %d out of range for %s list of size %d",
		e.Position, e.List, e.Size)
}
