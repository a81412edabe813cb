// Package listdiff calculates the difference between two ordered lists and
// produces the update operations that convert the old list into the new one.
//
// The calculation uses Eugene W. Myers's difference algorithm to find the
// minimal number of additions and removals between the two lists. Myers's
// algorithm does not handle moved items, so an optional second pass detects
// items that changed position. The algorithm uses O(N) space and has
// O(N + D^2) expected time performance, where D is the length of the edit
// script.
//
// Callers describe their lists through the Callback interface (identity and
// content equality are decided by the caller, never by reference identity)
// and receive the computed operations through the UpdateCallback interface.
package listdiff

// NoPosition is returned by the position-conversion methods when an item has
// no counterpart in the other list.
const NoPosition = -1

// Callback is the gateway between the diff calculation and the backing list
// data. Indices are zero-based. The lists must not change while a
// CalculateDiff call, or a dispatch on its Result, is in flight.
type Callback interface {
	// OldListSize returns the size of the old list.
	OldListSize() int

	// NewListSize returns the size of the new list.
	NewListSize() int

	// AreItemsTheSame reports whether the two items represent the same
	// entity. If items carry unique ids, this should compare id equality.
	AreItemsTheSame(oldPosition, newPosition int) bool

	// AreContentsTheSame reports whether the two items hold the same data.
	// It is called only when AreItemsTheSame returns true for the pair.
	AreContentsTheSame(oldPosition, newPosition int) bool

	// ChangePayload returns an optional payload describing the change
	// between two items. It is called only when AreItemsTheSame returns
	// true and AreContentsTheSame returns false for the pair.
	ChangePayload(oldPosition, newPosition int) any
}

// UpdateCallback receives the update operations that are applied to a list.
// The operations are atomic: each one is positioned relative to the list
// state produced by the operations before it.
type UpdateCallback interface {
	// OnInserted is called when count items are inserted at position.
	OnInserted(position, count int)

	// OnRemoved is called when count items are removed from position.
	OnRemoved(position, count int)

	// OnMoved is called when an item moves from fromPosition to toPosition.
	OnMoved(fromPosition, toPosition int)

	// OnChanged is called when count items at position are updated.
	// payload is nil unless the Callback supplied one.
	OnChanged(position, count int, payload any)
}

// CalculateDiff calculates the list of update operations that convert the
// old list described by cb into the new one. When detectMoves is true, a
// second pass detects items that moved between the lists; turning it off
// makes the calculation faster and expresses relocations as remove+insert
// pairs instead.
//
// It returns ErrDiffInconsistency if the search fails to converge, which
// means the lists changed while the calculation was running.
func CalculateDiff(cb Callback, detectMoves bool) (*Result, error) {
	snakes, err := calculateSnakes(cb)
	if err != nil {
		return nil, err
	}
	return newResult(cb, snakes, detectMoves), nil
}
