package listdiff

// Comparer decides identity and content equality for items of type T.
// Implementations compare items directly instead of going through list
// positions, which is the convenient form when both lists are plain slices.
type Comparer[T any] interface {
	// AreItemsTheSame reports whether the two items represent the same
	// entity, for example by comparing unique ids.
	AreItemsTheSame(oldItem, newItem T) bool

	// AreContentsTheSame reports whether the two items hold the same data.
	// It is called only when AreItemsTheSame returns true for the pair.
	AreContentsTheSame(oldItem, newItem T) bool
}

// PayloadComparer is a Comparer that also supplies change payloads for items
// whose identity matched but whose contents did not.
type PayloadComparer[T any] interface {
	Comparer[T]

	ChangePayload(oldItem, newItem T) any
}

// EqualityComparer compares items of a comparable type by plain equality.
// Identity and content coincide, so a matched item is never reported as
// changed; a value edit shows up as a removal plus an insertion. This is the
// right comparer for lists of lines or tokens.
type EqualityComparer[T comparable] struct{}

func (EqualityComparer[T]) AreItemsTheSame(oldItem, newItem T) bool { return oldItem == newItem }

func (EqualityComparer[T]) AreContentsTheSame(oldItem, newItem T) bool { return true }

// SliceCallback adapts two slices and a Comparer to the Callback interface.
type SliceCallback[T any] struct {
	Old []T
	New []T
	Cmp Comparer[T]
}

func (s *SliceCallback[T]) OldListSize() int { return len(s.Old) }

func (s *SliceCallback[T]) NewListSize() int { return len(s.New) }

func (s *SliceCallback[T]) AreItemsTheSame(oldPosition, newPosition int) bool {
	return s.Cmp.AreItemsTheSame(s.Old[oldPosition], s.New[newPosition])
}

func (s *SliceCallback[T]) AreContentsTheSame(oldPosition, newPosition int) bool {
	return s.Cmp.AreContentsTheSame(s.Old[oldPosition], s.New[newPosition])
}

func (s *SliceCallback[T]) ChangePayload(oldPosition, newPosition int) any {
	if pc, ok := s.Cmp.(PayloadComparer[T]); ok {
		return pc.ChangePayload(s.Old[oldPosition], s.New[newPosition])
	}
	return nil
}

// Diff calculates the update operations that convert old into new, comparing
// items with cmp. It is shorthand for CalculateDiff over a SliceCallback.
func Diff[T any](old, new []T, cmp Comparer[T], detectMoves bool) (*Result, error) {
	return CalculateDiff(&SliceCallback[T]{Old: old, New: new, Cmp: cmp}, detectMoves)
}
