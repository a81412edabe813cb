package listdiff

import (
	"errors"
	"reflect"
	"testing"
)

// testItem is list data with a stable identity and mutable content.
type testItem struct {
	id   int
	name string
}

// testComparer matches items by id and contents by full value.
type testComparer struct{}

func (testComparer) AreItemsTheSame(oldItem, newItem testItem) bool {
	return oldItem.id == newItem.id
}

func (testComparer) AreContentsTheSame(oldItem, newItem testItem) bool {
	return oldItem == newItem
}

// update is one recorded sink callback.
type update struct {
	kind     string // "insert", "remove", "move", "change"
	position int
	count    int
	to       int // for moves
	payload  any
}

// recordingCallback collects the dispatched update stream.
type recordingCallback struct {
	updates []update
}

func (r *recordingCallback) OnInserted(position, count int) {
	r.updates = append(r.updates, update{kind: "insert", position: position, count: count})
}

func (r *recordingCallback) OnRemoved(position, count int) {
	r.updates = append(r.updates, update{kind: "remove", position: position, count: count})
}

func (r *recordingCallback) OnMoved(fromPosition, toPosition int) {
	r.updates = append(r.updates, update{kind: "move", position: fromPosition, count: 1, to: toPosition})
}

func (r *recordingCallback) OnChanged(position, count int, payload any) {
	r.updates = append(r.updates, update{kind: "change", position: position, count: count, payload: payload})
}

func dispatchDiff(t *testing.T, old, new []testItem, detectMoves bool) []update {
	t.Helper()
	result, err := Diff(old, new, testComparer{}, detectMoves)
	if err != nil {
		t.Fatalf("Diff() error: %v", err)
	}
	rec := &recordingCallback{}
	result.DispatchUpdatesTo(rec)
	return rec.updates
}

func TestCalculateDiff_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		old, new    []testItem
		detectMoves bool
		want        []update
	}{
		{
			name:        "basic addition",
			old:         []testItem{{1, "Item1"}, {2, "Item2"}},
			new:         []testItem{{1, "Item1"}, {2, "Item2"}, {3, "Item3"}},
			detectMoves: true,
			want:        []update{{kind: "insert", position: 2, count: 1}},
		},
		{
			name:        "basic removal",
			old:         []testItem{{1, "Item1"}, {2, "Item2"}, {3, "Item3"}},
			new:         []testItem{{1, "Item1"}, {3, "Item3"}},
			detectMoves: true,
			want:        []update{{kind: "remove", position: 1, count: 1}},
		},
		{
			name:        "basic change",
			old:         []testItem{{1, "Item1"}, {2, "Item2"}},
			new:         []testItem{{1, "Item1"}, {2, "Item2_Modified"}},
			detectMoves: true,
			want:        []update{{kind: "change", position: 1, count: 1}},
		},
		{
			name:        "basic move",
			old:         []testItem{{1, "Item1"}, {2, "Item2"}, {3, "Item3"}},
			new:         []testItem{{2, "Item2"}, {1, "Item1"}, {3, "Item3"}},
			detectMoves: true,
			want:        []update{{kind: "move", position: 1, count: 1, to: 0}},
		},
		{
			name:        "both empty",
			old:         nil,
			new:         nil,
			detectMoves: true,
			want:        nil,
		},
		{
			name:        "old empty, coalesced insert",
			old:         nil,
			new:         []testItem{{1, "Item1"}, {2, "Item2"}},
			detectMoves: false,
			want:        []update{{kind: "insert", position: 0, count: 2}},
		},
		{
			name:        "new empty, coalesced remove",
			old:         []testItem{{1, "Item1"}, {2, "Item2"}},
			new:         nil,
			detectMoves: false,
			want:        []update{{kind: "remove", position: 0, count: 2}},
		},
		{
			name:        "identical lists",
			old:         []testItem{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}},
			new:         []testItem{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}},
			detectMoves: true,
			want:        nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dispatchDiff(t, tt.old, tt.new, tt.detectMoves)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dispatched updates = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateDiff_ComplexChanges(t *testing.T) {
	old := []testItem{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}}
	new := []testItem{{1, "A"}, {3, "C_Modified"}, {5, "E"}, {4, "D"}}

	got := dispatchDiff(t, old, new, true)
	if len(got) == 0 {
		t.Fatal("expected updates for complex change, got none")
	}
}

func TestCalculateDiff_NoMoveDetection(t *testing.T) {
	old := []testItem{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}}
	new := []testItem{{3, "C"}, {1, "A"}, {4, "D"}, {2, "B"}}

	got := dispatchDiff(t, old, new, false)
	for _, u := range got {
		if u.kind == "move" {
			t.Fatalf("detectMoves=false dispatched a move: %v", got)
		}
	}
}

func TestConvertPositions(t *testing.T) {
	old := []testItem{{1, "Item1"}, {2, "Item2"}, {3, "Item3"}}
	new := []testItem{{1, "Item1"}, {3, "Item3"}}

	result, err := Diff(old, new, testComparer{}, true)
	if err != nil {
		t.Fatalf("Diff() error: %v", err)
	}

	oldToNew := []int{0, NoPosition, 1}
	for i, want := range oldToNew {
		got, err := result.ConvertOldPositionToNew(i)
		if err != nil {
			t.Fatalf("ConvertOldPositionToNew(%d) error: %v", i, err)
		}
		if got != want {
			t.Errorf("ConvertOldPositionToNew(%d) = %d, want %d", i, got, want)
		}
	}

	newToOld := []int{0, 2}
	for j, want := range newToOld {
		got, err := result.ConvertNewPositionToOld(j)
		if err != nil {
			t.Fatalf("ConvertNewPositionToOld(%d) error: %v", j, err)
		}
		if got != want {
			t.Errorf("ConvertNewPositionToOld(%d) = %d, want %d", j, got, want)
		}
	}
}

func TestConvertPositions_OutOfRange(t *testing.T) {
	old := []testItem{{1, "Item1"}}
	new := []testItem{{1, "Item1"}, {2, "Item2"}}

	result, err := Diff(old, new, testComparer{}, true)
	if err != nil {
		t.Fatalf("Diff() error: %v", err)
	}

	for _, pos := range []int{-1, 1, 5} {
		_, err := result.ConvertOldPositionToNew(pos)
		var oore *OutOfRangeError
		if !errors.As(err, &oore) {
			t.Errorf("ConvertOldPositionToNew(%d) error = %v, want *OutOfRangeError", pos, err)
			continue
		}
		if oore.Position != pos || oore.Size != len(old) || oore.List != "old" {
			t.Errorf("ConvertOldPositionToNew(%d) error detail = %+v", pos, oore)
		}
	}

	if _, err := result.ConvertNewPositionToOld(2); err == nil {
		t.Error("ConvertNewPositionToOld(2) expected error for new list of size 2")
	}
}

func TestConvertPositions_RoundTrip(t *testing.T) {
	old := []testItem{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}, {5, "E"}}
	new := []testItem{{4, "D"}, {1, "A"}, {6, "F"}, {3, "C_Modified"}, {2, "B"}}

	result, err := Diff(old, new, testComparer{}, true)
	if err != nil {
		t.Fatalf("Diff() error: %v", err)
	}

	for i := range old {
		n, err := result.ConvertOldPositionToNew(i)
		if err != nil {
			t.Fatalf("ConvertOldPositionToNew(%d) error: %v", i, err)
		}
		if n == NoPosition {
			continue
		}
		back, err := result.ConvertNewPositionToOld(n)
		if err != nil {
			t.Fatalf("ConvertNewPositionToOld(%d) error: %v", n, err)
		}
		if back != i {
			t.Errorf("old %d -> new %d -> old %d, not a round trip", i, n, back)
		}
	}

	for j := range new {
		o, err := result.ConvertNewPositionToOld(j)
		if err != nil {
			t.Fatalf("ConvertNewPositionToOld(%d) error: %v", j, err)
		}
		if o == NoPosition {
			continue
		}
		back, err := result.ConvertOldPositionToNew(o)
		if err != nil {
			t.Fatalf("ConvertOldPositionToNew(%d) error: %v", o, err)
		}
		if back != j {
			t.Errorf("new %d -> old %d -> new %d, not a round trip", j, o, back)
		}
	}
}
