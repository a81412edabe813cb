package listdiff

import (
	"reflect"
	"testing"
)

func TestSliceCallback(t *testing.T) {
	old := []testItem{{1, "A"}, {2, "B"}}
	new := []testItem{{2, "B2"}}
	cb := &SliceCallback[testItem]{Old: old, New: new, Cmp: testComparer{}}

	if got := cb.OldListSize(); got != 2 {
		t.Errorf("OldListSize() = %d, want 2", got)
	}
	if got := cb.NewListSize(); got != 1 {
		t.Errorf("NewListSize() = %d, want 1", got)
	}
	if cb.AreItemsTheSame(0, 0) {
		t.Error("AreItemsTheSame(0, 0) = true for different ids")
	}
	if !cb.AreItemsTheSame(1, 0) {
		t.Error("AreItemsTheSame(1, 0) = false for equal ids")
	}
	if cb.AreContentsTheSame(1, 0) {
		t.Error("AreContentsTheSame(1, 0) = true for different names")
	}
	if got := cb.ChangePayload(1, 0); got != nil {
		t.Errorf("ChangePayload(1, 0) = %v, want nil without a PayloadComparer", got)
	}
}

// payloadComparer matches like testComparer and describes content changes.
type payloadComparer struct{ testComparer }

func (payloadComparer) ChangePayload(oldItem, newItem testItem) any {
	return oldItem.name + "->" + newItem.name
}

func TestDiff_ChangePayload(t *testing.T) {
	old := []testItem{{1, "Item1"}, {2, "Item2"}}
	new := []testItem{{1, "Item1"}, {2, "Item2_Modified"}}

	result, err := Diff(old, new, payloadComparer{}, true)
	if err != nil {
		t.Fatalf("Diff() error: %v", err)
	}
	rec := &recordingCallback{}
	result.DispatchUpdatesTo(rec)

	want := []update{{kind: "change", position: 1, count: 1, payload: "Item2->Item2_Modified"}}
	if !reflect.DeepEqual(rec.updates, want) {
		t.Errorf("updates = %v, want %v", rec.updates, want)
	}
}

func TestEqualityComparer(t *testing.T) {
	old := []string{"a", "b"}
	new := []string{"a", "c"}

	result, err := Diff(old, new, EqualityComparer[string]{}, false)
	if err != nil {
		t.Fatalf("Diff() error: %v", err)
	}
	rec := &recordingCallback{}
	result.DispatchUpdatesTo(rec)

	// Identity and content coincide, so an edit is a remove plus an insert,
	// never a change.
	want := []update{
		{kind: "remove", position: 1, count: 1},
		{kind: "insert", position: 1, count: 1},
	}
	if !reflect.DeepEqual(rec.updates, want) {
		t.Errorf("updates = %v, want %v", rec.updates, want)
	}
}
