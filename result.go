package listdiff

import "fmt"

// statusFlag classifies an item's relationship to its counterpart in the
// other list. Exactly one flag applies per item; flagNone means the item has
// no counterpart (a pure addition or removal).
type statusFlag uint8

const (
	flagNone statusFlag = iota
	flagNotChanged
	flagChanged
	flagMovedChanged
	flagMovedNotChanged

	// flagIgnore marks the already-claimed half of a move pair so the
	// status pass does not match it a second time. The dispatch pass turns
	// it into a postponed update.
	flagIgnore
)

// itemStatus records an item's flag and the position of its counterpart in
// the other list. counterpart is meaningful only when flag != flagNone.
type itemStatus struct {
	flag        statusFlag
	counterpart int
}

// postponedUpdate pairs one half of a move with its later-processed other
// half during dispatch. currentPos tracks where the item sits in the list as
// surrounding insertions and removals shift it.
type postponedUpdate struct {
	posInOwnerList int
	currentPos     int
	removal        bool
}

// Result holds the outcome of a CalculateDiff call. It is immutable after
// construction; consume the updates via DispatchUpdatesTo.
type Result struct {
	snakes      []Snake
	oldStatuses []itemStatus
	newStatuses []itemStatus
	cb          Callback
	oldListSize int
	newListSize int
	detectMoves bool
}

func newResult(cb Callback, snakes []Snake, detectMoves bool) *Result {
	r := &Result{
		snakes:      snakes,
		cb:          cb,
		oldListSize: cb.OldListSize(),
		newListSize: cb.NewListSize(),
		detectMoves: detectMoves,
	}
	r.oldStatuses = make([]itemStatus, r.oldListSize)
	r.newStatuses = make([]itemStatus, r.newListSize)
	r.addRootSnake()
	r.findMatchingItems()
	return r
}

// Snakes returns the sorted snakes found by the calculation. The returned
// slice is owned by the Result and must not be modified.
func (r *Result) Snakes() []Snake {
	return r.snakes
}

// addRootSnake prepends a zero-size snake at (0, 0) unless one is already
// there. The loops in findMatchingItems and DispatchUpdatesTo walk the snake
// list backward and rely on the root snake to terminate at the list heads.
func (r *Result) addRootSnake() {
	if len(r.snakes) > 0 && r.snakes[0].X == 0 && r.snakes[0].Y == 0 {
		return
	}
	r.snakes = append([]Snake{{}}, r.snakes...)
}

// findMatchingItems walks the snakes backward, assigning each matched pair a
// changed/not-changed status and, when move detection is on, scanning the
// unmatched gaps between snakes for items that relocated.
func (r *Result) findMatchingItems() {
	posOld := r.oldListSize
	posNew := r.newListSize

	for i := len(r.snakes) - 1; i >= 0; i-- {
		snake := r.snakes[i]
		endX := snake.X + snake.Size
		endY := snake.Y + snake.Size

		if r.detectMoves {
			for posOld > endX {
				r.findAddition(posOld, posNew, i)
				posOld--
			}
			for posNew > endY {
				r.findRemoval(posOld, posNew, i)
				posNew--
			}
		}

		for j := 0; j < snake.Size; j++ {
			oldItemPos := snake.X + j
			newItemPos := snake.Y + j
			flag := flagChanged
			if r.cb.AreContentsTheSame(oldItemPos, newItemPos) {
				flag = flagNotChanged
			}
			r.oldStatuses[oldItemPos] = itemStatus{flag: flag, counterpart: newItemPos}
			r.newStatuses[newItemPos] = itemStatus{flag: flag, counterpart: oldItemPos}
		}

		posOld = snake.X
		posNew = snake.Y
	}
}

// findAddition checks whether the unmatched old item at x-1 shows up later
// in the new list as an apparent addition, which would make it a move.
func (r *Result) findAddition(x, y, snakeIndex int) {
	if r.oldStatuses[x-1].flag != flagNone {
		return
	}
	r.findMatchingItem(x, y, snakeIndex, false)
}

// findRemoval checks whether the unmatched new item at y-1 shows up earlier
// in the old list as an apparent removal, which would make it a move.
func (r *Result) findRemoval(x, y, snakeIndex int) {
	if r.newStatuses[y-1].flag != flagNone {
		return
	}
	r.findMatchingItem(x, y, snakeIndex, true)
}

// findMatchingItem scans backward through the gaps between earlier snakes
// for the counterpart of one unmatched item. The scan is greedy and looks in
// one direction only, so it can pick a suboptimal pairing when several
// candidates exist; that behavior is part of the established contract and is
// kept as is.
func (r *Result) findMatchingItem(x, y, snakeIndex int, removal bool) bool {
	var myItemPos, curX, curY int
	if removal {
		myItemPos = y - 1
		curX = x
		curY = y - 1
	} else {
		myItemPos = x - 1
		curX = x - 1
		curY = y
	}

	for i := snakeIndex; i >= 0; i-- {
		snake := r.snakes[i]
		endX := snake.X + snake.Size
		endY := snake.Y + snake.Size

		if removal {
			for pos := curX - 1; pos >= endX; pos-- {
				if r.cb.AreItemsTheSame(pos, myItemPos) {
					flag := flagMovedChanged
					if r.cb.AreContentsTheSame(pos, myItemPos) {
						flag = flagMovedNotChanged
					}
					r.newStatuses[myItemPos] = itemStatus{flag: flagIgnore, counterpart: pos}
					r.oldStatuses[pos] = itemStatus{flag: flag, counterpart: myItemPos}
					return true
				}
			}
		} else {
			for pos := curY - 1; pos >= endY; pos-- {
				if r.cb.AreItemsTheSame(myItemPos, pos) {
					flag := flagMovedChanged
					if r.cb.AreContentsTheSame(myItemPos, pos) {
						flag = flagMovedNotChanged
					}
					r.oldStatuses[x-1] = itemStatus{flag: flagIgnore, counterpart: pos}
					r.newStatuses[pos] = itemStatus{flag: flag, counterpart: x - 1}
					return true
				}
			}
		}

		curX = snake.X
		curY = snake.Y
	}
	return false
}

// ConvertOldPositionToNew returns the position of the item in the new list,
// given its position in the old list. It returns NoPosition if the item was
// removed, and an *OutOfRangeError if the position is outside the old list
// size captured at calculation time.
func (r *Result) ConvertOldPositionToNew(oldListPosition int) (int, error) {
	if oldListPosition < 0 || oldListPosition >= r.oldListSize {
		return NoPosition, &OutOfRangeError{Position: oldListPosition, Size: r.oldListSize, List: "old"}
	}
	status := r.oldStatuses[oldListPosition]
	if status.flag == flagNone {
		return NoPosition, nil
	}
	return status.counterpart, nil
}

// ConvertNewPositionToOld returns the position of the item in the old list,
// given its position in the new list. It returns NoPosition if the item was
// added, and an *OutOfRangeError if the position is outside the new list
// size captured at calculation time.
func (r *Result) ConvertNewPositionToOld(newListPosition int) (int, error) {
	if newListPosition < 0 || newListPosition >= r.newListSize {
		return NoPosition, &OutOfRangeError{Position: newListPosition, Size: r.newListSize, List: "new"}
	}
	status := r.newStatuses[newListPosition]
	if status.flag == flagNone {
		return NoPosition, nil
	}
	return status.counterpart, nil
}

// DispatchUpdatesTo dispatches the update operations to the given callback.
// The operations are emitted so that applying them one at a time, in order,
// to a mutable copy of the old list yields the new list.
//
// A status flag the dispatcher does not recognize means the status pass is
// broken; that is an internal invariant violation and panics.
func (r *Result) DispatchUpdatesTo(cb UpdateCallback) {
	var postponed []postponedUpdate
	posOld := r.oldListSize
	posNew := r.newListSize

	for i := len(r.snakes) - 1; i >= 0; i-- {
		snake := r.snakes[i]
		endX := snake.X + snake.Size
		endY := snake.Y + snake.Size

		if endX < posOld {
			postponed = r.dispatchRemovals(postponed, cb, endX, posOld-endX, endX)
		}
		if endY < posNew {
			postponed = r.dispatchAdditions(postponed, cb, endX, posNew-endY, endY)
		}

		for j := snake.Size - 1; j >= 0; j-- {
			if r.oldStatuses[snake.X+j].flag == flagChanged {
				cb.OnChanged(snake.X+j, 1, r.cb.ChangePayload(snake.X+j, snake.Y+j))
			}
		}

		posOld = snake.X
		posNew = snake.Y
	}
}

// dispatchAdditions handles the gap of new items between a snake's end and
// the running cursor. Without move detection the whole gap is one coalesced
// insert; with it, each item is classified by its status flag, from the
// highest index down so the position arithmetic stays valid.
func (r *Result) dispatchAdditions(postponed []postponedUpdate, cb UpdateCallback,
	start, count, globalIndex int) []postponedUpdate {

	if !r.detectMoves {
		cb.OnInserted(start, count)
		return postponed
	}

	for i := count - 1; i >= 0; i-- {
		status := r.newStatuses[globalIndex+i]
		switch status.flag {
		case flagNone: // real addition
			cb.OnInserted(start, 1)
			for j := range postponed {
				postponed[j].currentPos++
			}

		case flagMovedChanged, flagMovedNotChanged:
			pos := status.counterpart
			var update postponedUpdate
			update, postponed = removePostponedUpdate(postponed, pos, true)
			cb.OnMoved(update.currentPos, start)
			if status.flag == flagMovedChanged {
				cb.OnChanged(start, 1, r.cb.ChangePayload(pos, globalIndex+i))
			}

		case flagIgnore: // the other half of this move is processed later
			postponed = append(postponed, postponedUpdate{
				posInOwnerList: globalIndex + i,
				currentPos:     start,
				removal:        false,
			})

		default:
			panic(fmt.Sprintf("listdiff: unknown flag %d for new list position %d",
				status.flag, globalIndex+i))
		}
	}
	return postponed
}

// dispatchRemovals is the removal-side counterpart of dispatchAdditions.
func (r *Result) dispatchRemovals(postponed []postponedUpdate, cb UpdateCallback,
	start, count, globalIndex int) []postponedUpdate {

	if !r.detectMoves {
		cb.OnRemoved(start, count)
		return postponed
	}

	for i := count - 1; i >= 0; i-- {
		status := r.oldStatuses[globalIndex+i]
		switch status.flag {
		case flagNone: // real removal
			cb.OnRemoved(start+i, 1)
			for j := range postponed {
				postponed[j].currentPos--
			}

		case flagMovedChanged, flagMovedNotChanged:
			pos := status.counterpart
			var update postponedUpdate
			update, postponed = removePostponedUpdate(postponed, pos, false)
			cb.OnMoved(start+i, update.currentPos-1)
			if status.flag == flagMovedChanged {
				cb.OnChanged(update.currentPos-1, 1, r.cb.ChangePayload(globalIndex+i, pos))
			}

		case flagIgnore: // the other half of this move is processed later
			postponed = append(postponed, postponedUpdate{
				posInOwnerList: globalIndex + i,
				currentPos:     start + i,
				removal:        true,
			})

		default:
			panic(fmt.Sprintf("listdiff: unknown flag %d for old list position %d",
				status.flag, globalIndex+i))
		}
	}
	return postponed
}

// removePostponedUpdate extracts the postponed half of a move, identified by
// its position in the owning list and its direction, and shifts the tracked
// positions of the entries recorded after it. A missing entry means the
// status pass recorded a move with no counterpart, which is an internal
// invariant violation.
func removePostponedUpdate(updates []postponedUpdate, pos int, removal bool) (postponedUpdate, []postponedUpdate) {
	for i := len(updates) - 1; i >= 0; i-- {
		if updates[i].posInOwnerList != pos || updates[i].removal != removal {
			continue
		}
		update := updates[i]
		updates = append(updates[:i], updates[i+1:]...)
		shift := -1
		if removal {
			shift = 1
		}
		for j := i; j < len(updates); j++ {
			updates[j].currentPos += shift
		}
		return update, updates
	}
	panic(fmt.Sprintf("listdiff: no postponed update for position %d", pos))
}
