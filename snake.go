package listdiff

import "sort"

// Snake represents a match between the two lists. It is optionally prefixed
// or postfixed with an add or remove operation. See Myers's paper for details.
//
// In the edit graph, a snake is a run of diagonal moves: Size items starting
// at old position X and new position Y that are the same in both lists.
type Snake struct {
	X       int  // position in the old list
	Y       int  // position in the new list
	Size    int  // number of matches; may be 0
	Removal bool // true if there is a removal from the old list, false if an addition
	Reverse bool // true if the addition/removal is at the end of the snake rather than the start
}

// diffRange is a rectangular area of the two lists that still needs to be
// solved. Bounds are [oldStart, oldEnd) x [newStart, newEnd).
type diffRange struct {
	oldStart, oldEnd int
	newStart, newEnd int
}

// calculateSnakes runs the divide-and-conquer middle-snake search over an
// explicit worklist of ranges and returns all discovered snakes sorted by
// (x, y). An explicit stack is used instead of recursion so that pathological
// inputs cannot exhaust call-stack depth.
func calculateSnakes(cb Callback) ([]Snake, error) {
	oldSize := cb.OldListSize()
	newSize := cb.NewListSize()

	var snakes []Snake
	stack := []diffRange{{0, oldSize, 0, newSize}}

	// The forward and backward diagonal arrays are shared across all
	// sub-problems; diffPartial clears only the window it needs.
	max := oldSize + newSize + abs(oldSize-newSize)
	forward := make([]int, max*2)
	backward := make([]int, max*2)

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		snake, err := diffPartial(cb, r.oldStart, r.oldEnd, r.newStart, r.newEnd,
			forward, backward, max)
		if err != nil {
			return nil, err
		}
		if snake == nil {
			continue
		}

		// Convert the snake's coordinates from the range's area to global.
		snake.X += r.oldStart
		snake.Y += r.newStart
		if snake.Size > 0 {
			snakes = append(snakes, *snake)
		}

		// The area left of the snake. Whether the snake's own add/remove
		// step belongs to this half depends on where the step sits.
		left := diffRange{oldStart: r.oldStart, newStart: r.newStart}
		if snake.Reverse {
			left.oldEnd = snake.X
			left.newEnd = snake.Y
		} else if snake.Removal {
			left.oldEnd = snake.X - 1
			left.newEnd = snake.Y
		} else {
			left.oldEnd = snake.X
			left.newEnd = snake.Y - 1
		}
		if left.oldEnd > left.oldStart && left.newEnd > left.newStart {
			stack = append(stack, left)
		}

		// The area right of the snake.
		right := diffRange{oldEnd: r.oldEnd, newEnd: r.newEnd}
		if snake.Reverse {
			if snake.Removal {
				right.oldStart = snake.X + snake.Size + 1
				right.newStart = snake.Y + snake.Size
			} else {
				right.oldStart = snake.X + snake.Size
				right.newStart = snake.Y + snake.Size + 1
			}
		} else {
			right.oldStart = snake.X + snake.Size
			right.newStart = snake.Y + snake.Size
		}
		if right.oldEnd > right.oldStart && right.newEnd > right.newStart {
			stack = append(stack, right)
		}
	}

	sort.Slice(snakes, func(i, j int) bool {
		if snakes[i].X != snakes[j].X {
			return snakes[i].X < snakes[j].X
		}
		return snakes[i].Y < snakes[j].Y
	})
	return snakes, nil
}

// diffPartial finds the middle snake of the given range using bidirectional
// search: a forward front from the range's top-left corner and a backward
// front from its bottom-right corner, each indexed by diagonal k = x-y and
// storing the furthest-reached x for that diagonal. It returns nil if the
// range is empty in either dimension, and ErrDiffInconsistency if the fronts
// never meet within the step bound.
func diffPartial(cb Callback, startOld, endOld, startNew, endNew int,
	forward, backward []int, kOffset int) (*Snake, error) {

	oldSize := endOld - startOld
	newSize := endNew - startNew

	if oldSize < 1 || newSize < 1 {
		return nil, nil
	}

	delta := oldSize - newSize
	dLimit := (oldSize + newSize + 1) / 2

	// Clear only the in-range window so that each sub-problem stays O(N).
	for i := kOffset - dLimit - 1; i < kOffset+dLimit+1; i++ {
		forward[i] = 0
	}
	for i := kOffset - dLimit - 1 + delta; i < kOffset+dLimit+1+delta; i++ {
		backward[i] = oldSize
	}

	// The fronts can only meet on a forward step when delta is odd, and on
	// a backward step when it is even.
	checkInFwd := delta%2 != 0

	for d := 0; d <= dLimit; d++ {
		for k := -d; k <= d; k += 2 {
			var x int
			var removal bool
			if k == -d || (k != d && forward[kOffset+k-1] < forward[kOffset+k+1]) {
				x = forward[kOffset+k+1]
				removal = false
			} else {
				x = forward[kOffset+k-1] + 1
				removal = true
			}
			y := x - k

			// Slide down the diagonal as long as the items match.
			for x < oldSize && y < newSize &&
				cb.AreItemsTheSame(startOld+x, startNew+y) {
				x++
				y++
			}
			forward[kOffset+k] = x

			if checkInFwd && k >= delta-d+1 && k <= delta+d-1 {
				if forward[kOffset+k] >= backward[kOffset+k] {
					out := &Snake{
						X:       backward[kOffset+k],
						Size:    forward[kOffset+k] - backward[kOffset+k],
						Removal: removal,
						Reverse: false,
					}
					out.Y = out.X - k
					return out, nil
				}
			}
		}

		for k := -d; k <= d; k += 2 {
			backwardK := k + delta
			var x int
			var removal bool
			if backwardK == d+delta ||
				(backwardK != -d+delta && backward[kOffset+backwardK-1] < backward[kOffset+backwardK+1]) {
				x = backward[kOffset+backwardK-1]
				removal = false
			} else {
				x = backward[kOffset+backwardK+1] - 1
				removal = true
			}
			y := x - backwardK

			// Slide up the diagonal as long as the items match.
			for x > 0 && y > 0 &&
				cb.AreItemsTheSame(startOld+x-1, startNew+y-1) {
				x--
				y--
			}
			backward[kOffset+backwardK] = x

			if !checkInFwd && k+delta >= -d && k+delta <= d {
				if forward[kOffset+backwardK] >= backward[kOffset+backwardK] {
					out := &Snake{
						X:       backward[kOffset+backwardK],
						Size:    forward[kOffset+backwardK] - backward[kOffset+backwardK],
						Removal: removal,
						Reverse: true,
					}
					out.Y = out.X - backwardK
					return out, nil
				}
			}
		}
	}

	return nil, ErrDiffInconsistency
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
