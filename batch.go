package listdiff

// batchedOp identifies the operation a BatchingCallback is holding back.
type batchedOp int

const (
	batchedNone batchedOp = iota
	batchedInsert
	batchedRemove
	batchedChange
)

// BatchingCallback wraps an UpdateCallback and merges adjacent operations of
// the same kind into single range operations before forwarding them. The
// move-aware dispatch path emits one-item inserts and removes; wrapping the
// sink in a BatchingCallback recovers coalesced ranges.
//
// Moves cannot be merged and are forwarded immediately, after flushing any
// held operation. Call Flush after the dispatch completes to forward the
// final held operation.
type BatchingCallback struct {
	wrapped UpdateCallback

	lastOp       batchedOp
	lastPosition int
	lastCount    int
	lastPayload  any
}

// NewBatchingCallback returns a BatchingCallback forwarding to wrapped.
func NewBatchingCallback(wrapped UpdateCallback) *BatchingCallback {
	return &BatchingCallback{wrapped: wrapped}
}

func (b *BatchingCallback) OnInserted(position, count int) {
	if b.lastOp == batchedInsert &&
		position >= b.lastPosition && position <= b.lastPosition+b.lastCount {
		b.lastCount += count
		if position < b.lastPosition {
			b.lastPosition = position
		}
		return
	}
	b.Flush()
	b.lastOp = batchedInsert
	b.lastPosition = position
	b.lastCount = count
}

func (b *BatchingCallback) OnRemoved(position, count int) {
	if b.lastOp == batchedRemove &&
		b.lastPosition >= position && b.lastPosition <= position+count {
		b.lastCount += count
		b.lastPosition = position
		return
	}
	b.Flush()
	b.lastOp = batchedRemove
	b.lastPosition = position
	b.lastCount = count
}

func (b *BatchingCallback) OnMoved(fromPosition, toPosition int) {
	b.Flush()
	b.wrapped.OnMoved(fromPosition, toPosition)
}

func (b *BatchingCallback) OnChanged(position, count int, payload any) {
	// Only payload-free changes merge; comparing arbitrary payloads is not
	// possible in general (they may not be comparable types).
	if b.lastOp == batchedChange && payload == nil && b.lastPayload == nil &&
		position <= b.lastPosition+b.lastCount && position+count >= b.lastPosition {
		end := b.lastPosition + b.lastCount
		if position+count > end {
			end = position + count
		}
		if position < b.lastPosition {
			b.lastPosition = position
		}
		b.lastCount = end - b.lastPosition
		return
	}
	b.Flush()
	b.lastOp = batchedChange
	b.lastPosition = position
	b.lastCount = count
	b.lastPayload = payload
}

// Flush forwards the held operation, if any, to the wrapped callback.
func (b *BatchingCallback) Flush() {
	switch b.lastOp {
	case batchedInsert:
		b.wrapped.OnInserted(b.lastPosition, b.lastCount)
	case batchedRemove:
		b.wrapped.OnRemoved(b.lastPosition, b.lastCount)
	case batchedChange:
		b.wrapped.OnChanged(b.lastPosition, b.lastCount, b.lastPayload)
	}
	b.lastOp = batchedNone
	b.lastPayload = nil
}
