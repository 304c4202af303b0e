package fifoslab

// Byte-granular access. Producers still frame every push as one indexed
// item; only the consumer side ignores item boundaries. Both levels
// share the same slab and index, so mixing them is safe.

// Push appends data exactly like PushItem. It exists so byte-granular
// consumers have a producer of matching vocabulary; each call still
// creates one index entry.
func (q *Queue) Push(data []byte) {
	q.PushItem(data)
}

// Peek returns a view of the first n unread bytes without consuming
// them, or false when fewer than n bytes are live or n is not positive.
// The view spans item boundaries and includes any interior padding.
func (q *Queue) Peek(n int) ([]byte, bool) {
	if n <= 0 || n > q.slab.live() {
		return nil, false
	}
	return q.slab.view(0, n), true
}

// Pop consumes exactly n raw bytes from the front and returns n, or
// consumes nothing and returns 0 when fewer than n bytes are live.
// Index entries fully covered by n are retired; when n ends strictly
// inside an entry, that entry is shrunk in place. A cut into the
// entry's padding region clamps the recorded padding, so a later
// PeekItem or PopItem on it reports the remaining real payload, down
// to zero. Cursors rewind on full drain exactly as in PopItem.
func (q *Queue) Pop(n int) int {
	if n <= 0 || n > q.slab.live() {
		return 0
	}
	remaining := n
	for remaining > 0 {
		alignedLen, _ := q.index.entry(0)
		if remaining < alignedLen {
			q.index.shrinkFront(remaining)
			break
		}
		remaining -= alignedLen
		q.index.retire()
	}
	q.slab.advance(n)
	q.maybeReset()
	return n
}
