package fifoslab

// Iter holds cursor state for O(1)-per-step traversal of live items,
// as a (item offset, byte offset) pair relative to the queue's read
// cursors. The zero value starts at the front. Pushing or popping while
// an Iter is in use invalidates it; start a fresh Iter after any
// mutation. This is a documented precondition, not a runtime check.
type Iter struct {
	itemOff int
	byteOff int
}

// Next returns a view of the current item's payload with its original
// length and advances the iterator. An exhausted iterator keeps
// returning false; it never wraps or rewinds on its own.
func (q *Queue) Next(it *Iter) ([]byte, bool) {
	if it.itemOff >= q.index.count() {
		return nil, false
	}
	alignedLen, pad := q.index.entry(it.itemOff)
	view := q.slab.view(it.byteOff, alignedLen-pad)
	it.itemOff++
	it.byteOff += alignedLen
	return view, true
}
