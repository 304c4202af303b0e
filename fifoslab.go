// Package fifoslab provides a growable, contiguous FIFO byte buffer
// that stores variable-length items back-to-back, each padded to a
// fixed alignment boundary, with a side index tracking item boundaries.
// Items can be enumerated, peeked and popped either one item at a time
// or at raw byte granularity over the same storage.
//
// The structure is single-threaded by contract: it holds no locks and
// is not safe for concurrent use without external synchronization.
// Views returned by peek operations alias the internal buffer and stay
// valid only until the next Push/Pop call on the same Queue.
package fifoslab

import "github.com/rawbytedev/fifoslab/internal/common"

// AlignUnit is the fixed alignment boundary applied to every item. Each
// item's footprint is rounded up to a multiple of AlignUnit and the gap
// zero-filled, so fixed-layout data placed directly after a payload is
// safely addressable within the item's footprint.
const AlignUnit = 8

// Queue is a FIFO slab buffer. Create one with New; the zero value is
// not usable.
type Queue struct {
	slab  slab
	index itemIndex
}

// New creates a queue with the given initial data capacity in bytes.
// Panics if initialSize is not positive.
func New(initialSize int) *Queue {
	if initialSize <= 0 {
		panic("fifoslab: initial size must be positive")
	}
	return &Queue{
		slab:  newSlab(initialSize),
		index: newItemIndex(),
	}
}

// PushItem appends data to the back of the queue as one item. The item
// occupies AlignUp(len(data)) bytes internally; the trailing padding is
// zeroed. Both the data store and the item index grow by doubling when
// needed. A zero-length push is legal and records a zero-footprint
// entry. Panics only when the required capacity would overflow int.
func (q *Queue) PushItem(data []byte) {
	alignedLen := common.AlignUp(len(data), AlignUnit)
	if alignedLen < len(data) {
		panic("fifoslab: capacity overflow")
	}
	q.slab.reserve(alignedLen)
	q.slab.writeAligned(data, alignedLen)
	q.index.push(alignedLen, alignedLen-len(data))
}

// PeekItem returns a view of the n-th live item (0 = front) with its
// exact original length, or false when n is out of range. The walk to
// item n is O(n); full traversals should use Next, which is O(1) per
// step, since indexed peeks over 0..N-1 cost O(N^2) total.
func (q *Queue) PeekItem(n int) ([]byte, bool) {
	if n < 0 || n >= q.index.count() {
		return nil, false
	}
	off := 0
	for i := 0; i < n; i++ {
		alignedLen, _ := q.index.entry(i)
		off += alignedLen
	}
	alignedLen, pad := q.index.entry(n)
	return q.slab.view(off, alignedLen-pad), true
}

// PopItem retires the front item and returns its original length, or 0
// when the queue is empty. Once both stores are fully drained the
// internal cursors rewind to zero so existing capacity is reused.
func (q *Queue) PopItem() int {
	if q.index.count() == 0 {
		return 0
	}
	alignedLen, pad := q.index.retire()
	q.slab.advance(alignedLen)
	q.maybeReset()
	return alignedLen - pad
}

// Size returns the total number of unread bytes, i.e. the sum of the
// aligned footprints of all live items. O(1).
func (q *Queue) Size() int {
	return q.slab.live()
}

// ItemCount returns the number of live items. O(1).
func (q *Queue) ItemCount() int {
	return q.index.count()
}

// Reset drops all live data while keeping both allocations for reuse.
func (q *Queue) Reset() {
	q.slab.resetCursors()
	q.index.resetCursors()
}

// maybeReset rewinds all cursors once both stores are fully drained.
// This is the sole reclamation mechanism; no compaction happens while
// data remains live.
func (q *Queue) maybeReset() {
	if q.slab.live() == 0 && q.index.count() == 0 {
		q.slab.resetCursors()
		q.index.resetCursors()
	}
}
