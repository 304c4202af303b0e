package fifoslab

import "github.com/rawbytedev/fifoslab/internal/common"

// slab is the contiguous data store. Item payloads live back-to-back in
// data[readPos:writePos], each already padded to AlignUnit by the
// caller. Capacity only grows; cursors rewind to zero on full drain.
type slab struct {
	data     []byte
	readPos  int
	writePos int
}

func newSlab(size int) slab {
	return slab{data: make([]byte, size)}
}

// live returns the number of unread bytes.
func (s *slab) live() int {
	return s.writePos - s.readPos
}

// reserve grows the backing array by doubling until alignedLen more
// bytes fit past writePos. Bytes in [0, writePos) are preserved in
// place; the read cursor is never moved by growth. Panics when the
// required capacity is not representable.
func (s *slab) reserve(alignedLen int) {
	need, ok := common.AddOverflowSafe(s.writePos, alignedLen)
	if !ok {
		panic("fifoslab: capacity overflow")
	}
	if need <= len(s.data) {
		return
	}
	newSize, ok := common.NextCap(len(s.data), need)
	if !ok {
		panic("fifoslab: capacity overflow")
	}
	grown := make([]byte, newSize)
	copy(grown, s.data[:s.writePos])
	s.data = grown
}

// writeAligned copies payload at the write cursor, zero-fills the
// trailing padding up to alignedLen and advances the cursor. Space must
// have been reserved first.
func (s *slab) writeAligned(payload []byte, alignedLen int) {
	n := copy(s.data[s.writePos:], payload)
	clear(s.data[s.writePos+n : s.writePos+alignedLen])
	s.writePos += alignedLen
}

// view returns length bytes starting at off bytes past the read cursor.
// The capacity is pinned so callers cannot append into live storage.
func (s *slab) view(off, length int) []byte {
	start := s.readPos + off
	return s.data[start : start+length : start+length]
}

// advance consumes n bytes from the front.
func (s *slab) advance(n int) {
	s.readPos += n
}

func (s *slab) resetCursors() {
	s.readPos = 0
	s.writePos = 0
}
