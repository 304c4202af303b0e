package fifoslab

import "github.com/rawbytedev/fifoslab/internal/common"

// initialIndexCap is the starting number of index slots.
const initialIndexCap = 64

// itemIndex records, per live item, its aligned footprint in the slab
// and the trailing padding used to recover the original length. Live
// entries occupy [read, write); retired slots stay dead until a full
// drain rewinds both cursors. Both arrays grow by doubling,
// independently of the slab.
type itemIndex struct {
	aligned []int
	pad     []uint8
	read    int
	write   int
}

func newItemIndex() itemIndex {
	return itemIndex{
		aligned: make([]int, initialIndexCap),
		pad:     make([]uint8, initialIndexCap),
	}
}

// count returns the number of live entries.
func (ix *itemIndex) count() int {
	return ix.write - ix.read
}

// push records one entry, doubling both arrays when full.
func (ix *itemIndex) push(alignedLen, pad int) {
	if ix.write == len(ix.aligned) {
		newCap, ok := common.NextCap(len(ix.aligned), ix.write+1)
		if !ok {
			panic("fifoslab: capacity overflow")
		}
		grownAligned := make([]int, newCap)
		copy(grownAligned, ix.aligned)
		ix.aligned = grownAligned

		grownPad := make([]uint8, newCap)
		copy(grownPad, ix.pad)
		ix.pad = grownPad
	}
	ix.aligned[ix.write] = alignedLen
	ix.pad[ix.write] = uint8(pad)
	ix.write++
}

// entry returns the aligned length and padding of the live entry n
// positions past the read cursor.
func (ix *itemIndex) entry(n int) (alignedLen, pad int) {
	return ix.aligned[ix.read+n], int(ix.pad[ix.read+n])
}

// retire consumes the front entry and returns its metadata.
func (ix *itemIndex) retire() (alignedLen, pad int) {
	alignedLen, pad = ix.entry(0)
	ix.read++
	return alignedLen, pad
}

// shrinkFront reduces the front entry's footprint in place after a
// partial byte-level pop. Once the cut reaches into the padding region
// the recorded padding is clamped so the reported remaining length
// degrades to zero instead of going negative.
func (ix *itemIndex) shrinkFront(n int) {
	ix.aligned[ix.read] -= n
	if int(ix.pad[ix.read]) > ix.aligned[ix.read] {
		ix.pad[ix.read] = uint8(ix.aligned[ix.read])
	}
}

func (ix *itemIndex) resetCursors() {
	ix.read = 0
	ix.write = 0
}
