// Package zframe stages zstd-compressed frames through a
// fifoslab.Queue. Producers push raw payloads that are compressed into
// one queue item each; consumers pop items and get the original bytes
// back. The queue is only ever touched through its public operations,
// so a zframe pair can share it with other item-level producers as long
// as the single-threaded contract holds.
package zframe

import (
	"github.com/klauspost/compress/zstd"

	"github.com/rawbytedev/fifoslab"
)

// Writer compresses payloads and appends them to a queue, one frame per
// item. Not safe for concurrent use.
type Writer struct {
	q   *fifoslab.Queue
	enc *zstd.Encoder
	buf []byte
}

// NewWriter creates a Writer staging frames into q.
func NewWriter(q *fifoslab.Queue) (*Writer, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return &Writer{q: q, enc: enc}, nil
}

// PushFrame compresses payload and pushes it as one item. The scratch
// buffer is reused across calls; the queue copies the bytes on push.
func (w *Writer) PushFrame(payload []byte) {
	w.buf = w.enc.EncodeAll(payload, w.buf[:0])
	w.q.PushItem(w.buf)
}

// Close releases encoder resources. The queue and any staged frames are
// left untouched.
func (w *Writer) Close() error {
	return w.enc.Close()
}

// Reader pops compressed frames from a queue and decompresses them.
// Not safe for concurrent use.
type Reader struct {
	q   *fifoslab.Queue
	dec *zstd.Decoder
}

// NewReader creates a Reader draining frames from q.
func NewReader(q *fifoslab.Queue) (*Reader, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return &Reader{q: q, dec: dec}, nil
}

// PopFrame decompresses the front item into dst (which may be nil) and
// retires it. Returns ok = false when the queue is empty. On a decode
// error the frame stays queued.
func (r *Reader) PopFrame(dst []byte) ([]byte, bool, error) {
	view, ok := r.q.PeekItem(0)
	if !ok {
		return nil, false, nil
	}
	out, err := r.dec.DecodeAll(view, dst[:0])
	if err != nil {
		return nil, false, err
	}
	r.q.PopItem()
	return out, true, nil
}

// Pending returns the number of staged frames still in the queue.
func (r *Reader) Pending() int {
	return r.q.ItemCount()
}

// Close releases decoder resources.
func (r *Reader) Close() {
	r.dec.Close()
}
