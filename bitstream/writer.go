package bitstream

import (
	"encoding/hex"
	"strings"
)

// Writer accumulates bits, most-significant first. The zero value is ready
// to use.
type Writer struct {
	data []byte
	size int
}

// Write appends the low n bits of v, most-significant first.
// It panics with ErrWidth if n is outside 0..64.
func (w *Writer) Write(v uint64, n int) {
	if n < 0 || n > 64 {
		panic(ErrWidth.Error())
	}
	for i := n - 1; i >= 0; i-- {
		w.WriteBit(v>>uint(i)&1 == 1)
	}
}

// WriteBit appends a single bit.
func (w *Writer) WriteBit(b bool) {
	if w.size%8 == 0 {
		w.data = append(w.data, 0)
	}
	if b {
		w.data[w.size>>3] |= 1 << (7 - uint(w.size&7))
	}
	w.size++
}

// Append copies every bit written to other onto w.
func (w *Writer) Append(other *Writer) {
	r := &Reader{data: other.data, size: other.size}
	for i := 0; i < other.size; i++ {
		w.WriteBit(r.bit(i) == 1)
	}
}

// Len returns the number of bits written.
func (w *Writer) Len() int { return w.size }

// Bytes returns the written bits, zero-padded to a whole byte.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.data))
	copy(out, w.data)

	return out
}

// Hex returns Bytes as upper-case hexadecimal.
func (w *Writer) Hex() string {
	return strings.ToUpper(hex.EncodeToString(w.data))
}

// Reader returns a Reader over a snapshot of the bits written so far.
// The padding bits of the last byte are not readable.
func (w *Writer) Reader() *Reader {
	return &Reader{data: w.Bytes(), size: w.size}
}
