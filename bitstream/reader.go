package bitstream

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for bitstream operations.
var (
	// ErrOddLength indicates hex input with an odd number of digits.
	ErrOddLength = errors.New("bitstream: hex input has odd length")
	// ErrInvalidHex indicates a character that is not a hex digit.
	ErrInvalidHex = errors.New("bitstream: invalid hex digit")
	// ErrShortRead indicates a read past the end of the stream.
	ErrShortRead = errors.New("bitstream: not enough bits left")
	// ErrWidth indicates a field width outside 0..64.
	ErrWidth = errors.New("bitstream: field width must be within 0..64")
	// ErrOffset indicates an offset outside the stream.
	ErrOffset = errors.New("bitstream: offset out of range")
)

// Reader is a read-only bit sequence with a forward-only cursor.
type Reader struct {
	data []byte
	size int // total bits
	pos  int // next bit to read
}

// NewReader returns a Reader over all 8·len(data) bits of data.
// The slice is not copied and must not be modified afterwards.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, size: 8 * len(data)}
}

// FromHex decodes hexadecimal text (either case) into a Reader.
// Each digit expands to four bits, most-significant first.
func FromHex(s string) (*Reader, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d digits", ErrOddLength, len(s))
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		var ibe hex.InvalidByteError
		if errors.As(err, &ibe) {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidHex, byte(ibe), strings.IndexByte(s, byte(ibe)))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}

	return NewReader(data), nil
}

// Len returns the total number of bits in the stream.
func (r *Reader) Len() int { return r.size }

// Pos returns the offset of the next bit to be read.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int { return r.size - r.pos }

// At returns a new Reader over the same bits with its cursor at offset.
// The receiver's cursor is left untouched.
func (r *Reader) At(offset int) (*Reader, error) {
	if offset < 0 || offset > r.size {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrOffset, offset, r.size)
	}

	return &Reader{data: r.data, size: r.size, pos: offset}, nil
}

// Next reads the next n bits as an unsigned big-endian integer and advances
// the cursor. On error the cursor does not move.
func (r *Reader) Next(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("%w: got %d", ErrWidth, n)
	}
	if n > r.Remaining() {
		return 0, fmt.Errorf("%w: need %d at offset %d, have %d", ErrShortRead, n, r.pos, r.Remaining())
	}
	var v uint64
	for i := 0; i < n; i++ {
		v = v<<1 | uint64(r.bit(r.pos+i))
	}
	r.pos += n

	return v, nil
}

// NextBit reads a single bit.
func (r *Reader) NextBit() (bool, error) {
	v, err := r.Next(1)

	return v == 1, err
}

// Skip advances the cursor by n bits without decoding them.
func (r *Reader) Skip(n int) error {
	if n < 0 || n > r.Remaining() {
		return fmt.Errorf("%w: skip %d at offset %d, have %d", ErrShortRead, n, r.pos, r.Remaining())
	}
	r.pos += n

	return nil
}

// String renders the unread bits as '0'/'1' characters.
func (r *Reader) String() string {
	var sb strings.Builder
	sb.Grow(r.Remaining())
	for i := r.pos; i < r.size; i++ {
		sb.WriteByte('0' + r.bit(i))
	}

	return sb.String()
}

func (r *Reader) bit(i int) byte {
	return (r.data[i>>3] >> (7 - uint(i&7))) & 1
}
