// Package bitstream reads and writes big-endian bit sequences.
//
// A Reader wraps a fixed byte slice and exposes it as a stream of bits,
// most-significant bit of each byte first, consumed through a cursor that
// only moves forward. FromHex builds a Reader from hexadecimal text where
// every hex digit contributes exactly four bits.
//
// A Writer is the inverse: it appends fields of up to 64 bits and pads the
// final byte with zeros.
//
// Errors:
//
//   - ErrOddLength, ErrInvalidHex: FromHex input problems.
//   - ErrShortRead: a read asked for more bits than remain.
//   - ErrWidth: a field width outside 0..64.
//   - ErrOffset: an offset outside the stream.
package bitstream
