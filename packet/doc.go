// Package packet decodes and evaluates BITS transmissions (the Advent of
// Code 2021 "Packet Decoder" format): a hex string expands to a bitstream
// holding one root packet, which may nest further packets.
//
// Wire format:
//
//	header   VVV TTT                   3-bit version, 3-bit type
//	literal  (C NNNN)+                 groups until C == 0, value = N...N
//	operator I LLLLLLLLLLLLLLL child*  I=0: 15-bit total child bit length
//	         I LLLLLLLLLLL     child*  I=1: 11-bit child count
//
// Types: 0 sum, 1 product, 2 min, 3 max, 4 literal, 5 gt, 6 lt, 7 eq.
// Comparisons take exactly two children and produce 1 or 0.
//
// API:
//
//	Parse(hex)               root packet of a hex transmission
//	Decode(reader)           one packet at the reader's cursor
//	ParseAt(reader, offset)  one packet at an offset, plus bits consumed
//	(*Packet).Eval           value of the tree
//	(*Packet).VersionSum     sum of every version field
//	Encode / EncodeHex       the inverse of decoding
//
// Every packet records its Length in bits, so a sibling always starts
// exactly Length bits after the previous one.
//
// Errors:
//
// All input failures match ErrMalformedPacket under errors.Is, together with
// a specific cause: ErrTruncated, ErrComparisonArity, ErrNoOperands,
// ErrLiteralOverflow, ErrLengthMismatch, ErrTooDeep, or the bitstream hex
// errors. Decoding failures are *DecodeError values carrying the bit offset
// of the packet that failed.
package packet
