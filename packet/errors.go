package packet

import (
	"errors"
	"fmt"
)

// ErrMalformedPacket is the root of every decoding and evaluation failure.
// errors.Is(err, ErrMalformedPacket) holds for any error this package returns
// for bad input.
var ErrMalformedPacket = errors.New("packet: malformed packet")

// Sentinel errors for specific causes.
var (
	// ErrTruncated indicates the stream ended inside a packet.
	ErrTruncated = errors.New("packet: bitstream ends mid-packet")
	// ErrComparisonArity indicates a gt/lt/eq operator without exactly two children.
	ErrComparisonArity = errors.New("packet: comparison needs exactly two operands")
	// ErrNoOperands indicates an operator with no children.
	ErrNoOperands = errors.New("packet: operator has no operands")
	// ErrLiteralOverflow indicates a literal wider than 64 bits.
	ErrLiteralOverflow = errors.New("packet: literal exceeds 64 bits")
	// ErrLengthMismatch indicates children that overrun their declared bit length.
	ErrLengthMismatch = errors.New("packet: sub-packets overrun declared bit length")
	// ErrTooDeep indicates nesting beyond Options.MaxDepth.
	ErrTooDeep = errors.New("packet: nesting too deep")
	// ErrUnknownType indicates a type outside 0..7, or a literal where an
	// operator was required.
	ErrUnknownType = errors.New("packet: unknown packet type")
	// ErrFieldOverflow indicates a value that does not fit its wire field
	// when encoding.
	ErrFieldOverflow = errors.New("packet: value does not fit its field")
	// ErrBadMaxDepth indicates a negative MaxDepth option.
	ErrBadMaxDepth = errors.New("packet: MaxDepth must be non-negative")
)

// DecodeError reports where in the bitstream decoding failed.
// Offset is the start of the innermost packet being decoded.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("packet: decode at bit %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes every DecodeError match ErrMalformedPacket.
func (e *DecodeError) Is(target error) bool { return target == ErrMalformedPacket }

// malformed tags err as a member of the ErrMalformedPacket family.
func malformed(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrMalformedPacket, err, fmt.Sprintf(format, args...))
}
