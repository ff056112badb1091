package packet

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/aoc2021/bitstream"
)

// Parse decodes the root packet of a hexadecimal transmission. Surrounding
// whitespace is ignored, and so are the padding bits after the root packet.
func Parse(hexText string, opts ...Option) (*Packet, error) {
	r, err := bitstream.FromHex(strings.TrimSpace(hexText))
	if err != nil {
		return nil, &DecodeError{Offset: 0, Err: err}
	}

	return Decode(r, opts...)
}

// Decode decodes one packet starting at r's cursor and leaves the cursor
// just past it.
func Decode(r *bitstream.Reader, opts ...Option) (*Packet, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &decoder{r: r, cfg: cfg}

	return d.packet(0)
}

// ParseAt decodes one packet starting at bit offset of r and returns it
// with the number of bits it consumed. r's own cursor is not moved, so
// callers can step through siblings by adding the consumed length.
func ParseAt(r *bitstream.Reader, offset int, opts ...Option) (*Packet, int, error) {
	sub, err := r.At(offset)
	if err != nil {
		return nil, 0, &DecodeError{Offset: offset, Err: err}
	}
	p, err := Decode(sub, opts...)
	if err != nil {
		return nil, 0, err
	}

	return p, p.Length, nil
}

// decoder walks the bitstream recursively. Every child is decoded
// from wherever the previous one ended, through the shared cursor.
type decoder struct {
	r   *bitstream.Reader
	cfg Options
}

func (d *decoder) packet(depth int) (*Packet, error) {
	start := d.r.Pos()
	if depth > d.cfg.MaxDepth {
		return nil, d.fail(start, fmt.Errorf("%w: depth %d > %d", ErrTooDeep, depth, d.cfg.MaxDepth))
	}

	version, err := d.read(start, versionBits)
	if err != nil {
		return nil, err
	}
	typeID, err := d.read(start, typeBits)
	if err != nil {
		return nil, err
	}
	p := &Packet{Version: uint8(version), Type: TypeID(typeID)}

	if p.Type == TypeLiteral {
		if p.Value, err = d.literal(start); err != nil {
			return nil, err
		}
	} else if err = d.operator(p, start, depth); err != nil {
		return nil, err
	}
	p.Length = d.r.Pos() - start

	d.cfg.Logger.Debug("packet: decoded",
		slog.Int("offset", start),
		slog.Int("depth", depth),
		slog.Int("version", int(p.Version)),
		slog.String("type", p.Type.String()),
		slog.Int("length", p.Length))

	return p, nil
}

// literal reads 5-bit groups until one has a zero continuation flag.
func (d *decoder) literal(start int) (uint64, error) {
	var value uint64
	for groups := 1; ; groups++ {
		more, err := d.read(start, 1)
		if err != nil {
			return 0, err
		}
		nibble, err := d.read(start, groupValueBits)
		if err != nil {
			return 0, err
		}
		if value>>(64-groupValueBits) != 0 {
			return 0, d.fail(start, fmt.Errorf("%w: %d groups", ErrLiteralOverflow, groups))
		}
		value = value<<groupValueBits | nibble
		if more == 0 {
			return value, nil
		}
	}
}

// operator reads the length-type flag and field, then the children.
func (d *decoder) operator(p *Packet, start, depth int) error {
	lt, err := d.read(start, lengthTypeBits)
	if err != nil {
		return err
	}
	p.LengthType = LengthType(lt)
	n, err := d.read(start, lengthFieldBits[p.LengthType])
	if err != nil {
		return err
	}

	switch p.LengthType {
	case LengthBits:
		// Keep decoding until exactly n bits of children are consumed.
		begin := d.r.Pos()
		for uint64(d.r.Pos()-begin) < n {
			child, err := d.packet(depth + 1)
			if err != nil {
				return err
			}
			p.Children = append(p.Children, child)
		}
		if used := d.r.Pos() - begin; uint64(used) != n {
			return d.fail(start, fmt.Errorf("%w: declared %d, consumed %d", ErrLengthMismatch, n, used))
		}
	case LengthCount:
		for i := uint64(0); i < n; i++ {
			child, err := d.packet(depth + 1)
			if err != nil {
				return err
			}
			p.Children = append(p.Children, child)
		}
	}

	if err := checkArity(p); err != nil {
		return d.fail(start, err)
	}

	return nil
}

// read pulls n bits, mapping a short read to ErrTruncated for the packet at start.
func (d *decoder) read(start, n int) (uint64, error) {
	v, err := d.r.Next(n)
	if err != nil {
		if errors.Is(err, bitstream.ErrShortRead) {
			err = fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		return 0, d.fail(start, err)
	}

	return v, nil
}

func (d *decoder) fail(start int, err error) error {
	return &DecodeError{Offset: start, Err: err}
}

// checkArity validates an operator's child count against the opcode table.
func checkArity(p *Packet) error {
	if int(p.Type) >= len(operators) || p.Type == TypeLiteral {
		return fmt.Errorf("%w: %d", ErrUnknownType, p.Type)
	}
	op := operators[p.Type]
	n := len(p.Children)
	if p.Type.isComparison() && n != 2 {
		return fmt.Errorf("%w: %s has %d", ErrComparisonArity, op.name, n)
	}
	if n < op.minArgs {
		return fmt.Errorf("%w: %s has %d", ErrNoOperands, op.name, n)
	}

	return nil
}
