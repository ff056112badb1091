package packet

import (
	"math/bits"

	"github.com/katalvlaran/aoc2021/bitstream"
)

// Literal builds a literal packet and sets its wire Length.
func Literal(version uint8, value uint64) *Packet {
	return &Packet{
		Version: version,
		Type:    TypeLiteral,
		Value:   value,
		Length:  HeaderBits + GroupBits*literalGroups(value),
	}
}

// Operator builds an operator packet over children and sets its wire
// Length from theirs. It does not validate; Encode and Eval do.
func Operator(version uint8, t TypeID, lt LengthType, children ...*Packet) *Packet {
	p := &Packet{
		Version:    version,
		Type:       t,
		LengthType: lt,
		Children:   children,
		Length:     OperatorHeaderBits(lt),
	}
	for _, c := range children {
		p.Length += c.Length
	}

	return p
}

// literalGroups returns how many 5-bit groups encode v; zero needs one.
func literalGroups(v uint64) int {
	return max(1, (bits.Len64(v)+groupValueBits-1)/groupValueBits)
}

// Encode writes p in wire format. It rejects trees that the decoder
// would reject and values that overflow their fields.
func Encode(p *Packet) (*bitstream.Writer, error) {
	var w bitstream.Writer
	if err := encode(&w, p); err != nil {
		return nil, err
	}

	return &w, nil
}

// EncodeHex is Encode rendered as upper-case hex, zero-padded to a byte.
func EncodeHex(p *Packet) (string, error) {
	w, err := Encode(p)
	if err != nil {
		return "", err
	}

	return w.Hex(), nil
}

func encode(w *bitstream.Writer, p *Packet) error {
	if p.Version>>versionBits != 0 {
		return malformed(ErrFieldOverflow, "version %d", p.Version)
	}
	if int(p.Type) >= len(operators) {
		return malformed(ErrUnknownType, "type %d", p.Type)
	}
	w.Write(uint64(p.Version), versionBits)
	w.Write(uint64(p.Type), typeBits)

	if p.IsLiteral() {
		groups := literalGroups(p.Value)
		for g := groups - 1; g >= 0; g-- {
			w.WriteBit(g > 0)
			w.Write(p.Value>>(uint(g)*groupValueBits), groupValueBits)
		}
		return nil
	}

	if err := checkArity(p); err != nil {
		return malformed(err, "version %d packet", p.Version)
	}
	if p.LengthType > LengthCount {
		return malformed(ErrFieldOverflow, "length type %d", p.LengthType)
	}
	var body bitstream.Writer
	for _, c := range p.Children {
		if err := encode(&body, c); err != nil {
			return err
		}
	}

	n := body.Len()
	if p.LengthType == LengthCount {
		n = len(p.Children)
	}
	width := lengthFieldBits[p.LengthType]
	if n>>width != 0 {
		return malformed(ErrFieldOverflow, "length %d in %d bits", n, width)
	}
	w.Write(uint64(p.LengthType), lengthTypeBits)
	w.Write(uint64(n), width)
	w.Append(&body)

	return nil
}
