package packet

import (
	"io"
	"log/slog"
)

// TypeID is the 3-bit packet type field.
type TypeID uint8

// Packet types. TypeLiteral is a leaf; every other type is an operator.
const (
	TypeSum TypeID = iota
	TypeProduct
	TypeMinimum
	TypeMaximum
	TypeLiteral
	TypeGreater
	TypeLess
	TypeEqual
)

// LengthType is the 1-bit flag that says how an operator bounds its children.
type LengthType uint8

const (
	// LengthBits: a 15-bit field gives the total bit length of the children.
	LengthBits LengthType = iota
	// LengthCount: an 11-bit field gives the number of children.
	LengthCount
)

// Wire-format field widths, in bits.
const (
	versionBits    = 3
	typeBits       = 3
	HeaderBits     = versionBits + typeBits
	GroupBits      = 5
	groupValueBits = GroupBits - 1
	lengthTypeBits = 1
)

// lengthFieldBits maps a LengthType to the width of its length field.
var lengthFieldBits = [2]int{LengthBits: 15, LengthCount: 11}

// OperatorHeaderBits returns the header size of an operator packet with the
// given length type: version, type, length-type flag and length field.
func OperatorHeaderBits(lt LengthType) int {
	return HeaderBits + lengthTypeBits + lengthFieldBits[lt&1]
}

// Packet is one node of a decoded BITS transmission. Literal packets carry
// Value; operator packets carry LengthType and Children. Length is the
// number of bits the packet occupies on the wire, children included.
// A Packet is not modified after it is built.
type Packet struct {
	Version    uint8
	Type       TypeID
	Value      uint64
	LengthType LengthType
	Children   []*Packet
	Length     int
}

// IsLiteral reports whether p is a literal value packet.
func (p *Packet) IsLiteral() bool {
	return p.Type == TypeLiteral
}

// operator describes how an operator type folds its children's values.
// maxArgs of 0 means unbounded.
type operator struct {
	name             string
	minArgs, maxArgs int
	fold             func(args []uint64) uint64
}

// operators is indexed by TypeID. The TypeLiteral slot is unused.
var operators = [8]operator{
	TypeSum:     {name: "sum", minArgs: 1, fold: sum},
	TypeProduct: {name: "product", minArgs: 1, fold: product},
	TypeMinimum: {name: "min", minArgs: 1, fold: minimum},
	TypeMaximum: {name: "max", minArgs: 1, fold: maximum},
	TypeLiteral: {name: "literal"},
	TypeGreater: {name: "gt", minArgs: 2, maxArgs: 2, fold: compare(func(a, b uint64) bool { return a > b })},
	TypeLess:    {name: "lt", minArgs: 2, maxArgs: 2, fold: compare(func(a, b uint64) bool { return a < b })},
	TypeEqual:   {name: "eq", minArgs: 2, maxArgs: 2, fold: compare(func(a, b uint64) bool { return a == b })},
}

// String returns the operator name of t, e.g. "sum" or "lt".
func (t TypeID) String() string {
	if int(t) < len(operators) {
		return operators[t].name
	}

	return "unknown"
}

func (t TypeID) isComparison() bool {
	return t == TypeGreater || t == TypeLess || t == TypeEqual
}

func sum(args []uint64) uint64 {
	var s uint64
	for _, a := range args {
		s += a
	}

	return s
}

func product(args []uint64) uint64 {
	p := uint64(1)
	for _, a := range args {
		p *= a
	}

	return p
}

func minimum(args []uint64) uint64 {
	m := args[0]
	for _, a := range args[1:] {
		m = min(m, a)
	}

	return m
}

func maximum(args []uint64) uint64 {
	m := args[0]
	for _, a := range args[1:] {
		m = max(m, a)
	}

	return m
}

func compare(pred func(a, b uint64) bool) func([]uint64) uint64 {
	return func(args []uint64) uint64 {
		if pred(args[0], args[1]) {
			return 1
		}

		return 0
	}
}

// DefaultMaxDepth bounds operator nesting during decoding.
const DefaultMaxDepth = 64

// Options configures decoding.
//
// MaxDepth – deepest allowed nesting level; the root is depth 0.
// Logger   – receives one debug record per decoded packet.
type Options struct {
	MaxDepth int
	Logger   *slog.Logger
}

// Option represents a functional option for configuring the decoder.
type Option func(*Options)

// WithMaxDepth sets the nesting limit. Values below zero panic with
// ErrBadMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth < 0 {
			panic(ErrBadMaxDepth.Error())
		}
		o.MaxDepth = depth
	}
}

// WithLogger routes decoder diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns MaxDepth = DefaultMaxDepth and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
