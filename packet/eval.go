package packet

import (
	"strconv"
	"strings"
)

// Eval computes the value of the tree rooted at p by a post-order walk.
// Literals yield their value; sum, product, min and max fold all children;
// gt, lt and eq compare exactly two children and yield 1 or 0.
// Arithmetic wraps modulo 2^64.
func (p *Packet) Eval() (uint64, error) {
	if p.IsLiteral() {
		return p.Value, nil
	}
	if err := checkArity(p); err != nil {
		return 0, malformed(err, "version %d packet", p.Version)
	}
	args := make([]uint64, len(p.Children))
	for i, c := range p.Children {
		v, err := c.Eval()
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	return operators[p.Type].fold(args), nil
}

// Walk calls fn for p and every descendant in pre-order with its depth
// (the root is depth 0). A non-nil error from fn stops the walk.
func (p *Packet) Walk(fn func(p *Packet, depth int) error) error {
	return p.walk(fn, 0)
}

func (p *Packet) walk(fn func(*Packet, int) error, depth int) error {
	if err := fn(p, depth); err != nil {
		return err
	}
	for _, c := range p.Children {
		if err := c.walk(fn, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// VersionSum adds up the Version field of every packet in the tree.
func (p *Packet) VersionSum() uint64 {
	var total uint64
	_ = p.Walk(func(q *Packet, _ int) error {
		total += uint64(q.Version)
		return nil
	})

	return total
}

// Count returns the number of packets in the tree.
func (p *Packet) Count() int {
	n := 0
	_ = p.Walk(func(*Packet, int) error {
		n++
		return nil
	})

	return n
}

// String renders the tree as an expression, e.g. "eq(sum(1, 3), product(2, 2))".
func (p *Packet) String() string {
	var sb strings.Builder
	p.format(&sb)

	return sb.String()
}

func (p *Packet) format(sb *strings.Builder) {
	if p.IsLiteral() {
		sb.WriteString(strconv.FormatUint(p.Value, 10))
		return
	}
	sb.WriteString(p.Type.String())
	sb.WriteByte('(')
	for i, c := range p.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.format(sb)
	}
	sb.WriteByte(')')
}
