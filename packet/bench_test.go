package packet_test

import (
	"testing"

	"github.com/katalvlaran/aoc2021/packet"
)

// deepSample nests three operators over five literals.
const deepSample = "A0016C880162017C3686B18A3D4780"

// BenchmarkParse measures hex expansion plus recursive decoding.
func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := packet.Parse(deepSample); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEval measures evaluation of an already decoded tree.
func BenchmarkEval(b *testing.B) {
	p, err := packet.Parse(deepSample)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Eval(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncodeHex measures encoding a wide builder tree.
func BenchmarkEncodeHex(b *testing.B) {
	children := make([]*packet.Packet, 200)
	for i := range children {
		children[i] = packet.Literal(uint8(i%8), uint64(i)*977)
	}
	p := packet.Operator(1, packet.TypeSum, packet.LengthCount, children...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := packet.EncodeHex(p); err != nil {
			b.Fatal(err)
		}
	}
}
