// Package aoc2021 groups two self-contained puzzle engines: least-risk
// routing across a weighted cave grid, and decoding of the BITS packet
// transmission format.
//
// Under the hood, everything is organized into four subpackages:
//
//	gridgraph/  immutable W×H cost grids: parsing, 4-neighbourhood,
//	            tiling expansion, passable-region flood fill
//	dijkstra/   lazy-deletion Dijkstra over a Grid with early exit,
//	            distance caps, impassable walls and settle hooks
//	bitstream/  hex to bit expansion, a bit cursor and a bit writer
//	packet/     BITS packet tree: decode, evaluate, version sum, encode
//
// Quick start:
//
//	g, _ := gridgraph.ParseString(cave)
//	big, _ := g.Expand(5)
//	res, _ := dijkstra.ShortestPath(big)
//	fmt.Println(res.Cost)
//
//	p, _ := packet.Parse("9C0141080250320F1802104A08")
//	v, _ := p.Eval()
//	fmt.Println(p.VersionSum(), v)
//
// Errors caused by bad input match a package root under errors.Is:
// gridgraph.ErrMalformedGrid for grid text, grid values and routing
// failures, packet.ErrMalformedPacket for transmissions. Caller mistakes
// (a nil grid, a failing OnSettle hook) are returned as they are.
//
// Runnable programs live under examples/.
package aoc2021
