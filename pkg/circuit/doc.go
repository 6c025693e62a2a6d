// Package circuit maintains the electrical connectivity model of a captured
// schematic: which component terminals are joined into which nodes.
//
// The authoritative state is a flat terminal-to-node table keyed by
// (component ID, terminal index). Everything else — the multigraph of nodes
// and component edges, the per-node component index, validation results,
// netlist text — is derived from that table. The hosting editor notifies the
// graph explicitly on placement, wiring and deletion; the graph never
// observes the editor's object model.
//
// # Usage
//
//	g := circuit.NewGraph(nil)
//
//	r := component.New(component.Resistor, "R1", "1k")
//	n1, n2 := g.AddComponent(r, "", "") // fresh nodes are minted
//
//	vin := component.New(component.DCSource, "IN", "5V")
//	g.AddComponent(vin, n1, "0") // explicit nodes, "0" is ground
//
//	text, warnings := g.GenerateNetlist()
//	result := g.Validate()
//
// A Graph instance is not safe for concurrent mutation: minting a node name
// and inserting the edge are two steps, so a multi-threaded caller must
// serialize all writes.
package circuit
