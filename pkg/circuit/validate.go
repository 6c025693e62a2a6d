package circuit

import "fmt"

// ValidationResult aggregates topology checks. Short circuits are hard
// issues and drive Valid to false; isolated components and floating nodes
// are warnings only, since both occur transiently while editing, and never
// block saving or netlist export.
type ValidationResult struct {
	Valid    bool
	Issues   []string
	Warnings []string

	ShortCircuits      [][2]string
	IsolatedComponents []string
	FloatingNodes      []string
}

// FindShortCircuits groups edges by their unordered node pair and reports
// every pair bound by more than one component, once per pair in first-seen
// order.
//
// This is a topology heuristic, not an electrical proof: two components
// between the same nodes is necessary but not sufficient evidence of a real
// short. Callers should present it as "potential short circuit".
func (g *Graph) FindShortCircuits() [][2]string {
	counts := make(map[[2]string]int)
	var keys [][2]string

	for _, id := range g.order {
		n1, n2, ok := g.ComponentNodes(id)
		if !ok {
			continue
		}
		key := pairKey(n1, n2)
		if counts[key] == 0 {
			keys = append(keys, key)
		}
		counts[key]++
	}

	var shorts [][2]string
	for _, key := range keys {
		if counts[key] > 1 {
			shorts = append(shorts, key)
		}
	}
	return shorts
}

// Validate runs all topology checks. An empty graph is valid with no issues
// and no warnings.
func (g *Graph) Validate() ValidationResult {
	result := ValidationResult{}

	result.ShortCircuits = g.FindShortCircuits()
	for _, pair := range result.ShortCircuits {
		result.Issues = append(result.Issues,
			fmt.Sprintf("potential short circuit between %s and %s", pair[0], pair[1]))
	}

	for _, id := range g.order {
		bound := 0
		c := g.components[id]
		for term := 0; term < c.TerminalCount(); term++ {
			if _, ok := g.bindings[binding{id, term}]; ok {
				bound++
			}
		}
		if bound < c.TerminalCount() {
			result.IsolatedComponents = append(result.IsolatedComponents, id)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("isolated component %s: %d of %d terminals bound", id, bound, c.TerminalCount()))
		}
	}

	for _, node := range g.nodeOrder {
		// The ground reference always exists conceptually; it is never
		// reported as floating.
		if node == g.cfg.Ground || node == "GND" {
			continue
		}
		if len(g.nodeIndex[node]) == 0 {
			result.FloatingNodes = append(result.FloatingNodes, node)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("floating node %s has no connections", node))
		}
	}

	result.Valid = len(result.Issues) == 0
	return result
}

// CircuitInfo summarizes the graph for status displays and exports.
type CircuitInfo struct {
	NumNodes      int      `json:"num_nodes"`
	NumComponents int      `json:"num_components"`
	NumEdges      int      `json:"num_edges"`
	IsConnected   bool     `json:"is_connected"`
	Components    []string `json:"components"`
	Nodes         []string `json:"nodes"`
}

// Info returns node/component/edge counts and whether every node is
// reachable from every other through component edges. Graphs with at most
// one node count as connected.
func (g *Graph) Info() CircuitInfo {
	return CircuitInfo{
		NumNodes:      len(g.nodeOrder),
		NumComponents: len(g.components),
		NumEdges:      len(g.order),
		IsConnected:   g.isConnected(),
		Components:    g.ComponentIDs(),
		Nodes:         g.Nodes(),
	}
}

func (g *Graph) isConnected() bool {
	if len(g.nodeOrder) <= 1 {
		return true
	}

	uf := newUnionFind()
	for _, node := range g.nodeOrder {
		uf.add(node)
	}
	for _, id := range g.order {
		n1, n2, ok := g.ComponentNodes(id)
		if ok {
			uf.union(n1, n2)
		}
	}

	root := uf.find(g.nodeOrder[0])
	for _, node := range g.nodeOrder[1:] {
		if uf.find(node) != root {
			return false
		}
	}
	return true
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
