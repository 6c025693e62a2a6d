package circuit

import (
	"encoding/json"
	"fmt"
)

// exportComponent is the JSON projection of one component edge.
type exportComponent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Node1 string `json:"node1"`
	Node2 string `json:"node2"`
}

// exportNet is the JSON projection of one node and its attached terminals.
type exportNet struct {
	Node      string   `json:"node"`
	Terminals []string `json:"terminals"`
}

// ExportJSON serializes the connectivity model: counts, component edges in
// insertion order, and per-node terminal lists. Intended for external tools
// and the CLI's --json output.
func (g *Graph) ExportJSON() ([]byte, error) {
	info := g.Info()

	comps := make([]exportComponent, 0, len(g.order))
	for _, id := range g.order {
		n1, n2, _ := g.ComponentNodes(id)
		c := g.components[id]
		comps = append(comps, exportComponent{
			ID:    c.ID,
			Name:  c.Name,
			Kind:  string(c.Kind),
			Node1: n1,
			Node2: n2,
		})
	}

	nets := make([]exportNet, 0, len(g.nodeOrder))
	for _, node := range g.nodeOrder {
		net := exportNet{Node: node}
		for _, b := range g.nodeIndex[node] {
			if c, ok := g.components[b.componentID]; ok {
				net.Terminals = append(net.Terminals, fmt.Sprintf("%s.%d", c.Name, b.terminal))
			}
		}
		nets = append(nets, net)
	}

	output := struct {
		Version     string            `json:"version"`
		Title       string            `json:"title"`
		Info        CircuitInfo       `json:"info"`
		Components  []exportComponent `json:"components"`
		Nets        []exportNet       `json:"nets"`
		GeneratedBy string            `json:"generated_by"`
	}{
		Version:     "1.0",
		Title:       g.cfg.Title,
		Info:        info,
		Components:  comps,
		Nets:        nets,
		GeneratedBy: "schematic capture connectivity model",
	}

	return json.MarshalIndent(output, "", "  ")
}

// ExportKiCad renders the connectivity as a KiCad-style netlist, grouping
// terminals by node. Nodes touched by fewer than two terminals are skipped;
// they carry no connectivity. This is a simplified format for basic
// connectivity interchange.
func (g *Graph) ExportKiCad() (string, error) {
	var output string
	output += "(export (version D)\n"
	output += "  (design\n"
	output += fmt.Sprintf("    (source %q)\n", g.cfg.Title)
	output += "    (date \"auto-generated\")\n"
	output += "  )\n"

	output += "  (components\n"
	for _, id := range g.order {
		output += fmt.Sprintf("    (comp (ref %s))\n", g.components[id].Name)
	}
	output += "  )\n"

	output += "  (nets\n"
	code := 0
	for _, node := range g.nodeOrder {
		attached := g.nodeIndex[node]
		if len(attached) < 2 {
			continue
		}
		output += fmt.Sprintf("    (net (code %d) (name %s)\n", code, node)
		for _, b := range attached {
			if c, ok := g.components[b.componentID]; ok {
				output += fmt.Sprintf("      (node (ref %s) (pin %d))\n", c.Name, b.terminal)
			}
		}
		output += "    )\n"
		code++
	}
	output += "  )\n"
	output += ")\n"

	return output, nil
}
