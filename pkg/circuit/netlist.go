package circuit

import (
	"strings"

	"github.com/OpenSchemLab/OpenSchemCap/pkg/component"
)

// GenerateNetlist renders the circuit as a SPICE-style netlist: a title
// comment block, one line per component edge in insertion order, and the
// ".end" marker. The output is deterministic for a fixed mutation history
// and the call is pure — writing the text anywhere is the caller's job.
//
// Components whose kind has no simulator mapping are rendered generically
// and reported in warnings rather than failing the export. No ground line is
// forced: if nothing references the ground node, none appears.
func (g *Graph) GenerateNetlist() (string, []string) {
	var lines []string
	var warnings []string

	lines = append(lines, "* "+g.cfg.Title)
	lines = append(lines, "* Generated automatically")
	lines = append(lines, "")

	for _, id := range g.order {
		n1, n2, ok := g.ComponentNodes(id)
		if !ok {
			continue
		}
		line, warning := component.RenderNetlistLine(g.components[id], n1, n2)
		lines = append(lines, line)
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	lines = append(lines, "")
	lines = append(lines, "* Ground reference")
	lines = append(lines, ".end")

	return strings.Join(lines, "\n"), warnings
}
