package circuit

import (
	"strings"
	"testing"

	"github.com/OpenSchemLab/OpenSchemCap/pkg/component"
)

func TestGenerateNetlistResistor(t *testing.T) {
	g := NewGraph(nil)
	r := component.New(component.Resistor, "R1", "1k")

	n1, n2 := g.AddComponent(r, "", "")
	if n1 != "N1" || n2 != "N2" {
		t.Fatalf("AddComponent() = (%q, %q), want (N1, N2)", n1, n2)
	}

	text, warnings := g.GenerateNetlist()
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if !strings.Contains(text, "RR1 N1 N2 1k") {
		t.Errorf("netlist missing resistor line:\n%s", text)
	}
}

func TestGenerateNetlistStructure(t *testing.T) {
	g := NewGraph(nil)
	r := component.New(component.Resistor, "R1", "1k")
	v := component.New(component.DCSource, "IN", "")
	g.AddComponent(r, "N1", "0")
	g.AddComponent(v, "N1", "0")

	text, _ := g.GenerateNetlist()
	lines := strings.Split(text, "\n")

	if lines[0] != "* Circuit Netlist" {
		t.Errorf("title line = %q", lines[0])
	}
	if lines[1] != "* Generated automatically" {
		t.Errorf("comment line = %q", lines[1])
	}
	if lines[len(lines)-1] != ".end" {
		t.Errorf("last line = %q, want .end", lines[len(lines)-1])
	}
	if lines[len(lines)-2] != "* Ground reference" {
		t.Errorf("penultimate line = %q", lines[len(lines)-2])
	}

	// Exactly one component line per bound edge, in insertion order.
	var compLines []string
	for _, line := range lines {
		if line == "" || strings.HasPrefix(line, "*") || strings.HasPrefix(line, ".") {
			continue
		}
		compLines = append(compLines, line)
	}
	if len(compLines) != 2 {
		t.Fatalf("expected 2 component lines, got %v", compLines)
	}
	if compLines[0] != "RR1 N1 0 1k" {
		t.Errorf("resistor line = %q", compLines[0])
	}
	if compLines[1] != "VIN N1 0 DC 5V" {
		t.Errorf("source line = %q", compLines[1])
	}
}

func TestGenerateNetlistDeterministic(t *testing.T) {
	g := NewGraph(nil)
	for _, name := range []string{"R1", "R2", "R3"} {
		g.AddComponent(component.New(component.Resistor, name, "1k"), "", "")
	}

	first, _ := g.GenerateNetlist()
	for i := 0; i < 5; i++ {
		again, _ := g.GenerateNetlist()
		if again != first {
			t.Fatalf("netlist not deterministic across repeated calls")
		}
	}
}

func TestGenerateNetlistUnknownKindWarns(t *testing.T) {
	g := NewGraph(nil)
	c := component.NewWithID("U1", component.Kind("thermistor"), "U1", "10k")
	g.AddComponent(c, "A", "B")

	text, warnings := g.GenerateNetlist()
	if !strings.Contains(text, "XU1 A B 10k") {
		t.Errorf("generic line missing:\n%s", text)
	}
	if len(warnings) != 1 {
		t.Errorf("expected one warning, got %v", warnings)
	}
}

func TestGenerateNetlistAfterRemoval(t *testing.T) {
	g := NewGraph(nil)
	r1 := component.New(component.Resistor, "R1", "1k")
	r2 := component.New(component.Resistor, "R2", "2k")
	g.AddComponent(r1, "A", "B")
	g.AddComponent(r2, "B", "C")
	g.RemoveComponent(r1.ID)

	text, _ := g.GenerateNetlist()
	if strings.Contains(text, "RR1") {
		t.Errorf("removed component still rendered:\n%s", text)
	}
	if !strings.Contains(text, "RR2 B C 2k") {
		t.Errorf("remaining component missing:\n%s", text)
	}
}

func TestNetlistSnapshotSemantics(t *testing.T) {
	g := NewGraph(nil)
	r := component.New(component.Resistor, "R1", "1k")
	g.AddComponent(r, "A", "B")

	before, _ := g.GenerateNetlist()
	g.AddComponent(component.New(component.Resistor, "R2", "2k"), "B", "C")

	// The earlier text is a snapshot; mutation must not change it.
	if strings.Contains(before, "RR2") {
		t.Errorf("snapshot text changed retroactively")
	}
}
