package deck

import (
	"github.com/OpenSchemLab/OpenSchemCap/pkg/circuit"
	"github.com/OpenSchemLab/OpenSchemCap/pkg/component"
)

// deckFile is the participle grammar root: a deck is a sequence of lines.
type deckFile struct {
	Lines []*deckLine `parser:"@@*"`
}

// deckLine is one physical line: blank, comment, directive or card.
type deckLine struct {
	Blank     bool       `parser:"  @EOL"`
	Comment   string     `parser:"| @Comment EOL?"`
	Directive *directive `parser:"| @@"`
	Card      *card      `parser:"| @@"`
}

type directive struct {
	Name string   `parser:"@Directive"`
	Args []string `parser:"@Word* EOL?"`
}

// card is a raw component line before semantic interpretation.
type card struct {
	Fields []string `parser:"@Word+ EOL?"`
}

// Element is one interpreted component card.
type Element struct {
	// Ref is the full reference as written ("RR1", "VIN").
	Ref string

	// Name is the designator without the element letter.
	Name string

	Kind  component.Kind
	Node1 string
	Node2 string

	// Params carries the kind-specific parameters recovered from the
	// card's value portion.
	Params map[string]string

	// Value is the raw value text for kinds without a parameter schema.
	Value string
}

// Deck is the parsed form of a netlist file.
type Deck struct {
	// Title is the first comment line, without the leading "*".
	Title string

	Elements []*Element

	// Warnings reports skipped or degraded cards. A deck with warnings
	// still yields a usable graph.
	Warnings []string
}

// Graph builds a circuit graph from the deck, binding every element to its
// explicit node names. Round-tripping GenerateNetlist through Parse and
// back to Graph preserves node identity and edge order.
func (d *Deck) Graph() *circuit.Graph {
	cfg := circuit.DefaultConfig()
	if d.Title != "" {
		cfg.Title = d.Title
	}
	g := circuit.NewGraph(cfg)

	for _, el := range d.Elements {
		c := component.NewWithID(el.Ref, el.Kind, el.Name, el.Value)
		for k, v := range el.Params {
			c.SetParam(k, v)
		}
		g.AddComponent(c, el.Node1, el.Node2)
	}
	return g
}
