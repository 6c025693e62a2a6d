package editor

import (
	"fmt"

	"github.com/OpenSchemLab/OpenSchemCap/pkg/circuit"
	"github.com/OpenSchemLab/OpenSchemCap/pkg/component"
)

// PlaceCommand adds a component to the graph. Node arguments may be empty;
// the names minted on the first apply are recorded so undo followed by redo
// restores the identical bindings.
type PlaceCommand struct {
	graph *circuit.Graph
	comp  *component.Component
	node1 string
	node2 string
}

// NewPlaceCommand creates a placement command.
func NewPlaceCommand(g *circuit.Graph, c *component.Component, node1, node2 string) *PlaceCommand {
	return &PlaceCommand{graph: g, comp: c, node1: node1, node2: node2}
}

// Nodes returns the node pair the component was bound to. Valid after the
// first Apply.
func (p *PlaceCommand) Nodes() (string, string) {
	return p.node1, p.node2
}

func (p *PlaceCommand) Apply() error {
	if p.comp == nil {
		return fmt.Errorf("editor: place command without component")
	}
	p.node1, p.node2 = p.graph.AddComponent(p.comp, p.node1, p.node2)
	return nil
}

func (p *PlaceCommand) Revert() error {
	p.graph.RemoveComponent(p.comp.ID)
	return nil
}

// DeleteCommand removes a component, remembering its bindings so a revert
// restores them exactly.
type DeleteCommand struct {
	graph *circuit.Graph
	id    string

	comp  *component.Component
	node1 string
	node2 string
}

// NewDeleteCommand creates a deletion command.
func NewDeleteCommand(g *circuit.Graph, id string) *DeleteCommand {
	return &DeleteCommand{graph: g, id: id}
}

func (d *DeleteCommand) Apply() error {
	c, ok := d.graph.Component(d.id)
	if !ok {
		return fmt.Errorf("editor: delete of unknown component %s", d.id)
	}
	d.comp = c
	d.node1, d.node2, _ = d.graph.ComponentNodes(d.id)
	d.graph.RemoveComponent(d.id)
	return nil
}

func (d *DeleteCommand) Revert() error {
	if d.comp == nil {
		return fmt.Errorf("editor: delete command reverted before apply")
	}
	d.graph.AddComponent(d.comp, d.node1, d.node2)
	return nil
}

// WireCommand joins two terminals onto a shared node, remembering the
// rebound terminal's previous node for revert.
type WireCommand struct {
	graph *circuit.Graph

	aID   string
	aTerm int
	bID   string
	bTerm int

	node    string // shared node after apply
	oldNode string // bTerm's node before apply
	applied bool
}

// NewWireCommand creates a wiring command joining (bID, bTerm) onto the
// node of (aID, aTerm).
func NewWireCommand(g *circuit.Graph, aID string, aTerm int, bID string, bTerm int) *WireCommand {
	return &WireCommand{graph: g, aID: aID, aTerm: aTerm, bID: bID, bTerm: bTerm}
}

// Node returns the shared node. Valid after the first Apply.
func (w *WireCommand) Node() string {
	return w.node
}

func (w *WireCommand) Apply() error {
	old, ok := w.graph.TerminalNode(w.bID, w.bTerm)
	if !ok {
		return fmt.Errorf("editor: wire target %s terminal %d is unbound", w.bID, w.bTerm)
	}
	node, ok := w.graph.ConnectTerminals(w.aID, w.aTerm, w.bID, w.bTerm)
	if !ok {
		return fmt.Errorf("editor: wire source %s terminal %d is unbound", w.aID, w.aTerm)
	}
	w.oldNode = old
	w.node = node
	w.applied = true
	return nil
}

func (w *WireCommand) Revert() error {
	if !w.applied {
		return fmt.Errorf("editor: wire command reverted before apply")
	}
	if !w.graph.RebindTerminal(w.bID, w.bTerm, w.oldNode) {
		return fmt.Errorf("editor: wire revert lost terminal %s/%d", w.bID, w.bTerm)
	}
	return nil
}
