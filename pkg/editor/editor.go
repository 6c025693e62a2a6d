package editor

import (
	"github.com/OpenSchemLab/OpenSchemCap/pkg/circuit"
	"github.com/OpenSchemLab/OpenSchemCap/pkg/component"
)

// Editor owns one circuit graph and its command history. Its methods are
// the inbound event surface a schematic canvas calls into: placement,
// wiring and deletion all flow through the command stack so they are
// undoable.
type Editor struct {
	graph *circuit.Graph
	stack *Stack
}

// New creates an editor over a fresh graph. A nil config selects the
// circuit defaults.
func New(cfg *circuit.Config) *Editor {
	return &Editor{
		graph: circuit.NewGraph(cfg),
		stack: NewStack(DefaultStackLimit),
	}
}

// Graph exposes the connectivity model for queries (validation, netlist
// generation, node lookups). Mutations should go through the editor so
// they stay undoable.
func (e *Editor) Graph() *circuit.Graph {
	return e.graph
}

// PlaceComponent handles a component-placed event. Empty node names mint
// fresh nodes; the bound pair is returned.
func (e *Editor) PlaceComponent(c *component.Component, node1, node2 string) (string, string, error) {
	cmd := NewPlaceCommand(e.graph, c, node1, node2)
	if err := e.stack.Do(cmd); err != nil {
		return "", "", err
	}
	n1, n2 := cmd.Nodes()
	return n1, n2, nil
}

// CompleteWire handles a wire-completed event between two terminals. The
// two terminals end up bound to the same node, which is returned.
func (e *Editor) CompleteWire(aID string, aTerm int, bID string, bTerm int) (string, error) {
	cmd := NewWireCommand(e.graph, aID, aTerm, bID, bTerm)
	if err := e.stack.Do(cmd); err != nil {
		return "", err
	}
	return cmd.Node(), nil
}

// DeleteComponent handles a component-deleted event.
func (e *Editor) DeleteComponent(id string) error {
	return e.stack.Do(NewDeleteCommand(e.graph, id))
}

// Undo reverts the most recent edit.
func (e *Editor) Undo() error { return e.stack.Undo() }

// Redo re-applies the most recently undone edit.
func (e *Editor) Redo() error { return e.stack.Redo() }

// CanUndo reports whether edit history is available.
func (e *Editor) CanUndo() bool { return e.stack.CanUndo() }

// CanRedo reports whether undone edits are available.
func (e *Editor) CanRedo() bool { return e.stack.CanRedo() }
