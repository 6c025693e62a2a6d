// Package editor hosts the editor-side collaborators of the circuit graph:
// an undoable command stack and a facade that translates editor events
// (component placed, wire completed, component deleted) into graph
// mutations. The graph stays the single source of truth for connectivity;
// this package only sequences mutations and remembers how to revert them.
package editor

import "errors"

var (
	ErrNothingToUndo = errors.New("editor: nothing to undo")
	ErrNothingToRedo = errors.New("editor: nothing to redo")
)

// Command is one undoable graph mutation. Apply is called both for the
// initial execution and for redo; implementations record whatever they need
// on first apply (e.g. minted node names) so a redo reproduces the exact
// same bindings.
type Command interface {
	Apply() error
	Revert() error
}

// DefaultStackLimit bounds command history.
const DefaultStackLimit = 100

// Stack is a bounded undo/redo stack.
type Stack struct {
	limit int
	undo  []Command
	redo  []Command
}

// NewStack creates a stack. Limits below one select DefaultStackLimit.
func NewStack(limit int) *Stack {
	if limit < 1 {
		limit = DefaultStackLimit
	}
	return &Stack{limit: limit}
}

// Do applies a command and records it. A newly applied command clears the
// redo history; the oldest entry is dropped once the limit is reached.
func (s *Stack) Do(cmd Command) error {
	if err := cmd.Apply(); err != nil {
		return err
	}
	s.undo = append(s.undo, cmd)
	s.redo = s.redo[:0]
	if len(s.undo) > s.limit {
		s.undo = s.undo[1:]
	}
	return nil
}

// Undo reverts the most recent command.
func (s *Stack) Undo() error {
	if len(s.undo) == 0 {
		return ErrNothingToUndo
	}
	cmd := s.undo[len(s.undo)-1]
	if err := cmd.Revert(); err != nil {
		return err
	}
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, cmd)
	return nil
}

// Redo re-applies the most recently undone command.
func (s *Stack) Redo() error {
	if len(s.redo) == 0 {
		return ErrNothingToRedo
	}
	cmd := s.redo[len(s.redo)-1]
	if err := cmd.Apply(); err != nil {
		return err
	}
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, cmd)
	return nil
}

// CanUndo reports whether history is available.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether undone commands are available.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// Clear drops all history.
func (s *Stack) Clear() {
	s.undo = s.undo[:0]
	s.redo = s.redo[:0]
}
