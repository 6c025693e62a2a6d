// Package component defines the catalogue of schematic component kinds and
// their netlist rendering rules.
//
// Kinds form a small closed set (resistor, voltage-source variants) indexed
// by a registry table rather than a type hierarchy: adding a kind means
// adding a table entry. The package also provides SPICE-style value parsing
// (number plus SI-like suffix) for simulator unit annotation.
package component

import (
	"fmt"
	"sync/atomic"
)

// Kind identifies a component kind in the registry.
type Kind string

const (
	Resistor    Kind = "resistor"
	DCSource    Kind = "dc_source"
	ACSource    Kind = "ac_source"
	PulseSource Kind = "pulse_source"

	// Generic is the fallback for kinds without a simulator mapping.
	// Such components still participate in topology analysis.
	Generic Kind = "generic"
)

// Component is a placed component instance. The editor owns its visual
// lifecycle; the circuit graph owns its terminal-to-node bindings.
type Component struct {
	// ID is assigned at creation and immutable for the instance's lifetime.
	ID string

	// Name is the designator rendered into the netlist (e.g. "R1").
	Name string

	Kind Kind

	// Value is the primary textual value ("1k", "5V"). Kind-specific
	// parameters live in Params and take precedence during rendering.
	Value string

	// Params holds kind-specific parameters keyed by the names in the
	// registry's parameter schema. Mutable; edited via property dialogs
	// in the hosting application.
	Params map[string]string
}

var idCounter atomic.Uint64

// New creates a component with a freshly minted ID. IDs are unique for the
// process lifetime and never reused.
func New(kind Kind, name, value string) *Component {
	return &Component{
		ID:     fmt.Sprintf("C%d", idCounter.Add(1)),
		Name:   name,
		Kind:   kind,
		Value:  value,
		Params: make(map[string]string),
	}
}

// NewWithID creates a component under a caller-supplied ID. Used when the
// hosting application assigns its own identifiers (e.g. when reloading a
// saved circuit).
func NewWithID(id string, kind Kind, name, value string) *Component {
	return &Component{
		ID:     id,
		Name:   name,
		Kind:   kind,
		Value:  value,
		Params: make(map[string]string),
	}
}

// Param returns the named parameter, falling back to the kind's registered
// default and then to the provided fallback.
func (c *Component) Param(name, fallback string) string {
	if c.Params != nil {
		if v, ok := c.Params[name]; ok && v != "" {
			return v
		}
	}
	if spec, ok := Lookup(c.Kind); ok {
		if v, ok := spec.Defaults[name]; ok {
			return v
		}
	}
	return fallback
}

// SetParam sets a kind-specific parameter.
func (c *Component) SetParam(name, value string) {
	if c.Params == nil {
		c.Params = make(map[string]string)
	}
	c.Params[name] = value
}

// TerminalCount returns the declared terminal count for the component's
// kind. Unregistered kinds report two terminals, matching the generic
// netlist rendering.
func (c *Component) TerminalCount() int {
	if spec, ok := Lookup(c.Kind); ok {
		return spec.TerminalCount
	}
	return 2
}
