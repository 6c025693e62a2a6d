package component

import (
	"fmt"
	"strings"
)

// Parameter names shared between the registry defaults, the deck reader and
// the hosting application's property editing.
const (
	ParamResistance  = "resistance"
	ParamTolerance   = "tolerance"
	ParamPowerRating = "power_rating"
	ParamTempCoeff   = "temp_coefficient"

	ParamVoltage = "voltage"

	ParamDCOffset    = "dc_offset"
	ParamAmplitude   = "amplitude"
	ParamFrequency   = "frequency"
	ParamACMagnitude = "ac_magnitude"
	ParamACPhase     = "ac_phase"

	ParamInitial = "initial"
	ParamPulsed  = "pulsed"
	ParamDelay   = "delay"
	ParamRise    = "rise"
	ParamFall    = "fall"
	ParamWidth   = "width"
	ParamPeriod  = "period"
)

// KindSpec describes one entry of the kind registry: terminal layout,
// netlist prefix, editable parameter schema and the rendering rule.
type KindSpec struct {
	Kind          Kind
	TerminalCount int
	TerminalNames []string

	// Prefix is the SPICE element letter ("R", "V", "X").
	Prefix string

	// Defaults provides parameter values used when an instance has not
	// been edited.
	Defaults map[string]string

	// Render produces the parameter portion of a netlist line, i.e.
	// everything after "<prefix><name> <n1> <n2> ".
	Render func(c *Component) string
}

// registry is the closed kind table. Generic is deliberately absent: it is
// the fallback taken by RenderNetlistLine for unregistered kinds.
var registry map[Kind]*KindSpec

func init() {
	registry = map[Kind]*KindSpec{
		Resistor: {
			Kind:          Resistor,
			TerminalCount: 2,
			TerminalNames: []string{"1", "2"},
			Prefix:        "R",
			Defaults: map[string]string{
				ParamResistance:  "1k",
				ParamTolerance:   "5%",
				ParamPowerRating: "0.25",
				ParamTempCoeff:   "100",
			},
			Render: renderResistor,
		},
		DCSource: {
			Kind:          DCSource,
			TerminalCount: 2,
			TerminalNames: []string{"+", "-"},
			Prefix:        "V",
			Defaults: map[string]string{
				ParamVoltage: "5V",
			},
			Render: renderDCSource,
		},
		ACSource: {
			Kind:          ACSource,
			TerminalCount: 2,
			TerminalNames: []string{"+", "-"},
			Prefix:        "V",
			Defaults: map[string]string{
				ParamDCOffset:    "0V",
				ParamAmplitude:   "5V",
				ParamFrequency:   "1kHz",
				ParamACMagnitude: "1V",
				ParamACPhase:     "0",
			},
			Render: renderACSource,
		},
		PulseSource: {
			Kind:          PulseSource,
			TerminalCount: 2,
			TerminalNames: []string{"+", "-"},
			Prefix:        "V",
			Defaults: map[string]string{
				ParamInitial: "0V",
				ParamPulsed:  "5V",
				ParamDelay:   "0s",
				ParamRise:    "1ns",
				ParamFall:    "1ns",
				ParamWidth:   "1ms",
				ParamPeriod:  "2ms",
			},
			Render: renderPulseSource,
		},
	}
}

// Lookup returns the registry entry for a kind.
func Lookup(kind Kind) (*KindSpec, bool) {
	spec, ok := registry[kind]
	return spec, ok
}

// Kinds returns the registered kinds in a fixed order.
func Kinds() []Kind {
	return []Kind{Resistor, DCSource, ACSource, PulseSource}
}

// RenderNetlistLine renders one netlist line for a component bound to the
// given nodes. Unregistered kinds degrade to a generic "X" line and report
// a warning; rendering never fails.
func RenderNetlistLine(c *Component, node1, node2 string) (line string, warning string) {
	name := c.Name
	if name == "" {
		name = c.ID
	}
	spec, ok := registry[c.Kind]
	if !ok {
		value := c.Value
		if value == "" {
			value = "1"
		}
		line = fmt.Sprintf("X%s %s %s %s", name, node1, node2, value)
		warning = fmt.Sprintf("component %s: kind %q has no netlist mapping, rendered generically", name, c.Kind)
		return line, warning
	}
	return fmt.Sprintf("%s%s %s %s %s", spec.Prefix, name, node1, node2, spec.Render(c)), ""
}

func renderResistor(c *Component) string {
	if v := strings.TrimSpace(c.Param(ParamResistance, "")); v != "" {
		return v
	}
	if c.Value != "" {
		return c.Value
	}
	return "1k"
}

func renderDCSource(c *Component) string {
	v := c.Param(ParamVoltage, c.Value)
	if v == "" {
		v = "5V"
	}
	return "DC " + v
}

func renderACSource(c *Component) string {
	return fmt.Sprintf("SIN(%s %s %s) AC %s %s",
		c.Param(ParamDCOffset, "0V"),
		c.Param(ParamAmplitude, "5V"),
		c.Param(ParamFrequency, "1kHz"),
		c.Param(ParamACMagnitude, "1V"),
		c.Param(ParamACPhase, "0"))
}

func renderPulseSource(c *Component) string {
	return fmt.Sprintf("PULSE(%s %s %s %s %s %s %s)",
		c.Param(ParamInitial, "0V"),
		c.Param(ParamPulsed, "5V"),
		c.Param(ParamDelay, "0s"),
		c.Param(ParamRise, "1ns"),
		c.Param(ParamFall, "1ns"),
		c.Param(ParamWidth, "1ms"),
		c.Param(ParamPeriod, "2ms"))
}
