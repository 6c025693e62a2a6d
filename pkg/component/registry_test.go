package component

import (
	"strings"
	"testing"
)

func TestRenderResistor(t *testing.T) {
	r := New(Resistor, "R1", "1k")

	line, warning := RenderNetlistLine(r, "N1", "N2")
	if warning != "" {
		t.Errorf("unexpected warning: %s", warning)
	}
	if line != "RR1 N1 N2 1k" {
		t.Errorf("RenderNetlistLine() = %q, want %q", line, "RR1 N1 N2 1k")
	}
}

func TestRenderResistorDefaults(t *testing.T) {
	// No value and no parameters: the registry default applies.
	r := New(Resistor, "R2", "")

	line, _ := RenderNetlistLine(r, "A", "B")
	if line != "RR2 A B 1k" {
		t.Errorf("RenderNetlistLine() = %q, want %q", line, "RR2 A B 1k")
	}
}

func TestRenderResistorParamOverridesValue(t *testing.T) {
	r := New(Resistor, "R3", "1k")
	r.SetParam(ParamResistance, "470")

	line, _ := RenderNetlistLine(r, "A", "B")
	if line != "RR3 A B 470" {
		t.Errorf("RenderNetlistLine() = %q, want %q", line, "RR3 A B 470")
	}
}

func TestRenderDCSource(t *testing.T) {
	v := New(DCSource, "IN", "")
	v.SetParam(ParamVoltage, "12V")

	line, _ := RenderNetlistLine(v, "N1", "0")
	if line != "VIN N1 0 DC 12V" {
		t.Errorf("RenderNetlistLine() = %q, want %q", line, "VIN N1 0 DC 12V")
	}
}

func TestRenderACSourceDefaults(t *testing.T) {
	v := New(ACSource, "SIG", "")

	line, _ := RenderNetlistLine(v, "N1", "0")
	want := "VSIG N1 0 SIN(0V 5V 1kHz) AC 1V 0"
	if line != want {
		t.Errorf("RenderNetlistLine() = %q, want %q", line, want)
	}
}

func TestRenderPulseSource(t *testing.T) {
	v := New(PulseSource, "CLK", "")
	v.SetParam(ParamWidth, "500us")
	v.SetParam(ParamPeriod, "1ms")

	line, _ := RenderNetlistLine(v, "N3", "0")
	want := "VCLK N3 0 PULSE(0V 5V 0s 1ns 1ns 500us 1ms)"
	if line != want {
		t.Errorf("RenderNetlistLine() = %q, want %q", line, want)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	c := NewWithID("U9", Kind("varistor"), "U9", "2.5")

	line, warning := RenderNetlistLine(c, "N1", "N2")
	if line != "XU9 N1 N2 2.5" {
		t.Errorf("RenderNetlistLine() = %q, want %q", line, "XU9 N1 N2 2.5")
	}
	if warning == "" {
		t.Errorf("expected a warning for an unregistered kind")
	}
	if !strings.Contains(warning, "varistor") {
		t.Errorf("warning should name the kind, got %q", warning)
	}
}

func TestRenderGenericDefaultsValue(t *testing.T) {
	c := NewWithID("U1", Generic, "U1", "")

	line, _ := RenderNetlistLine(c, "A", "B")
	if line != "XU1 A B 1" {
		t.Errorf("RenderNetlistLine() = %q, want %q", line, "XU1 A B 1")
	}
}

func TestLookup(t *testing.T) {
	for _, kind := range Kinds() {
		spec, ok := Lookup(kind)
		if !ok {
			t.Fatalf("kind %s not registered", kind)
		}
		if spec.TerminalCount != 2 {
			t.Errorf("kind %s: terminal count = %d, want 2", kind, spec.TerminalCount)
		}
		if spec.Prefix == "" {
			t.Errorf("kind %s: empty prefix", kind)
		}
	}

	if _, ok := Lookup(Generic); ok {
		t.Errorf("Generic must not be registered; it is the fallback")
	}
}

func TestNewMintsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c := New(Resistor, "R", "1k")
		if seen[c.ID] {
			t.Fatalf("duplicate component ID %s", c.ID)
		}
		seen[c.ID] = true
	}
}
