package deck

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenSchemLab/OpenSchemCap/pkg/component"
)

// Parser reads netlist decks.
type Parser struct {
	parser *participle.Parser[deckFile]
}

// NewParser builds the deck grammar.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[deckFile](
		participle.Lexer(deckLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("deck: failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse reads a deck from a reader.
func (p *Parser) Parse(r io.Reader) (*Deck, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("deck: parse error: %w", err)
	}
	return interpret(file), nil
}

// ParseString reads a deck from a string.
func (p *Parser) ParseString(input string) (*Deck, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("deck: parse error: %w", err)
	}
	return interpret(file), nil
}

// ParseFile reads a deck from a file path.
func (p *Parser) ParseFile(filename string) (*Deck, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("deck: failed to open file: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}

// interpret turns the raw parse tree into elements. Cards after ".end" are
// ignored, matching simulator behavior.
func interpret(file *deckFile) *Deck {
	d := &Deck{}
	seen := make(map[string]bool)

	for _, line := range file.Lines {
		switch {
		case line.Comment != "":
			if d.Title == "" {
				d.Title = strings.TrimSpace(strings.TrimPrefix(line.Comment, "*"))
			}
		case line.Directive != nil:
			if strings.EqualFold(line.Directive.Name, ".end") {
				return d
			}
			d.Warnings = append(d.Warnings,
				fmt.Sprintf("ignoring unsupported directive %s", line.Directive.Name))
		case line.Card != nil:
			el, warning := interpretCard(line.Card.Fields)
			if warning != "" {
				d.Warnings = append(d.Warnings, warning)
			}
			if el == nil {
				continue
			}
			if seen[el.Ref] {
				d.Warnings = append(d.Warnings,
					fmt.Sprintf("duplicate reference %s: later card replaces the earlier one", el.Ref))
			}
			seen[el.Ref] = true
			d.Elements = append(d.Elements, el)
		}
	}
	return d
}

func interpretCard(fields []string) (*Element, string) {
	if len(fields) < 3 {
		return nil, fmt.Sprintf("skipping malformed card %q: want at least name and two nodes", strings.Join(fields, " "))
	}

	ref := fields[0]
	el := &Element{
		Ref:    ref,
		Name:   ref[1:],
		Node1:  fields[1],
		Node2:  fields[2],
		Params: make(map[string]string),
	}
	rest := fields[3:]

	switch strings.ToUpper(ref[:1]) {
	case "R":
		el.Kind = component.Resistor
		if len(rest) > 0 {
			el.Value = rest[0]
			el.Params[component.ParamResistance] = rest[0]
		}
		return el, ""
	case "V":
		return interpretSource(el, rest)
	case "X":
		el.Kind = component.Generic
		el.Name = ref[1:]
		el.Value = strings.Join(rest, " ")
		return el, ""
	default:
		el.Kind = component.Generic
		el.Name = ref
		el.Value = strings.Join(rest, " ")
		return el, fmt.Sprintf("card %s: element letter %q has no registered kind, treating as generic", ref, ref[:1])
	}
}

// interpretSource classifies a V card by its parameter text: "DC <v>",
// "SIN(...) AC <mag> <phase>", "PULSE(...)" or a bare value.
func interpretSource(el *Element, rest []string) (*Element, string) {
	text := strings.Join(rest, " ")
	upper := strings.ToUpper(text)

	switch {
	case strings.HasPrefix(upper, "DC "):
		el.Kind = component.DCSource
		el.Params[component.ParamVoltage] = strings.TrimSpace(text[3:])
	case strings.HasPrefix(upper, "SIN("):
		el.Kind = component.ACSource
		inner, after, ok := splitCall(text)
		if !ok {
			return nil, fmt.Sprintf("card V%s: unterminated SIN(", el.Name)
		}
		args := strings.Fields(inner)
		assign(el, args, component.ParamDCOffset, component.ParamAmplitude, component.ParamFrequency)
		acArgs := strings.Fields(after)
		if len(acArgs) >= 3 && strings.EqualFold(acArgs[0], "AC") {
			el.Params[component.ParamACMagnitude] = acArgs[1]
			el.Params[component.ParamACPhase] = acArgs[2]
		}
	case strings.HasPrefix(upper, "PULSE("):
		el.Kind = component.PulseSource
		inner, _, ok := splitCall(text)
		if !ok {
			return nil, fmt.Sprintf("card V%s: unterminated PULSE(", el.Name)
		}
		args := strings.Fields(inner)
		assign(el, args,
			component.ParamInitial, component.ParamPulsed, component.ParamDelay,
			component.ParamRise, component.ParamFall, component.ParamWidth,
			component.ParamPeriod)
	default:
		// Bare value, e.g. "VIN N1 0 5V".
		el.Kind = component.DCSource
		if text != "" {
			el.Params[component.ParamVoltage] = text
		}
	}
	el.Value = text
	return el, ""
}

// splitCall splits "NAME(a b c) trailing" into the argument text and the
// trailing text.
func splitCall(text string) (inner, after string, ok bool) {
	open := strings.Index(text, "(")
	end := strings.Index(text, ")")
	if open < 0 || end < open {
		return "", "", false
	}
	return text[open+1 : end], strings.TrimSpace(text[end+1:]), true
}

func assign(el *Element, args []string, params ...string) {
	for i, p := range params {
		if i < len(args) {
			el.Params[p] = args[i]
		}
	}
}
