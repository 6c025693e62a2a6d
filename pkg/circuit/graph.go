package circuit

import (
	"fmt"

	"github.com/OpenSchemLab/OpenSchemCap/pkg/component"
)

// Config controls node naming and netlist titling for a Graph.
type Config struct {
	// Title is the comment placed at the top of generated netlists.
	Title string

	// NodePrefix prefixes minted node names ("N" yields N1, N2, ...).
	NodePrefix string

	// Ground is the reserved ground reference node name.
	Ground string
}

// DefaultConfig returns the conventional settings: "N"-prefixed nodes and
// SPICE ground node "0".
func DefaultConfig() *Config {
	return &Config{
		Title:      "Circuit Netlist",
		NodePrefix: "N",
		Ground:     "0",
	}
}

// binding identifies one terminal of one component instance.
type binding struct {
	componentID string
	terminal    int
}

// Graph is the circuit connectivity model. See the package documentation
// for the ownership and concurrency contract.
type Graph struct {
	cfg Config

	// nodeCounter mints fresh node names. It only increases, even across
	// removals, so a deleted node name is never handed out again.
	nodeCounter int

	components map[string]*component.Component
	order      []string // component IDs in insertion order

	// bindings is the single source of truth: terminal -> node.
	bindings map[binding]string

	// nodeIndex answers "which terminals touch this node" without a full
	// scan; maintained incrementally on add/remove/rebind.
	nodeIndex map[string][]binding
	nodeOrder []string // node names in first-seen order
}

// NewGraph creates an empty graph. A nil config selects DefaultConfig.
func NewGraph(cfg *Config) *Graph {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Graph{
		cfg:         *cfg,
		nodeCounter: 1, // index 0 is reserved for ground
		components:  make(map[string]*component.Component),
		bindings:    make(map[binding]string),
		nodeIndex:   make(map[string][]binding),
	}
}

// Config returns the graph's configuration.
func (g *Graph) Config() Config {
	return g.cfg
}

// AddComponent binds the component's first two terminals to the given node
// names, minting a fresh unique name for each empty argument, and returns
// the pair actually used. Adding two components with the same explicit pair
// is legal and creates a second distinct edge; that is how short circuits
// arise and validation reports them. Re-adding an ID that is already present
// drops the old bindings first, so the terminal-count invariant holds.
func (g *Graph) AddComponent(c *component.Component, node1, node2 string) (string, string) {
	if c == nil || c.ID == "" {
		return "", ""
	}

	if _, exists := g.components[c.ID]; exists {
		g.RemoveComponent(c.ID)
	}

	if node1 == "" {
		node1 = g.mintNode()
	}
	if node2 == "" {
		node2 = g.mintNode()
	}

	g.components[c.ID] = c
	g.order = append(g.order, c.ID)

	g.touchNode(node1)
	g.touchNode(node2)

	g.bind(binding{c.ID, 0}, node1)
	g.bind(binding{c.ID, 1}, node2)

	return node1, node2
}

// RemoveComponent deletes every edge and terminal binding owned by the
// component. Unknown IDs are a no-op, so an editor's undo/redo may call this
// without tracking whether removal already happened. Nodes left without
// incident edges stay registered (detectable as floating via Validate).
func (g *Graph) RemoveComponent(id string) {
	if _, ok := g.components[id]; !ok {
		return
	}

	for b, node := range g.bindings {
		if b.componentID != id {
			continue
		}
		g.nodeIndex[node] = removeBinding(g.nodeIndex[node], b)
		delete(g.bindings, b)
	}

	delete(g.components, id)
	for i, cid := range g.order {
		if cid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// ComponentNodes reports the node pair a component is bound to. The third
// return is false for unknown IDs; queries during transient editor states
// are expected and never an error.
func (g *Graph) ComponentNodes(id string) (string, string, bool) {
	n1, ok1 := g.bindings[binding{id, 0}]
	n2, ok2 := g.bindings[binding{id, 1}]
	if !ok1 && !ok2 {
		return "", "", false
	}
	return n1, n2, true
}

// ComponentsAtNode returns every component with at least one terminal bound
// to the node, ordered by binding insertion so repeated calls are
// deterministic for a fixed history. Unknown nodes yield an empty slice.
func (g *Graph) ComponentsAtNode(node string) []*component.Component {
	seen := make(map[string]bool)
	var out []*component.Component
	for _, b := range g.nodeIndex[node] {
		if seen[b.componentID] {
			continue
		}
		seen[b.componentID] = true
		if c, ok := g.components[b.componentID]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ConnectTerminals joins terminal bTerm of component bID onto the node that
// terminal aTerm of component aID is bound to, implementing the editor's
// wire-completed event as a direct rebind. Returns the shared node. ok is
// false, with no mutation, when either terminal is unbound.
func (g *Graph) ConnectTerminals(aID string, aTerm int, bID string, bTerm int) (string, bool) {
	target, ok := g.bindings[binding{aID, aTerm}]
	if !ok {
		return "", false
	}
	if !g.RebindTerminal(bID, bTerm, target) {
		return "", false
	}
	return target, true
}

// TerminalNode reports the node one terminal is bound to.
func (g *Graph) TerminalNode(id string, terminal int) (string, bool) {
	node, ok := g.bindings[binding{id, terminal}]
	return node, ok
}

// RebindTerminal moves an existing terminal binding onto the named node,
// registering the node if it is new. Returns false, with no mutation, when
// the terminal is unbound.
func (g *Graph) RebindTerminal(id string, terminal int, node string) bool {
	b := binding{id, terminal}
	old, ok := g.bindings[b]
	if !ok {
		return false
	}
	if old == node {
		return true
	}

	g.nodeIndex[old] = removeBinding(g.nodeIndex[old], b)
	g.bind(b, node)
	return true
}

// Component looks up a registered component instance by ID.
func (g *Graph) Component(id string) (*component.Component, bool) {
	c, ok := g.components[id]
	return c, ok
}

// ComponentIDs returns the registered component IDs in insertion order.
// The slice is a snapshot.
func (g *Graph) ComponentIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Nodes returns every node name ever referenced, in first-seen order.
// The slice is a snapshot.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// EdgeCount reports the number of component edges.
func (g *Graph) EdgeCount() int {
	return len(g.order)
}

func (g *Graph) mintNode() string {
	name := fmt.Sprintf("%s%d", g.cfg.NodePrefix, g.nodeCounter)
	g.nodeCounter++
	return name
}

func (g *Graph) touchNode(node string) {
	if _, ok := g.nodeIndex[node]; !ok {
		g.nodeIndex[node] = nil
		g.nodeOrder = append(g.nodeOrder, node)
	}
}

func (g *Graph) bind(b binding, node string) {
	g.touchNode(node)
	g.bindings[b] = node
	g.nodeIndex[node] = append(g.nodeIndex[node], b)
}

func removeBinding(list []binding, b binding) []binding {
	for i, cur := range list {
		if cur == b {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
