// Package scene provides the in-memory scene graph the sculpting core edits
// against: nodes with stable identifiers, attachable components, meshes with
// channel-wise geometry, undo recording, and asset identity.
package scene

// Node is a scene object with a stable identifier and attached components.
type Node struct {
	id         int64
	name       string
	parent     *Node
	children   []*Node
	components []any
	graph      *Graph
	destroyed  bool
}

// ID returns the node's stable identifier, unique within its graph.
func (n *Node) ID() int64 {
	return n.id
}

// Name returns the node's display name.
func (n *Node) Name() string {
	return n.name
}

// Alive reports whether the node has not been destroyed.
func (n *Node) Alive() bool {
	return n != nil && !n.destroyed
}

// Parent returns the node's parent, or nil for a root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's direct children.
func (n *Node) Children() []*Node {
	return n.children
}

// AddComponent attaches a component to the node.
func (n *Node) AddComponent(c any) {
	n.components = append(n.components, c)
}

// RemoveComponent detaches a component from the node. Unknown components are
// ignored.
func (n *Node) RemoveComponent(c any) {
	for i, existing := range n.components {
		if existing == c {
			n.components = append(n.components[:i], n.components[i+1:]...)
			return
		}
	}
}

// Components returns all components attached to the node.
func (n *Node) Components() []any {
	return n.components
}

// Component returns the first component of type T attached to the node.
func Component[T any](n *Node) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	for _, c := range n.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	return zero, false
}

// ComponentInChildren returns the first component of type T on the node or,
// failing that, on a descendant (depth-first).
func ComponentInChildren[T any](n *Node) (T, bool) {
	if t, ok := Component[T](n); ok {
		return t, true
	}
	for _, child := range n.children {
		if t, ok := ComponentInChildren[T](child); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Graph owns a set of nodes and resolves stable identifiers to live nodes.
type Graph struct {
	nextID    int64
	nodes     map[int64]*Node
	listeners []func()
}

// NewGraph creates an empty scene graph.
func NewGraph() *Graph {
	return &Graph{
		nextID: 1,
		nodes:  make(map[int64]*Node),
	}
}

// NewNode creates a root-level node and notifies hierarchy listeners.
func (g *Graph) NewNode(name string) *Node {
	n := &Node{
		id:    g.nextID,
		name:  name,
		graph: g,
	}
	g.nextID++
	g.nodes[n.id] = n
	g.notify()
	return n
}

// NewChildNode creates a node parented under the given node.
func (g *Graph) NewChildNode(name string, parent *Node) *Node {
	n := g.NewNode(name)
	n.SetParent(parent)
	return n
}

// Find resolves a stable identifier to a live node, or nil if the node never
// existed or has been destroyed.
func (g *Graph) Find(id int64) *Node {
	n, ok := g.nodes[id]
	if !ok || n.destroyed {
		return nil
	}
	return n
}

// Destroy removes a node (and its subtree) from the graph and notifies
// hierarchy listeners. Destroying an already-destroyed node is a no-op.
func (g *Graph) Destroy(n *Node) {
	if n == nil || n.destroyed {
		return
	}
	for _, child := range n.children {
		g.Destroy(child)
	}
	if n.parent != nil {
		n.parent.removeChild(n)
		n.parent = nil
	}
	n.destroyed = true
	delete(g.nodes, n.id)
	g.notify()
}

// OnHierarchyChanged registers a listener invoked after any node creation,
// destruction, or reparenting.
func (g *Graph) OnHierarchyChanged(fn func()) {
	g.listeners = append(g.listeners, fn)
}

// NotifyHierarchyChanged invokes all hierarchy listeners. Exposed so hosts can
// signal changes made outside the graph API (duplication, template instancing).
func (g *Graph) NotifyHierarchyChanged() {
	g.notify()
}

func (g *Graph) notify() {
	for _, fn := range g.listeners {
		fn()
	}
}

// SetParent reparents the node and notifies hierarchy listeners.
func (n *Node) SetParent(parent *Node) {
	if n.parent == parent {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.parent = parent
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	if n.graph != nil {
		n.graph.notify()
	}
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
