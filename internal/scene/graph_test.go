package scene

import "testing"

func TestGraphFind(t *testing.T) {
	g := NewGraph()
	n := g.NewNode("root")

	if got := g.Find(n.ID()); got != n {
		t.Errorf("Find(%d) = %v, want the created node", n.ID(), got)
	}
	if got := g.Find(9999); got != nil {
		t.Errorf("Find(9999) = %v, want nil", got)
	}
}

func TestGraphDestroy(t *testing.T) {
	g := NewGraph()
	parent := g.NewNode("parent")
	child := g.NewChildNode("child", parent)

	g.Destroy(parent)

	if parent.Alive() {
		t.Error("expected parent to be destroyed")
	}
	if child.Alive() {
		t.Error("expected child to be destroyed with its parent")
	}
	if g.Find(parent.ID()) != nil {
		t.Error("expected Find to return nil for destroyed node")
	}

	// Destroying twice must not panic.
	g.Destroy(parent)
}

func TestGraphIDsAreUnique(t *testing.T) {
	g := NewGraph()
	a := g.NewNode("a")
	g.Destroy(a)
	b := g.NewNode("b")

	if a.ID() == b.ID() {
		t.Errorf("expected fresh id after destroy, got %d twice", a.ID())
	}
}

func TestHierarchyNotifications(t *testing.T) {
	g := NewGraph()
	var calls int
	g.OnHierarchyChanged(func() { calls++ })

	a := g.NewNode("a")
	b := g.NewNode("b")
	b.SetParent(a)
	g.Destroy(b)

	if calls != 4 {
		t.Errorf("expected 4 hierarchy notifications, got %d", calls)
	}
}

func TestComponentLookup(t *testing.T) {
	g := NewGraph()
	n := g.NewNode("n")
	mf := &MeshFilter{}
	n.AddComponent(mf)

	got, ok := Component[*MeshFilter](n)
	if !ok || got != mf {
		t.Errorf("Component[*MeshFilter] = %v, %v; want %v, true", got, ok, mf)
	}

	if _, ok := Component[*MeshRenderer](n); ok {
		t.Error("expected no MeshRenderer on node")
	}

	n.RemoveComponent(mf)
	if _, ok := Component[*MeshFilter](n); ok {
		t.Error("expected MeshFilter lookup to fail after removal")
	}
}

func TestComponentInChildren(t *testing.T) {
	g := NewGraph()
	root := g.NewNode("root")
	mid := g.NewChildNode("mid", root)
	leaf := g.NewChildNode("leaf", mid)

	mf := &MeshFilter{}
	leaf.AddComponent(mf)

	got, ok := ComponentInChildren[*MeshFilter](root)
	if !ok || got != mf {
		t.Errorf("ComponentInChildren = %v, %v; want component on grandchild", got, ok)
	}

	if _, ok := ComponentInChildren[*MeshRenderer](root); ok {
		t.Error("expected no MeshRenderer anywhere in subtree")
	}
}
