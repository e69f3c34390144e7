package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeAddAndIsolate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wml.tree")
	defer teardown()
	//
	root, a, b, c := NewNode("root"), NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(b).AddChild(c)
	if root.ChildCount() != 3 {
		t.Fatalf("expected root to have 3 children, has %d", root.ChildCount())
	}
	b.Isolate()
	if root.ChildCount() != 2 {
		t.Errorf("expected isolated child to be removed from slice, count is %d", root.ChildCount())
	}
	if b.Parent() != nil {
		t.Errorf("expected isolated node to have no parent, has %v", b.Parent())
	}
	if ch, _ := root.Child(1); ch != c {
		t.Errorf("expected c to move up to position 1, is %v", ch)
	}
	if root.IndexOfChild(b) != -1 {
		t.Errorf("expected index of isolated node to be -1")
	}
}

func TestNodeInsertChildAt(t *testing.T) {
	root, a, b, c := NewNode("root"), NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(c)
	root.InsertChildAt(1, b)
	assertPayloads(t, root, "a", "b", "c")
	d := NewNode("d")
	root.InsertChildAt(99, d)
	assertPayloads(t, root, "a", "b", "c", "d")
}

func TestNodeInsertBefore(t *testing.T) {
	root, a, b := NewNode("root"), NewNode("a"), NewNode("b")
	root.AddChild(a).AddChild(b)
	x := NewNode("x")
	b.InsertBefore(x)
	assertPayloads(t, root, "a", "x", "b")
	if x.Parent() != root {
		t.Errorf("expected inserted sibling to have root as parent")
	}
	// moving an existing sibling
	a.InsertBefore(b)
	assertPayloads(t, root, "b", "a", "x")
	// root nodes have no siblings
	y := NewNode("y")
	root.InsertBefore(y)
	if y.Parent() != nil {
		t.Errorf("expected insert before root to be a no-op")
	}
}

func TestNodeReplaceChild(t *testing.T) {
	root, a, b, c := NewNode("root"), NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(b)
	if !root.ReplaceChild(a, c) {
		t.Fatalf("expected replace to succeed")
	}
	assertPayloads(t, root, "c", "b")
	if a.Parent() != nil {
		t.Errorf("expected replaced node to be isolated")
	}
	if root.ReplaceChild(a, NewNode("z")) {
		t.Errorf("expected replace of non-child to fail")
	}
}

func TestNodeReparent(t *testing.T) {
	r1, r2, a := NewNode("r1"), NewNode("r2"), NewNode("a")
	r1.AddChild(a)
	r2.AddChild(a)
	if r1.ChildCount() != 0 || r2.ChildCount() != 1 {
		t.Errorf("expected a to move from r1 to r2, counts are %d/%d", r1.ChildCount(), r2.ChildCount())
	}
	if a.Parent() != r2 {
		t.Errorf("expected parent of a to be r2")
	}
}

// ---------------------------------------------------------------------------

func assertPayloads(t *testing.T, node *Node[string], payloads ...string) {
	t.Helper()
	children := node.Children()
	if len(children) != len(payloads) {
		t.Fatalf("expected %d children, have %d", len(payloads), len(children))
	}
	for i, ch := range children {
		if ch.Payload != payloads[i] {
			t.Errorf("expected child #%d to be %q, is %q", i, payloads[i], ch.Payload)
		}
	}
}
