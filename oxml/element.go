package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/wml/tree"
	tp "github.com/xlab/treeprint"
)

// Element is a markup element, the building block of a document tree.
//
// An Element is owned by its parent; the root of a tree has no owner.
// Removing an element from its parent detaches the whole sub-tree.
type Element struct {
	tree.Node[*Element] // we build on top of general purpose tree
	Tag                 xml.Name
	Text                string // character content, used by text-bearing elements like <w:t>
	attrs               map[xml.Name]string
}

// NewElement creates a new element without attributes or children.
func NewElement(tag xml.Name) *Element {
	e := &Element{Tag: tag}
	e.Payload = e // Payload will always reference the element itself
	return e
}

// OxmlElement creates a new element for a prefixed tag name, e.g. "w:p".
// Attributes may be given as pairs of prefixed name and value:
//
//     OxmlElement("w:jc", "w:val", "center")
//
func OxmlElement(name string, attrs ...string) *Element {
	if len(attrs)%2 != 0 {
		panic(fmt.Sprintf("oxml: odd number of attribute arguments for %s", name))
	}
	e := NewElement(Qn(name))
	for i := 0; i < len(attrs); i += 2 {
		e.SetAttr(attrs[i], attrs[i+1])
	}
	return e
}

// elementOf gets the element from a generic tree node.
func elementOf(n *tree.Node[*Element]) *Element {
	if n == nil {
		return nil
	}
	return n.Payload
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	return "<" + prefixed(e.Tag) + ">"
}

// Parent returns the parent element or nil, if e is the root of a tree or
// has been detached.
func (e *Element) Parent() *Element {
	return elementOf(e.Node.Parent())
}

// Children returns the child elements in tree order. The slice is a copy.
func (e *Element) Children() []*Element {
	nodes := e.Node.Children()
	children := make([]*Element, len(nodes))
	for i, n := range nodes {
		children[i] = n.Payload
	}
	return children
}

// Child returns the n-th child of e, or nil.
func (e *Element) Child(n int) *Element {
	ch, _ := e.Node.Child(n)
	return elementOf(ch)
}

// LastChild returns the last child of e, or nil.
func (e *Element) LastChild() *Element {
	return e.Child(e.ChildCount() - 1)
}

// Index returns the position of e among its siblings, or -1 for a root.
func (e *Element) Index() int {
	p := e.Node.Parent()
	if p == nil {
		return -1
	}
	return p.IndexOfChild(&e.Node)
}

// AppendChild appends ch as the last child of e, without consulting the schema.
func (e *Element) AppendChild(ch *Element) *Element {
	if ch != nil {
		e.Node.AddChild(&ch.Node)
	}
	return e
}

// InsertChildAt inserts ch at position i, without consulting the schema.
func (e *Element) InsertChildAt(i int, ch *Element) *Element {
	if ch != nil {
		e.Node.InsertChildAt(i, &ch.Node)
	}
	return e
}

// InsertBefore inserts sibling directly preceding e among e's siblings.
// It is a no-op if e has no parent.
func (e *Element) InsertBefore(sibling *Element) *Element {
	if sibling != nil {
		e.Node.InsertBefore(&sibling.Node)
	}
	return e
}

// RemoveChild detaches ch, together with its sub-tree, from e.
// It returns false if ch is not a child of e.
func (e *Element) RemoveChild(ch *Element) bool {
	if ch == nil || ch.Parent() != e {
		return false
	}
	ch.Node.Isolate()
	return true
}

// Detach removes e from its parent and returns it.
func (e *Element) Detach() *Element {
	e.Node.Isolate()
	return e
}

// ReplaceChild puts ch at the position of old. old is detached.
func (e *Element) ReplaceChild(old, ch *Element) bool {
	if old == nil || ch == nil {
		return false
	}
	return e.Node.ReplaceChild(&old.Node, &ch.Node)
}

// ChildrenWithTag returns all children having tag, in tree order.
func (e *Element) ChildrenWithTag(tag xml.Name) []*Element {
	var children []*Element
	for _, ch := range e.Children() {
		if ch.Tag == tag {
			children = append(children, ch)
		}
	}
	return children
}

// FirstChildWithTag returns the first child having tag, or nil.
func (e *Element) FirstChildWithTag(tag xml.Name) *Element {
	for _, ch := range e.Children() {
		if ch.Tag == tag {
			return ch
		}
	}
	return nil
}

// Descendants returns all descendants of e having tag, in document order.
// e itself is not included.
func (e *Element) Descendants(tag xml.Name) []*Element {
	hasTag := func(test, node *tree.Node[*Element]) (*tree.Node[*Element], error) {
		if test.Payload.Tag == tag {
			return test, nil
		}
		return nil, nil
	}
	nodes, err := tree.NewWalker(&e.Node).AllDescendents().Filter(hasTag).Promise()()
	if err != nil {
		tracer().Errorf("walking descendants of %s: %v", e, err)
	}
	found := make([]*Element, len(nodes))
	for i, n := range nodes {
		found[i] = n.Payload
	}
	return found
}

// Root returns the topmost ancestor of e, or e itself if it has no parent.
func (e *Element) Root() *Element {
	isRoot := func(test, node *tree.Node[*Element]) (*tree.Node[*Element], error) {
		if test.Parent() == nil {
			return test, nil
		}
		return nil, nil
	}
	nodes, _ := tree.NewWalker(&e.Node).AncestorWith(isRoot).Promise()()
	if len(nodes) == 0 {
		return e
	}
	return nodes[0].Payload
}

// --- Attributes ------------------------------------------------------------

// Attr returns the value of an attribute given by its prefixed name,
// e.g. "w:val".
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[Qn(name)]
	return v, ok
}

// SetAttr sets an attribute given by its prefixed name.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[xml.Name]string)
	}
	e.attrs[Qn(name)] = value
}

// RemoveAttr deletes an attribute given by its prefixed name.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, Qn(name))
}

// Attrs returns a copy of the attribute map.
func (e *Element) Attrs() map[xml.Name]string {
	m := make(map[xml.Name]string, len(e.attrs))
	for k, v := range e.attrs {
		m[k] = v
	}
	return m
}

// Clone returns a deep copy of e and its sub-tree. The copy has no parent.
func (e *Element) Clone() *Element {
	clones := make(map[*Element]*Element)
	copyElement := func(n, parent *tree.Node[*Element], position int) (*tree.Node[*Element], error) {
		orig := n.Payload
		c := NewElement(orig.Tag)
		c.Text = orig.Text
		if len(orig.attrs) > 0 {
			c.attrs = orig.Attrs()
		}
		clones[orig] = c
		if parent != nil {
			if pc, ok := clones[parent.Payload]; ok {
				pc.AppendChild(c) // parents are visited first, children in order
			}
		}
		return nil, nil
	}
	if _, err := tree.NewWalker(&e.Node).TopDown(copyElement).Promise()(); err != nil {
		tracer().Errorf("cloning %s: %v", e, err)
	}
	return clones[e]
}

// --- Debugging -------------------------------------------------------------

// Dump returns an indented outline of the sub-tree rooted at e, listing
// tags and attributes.
func Dump(e *Element) string {
	p := tp.New()
	dumpElement(p, e)
	return p.String()
}

func dumpElement(p tp.Tree, e *Element) {
	if e == nil {
		return
	}
	label := prefixed(e.Tag) + attrString(e)
	if e.Text != "" {
		label += fmt.Sprintf(" %q", e.Text)
	}
	if e.ChildCount() == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range e.Children() {
		dumpElement(branch, ch)
	}
}

func attrString(e *Element) string {
	if len(e.attrs) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(e.attrs))
	for k, v := range e.attrs {
		pairs = append(pairs, fmt.Sprintf("%s=%q", prefixed(k), v))
	}
	sort.Strings(pairs)
	return " " + strings.Join(pairs, " ")
}
