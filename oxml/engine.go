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
)

// schema returns the schema declared for e's tag or panics with a
// configuration error.
func (e *Element) schema() *Schema {
	s, ok := schemas[e.Tag]
	if !ok {
		configError(fmt.Errorf("%w: no schema for parent %s", ErrUndeclaredChild, prefixed(e.Tag)))
	}
	return s
}

// Get returns the child with tag if tag is declared zero-or-one and such a
// child is present. For zero-or-more tags, Get returns nil; use List instead.
func (e *Element) Get(tag xml.Name) *Element {
	if r := e.schema().mustRule(tag); r.Cardinality != ZeroOrOne {
		return nil
	}
	return e.FirstChildWithTag(tag)
}

// List returns all children with tag, in tree order.
func (e *Element) List(tag xml.Name) []*Element {
	e.schema().mustRule(tag)
	return e.ChildrenWithTag(tag)
}

// GetOrAdd returns the existing zero-or-one child with tag, or creates one
// and inserts it at its schema position. For zero-or-more tags, the first
// existing child is returned if there is one.
func (e *Element) GetOrAdd(tag xml.Name) *Element {
	e.schema().mustRule(tag)
	if ch := e.FirstChildWithTag(tag); ch != nil {
		return ch
	}
	return e.Add(tag)
}

// Add creates a new child with tag and inserts it at its schema position.
// Instances of zero-or-more tags are appended after existing instances of
// the same slot, in call order.
//
// For zero-or-one tags, it is the caller's responsibility to make sure no
// such child exists yet.
func (e *Element) Add(tag xml.Name) *Element {
	return e.Insert(NewElement(tag))
}

// Insert places child, which may be newly created or detached from elsewhere,
// at its schema position under e.
func (e *Element) Insert(child *Element) *Element {
	s := e.schema()
	r := s.mustRule(child.Tag)
	child.Detach()
	i := s.insertionIndex(e, r)
	tracer().Debugf("insert %s under %s at position %d", child, e, i)
	e.InsertChildAt(i, child)
	return child
}

// Remove detaches all children with tag.
func (e *Element) Remove(tag xml.Name) {
	e.schema().mustRule(tag)
	for _, ch := range e.ChildrenWithTag(tag) {
		e.RemoveChild(ch)
	}
}

// Replace swaps child old for ch, keeping the position of old. It returns
// false if old is not a child of e.
func (e *Element) Replace(old, ch *Element) bool {
	e.schema().mustRule(ch.Tag)
	return e.ReplaceChild(old, ch)
}
