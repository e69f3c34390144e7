package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrUndeclaredChild is a configuration error: a child tag is requested for a
// parent which has no schema, or whose schema does not declare the tag.
var ErrUndeclaredChild = errors.New("child element not declared in schema of parent")

// ErrSchemaDeclaration is a configuration error: a schema is declared twice, or
// declares a child tag more than once.
var ErrSchemaDeclaration = errors.New("invalid schema declaration")

// Cardinality tells how often a child type may appear under a parent.
type Cardinality int8

// Cardinalities of schema rules.
const (
	ZeroOrOne Cardinality = iota
	ZeroOrMore
)

func (c Cardinality) String() string {
	switch c {
	case ZeroOrOne:
		return "zero-or-one"
	case ZeroOrMore:
		return "zero-or-more"
	}
	return fmt.Sprintf("Cardinality(%d)", int8(c))
}

// Rule describes a child type recognized under a parent tag.
//
// Successors are tags which have to stay behind any newly inserted instance of
// the rule's tag. They may name tags which are not declared by the schema.
type Rule struct {
	Tag         xml.Name
	Cardinality Cardinality
	successors  []xml.Name
	position    int // slot in the schema; rules of a choice share a slot
}

// Successors returns the successor tags of r.
func (r Rule) Successors() []xml.Name {
	return append([]xml.Name(nil), r.successors...)
}

// HasSuccessor is true if tag is in the successor set of r.
func (r Rule) HasSuccessor(tag xml.Name) bool {
	for _, s := range r.successors {
		if s == tag {
			return true
		}
	}
	return false
}

// Slot is a position in the child sequence of a schema. A slot holds a single
// rule, or several rules if it has been created by Choice.
type Slot []Rule

// Optional declares a zero-or-one child in a slot of its own.
// Tags are given in prefixed form, e.g. "w:pPr".
func Optional(tag string, successors ...string) Slot {
	return Slot{newRule(tag, ZeroOrOne, successors)}
}

// Repeatable declares a zero-or-more child in a slot of its own.
func Repeatable(tag string, successors ...string) Slot {
	return Slot{newRule(tag, ZeroOrMore, successors)}
}

// Choice merges slots into a single one. Children of the rules in a choice may
// be freely interleaved; insertion of one of them never passes another one.
func Choice(slots ...Slot) Slot {
	var merged Slot
	for _, s := range slots {
		merged = append(merged, s...)
	}
	return merged
}

func newRule(tag string, card Cardinality, successors []string) Rule {
	r := Rule{Tag: Qn(tag), Cardinality: card}
	for _, s := range successors {
		r.successors = append(r.successors, Qn(s))
	}
	return r
}

// Schema is the table of child rules for a parent tag. A schema is immutable
// once declared.
type Schema struct {
	Parent xml.Name
	rules  []Rule
	index  map[xml.Name]int // tag -> index into rules
}

// schemas holds all declared schemas. It is populated during package
// initialization and read-only afterwards.
var schemas = make(map[xml.Name]*Schema)

// Declare registers the schema for a parent tag. The order of the slots is the
// relative order of the recognized child types.
//
// Declaring a parent twice, or a child tag twice for the same parent, is a
// configuration error and panics. Declare is meant to be called from init
// functions.
func Declare(parent string, slots ...Slot) *Schema {
	s := &Schema{
		Parent: Qn(parent),
		index:  make(map[xml.Name]int),
	}
	if _, exists := schemas[s.Parent]; exists {
		configError(fmt.Errorf("%w: schema for %s declared twice", ErrSchemaDeclaration, parent))
	}
	for pos, slot := range slots {
		for _, r := range slot {
			if _, dup := s.index[r.Tag]; dup {
				configError(fmt.Errorf("%w: %s declares child %s twice", ErrSchemaDeclaration,
					parent, prefixed(r.Tag)))
			}
			r.position = pos
			s.index[r.Tag] = len(s.rules)
			s.rules = append(s.rules, r)
		}
	}
	schemas[s.Parent] = s
	tracer().Debugf("declared schema for %s with %d child rules", parent, len(s.rules))
	return s
}

// SchemaFor returns the schema declared for a parent tag.
func SchemaFor(parent xml.Name) (*Schema, bool) {
	s, ok := schemas[parent]
	return s, ok
}

// Rule returns the rule for a child tag.
func (s *Schema) Rule(tag xml.Name) (Rule, bool) {
	i, ok := s.index[tag]
	if !ok {
		return Rule{}, false
	}
	return s.rules[i], true
}

// Rules returns all rules in declaration order.
func (s *Schema) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// mustRule returns the rule for a child tag or panics with a configuration
// error.
func (s *Schema) mustRule(tag xml.Name) Rule {
	r, ok := s.Rule(tag)
	if !ok {
		configError(fmt.Errorf("%w: %s under %s", ErrUndeclaredChild, prefixed(tag), prefixed(s.Parent)))
	}
	return r
}

// insertionIndex computes the position for a new child of rule r under parent.
// The child goes in front of the first existing child which either has a rule
// in a later slot, or is a successor of r. Children with unrecognized tags do
// not block. If nothing blocks, the child is appended.
func (s *Schema) insertionIndex(parent *Element, r Rule) int {
	for i, ch := range parent.Children() {
		if r.HasSuccessor(ch.Tag) {
			return i
		}
		if j, ok := s.index[ch.Tag]; ok && s.rules[j].position > r.position {
			return i
		}
	}
	return parent.ChildCount()
}

func configError(err error) {
	tracer().Errorf(err.Error())
	panic(err)
}
