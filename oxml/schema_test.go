package oxml

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// A schema for unprefixed test tags:
//
//   <first>? (<a>|<b>)* <mid>? <tail>? <last>?
//
// <a> and <b> have <last> as successor, <tail> has the undeclared <trailer>.
func init() {
	Declare("testparent",
		Optional("first"),
		Choice(
			Repeatable("a", "last"),
			Repeatable("b", "last"),
		),
		Optional("mid"),
		Optional("tail", "trailer"),
		Optional("last"),
	)
}

var (
	tagFirst   = Qn("first")
	tagA       = Qn("a")
	tagB       = Qn("b")
	tagMid     = Qn("mid")
	tagTail    = Qn("tail")
	tagLast    = Qn("last")
	tagTrailer = Qn("trailer")
)

func TestSchemaRules(t *testing.T) {
	s, ok := SchemaFor(Qn("testparent"))
	if !ok {
		t.Fatal("expected test schema to be declared")
	}
	if len(s.Rules()) != 6 {
		t.Errorf("expected 6 rules, have %d", len(s.Rules()))
	}
	r, _ := s.Rule(tagA)
	if r.Cardinality != ZeroOrMore || !r.HasSuccessor(tagLast) {
		t.Errorf("unexpected rule for <a>: %v %v", r.Cardinality, r.Successors())
	}
	if _, ok := s.Rule(tagTrailer); ok {
		t.Errorf("did not expect a rule for <trailer>")
	}
}

func TestEngineRepeatedInsertsKeepCallOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wml.oxml")
	defer teardown()
	//
	parent := NewElement(Qn("testparent"))
	parent.GetOrAdd(tagLast)
	parent.Add(tagA).SetAttr("n", "1")
	parent.Add(tagB)
	parent.Add(tagA).SetAttr("n", "2")
	assertTags(t, parent, "a b a last")
	parent.Add(tagFirst)
	parent.Add(tagMid)
	assertTags(t, parent, "first a b a mid last")
	parent.Add(tagA).SetAttr("n", "3")
	assertTags(t, parent, "first a b a a mid last")
	var ns []string
	for _, a := range parent.List(tagA) {
		n, _ := a.Attr("n")
		ns = append(ns, n)
	}
	if strings.Join(ns, "") != "123" {
		t.Errorf("expected <a> elements in call order 1,2,3, have %v", ns)
	}
	t.Logf("tree =\n%s", Dump(parent))
}

func TestEngineZeroOrOneBeforeExistingSuccessors(t *testing.T) {
	parent := NewElement(Qn("testparent"))
	parent.AppendChild(NewElement(tagTrailer)) // undeclared, but successor of <tail>
	parent.Add(tagTail)
	assertTags(t, parent, "tail trailer")
	parent.Add(tagLast) // <trailer> is no successor of <last>
	assertTags(t, parent, "tail trailer last")
}

func TestEngineUnknownChildrenDoNotBlock(t *testing.T) {
	parent := NewElement(Qn("testparent"))
	parent.AppendChild(NewElement(Qn("unknown")))
	parent.Add(tagA)
	assertTags(t, parent, "unknown a")
}

func TestEngineGetOrAddIsIdempotent(t *testing.T) {
	parent := NewElement(Qn("testparent"))
	m1 := parent.GetOrAdd(tagMid)
	m2 := parent.GetOrAdd(tagMid)
	if m1 != m2 {
		t.Errorf("expected GetOrAdd to return the same element twice")
	}
	if parent.ChildCount() != 1 {
		t.Errorf("expected a single child, have %d", parent.ChildCount())
	}
	if parent.Get(tagMid) != m1 {
		t.Errorf("expected Get to find the element")
	}
}

func TestEngineGetOnRepeatableIsNil(t *testing.T) {
	parent := NewElement(Qn("testparent"))
	parent.Add(tagA)
	if parent.Get(tagA) != nil {
		t.Errorf("expected Get of zero-or-more tag to return nil")
	}
	if parent.Get(tagMid) != nil {
		t.Errorf("expected Get of absent tag to return nil")
	}
}

func TestEngineRemoveAndReplace(t *testing.T) {
	parent := NewElement(Qn("testparent"))
	parent.Add(tagA)
	b := parent.Add(tagB)
	parent.Add(tagA)
	parent.Add(tagLast)
	parent.Remove(tagA)
	assertTags(t, parent, "b last")
	mid := NewElement(tagMid)
	if !parent.Replace(b, mid) {
		t.Fatal("expected replace to succeed")
	}
	assertTags(t, parent, "mid last")
	if b.Parent() != nil {
		t.Errorf("expected replaced element to be detached")
	}
}

func TestEngineInsertMovesElement(t *testing.T) {
	p1 := NewElement(Qn("testparent"))
	p2 := NewElement(Qn("testparent"))
	p2.Add(tagLast)
	a := p1.Add(tagA)
	p2.Insert(a)
	if p1.ChildCount() != 0 {
		t.Errorf("expected element to be moved out of its former parent")
	}
	assertTags(t, p2, "a last")
}

func TestEngineUndeclaredChildPanics(t *testing.T) {
	parent := NewElement(Qn("testparent"))
	err := capturePanic(func() { parent.Add(Qn("bogus")) })
	if !errors.Is(err, ErrUndeclaredChild) {
		t.Errorf("expected ErrUndeclaredChild, got %v", err)
	}
	noschema := NewElement(Qn("noschema"))
	err = capturePanic(func() { noschema.GetOrAdd(tagA) })
	if !errors.Is(err, ErrUndeclaredChild) {
		t.Errorf("expected ErrUndeclaredChild for parent without schema, got %v", err)
	}
}

func TestDeclareTwicePanics(t *testing.T) {
	err := capturePanic(func() { Declare("testparent", Optional("x")) })
	if !errors.Is(err, ErrSchemaDeclaration) {
		t.Errorf("expected ErrSchemaDeclaration, got %v", err)
	}
	err = capturePanic(func() { Declare("dupchildren", Optional("x"), Repeatable("x")) })
	if !errors.Is(err, ErrSchemaDeclaration) {
		t.Errorf("expected ErrSchemaDeclaration for duplicate child, got %v", err)
	}
}

// ---------------------------------------------------------------------------

func tags(e *Element) string {
	var s []string
	for _, ch := range e.Children() {
		s = append(s, prefixed(ch.Tag))
	}
	return strings.Join(s, " ")
}

func assertTags(t *testing.T, e *Element, expected string) {
	t.Helper()
	if got := tags(e); got != expected {
		t.Errorf("expected children [%s], have [%s]", expected, got)
		t.Logf("tree is\n%s", Dump(e))
	}
}

func capturePanic(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}
