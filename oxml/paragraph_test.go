package oxml

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParagraphPPrIsFirst(t *testing.T) {
	p := NewP()
	p.AddR()
	p.AddBookmarkStart("b", 1)
	p.AddR()
	p.GetOrAddPPr()
	assertTags(t, p.Element, "w:pPr w:r w:bookmarkStart w:r")
}

func TestParagraphAddPBefore(t *testing.T) {
	body := NewDocument().GetOrAddBody()
	p1 := body.AddP()
	p2 := body.AddP()
	p2.AddR().AddT("second")
	np := p2.AddPBefore()
	ps := body.Ps()
	if len(ps) != 3 || ps[0].Element != p1.Element || ps[1].Element != np.Element || ps[2].Element != p2.Element {
		t.Errorf("expected new paragraph between p1 and p2, tree =\n%s", Dump(body.Element))
	}
	if np.ChildCount() != 0 {
		t.Errorf("expected new paragraph to be empty")
	}
	//
	detached := NewP()
	if q := detached.AddPBefore(); q.Parent() != nil {
		t.Errorf("expected paragraph before a detached one to stay detached")
	}
}

func TestParagraphClearContent(t *testing.T) {
	p := NewP()
	p.SetStyle("Heading1")
	p.AddR().AddT("text")
	p.AddBookmarkStart("b", 3)
	p.AddBookmarkEnd(3)
	p.ClearContent()
	assertTags(t, p.Element, "w:pPr")
	if p.Style() != "Heading1" {
		t.Errorf("expected paragraph style to survive clearing")
	}
	bare := NewP()
	bare.AddR()
	bare.ClearContent()
	if bare.ChildCount() != 0 {
		t.Errorf("expected empty paragraph")
	}
}

func TestParagraphSetSectPr(t *testing.T) {
	p := NewP()
	pPr := p.GetOrAddPPr()
	pPr.GetOrAdd(Qn("w:rPr"))
	pPr.AppendChild(OxmlElement("w:pPrChange")) // tracked change, must stay last
	s1 := NewSectPr()
	p.SetSectPr(s1)
	assertTags(t, pPr.Element, "w:rPr w:sectPr w:pPrChange")
	s2 := NewSectPr()
	s2.SetStartType(StartContinuous)
	p.SetSectPr(s2)
	assertTags(t, pPr.Element, "w:rPr w:sectPr w:pPrChange")
	if p.SectPr().Element != s2.Element {
		t.Errorf("expected second sectPr to replace the first")
	}
	if s1.Parent() != nil {
		t.Errorf("expected replaced sectPr to be detached")
	}
	pPr.SetJcVal("center")
	assertTags(t, pPr.Element, "w:jc w:rPr w:sectPr w:pPrChange")
}

func TestParagraphAlignmentAndStyle(t *testing.T) {
	p := NewP()
	if p.Alignment() != "" || p.Style() != "" {
		t.Errorf("expected no alignment and no style on a fresh paragraph")
	}
	if p.PPr() != nil {
		t.Errorf("expected getters not to create <w:pPr>")
	}
	p.SetAlignment("right")
	p.SetStyle("Quote")
	if p.Alignment() != "right" || p.Style() != "Quote" {
		t.Errorf("expected right/Quote, have %q/%q", p.Alignment(), p.Style())
	}
	assertTags(t, p.PPr().Element, "w:pStyle w:jc")
	p.SetAlignment("")
	p.SetStyle("")
	if p.PPr().ChildCount() != 0 {
		t.Errorf("expected empty values to remove <w:jc> and <w:pStyle>")
	}
}

func TestParagraphText(t *testing.T) {
	p := NewP()
	p.AddR().AddText("a\tb\nc")
	p.AddR().AddT(" d ")
	if p.Text() != "a\tb\nc d " {
		t.Errorf("unexpected paragraph text %q", p.Text())
	}
	ts := p.Rs()[1].List(TagT)
	if v, _ := ts[0].Attr("xml:space"); v != "preserve" {
		t.Errorf("expected white space to be preserved")
	}
}

func TestParagraphPropertiesBeforeRevisionMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wml.oxml")
	defer teardown()
	//
	p := NewP()
	pPr := p.GetOrAddPPr()
	pPr.AppendChild(OxmlElement("w:pPrChange"))
	p.SetAlignment("center")
	p.SetStyle("Heading1")
	p.SetSectPr(NewSectPr())
	pPr.GetOrAdd(Qn("w:spacing"))
	assertTags(t, pPr.Element, "w:pStyle w:spacing w:jc w:sectPr w:pPrChange")
	if pPr.Get(Qn("w:pPrChange")) == nil {
		t.Errorf("expected revision marker to be found by the engine")
	}
}

func TestParagraphEmptyValuesDoNotCreatePPr(t *testing.T) {
	p := NewP()
	p.SetAlignment("")
	p.SetStyle("")
	if p.PPr() != nil {
		t.Errorf("expected clearing alignment and style not to create <w:pPr>")
	}
	assertTags(t, p.Element, "")
}

func TestParagraphSetSectPrNil(t *testing.T) {
	p := NewP()
	p.SetSectPr(nil)
	if p.PPr() != nil {
		t.Errorf("expected nil section properties not to create <w:pPr>")
	}
	p.SetStyle("Normal")
	p.SetSectPr(NewSectPr())
	assertTags(t, p.PPr().Element, "w:pStyle w:sectPr")
	p.SetSectPr(nil)
	if p.SectPr() != nil {
		t.Errorf("expected nil to remove the section break")
	}
	assertTags(t, p.PPr().Element, "w:pStyle")
}
