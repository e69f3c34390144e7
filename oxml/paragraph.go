package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// P wraps <w:p>, containing the properties and text of a paragraph.
type P struct {
	*Element
}

// NewP creates a new, empty paragraph element.
func NewP() *P {
	return &P{NewElement(TagP)}
}

func asP(e *Element) *P {
	if e == nil {
		return nil
	}
	return &P{e}
}

// AsP wraps e, if e is a <w:p> element. Otherwise it returns nil.
func AsP(e *Element) *P {
	if e == nil || e.Tag != TagP {
		return nil
	}
	return &P{e}
}

// PPr returns the paragraph properties or nil.
func (p *P) PPr() *PPr {
	return asPPr(p.Get(TagPPr))
}

// GetOrAddPPr returns the paragraph properties, creating them if necessary.
// <w:pPr> is always the first child of a paragraph.
func (p *P) GetOrAddPPr() *PPr {
	return asPPr(p.GetOrAdd(TagPPr))
}

// AddR appends a new run.
func (p *P) AddR() *R {
	return asR(p.Add(TagR))
}

// Rs returns the runs of the paragraph.
func (p *P) Rs() []*R {
	elems := p.List(TagR)
	rs := make([]*R, len(elems))
	for i, e := range elems {
		rs[i] = asR(e)
	}
	return rs
}

// AddBookmarkStart appends a <w:bookmarkStart> to the paragraph.
// It is the caller's responsibility that both name and id are unique
// document-wide.
func (p *P) AddBookmarkStart(name string, id int) *BookmarkStart {
	bs := asBookmarkStart(p.Add(TagBookmarkStart))
	bs.SetName(name)
	bs.SetID(id)
	return bs
}

// AddBookmarkEnd appends a <w:bookmarkEnd> to the paragraph.
func (p *P) AddBookmarkEnd(id int) *BookmarkEnd {
	be := asBookmarkEnd(p.Add(TagBookmarkEnd))
	be.SetID(id)
	return be
}

// AddPBefore creates a new, empty paragraph and inserts it directly in front
// of p. If p has no parent, the new paragraph stays detached.
func (p *P) AddPBefore() *P {
	np := NewP()
	p.InsertBefore(np.Element)
	return np
}

// Alignment returns the value of <w:pPr><w:jc w:val=…>, or "" if not present.
func (p *P) Alignment() string {
	pPr := p.PPr()
	if pPr == nil {
		return ""
	}
	return pPr.JcVal()
}

// SetAlignment sets <w:pPr><w:jc w:val=…>. An empty value removes <w:jc>.
func (p *P) SetAlignment(val string) {
	if val == "" && p.PPr() == nil {
		return
	}
	p.GetOrAddPPr().SetJcVal(val)
}

// Style returns the style id of <w:pPr><w:pStyle w:val=…>, or "" if not present.
func (p *P) Style() string {
	pPr := p.PPr()
	if pPr == nil {
		return ""
	}
	return pPr.Style()
}

// SetStyle sets the paragraph style id. An empty id removes <w:pStyle>.
func (p *P) SetStyle(styleID string) {
	if styleID == "" && p.PPr() == nil {
		return
	}
	p.GetOrAddPPr().SetStyle(styleID)
}

// ClearContent removes all children except <w:pPr>.
func (p *P) ClearContent() {
	for _, ch := range p.Children() {
		if ch.Tag == TagPPr {
			continue
		}
		p.RemoveChild(ch)
	}
}

// SectPr returns the <w:pPr><w:sectPr> grandchild, or nil.
func (p *P) SectPr() *SectPr {
	pPr := p.PPr()
	if pPr == nil {
		return nil
	}
	return pPr.SectPr()
}

// SetSectPr unconditionally replaces or adds sectPr as the <w:sectPr>
// grandchild of the paragraph, in its slot near the end of <w:pPr>.
// A nil sectPr removes the section break from the paragraph.
func (p *P) SetSectPr(sectPr *SectPr) {
	if sectPr == nil || sectPr.Element == nil {
		if pPr := p.PPr(); pPr != nil {
			pPr.Remove(TagSectPr)
		}
		return
	}
	pPr := p.GetOrAddPPr()
	pPr.Remove(TagSectPr)
	pPr.Insert(sectPr.Element)
}

// Text returns the concatenated text of all runs.
func (p *P) Text() string {
	var b strings.Builder
	for _, r := range p.Rs() {
		b.WriteString(r.Text())
	}
	return b.String()
}

// --- Paragraph properties --------------------------------------------------

// PPr wraps <w:pPr>, the paragraph properties.
type PPr struct {
	*Element
}

func asPPr(e *Element) *PPr {
	if e == nil {
		return nil
	}
	return &PPr{e}
}

// Style returns the value of <w:pStyle w:val=…>, or "".
func (pPr *PPr) Style() string {
	return valOf(pPr.Get(TagPStyle))
}

// SetStyle sets <w:pStyle w:val=…>. An empty id removes <w:pStyle>.
func (pPr *PPr) SetStyle(styleID string) {
	setValOf(pPr.Element, TagPStyle, styleID)
}

// JcVal returns the value of <w:jc w:val=…>, or "".
func (pPr *PPr) JcVal() string {
	return valOf(pPr.Get(TagJc))
}

// SetJcVal sets <w:jc w:val=…>. An empty value removes <w:jc>.
func (pPr *PPr) SetJcVal(val string) {
	setValOf(pPr.Element, TagJc, val)
}

// SectPr returns the <w:sectPr> child, or nil.
func (pPr *PPr) SectPr() *SectPr {
	return asSectPr(pPr.Get(TagSectPr))
}
