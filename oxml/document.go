package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Document wraps the <w:document> element, the root element of the main
// document story.
type Document struct {
	*Element
}

// NewDocument creates an empty <w:document> element.
func NewDocument() *Document {
	return &Document{NewElement(TagDocument)}
}

// AsDocument wraps e, if e is a <w:document> element. Otherwise it returns nil.
func AsDocument(e *Element) *Document {
	if e == nil || e.Tag != TagDocument {
		return nil
	}
	return &Document{e}
}

// Body returns the <w:body> child or nil.
func (d *Document) Body() *Body {
	return asBody(d.Get(TagBody))
}

// GetOrAddBody returns the <w:body> child, creating it if necessary.
func (d *Document) GetOrAddBody() *Body {
	return asBody(d.GetOrAdd(TagBody))
}

// SectPrList returns every <w:sectPr> element of the document in document
// order. There is one for each section; the last one is the body's sentinel.
func (d *Document) SectPrList() []*SectPr {
	elems := d.Descendants(TagSectPr)
	list := make([]*SectPr, len(elems))
	for i, e := range elems {
		list[i] = asSectPr(e)
	}
	return list
}

// --- Body ------------------------------------------------------------------

// Body wraps <w:body>, the container element for the main document story.
type Body struct {
	*Element
}

func asBody(e *Element) *Body {
	if e == nil {
		return nil
	}
	return &Body{e}
}

// AddP appends a new paragraph as the last content element of the body,
// in front of the sentinel <w:sectPr>.
func (b *Body) AddP() *P {
	return asP(b.Add(TagP))
}

// AddTbl appends a new table as the last content element of the body.
func (b *Body) AddTbl() *Tbl {
	return asTbl(b.Add(TagTbl))
}

// Ps returns all paragraphs which are direct children of the body.
func (b *Body) Ps() []*P {
	elems := b.List(TagP)
	ps := make([]*P, len(elems))
	for i, e := range elems {
		ps[i] = asP(e)
	}
	return ps
}

// SectPr returns the sentinel <w:sectPr> of the body, or nil.
func (b *Body) SectPr() *SectPr {
	return asSectPr(b.Get(TagSectPr))
}

// GetOrAddSectPr returns the sentinel <w:sectPr>, creating it if necessary.
func (b *Body) GetOrAddSectPr() *SectPr {
	return asSectPr(b.GetOrAdd(TagSectPr))
}

// AddBookmarkStart appends a <w:bookmarkStart> as the last content element.
// It is the caller's responsibility that both name and id are unique
// document-wide.
func (b *Body) AddBookmarkStart(name string, id int) *BookmarkStart {
	bs := asBookmarkStart(b.Add(TagBookmarkStart))
	bs.SetName(name)
	bs.SetID(id)
	return bs
}

// AddBookmarkEnd appends a <w:bookmarkEnd> as the last content element.
// It is the caller's responsibility that id matches the intended
// <w:bookmarkStart>.
func (b *Body) AddBookmarkEnd(id int) *BookmarkEnd {
	be := asBookmarkEnd(b.Add(TagBookmarkEnd))
	be.SetID(id)
	return be
}

// AddSectionBreak adds a section at the end of the document and returns
// the sentinel <w:sectPr>, which now controls the new last section.
//
// An exact copy of the previous sentinel is placed in a new paragraph at the
// end of the body, making it the break for the previously last section. The
// sentinel itself loses its header and footer references, so the new last
// section inherits them.
func (b *Body) AddSectionBreak() *SectPr {
	sentinel := b.GetOrAddSectPr()
	b.AddP().SetSectPr(sentinel.Clone())
	sentinel.RemoveHeaderFooterReferences()
	tracer().Debugf("added section break, body has %d children", b.ChildCount())
	return sentinel
}

// ClearContent removes all content children of the body. A trailing
// <w:sectPr> is kept.
func (b *Body) ClearContent() {
	children := b.Children()
	if n := len(children); n > 0 && children[n-1].Tag == TagSectPr {
		children = children[:n-1]
	}
	for _, ch := range children {
		b.RemoveChild(ch)
	}
}
