package docx

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/wml/oxml"
)

// Paragraph is the proxy for a <w:p> element of a document.
type Paragraph struct {
	p *oxml.P
}

// Element returns the wrapped <w:p> element.
func (para *Paragraph) Element() *oxml.P {
	return para.p
}

func (para *Paragraph) fill(text, styleID string) {
	if text != "" {
		para.AddRun(text)
	}
	if styleID != "" {
		para.SetStyleID(styleID)
	}
}

// InsertParagraphBefore creates a paragraph directly in front of para and
// returns it. text and styleID are treated as by Document.AddParagraph.
func (para *Paragraph) InsertParagraphBefore(text, styleID string) *Paragraph {
	np := &Paragraph{p: para.p.AddPBefore()}
	np.fill(text, styleID)
	return np
}

// AddRun appends a run holding text. Tabs and line breaks in text become
// <w:tab> and <w:br> elements.
func (para *Paragraph) AddRun(text string) *oxml.R {
	r := para.p.AddR()
	if text != "" {
		r.AddText(text)
	}
	return r
}

// Clear removes all content of the paragraph but keeps its properties.
func (para *Paragraph) Clear() *Paragraph {
	para.p.ClearContent()
	return para
}

// Text returns the text of the paragraph.
func (para *Paragraph) Text() string {
	return para.p.Text()
}

// SetText replaces the content of the paragraph with a single run holding
// text. Paragraph properties are preserved.
func (para *Paragraph) SetText(text string) {
	para.Clear()
	para.AddRun(text)
}

// Alignment returns the paragraph alignment. ok is false if the alignment
// is inherited from the style hierarchy.
func (para *Paragraph) Alignment() (a Alignment, ok bool) {
	v := para.p.Alignment()
	if v == "" {
		return AlignLeft, false
	}
	if a, ok = AlignmentFromXML(v); !ok {
		tracer().Infof("unknown paragraph alignment %q", v)
	}
	return a, ok
}

// SetAlignment sets the paragraph alignment.
func (para *Paragraph) SetAlignment(a Alignment) {
	para.p.SetAlignment(a.XML())
}

// ClearAlignment removes the alignment, letting it be inherited again.
func (para *Paragraph) ClearAlignment() {
	para.p.SetAlignment("")
}

// StyleID returns the style id of the paragraph, or "".
func (para *Paragraph) StyleID() string {
	return para.p.Style()
}

// SetStyleID sets the style id of the paragraph. An empty id reverts to the
// default paragraph style.
func (para *Paragraph) SetStyleID(styleID string) {
	para.p.SetStyle(styleID)
}

// SetSectionProperties makes the paragraph the last one of a section, with
// sectPr describing it. Existing section properties of the paragraph are
// replaced. A nil sectPr removes the section break and returns nil.
func (para *Paragraph) SetSectionProperties(sectPr *oxml.SectPr) *Section {
	para.p.SetSectPr(sectPr)
	if sectPr == nil {
		return nil
	}
	return &Section{sectPr: sectPr}
}

// Section returns the section ended by this paragraph, or nil.
func (para *Paragraph) Section() *Section {
	if sectPr := para.p.SectPr(); sectPr != nil {
		return &Section{sectPr: sectPr}
	}
	return nil
}

// StartBookmark appends the start of a new bookmark to the paragraph. It
// fails with ErrBookmarkExists if the name is already in use in the document.
func (para *Paragraph) StartBookmark(name string) (*Bookmark, error) {
	return startBookmark(para.p.Root(), para.p, name)
}

// EndBookmark appends the end marker of b to the paragraph. It fails with
// ErrBookmarkClosed if b has already been closed.
func (para *Paragraph) EndBookmark(b *Bookmark) (*Bookmark, error) {
	return endBookmark(para.p, b)
}
