package docx

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/wml/oxml"
)

// Document is the proxy for the main document story.
type Document struct {
	doc *oxml.Document
}

// US-letter page geometry used for new documents.
var (
	letterWidth   = 612 * dimen.PT
	letterHeight  = 792 * dimen.PT
	defaultMargin = 72 * dimen.PT
	headerMargin  = 36 * dimen.PT
)

// New creates a minimal document: an empty body holding only the sentinel
// section properties, set up for US-letter pages with 1 inch margins.
func New() *Document {
	doc := oxml.NewDocument()
	sectPr := doc.GetOrAddBody().GetOrAddSectPr()
	sectPr.SetPageSize(letterWidth, letterHeight)
	sectPr.SetMargins(oxml.PageMargins{
		Top:    defaultMargin,
		Right:  defaultMargin,
		Bottom: defaultMargin,
		Left:   defaultMargin,
		Header: headerMargin,
		Footer: headerMargin,
	})
	return &Document{doc: doc}
}

// FromElement wraps an existing document tree. A missing body is created.
func FromElement(doc *oxml.Document) *Document {
	if doc == nil {
		return nil
	}
	doc.GetOrAddBody()
	return &Document{doc: doc}
}

// Element returns the wrapped <w:document> element.
func (d *Document) Element() *oxml.Document {
	return d.doc
}

func (d *Document) body() *oxml.Body {
	return d.doc.GetOrAddBody()
}

// Paragraphs returns the paragraphs of the body, in document order.
// Paragraphs nested in tables are not included.
func (d *Document) Paragraphs() []*Paragraph {
	ps := d.body().Ps()
	paras := make([]*Paragraph, len(ps))
	for i, p := range ps {
		paras[i] = &Paragraph{p: p}
	}
	return paras
}

// AddParagraph appends a paragraph to the end of the document. If text is
// non-empty, it is placed in a single run. An empty styleID leaves the
// paragraph with the default style.
func (d *Document) AddParagraph(text, styleID string) *Paragraph {
	para := &Paragraph{p: d.body().AddP()}
	para.fill(text, styleID)
	return para
}

// AddSectionBreak ends the current last section and starts a new one, which
// begins as given by start. The new section inherits page setup as well as
// headers and footers from the section it follows.
func (d *Document) AddSectionBreak(start StartType) *Section {
	sentinel := d.body().AddSectionBreak()
	sentinel.SetStartType(string(start))
	return &Section{sectPr: sentinel}
}

// Sections returns one proxy per section, in document order.
func (d *Document) Sections() []*Section {
	list := d.doc.SectPrList()
	sections := make([]*Section, len(list))
	for i, sectPr := range list {
		sections[i] = &Section{sectPr: sectPr}
	}
	return sections
}

// Clear removes all content from the document, keeping the sentinel section
// properties.
func (d *Document) Clear() *Document {
	d.body().ClearContent()
	return d
}

// Bookmarks returns the bookmark registry of the document.
func (d *Document) Bookmarks() Bookmarks {
	return Bookmarks{root: d.doc.Element}
}

// StartBookmark starts a bookmark at the end of the body. It fails with
// ErrBookmarkExists if the name is already in use.
func (d *Document) StartBookmark(name string) (*Bookmark, error) {
	return startBookmark(d.doc.Element, d.body(), name)
}

// EndBookmark closes bookmark b at the end of the body. It fails with
// ErrBookmarkClosed if b has already been closed.
func (d *Document) EndBookmark(b *Bookmark) (*Bookmark, error) {
	return endBookmark(d.body(), b)
}
