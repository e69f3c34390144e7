package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/tyse/core/dimen"
)

// Section start types, values of <w:type w:val=…>.
const (
	StartContinuous = "continuous"
	StartNewColumn  = "nextColumn"
	StartNewPage    = "nextPage"
	StartEvenPage   = "evenPage"
	StartOddPage    = "oddPage"
)

// Page orientations, values of <w:pgSz w:orient=…>.
const (
	OrientPortrait  = "portrait"
	OrientLandscape = "landscape"
)

// SectPr wraps <w:sectPr>, the section properties. A <w:sectPr> is either the
// last child of the body (the sentinel, controlling the last section) or a
// grandchild of a paragraph, marking a section break at that paragraph.
type SectPr struct {
	*Element
}

// NewSectPr creates an empty <w:sectPr> element.
func NewSectPr() *SectPr {
	return &SectPr{NewElement(TagSectPr)}
}

func asSectPr(e *Element) *SectPr {
	if e == nil {
		return nil
	}
	return &SectPr{e}
}

// Clone returns a deep copy of the section properties, without parent.
func (s *SectPr) Clone() *SectPr {
	return &SectPr{s.Element.Clone()}
}

// HeaderReferences returns the <w:headerReference> children.
func (s *SectPr) HeaderReferences() []*Element {
	return s.List(TagHeaderReference)
}

// FooterReferences returns the <w:footerReference> children.
func (s *SectPr) FooterReferences() []*Element {
	return s.List(TagFooterReference)
}

// AddHeaderReference adds a <w:headerReference> of a given type ("default",
// "first" or "even") pointing to relationship rID.
func (s *SectPr) AddHeaderReference(typ, rID string) *Element {
	ref := s.Add(TagHeaderReference)
	ref.SetAttr("w:type", typ)
	ref.SetAttr("r:id", rID)
	return ref
}

// AddFooterReference adds a <w:footerReference>, see AddHeaderReference.
func (s *SectPr) AddFooterReference(typ, rID string) *Element {
	ref := s.Add(TagFooterReference)
	ref.SetAttr("w:type", typ)
	ref.SetAttr("r:id", rID)
	return ref
}

// RemoveHeaderFooterReferences removes all header and footer references,
// making the section inherit headers and footers from its predecessor.
func (s *SectPr) RemoveHeaderFooterReferences() {
	s.Remove(TagHeaderReference)
	s.Remove(TagFooterReference)
}

// StartType returns how the section starts. If <w:type> is missing, the
// section starts on a new page.
func (s *SectPr) StartType() string {
	if v := valOf(s.Get(TagType)); v != "" {
		return v
	}
	return StartNewPage
}

// SetStartType sets the section start type. StartNewPage, being the default,
// removes <w:type>, as does an empty value.
func (s *SectPr) SetStartType(start string) {
	if start == StartNewPage {
		start = ""
	}
	setValOf(s.Element, TagType, start)
}

// PageWidth returns the page width from <w:pgSz w:w=…>.
func (s *SectPr) PageWidth() (dimen.DU, bool) {
	tw, ok := intAttr(s.Get(TagPgSz), "w:w")
	return twipsToDU(tw), ok
}

// PageHeight returns the page height from <w:pgSz w:h=…>.
func (s *SectPr) PageHeight() (dimen.DU, bool) {
	tw, ok := intAttr(s.Get(TagPgSz), "w:h")
	return twipsToDU(tw), ok
}

// SetPageSize sets width and height of the page.
func (s *SectPr) SetPageSize(width, height dimen.DU) {
	pgSz := s.GetOrAdd(TagPgSz)
	setIntAttr(pgSz, "w:w", duToTwips(width))
	setIntAttr(pgSz, "w:h", duToTwips(height))
}

// Orientation returns the page orientation, OrientPortrait by default.
func (s *SectPr) Orientation() string {
	pgSz := s.Get(TagPgSz)
	if pgSz == nil {
		return OrientPortrait
	}
	if v, ok := pgSz.Attr("w:orient"); ok && v != "" {
		return v
	}
	return OrientPortrait
}

// SetOrientation sets the page orientation. Portrait, being the default,
// removes the attribute. Width and height are not swapped.
func (s *SectPr) SetOrientation(orient string) {
	pgSz := s.GetOrAdd(TagPgSz)
	if orient == "" || orient == OrientPortrait {
		pgSz.RemoveAttr("w:orient")
		return
	}
	pgSz.SetAttr("w:orient", orient)
}

// PageMargins are the margins of a section's pages, from <w:pgMar>.
type PageMargins struct {
	Top, Right, Bottom, Left dimen.DU
	Header, Footer, Gutter   dimen.DU
}

var pgMarAttrs = []string{"w:top", "w:right", "w:bottom", "w:left", "w:header", "w:footer", "w:gutter"}

func (m *PageMargins) fields() []*dimen.DU {
	return []*dimen.DU{&m.Top, &m.Right, &m.Bottom, &m.Left, &m.Header, &m.Footer, &m.Gutter}
}

// Margins returns the page margins. ok is false if <w:pgMar> is missing;
// missing attributes are reported as 0.
func (s *SectPr) Margins() (m PageMargins, ok bool) {
	pgMar := s.Get(TagPgMar)
	if pgMar == nil {
		return m, false
	}
	for i, f := range m.fields() {
		tw, _ := intAttr(pgMar, pgMarAttrs[i])
		*f = twipsToDU(tw)
	}
	return m, true
}

// SetMargins sets all page margins.
func (s *SectPr) SetMargins(m PageMargins) {
	pgMar := s.GetOrAdd(TagPgMar)
	for i, f := range m.fields() {
		setIntAttr(pgMar, pgMarAttrs[i], duToTwips(*f))
	}
}

// TitlePg is true if the section has a distinct first-page header and footer.
func (s *SectPr) TitlePg() bool {
	titlePg := s.Get(TagTitlePg)
	if titlePg == nil {
		return false
	}
	v, ok := titlePg.Attr("w:val")
	return !ok || (v != "0" && v != "false" && v != "off")
}

// SetTitlePg switches a distinct first-page header and footer on or off.
func (s *SectPr) SetTitlePg(on bool) {
	if !on {
		s.Remove(TagTitlePg)
		return
	}
	s.GetOrAdd(TagTitlePg).RemoveAttr("w:val")
}

// --- Units -----------------------------------------------------------------

// Page geometry is stored in twips (1/20 pt).
func twipsToDU(tw int) dimen.DU {
	return dimen.DU(int64(tw) * int64(dimen.PT) / 20)
}

func duToTwips(d dimen.DU) int {
	x := int64(d) * 20
	pt := int64(dimen.PT)
	if x < 0 {
		return int((x - pt/2) / pt)
	}
	return int((x + pt/2) / pt)
}
