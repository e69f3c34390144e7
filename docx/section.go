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

// StartType tells where a section begins.
type StartType string

// Section start types.
const (
	StartContinuous StartType = oxml.StartContinuous
	StartNewColumn  StartType = oxml.StartNewColumn
	StartNewPage    StartType = oxml.StartNewPage
	StartEvenPage   StartType = oxml.StartEvenPage
	StartOddPage    StartType = oxml.StartOddPage
)

// Orientation is the orientation of the pages of a section.
type Orientation string

// Page orientations.
const (
	Portrait  Orientation = oxml.OrientPortrait
	Landscape Orientation = oxml.OrientLandscape
)

// Section is a proxy for the section properties of one document section.
type Section struct {
	sectPr *oxml.SectPr
}

// SectPr returns the wrapped <w:sectPr>.
func (s *Section) SectPr() *oxml.SectPr {
	return s.sectPr
}

// StartType returns where the section begins.
func (s *Section) StartType() StartType {
	return StartType(s.sectPr.StartType())
}

// SetStartType sets where the section begins.
func (s *Section) SetStartType(start StartType) {
	s.sectPr.SetStartType(string(start))
}

// PageWidth returns the page width, or 0 if not set.
func (s *Section) PageWidth() dimen.DU {
	w, _ := s.sectPr.PageWidth()
	return w
}

// PageHeight returns the page height, or 0 if not set.
func (s *Section) PageHeight() dimen.DU {
	h, _ := s.sectPr.PageHeight()
	return h
}

// SetPageSize sets the page dimensions.
func (s *Section) SetPageSize(width, height dimen.DU) {
	s.sectPr.SetPageSize(width, height)
}

// Orientation returns the page orientation.
func (s *Section) Orientation() Orientation {
	return Orientation(s.sectPr.Orientation())
}

// SetOrientation sets the page orientation. Page width and height are left
// untouched; callers switching to landscape usually swap them as well.
func (s *Section) SetOrientation(o Orientation) {
	s.sectPr.SetOrientation(string(o))
}

// Margins returns the page margins, all zero if none are set.
func (s *Section) Margins() oxml.PageMargins {
	m, _ := s.sectPr.Margins()
	return m
}

// SetMargins sets the page margins.
func (s *Section) SetMargins(m oxml.PageMargins) {
	s.sectPr.SetMargins(m)
}

// DifferentFirstPage is true if the first page has its own header and footer.
func (s *Section) DifferentFirstPage() bool {
	return s.sectPr.TitlePg()
}

// SetDifferentFirstPage switches first-page headers and footers on or off.
func (s *Section) SetDifferentFirstPage(on bool) {
	s.sectPr.SetTitlePg(on)
}

// HeaderCount returns the number of header references of the section.
func (s *Section) HeaderCount() int {
	return len(s.sectPr.HeaderReferences())
}

// FooterCount returns the number of footer references of the section.
func (s *Section) FooterCount() int {
	return len(s.sectPr.FooterReferences())
}

// IsLinkedToPrevious is true if the section defines no headers or footers
// of its own and therefore inherits them from the preceding section.
func (s *Section) IsLinkedToPrevious() bool {
	return s.HeaderCount() == 0 && s.FooterCount() == 0
}
