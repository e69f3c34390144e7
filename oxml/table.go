package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Tbl wraps <w:tbl>. Table and cell formatting is not modelled.
type Tbl struct {
	*Element
}

func asTbl(e *Element) *Tbl {
	if e == nil {
		return nil
	}
	return &Tbl{e}
}

// AsTbl wraps e, if e is a <w:tbl> element. Otherwise it returns nil.
func AsTbl(e *Element) *Tbl {
	if e == nil || e.Tag != TagTbl {
		return nil
	}
	return &Tbl{e}
}

// GetOrAddTblPr returns the table properties, creating them if necessary.
func (t *Tbl) GetOrAddTblPr() *Element {
	return t.GetOrAdd(TagTblPr)
}

// GetOrAddTblGrid returns the column grid, creating it if necessary.
func (t *Tbl) GetOrAddTblGrid() *Element {
	return t.GetOrAdd(TagTblGrid)
}

// AddTr appends a table row.
func (t *Tbl) AddTr() *Tr {
	return &Tr{t.Add(TagTr)}
}

// Trs returns the rows of the table.
func (t *Tbl) Trs() []*Tr {
	elems := t.List(TagTr)
	trs := make([]*Tr, len(elems))
	for i, e := range elems {
		trs[i] = &Tr{e}
	}
	return trs
}

// Tr wraps <w:tr>, a table row.
type Tr struct {
	*Element
}

// AddTc appends a cell to the row.
func (tr *Tr) AddTc() *Tc {
	return &Tc{tr.Add(TagTc)}
}

// Tcs returns the cells of the row.
func (tr *Tr) Tcs() []*Tc {
	elems := tr.List(TagTc)
	tcs := make([]*Tc, len(elems))
	for i, e := range elems {
		tcs[i] = &Tc{e}
	}
	return tcs
}

// Tc wraps <w:tc>, a table cell. Cells hold block content, i.e. paragraphs
// and nested tables.
type Tc struct {
	*Element
}

// AddP appends a paragraph to the cell.
func (tc *Tc) AddP() *P {
	return asP(tc.Add(TagP))
}

// AddTbl appends a nested table to the cell.
func (tc *Tc) AddTbl() *Tbl {
	return asTbl(tc.Add(TagTbl))
}

// Ps returns the paragraphs of the cell.
func (tc *Tc) Ps() []*P {
	elems := tc.List(TagP)
	ps := make([]*P, len(elems))
	for i, e := range elems {
		ps[i] = asP(e)
	}
	return ps
}
