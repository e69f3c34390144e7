package docximport

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"

	"github.com/fumiama/go-docx"
	wml "github.com/npillmayer/wml/docx"
	"github.com/npillmayer/wml/oxml"
)

// Read parses a .docx package and converts its main document.
func Read(r io.ReaderAt, size int64) (*oxml.Document, error) {
	doc, err := docx.Parse(r, size)
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}
	return Convert(doc), nil
}

// Open parses a .docx package and returns a proxy for its main document.
func Open(r io.ReaderAt, size int64) (*wml.Document, error) {
	doc, err := Read(r, size)
	if err != nil {
		return nil, err
	}
	return wml.FromElement(doc), nil
}

// Convert builds an element tree from a parsed document.
func Convert(doc *docx.Docx) *oxml.Document {
	if doc == nil {
		return nil
	}
	return ConvertItems(doc.Document.Body.Items)
}

// ConvertItems builds an element tree from the block items of a document
// body. Items of types other than paragraphs and tables are skipped.
func ConvertItems(items []interface{}) *oxml.Document {
	d := oxml.NewDocument()
	body := d.GetOrAddBody()
	for _, item := range items {
		switch it := item.(type) {
		case *docx.Paragraph:
			convertParagraph(body.AddP(), it)
		case *docx.Table:
			convertTable(body.AddTbl(), it)
		default:
			tracer().Debugf("skipping body item of type %T", item)
		}
	}
	body.GetOrAddSectPr()
	tracer().Debugf("converted %d body items", len(items))
	return d
}

func convertParagraph(p *oxml.P, para *docx.Paragraph) {
	if para == nil {
		return
	}
	if props := para.Properties; props != nil {
		if props.Style != nil && props.Style.Val != "" {
			p.SetStyle(props.Style.Val)
		}
		if props.Justification != nil && props.Justification.Val != "" {
			p.SetAlignment(props.Justification.Val)
		}
	}
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		r := p.AddR()
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				r.AddText(t.Text)
			}
		}
	}
}

func convertTable(tbl *oxml.Tbl, table *docx.Table) {
	if table == nil {
		return
	}
	tbl.GetOrAddTblPr()
	tbl.GetOrAddTblGrid()
	for _, row := range table.TableRows {
		tr := tbl.AddTr()
		if row == nil {
			continue
		}
		for _, cell := range row.TableCells {
			tc := tr.AddTc()
			if cell == nil {
				continue
			}
			for _, para := range cell.Paragraphs {
				convertParagraph(tc.AddP(), para)
			}
			for _, nested := range cell.Tables {
				convertTable(tc.AddTbl(), nested)
			}
			if last := tc.LastChild(); last == nil || last.Tag != oxml.TagP {
				tc.AddP() // a cell must end with a paragraph
			}
		}
	}
}
