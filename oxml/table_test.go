package oxml

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTableStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wml.oxml")
	defer teardown()
	//
	body := NewDocument().GetOrAddBody()
	body.GetOrAddSectPr()
	tbl := body.AddTbl()
	tr := tbl.AddTr()
	tc := tr.AddTc()
	tc.AddP()
	tc.AddTbl()
	tc.AddP()
	tbl.GetOrAddTblGrid()
	tbl.GetOrAddTblPr()
	tr.AddTc()
	assertTags(t, tbl.Element, "w:tblPr w:tblGrid w:tr")
	assertTags(t, tr.Element, "w:tc w:tc")
	assertTags(t, tc.Element, "w:p w:tbl w:p")
	if len(tc.Ps()) != 2 {
		t.Errorf("expected cell to hold 2 paragraphs, has %d", len(tc.Ps()))
	}
	if len(tbl.Trs()) != 1 || len(tbl.Trs()[0].Tcs()) != 2 {
		t.Errorf("expected 1 row of 2 cells")
	}
	if AsTbl(body.Child(0)) == nil || AsTbl(body.Child(1)) != nil {
		t.Errorf("AsTbl should accept tables only")
	}
}
