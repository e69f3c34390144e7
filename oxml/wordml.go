package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Tags of the WordprocessingML vocabulary used by this package.
var (
	TagDocument        = Qn("w:document")
	TagBody            = Qn("w:body")
	TagP               = Qn("w:p")
	TagPPr             = Qn("w:pPr")
	TagPStyle          = Qn("w:pStyle")
	TagJc              = Qn("w:jc")
	TagR               = Qn("w:r")
	TagRPr             = Qn("w:rPr")
	TagT               = Qn("w:t")
	TagTab             = Qn("w:tab")
	TagBr              = Qn("w:br")
	TagTbl             = Qn("w:tbl")
	TagTblPr           = Qn("w:tblPr")
	TagTblGrid         = Qn("w:tblGrid")
	TagTr              = Qn("w:tr")
	TagTc              = Qn("w:tc")
	TagBookmarkStart   = Qn("w:bookmarkStart")
	TagBookmarkEnd     = Qn("w:bookmarkEnd")
	TagSectPr          = Qn("w:sectPr")
	TagHeaderReference = Qn("w:headerReference")
	TagFooterReference = Qn("w:footerReference")
	TagType            = Qn("w:type")
	TagPgSz            = Qn("w:pgSz")
	TagPgMar           = Qn("w:pgMar")
	TagTitlePg         = Qn("w:titlePg")
)

func init() {
	Declare("w:document",
		Optional("w:body"),
	)
	Declare("w:body",
		Choice(
			Repeatable("w:p", "w:sectPr"),
			Repeatable("w:tbl", "w:sectPr"),
			Repeatable("w:bookmarkStart", "w:sectPr"),
			Repeatable("w:bookmarkEnd", "w:sectPr"),
		),
		Optional("w:sectPr"),
	)
	Declare("w:p",
		Optional("w:pPr"),
		Choice(
			Repeatable("w:r"),
			Repeatable("w:bookmarkStart"),
			Repeatable("w:bookmarkEnd"),
		),
	)
	Declare("w:pPr",
		Optional("w:pStyle"),
		Optional("w:keepNext"),
		Optional("w:keepLines"),
		Optional("w:pageBreakBefore"),
		Optional("w:framePr"),
		Optional("w:widowControl"),
		Optional("w:numPr"),
		Optional("w:suppressLineNumbers"),
		Optional("w:pBdr"),
		Optional("w:shd"),
		Optional("w:tabs"),
		Optional("w:suppressAutoHyphens"),
		Optional("w:kinsoku"),
		Optional("w:wordWrap"),
		Optional("w:overflowPunct"),
		Optional("w:topLinePunct"),
		Optional("w:autoSpaceDE"),
		Optional("w:autoSpaceDN"),
		Optional("w:bidi"),
		Optional("w:adjustRightInd"),
		Optional("w:snapToGrid"),
		Optional("w:spacing"),
		Optional("w:ind"),
		Optional("w:contextualSpacing"),
		Optional("w:mirrorIndents"),
		Optional("w:suppressOverlap"),
		Optional("w:jc"),
		Optional("w:textDirection"),
		Optional("w:textAlignment"),
		Optional("w:textboxTightWrap"),
		Optional("w:outlineLvl"),
		Optional("w:divId"),
		Optional("w:cnfStyle"),
		Optional("w:rPr"),
		Optional("w:sectPr"),
		Optional("w:pPrChange"),
	)
	Declare("w:sectPr",
		Choice(
			Repeatable("w:headerReference"),
			Repeatable("w:footerReference"),
		),
		Optional("w:footnotePr"),
		Optional("w:endnotePr"),
		Optional("w:type"),
		Optional("w:pgSz"),
		Optional("w:pgMar"),
		Optional("w:paperSrc"),
		Optional("w:pgBorders"),
		Optional("w:lnNumType"),
		Optional("w:pgNumType"),
		Optional("w:cols"),
		Optional("w:formProt"),
		Optional("w:vAlign"),
		Optional("w:noEndnote"),
		Optional("w:titlePg"),
		Optional("w:textDirection"),
		Optional("w:bidi"),
		Optional("w:rtlGutter"),
		Optional("w:docGrid"),
		Optional("w:printerSettings"),
		Optional("w:sectPrChange"),
	)
	Declare("w:r",
		Optional("w:rPr"),
		Choice(
			Repeatable("w:t"),
			Repeatable("w:tab"),
			Repeatable("w:br"),
		),
	)
	Declare("w:tbl",
		Optional("w:tblPr"),
		Optional("w:tblGrid"),
		Repeatable("w:tr"),
	)
	Declare("w:tr",
		Optional("w:tblPrEx"),
		Optional("w:trPr"),
		Repeatable("w:tc"),
	)
	Declare("w:tc",
		Optional("w:tcPr"),
		Choice(
			Repeatable("w:p"),
			Repeatable("w:tbl"),
		),
	)
}
