package docx

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Alignment is the horizontal justification of a paragraph.
type Alignment int8

// Paragraph alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
	AlignDistribute
	AlignJustifyMedium
	AlignJustifyHigh
	AlignJustifyLow
	AlignThaiJustify
)

// values of <w:jc w:val=…>, indexed by Alignment
var alignmentXML = [...]string{
	"left",
	"center",
	"right",
	"both",
	"distribute",
	"mediumKashida",
	"highKashida",
	"lowKashida",
	"thaiDistribute",
}

var alignmentNames = [...]string{
	"left",
	"center",
	"right",
	"justify",
	"distribute",
	"justify-medium",
	"justify-high",
	"justify-low",
	"thai-justify",
}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return fmt.Sprintf("Alignment(%d)", int8(a))
	}
	return alignmentNames[a]
}

// XML returns the markup value of an alignment.
func (a Alignment) XML() string {
	if a < 0 || int(a) >= len(alignmentXML) {
		return ""
	}
	return alignmentXML[a]
}

// AlignmentFromXML maps a markup value to an alignment. The strict-mode values
// "start" and "end" map to left and right.
func AlignmentFromXML(v string) (Alignment, bool) {
	switch v {
	case "start":
		return AlignLeft, true
	case "end":
		return AlignRight, true
	}
	for i, x := range alignmentXML {
		if x == v {
			return Alignment(i), true
		}
	}
	return AlignLeft, false
}
