package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// R wraps <w:r>, a run of text within a paragraph.
type R struct {
	*Element
}

func asR(e *Element) *R {
	if e == nil {
		return nil
	}
	return &R{e}
}

// AddT appends a <w:t> element holding text. Leading or trailing white space
// is preserved by xml:space="preserve".
func (r *R) AddT(text string) *Element {
	t := r.Add(TagT)
	if strings.TrimSpace(text) != text {
		t.SetAttr("xml:space", "preserve")
	}
	t.Text = text
	return t
}

// AddText appends text, translating tabs to <w:tab/> and line feeds or
// carriage returns to <w:br/>.
func (r *R) AddText(text string) {
	var chunk strings.Builder
	flush := func() {
		if chunk.Len() > 0 {
			r.AddT(chunk.String())
			chunk.Reset()
		}
	}
	for _, c := range text {
		switch c {
		case '\t':
			flush()
			r.Add(TagTab)
		case '\n', '\r':
			flush()
			r.Add(TagBr)
		default:
			chunk.WriteRune(c)
		}
	}
	flush()
}

// Text returns the text of the run. <w:tab/> maps to "\t", <w:br/> to "\n".
func (r *R) Text() string {
	var b strings.Builder
	for _, ch := range r.Children() {
		switch ch.Tag {
		case TagT:
			b.WriteString(ch.Text)
		case TagTab:
			b.WriteByte('\t')
		case TagBr:
			b.WriteByte('\n')
		}
	}
	return b.String()
}
