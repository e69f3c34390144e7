/*
Package docximport converts documents parsed by github.com/fumiama/go-docx
into oxml element trees.

Only block structure and plain text are carried over: paragraphs with their
style id, alignment and run text, and tables with their rows and cells.
Every element is placed by the ordering engine of package oxml, so the
resulting tree is valid with respect to child order. If the source has no
section properties, a sentinel sectPr is added.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package docximport

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wml.import'.
func tracer() tracing.Trace {
	return tracing.Select("wml.import")
}
