/*
Package docx provides the proxy objects external collaborators work with:
documents, paragraphs, sections and bookmarks.

Proxies wrap elements of an oxml element tree and never hold state of their
own beyond references into the tree; everything they report is derived from
the tree on demand. In particular, the document-wide bookmark registry is
computed from the bookmark markers present in the tree.

Errors

Starting a bookmark with a name already used in the document fails with
ErrBookmarkExists, ending a bookmark which is already closed fails with
ErrBookmarkClosed. Identifiers are allocated by the registry; identifier
uniqueness is not checked when foreign trees are wrapped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package docx

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wml.docx'.
func tracer() tracing.Trace {
	return tracing.Select("wml.docx")
}
