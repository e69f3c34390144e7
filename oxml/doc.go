/*
Package oxml implements an in-memory element tree for WordprocessingML
documents which stays schema-ordered under incremental mutation.

Overview

Every markup element is represented by an Element, a node of a general purpose
tree (package tree). Elements carry a namespace-qualified tag, an attribute map
and an ordered list of children.

For every parent tag a Schema declares which child tags are recognized, their
cardinality (zero-or-one or zero-or-more) and their relative order. A single
generic ordering engine, driven by these declarations, computes the position
of newly inserted children:

   Get(tag)        // existing zero-or-one child or nil
   GetOrAdd(tag)   // never duplicates a zero-or-one child
   Add(tag)        // always inserts a new child at its schema position
   Insert(child)   // places an existing element at its schema position
   Remove(tag)     // removes all children with a tag
   Replace(old, new)

Typed wrappers (Document, Body, P, PPr, R, SectPr, BookmarkStart, BookmarkEnd,
Tbl) provide statically typed accessors on top of the engine, together with
the document operations which depend on the ordering guarantee: clearing
content, inserting section breaks and adding bookmark markers.

Element trees are not safe for concurrent mutation. Clients serialize
access per document.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package oxml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wml.oxml'.
func tracer() tracing.Trace {
	return tracing.Select("wml.oxml")
}
