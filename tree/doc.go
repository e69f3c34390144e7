/*
Package tree implements an all-purpose mutable tree type.

Nodes carry a payload and keep an ordered slice of children together with a
link to their parent. Clients build typed trees by composition: they embed a
tree.Node in their own node type and let the payload reference the enclosing
node (see package oxml for an example).

Walkers

Tree traversal is expressed by chaining search & filter functions on a Walker.
You may think of the set of operations to form a small
Domain Specific Language (DSL), similar in concept to JQuery.

Navigation functions:

   AncestorWith(predicate)      // find ancestor with a given predicate
   DescendentsWith(predicate)   // find descendents with a given predicate
   AllDescendents()             // all descendents in document order
   TopDown(action)              // traverse all nodes top down (depth first, pre-order)

Filter functions:

   Filter(userfunc)             // apply a user-provided filter function

Walkers operate synchronously and deliver selections in document order.
Results are fetched with Promise(), which returns the selection and the last
error encountered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wml.tree'.
func tracer() tracing.Trace {
	return tracing.Select("wml.tree")
}
