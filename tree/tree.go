package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is thrown if a pipeline filter step is defunct.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is thrown if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrNoMoreFiltersAccepted is thrown if a client already called Promise(), but tried to
// re-use a walker with another filter.
var ErrNoMoreFiltersAccepted = errors.New("in promise mode; will not accept new filters; use a new walker")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A Walker will eventually return two client-level values:
// A slice of tree nodes and the last error occured.
// These are accessed through a Promise-object:
//
//    w := NewWalker(node)
//    futureResult := w.FindNodesAndDoSomething(...).Promise()
//    nodes, err := futureResult()
//
// Every filter step is performed synchronously on the current selection,
// so the promise is settled at the time it is handed out. Selections
// are kept free of duplicates and are ordered as the filter steps
// encounter the nodes, i.e. in document order for descending steps.
type Walker[T comparable] struct {
	initial   *Node[T]   // initial node of (sub-)tree
	selection []*Node[T] // current selection, input to the next filter step
	lasterror error      // last error reported by a filter step
	promising bool       // client has called Promise()
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-pipeline of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{
		initial:   initial,
		selection: []*Node[T]{initial},
	}
}

// Promise is a future synchronisation point. Calling the returned function
// yields the selection of the final filter step and the last error
// any step has reported.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		// empty Walker => return nil set and an error
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	w.promising = true // will block calls to establish new filters
	selection, lasterror := w.selection, w.lasterror
	return func() ([]*Node[T], error) {
		return selection, lasterror
	}
}

// step applies a filter task to every node of the current selection and
// makes the union of the results the new selection.
func (w *Walker[T]) step(task func(*Node[T], func(*Node[T])) error) *Walker[T] {
	if w.promising {
		w.lasterror = ErrNoMoreFiltersAccepted
		tracer().Errorf(w.lasterror.Error())
		return w
	}
	seen := make(map[*Node[T]]struct{})
	var next []*Node[T]
	push := func(n *Node[T]) {
		if _, dup := seen[n]; dup {
			return
		}
		seen[n] = struct{}{}
		next = append(next, n)
	}
	for _, node := range w.selection {
		if err := task(node, push); err != nil {
			w.lasterror = err
		}
	}
	w.selection = next
	return w
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// ----------------------------------------------------------------------

// AncestorWith finds an ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.lasterror = ErrInvalidFilter
		return w
	}
	return w.step(func(node *Node[T], push func(*Node[T])) error {
		for anc := node.Parent(); anc != nil; anc = anc.Parent() {
			matchedNode, err := predicate(anc, node)
			if err != nil {
				return err
			}
			if matchedNode != nil {
				push(matchedNode)
				return nil
			}
		}
		return nil // no matching ancestor found, not an error
	})
}

// DescendentsWith finds descendents matching a predicate.
// The search does not include the start node. Descendents are
// visited depth-first in document order.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.lasterror = ErrInvalidFilter
		return w
	}
	return w.step(func(node *Node[T], push func(*Node[T])) error {
		return descendentsWith(node, node, predicate, push)
	})
}

func descendentsWith[T comparable](origin, node *Node[T], predicate Predicate[T], push func(*Node[T])) error {
	for _, ch := range node.Children() {
		matchedNode, err := predicate(ch, origin)
		tracer().Debugf("Predicate for node %s returned: %v, err=%v", ch, matchedNode, err)
		if err != nil {
			return err // do not descend further
		}
		if matchedNode != nil {
			push(matchedNode)
		}
		if err := descendentsWith(origin, ch, predicate, push); err != nil {
			return err
		}
	}
	return nil
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided function on each node of the selection.
// The user function should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if f == nil {
		w.lasterror = ErrInvalidFilter
		return w
	}
	return w.step(func(node *Node[T], push func(*Node[T])) error {
		n, err := f(node, node)
		if n != nil && err == nil {
			push(n) // forward filtered node to next pipeline stage
		}
		return err
	})
}

// Action is a function type to operate on tree nodes.
// Resulting nodes will be pushed to the next pipeline stage, if
// no error occured.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// TopDown traverses a tree starting at (and including) the selected nodes.
// The traversal guarantees that parents are always processed before
// their children.
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if action == nil {
		w.lasterror = ErrInvalidFilter
		return w
	}
	return w.step(func(node *Node[T], push func(*Node[T])) error {
		position := 0
		if p := node.Parent(); p != nil {
			position = p.IndexOfChild(node)
		}
		return topDown(node, node.Parent(), position, action, push)
	})
}

func topDown[T comparable](node, parent *Node[T], position int, action Action[T], push func(*Node[T])) error {
	result, err := action(node, parent, position)
	tracer().Debugf("Action for node %s returned: %v, err=%v", node, result, err)
	if err != nil {
		return err // do not descend further
	}
	if result != nil {
		push(result) // result -> next pipeline stage
	}
	var lasterror error
	for i, ch := range node.Children() {
		if err := topDown(ch, node, i, action, push); err != nil {
			lasterror = err
		}
	}
	return lasterror
}
