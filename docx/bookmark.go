package docx

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/wml/oxml"
)

// Errors reported by bookmark operations.
var (
	ErrBookmarkExists = errors.New("bookmark name already in use")
	ErrBookmarkClosed = errors.New("bookmark is already closed")
)

// Bookmark is a named range of a document, delimited by a start marker and,
// once closed, an end marker with the same identifier.
type Bookmark struct {
	root  *oxml.Element
	start *oxml.BookmarkStart
}

// ID returns the bookmark identifier.
func (b *Bookmark) ID() int {
	return b.start.ID()
}

// Name returns the bookmark name.
func (b *Bookmark) Name() string {
	return b.start.Name()
}

// Start returns the start marker.
func (b *Bookmark) Start() *oxml.BookmarkStart {
	return b.start
}

// End returns the end marker, or nil while the bookmark is open.
func (b *Bookmark) End() *oxml.BookmarkEnd {
	id := b.ID()
	for _, e := range b.root.Descendants(oxml.TagBookmarkEnd) {
		if end := oxml.AsBookmarkEnd(e); end.ID() == id {
			return end
		}
	}
	return nil
}

// IsClosed is true if an end marker carries the bookmark's identifier.
func (b *Bookmark) IsClosed() bool {
	return b.End() != nil
}

func (b *Bookmark) String() string {
	state := "open"
	if b.IsClosed() {
		state = "closed"
	}
	return fmt.Sprintf("bookmark[%d %q %s]", b.ID(), b.Name(), state)
}

// --- Registry --------------------------------------------------------------

// Bookmarks is the bookmark registry of a document. It holds no state of its
// own; every query inspects the bookmark markers currently in the tree.
type Bookmarks struct {
	root *oxml.Element
}

func (bms Bookmarks) starts() []*oxml.BookmarkStart {
	if bms.root == nil {
		return nil
	}
	elems := bms.root.Descendants(oxml.TagBookmarkStart)
	starts := make([]*oxml.BookmarkStart, len(elems))
	for i, e := range elems {
		starts[i] = oxml.AsBookmarkStart(e)
	}
	return starts
}

// Len returns the number of bookmarks in the document.
func (bms Bookmarks) Len() int {
	return len(bms.starts())
}

// Get returns the bookmark with a given name.
func (bms Bookmarks) Get(name string) (*Bookmark, bool) {
	for _, start := range bms.starts() {
		if start.Name() == name {
			return &Bookmark{root: bms.root, start: start}, true
		}
	}
	return nil, false
}

// Contains is true if a bookmark named name exists.
func (bms Bookmarks) Contains(name string) bool {
	_, ok := bms.Get(name)
	return ok
}

// Names returns the names of all bookmarks in document order.
func (bms Bookmarks) Names() []string {
	starts := bms.starts()
	names := make([]string, len(starts))
	for i, start := range starts {
		names[i] = start.Name()
	}
	return names
}

// All returns all bookmarks in document order.
func (bms Bookmarks) All() []*Bookmark {
	starts := bms.starts()
	all := make([]*Bookmark, len(starts))
	for i, start := range starts {
		all[i] = &Bookmark{root: bms.root, start: start}
	}
	return all
}

// NextID returns an identifier not used by any bookmark marker: one more than
// the highest identifier in use, starting at 1.
func (bms Bookmarks) NextID() int {
	if bms.root == nil {
		return 1
	}
	highest := 0
	for _, e := range bms.root.Descendants(oxml.TagBookmarkStart) {
		if id := oxml.AsBookmarkStart(e).ID(); id > highest {
			highest = id
		}
	}
	for _, e := range bms.root.Descendants(oxml.TagBookmarkEnd) {
		if id := oxml.AsBookmarkEnd(e).ID(); id > highest {
			highest = id
		}
	}
	return highest + 1
}

// --- Bookmark containers ---------------------------------------------------

// markerAdder is implemented by elements able to hold bookmark markers,
// i.e. paragraphs and the body.
type markerAdder interface {
	AddBookmarkStart(name string, id int) *oxml.BookmarkStart
	AddBookmarkEnd(id int) *oxml.BookmarkEnd
}

func startBookmark(root *oxml.Element, container markerAdder, name string) (*Bookmark, error) {
	bms := Bookmarks{root: root}
	if bms.Contains(name) {
		tracer().Infof("cannot start bookmark %q: name in use", name)
		return nil, fmt.Errorf("%w: %q", ErrBookmarkExists, name)
	}
	start := container.AddBookmarkStart(name, bms.NextID())
	tracer().Debugf("started bookmark %q with id %d", name, start.ID())
	return &Bookmark{root: root, start: start}, nil
}

func endBookmark(container markerAdder, b *Bookmark) (*Bookmark, error) {
	if b.IsClosed() {
		return b, fmt.Errorf("%w: %q", ErrBookmarkClosed, b.Name())
	}
	container.AddBookmarkEnd(b.ID())
	tracer().Debugf("closed bookmark %q", b.Name())
	return b, nil
}
