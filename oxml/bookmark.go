package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// BookmarkStart wraps <w:bookmarkStart>, the start marker of a bookmark.
type BookmarkStart struct {
	*Element
}

func asBookmarkStart(e *Element) *BookmarkStart {
	if e == nil {
		return nil
	}
	return &BookmarkStart{e}
}

// AsBookmarkStart wraps e, if e is a <w:bookmarkStart>. Otherwise it returns nil.
func AsBookmarkStart(e *Element) *BookmarkStart {
	if e == nil || e.Tag != TagBookmarkStart {
		return nil
	}
	return &BookmarkStart{e}
}

// ID returns the bookmark identifier from w:id, or -1 if it is missing or
// not a number.
func (b *BookmarkStart) ID() int {
	if id, ok := intAttr(b.Element, "w:id"); ok {
		return id
	}
	return -1
}

// SetID sets the bookmark identifier.
func (b *BookmarkStart) SetID(id int) {
	setIntAttr(b.Element, "w:id", id)
}

// Name returns the bookmark name from w:name.
func (b *BookmarkStart) Name() string {
	name, _ := b.Attr("w:name")
	return name
}

// SetName sets the bookmark name.
func (b *BookmarkStart) SetName(name string) {
	b.SetAttr("w:name", name)
}

// BookmarkEnd wraps <w:bookmarkEnd>, the end marker of a bookmark. It is
// linked to its start marker by a common identifier.
type BookmarkEnd struct {
	*Element
}

func asBookmarkEnd(e *Element) *BookmarkEnd {
	if e == nil {
		return nil
	}
	return &BookmarkEnd{e}
}

// AsBookmarkEnd wraps e, if e is a <w:bookmarkEnd>. Otherwise it returns nil.
func AsBookmarkEnd(e *Element) *BookmarkEnd {
	if e == nil || e.Tag != TagBookmarkEnd {
		return nil
	}
	return &BookmarkEnd{e}
}

// ID returns the bookmark identifier from w:id, or -1.
func (b *BookmarkEnd) ID() int {
	if id, ok := intAttr(b.Element, "w:id"); ok {
		return id
	}
	return -1
}

// SetID sets the bookmark identifier.
func (b *BookmarkEnd) SetID(id int) {
	setIntAttr(b.Element, "w:id", id)
}
