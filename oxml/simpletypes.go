package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/xml"
	"strconv"
)

// valOf returns the w:val attribute of e, or "" if e is nil.
func valOf(e *Element) string {
	if e == nil {
		return ""
	}
	v, _ := e.Attr("w:val")
	return v
}

// setValOf sets the w:val attribute of the zero-or-one child tag of parent.
// An empty value removes the child.
func setValOf(parent *Element, tag xml.Name, val string) {
	if val == "" {
		parent.Remove(tag)
		return
	}
	parent.GetOrAdd(tag).SetAttr("w:val", val)
}

// intAttr returns an integer attribute of e. ok is false if the attribute
// is missing or not a decimal number.
func intAttr(e *Element, name string) (n int, ok bool) {
	if e == nil {
		return 0, false
	}
	v, found := e.Attr(name)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		tracer().Debugf("attribute %s of %s is not a number: %q", name, e, v)
		return 0, false
	}
	return n, true
}

func setIntAttr(e *Element, name string, n int) {
	e.SetAttr(name, strconv.Itoa(n))
}
