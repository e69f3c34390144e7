package oxml

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Namespace URIs for the prefixes used throughout WordprocessingML.
var nsmap = map[string]string{
	"a":   "http://schemas.openxmlformats.org/drawingml/2006/main",
	"mc":  "http://schemas.openxmlformats.org/markup-compatibility/2006",
	"pic": "http://schemas.openxmlformats.org/drawingml/2006/picture",
	"r":   "http://schemas.openxmlformats.org/officeDocument/2006/relationships",
	"w":   "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
	"w14": "http://schemas.microsoft.com/office/word/2010/wordml",
	"wp":  "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing",
	"xml": "http://www.w3.org/XML/1998/namespace",
}

// prefixes is the reverse of nsmap.
var prefixes = func() map[string]string {
	m := make(map[string]string, len(nsmap))
	for pfx, uri := range nsmap {
		m[uri] = pfx
	}
	return m
}()

// Qn converts a namespace-prefixed name like "w:p" into a qualified
// xml.Name carrying the namespace URI. Names without a prefix are returned
// with an empty namespace. An unknown prefix is a programming error and
// panics.
func Qn(name string) xml.Name {
	pfx, local, found := strings.Cut(name, ":")
	if !found {
		return xml.Name{Local: name}
	}
	uri, ok := nsmap[pfx]
	if !ok {
		panic(fmt.Sprintf("oxml: unknown namespace prefix %q in %q", pfx, name))
	}
	return xml.Name{Space: uri, Local: local}
}

// NamespaceURI returns the URI registered for prefix, or "" if the prefix is unknown.
func NamespaceURI(prefix string) string {
	return nsmap[prefix]
}

// prefixed returns the "pfx:local" form of a qualified name.
func prefixed(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	if pfx, ok := prefixes[name.Space]; ok {
		return pfx + ":" + name.Local
	}
	return "{" + name.Space + "}" + name.Local
}
