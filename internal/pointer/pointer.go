// Package pointer builds and matches slash-delimited document addresses.
// An address identifies one position inside a document: the root is the
// literal "/", and each step appends "/" plus an escaped token (mapping key
// or decimal sequence index).
package pointer

import (
	"strconv"
	"strings"
)

// Root is the address of the document root.
const Root = "/"

// Escape applies token escaping before concatenation: "~" becomes "~0" and
// "/" becomes "~1", in that order.
func Escape(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// Child returns the address of a mapping member under parent.
func Child(parent, key string) string {
	if parent == Root {
		return "/" + Escape(key)
	}
	return parent + "/" + Escape(key)
}

// Index returns the address of a sequence element under parent. Index
// tokens are decimal digits and need no escaping.
func Index(parent string, i int) string {
	if parent == Root {
		return "/" + strconv.Itoa(i)
	}
	return parent + "/" + strconv.Itoa(i)
}
