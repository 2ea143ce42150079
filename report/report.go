// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package report provides the dual output sink for telemetry decoding: formatted text lines to
// an io.Writer, and a hierarchical JSON document built alongside them.

package report

import (
	"fmt"
	"io"

	"github.com/Jeffail/gabs"
)

// Report couples a textual output stream with a JSON document. Both are populated in lockstep by
// the telemetry printers; either side may be ignored by the caller.
type Report struct {
	w   io.Writer
	doc *gabs.Container
}

func New(w io.Writer) *Report {
	if w == nil {
		w = io.Discard
	}

	return &Report{w: w, doc: gabs.New()}
}

// Printf writes a formatted line fragment to the textual stream. Newlines are explicit.
func (r *Report) Printf(format string, a ...interface{}) {
	fmt.Fprintf(r.w, format, a...)
}

// Root returns the node addressing the top of the JSON document.
func (r *Report) Root() Node {
	return Node{r.doc}
}

// JSON renders the accumulated JSON document.
func (r *Report) JSON() string {
	return r.doc.StringIndent("", "  ")
}

// Node addresses an object within the JSON document. The zero Node discards all writes, so
// printers need not guard against detached subtrees.
type Node struct {
	c *gabs.Container
}

// Set stores a scalar value under key.
func (n Node) Set(key string, value interface{}) {
	if n.c == nil {
		return
	}

	n.c.Set(value, key)
}

// Object creates (or replaces) an object child under key and returns its node.
func (n Node) Object(key string) Node {
	if n.c == nil {
		return Node{}
	}

	child, err := n.c.Object(key)
	if err != nil {
		return Node{}
	}

	return Node{child}
}

// Append adds a new object to the array under key, creating the array as needed, and returns the
// node addressing the appended object.
func (n Node) Append(key string) Node {
	if n.c == nil {
		return Node{}
	}

	if err := n.c.ArrayAppend(map[string]interface{}{}, key); err != nil {
		return Node{}
	}

	arr := n.c.S(key)
	children, err := arr.Children()
	if err != nil || len(children) == 0 {
		return Node{}
	}

	return Node{arr.Index(len(children) - 1)}
}

// AppendValue adds a scalar element to the array under key, creating the array as needed.
func (n Node) AppendValue(key string, value interface{}) {
	if n.c == nil {
		return
	}

	n.c.ArrayAppend(value, key)
}
