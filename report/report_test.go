// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"testing"

	"github.com/Jeffail/gabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	rpt := New(&buf)

	rpt.Printf("value: %d\n", 42)

	assert.Equal(t, "value: 42\n", buf.String())
}

func TestNilWriter(t *testing.T) {
	rpt := New(nil)
	rpt.Printf("discarded\n")
	rpt.Root().Set("key", 1)

	assert.Contains(t, rpt.JSON(), "key")
}

func TestNodeTree(t *testing.T) {
	assert := assert.New(t)

	rpt := New(nil)
	root := rpt.Root()

	hdr := root.Object("header")
	hdr.Set("version", 2)
	hdr.Set("guid", "F5h")

	list := root.Object("area")
	first := list.Append("descriptors")
	first.Set("ID", "Erase Count")
	first.AppendValue("data", 1)
	first.AppendValue("data", 2)
	second := list.Append("descriptors")
	second.Set("ID", "Spinup Times")

	doc, err := gabs.ParseJSON([]byte(rpt.JSON()))
	require.NoError(t, err)

	assert.Equal(float64(2), doc.Path("header.version").Data())
	assert.Equal("F5h", doc.Path("header.guid").Data())

	descs, err := doc.Path("area.descriptors").Children()
	require.NoError(t, err)
	require.Len(t, descs, 2)
	assert.Equal("Erase Count", descs[0].Path("ID").Data())
	assert.Equal("Spinup Times", descs[1].Path("ID").Data())

	data, err := descs[0].Path("data").Children()
	require.NoError(t, err)
	assert.Len(data, 2)
}

func TestZeroNodeDiscards(t *testing.T) {
	var n Node

	// Writes through a detached node must not panic
	n.Set("a", 1)
	n.Object("b").Set("c", 2)
	n.Append("d").Set("e", 3)
	n.AppendValue("f", 4)
}
