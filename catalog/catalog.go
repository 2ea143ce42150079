// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package catalog maps OCP telemetry statistic and event identifiers to their published names.
// The built-in tables cover the identifiers assigned by the OCP Datacenter SAS-SATA Device
// Specification v1.5; a YAML overlay file may add vendor-assigned names on top.

package catalog

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Catalog struct {
	Statistics map[uint16]string
	Events     map[uint8]map[uint16]string
}

// Builtin returns a catalog populated with the specification-assigned names. The returned maps
// are copies, so an overlay never mutates the built-in tables.
func Builtin() *Catalog {
	c := &Catalog{
		Statistics: make(map[uint16]string, len(builtinStatistics)),
		Events:     make(map[uint8]map[uint16]string, len(builtinEvents)),
	}

	for id, name := range builtinStatistics {
		c.Statistics[id] = name
	}

	for class, ids := range builtinEvents {
		m := make(map[uint16]string, len(ids))
		for id, name := range ids {
			m[id] = name
		}
		c.Events[class] = m
	}

	return c
}

// StatisticName looks up the name assigned to a statistic identifier.
func (c *Catalog) StatisticName(id uint16) (string, bool) {
	name, ok := c.Statistics[id]
	return name, ok
}

// EventName looks up the name assigned to an event identifier within a debug class.
func (c *Catalog) EventName(class uint8, id uint16) (string, bool) {
	ids, ok := c.Events[class]
	if !ok {
		return "", false
	}

	name, ok := ids[id]
	return name, ok
}

// Vendor overlay file format.
type vendorNames struct {
	Statistics map[uint16]string `yaml:"statistics"`
	Events     []vendorEvent     `yaml:"events"`
}

type vendorEvent struct {
	Class uint8  `yaml:"class"`
	ID    uint16 `yaml:"id"`
	Name  string `yaml:"name"`
}

// Open returns the built-in catalog, overlaid with names from a YAML vendor file if one exists
// at path. A missing or empty path yields the built-ins.
func Open(path string) (*Catalog, error) {
	c := Builtin()

	if path == "" {
		return c, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return c, nil
	}

	defer f.Close()
	dec := yaml.NewDecoder(f)

	var vendor vendorNames
	if err := dec.Decode(&vendor); err != nil {
		return c, err
	}

	for id, name := range vendor.Statistics {
		c.Statistics[id] = name
	}

	for _, ev := range vendor.Events {
		if c.Events[ev.Class] == nil {
			c.Events[ev.Class] = make(map[uint16]string)
		}
		c.Events[ev.Class][ev.ID] = ev.Name
	}

	return c, nil
}
