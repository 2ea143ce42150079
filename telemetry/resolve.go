// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Identifier-to-name resolution, merging the built-in catalog with the device string tables.

package telemetry

import (
	"encoding/binary"
	"fmt"

	"github.com/westerndigitalcorporation/smartmontools-ocp/catalog"
)

// resolver answers name lookups during a log walk. The built-in catalog always wins; for
// statistics the device string tables cover only the vendor-unique id space, while for events
// they are consulted for any id the catalog does not name.
type resolver struct {
	cat *catalog.Catalog
	str *StringTables
}

// statisticName resolves a statistic identifier. Identifiers below 0x8000 are assigned by the
// specification, so the device map is never consulted for them.
func (res *resolver) statisticName(id uint16) string {
	if name, ok := res.cat.StatisticName(id); ok {
		return name
	}

	if id >= 0x8000 {
		if entry, ok := res.str.StatID[id]; ok {
			if name, ok := res.str.ASCIIString(entry.ASCIIIDOffset, entry.ASCIIIDLen); ok {
				return name
			}
		}
		return "Vendor Unique ID"
	}

	return "Reserved ID"
}

// eventName resolves an event identifier within a debug class. Statistic Snapshot events carry
// no meaningful identifier. The device map key uses the raw on-wire id bytes.
func (res *resolver) eventName(class uint8, id [2]byte) (string, bool) {
	if class == ClassStatisticSnap {
		return "", false
	}

	eventID := binary.LittleEndian.Uint16(id[:])
	if name, ok := res.cat.EventName(class, eventID); ok {
		return name, true
	}

	if entry, ok := res.str.Event[EventKey(class, id)]; ok {
		if name, ok := res.str.ASCIIString(entry.ASCIIIDOffset, entry.ASCIIIDLen); ok {
			return name, true
		}
	}

	if eventID >= 0x8000 {
		return "Vendor Unique ID", true
	}

	return "Reserved ID", true
}

func className(class uint8) string {
	switch class {
	case ClassTimestamp:
		return "Timestamp Class"
	case ClassReset:
		return "Reset Class"
	case ClassBootSeq:
		return "Boot Sequence Class"
	case ClassFWAssert:
		return "Firmware Assert Class"
	case ClassTemperature:
		return "Temperature Class"
	case ClassMedia:
		return "Media Class"
	case ClassMediaWear:
		return "Media Wear Class"
	case ClassStatisticSnap:
		return "Statistic Snapshot Class"
	case ClassVirtualFIFO:
		return "Virtual FIFO Event Class"
	case ClassSATAPhyLink:
		return "SATA Phy/Link Class"
	case ClassSATATransport:
		return "SATA Transport Class"
	case ClassSASPhyLink:
		return "SAS Phy/Link Class"
	case ClassSASTransport:
		return "SAS Transport Class"
	}

	if class < 0x80 {
		return fmt.Sprintf("Unknown Class %02x", class)
	}

	return fmt.Sprintf("Vendor Unique Class %02x", class)
}

var unitNames = [...]string{"N/A", "ms", "s", "h", "d", "MB", "GB", "TB", "PB", "C", "K", "F",
	"mV", "mA", "Ohm", "RPM", "micrometer", "nanometer", "angstroms"}

func unitName(unit uint8) string {
	if unit > unitTypeMax {
		return "Reserved"
	}

	return unitNames[unit]
}

func statTypeName(statType uint8) string {
	switch statType {
	case StatTypeSingle:
		return "Single"
	case StatTypeArray:
		return "Array"
	case StatTypeCustom:
		return "Custom"
	}

	return "Reserved"
}

func behaviorName(behavior uint8) string {
	switch behavior {
	case BehaviorNA:
		return "N/A"
	case BehaviorNone:
		return "Runtime Value"
	case BehaviorResetPersistentPowerCycle:
		return "Reset Persistent, Power Cycle Resistent"
	case BehaviorSaturatingReset:
		return "Saturating Counter, Reset Persistent"
	case BehaviorSaturatingResetPowerCycle:
		return "Saturating Counter, Reset Persistent, Power Cycle Resistent"
	case BehaviorSaturating:
		return "Saturating Counter"
	case BehaviorResetPersistent:
		return "Reset Persistent"
	}

	return "Reserved"
}

func hostHintName(hint uint8) string {
	switch hint {
	case 0x00:
		return "No Host Hint"
	case 0x01:
		return "Host Hint Type 1"
	}

	return "Reserved"
}

func dataTypeName(dataType uint8) string {
	switch dataType {
	case DataTypeNA:
		return "No Data Type Information"
	case DataTypeInt:
		return "Signed Integer"
	case DataTypeUint:
		return "Unsigned Integer"
	case DataTypeFP:
		return "Floating Point"
	case DataTypeASCII:
		return "ASCII (7-bit)"
	}

	return "Reserved"
}
