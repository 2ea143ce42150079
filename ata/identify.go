// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// ATA IDENTIFY DEVICE response parsing.

package ata

import (
	"bytes"
	"fmt"

	"github.com/westerndigitalcorporation/smartmontools-ocp/utils"
)

// ATA IDENTIFY DEVICE struct. ATA8-ACS defines this as a page of 16-bit words. Some fields span
// multiple words (e.g., model number) and must be byteswapped. Since many of the fields are now
// retired / obsolete, we only define the fields that are currently used by this package.
type IdentifyDeviceData struct {
	GeneralConfig       uint16      // Word 0, general configuration. If bit 15 is zero, device is ATA.
	_                   [9]uint16   // ...
	SerialNumberRaw     [20]byte    // Word 10..19, device serial number, padded with spaces (20h).
	_                   [3]uint16   // ...
	FirmwareRevisionRaw [8]byte     // Word 23..26, device firmware revision, padded with spaces (20h).
	ModelNumberRaw      [40]byte    // Word 27..46, device model number, padded with spaces (20h).
	_                   [33]uint16  // ...
	MajorVersion        uint16      // Word 80, major version number.
	MinorVersion        uint16      // Word 81, minor version number.
	_                   [3]uint16   // ...
	Word85              uint16      // Word 85, supported commands and feature sets.
	_                   uint16      // ...
	Word87              uint16      // Word 87, supported commands and feature sets.
	_                   [134]uint16 // ...
	TransportMajor      uint16      // Word 222, transport major version number.
	_                   [33]uint16  // ...
} // 512 bytes

// ATAMajorVersion returns the ATA major version from an ATA IDENTIFY command.
func (d *IdentifyDeviceData) ATAMajorVersion() (s string) {
	if (d.MajorVersion == 0) || (d.MajorVersion == 0xffff) {
		return "device does not report ATA major version"
	}

	switch utils.Log2b(uint(d.MajorVersion)) {
	case 4:
		s = "ATA/ATAPI-4"
	case 5:
		s = "ATA/ATAPI-5"
	case 6:
		s = "ATA/ATAPI-6"
	case 7:
		s = "ATA/ATAPI-7"
	case 8:
		s = "ATA8-ACS"
	case 9:
		s = "ACS-2"
	case 10:
		s = "ACS-3"
	default:
		s = fmt.Sprintf("unknown (%#04x)", d.MajorVersion)
	}

	return
}

// ATAMinorVersion returns the ATA minor version from an ATA IDENTIFY command.
func (d *IdentifyDeviceData) ATAMinorVersion() string {
	if (d.MinorVersion == 0) || (d.MinorVersion == 0xffff) {
		return "device does not report ATA minor version"
	}

	// Since the ATA minor version word is not a bitmask, we simply do a map lookup
	if s, ok := ataMinorVersions[d.MinorVersion]; ok {
		return s
	}

	return "unknown"
}

// FirmwareRevision returns the firmware revision of a device from an ATA IDENTIFY command.
func (d *IdentifyDeviceData) FirmwareRevision() []byte {
	return utils.SwapBytes(bytes.Clone(d.FirmwareRevisionRaw[:]))
}

// ModelNumber returns the model number of a device from an ATA IDENTIFY command.
func (d *IdentifyDeviceData) ModelNumber() []byte {
	return utils.SwapBytes(bytes.Clone(d.ModelNumberRaw[:]))
}

// SerialNumber returns the serial number of a device from an ATA IDENTIFY command.
func (d *IdentifyDeviceData) SerialNumber() []byte {
	return utils.SwapBytes(bytes.Clone(d.SerialNumberRaw[:]))
}

func (d *IdentifyDeviceData) Transport() (s string) {
	if (d.TransportMajor == 0) || (d.TransportMajor == 0xffff) {
		return "device does not report transport"
	}

	switch d.TransportMajor >> 12 {
	case 0x0:
		s = "Parallel ATA"
	case 0x1:
		s = "Serial ATA"

		switch utils.Log2b(uint(d.TransportMajor & 0x0fff)) {
		case 0:
			s += " ATA8-AST"
		case 1:
			s += " SATA 1.0a"
		case 2:
			s += " SATA II Ext"
		case 3:
			s += " SATA 2.5"
		case 4:
			s += " SATA 2.6"
		case 5:
			s += " SATA 3.0"
		case 6:
			s += " SATA 3.1"
		case 7:
			s += " SATA 3.2"
		default:
			s += fmt.Sprintf(" SATA (%#03x)", d.TransportMajor&0x0fff)
		}
	case 0xe:
		s = fmt.Sprintf("PCIe (%#03x)", d.TransportMajor&0x0fff)
	default:
		s = fmt.Sprintf("Unknown (%#04x)", d.TransportMajor)
	}

	return
}
