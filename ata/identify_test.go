// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package ata

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyDeviceDataSize(t *testing.T) {
	assert.Equal(t, 512, binary.Size(IdentifyDeviceData{}))
}

func TestIdentifyStrings(t *testing.T) {
	assert := assert.New(t)

	var ident IdentifyDeviceData

	// ATA identification strings store each 16-bit word with its characters reversed
	copy(ident.ModelNumberRaw[:], "XEMALP EIDKS")
	copy(ident.SerialNumberRaw[:], "ZA1032  ")
	copy(ident.FirmwareRevisionRaw[:], "WF.1.0 2")

	assert.Equal("EXAMPLE DISK", string(ident.ModelNumber()[:12]))
	assert.Equal("AZ0123", string(ident.SerialNumber()[:6]))
	assert.Equal("FW1.0.2", string(ident.FirmwareRevision()[:7]))
}

func TestIdentifyVersions(t *testing.T) {
	assert := assert.New(t)

	ident := IdentifyDeviceData{MajorVersion: 1 << 10, MinorVersion: 0x006d}

	assert.Equal("ACS-3", ident.ATAMajorVersion())
	assert.Equal("ACS-3 T13/2161-D revision 5", ident.ATAMinorVersion())

	ident = IdentifyDeviceData{}
	assert.Equal("device does not report ATA major version", ident.ATAMajorVersion())
	assert.Equal("device does not report ATA minor version", ident.ATAMinorVersion())
}

func TestIdentifyTransport(t *testing.T) {
	ident := IdentifyDeviceData{TransportMajor: 0x1<<12 | 1<<5}

	assert.Equal(t, "Serial ATA SATA 3.0", ident.Transport())
}
