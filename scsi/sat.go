// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// SCSI / ATA Translation functions.

package scsi

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/westerndigitalcorporation/smartmontools-ocp/ata"
	"github.com/westerndigitalcorporation/smartmontools-ocp/utils"
)

// SATDevice is a simple wrapper around an embedded SCSIDevice type, which handles sending ATA
// commands via SCSI pass-through (SCSI-ATA Translation).
type SATDevice struct {
	SCSIDevice
}

// OpenSATDevice opens a SCSI device node for ATA pass-through access.
func OpenSATDevice(name string) (*SATDevice, error) {
	d := &SATDevice{SCSIDevice{Name: name}}

	if err := d.Open(); err != nil {
		return nil, fmt.Errorf("cannot open device %s: %w", name, err)
	}

	return d, nil
}

// Inquiry sends a standard SCSI INQUIRY command to the device.
func (d *SATDevice) Inquiry() (InquiryResponse, error) {
	return d.inquiry()
}

// Identify sends an ATA IDENTIFY DEVICE command via SCSI pass-through.
func (d *SATDevice) Identify() (ata.IdentifyDeviceData, error) {
	var identBuf ata.IdentifyDeviceData

	respBuf := make([]byte, 512)

	cdb16 := CDB16{SCSI_ATA_PASSTHRU_16}
	cdb16[1] = 0x08                     // ATA protocol (4 << 1, PIO data-in)
	cdb16[2] = 0x0e                     // BYT_BLOK = 1, T_LENGTH = 2, T_DIR = 1
	cdb16[6] = 0x01                     // sector count
	cdb16[14] = ata.ATA_IDENTIFY_DEVICE // command

	if err := d.sendCDB(cdb16[:], &respBuf); err != nil {
		return identBuf, fmt.Errorf("sendCDB ATA IDENTIFY: %w", err)
	}

	binary.Read(bytes.NewBuffer(respBuf), utils.NativeEndian, &identBuf)

	return identBuf, nil
}

// ReadLogPage reads pages of a general purpose log via ATA READ LOG EXT. The features register is
// log specific and usually zero. The buffer length selects the number of 512-byte pages read,
// starting at page.
func (d *SATDevice) ReadLogPage(logAddr, features uint8, page uint16, buf []byte) error {
	if len(buf) == 0 || len(buf)%512 != 0 {
		return fmt.Errorf("invalid log buffer size %d", len(buf))
	}

	count := uint16(len(buf) / 512)

	cdb := CDB16{SCSI_ATA_PASSTHRU_16}
	cdb[1] = 0x09  // ATA protocol (4 << 1, PIO data-in), extend bit for 48-bit command
	cdb[2] = 0x0e  // BYT_BLOK = 1, T_LENGTH = 2, T_DIR = 1
	cdb[4] = features
	cdb[5] = uint8(count >> 8)
	cdb[6] = uint8(count)
	cdb[8] = logAddr               // LBA (7:0), log address
	cdb[9] = uint8(page >> 8)      // LBA (39:32), page number (15:8)
	cdb[10] = uint8(page)          // LBA (15:8), page number (7:0)
	cdb[14] = ata.ATA_READ_LOG_EXT // command

	if err := d.sendCDB(cdb[:], &buf); err != nil {
		return fmt.Errorf("sendCDB ATA READ LOG EXT: %w", err)
	}

	return nil
}
