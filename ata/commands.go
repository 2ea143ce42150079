// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// ATA command definitions.

package ata

const (
	// ATA commands
	ATA_SMART           = 0xb0
	ATA_READ_LOG_EXT    = 0x2f
	ATA_IDENTIFY_DEVICE = 0xec

	// ATA feature register values for SMART
	SMART_READ_DATA     = 0xd0
	SMART_READ_LOG      = 0xd5
	SMART_RETURN_STATUS = 0xda

	// General purpose log addresses
	GPL_DIRECTORY               = 0x00
	GPL_CURRENT_INTERNAL_STATUS = 0x24
	GPL_SAVED_INTERNAL_STATUS   = 0x25
)
