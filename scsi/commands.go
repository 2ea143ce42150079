// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// SCSI command definitions.

package scsi

import (
	"bytes"
	"fmt"
)

const (
	// SCSI commands used by this package
	SCSI_INQUIRY         = 0x12
	SCSI_ATA_PASSTHRU_16 = 0x85

	// Minimum length of standard INQUIRY response
	INQ_REPLY_LEN = 36
)

// SCSI CDB types
type CDB6 [6]byte
type CDB16 [16]byte

// InquiryResponse is the truncated response to a standard SCSI INQUIRY command.
type InquiryResponse struct {
	Peripheral   uint8 // peripheral qualifier, device type
	_            uint8
	Version      uint8
	_            [5]byte
	VendorIdent  [8]byte
	ProductIdent [16]byte
	ProductRev   [4]byte
}

func (inq InquiryResponse) String() string {
	return fmt.Sprintf("%.8s  %.16s  %.4s",
		bytes.TrimSpace(inq.VendorIdent[:]),
		bytes.TrimSpace(inq.ProductIdent[:]),
		bytes.TrimSpace(inq.ProductRev[:]))
}
