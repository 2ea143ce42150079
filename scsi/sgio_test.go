// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package scsi

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestStructSizes(t *testing.T) {
	assert := assert.New(t)

	// Test that various structs are the size they should be
	assert.Equal(uintptr(88), unsafe.Sizeof(sgIoHdr{}))
	assert.Equal(36, binary.Size(InquiryResponse{}))
}

func TestInquiryResponseString(t *testing.T) {
	var inq InquiryResponse

	copy(inq.VendorIdent[:], "ATA     ")
	copy(inq.ProductIdent[:], "Example Disk    ")
	copy(inq.ProductRev[:], "1.0 ")

	assert.Equal(t, "ATA  Example Disk  1.0", inq.String())
}
