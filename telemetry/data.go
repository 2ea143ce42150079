// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Current Device Internal Status log (log 0x24): the telemetry data regions.

package telemetry

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/westerndigitalcorporation/smartmontools-ocp/ata"
)

// validateDataHeader checks that every non-empty region declared by the header lies within the
// readable sectors, so the region reader never requests an unreadable page.
func validateDataHeader(hdr *DataHeader, nsectors uint) error {
	regions := [4][2]uint64{
		{hdr.Statistic1StartDword, hdr.Statistic1SizeDword},
		{hdr.Statistic2StartDword, hdr.Statistic2SizeDword},
		{hdr.Event1FIFOStartDword, hdr.Event1FIFOSizeDword},
		{hdr.Event2FIFOStartDword, hdr.Event2FIFOSizeDword},
	}

	maxEnd := uint64(pageDwords) // the header itself
	for _, reg := range regions {
		if reg[1] > 0 && reg[0]+reg[1] > maxEnd {
			maxEnd = reg[0] + reg[1]
		}
	}

	if uint64(nsectors) < ceilDiv(maxEnd, pageDwords)+1 {
		return ErrHeaderInconsistent
	}

	return nil
}

// readDataRange copies an arbitrary (start, size) dword window of log 0x24 into dest. Region
// offsets are relative to byte 0 of the data header, which resides at log page 1, so the page
// holding the first requested dword is start/128 + 1.
func readDataRange(r PageReader, startDword, sizeDword uint64, dest []byte) error {
	page := make([]byte, LogPageSize)
	pageIdx := startDword/pageDwords + 1
	pageOff := startDword % pageDwords
	remaining := sizeDword

	for remaining > 0 {
		n := pageDwords - pageOff
		if remaining < n {
			n = remaining
		}

		if err := r.ReadLogPage(ata.GPL_CURRENT_INTERNAL_STATUS, 0, uint16(pageIdx), page); err != nil {
			return fmt.Errorf("read log %#02x page %d: %w", ata.GPL_CURRENT_INTERNAL_STATUS, pageIdx, err)
		}

		copy(dest[:n*4], page[pageOff*4:(pageOff+n)*4])
		dest = dest[n*4:]
		remaining -= n
		pageIdx++
		pageOff = 0
	}

	return nil
}

// readTelemetryData reads the data header and the four telemetry regions of log 0x24 into one
// contiguous payload, in declared order: statistics area 1, statistics area 2, event FIFO 1,
// event FIFO 2. Offsets within the payload follow from the accumulated region sizes.
func readTelemetryData(r PageReader, nsectors uint) (*InternalStatus, *DataHeader, []byte, error) {
	status, err := readInternalStatus(r, ata.GPL_CURRENT_INTERNAL_STATUS)
	if err != nil {
		return nil, nil, nil, err
	}

	// Area 1 starts at log page 1 with the data header at byte 0. The statistic and FIFO start
	// offsets of both data areas are relative to byte 0 of the header.
	page := make([]byte, LogPageSize)
	if err := r.ReadLogPage(ata.GPL_CURRENT_INTERNAL_STATUS, 0, 1, page); err != nil {
		return nil, nil, nil, fmt.Errorf("read log %#02x page 1: %w", ata.GPL_CURRENT_INTERNAL_STATUS, err)
	}

	var hdr DataHeader
	binary.Read(bytes.NewReader(page), binary.LittleEndian, &hdr)

	if err := validateDataHeader(&hdr, nsectors); err != nil {
		return nil, nil, nil, err
	}

	total := (hdr.Statistic1SizeDword + hdr.Statistic2SizeDword +
		hdr.Event1FIFOSizeDword + hdr.Event2FIFOSizeDword) * 4
	payload := make([]byte, total)

	regions := [4][2]uint64{
		{hdr.Statistic1StartDword, hdr.Statistic1SizeDword},
		{hdr.Statistic2StartDword, hdr.Statistic2SizeDword},
		{hdr.Event1FIFOStartDword, hdr.Event1FIFOSizeDword},
		{hdr.Event2FIFOStartDword, hdr.Event2FIFOSizeDword},
	}

	var offset uint64
	for _, reg := range regions {
		if reg[1] == 0 {
			continue
		}
		if err := readDataRange(r, reg[0], reg[1], payload[offset:]); err != nil {
			return nil, nil, nil, err
		}
		offset += reg[1] * 4
	}

	return status, &hdr, payload, nil
}

// LogPages reads the General Purpose Log Directory and returns the number of pages available for
// a log address.
func LogPages(r PageReader, logAddr uint8) (uint16, error) {
	buf := make([]byte, LogPageSize)

	if err := r.ReadLogPage(ata.GPL_DIRECTORY, 0, 0, buf); err != nil {
		return 0, fmt.Errorf("read log directory: %w", err)
	}

	return binary.LittleEndian.Uint16(buf[int(logAddr)*2:]), nil
}
