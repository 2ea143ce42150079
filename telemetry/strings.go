// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Saved Device Internal Status log (log 0x25): the telemetry string tables.

package telemetry

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/westerndigitalcorporation/smartmontools-ocp/ata"
	"github.com/westerndigitalcorporation/smartmontools-ocp/report"
)

// StringTables holds the device-supplied identifier names from log 0x25. Entries are value
// copies; their ASCII offsets and lengths reference the owned ASCII pool.
type StringTables struct {
	StatID    map[uint16]StatIDStringEntry
	Event     map[uint32]EventIDStringEntry
	ASCII     []byte
	FIFO1Name string
	FIFO2Name string
}

// EventKey builds the 24-bit composite key used by the event string map. The two identifier
// bytes enter in raw on-wire order; callers holding a uint16 event id must repack it the same
// way to hit the map.
func EventKey(class uint8, id [2]byte) uint32 {
	return uint32(class)<<16 | uint32(id[1])<<8 | uint32(id[0])
}

// ASCIIString copies a referenced substring out of the ASCII pool, reporting whether the
// reference was in bounds.
func (t *StringTables) ASCIIString(offset uint64, length uint8) (string, bool) {
	end := offset + uint64(length)
	if end > uint64(len(t.ASCII)) {
		return "", false
	}

	return string(t.ASCII[offset:end]), true
}

func parseStatIDStrings(data []byte, t *StringTables) error {
	if len(data)%stringEntrySize != 0 {
		return ErrCorruptStringTable
	}

	for off := 0; off < len(data); off += stringEntrySize {
		var entry StatIDStringEntry
		binary.Read(bytes.NewReader(data[off:off+stringEntrySize]), binary.LittleEndian, &entry)
		t.StatID[entry.VUStatisticID] = entry
	}

	return nil
}

func parseEventStrings(data []byte, t *StringTables) error {
	if len(data)%stringEntrySize != 0 {
		return ErrCorruptStringTable
	}

	for off := 0; off < len(data); off += stringEntrySize {
		var entry EventIDStringEntry
		binary.Read(bytes.NewReader(data[off:off+stringEntrySize]), binary.LittleEndian, &entry)
		t.Event[EventKey(entry.DbgClass, entry.ID)] = entry
	}

	return nil
}

// readInternalStatus reads page 0 of an internal status log and rejects empty logs.
func readInternalStatus(r PageReader, logAddr uint8) (*InternalStatus, error) {
	buf := make([]byte, LogPageSize)

	if err := r.ReadLogPage(logAddr, 0, 0, buf); err != nil {
		return nil, fmt.Errorf("read log %#02x page 0: %w", logAddr, err)
	}

	var status InternalStatus
	binary.Read(bytes.NewReader(buf), binary.LittleEndian, &status)

	if status.Area1LastLogPage == 0 {
		return nil, ErrEmptyLog
	}

	return &status, nil
}

// readStringState reads the strings header and the four string tables from log 0x25.
//
// The header declares each table with an explicit (start, size) pair, but the tables are
// contiguous in declared order starting right after the header, so the reader tracks a current
// dword position and dispatches whole page windows to whichever table the position falls in.
// Each window is the smaller of the dwords left in the page and the dwords left in the current
// table; table boundaries within a page simply produce a second dispatch.
func readStringState(r PageReader, nsectors uint, rpt *report.Report) (*InternalStatus, *StringsHeader, *StringTables, error) {
	status, err := readInternalStatus(r, ata.GPL_SAVED_INTERNAL_STATUS)
	if err != nil {
		return nil, nil, nil, err
	}

	// The strings header occupies the first 432 bytes of log page 1. The remaining 80 bytes
	// (20 dwords) are the first slice of the table region.
	page := make([]byte, LogPageSize)
	if err := r.ReadLogPage(ata.GPL_SAVED_INTERNAL_STATUS, 0, 1, page); err != nil {
		return nil, nil, nil, fmt.Errorf("read log %#02x page 1: %w", ata.GPL_SAVED_INTERNAL_STATUS, err)
	}

	var hdr StringsHeader
	binary.Read(bytes.NewReader(page), binary.LittleEndian, &hdr)

	dwordsToRead := hdr.StatIDTableSize + hdr.EventTableSize + hdr.VUEventTableSize + hdr.ASCIITableSize

	if uint64(nsectors) < ceilDiv(dwordsToRead+stringsHeaderDwords, pageDwords)+1 {
		return nil, nil, nil, ErrHeaderInconsistent
	}

	tables := &StringTables{
		StatID:    make(map[uint16]StatIDStringEntry),
		Event:     make(map[uint32]EventIDStringEntry),
		FIFO1Name: trimASCII(hdr.EventFIFO1Name[:]),
		FIFO2Name: trimASCII(hdr.EventFIFO2Name[:]),
	}

	if hdr.ASCIITableSize > 0 {
		tables.ASCII = make([]byte, hdr.ASCIITableSize*4)
	}

	within := func(pos, start, size uint64) bool {
		return size > 0 && pos >= start && pos < start+size
	}

	pos := uint64(stringsHeaderDwords)
	dwordsInPage := uint64(pageDwords - stringsHeaderDwords)
	window := page[stringsHeaderDwords*4:]
	pageIdx := uint16(1)
	asciiOffset := uint64(0)

	for dwordsToRead > 0 {
		var tableEnd uint64

		switch {
		case within(pos, hdr.StatIDTableStart, hdr.StatIDTableSize):
			tableEnd = hdr.StatIDTableStart + hdr.StatIDTableSize
		case within(pos, hdr.EventTableStart, hdr.EventTableSize):
			tableEnd = hdr.EventTableStart + hdr.EventTableSize
		case within(pos, hdr.VUEventTableStart, hdr.VUEventTableSize):
			tableEnd = hdr.VUEventTableStart + hdr.VUEventTableSize
		case within(pos, hdr.ASCIITableStart, hdr.ASCIITableSize):
			tableEnd = hdr.ASCIITableStart + hdr.ASCIITableSize
		default:
			// Position falls in no declared table. Keep what was accumulated.
			rpt.Printf("Ran out of space before all dwords were read\n")
			return status, &hdr, tables, nil
		}

		consumed := dwordsInPage
		if pos+consumed > tableEnd {
			consumed = tableEnd - pos
		}
		chunk := window[:consumed*4]

		switch {
		case within(pos, hdr.StatIDTableStart, hdr.StatIDTableSize):
			err = parseStatIDStrings(chunk, tables)
		case within(pos, hdr.EventTableStart, hdr.EventTableSize):
			err = parseEventStrings(chunk, tables)
		case within(pos, hdr.VUEventTableStart, hdr.VUEventTableSize):
			err = parseEventStrings(chunk, tables)
		default:
			copy(tables.ASCII[asciiOffset:], chunk)
			asciiOffset += consumed * 4
		}
		if err != nil {
			return nil, nil, nil, err
		}

		pos += consumed
		window = window[consumed*4:]
		dwordsToRead -= consumed
		dwordsInPage -= consumed
		if dwordsInPage > 0 {
			continue
		}

		if dwordsToRead > 0 {
			dwordsInPage = dwordsToRead
			if dwordsInPage > pageDwords {
				dwordsInPage = pageDwords
			}
			pageIdx++
			if err := r.ReadLogPage(ata.GPL_SAVED_INTERNAL_STATUS, 0, pageIdx, page); err != nil {
				return nil, nil, nil, fmt.Errorf("read log %#02x page %d: %w",
					ata.GPL_SAVED_INTERNAL_STATUS, pageIdx, err)
			}
			window = page
		}
	}

	return status, &hdr, tables, nil
}
