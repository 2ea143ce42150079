// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package telemetry

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/westerndigitalcorporation/smartmontools-ocp/ata"
	"github.com/westerndigitalcorporation/smartmontools-ocp/catalog"
	"github.com/westerndigitalcorporation/smartmontools-ocp/report"
)

// internalStatusPage builds page 0 of an internal status log.
func internalStatusPage(area1 uint16) []byte {
	page := make([]byte, LogPageSize)
	binary.LittleEndian.PutUint32(page[4:], 0x1af4) // organization id
	binary.LittleEndian.PutUint16(page[8:], area1)
	return page
}

// stringsHeaderPage builds page 1 of log 0x25: the strings header with the given table layout,
// followed by whatever the caller appends.
func stringsHeaderPage(statStart, statSize, evStart, evSize, vuStart, vuSize, asciiStart, asciiSize uint64) []byte {
	page := make([]byte, LogPageSize)
	page[0] = 1 // log page version
	binary.LittleEndian.PutUint64(page[64:], statStart)
	binary.LittleEndian.PutUint64(page[72:], statSize)
	binary.LittleEndian.PutUint64(page[80:], evStart)
	binary.LittleEndian.PutUint64(page[88:], evSize)
	binary.LittleEndian.PutUint64(page[96:], vuStart)
	binary.LittleEndian.PutUint64(page[104:], vuSize)
	binary.LittleEndian.PutUint64(page[112:], asciiStart)
	binary.LittleEndian.PutUint64(page[120:], asciiSize)
	copy(page[128:144], "fifo one        ")
	copy(page[144:160], "fifo two        ")
	return page
}

func statIDEntry(id uint16, asciiLen uint8, asciiOffset uint64) []byte {
	entry := make([]byte, stringEntrySize)
	binary.LittleEndian.PutUint16(entry[0:], id)
	entry[3] = asciiLen
	binary.LittleEndian.PutUint64(entry[4:], asciiOffset)
	return entry
}

func eventIDEntry(class uint8, id [2]byte, asciiLen uint8, asciiOffset uint64) []byte {
	entry := make([]byte, stringEntrySize)
	entry[0] = class
	entry[1] = id[0]
	entry[2] = id[1]
	entry[3] = asciiLen
	binary.LittleEndian.PutUint64(entry[4:], asciiOffset)
	return entry
}

func TestReadStringState(t *testing.T) {
	assert := assert.New(t)

	// One stat id entry, one event entry, a two-dword ASCII pool holding both names
	page := stringsHeaderPage(108, 4, 112, 4, 0, 0, 116, 2)
	copy(page[432:], statIDEntry(0x8001, 4, 0))
	copy(page[448:], eventIDEntry(0xc0, [2]byte{0x01, 0x80}, 3, 4))
	copy(page[464:], "TempEvt ")

	dev := newFakeDevice()
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 0, internalStatusPage(1))
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 1, page)

	status, hdr, tables, err := readStringState(dev, 2, report.New(nil))
	require.NoError(t, err)

	assert.Equal(uint16(1), status.Area1LastLogPage)
	assert.Equal(uint64(4), hdr.StatIDTableSize)
	assert.Equal("fifo one", tables.FIFO1Name)
	assert.Equal("fifo two", tables.FIFO2Name)
	assert.Len(tables.StatID, 1)
	assert.Len(tables.Event, 1)

	res := &resolver{cat: catalog.Builtin(), str: tables}
	assert.Equal("Temp", res.statisticName(0x8001))

	name, ok := res.eventName(0xc0, [2]byte{0x01, 0x80})
	assert.True(ok)
	assert.Equal("Evt", name)
}

func TestReadStringStateMultiPage(t *testing.T) {
	assert := assert.New(t)

	// Eight stat id entries (32 dwords): five fill the remainder of page 1, three continue on
	// page 2, followed by a four-dword ASCII pool.
	page1 := stringsHeaderPage(108, 32, 0, 0, 0, 0, 140, 4)
	for i := 0; i < 5; i++ {
		copy(page1[432+i*16:], statIDEntry(uint16(0x8000+i), 2, uint64(i*2)))
	}

	page2 := make([]byte, LogPageSize)
	for i := 5; i < 8; i++ {
		copy(page2[(i-5)*16:], statIDEntry(uint16(0x8000+i), 2, uint64(i*2)))
	}
	copy(page2[48:], "n0n1n2n3n4n5n6n7")

	dev := newFakeDevice()
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 0, internalStatusPage(2))
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 1, page1)
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 2, page2)

	_, _, tables, err := readStringState(dev, 3, report.New(nil))
	require.NoError(t, err)

	assert.Len(tables.StatID, 8)
	assert.Len(tables.ASCII, 16)

	res := &resolver{cat: catalog.Builtin(), str: tables}
	assert.Equal("n0", res.statisticName(0x8000))
	assert.Equal("n7", res.statisticName(0x8007))
}

func TestReadStringStateEmptyTables(t *testing.T) {
	assert := assert.New(t)

	dev := newFakeDevice()
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 0, internalStatusPage(1))
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 1, stringsHeaderPage(0, 0, 0, 0, 0, 0, 0, 0))

	_, _, tables, err := readStringState(dev, 2, report.New(nil))
	require.NoError(t, err)

	assert.Empty(tables.StatID)
	assert.Empty(tables.Event)
	assert.Empty(tables.ASCII)
}

func TestReadStringStateErrors(t *testing.T) {
	assert := assert.New(t)

	// Empty log
	dev := newFakeDevice()
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 0, internalStatusPage(0))

	_, _, _, err := readStringState(dev, 2, report.New(nil))
	assert.ErrorIs(err, ErrEmptyLog)

	// Declared tables exceed the readable sectors
	dev = newFakeDevice()
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 0, internalStatusPage(1))
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 1, stringsHeaderPage(108, 512, 0, 0, 0, 0, 0, 0))

	_, _, _, err = readStringState(dev, 2, report.New(nil))
	assert.ErrorIs(err, ErrHeaderInconsistent)

	// A table size that cannot hold whole 16-byte entries
	dev = newFakeDevice()
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 0, internalStatusPage(1))
	dev.setPage(ata.GPL_SAVED_INTERNAL_STATUS, 1, stringsHeaderPage(108, 3, 0, 0, 0, 0, 0, 0))

	_, _, _, err = readStringState(dev, 2, report.New(nil))
	assert.ErrorIs(err, ErrCorruptStringTable)
}

func TestASCIIStringBounds(t *testing.T) {
	assert := assert.New(t)

	tables := &StringTables{ASCII: []byte("0123456789")}

	s, ok := tables.ASCIIString(4, 4)
	assert.True(ok)
	assert.Equal("4567", s)

	// offset + length must stay within the pool
	_, ok = tables.ASCIIString(8, 4)
	assert.False(ok)
}
