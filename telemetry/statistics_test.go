// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package telemetry

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/Jeffail/gabs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/westerndigitalcorporation/smartmontools-ocp/catalog"
	"github.com/westerndigitalcorporation/smartmontools-ocp/report"
)

// statDesc builds a statistic descriptor with N/A behavior, unit and host hint.
func statDesc(id uint16, statType, dataType uint8, body []byte) []byte {
	desc := make([]byte, statisticHeaderSize+len(body))
	binary.LittleEndian.PutUint16(desc[0:], id)
	desc[2] = statType << 4
	desc[4] = dataType
	binary.LittleEndian.PutUint16(desc[6:], uint16(len(body)/4))
	copy(desc[8:], body)
	return desc
}

func testResolver() *resolver {
	return &resolver{cat: catalog.Builtin(), str: &StringTables{}}
}

// runStatistics walks a region and returns the text output and parsed JSON document.
func runStatistics(t *testing.T, region []byte) (string, *gabs.Container) {
	var buf bytes.Buffer
	rpt := report.New(&buf)

	printStatistics(rpt, rpt.Root(), "stats", region, testResolver())

	doc, err := gabs.ParseJSON([]byte(rpt.JSON()))
	require.NoError(t, err)

	return buf.String(), doc
}

func TestStatisticSingle(t *testing.T) {
	assert := assert.New(t)

	body := make([]byte, 4)
	binary.LittleEndian.PutUint32(body, 42)
	region := append(statDesc(0x2003, StatTypeSingle, DataTypeUint, body), make([]byte, 8)...)

	text, doc := runStatistics(t, region)

	assert.Contains(text, "Statistic Descriptor 0")
	assert.Contains(text, "Statistic ID             : 0x2003, Power-on Hours Count")
	assert.Contains(text, "Statistic Type           : 0x0, Single")
	assert.Contains(text, "Statistic Data Size      : 0x1")
	assert.Contains(text, "Data                     : 42")
	assert.NotContains(text, "Statistic Descriptor 1")

	assert.Equal(float64(42), doc.Path("stats").Index(0).Path("data").Data())
}

func TestStatisticArray(t *testing.T) {
	assert := assert.New(t)

	// element_size = 3 and number_of_elements = 4 are 0-indexed: five 4-byte values
	body := make([]byte, 4+5*4)
	body[0] = 3
	binary.LittleEndian.PutUint16(body[2:], 4)
	for i := 0; i < 5; i++ {
		binary.LittleEndian.PutUint32(body[4+i*4:], uint32(i+1))
	}
	region := append(statDesc(0x4003, StatTypeArray, DataTypeUint, body), make([]byte, 8)...)

	text, doc := runStatistics(t, region)

	assert.Contains(text, "Statistic ID             : 0x4003, Erase Count")
	assert.Contains(text, "Data                     : [ 1, 2, 3, 4, 5 ]")

	got := doc.Path("stats").Index(0).Path("data").Data()
	want := []interface{}{1.0, 2.0, 3.0, 4.0, 5.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("array data mismatch (-want +got):\n%s", diff)
	}
}

func TestStatisticASCII(t *testing.T) {
	body := []byte("FW42    ")
	region := append(statDesc(0x202a, StatTypeSingle, DataTypeASCII, body), make([]byte, 8)...)

	text, doc := runStatistics(t, region)

	assert.Contains(t, text, "Data                     : FW42")
	assert.Equal(t, "FW42", doc.Path("stats").Index(0).Path("data").Data())
}

func TestStatisticHDDSpinup(t *testing.T) {
	assert := assert.New(t)

	// History truncates at the first zero entry
	body := make([]byte, 24)
	binary.LittleEndian.PutUint16(body[0:], 0x0050) // max
	binary.LittleEndian.PutUint16(body[2:], 0x0030) // min
	binary.LittleEndian.PutUint16(body[4:], 0x0040)
	binary.LittleEndian.PutUint16(body[6:], 0x0041)
	region := append(statDesc(StatHDDSpinup, StatTypeCustom, DataTypeNA, body), make([]byte, 8)...)

	text, doc := runStatistics(t, region)

	assert.Contains(text, "Statistic ID             : 0x6006, Spinup Times")
	assert.Contains(text, "Lifetime Spinup Max      : 0x0050")
	assert.Contains(text, "Lifetime Spinup Min      : 0x0030")
	assert.Contains(text, "Spinup History           : 0x0040, 0x0041")
	assert.NotContains(text, "0x0042")

	hist, err := doc.Path("stats").Index(0).Path("spinup_history").Children()
	require.NoError(t, err)
	assert.Len(hist, 2)
}

func TestStatisticHDDSpinupAbsent(t *testing.T) {
	assert := assert.New(t)

	// All-zero spin-up data: max / min suppressed, history reads "None"
	region := append(statDesc(StatHDDSpinup, StatTypeCustom, DataTypeNA, make([]byte, 24)),
		make([]byte, 8)...)

	text, _ := runStatistics(t, region)

	assert.NotContains(text, "Lifetime Spinup Max")
	assert.NotContains(text, "Lifetime Spinup Min")
	assert.Contains(text, "Spinup History           :None")
}

func TestStatisticSCSILogPage(t *testing.T) {
	assert := assert.New(t)

	body := make([]byte, 12)
	body[0] = 0x19 // log page
	body[1] = 0x02 // subpage
	copy(body[4:], []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04})
	region := append(statDesc(StatSCSILog, StatTypeCustom, DataTypeNA, body), make([]byte, 8)...)

	text, doc := runStatistics(t, region)

	assert.Contains(text, "Log Page                 : 0x0019")
	assert.Contains(text, "Log Subpage              : 0x0002")
	assert.Contains(text, "Log Page Data            :")
	assert.Contains(text, "de ad be ef")

	lines, err := doc.Path("stats").Index(0).Path("log_page_data").Children()
	require.NoError(t, err)
	assert.Len(lines, 1)
}

func TestStatisticMalformedSkipped(t *testing.T) {
	assert := assert.New(t)

	// Statistic type 3 is out of range; the walker skips it by its declared size and the
	// following descriptor still parses.
	bad := statDesc(0x2001, 3, DataTypeUint, make([]byte, 4))

	good := make([]byte, 4)
	binary.LittleEndian.PutUint32(good, 7)
	region := append(bad, statDesc(0x2004, StatTypeSingle, DataTypeUint, good)...)
	region = append(region, make([]byte, 8)...)

	text, doc := runStatistics(t, region)

	assert.Contains(text, "Malformed statistics descriptor skipped - statistics type not supported")
	assert.Contains(text, "Statistic ID             : 0x2004, Power-on Cycle Count")
	assert.Contains(text, "Data                     : 7")

	// Only the valid descriptor lands in the document
	descs, err := doc.Path("stats").Children()
	require.NoError(t, err)
	assert.Len(descs, 1)
}

func TestStatisticOversizedStopsWalk(t *testing.T) {
	assert := assert.New(t)

	// A descriptor declaring more body than the region holds cannot preserve framing
	region := make([]byte, statisticHeaderSize)
	binary.LittleEndian.PutUint16(region[0:], 0x2001)
	binary.LittleEndian.PutUint16(region[6:], 100)

	text, _ := runStatistics(t, region)

	assert.Contains(text, "Malformed statistic descriptor - size exceeds remaining region")
	assert.NotContains(text, "Statistic ID")
}

func TestDecodeStatValueWidths(t *testing.T) {
	assert := assert.New(t)

	text, val := decodeStatValue(DataTypeInt, []byte{0xff})
	assert.Equal("-1", text)
	assert.Equal(int64(-1), val)

	text, val = decodeStatValue(DataTypeUint, []byte{0x34, 0x12})
	assert.Equal("4660", text)
	assert.Equal(uint64(0x1234), val)

	// Unsupported widths fall back to a hex dump
	text, _ = decodeStatValue(DataTypeUint, []byte{0x01, 0x02, 0x03})
	assert.Equal("0x01 0x02 0x03", text)

	// FP and NA are always hex dumped
	text, _ = decodeStatValue(DataTypeFP, []byte{0xaa, 0xbb, 0xcc, 0xdd})
	assert.Equal("0xaa 0xbb 0xcc 0xdd", text)
}

func TestStatisticATALog(t *testing.T) {
	assert := assert.New(t)

	// One captured 512-byte log page
	body := make([]byte, 4+LogPageSize)
	body[0] = 0x24 // log address
	body[1] = 1    // page count
	binary.LittleEndian.PutUint16(body[2:], 5)
	copy(body[4:], "OCPT")
	region := append(statDesc(StatATALog, StatTypeCustom, DataTypeNA, body), make([]byte, 8)...)

	text, doc := runStatistics(t, region)

	assert.Contains(text, "Statistic ID             : 0x0002, ATA Log")
	assert.Contains(text, "Log Address              : 24")
	assert.Contains(text, "Log Page Count           : 1")
	assert.Contains(text, "Log Page 0x0005:")
	assert.Contains(text, "4f 43 50 54")

	pages, err := doc.Path("stats").Index(0).Path("log_page").Children()
	require.NoError(t, err)
	require.Len(t, pages, 1)

	lines, err := pages[0].Children()
	require.NoError(t, err)
	assert.Len(lines, 32)
}
