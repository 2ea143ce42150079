// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Event FIFO walking and per-class decoding.

package telemetry

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/westerndigitalcorporation/smartmontools-ocp/report"
)

// printEventDesc renders the body of one event descriptor. The class selects the structured
// payload; whatever remains afterwards is vendor-unique. For classes below 0x80 the VU remainder
// begins with a 2-byte VU event id; for vendor-unique classes the whole body is opaque data.
func printEventDesc(rpt *report.Report, node report.Node, class uint8, id [2]byte, body []byte,
	indent int, res *resolver) {

	pad := strings.Repeat(" ", indent)

	rpt.Printf("%sClass                    : 0x%02x, %s\n", pad, class, className(class))
	node.Set("Class", className(class))

	if name, ok := res.eventName(class, id); ok {
		rpt.Printf("%sId                       : 0x%04x, %s\n", pad,
			binary.LittleEndian.Uint16(id[:]), name)
		node.Set("ID", name)
	}

	switch class {
	case ClassTimestamp:
		if len(body) < 8 {
			rpt.Printf("%sMalformed timestamp event - truncated\n", pad)
			return
		}
		timestamp := binary.LittleEndian.Uint64(body[:8])
		rpt.Printf("%sTimestamp                : 0x%04x\n", pad, timestamp)
		node.Set("Timestamp", timestamp)
		body = body[8:]

	case ClassMediaWear:
		if len(body) < 12 {
			rpt.Printf("%sMalformed media wear event - truncated\n", pad)
			return
		}
		if binary.LittleEndian.Uint16(id[:]) == 0 {
			hostTB := binary.LittleEndian.Uint32(body[0:4])
			rpt.Printf("%sHost TB Written          : 0x%04x\n", pad, hostTB)
			node.Set("Host TB written", hostTB)
			mediaTB := binary.LittleEndian.Uint32(body[4:8])
			rpt.Printf("%sMedia TB Written         : 0x%04x\n", pad, mediaTB)
			node.Set("media TB written", mediaTB)
			erasedTB := binary.LittleEndian.Uint32(body[8:12])
			rpt.Printf("%sSSD Media TB Erased      : 0x%04x\n", pad, erasedTB)
			node.Set("SSD media TB erased", erasedTB)
		}
		body = body[12:]

	case ClassStatisticSnap:
		// The body is a complete statistic descriptor; no VU tail follows.
		rpt.Printf("%sStatistic Descriptor Snapshot:\n", pad)
		var hdr StatisticHeader
		binary.Read(bytes.NewReader(body[:statisticHeaderSize]), binary.LittleEndian, &hdr)
		if statType, dataType, ok := checkStatDesc(rpt, &hdr); ok {
			printStatDesc(rpt, node.Object("Statistic descriptor"), statType, dataType, body,
				indent+2, res)
		}
		return

	case ClassVirtualFIFO:
		if len(body) < 4 {
			rpt.Printf("%sMalformed virtual FIFO event - truncated\n", pad)
			return
		}
		// Marker bits 10:0 are the virtual FIFO number, bits 13:11 the data area. The FIFO name
		// is stored in the event string table keyed by the raw marker bytes.
		marker := binary.LittleEndian.Uint16(body[0:2])
		dataArea := uint8(marker >> 11 & 0x7)
		rpt.Printf("%sVirtual FIFO Data Area   : 0x%04x\n", pad, dataArea)
		node.Set("data area", dataArea)

		var markerID [2]byte
		copy(markerID[:], body[0:2])
		if name, ok := res.eventName(class, markerID); ok {
			number := marker & 0x7ff
			rpt.Printf("%sVirtual FIFO Number      : 0x%04x\n", pad, number)
			rpt.Printf("%sVirtual FIFO Name        : %s\n", pad, name)
			node.Set("virtual fifo number", number)
			node.Set("virtual fifo name", name)
		}
		body = body[4:]

	case ClassSATATransport:
		if len(body) < 28 {
			rpt.Printf("%sMalformed SATA transport event - truncated\n", pad)
			return
		}
		fis := hexLine(body[:28])
		rpt.Printf("%sFIS                      : %s\n", pad, fis)
		node.Set("FIS", fis)
		body = body[28:]
	}

	if len(body) >= 2 && class < 0x80 {
		var vuID [2]byte
		copy(vuID[:], body[0:2])
		name, _ := res.eventName(class, vuID)
		rpt.Printf("%sVU Event ID              : 0x%04x, %s\n", pad,
			binary.LittleEndian.Uint16(vuID[:]), name)
		node.Set("VU ID", binary.LittleEndian.Uint16(vuID[:]))
		body = body[2:]
	}

	if len(body) > 0 {
		vuData := hexLine(body)
		rpt.Printf("%sVU Data                  : %s\n", pad, vuData)
		node.Set("vu data", vuData)
	}
}

// printEvents walks an event FIFO. The walk ends at a zero class byte. The body length comes
// from the declared data size, except for Statistic Snapshot events, where the embedded
// statistic header carries the true length; both are checked against the remaining region
// before use, and the walk stops when framing cannot be preserved.
func printEvents(rpt *report.Report, parent report.Node, key string, region []byte, res *resolver) {
	idx := 0

	for off := 0; off+eventHeaderSize <= len(region); {
		class := region[off]
		if class == 0 {
			// End of FIFO
			break
		}

		var id [2]byte
		copy(id[:], region[off+1:off+3])
		dataSize := int(region[off+3])

		var consumed int
		if class == ClassStatisticSnap {
			// Need the statistic header in the snapshot to determine the complete length.
			if len(region)-off < eventHeaderSize+statisticHeaderSize {
				rpt.Printf("Malformed event descriptor - truncated statistic snapshot\n")
				break
			}
			var hdr StatisticHeader
			binary.Read(bytes.NewReader(region[off+eventHeaderSize:off+eventHeaderSize+statisticHeaderSize]),
				binary.LittleEndian, &hdr)
			consumed = (1 + 2 + int(hdr.StatisticDataSize)) * 4
		} else {
			consumed = (1 + dataSize) * 4
		}

		if off+consumed > len(region) {
			rpt.Printf("Malformed event descriptor - size exceeds remaining region\n")
			break
		}

		rpt.Printf("  Event Descriptor %d\n", idx)
		printEventDesc(rpt, parent.Append(key), class, id, region[off+eventHeaderSize:off+consumed], 4, res)

		idx++
		off += consumed
	}

	rpt.Printf("\n")
}
