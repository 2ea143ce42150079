// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Statistic descriptor walking and decoding.

package telemetry

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/westerndigitalcorporation/smartmontools-ocp/report"
)

// decodeStatValue renders one value of a statistic data type, returning the textual form and the
// value stored in the JSON document. Integer types decode little-endian at exact widths of 1, 2,
// 4 or 8 bytes; other widths, floating point and untyped data fall back to a hex dump.
func decodeStatValue(dataType uint8, data []byte) (string, interface{}) {
	switch dataType {
	case DataTypeInt:
		switch len(data) {
		case 1:
			v := int64(int8(data[0]))
			return fmt.Sprintf("%d", v), v
		case 2:
			v := int64(int16(binary.LittleEndian.Uint16(data)))
			return fmt.Sprintf("%d", v), v
		case 4:
			v := int64(int32(binary.LittleEndian.Uint32(data)))
			return fmt.Sprintf("%d", v), v
		case 8:
			v := int64(binary.LittleEndian.Uint64(data))
			return fmt.Sprintf("%d", v), v
		}
	case DataTypeUint:
		switch len(data) {
		case 1:
			v := uint64(data[0])
			return fmt.Sprintf("%d", v), v
		case 2:
			v := uint64(binary.LittleEndian.Uint16(data))
			return fmt.Sprintf("%d", v), v
		case 4:
			v := uint64(binary.LittleEndian.Uint32(data))
			return fmt.Sprintf("%d", v), v
		case 8:
			v := binary.LittleEndian.Uint64(data)
			return fmt.Sprintf("%d", v), v
		}
	case DataTypeASCII:
		s := trimASCII(data)
		return s, s
	}

	line := hexLine(data)
	return line, line
}

// checkStatDesc validates the statistic and data type fields of a descriptor header, emitting a
// diagnostic when either is out of range. Such descriptors are skipped; the declared size still
// preserves framing.
func checkStatDesc(rpt *report.Report, hdr *StatisticHeader) (statType, dataType uint8, ok bool) {
	statType = hdr.StatisticsInfo[0] >> 4
	if statType > StatTypeCustom {
		rpt.Printf("Malformed statistics descriptor skipped - statistics type not supported\n")
		return 0, 0, false
	}

	dataType = hdr.StatisticsInfo[2] & 0xf
	if dataType > DataTypeASCII {
		rpt.Printf("Malformed statistic descriptor skipped - data type not supported\n")
		return 0, 0, false
	}

	return statType, dataType, true
}

// printStatDesc renders one statistic descriptor (header plus body) whose types have already
// passed checkStatDesc.
func printStatDesc(rpt *report.Report, node report.Node, statType, dataType uint8, desc []byte,
	indent int, res *resolver) {

	var hdr StatisticHeader
	binary.Read(bytes.NewReader(desc[:statisticHeaderSize]), binary.LittleEndian, &hdr)

	pad := strings.Repeat(" ", indent)
	body := desc[statisticHeaderSize:]

	name := res.statisticName(hdr.StatisticsID)
	rpt.Printf("%sStatistic ID             : 0x%04x, %s\n", pad, hdr.StatisticsID, name)
	node.Set("ID", name)

	rpt.Printf("%sStatistic Type           : 0x%x, %s\n", pad, statType, statTypeName(statType))
	node.Set("statistic type", statType)

	behavior := hdr.StatisticsInfo[0] & 0xf
	rpt.Printf("%sBehavior Type            : 0x%02x, %s\n", pad, behavior, behaviorName(behavior))
	node.Set("behavior type", behavior)

	unit := fmt.Sprintf("0x%02x, %s", hdr.StatisticsInfo[1], unitName(hdr.StatisticsInfo[1]))
	rpt.Printf("%sUnit                     : %s\n", pad, unit)
	node.Set("unit", unit)

	hint := (hdr.StatisticsInfo[2] >> 4) & 0x3
	rpt.Printf("%sHost Hint Type           : 0x%x, %s\n", pad, hint, hostHintName(hint))
	node.Set("host hint type", hint)

	rpt.Printf("%sData Type                : 0x%x, %s\n", pad, dataType, dataTypeName(dataType))
	node.Set("data type", dataType)

	rpt.Printf("%sStatistic Data Size      : 0x%x\n", pad, hdr.StatisticDataSize)
	node.Set("data size", hdr.StatisticDataSize)

	rpt.Printf("%sData                     : ", pad)

	switch statType {
	case StatTypeSingle:
		text, val := decodeStatValue(dataType, body)
		rpt.Printf("%s", text)
		node.Set("data", val)

	case StatTypeArray:
		if len(body) < 4 {
			rpt.Printf("truncated array statistic")
			break
		}

		elemSize := int(body[0]) + 1
		count := int(binary.LittleEndian.Uint16(body[2:4])) + 1
		data := body[4:]
		if count*elemSize > len(data) {
			count = len(data) / elemSize
		}

		rpt.Printf("[ ")
		for elem := 0; elem < count; elem++ {
			if elem > 0 {
				rpt.Printf(", ")
			}
			text, val := decodeStatValue(dataType, data[elem*elemSize:(elem+1)*elemSize])
			rpt.Printf("%s", text)
			node.AppendValue("data", val)
		}
		rpt.Printf(" ]")

	case StatTypeCustom:
		printCustomStatDesc(rpt, node, &hdr, dataType, body, indent+2, res)
	}

	rpt.Printf("\n")
}

// printCustomStatDesc dispatches the CUSTOM statistic layouts defined by the specification;
// anything else is rendered as typed data.
func printCustomStatDesc(rpt *report.Report, node report.Node, hdr *StatisticHeader,
	dataType uint8, body []byte, indent int, res *resolver) {

	switch hdr.StatisticsID {
	case StatATALog:
		rpt.Printf("\n")
		printATALogStat(rpt, node, body, indent)
	case StatSCSILog:
		rpt.Printf("\n")
		printSCSILogStat(rpt, node, body, indent)
	case StatHDDSpinup:
		rpt.Printf("\n")
		printHDDSpinupStat(rpt, node, body, indent)
	default:
		text, val := decodeStatValue(dataType, body)
		rpt.Printf("%s", text)
		node.Set("data", val)
	}
}

// Statistic 0x0002: a captured ATA log, hex-dumped page by page.
func printATALogStat(rpt *report.Report, node report.Node, body []byte, indent int) {
	pad := strings.Repeat(" ", indent)

	if len(body) < 4 {
		rpt.Printf("%sMalformed ATA log statistic - truncated", pad)
		return
	}

	logAddr := body[0]
	pageCount := int(body[1])
	initialPage := binary.LittleEndian.Uint16(body[2:4])

	rpt.Printf("%sLog Address              : %x\n", pad, logAddr)
	node.Set("log_address", logAddr)
	rpt.Printf("%sLog Page Count           : %x\n", pad, pageCount)
	node.Set("log_page_count", pageCount)
	rpt.Printf("%sInitial Log Page         : %x", pad, initialPage)
	node.Set("initial_log_page", initialPage)

	pages := body[4:]
	if pageCount*LogPageSize > len(pages) {
		pageCount = len(pages) / LogPageSize
		rpt.Printf("\n%sLog page data truncated to %d pages", pad, pageCount)
	}

	for i := 0; i < pageCount; i++ {
		rpt.Printf("\n%sLog Page 0x%04x:\n", pad, initialPage+uint16(i))
		lines := hexDumpLines(rpt, pages[i*LogPageSize:(i+1)*LogPageSize], indent+2)
		node.AppendValue("log_page", lines)
	}
}

// Statistic 0x0003: a captured SCSI log page.
func printSCSILogStat(rpt *report.Report, node report.Node, body []byte, indent int) {
	pad := strings.Repeat(" ", indent)

	if len(body) < 4 {
		rpt.Printf("%sMalformed SCSI log statistic - truncated", pad)
		return
	}

	rpt.Printf("%sLog Page                 : 0x%04x\n", pad, body[0])
	node.Set("log_page", body[0])
	rpt.Printf("%sLog Subpage              : 0x%04x\n", pad, body[1])
	node.Set("log_subpage", body[1])
	rpt.Printf("%sLog Page Data            :\n", pad)

	node.Set("log_page_data", hexDumpLines(rpt, body[4:], indent+2))
}

// Statistic 0x6006: HDD spin-up times. Zero entries mean "absent": max/min are suppressed and
// the history array ends at the first zero.
func printHDDSpinupStat(rpt *report.Report, node report.Node, body []byte, indent int) {
	pad := strings.Repeat(" ", indent)

	if len(body) < 24 {
		rpt.Printf("%sMalformed spin-up statistic - truncated", pad)
		return
	}

	if v := binary.LittleEndian.Uint16(body[0:2]); v != 0 {
		rpt.Printf("%sLifetime Spinup Max      : 0x%04x\n", pad, v)
		node.Set("lifetime_spinup_max", v)
	}
	if v := binary.LittleEndian.Uint16(body[2:4]); v != 0 {
		rpt.Printf("%sLifetime Spinup Min      : 0x%04x\n", pad, v)
		node.Set("lifetime_spinup_min", v)
	}

	rpt.Printf("%sSpinup History           :", pad)
	for i := 0; i < 10; i++ {
		v := binary.LittleEndian.Uint16(body[4+2*i : 6+2*i])
		if v == 0 {
			if i == 0 {
				rpt.Printf("None")
			}
			break
		}
		if i > 0 {
			rpt.Printf(", ")
		} else {
			rpt.Printf(" ")
		}
		rpt.Printf("0x%04x", v)
		node.AppendValue("spinup_history", v)
	}
}

// printStatistics walks a statistics region. The walk ends at a zero statistic identifier, and
// every descriptor advances the position by exactly its header plus declared body size, so one
// malformed descriptor cannot shift the framing of the rest.
func printStatistics(rpt *report.Report, parent report.Node, key string, region []byte, res *resolver) {
	idx := 0

	for off := 0; off+statisticHeaderSize <= len(region); {
		var hdr StatisticHeader
		binary.Read(bytes.NewReader(region[off:off+statisticHeaderSize]), binary.LittleEndian, &hdr)

		if hdr.StatisticsID == 0 {
			break
		}

		consumed := (2 + int(hdr.StatisticDataSize)) * 4
		if off+consumed > len(region) {
			rpt.Printf("Malformed statistic descriptor - size exceeds remaining region\n")
			break
		}

		rpt.Printf("  Statistic Descriptor %d\n", idx)

		if statType, dataType, ok := checkStatDesc(rpt, &hdr); ok {
			printStatDesc(rpt, parent.Append(key), statType, dataType, region[off:off+consumed], 4, res)
			idx++
		}

		off += consumed
	}

	rpt.Printf("\n")
}
