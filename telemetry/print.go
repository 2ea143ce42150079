// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Top-level OCP telemetry log decoding and printing.

package telemetry

import (
	"github.com/westerndigitalcorporation/smartmontools-ocp/catalog"
	"github.com/westerndigitalcorporation/smartmontools-ocp/report"
)

func printInternalStatus(rpt *report.Report, parent report.Node, status *InternalStatus, current bool) {
	var node report.Node

	if current {
		rpt.Printf("Current Device Internal Status log (GP Log 0x24)\n")
		node = parent.Object("ata current device internal status")
	} else {
		rpt.Printf("Saved Device Internal Status log (GP Log 0x25)\n")
		node = parent.Object("ata saved device internal status")
	}

	rpt.Printf("  Organization ID             : 0x%08x\n", status.OrganizationID)
	node.Set("organization_id", status.OrganizationID)
	rpt.Printf("  Area 1 Last Log Page        : 0x%04x\n", status.Area1LastLogPage)
	node.Set("area1_last_log_page", status.Area1LastLogPage)
	rpt.Printf("  Area 2 Last Log Page        : 0x%04x\n", status.Area2LastLogPage)
	node.Set("area2_last_log_page", status.Area2LastLogPage)
	rpt.Printf("  Area 3 Last Log Page        : 0x%04x\n", status.Area3LastLogPage)
	node.Set("area3_last_log_page", status.Area3LastLogPage)
	rpt.Printf("  Saved Data Available        : %t\n", status.SavedDataAvailable != 0)
	node.Set("saved_data_available", status.SavedDataAvailable)
	rpt.Printf("  Saved Data Generation Number: 0x%04x\n", status.SavedDataGenerationNumber)
	node.Set("saved_data_generation_number", status.SavedDataGenerationNumber)

	reason := &status.ReasonID
	rnode := node.Object("reason id")
	rpt.Printf("  Reason ID:\n")
	rpt.Printf("    Valid Flags         : 0x%x\n", reason.ValidFlags&0xf)
	rnode.Set("valid flags", reason.ValidFlags&0xf)

	if reason.ValidFlags&ReasonErrorIDValid != 0 {
		line := hexLine(reason.ErrorID[:])
		rpt.Printf("    Error ID            : %s\n", line)
		rnode.Set("error id", line)
	}
	if reason.ValidFlags&ReasonFileIDValid != 0 {
		line := hexLine(reason.FileID[:])
		rpt.Printf("    File ID             : %s\n", line)
		rnode.Set("file id", line)
	}
	if reason.ValidFlags&ReasonLineNumberValid != 0 {
		rpt.Printf("    Line number         : 0x%04x\n", reason.LineNumber)
		rnode.Set("line number", reason.LineNumber)
	}
	if reason.ValidFlags&ReasonVUExtValid != 0 {
		line := hexLine(reason.VUReason[:])
		rpt.Printf("    VU Reason Extension : %s\n", line)
		rnode.Set("vu reason extension", line)
	}

	rpt.Printf("\n")
}

func printDataHeader(rpt *report.Report, parent report.Node, hdr *DataHeader) {
	rpt.Printf("OCP Telemetry Data Header\n")
	node := parent.Object("ocp_telemetry_data_header")

	rpt.Printf("  Major Version            : 0x%04x\n", hdr.MajorVersion)
	node.Set("major_version", hdr.MajorVersion)
	rpt.Printf("  Minor Version            : 0x%04x\n", hdr.MinorVersion)
	node.Set("minor_version", hdr.MinorVersion)

	timestamp := decodeTimestamp(hdr.Timestamp, hdr.TimestampInfo, rpt)
	rpt.Printf("  Timestamp                : 0x%04x\n", timestamp)
	node.Set("timestamp", timestamp)

	guid := guidString(hdr.GUID)
	rpt.Printf("  GUID                     : %s\n", guid)
	node.Set("guid", guid)

	rpt.Printf("  Device String Data Size  : 0x%04x\n", hdr.DeviceStringDataSize)
	node.Set("device_string_data_size", hdr.DeviceStringDataSize)

	firmware := trimASCII(hdr.FirmwareVersion[:])
	rpt.Printf("  Firmware version         : %s\n", firmware)
	node.Set("firmware_version", firmware)

	rpt.Printf("  Statistic Area 1:\n")
	rpt.Printf("    Start                  : 0x%04x\n", hdr.Statistic1StartDword)
	rpt.Printf("    Size                   : 0x%04x\n", hdr.Statistic1SizeDword)
	rpt.Printf("  Statistic Area 2:\n")
	rpt.Printf("    Start                  : 0x%04x\n", hdr.Statistic2StartDword)
	rpt.Printf("    Size                   : 0x%04x\n", hdr.Statistic2SizeDword)
	rpt.Printf("  Event FIFO 1:\n")
	rpt.Printf("    Start                  : 0x%04x\n", hdr.Event1FIFOStartDword)
	rpt.Printf("    Size                   : 0x%04x\n", hdr.Event1FIFOSizeDword)
	rpt.Printf("  Event FIFO 2:\n")
	rpt.Printf("    Start                  : 0x%04x\n", hdr.Event2FIFOStartDword)
	rpt.Printf("    Size                   : 0x%04x\n", hdr.Event2FIFOSizeDword)
	rpt.Printf("\n")
}

func printStringsHeader(rpt *report.Report, parent report.Node, hdr *StringsHeader, tables *StringTables) {
	rpt.Printf("OCP Telemetry Strings Header\n")
	node := parent.Object("ocp_telemetry_strings_header")

	rpt.Printf("  Log Page Version         : 0x%04x\n", hdr.LogPageVersion)
	node.Set("log_page_version", hdr.LogPageVersion)

	guid := guidString(hdr.GUID)
	rpt.Printf("  GUID                     : %s\n", guid)
	node.Set("guid", guid)

	rpt.Printf("  Statistics ID String Table:\n")
	rpt.Printf("    Start                  : 0x%04x\n", hdr.StatIDTableStart)
	rpt.Printf("    Size                   : 0x%04x\n", hdr.StatIDTableSize)
	rpt.Printf("  Event String Table:\n")
	rpt.Printf("    Start                  : 0x%04x\n", hdr.EventTableStart)
	rpt.Printf("    Size                   : 0x%04x\n", hdr.EventTableSize)
	rpt.Printf("  VU Event String Table:\n")
	rpt.Printf("    Start                  : 0x%04x\n", hdr.VUEventTableStart)
	rpt.Printf("    Size                   : 0x%04x\n", hdr.VUEventTableSize)
	rpt.Printf("  ASCII Table:\n")
	rpt.Printf("    Start                  : 0x%04x\n", hdr.ASCIITableStart)
	rpt.Printf("    Size                   : 0x%04x\n", hdr.ASCIITableSize)

	rpt.Printf("  Event FIFO 1 Name        : %s\n", tables.FIFO1Name)
	node.Set("event fifo 1 name", tables.FIFO1Name)
	rpt.Printf("  Event FIFO 2 Name        : %s\n", tables.FIFO2Name)
	node.Set("event fifo 2 name", tables.FIFO2Name)
	rpt.Printf("\n")
}

// PrintLog reads and decodes both OCP telemetry logs of a device and emits the report. The
// string tables (log 0x25) are read first so statistic and event identifiers resolve while
// decoding the data log (0x24). nsectors24 and nsectors25 are the page counts the device
// advertises for the two logs; headers declaring regions beyond them are rejected.
func PrintLog(r PageReader, nsectors24, nsectors25 uint, cat *catalog.Catalog, rpt *report.Report) error {
	status, stringsHdr, tables, err := readStringState(r, nsectors25, rpt)
	if err != nil {
		return err
	}

	strNode := rpt.Root().Object("ocp_telemetry_strings")
	printInternalStatus(rpt, strNode, status, false)
	printStringsHeader(rpt, strNode, stringsHdr, tables)

	status, dataHdr, payload, err := readTelemetryData(r, nsectors24)
	if err != nil {
		return err
	}

	dataNode := rpt.Root().Object("ocp_telemetry_data")
	printInternalStatus(rpt, dataNode, status, true)
	printDataHeader(rpt, dataNode, dataHdr)

	res := &resolver{cat: cat, str: tables}

	var offset uint64
	if n := dataHdr.Statistic1SizeDword; n > 0 {
		rpt.Printf("OCP Statistics Area 1\n")
		printStatistics(rpt, dataNode, "statistic_area_1", payload[offset:offset+n*4], res)
		offset += n * 4
	}
	if n := dataHdr.Statistic2SizeDword; n > 0 {
		rpt.Printf("OCP Statistics Area 2\n")
		printStatistics(rpt, dataNode, "statistic_area_2", payload[offset:offset+n*4], res)
		offset += n * 4
	}
	if n := dataHdr.Event1FIFOSizeDword; n > 0 {
		fifoNode := dataNode.Object("event_fifo_1")
		rpt.Printf("OCP Event Fifo 1")
		if tables.FIFO1Name != "" {
			rpt.Printf(": %s", tables.FIFO1Name)
			fifoNode.Set("name", tables.FIFO1Name)
		}
		rpt.Printf("\n")
		printEvents(rpt, fifoNode, "events", payload[offset:offset+n*4], res)
		offset += n * 4
	}
	if n := dataHdr.Event2FIFOSizeDword; n > 0 {
		fifoNode := dataNode.Object("event_fifo_2")
		rpt.Printf("OCP Event Fifo 2")
		if tables.FIFO2Name != "" {
			rpt.Printf(": %s", tables.FIFO2Name)
			fifoNode.Set("name", tables.FIFO2Name)
		}
		rpt.Printf("\n")
		printEvents(rpt, fifoNode, "events", payload[offset:offset+n*4], res)
	}

	return nil
}
