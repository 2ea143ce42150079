// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Built-in identifier names from the OCP Datacenter SAS-SATA Device Specification v1.5.

package catalog

// Sections 5.2 (generic), 5.3 (SSD) and 5.4 (HDD) statistic identifiers.
var builtinStatistics = map[uint16]string{
	0x0002: "ATA Log",
	0x0003: "SCSI Log Page",

	0x2001: "Reallocated Block Count",
	0x2002: "Pending Defects Count",
	0x2003: "Power-on Hours Count",
	0x2004: "Power-on Cycle Count",
	0x2005: "Spare Blocks Used",
	0x2006: "Spare Blocks Remaining",
	0x2007: "Unexpected Power Loss Count",
	0x2008: "Current Temperature",
	0x2009: "Minimum Lifetime Temperature",
	0x200a: "Maximum Lifetime Temperature",
	0x200b: "Uncorrectable Read Error Count",
	0x200c: "Background Uncorrectable Read Error Count",
	0x200d: "Interface CRC Error Count",
	0x200e: "Volatile Memory Backup Source Failure",
	0x200f: "Read Only Mode",
	0x2010: "Host Write Commands",
	0x2011: "Host Read Commands",
	0x2012: "Logical Blocks Read",
	0x2013: "Logical Blocks Written",
	0x2014: "Total Media Writes",
	0x2015: "Total Media Reads",
	0x2016: "Soft ECC Error Count",
	0x2017: "Host Trim/Unmap Commands",
	0x2018: "End-to-end Detected Errors",
	0x2019: "End-to-end Corrected Errors",
	0x201a: "Unaligned I/O count",
	0x201b: "Security version number",
	0x201c: "Thermal Throttling Status",
	0x201d: "Thermal Throttling Count",
	0x201e: "DSS Specification Version",
	0x201f: "Incomplete Shutdown Count",
	0x2020: "Percent Free Blocks",
	0x2021: "Lowest Permitted Firmware Revision",
	0x2022: "Maximum Peak Power Capability",
	0x2023: "Current Maximum Average Power",
	0x2024: "Lifetime Power Consumed",
	0x2025: "Power Changes",
	0x2026: "Phy Reinitialization Count",
	0x2027: "Secondary Phy Reinitialization Count",
	0x2028: "Command Timeouts",
	0x2029: "Hardware Revision",
	0x202a: "Firmware Revision",

	0x4001: "Raw Capacity",
	0x4002: "User Capacity",
	0x4003: "Erase Count",
	0x4004: "Erase Fail Count",
	0x4005: "Maximum Erase Count",
	0x4006: "Average Erase Count",
	0x4007: "Program Fail Count",
	0x4008: "XOR Recovery Count",
	0x4009: "Percent Device Life Remaining",
	0x400a: "Lifetime Erase Count",
	0x400b: "Bad User NAND Blocks",
	0x400c: "Bad System NAND Blocks",
	0x400d: "Minimum Erase Count",
	0x400e: "Power Loss Protection Start Count",
	0x400f: "System Data Percent Used",
	0x4010: "Power Loss Protection Health",
	0x4011: "Endurance Estimate",
	0x4012: "Percent User Spare Available",
	0x4013: "Percent System Spare Available",
	0x4014: "Total Media Dies",
	0x4015: "Media Die Failure Tolerance",
	0x4016: "Media Dies Offline",
	0x4017: "System Area Program Fail Count",
	0x4018: "System Area Program Fail Percentage Remaining",
	0x4019: "System Area Uncorrectable Read Error Count",
	0x401a: "System Area Uncorrectable Read Percentage Remaining",
	0x401b: "System Area Erase Fail Count",
	0x401c: "System Area Erase Fail Percentage Remaining",

	0x6001: "Start/Stop Count",
	0x6002: "Load Cycle Count",
	0x6003: "Shock Overlimit Count",
	0x6004: "Head Flying Hours",
	0x6005: "Free Fall Events Count",
	0x6006: "Spinup Times",
}

// Per-class event identifiers, section 5.5. Boot Sequence (class 0x05) has two disjoint ranges:
// 0x000-0x003 for SSDs and 0x100-0x103 for HDDs.
var builtinEvents = map[uint8]map[uint16]string{
	0x01: { // Timestamp
		0x0000: "Host Initiated Timestamp",
		0x0001: "Firmware Initiated Timestamp",
		0x0002: "Obsolete ID (0x02)",
	},
	0x04: { // Reset
		0x0000: "Main Power Cycle",
		0x0001: "SATA - SRST",
		0x0002: "SATA - COMRESET",
		0x0003: "SAS - Hard Reset",
		0x0004: "SAS - COMINIT",
		0x0005: "SAS - DWORD Synchronization Loss",
		0x0006: "SAS - SPL Packet Synchronization Loss",
		0x0007: "SAS - Receive Identify Timeout Timer Expired",
		0x0008: "SAS - Hot-plug Timeout",
	},
	0x05: { // Boot Sequence
		0x0000: "Main Firmware Boot Complete",
		0x0001: "FTL Load From NVM Complete",
		0x0002: "FTL Rebuild Started",
		0x0003: "FTL Ready",
		0x0100: "Main Firmware Boot Complete",
		0x0101: "Spin-up Start",
		0x0102: "Spin-up Complete",
		0x0103: "Device Ready",
	},
	0x06: { // Firmware Assert
		0x0000: "Assert in SAS, SCSI, SATA or ATA Processing Code",
		0x0001: "Assert in Media Code",
		0x0002: "Assert in Security Code",
		0x0003: "Assert in Background Services Code",
		0x0004: "FTL Rebuild Failed",
		0x0005: "FTL Data Mismatch",
		0x0006: "Assert in Bad Block Relocation Code",
		0x0007: "Assert in Other Code",
	},
	0x07: { // Temperature
		0x0000: "Temperature decrease ceased thermal throttling",
		0x0001: "Temperature increase commenced thermal throttling",
		0x0002: "Temperature increase caused thermal shutdown",
	},
	0x08: { // Media
		0x0000: "XOR (or equivalent) Recovery Invoked",
		0x0001: "Uncorrectable Media Error",
		0x0002: "Block Marked Bad Due To SSD Media Program Error",
		0x0003: "Block Marked Bad Due To SSD Media Erase Error",
		0x0004: "Block Marked Bad Due To Read Error",
		0x0005: "SSD Media Plane Failure",
		0x0006: "SSD Media Die Failure",
		0x0007: "HDD Head or Surface Failure",
	},
	0x09: { // Media Wear
		0x0000: "Media Wear",
	},
	0x0b: { // Virtual FIFO
		0x0000: "Virtual FIFO Start",
		0x0001: "Virtual FIFO End",
	},
	0x0c: { // SATA Phy/Link
		0x0000: "DR_Reset Entered due to Unexpected COMRESET",
		0x0001: "DR_Reset Entered due to Phy Signal Not Detected",
		0x0002: "Device Dropped Link while Host Link is Up",
		0x0003: "DR_Ready entered at Gen 3",
		0x0004: "DR_Ready entered at Gen 2",
		0x0005: "DR_Ready entered at Gen 1",
		0x0006: "DR_Partial Entered",
		0x0007: "DR_Partial Exited",
		0x0008: "DR_Reduce_Speed Entered",
		0x0009: "DR_Error Entered",
		0x000a: "Transmitting HOLD",
		0x000b: "Receiving HOLD",
		0x000c: "PMNAK Received",
		0x000d: "PMNAK Transmitted",
		0x000e: "R_ERR Received",
		0x000f: "R_ERR Transmitted",
		0x0010: "Set Device Bits Transmitted with Error Bit Set",
	},
	0x0d: { // SATA Transport
		0x0000: "Non-Data FIS Received",
		0x0001: "Non-Data FIS Transmitted",
		0x0002: "Data FIS Received",
		0x0003: "Data FIS Transmitted",
	},
	0x0e: { // SAS Phy/Link
		0x0000: "Link Up - 1.5 Gbps",
		0x0001: "Link Up - 3.0 Gbps",
		0x0002: "Link Up - 6.0 Gbps",
		0x0003: "Link Up - 12.0 Gbps",
		0x0004: "Link Up - 22.5 Gbps",
		0x0005: "Identify Received (Data)",
		0x0006: "HARD_RESET Received",
		0x0007: "Link Loss",
		0x0008: "DWORD Synchronization Loss",
		0x0009: "SPL Packet Synchronization Loss",
		0x000a: "Identify Receive TImeout",
		0x000b: "BREAK Received",
		0x000c: "BREAK_REPLY Received",
	},
	0x0f: { // SAS Transport
		0x0000: "DATA Frame Received",
		0x0001: "DATA Frame Sent",
		0x0002: "XFER_RDY Frame Sent",
		0x0003: "COMMAND Frame Received",
		0x0004: "RESPONSE Frame Sent",
		0x0005: "TASK Frame Received",
		0x0006: "SSP Frame Received",
		0x0007: "SSP Frame Sent",
		0x0008: "NAK Received",
	},
}
