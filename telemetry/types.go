// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package telemetry decodes the OCP Datacenter SAS-SATA Device Telemetry logs, exposed by ATA
// devices as the Current and Saved Device Internal Status logs (GP log addresses 0x24 and 0x25).
//
// Format reference: OCP Datacenter SAS-SATA Device Specification v1.5, section 7.2. All on-wire
// integers are little-endian unless noted; sizes and offsets are reported in dwords (4 bytes),
// and a log page is 128 dwords (512 bytes).
package telemetry

// PageReader fetches 512-byte pages of an ATA general purpose log. The features register is log
// specific and zero for the telemetry logs.
type PageReader interface {
	ReadLogPage(logAddr, features uint8, page uint16, buf []byte) error
}

const (
	// LogPageSize is the size in bytes of a single ATA log page.
	LogPageSize = 512

	pageDwords = 128
)

// InternalStatus is the first page of the Current/Saved Device Internal Status log, locating the
// telemetry areas within the log.
type InternalStatus struct {
	LogAddress                uint8
	_                         [3]byte
	OrganizationID            uint32
	Area1LastLogPage          uint16
	Area2LastLogPage          uint16
	Area3LastLogPage          uint16
	_                         [368]byte
	SavedDataAvailable        uint8
	SavedDataGenerationNumber uint8
	ReasonID                  ReasonID
} // 512 bytes

// ReasonID describes why the device captured the telemetry snapshot (section 7.2.2).
type ReasonID struct {
	ErrorID    [64]byte // ASCII
	FileID     [8]byte
	LineNumber uint16
	ValidFlags uint8
	_          [21]byte
	VUReason   [32]byte
} // 128 bytes

// ReasonID valid flag bits.
const (
	ReasonLineNumberValid = 1 << 0
	ReasonFileIDValid     = 1 << 1
	ReasonErrorIDValid    = 1 << 2
	ReasonVUExtValid      = 1 << 3
)

const GUIDLen = 16

// DataHeader is the OCP Telemetry Data Header, the first page of telemetry data area 1 in log
// 0x24 (section 7.2.10). The four region offsets are dword counts relative to byte 0 of this
// header (log page 1), for data area 2 as well as area 1.
type DataHeader struct {
	MajorVersion         uint16
	MinorVersion         uint16
	_                    [4]byte
	Timestamp            [6]byte
	TimestampInfo        uint16
	GUID                 [GUIDLen]byte
	DeviceStringDataSize uint16
	FirmwareVersion      [8]byte // ASCII, space padded
	_                    [68]byte
	Statistic1StartDword uint64
	Statistic1SizeDword  uint64
	Statistic2StartDword uint64
	Statistic2SizeDword  uint64
	Event1FIFOStartDword uint64
	Event1FIFOSizeDword  uint64
	Event2FIFOStartDword uint64
	Event2FIFOSizeDword  uint64
	_                    [338]byte
} // 512 bytes

const FIFONameLen = 16

// StringsHeader is the OCP Telemetry Strings Header at the start of log page 1 of log 0x25
// (section 7.2.13). The four tables are contiguous in the listed order, the first starting
// immediately after the header.
type StringsHeader struct {
	LogPageVersion    uint8
	_                 [15]byte
	GUID              [GUIDLen]byte
	_                 [32]byte
	StatIDTableStart  uint64
	StatIDTableSize   uint64
	EventTableStart   uint64
	EventTableSize    uint64
	VUEventTableStart uint64
	VUEventTableSize  uint64
	ASCIITableStart   uint64
	ASCIITableSize    uint64
	EventFIFO1Name    [FIFONameLen]byte
	EventFIFO2Name    [FIFONameLen]byte
	_                 [272]byte
} // 432 bytes

// stringsHeaderDwords is the header size in dwords; the statistics ID string table starts here.
const stringsHeaderDwords = 108

// StatIDStringEntry names a vendor-unique statistic identifier (section 7.2.14). The offset and
// length reference a substring of the ASCII table.
type StatIDStringEntry struct {
	VUStatisticID uint16
	_             uint8
	ASCIIIDLen    uint8
	ASCIIIDOffset uint64
	_             [4]byte
} // 16 bytes

// EventIDStringEntry names an event or VU event identifier within a debug class (sections 7.2.15
// and 7.2.16).
type EventIDStringEntry struct {
	DbgClass      uint8
	ID            [2]byte
	ASCIIIDLen    uint8
	ASCIIIDOffset uint64
	_             [4]byte
} // 16 bytes

const stringEntrySize = 16

// StatisticHeader prefixes every statistic descriptor (section 7.2.3). StatisticDataSize counts
// the dwords of descriptor body following the header.
type StatisticHeader struct {
	StatisticsID      uint16
	StatisticsInfo    [3]byte
	_                 uint8
	StatisticDataSize uint16
} // 8 bytes

const statisticHeaderSize = 8

// Statistic types (StatisticsInfo[0] bits 7:4).
const (
	StatTypeSingle = 0x0
	StatTypeArray  = 0x1
	StatTypeCustom = 0x2
)

// Statistic data types (StatisticsInfo[2] bits 3:0).
const (
	DataTypeNA    = 0x0
	DataTypeInt   = 0x1
	DataTypeUint  = 0x2
	DataTypeFP    = 0x3
	DataTypeASCII = 0x4
)

// Behavior types (StatisticsInfo[0] bits 3:0).
const (
	BehaviorNA = iota
	BehaviorNone
	BehaviorResetPersistentPowerCycle
	BehaviorSaturatingReset
	BehaviorSaturatingResetPowerCycle
	BehaviorSaturating
	BehaviorResetPersistent
)

// Unit types (StatisticsInfo[1]).
const unitTypeMax = 0x12

// Custom statistic identifiers with a defined layout.
const (
	StatATALog    = 0x0002
	StatSCSILog   = 0x0003
	StatHDDSpinup = 0x6006
)

// Debug event classes (section 7.2.8.1).
const (
	ClassTimestamp     = 0x01
	ClassReset         = 0x04
	ClassBootSeq       = 0x05
	ClassFWAssert      = 0x06
	ClassTemperature   = 0x07
	ClassMedia         = 0x08
	ClassMediaWear     = 0x09
	ClassStatisticSnap = 0x0a
	ClassVirtualFIFO   = 0x0b
	ClassSATAPhyLink   = 0x0c
	ClassSATATransport = 0x0d
	ClassSASPhyLink    = 0x0e
	ClassSASTransport  = 0x0f
)

// EventDescriptor is the fixed header of an event FIFO entry. DataSize counts the dwords of
// event data following the header, except for Statistic Snapshot events, whose true length comes
// from the embedded statistic header.
type EventDescriptor struct {
	DebugEventClassType uint8
	EventID             [2]byte
	DataSize            uint8
} // 4 bytes

const eventHeaderSize = 4
