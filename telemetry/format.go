// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Field formatting helpers for the telemetry headers.

package telemetry

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/westerndigitalcorporation/smartmontools-ocp/report"
)

// decodeTimestamp converts the six timestamp bytes to milliseconds since 1970. The protocol
// field (TimestampInfo bits 5:4) selects the encoding: 1 = SAS, big-endian across all six bytes;
// 2 = SATA, little-endian with the low 16 bits stored first. Unknown protocols yield zero with a
// diagnostic.
func decodeTimestamp(ts [6]byte, info uint16, rpt *report.Report) uint64 {
	var msecs uint64

	switch protocol := (info & 0x30) >> 4; protocol {
	case 1:
		msecs = uint64(binary.BigEndian.Uint32(ts[0:4]))
		msecs = msecs<<16 + uint64(binary.BigEndian.Uint16(ts[4:6]))
	case 2:
		msecs = uint64(binary.LittleEndian.Uint32(ts[2:6]))
		msecs = msecs<<16 + uint64(binary.LittleEndian.Uint16(ts[0:2]))
	default:
		rpt.Printf("Unknown timestamp protocol (%d)", protocol)
	}

	return msecs
}

// guidString prints a 16-byte GUID with the bytes reversed (little-endian UUID convention),
// uppercase, with a trailing "h".
func guidString(guid [GUIDLen]byte) string {
	var b bytes.Buffer

	for i := GUIDLen - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%02X", guid[i])
	}
	b.WriteByte('h')

	return b.String()
}

// trimASCII interprets a fixed-width field as a right-padded ASCII string.
func trimASCII(b []byte) string {
	return string(bytes.TrimRight(b, " \x00"))
}
