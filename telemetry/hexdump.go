// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Hex dump formatting for opaque telemetry payloads.

package telemetry

import (
	"fmt"
	"strings"

	"github.com/westerndigitalcorporation/smartmontools-ocp/report"
)

// hexLine renders data as a single "0xNN 0xNN ..." line.
func hexLine(data []byte) string {
	var b strings.Builder

	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "0x%02x", v)
	}

	return b.String()
}

// dumpLine renders one 16-byte row of a multi-line dump: offset prefix, hex columns padded to
// full width, then an ASCII gutter.
func dumpLine(offset int, data []byte) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%07x: ", offset)
	for i := 0; i < 16; i++ {
		if i < len(data) {
			fmt.Fprintf(&b, "%02x ", data[i])
		} else {
			b.WriteString("   ")
		}
	}
	for i := 0; i < len(data) && i < 16; i++ {
		if data[i] >= ' ' && data[i] <= '~' {
			b.WriteByte(data[i])
		} else {
			b.WriteByte('.')
		}
	}

	return b.String()
}

// hexDumpLines emits a multi-line hex dump, indented, and returns the rendered lines for the
// JSON document. No trailing newline; the caller terminates the block.
func hexDumpLines(rpt *report.Report, data []byte, indent int) []string {
	pad := strings.Repeat(" ", indent)
	lines := make([]string, 0, (len(data)+15)/16)

	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		line := dumpLine(i, data[i:end])
		if i > 0 {
			rpt.Printf("\n")
		}
		rpt.Printf("%s%s", pad, line)
		lines = append(lines, line)
	}

	return lines
}
