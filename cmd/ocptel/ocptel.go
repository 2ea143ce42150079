// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// OCP SAS-SATA device telemetry log reader.
//
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unsafe"

	nvme "github.com/dswarbrick/go-nvme/nvme"
	"golang.org/x/sys/unix"

	"github.com/westerndigitalcorporation/smartmontools-ocp/ata"
	"github.com/westerndigitalcorporation/smartmontools-ocp/catalog"
	"github.com/westerndigitalcorporation/smartmontools-ocp/report"
	"github.com/westerndigitalcorporation/smartmontools-ocp/scsi"
	"github.com/westerndigitalcorporation/smartmontools-ocp/telemetry"
)

const (
	_LINUX_CAPABILITY_VERSION_3 = 0x20080522

	CAP_SYS_RAWIO = 1 << 17
	CAP_SYS_ADMIN = 1 << 21
)

type capHeader struct {
	version uint32
	pid     int
}

type capData struct {
	effective   uint32
	permitted   uint32
	inheritable uint32
}

type capsV3 struct {
	hdr  capHeader
	data [2]capData
}

// checkCaps invokes the capget syscall to check for necessary capabilities. Note that this depends
// on the binary having the capabilities set (i.e., via the `setcap` utility), and on VFS support.
// Alternatively, if the binary is executed as root, it automatically has all capabilities set.
func checkCaps() {
	caps := new(capsV3)
	caps.hdr.version = _LINUX_CAPABILITY_VERSION_3

	// Use RawSyscall since we do not expect it to block
	_, _, e1 := unix.RawSyscall(unix.SYS_CAPGET, uintptr(unsafe.Pointer(&caps.hdr)), uintptr(unsafe.Pointer(&caps.data)), 0)
	if e1 != 0 {
		fmt.Println("capget() failed:", e1.Error())
		return
	}

	if (caps.data[0].effective&CAP_SYS_RAWIO == 0) && (caps.data[0].effective&CAP_SYS_ADMIN == 0) {
		fmt.Println("Neither cap_sys_rawio nor cap_sys_admin are in effect. Device access will probably fail.")
	}
}

func scanDevices() {
	// Find all SCSI disk devices
	if files, err := filepath.Glob("/dev/sd*[^0-9]"); err == nil {
		for _, file := range files {
			fmt.Println(file)
		}
	}

	// NVMe devices are listed for completeness; their OCP telemetry is not decoded by this tool.
	if files, err := filepath.Glob("/dev/nvme[0-9]"); err == nil {
		for _, file := range files {
			fmt.Println(file)
		}
	}
}

// printBanner identifies the device before dumping telemetry.
func printBanner(d *scsi.SATDevice) error {
	inqResp, err := d.Inquiry()
	if err != nil {
		return fmt.Errorf("INQUIRY: %w", err)
	}

	fmt.Println("SCSI INQUIRY:", inqResp)

	identBuf, err := d.Identify()
	if err != nil {
		return err
	}

	fmt.Printf("Model Number: %s\n", identBuf.ModelNumber())
	fmt.Printf("Serial Number: %s\n", identBuf.SerialNumber())
	fmt.Printf("Firmware Revision: %s\n", identBuf.FirmwareRevision())
	fmt.Println("ATA Major Version:", identBuf.ATAMajorVersion())
	fmt.Println("ATA Minor Version:", identBuf.ATAMinorVersion())
	fmt.Println("Transport:", identBuf.Transport())
	fmt.Println()

	return nil
}

func printTelemetry(device, catalogFile string, jsonOut bool) error {
	d, err := scsi.OpenSATDevice(device)
	if err != nil {
		return err
	}

	defer d.Close()

	if err := printBanner(d); err != nil {
		return err
	}

	nsectors24, err := telemetry.LogPages(d, ata.GPL_CURRENT_INTERNAL_STATUS)
	if err != nil {
		return err
	}

	nsectors25, err := telemetry.LogPages(d, ata.GPL_SAVED_INTERNAL_STATUS)
	if err != nil {
		return err
	}

	if nsectors24 == 0 || nsectors25 == 0 {
		return fmt.Errorf("device does not support the OCP telemetry logs")
	}

	cat, err := catalog.Open(catalogFile)
	if err != nil {
		return err
	}

	rpt := report.New(os.Stdout)

	if err := telemetry.PrintLog(d, uint(nsectors24), uint(nsectors25), cat, rpt); err != nil {
		return err
	}

	if jsonOut {
		fmt.Println(rpt.JSON())
	}

	return nil
}

func main() {
	fmt.Println("OCP SAS-SATA Device Telemetry Log Reader")
	fmt.Printf("Built with %s on %s (%s)\n\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	device := flag.String("device", "", "SATA device from which to read the OCP telemetry logs, e.g., /dev/sda")
	catalogFile := flag.String("catalog", "", "Optional YAML catalog of vendor statistic / event names")
	jsonOut := flag.Bool("json", false, "Also emit the report as a JSON document")
	scan := flag.Bool("scan", false, "Scan for candidate devices")
	flag.Parse()

	checkCaps()

	if *device != "" {
		if strings.HasPrefix(*device, "/dev/nvme") {
			// The ATA telemetry decoder does not cover NVMe OCP telemetry; identify the
			// controller and stop.
			d := nvme.NewNVMeDevice(*device)
			if err := d.Open(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			defer d.Close()

			if err := d.PrintSMART(os.Stdout); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			fmt.Println("\nNVMe OCP telemetry is not decoded by this tool.")
			return
		}

		if err := printTelemetry(*device, *catalogFile, *jsonOut); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	} else if *scan {
		scanDevices()
	} else {
		flag.PrintDefaults()
		os.Exit(1)
	}
}
