// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Implementation of Linux kernel ioctl macros (<uapi/asm-generic/ioctl.h>).
// See https://www.kernel.org/doc/Documentation/ioctl/ioctl-number.txt

package ioctl

import "golang.org/x/sys/unix"

const (
	iocNrbits   = 8
	iocTypebits = 8
	iocSizebits = 14

	iocNrshift   = 0
	iocTypeshift = iocNrshift + iocNrbits
	iocSizeshift = iocTypeshift + iocTypebits
	iocDirshift  = iocSizeshift + iocSizebits

	iocWrite = 1
	iocRead  = 2
)

// Ioc calculates an ioctl command value from the direction, type, number and size arguments.
func Ioc(dir, t, nr, size uintptr) uintptr {
	return (dir << iocDirshift) | (t << iocTypeshift) | (nr << iocNrshift) | (size << iocSizeshift)
}

// Iowr calculates a read / write ioctl command value.
func Iowr(t, nr, size uintptr) uintptr {
	return Ioc(iocRead|iocWrite, t, nr, size)
}

// Ioctl executes an ioctl command on the specified file descriptor.
func Ioctl(fd, cmd, ptr uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, ptr)
	if errno != 0 {
		return errno
	}
	return nil
}
