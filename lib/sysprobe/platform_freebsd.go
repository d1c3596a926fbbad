// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

//go:build freebsd

package sysprobe

import (
	"encoding/binary"
	"time"

	"golang.org/x/sys/unix"
)

// FreeBSD carries the partial probe set: CPU identity, load, uptime,
// total memory, and disk usage. Used memory, swap, fan, and thermal
// probes have no implementation and stay at their sentinels.

func newCPUSource() CPUSource {
	return &BSDCPUSource{
		LogicalCPUs: func() (int, bool) {
			value, err := unix.SysctlUint32("hw.ncpu")
			if err != nil {
				return 0, false
			}
			return int(value), true
		},
		BrandString: func() (string, bool) {
			value, err := unix.Sysctl("hw.model")
			if err != nil {
				return "", false
			}
			return value, true
		},
		LoadAvg: func() ([3]float64, bool) {
			raw, err := unix.SysctlRaw("vm.loadavg")
			if err != nil {
				return [3]float64{}, false
			}
			return parseLoadAvg(raw)
		},
		BootTime: func() (int64, bool) {
			timeval, err := unix.SysctlTimeval("kern.boottime")
			if err != nil {
				return 0, false
			}
			return timeval.Sec, true
		},
		Now: time.Now,
	}
}

func newMemSource() MemSource {
	return &BSDMemSource{
		MemSize: func() (int64, bool) {
			raw, err := unix.SysctlRaw("hw.physmem")
			if err != nil || len(raw) < 8 {
				return 0, false
			}
			return int64(binary.LittleEndian.Uint64(raw)), true
		},
	}
}

func newSwapSource() SwapSource {
	return unsupportedSource{}
}

func newDiskSource() DiskSource {
	return &BSDDiskSource{Mounts: fsstatMounts}
}

func fsstatMounts() ([]MountEntry, bool) {
	count, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return nil, false
	}
	stats := make([]unix.Statfs_t, count)
	count, err = unix.Getfsstat(stats, unix.MNT_NOWAIT)
	if err != nil {
		return nil, false
	}

	entries := make([]MountEntry, 0, count)
	for _, stat := range stats[:count] {
		entries = append(entries, MountEntry{
			Device:     cString(stat.Mntfromname[:]),
			MountPoint: cString(stat.Mntonname[:]),
			FSType:     cString(stat.Fstypename[:]),
			Blocks:     stat.Blocks,
			BlocksFree: stat.Bfree,
			BlockSize:  int64(stat.Bsize),
		})
	}
	return entries, true
}

// cString truncates a fixed-size C string buffer at its first NUL.
func cString(buffer []byte) string {
	for i, b := range buffer {
		if b == 0 {
			return string(buffer[:i])
		}
	}
	return string(buffer)
}
