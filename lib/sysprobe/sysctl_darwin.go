// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package sysprobe

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

func sysctlInt(name string) (int, bool) {
	value, err := unix.SysctlUint32(name)
	if err != nil {
		return 0, false
	}
	return int(value), true
}

func sysctlInt64(name string) (int64, bool) {
	value, err := unix.SysctlUint64(name)
	if err != nil {
		return 0, false
	}
	return int64(value), true
}

func sysctlString(name string) (string, bool) {
	value, err := unix.Sysctl(name)
	if err != nil {
		return "", false
	}
	return value, true
}

func sysctlLoadAvg() ([3]float64, bool) {
	raw, err := unix.SysctlRaw("vm.loadavg")
	if err != nil {
		return [3]float64{}, false
	}
	return parseLoadAvg(raw)
}

func sysctlBootTime() (int64, bool) {
	timeval, err := unix.SysctlTimeval("kern.boottime")
	if err != nil {
		return 0, false
	}
	return timeval.Sec, true
}

// sysctlSwapUsage reads the vm.swapusage parameter: a packed struct of
// total, available, and used byte counts.
func sysctlSwapUsage() (int64, int64, bool) {
	raw, err := unix.SysctlRaw("vm.swapusage")
	if err != nil || len(raw) < 24 {
		return 0, 0, false
	}
	total := int64(binary.LittleEndian.Uint64(raw[0:8]))
	used := int64(binary.LittleEndian.Uint64(raw[16:24]))
	return used, total, true
}

// fsstatMounts snapshots the mount table without blocking on
// unresponsive filesystems.
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
