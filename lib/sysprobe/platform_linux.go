// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package sysprobe

func newCPUSource() CPUSource {
	return &LinuxCPUSource{ProcRoot: "/proc", SysRoot: "/sys"}
}

func newMemSource() MemSource {
	return &LinuxMemSource{ProcRoot: "/proc"}
}

func newSwapSource() SwapSource {
	return &LinuxSwapSource{ProcRoot: "/proc"}
}

func newDiskSource() DiskSource {
	return &LinuxDiskSource{MtabPath: "/etc/mtab", SysRoot: "/sys", Statfs: statfsQuery}
}
