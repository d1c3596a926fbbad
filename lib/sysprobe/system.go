// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

// System aggregates one record per probe domain. It owns nothing
// beyond allocation: callers invoke the Read methods on whichever
// records they selected and print what resolved. Records for
// unselected domains stay nil.
type System struct {
	CPU  *CPUInfo
	Mem  *MemInfo
	Swap *SwapInfo
	Disk *DiskInfo
}

// Domains selects which records NewSystem allocates.
type Domains struct {
	CPU  bool
	Mem  bool
	Swap bool
	Disk bool

	// DiskMount is the disk probe target (root mount when empty).
	DiskMount string
}

// NewSystem allocates zero-valued records for the selected domains.
func NewSystem(domains Domains) *System {
	system := &System{}
	if domains.CPU {
		system.CPU = NewCPUInfo()
	}
	if domains.Mem {
		system.Mem = NewMemInfo()
	}
	if domains.Swap {
		system.Swap = NewSwapInfo()
	}
	if domains.Disk {
		system.Disk = NewDiskInfo(domains.DiskMount)
	}
	return system
}
