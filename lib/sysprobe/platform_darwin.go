// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin

package sysprobe

import (
	"os/exec"
	"time"
)

func newCPUSource() CPUSource {
	return &BSDCPUSource{
		LogicalCPUs: func() (int, bool) { return sysctlInt("hw.logicalcpu_max") },
		BrandString: func() (string, bool) { return sysctlString("machdep.cpu.brand_string") },
		LoadAvg:     sysctlLoadAvg,
		BootTime:    sysctlBootTime,
		Now:         time.Now,
	}
}

func newMemSource() MemSource {
	return &BSDMemSource{
		VMStat:  runVMStat,
		MemSize: func() (int64, bool) { return sysctlInt64("hw.memsize") },
	}
}

func newSwapSource() SwapSource {
	return &DarwinSwapSource{Query: sysctlSwapUsage}
}

func newDiskSource() DiskSource {
	return &BSDDiskSource{Mounts: fsstatMounts}
}

// runVMStat spawns the virtual-memory-statistics command whose page
// counts back the used-memory probe.
func runVMStat() ([]byte, error) {
	return exec.Command("vm_stat").Output()
}
