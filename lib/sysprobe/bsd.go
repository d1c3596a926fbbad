// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

import (
	"encoding/binary"
	"regexp"
	"strconv"
	"time"
)

// The BSD-family sources wrap sysctl-style named parameters and a
// couple of spawned commands. The kernel primitives are injected as
// function fields (wired up in platform_darwin.go and
// platform_freebsd.go, faked in tests), so the parsing and caching
// logic here compiles and tests everywhere.

// BSDCPUSource reads the CPU domain from sysctl parameters. Darwin
// wires hw.logicalcpu_max and machdep.cpu.brand_string; FreeBSD wires
// hw.ncpu and hw.model. Fan and thermal probes have no sysctl
// equivalent and always fail.
type BSDCPUSource struct {
	LogicalCPUs func() (int, bool)
	BrandString func() (string, bool)
	LoadAvg     func() ([3]float64, bool)
	BootTime    func() (int64, bool)
	Now         func() time.Time
}

func (s *BSDCPUSource) Cores() (int, bool) {
	return s.LogicalCPUs()
}

// Model returns the brand string. Brand strings embed their clock
// speed textually, so no separate frequency lookup exists; the
// normalization pipeline rewrites the embedded clause around it.
func (s *BSDCPUSource) Model() (string, float64, bool) {
	brand, ok := s.BrandString()
	return brand, 0, ok
}

func (s *BSDCPUSource) LoadAverages() ([3]float64, bool) {
	return s.LoadAvg()
}

func (s *BSDCPUSource) FanRPM() (int, bool) {
	return 0, false
}

func (s *BSDCPUSource) Temperature() (float64, bool) {
	return 0, false
}

// Uptime subtracts the boot timestamp from the current wall clock.
func (s *BSDCPUSource) Uptime() (int64, bool) {
	boot, ok := s.BootTime()
	if !ok {
		return 0, false
	}
	return s.Now().Unix() - boot, true
}

// parseLoadAvg decodes the packed vm.loadavg sysctl struct: three
// fixed-point uint32 samples followed by the int64 scale factor.
func parseLoadAvg(raw []byte) ([3]float64, bool) {
	var load [3]float64
	if len(raw) < 24 {
		return load, false
	}
	scale := float64(binary.LittleEndian.Uint64(raw[16:24]))
	if scale == 0 {
		return load, false
	}
	for i := 0; i < 3; i++ {
		load[i] = float64(binary.LittleEndian.Uint32(raw[i*4:])) / scale
	}
	return load, true
}

// BSDMemSource reads memory figures from the hw.memsize (Darwin) or
// hw.physmem (FreeBSD) parameter, and used pages from a spawned
// vm_stat on Darwin. FreeBSD has no vm_stat; its VMStat stays nil and
// Used always fails.
type BSDMemSource struct {
	VMStat  func() ([]byte, error)
	MemSize func() (int64, bool)
}

func (s *BSDMemSource) Used() (int64, bool) {
	if s.VMStat == nil {
		return 0, false
	}
	output, err := s.VMStat()
	if err != nil {
		return 0, false
	}
	return vmStatUsedBytes(output), true
}

func (s *BSDMemSource) Total() (int64, bool) {
	return s.MemSize()
}

// vmStatPage matches the vm_stat page-count lines that contribute to
// used memory: "Pages wired down:", "Pages active:", and "Pages
// occupied by compressor:". The leading space keeps "Pages inactive:"
// from matching on its "active" suffix.
var vmStatPage = regexp.MustCompile(` (wired|active|occupied)[^0-9]+([0-9]+)`)

// vmStatPageSize is the page size vm_stat reports in. The header line
// states it ("page size of 4096 bytes"); the probes assume the
// conventional 4 KiB.
const vmStatPageSize = 4096

// vmStatUsedBytes sums the used-contributor page counts of a vm_stat
// listing and scales to bytes.
func vmStatUsedBytes(listing []byte) int64 {
	var pages int64
	for _, groups := range vmStatPage.FindAllSubmatch(listing, -1) {
		value, err := strconv.ParseInt(string(groups[2]), 10, 64)
		if err != nil {
			continue
		}
		pages += value
	}
	return pages * vmStatPageSize
}

// DarwinSwapSource reads both swap figures from the vm.swapusage
// parameter. The query is a single expensive call that returns used
// and total together, so the first successful result is cached for the
// life of the source and never invalidated.
type DarwinSwapSource struct {
	Query func() (used, total int64, ok bool)

	used   int64
	total  int64
	cached bool
}

func (s *DarwinSwapSource) Used() (int64, bool) {
	if !s.fetch() {
		return 0, false
	}
	return s.used, true
}

func (s *DarwinSwapSource) Total() (int64, bool) {
	if !s.fetch() {
		return 0, false
	}
	return s.total, true
}

func (s *DarwinSwapSource) fetch() bool {
	if s.cached {
		return true
	}
	used, total, ok := s.Query()
	if !ok {
		return false
	}
	s.used, s.total, s.cached = used, total, true
	return true
}

// MountEntry is one getfsstat mount table entry together with the
// filesystem statistics the same query returns.
type MountEntry struct {
	Device     string
	MountPoint string
	FSType     string
	Blocks     uint64
	BlocksFree uint64
	BlockSize  int64
}

// BSDDiskSource resolves a mounted filesystem from the getfsstat mount
// table. The matched entry is cached per-record: one query serves
// every resolver, and the figures cannot change meaningfully within a
// process run. Partition names have no BSD equivalent.
type BSDDiskSource struct {
	Mounts func() ([]MountEntry, bool)

	entry     MountEntry
	haveEntry bool
}

func (s *BSDDiskSource) Device(mountPoint string) (string, bool) {
	entry, ok := s.byMountPoint(mountPoint)
	if !ok {
		return "", false
	}
	return entry.Device, true
}

func (s *BSDDiskSource) Name(device string) (string, bool) {
	return "", false
}

func (s *BSDDiskSource) MountPoint(device string) (string, bool) {
	entry, ok := s.byDevice(device)
	if !ok {
		return "", false
	}
	return entry.MountPoint, true
}

func (s *BSDDiskSource) FSType(device string) (string, bool) {
	entry, ok := s.byDevice(device)
	if !ok {
		return "", false
	}
	return entry.FSType, true
}

func (s *BSDDiskSource) Usage(mountPoint string) (int64, int64, bool) {
	entry, ok := s.byMountPoint(mountPoint)
	if !ok {
		return 0, 0, false
	}
	used := int64(entry.Blocks-entry.BlocksFree) * entry.BlockSize
	total := int64(entry.Blocks) * entry.BlockSize
	return used, total, true
}

func (s *BSDDiskSource) byMountPoint(mountPoint string) (MountEntry, bool) {
	return s.lookup(func(entry MountEntry) bool { return entry.MountPoint == mountPoint })
}

func (s *BSDDiskSource) byDevice(device string) (MountEntry, bool) {
	return s.lookup(func(entry MountEntry) bool { return entry.Device == device })
}

func (s *BSDDiskSource) lookup(match func(MountEntry) bool) (MountEntry, bool) {
	if s.haveEntry && match(s.entry) {
		return s.entry, true
	}
	entries, ok := s.Mounts()
	if !ok {
		return MountEntry{}, false
	}
	for _, entry := range entries {
		if match(entry) {
			s.entry = entry
			s.haveEntry = true
			return entry, true
		}
	}
	return MountEntry{}, false
}
