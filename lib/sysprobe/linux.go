// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/sysline-project/sysline/lib/textscan"
)

// The Linux sources parse pseudo-filesystem text, so they compile and
// test on every platform. Construction sites (platform_linux.go, the
// tests) supply the /proc, /sys, and mtab roots, letting tests point
// at synthetic trees.

// searchLimit caps the sysfs searches for frequency and thermal files.
// A machine with more candidate files than this keeps only the walk's
// first matches, which is all the probes read anyway.
const searchLimit = 64

// LinuxCPUSource reads the CPU domain from /proc and /sys.
type LinuxCPUSource struct {
	ProcRoot string
	SysRoot  string
}

// Cores counts "processor" entries in the CPU enumeration pseudo-file.
func (s *LinuxCPUSource) Cores() (int, bool) {
	file, err := os.Open(filepath.Join(s.ProcRoot, "cpuinfo"))
	if err != nil {
		return 0, false
	}
	defer file.Close()

	cores := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "processor") {
			cores++
		}
	}
	return cores, true
}

// Model extracts the first "model name" value from the CPU pseudo-file
// and searches the frequency sysfs subtree for a maximum-frequency
// value. The first readable nonzero candidate wins; its kHz value is
// scaled to GHz. A missing frequency is not a failure — the model
// string alone is enough.
func (s *LinuxCPUSource) Model() (string, float64, bool) {
	file, err := os.Open(filepath.Join(s.ProcRoot, "cpuinfo"))
	if err != nil {
		return "", 0, false
	}
	defer file.Close()

	model := ""
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "model name") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) == 2 {
			model = strings.TrimSpace(parts[1])
			break
		}
	}
	if model == "" {
		return "", 0, false
	}

	return model, s.maxFrequencyGHz(), true
}

// maxFrequencyGHz scans the cpufreq sysfs subtree for the first
// nonzero frequency limit among the known candidate file names.
func (s *LinuxCPUSource) maxFrequencyGHz() float64 {
	base := filepath.Join(s.SysRoot, "devices/system/cpu")
	candidates := textscan.FindAll(base, `(bios_limit|(scaling|cpuinfo)_max_freq)$`, searchLimit)
	for _, path := range candidates {
		if khz := readIntFile(path); khz > 0 {
			return float64(khz) / 1e6
		}
	}
	return 0
}

// LoadAverages reads three floats from the load-average pseudo-file.
func (s *LinuxCPUSource) LoadAverages() ([3]float64, bool) {
	var load [3]float64
	data, err := os.ReadFile(filepath.Join(s.ProcRoot, "loadavg"))
	if err != nil {
		return load, false
	}
	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return load, false
	}
	for i := 0; i < 3; i++ {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return [3]float64{}, false
		}
		load[i] = value
	}
	return load, true
}

// FanRPM locates the first hardware-monitor fan1_input file under the
// platform device tree and reads its value.
func (s *LinuxCPUSource) FanRPM() (int, bool) {
	path, found := textscan.FindFirst(filepath.Join(s.SysRoot, "devices/platform"), `fan1_input$`)
	if !found {
		return 0, false
	}
	rpm := readIntFile(path)
	if rpm == 0 {
		return 0, false
	}
	return int(rpm), true
}

// Temperature finds a hardware-monitor directory whose "name" file
// mentions temp, then reads the first nonzero temp[0-9]_input value
// beneath it, scaling millidegrees to degrees.
func (s *LinuxCPUSource) Temperature() (float64, bool) {
	base := filepath.Join(s.SysRoot, "devices/platform")
	hwmonRoot := ""
	for _, path := range textscan.FindAll(base, `/name$`, searchLimit) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if strings.Contains(string(data), "temp") {
			// Strip the trailing "name" to get the monitor directory.
			hwmonRoot = path[:len(path)-4]
			break
		}
	}
	if hwmonRoot == "" {
		return 0, false
	}

	for _, path := range textscan.FindAll(hwmonRoot, `temp[0-9]_input`, searchLimit) {
		if milli := readIntFile(path); milli > 0 {
			return float64(milli) / 1000, true
		}
	}
	return 0, false
}

// Uptime reads whole seconds since boot from the uptime pseudo-file
// (its first column is fractional seconds).
func (s *LinuxCPUSource) Uptime() (int64, bool) {
	data, err := os.ReadFile(filepath.Join(s.ProcRoot, "uptime"))
	if err != nil {
		return 0, false
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return int64(seconds), true
}

// LinuxMemSource reads memory figures from the meminfo pseudo-file.
// Values there are kilobytes and are scaled to bytes.
type LinuxMemSource struct {
	ProcRoot string
}

// Used sums the used-contributor lines and subtracts the
// free-contributor lines of meminfo in a single pass:
//
//	used = MemTotal + Shmem - MemFree - Buffers - Cached - SReclaimable
func (s *LinuxMemSource) Used() (int64, bool) {
	var used int64
	matched := false
	ok := scanMeminfo(s.ProcRoot, func(label string, kb int64) {
		switch label {
		case "MemTotal", "Shmem":
			used += kb << 10
			matched = true
		case "MemFree", "Buffers", "Cached", "SReclaimable":
			used -= kb << 10
			matched = true
		}
	})
	return used, ok && matched
}

// Total reads the MemTotal line of meminfo.
func (s *LinuxMemSource) Total() (int64, bool) {
	return meminfoValue(s.ProcRoot, "MemTotal")
}

// LinuxSwapSource derives swap figures from meminfo: used is SwapTotal
// minus SwapFree.
type LinuxSwapSource struct {
	ProcRoot string
}

func (s *LinuxSwapSource) Used() (int64, bool) {
	total, ok := meminfoValue(s.ProcRoot, "SwapTotal")
	if !ok {
		return 0, false
	}
	free, ok := meminfoValue(s.ProcRoot, "SwapFree")
	if !ok {
		return 0, false
	}
	return total - free, true
}

func (s *LinuxSwapSource) Total() (int64, bool) {
	return meminfoValue(s.ProcRoot, "SwapTotal")
}

// scanMeminfo walks every "Label:  value kB" line of meminfo, calling
// visit with the label and the numeric value. Returns false when the
// file is unreadable.
func scanMeminfo(procRoot string, visit func(label string, kb int64)) bool {
	file, err := os.Open(filepath.Join(procRoot, "meminfo"))
	if err != nil {
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), ":", 2)
		if len(parts) != 2 {
			continue
		}
		fields := strings.Fields(parts[1])
		if len(fields) == 0 {
			continue
		}
		kb, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			continue
		}
		visit(parts[0], kb)
	}
	return scanner.Err() == nil
}

// meminfoValue returns a single meminfo line's value scaled to bytes.
func meminfoValue(procRoot, label string) (int64, bool) {
	var bytes int64
	found := false
	ok := scanMeminfo(procRoot, func(l string, kb int64) {
		if l == label && !found {
			bytes = kb << 10
			found = true
		}
	})
	return bytes, ok && found
}

// devicePartition splits a device path like /dev/sda2 into its base
// name and partition number for the sysfs block-device lookup.
var devicePartition = regexp.MustCompile(`/dev/([^0-9]+)([0-9]+)`)

// FSStat is one filesystem-statistics result, in the units statfs
// reports them.
type FSStat struct {
	Blocks       uint64
	BlocksFree   uint64
	FragmentSize int64
}

// UsedBytes returns (blocks - freeBlocks) * fragmentSize.
func (f FSStat) UsedBytes() int64 {
	return int64(f.Blocks-f.BlocksFree) * f.FragmentSize
}

// TotalBytes returns blocks * fragmentSize.
func (f FSStat) TotalBytes() int64 {
	return int64(f.Blocks) * f.FragmentSize
}

// LinuxDiskSource resolves a mounted filesystem through the mount
// table, the block-device sysfs tree, and statfs. The statistics
// result is cached after the first successful query: it cannot change
// meaningfully within one process run.
type LinuxDiskSource struct {
	MtabPath string
	SysRoot  string

	// Statfs queries filesystem statistics for a mount point. Injected
	// so tests can fake and count the kernel query.
	Statfs func(path string) (FSStat, bool)

	stat     FSStat
	haveStat bool
}

// Device scans the mount table for the entry mounted at mountPoint.
func (s *LinuxDiskSource) Device(mountPoint string) (string, bool) {
	return s.scanMtab(func(fields []string) (string, bool) {
		if fields[1] == mountPoint {
			return fields[0], true
		}
		return "", false
	})
}

// Name derives the sysfs block-device path from the device string and
// reads the PARTNAME attribute of its uevent descriptor.
func (s *LinuxDiskSource) Name(device string) (string, bool) {
	groups := devicePartition.FindStringSubmatch(device)
	if groups == nil {
		return "", false
	}
	base, partition := groups[1], groups[2]
	ueventPath := filepath.Join(s.SysRoot, "block", base, base+partition, "uevent")

	file, err := os.Open(ueventPath)
	if err != nil {
		return "", false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if name, found := strings.CutPrefix(scanner.Text(), "PARTNAME="); found {
			return name, true
		}
	}
	return "", false
}

// MountPoint re-scans the mount table keyed by device.
func (s *LinuxDiskSource) MountPoint(device string) (string, bool) {
	return s.scanMtab(func(fields []string) (string, bool) {
		if fields[0] == device {
			return fields[1], true
		}
		return "", false
	})
}

// FSType re-scans the mount table keyed by device.
func (s *LinuxDiskSource) FSType(device string) (string, bool) {
	return s.scanMtab(func(fields []string) (string, bool) {
		if fields[0] == device {
			return fields[2], true
		}
		return "", false
	})
}

// Usage queries (or returns the cached) filesystem statistics for the
// mount point.
func (s *LinuxDiskSource) Usage(mountPoint string) (int64, int64, bool) {
	if !s.haveStat {
		if s.Statfs == nil {
			return 0, 0, false
		}
		stat, ok := s.Statfs(mountPoint)
		if !ok {
			return 0, 0, false
		}
		s.stat = stat
		s.haveStat = true
	}
	return s.stat.UsedBytes(), s.stat.TotalBytes(), true
}

// scanMtab visits each mount table entry's fields (device, directory,
// type, options, ...) until match returns a value.
func (s *LinuxDiskSource) scanMtab(match func(fields []string) (string, bool)) (string, bool) {
	file, err := os.Open(s.MtabPath)
	if err != nil {
		return "", false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		if value, found := match(fields); found {
			return value, true
		}
	}
	return "", false
}

// readIntFile reads a single integer from a one-line file, 0 on any
// failure. sysfs attribute files all use this shape.
func readIntFile(path string) int64 {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	value, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
