// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

const sampleVMStat = `Mach Virtual Memory Statistics: (page size of 4096 bytes)
Pages free:                              432878.
Pages active:                            123456.
Pages inactive:                          220011.
Pages speculative:                        14025.
Pages throttled:                              0.
Pages wired down:                        432134.
Pages purgeable:                           9031.
"Translation faults":                 123456789.
Pages occupied by compressor:             98765.
Pages stored in compressor:              300123.
`

func TestVMStatUsedBytes(t *testing.T) {
	// wired + active + compressor-occupied pages, at 4 KiB each. Free,
	// inactive, and speculative pages must not contribute.
	want := int64(432134+123456+98765) * 4096
	if got := vmStatUsedBytes([]byte(sampleVMStat)); got != want {
		t.Errorf("vmStatUsedBytes = %d, want %d", got, want)
	}
}

func TestBSDMemUsed(t *testing.T) {
	source := &BSDMemSource{
		VMStat:  func() ([]byte, error) { return []byte(sampleVMStat), nil },
		MemSize: func() (int64, bool) { return 16 << 30, true },
	}

	used, ok := source.Used()
	if !ok {
		t.Fatal("Used failed with a valid vm_stat listing")
	}
	if want := int64(654355) * 4096; used != want {
		t.Errorf("Used = %d, want %d", used, want)
	}
}

func TestBSDMemUsedWithoutVMStat(t *testing.T) {
	source := &BSDMemSource{MemSize: func() (int64, bool) { return 16 << 30, true }}
	if _, ok := source.Used(); ok {
		t.Error("Used succeeded without a vm_stat command")
	}
	if total, ok := source.Total(); !ok || total != 16<<30 {
		t.Errorf("Total = %d, %v", total, ok)
	}
}

func TestBSDMemUsedSpawnFailure(t *testing.T) {
	source := &BSDMemSource{
		VMStat: func() ([]byte, error) { return nil, errors.New("exec: not found") },
	}
	if _, ok := source.Used(); ok {
		t.Error("Used succeeded when vm_stat could not run")
	}
}

// packLoadAvg encodes the vm.loadavg struct layout: three fixed-point
// uint32 samples followed by the int64 scale factor.
func packLoadAvg(samples [3]uint32, scale uint64) []byte {
	raw := make([]byte, 24)
	for i, sample := range samples {
		binary.LittleEndian.PutUint32(raw[i*4:], sample)
	}
	binary.LittleEndian.PutUint64(raw[16:24], scale)
	return raw
}

func TestParseLoadAvg(t *testing.T) {
	load, ok := parseLoadAvg(packLoadAvg([3]uint32{1024, 2048, 4096}, 2048))
	if !ok {
		t.Fatal("parseLoadAvg failed on a well-formed struct")
	}
	want := [3]float64{0.5, 1.0, 2.0}
	if load != want {
		t.Errorf("parseLoadAvg = %v, want %v", load, want)
	}
}

func TestParseLoadAvgRejectsShortAndZeroScale(t *testing.T) {
	if _, ok := parseLoadAvg(make([]byte, 12)); ok {
		t.Error("parseLoadAvg accepted a truncated struct")
	}
	if _, ok := parseLoadAvg(packLoadAvg([3]uint32{1, 2, 3}, 0)); ok {
		t.Error("parseLoadAvg accepted a zero scale factor")
	}
}

func TestBSDCPUUptime(t *testing.T) {
	source := &BSDCPUSource{
		BootTime: func() (int64, bool) { return 1_700_000_000, true },
		Now:      func() time.Time { return time.Unix(1_700_012_345, 500_000_000) },
	}

	uptime, ok := source.Uptime()
	if !ok {
		t.Fatal("Uptime failed with a boot timestamp available")
	}
	if uptime != 12345 {
		t.Errorf("Uptime = %d, want 12345", uptime)
	}
}

func TestBSDCPUModelThroughPipeline(t *testing.T) {
	source := &BSDCPUSource{
		LogicalCPUs: func() (int, bool) { return 8, true },
		BrandString: func() (string, bool) {
			return "Intel(R) Core(TM) i7-8559U CPU @ 2.70GHz", true
		},
	}
	cpu := &CPUInfo{source: source}

	if !cpu.ReadCores() || !cpu.ReadModel() {
		t.Fatal("ReadCores or ReadModel failed")
	}
	// Brand strings carry a textual clock speed, so the bare at-sign
	// rewrite annotates cores and keeps the embedded figure.
	if want := "Intel Core i7-8559U (8) @ 2.70GHz"; cpu.Model != want {
		t.Errorf("Model = %q, want %q", cpu.Model, want)
	}
}

func TestBSDCPUHasNoSensors(t *testing.T) {
	source := &BSDCPUSource{}
	if _, ok := source.FanRPM(); ok {
		t.Error("FanRPM succeeded; no sysctl equivalent exists")
	}
	if _, ok := source.Temperature(); ok {
		t.Error("Temperature succeeded; no sysctl equivalent exists")
	}
}
