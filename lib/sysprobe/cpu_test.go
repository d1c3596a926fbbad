// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

import (
	"errors"
	"testing"
)

const sampleCPUInfo = `processor	: 0
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i5-8250U CPU @ 1.60GHz
cache size	: 6144 KB

processor	: 1
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i5-8250U CPU @ 1.60GHz
cache size	: 6144 KB
`

func TestLinuxCores(t *testing.T) {
	root := writeTree(t, map[string]string{"cpuinfo": sampleCPUInfo})
	source := &LinuxCPUSource{ProcRoot: root, SysRoot: t.TempDir()}

	cores, ok := source.Cores()
	if !ok {
		t.Fatal("Cores failed on a valid cpuinfo")
	}
	if cores != 2 {
		t.Errorf("Cores = %d, want 2", cores)
	}
}

func TestLinuxCoresMissingFile(t *testing.T) {
	source := &LinuxCPUSource{ProcRoot: "/nonexistent/proc", SysRoot: "/nonexistent/sys"}
	if _, ok := source.Cores(); ok {
		t.Error("Cores succeeded without a cpuinfo file")
	}
}

func TestReadCoresResetsOnFailure(t *testing.T) {
	cpu := &CPUInfo{source: &fakeCPUSource{}}
	cpu.Cores = 4

	if cpu.ReadCores() {
		t.Error("ReadCores succeeded against a failing source")
	}
	if cpu.Cores != 0 {
		t.Errorf("Cores = %d after failure, want 0", cpu.Cores)
	}
}

func TestLinuxModelWithFrequency(t *testing.T) {
	procRoot := writeTree(t, map[string]string{"cpuinfo": sampleCPUInfo})
	sysRoot := writeTree(t, map[string]string{
		"devices/system/cpu/cpu0/cpufreq/scaling_max_freq": "3400000\n",
	})
	source := &LinuxCPUSource{ProcRoot: procRoot, SysRoot: sysRoot}

	model, clockGHz, ok := source.Model()
	if !ok {
		t.Fatal("Model failed on a valid cpuinfo")
	}
	if model != "Intel(R) Core(TM) i5-8250U CPU @ 1.60GHz" {
		t.Errorf("model = %q", model)
	}
	if clockGHz != 3.4 {
		t.Errorf("clockGHz = %v, want 3.4", clockGHz)
	}
}

func TestLinuxModelFrequencyFirstNonzeroWins(t *testing.T) {
	procRoot := writeTree(t, map[string]string{"cpuinfo": sampleCPUInfo})
	sysRoot := writeTree(t, map[string]string{
		"devices/system/cpu/cpu0/cpufreq/bios_limit":  "0\n",
		"devices/system/cpu/cpufreq/cpuinfo_max_freq": "2000000\n",
	})
	source := &LinuxCPUSource{ProcRoot: procRoot, SysRoot: sysRoot}

	_, clockGHz, ok := source.Model()
	if !ok {
		t.Fatal("Model failed")
	}
	if clockGHz != 2.0 {
		t.Errorf("clockGHz = %v, want 2.0 (zero candidates must be skipped)", clockGHz)
	}
}

func TestLinuxModelNoFrequencyTree(t *testing.T) {
	procRoot := writeTree(t, map[string]string{"cpuinfo": sampleCPUInfo})
	source := &LinuxCPUSource{ProcRoot: procRoot, SysRoot: t.TempDir()}

	model, clockGHz, ok := source.Model()
	if !ok || model == "" {
		t.Fatal("Model should succeed without a frequency tree")
	}
	if clockGHz != 0 {
		t.Errorf("clockGHz = %v, want 0", clockGHz)
	}
}

func TestNormalizeModel(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		cores    int
		clockGHz float64
		want     string
	}{
		{
			name:     "resolved speed replaces embedded literal",
			model:    "Intel(R) Core(TM) CPU @ 2.3GHz",
			cores:    4,
			clockGHz: 3.5,
			want:     "Intel Core (4) @ 3.5GHz",
		},
		{
			name:  "bare at-sign annotated with core count",
			model: "Intel(R) Core(TM) i7-8559U CPU @ 2.70GHz",
			cores: 8,
			want:  "Intel Core i7-8559U (8) @ 2.70GHz",
		},
		{
			name:     "no clause to rewrite",
			model:    "AMD Ryzen 7 3700X 8-Core Processor",
			cores:    16,
			clockGHz: 4.4,
			want:     "AMD Ryzen 7 3700X 8-Core Processor",
		},
		{
			name:  "whitespace collapsed",
			model: "  Intel(R)   Xeon(R) CPU   E5-2680 ",
			cores: 0,
			want:  "Intel Xeon E5-2680",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := normalizeModel(test.model, test.cores, test.clockGHz)
			if got != test.want {
				t.Errorf("normalizeModel(%q, %d, %v) = %q, want %q",
					test.model, test.cores, test.clockGHz, got, test.want)
			}
		})
	}
}

func TestReadModelResetsOnFailure(t *testing.T) {
	cpu := &CPUInfo{source: &fakeCPUSource{}}
	cpu.Model = "stale"

	if cpu.ReadModel() {
		t.Error("ReadModel succeeded against a failing source")
	}
	if cpu.Model != "" {
		t.Errorf("Model = %q after failure, want empty", cpu.Model)
	}
}

func TestLinuxLoadAverages(t *testing.T) {
	root := writeTree(t, map[string]string{"loadavg": "0.52 0.58 0.59 1/973 12345\n"})
	source := &LinuxCPUSource{ProcRoot: root, SysRoot: t.TempDir()}

	load, ok := source.LoadAverages()
	if !ok {
		t.Fatal("LoadAverages failed on a valid loadavg")
	}
	want := [3]float64{0.52, 0.58, 0.59}
	if load != want {
		t.Errorf("LoadAverages = %v, want %v", load, want)
	}
}

func TestLinuxLoadAveragesMalformed(t *testing.T) {
	root := writeTree(t, map[string]string{"loadavg": "not numbers here\n"})
	source := &LinuxCPUSource{ProcRoot: root, SysRoot: t.TempDir()}

	if _, ok := source.LoadAverages(); ok {
		t.Error("LoadAverages succeeded on malformed input")
	}
}

func TestReadLoadResetsOnFailure(t *testing.T) {
	cpu := &CPUInfo{source: &fakeCPUSource{}}
	cpu.Load = [3]float64{1, 2, 3}

	if cpu.ReadLoad() {
		t.Error("ReadLoad succeeded against a failing source")
	}
	if cpu.Load != [3]float64{} {
		t.Errorf("Load = %v after failure, want zeros", cpu.Load)
	}
}

func TestLinuxUptime(t *testing.T) {
	root := writeTree(t, map[string]string{"uptime": "12345.67 98765.43\n"})
	source := &LinuxCPUSource{ProcRoot: root, SysRoot: t.TempDir()}

	uptime, ok := source.Uptime()
	if !ok {
		t.Fatal("Uptime failed on a valid uptime file")
	}
	if uptime != 12345 {
		t.Errorf("Uptime = %d, want 12345", uptime)
	}
}

func TestLinuxFanRPM(t *testing.T) {
	root := writeTree(t, map[string]string{
		"devices/platform/it87.656/hwmon/hwmon4/fan1_input": "1200\n",
	})
	source := &LinuxCPUSource{ProcRoot: t.TempDir(), SysRoot: root}

	rpm, ok := source.FanRPM()
	if !ok {
		t.Fatal("FanRPM failed with a fan1_input present")
	}
	if rpm != 1200 {
		t.Errorf("FanRPM = %d, want 1200", rpm)
	}
}

func TestLinuxFanRPMAbsent(t *testing.T) {
	source := &LinuxCPUSource{ProcRoot: t.TempDir(), SysRoot: t.TempDir()}
	if _, ok := source.FanRPM(); ok {
		t.Error("FanRPM succeeded without a fan1_input file")
	}
}

func TestLinuxTemperature(t *testing.T) {
	root := writeTree(t, map[string]string{
		"devices/platform/coretemp.0/hwmon/hwmon2/name":        "coretemp\n",
		"devices/platform/coretemp.0/hwmon/hwmon2/temp1_input": "45000\n",
	})
	source := &LinuxCPUSource{ProcRoot: t.TempDir(), SysRoot: root}

	temp, ok := source.Temperature()
	if !ok {
		t.Fatal("Temperature failed with a coretemp hwmon present")
	}
	if temp != 45.0 {
		t.Errorf("Temperature = %v, want 45.0", temp)
	}
}

func TestLinuxTemperatureSkipsNonThermalMonitors(t *testing.T) {
	// A hwmon whose name does not mention temp must not be selected.
	root := writeTree(t, map[string]string{
		"devices/platform/it87.656/hwmon/hwmon4/name":        "it8728\n",
		"devices/platform/it87.656/hwmon/hwmon4/temp1_input": "99000\n",
	})
	source := &LinuxCPUSource{ProcRoot: t.TempDir(), SysRoot: root}

	if _, ok := source.Temperature(); ok {
		t.Error("Temperature matched a hardware monitor not named for thermals")
	}
}

func TestSumProcessCPU(t *testing.T) {
	listing := "%CPU\n 1.5\n 2.5\n 0.0\n10.0\n"
	if got := sumProcessCPU([]byte(listing)); got != 14.0 {
		t.Errorf("sumProcessCPU = %v, want 14.0", got)
	}
}

func TestReadUsage(t *testing.T) {
	cpu := &CPUInfo{
		source:        &fakeCPUSource{cores: 4, coresOK: true},
		listProcesses: func() ([]byte, error) { return []byte("%CPU\n 50.0\n 30.0\n 20.0\n"), nil },
	}

	if !cpu.ReadUsage() {
		t.Fatal("ReadUsage failed")
	}
	if cpu.UsagePercent != 25.0 {
		t.Errorf("UsagePercent = %v, want 25.0", cpu.UsagePercent)
	}
	if cpu.Cores != 4 {
		t.Errorf("ReadUsage did not auto-resolve cores: %d", cpu.Cores)
	}
}

func TestReadUsageCanExceedHundredPercent(t *testing.T) {
	// Summing per-process shares is a coarse estimate; measurement skew
	// can push it past 100. That is documented behavior, not a bug.
	cpu := &CPUInfo{
		source:        &fakeCPUSource{cores: 1, coresOK: true},
		listProcesses: func() ([]byte, error) { return []byte("99.0\n 99.0\n"), nil },
	}

	if !cpu.ReadUsage() {
		t.Fatal("ReadUsage failed")
	}
	if cpu.UsagePercent <= 100 {
		t.Errorf("UsagePercent = %v, expected a value above 100", cpu.UsagePercent)
	}
}

func TestReadUsageFailsWithoutCores(t *testing.T) {
	cpu := &CPUInfo{
		source:        &fakeCPUSource{},
		listProcesses: func() ([]byte, error) { return []byte("50.0\n"), nil },
	}

	if cpu.ReadUsage() {
		t.Error("ReadUsage succeeded with no resolvable core count")
	}
	if cpu.UsagePercent != 0 {
		t.Errorf("UsagePercent = %v after failure, want 0", cpu.UsagePercent)
	}
}

func TestReadUsageFailsWhenListingCannotStart(t *testing.T) {
	cpu := &CPUInfo{
		source:        &fakeCPUSource{cores: 4, coresOK: true},
		listProcesses: func() ([]byte, error) { return nil, errors.New("exec: not found") },
	}

	if cpu.ReadUsage() {
		t.Error("ReadUsage succeeded when the listing could not start")
	}
}

func TestReadUsageIsIdempotent(t *testing.T) {
	cpu := &CPUInfo{
		source:        &fakeCPUSource{cores: 4, coresOK: true},
		listProcesses: func() ([]byte, error) { return []byte("40.0\n"), nil },
	}

	cpu.ReadUsage()
	first := cpu.UsagePercent
	cpu.ReadUsage()
	if cpu.UsagePercent != first {
		t.Errorf("second ReadUsage = %v, want %v (must not accumulate)", cpu.UsagePercent, first)
	}
}
