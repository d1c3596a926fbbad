// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sysline-project/sysline/lib/textscan"
)

// modelMaxLen caps the CPU model string. Model strings are a line of
// /proc/cpuinfo or a sysctl brand string, both far below this; the cap
// exists so the replace pipeline's overflow guard has a bound to
// enforce.
const modelMaxLen = 8192

// CPUInfo holds the CPU domain record. Fields keep their zero value
// until the corresponding Read method succeeds.
type CPUInfo struct {
	Cores         int
	Model         string
	Load          [3]float64
	UsagePercent  float64
	FanRPM        int
	TempCelsius   float64
	UptimeSeconds int64

	source CPUSource

	// listProcesses runs the process table listing that backs
	// ReadUsage. Swapped out in tests.
	listProcesses func() ([]byte, error)
}

// NewCPUInfo returns a zero-valued CPU record backed by the platform
// CPU source.
func NewCPUInfo() *CPUInfo {
	return &CPUInfo{source: newCPUSource(), listProcesses: runProcessList}
}

// ReadCores resolves the logical core count. On failure the count
// resets to 0, which also invalidates ReadUsage until cores resolve.
func (c *CPUInfo) ReadCores() bool {
	cores, ok := c.source.Cores()
	if !ok {
		c.Cores = 0
		return false
	}
	c.Cores = cores
	return true
}

// ReadModel resolves the model string and normalizes it: an existing
// "@ X.YGHz" clause (or a bare "@") is rewritten to carry the core
// count and any separately resolved clock speed, vendor noise tokens
// are stripped, and whitespace is collapsed.
func (c *CPUInfo) ReadModel() bool {
	model, clockGHz, ok := c.source.Model()
	if !ok {
		c.Model = ""
		return false
	}
	c.Model = normalizeModel(model, c.Cores, clockGHz)
	return true
}

// normalizeModel is the platform-independent model string pipeline.
// Given "Intel(R) Core(TM) CPU @ 2.3GHz" with 4 cores and a resolved
// speed of 3.5 it produces "Intel Core (4) @ 3.5GHz" — the resolved
// speed wins over the embedded literal.
func normalizeModel(model string, cores int, clockGHz float64) string {
	if clockGHz > 0 {
		replacement := fmt.Sprintf("(%d) @ %.1fGHz", cores, clockGHz)
		model = textscan.ReplaceFirst(`@ ([0-9]+\.)?[0-9]+GHz`, replacement, model, modelMaxLen)
	} else {
		replacement := fmt.Sprintf("(%d) @", cores)
		model = textscan.ReplaceFirst(`@`, replacement, model, modelMaxLen)
	}
	model = textscan.ReplaceAll(`CPU|\((R|TM)\)`, "", model, modelMaxLen)
	return textscan.Trim(model)
}

// ReadLoad resolves the 1, 5, and 15 minute load averages.
func (c *CPUInfo) ReadLoad() bool {
	load, ok := c.source.LoadAverages()
	if !ok {
		c.Load = [3]float64{}
		return false
	}
	c.Load = load
	return true
}

// ReadUsage estimates aggregate CPU utilization by summing the %CPU
// column of the process table and dividing by the core count. The sum
// of per-process shares is not a true busy-versus-idle sample and can
// exceed 100% under measurement skew; that is expected. Requires a
// resolved core count and resolves it first if unset.
func (c *CPUInfo) ReadUsage() bool {
	if c.Cores == 0 {
		c.ReadCores()
	}
	if c.Cores == 0 {
		c.UsagePercent = 0
		return false
	}
	output, err := c.listProcesses()
	if err != nil {
		c.UsagePercent = 0
		return false
	}
	c.UsagePercent = sumProcessCPU(output) / float64(c.Cores)
	return true
}

// runProcessList spawns the process listing restricted to the
// percent-CPU column. ps speaks this dialect on every platform the
// probes support.
func runProcessList() ([]byte, error) {
	return exec.Command("ps", "-e", "-o", "%cpu").Output()
}

// sumProcessCPU sums the per-process %CPU values in a ps listing.
// Lines that do not start with a number (the "%CPU" header) are
// skipped.
func sumProcessCPU(listing []byte) float64 {
	var sum float64
	scanner := bufio.NewScanner(bytes.NewReader(listing))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		value, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		sum += value
	}
	return sum
}

// ReadFan resolves the first chassis fan speed in RPM.
func (c *CPUInfo) ReadFan() bool {
	rpm, ok := c.source.FanRPM()
	if !ok {
		c.FanRPM = 0
		return false
	}
	c.FanRPM = rpm
	return true
}

// ReadTemp resolves the package temperature in degrees Celsius.
func (c *CPUInfo) ReadTemp() bool {
	temp, ok := c.source.Temperature()
	if !ok {
		c.TempCelsius = 0
		return false
	}
	c.TempCelsius = temp
	return true
}

// ReadUptime resolves seconds since boot.
func (c *CPUInfo) ReadUptime() bool {
	uptime, ok := c.source.Uptime()
	if !ok {
		c.UptimeSeconds = 0
		return false
	}
	c.UptimeSeconds = uptime
	return true
}
