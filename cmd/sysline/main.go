// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/sysline-project/sysline/lib/sysprobe"
)

const version = "0.3.0"

func main() {
	os.Exit(run())
}

func run() int {
	var all bool
	var mountPoint string
	var debug bool

	flagSet := pflag.NewFlagSet("sysline", pflag.ContinueOnError)
	flagSet.BoolVarP(&all, "all", "a", false, "probe every domain")
	flagSet.StringVar(&mountPoint, "mount", "/", "mount point the disk domain probes")
	flagSet.BoolVar(&debug, "debug", false, "log failed getters to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("sysline %s\n", version)
		return 0
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printUsage(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if help, _ := flagSet.GetBool("help"); help {
		printUsage(flagSet)
		return 0
	}

	domains, err := selectDomains(flagSet.Args(), all, mountPoint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		printUsage(flagSet)
		return 2
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	system := sysprobe.NewSystem(domains)
	printSystem(os.Stdout, system, logger)
	return 0
}

// selectDomains maps positional arguments onto the domain set. --all
// ORs every domain on.
func selectDomains(args []string, all bool, mountPoint string) (sysprobe.Domains, error) {
	domains := sysprobe.Domains{DiskMount: mountPoint}
	for _, arg := range args {
		switch arg {
		case "cpu":
			domains.CPU = true
		case "mem":
			domains.Mem = true
		case "swap":
			domains.Swap = true
		case "disk":
			domains.Disk = true
		default:
			return sysprobe.Domains{}, fmt.Errorf("unknown domain %q", arg)
		}
	}
	if all {
		domains.CPU, domains.Mem, domains.Swap, domains.Disk = true, true, true, true
	}
	return domains, nil
}

// field pairs one getter with the line it prints. Getters run in the
// listed order so that core count resolves before usage and the disk
// chain resolves front to back.
type field struct {
	key   string
	read  func() bool
	value func() string
}

func printSystem(out io.Writer, system *sysprobe.System, logger *slog.Logger) {
	var fields []field
	if system.CPU != nil {
		fields = append(fields, cpuFields(system.CPU)...)
	}
	if system.Mem != nil {
		fields = append(fields, memFields(system.Mem)...)
	}
	if system.Swap != nil {
		fields = append(fields, swapFields(system.Swap)...)
	}
	if system.Disk != nil {
		fields = append(fields, diskFields(system.Disk)...)
	}

	for _, f := range fields {
		if !f.read() {
			logger.Debug("probe failed", "field", f.key)
		}
		fmt.Fprintf(out, "%s:\t%s\n", f.key, f.value())
	}
}

func cpuFields(cpu *sysprobe.CPUInfo) []field {
	return []field{
		{"cpu.cores", cpu.ReadCores, func() string { return fmt.Sprintf("%d", cpu.Cores) }},
		{"cpu.model", cpu.ReadModel, func() string { return fmt.Sprintf("%q", cpu.Model) }},
		{"cpu.load", cpu.ReadLoad, func() string {
			return fmt.Sprintf("%.2f %.2f %.2f", cpu.Load[0], cpu.Load[1], cpu.Load[2])
		}},
		{"cpu.usage", cpu.ReadUsage, func() string { return fmt.Sprintf("%.1f", cpu.UsagePercent) }},
		{"cpu.fan", cpu.ReadFan, func() string { return fmt.Sprintf("%d", cpu.FanRPM) }},
		{"cpu.temp", cpu.ReadTemp, func() string { return fmt.Sprintf("%.1f", cpu.TempCelsius) }},
		{"cpu.uptime", cpu.ReadUptime, func() string { return fmt.Sprintf("%d", cpu.UptimeSeconds) }},
	}
}

func memFields(mem *sysprobe.MemInfo) []field {
	return []field{
		{"mem.used", mem.ReadUsed, func() string { return fmt.Sprintf("%d", mem.UsedBytes) }},
		{"mem.total", mem.ReadTotal, func() string { return fmt.Sprintf("%d", mem.TotalBytes) }},
		{"mem.percent", mem.ReadPercent, func() string { return fmt.Sprintf("%.1f", mem.Percent) }},
	}
}

func swapFields(swap *sysprobe.SwapInfo) []field {
	return []field{
		{"swap.used", swap.ReadUsed, func() string { return fmt.Sprintf("%d", swap.UsedBytes) }},
		{"swap.total", swap.ReadTotal, func() string { return fmt.Sprintf("%d", swap.TotalBytes) }},
		{"swap.percent", swap.ReadPercent, func() string { return fmt.Sprintf("%.1f", swap.Percent) }},
	}
}

func diskFields(disk *sysprobe.DiskInfo) []field {
	return []field{
		{"disk.device", disk.ReadDevice, func() string { return fmt.Sprintf("%q", disk.Device) }},
		{"disk.name", disk.ReadName, func() string { return fmt.Sprintf("%q", disk.Name) }},
		{"disk.mount", disk.ReadMountPoint, func() string { return fmt.Sprintf("%q", disk.MountPoint) }},
		{"disk.type", disk.ReadFSType, func() string { return fmt.Sprintf("%q", disk.FSType) }},
		{"disk.used", disk.ReadUsed, func() string { return fmt.Sprintf("%d", disk.UsedBytes) }},
		{"disk.total", disk.ReadTotal, func() string { return fmt.Sprintf("%d", disk.TotalBytes) }},
		{"disk.percent", disk.ReadPercent, func() string { return fmt.Sprintf("%.1f", disk.Percent) }},
	}
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `sysline - print host telemetry for a status line

Usage:
  sysline [flags] [cpu] [mem] [swap] [disk]

Flags:
%s
Each selected domain prints one "domain.field:<TAB>value" line per
field, in a fixed order. Failed probes print their zero value.
`, flagSet.FlagUsages())
}
