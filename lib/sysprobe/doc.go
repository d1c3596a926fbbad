// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

// Package sysprobe collects instantaneous host telemetry for status
// line display: CPU identity and utilization, load averages, fan
// speed, package temperature, uptime, and memory, swap, and disk
// usage.
//
// # Records and getters
//
// Each domain has a record type ([CPUInfo], [MemInfo], [SwapInfo],
// [DiskInfo]) whose fields start at an unset sentinel (zero or empty)
// and a set of Read methods that each resolve one field or one small
// group of fields. A Read method reports success with a bool; on
// failure it resets its fields to the sentinel rather than leaving
// stale data. No failure is fatal — callers print whatever resolved.
// Reads are idempotent and safe to retry, and derived values (the
// percent fields) resolve their operands lazily, refusing to divide
// until both are nonzero.
//
// # Platform sources
//
// The raw operating-system access behind each record is a per-domain
// source interface ([CPUSource], [MemSource], [SwapSource],
// [DiskSource]) selected once at construction by build tag. Linux
// sources parse the /proc and /sys pseudo-filesystems and /etc/mtab;
// Darwin sources use sysctl parameters, the vm_stat command, and the
// getfsstat mount table; FreeBSD carries the partial variant (CPU,
// load, uptime, total memory, disk usage — no swap, fan, or thermal
// probes). The Linux source structs take explicit root paths so tests
// can point them at synthetic trees on any platform.
//
// All of this is single-threaded, blocking I/O with no timeouts: a
// hung read or subprocess blocks the whole invocation. That is an
// accepted limitation of a one-shot tool, not a feature.
package sysprobe
