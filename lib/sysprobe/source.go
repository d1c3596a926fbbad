// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

// CPUSource is the platform-specific half of the CPU probe. Every
// method reports success with its second-to-last result; a false means
// the data source was unreadable or did not contain the value, never a
// fatal condition.
type CPUSource interface {
	// Cores returns the logical CPU count.
	Cores() (int, bool)

	// Model returns the raw model string and, where the platform
	// resolves one separately, the maximum clock speed in GHz (0 when
	// no speed was found; the model string may still embed one).
	Model() (model string, clockGHz float64, ok bool)

	// LoadAverages returns the 1, 5, and 15 minute load averages.
	LoadAverages() ([3]float64, bool)

	// FanRPM returns the first chassis fan speed. Unsupported on
	// non-Linux platforms.
	FanRPM() (int, bool)

	// Temperature returns the package temperature in degrees Celsius.
	// Unsupported on non-Linux platforms.
	Temperature() (float64, bool)

	// Uptime returns seconds since boot.
	Uptime() (int64, bool)
}

// MemSource reads physical memory figures, in bytes.
type MemSource interface {
	Used() (int64, bool)
	Total() (int64, bool)
}

// SwapSource reads swap figures, in bytes. Implementations whose
// platform exposes used and total through one expensive query may
// cache the result for the process lifetime; the cache is never
// invalidated.
type SwapSource interface {
	Used() (int64, bool)
	Total() (int64, bool)
}

// DiskSource resolves one mounted filesystem. Device is the join key:
// every other method takes the value an earlier Device call produced.
type DiskSource interface {
	// Device returns the backing device path for a mount point.
	Device(mountPoint string) (string, bool)

	// Name returns the device's partition name from its device
	// descriptor. Unsupported on non-Linux platforms.
	Name(device string) (string, bool)

	// MountPoint and FSType re-scan the mount table keyed by device.
	MountPoint(device string) (string, bool)
	FSType(device string) (string, bool)

	// Usage returns used and total bytes for the filesystem mounted at
	// mountPoint. Implementations may cache the statistics result for
	// the life of the source, since it cannot change meaningfully
	// within one process run.
	Usage(mountPoint string) (used, total int64, ok bool)
}
