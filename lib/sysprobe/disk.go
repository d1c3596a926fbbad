// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

// DiskInfo holds the record for one mounted filesystem. The resolvers
// form a dependency chain: the backing device is the join key into the
// mount table, so every other field requires it (and auto-resolves it
// when unset). Usage additionally requires the mount point.
type DiskInfo struct {
	Device     string
	Name       string
	MountPoint string
	FSType     string
	UsedBytes  int64
	TotalBytes int64
	Percent    float64

	// mount is the probe target: the mount point whose filesystem this
	// record describes.
	mount string

	source DiskSource
}

// NewDiskInfo returns a zero-valued disk record probing the filesystem
// mounted at mountPoint (the root mount when empty).
func NewDiskInfo(mountPoint string) *DiskInfo {
	if mountPoint == "" {
		mountPoint = "/"
	}
	return &DiskInfo{mount: mountPoint, source: newDiskSource()}
}

// ReadDevice resolves the backing device path for the probe target by
// scanning the mount table.
func (d *DiskInfo) ReadDevice() bool {
	device, ok := d.source.Device(d.mount)
	if !ok {
		d.Device = ""
		return false
	}
	d.Device = device
	return true
}

// requireDevice resolves the device if unset. Resolvers downstream of
// the join key call this first and fail cleanly when it fails.
func (d *DiskInfo) requireDevice() bool {
	if d.Device != "" {
		return true
	}
	return d.ReadDevice()
}

// ReadName resolves the device's partition name from its device
// descriptor.
func (d *DiskInfo) ReadName() bool {
	if !d.requireDevice() {
		d.Name = ""
		return false
	}
	name, ok := d.source.Name(d.Device)
	if !ok {
		d.Name = ""
		return false
	}
	d.Name = name
	return true
}

// ReadMountPoint re-scans the mount table keyed by device and stores
// the mount directory.
func (d *DiskInfo) ReadMountPoint() bool {
	if !d.requireDevice() {
		d.MountPoint = ""
		return false
	}
	mount, ok := d.source.MountPoint(d.Device)
	if !ok {
		d.MountPoint = ""
		return false
	}
	d.MountPoint = mount
	return true
}

// ReadFSType re-scans the mount table keyed by device and stores the
// filesystem type.
func (d *DiskInfo) ReadFSType() bool {
	if !d.requireDevice() {
		d.FSType = ""
		return false
	}
	fsType, ok := d.source.FSType(d.Device)
	if !ok {
		d.FSType = ""
		return false
	}
	d.FSType = fsType
	return true
}

// requireMountPoint resolves the mount point (and transitively the
// device) if unset.
func (d *DiskInfo) requireMountPoint() bool {
	if d.MountPoint != "" {
		return true
	}
	return d.ReadMountPoint()
}

// ReadUsed resolves used bytes on the filesystem.
func (d *DiskInfo) ReadUsed() bool {
	if !d.requireMountPoint() {
		d.UsedBytes = 0
		return false
	}
	used, _, ok := d.source.Usage(d.MountPoint)
	if !ok {
		d.UsedBytes = 0
		return false
	}
	d.UsedBytes = used
	return true
}

// ReadTotal resolves total bytes on the filesystem.
func (d *DiskInfo) ReadTotal() bool {
	if !d.requireMountPoint() {
		d.TotalBytes = 0
		return false
	}
	_, total, ok := d.source.Usage(d.MountPoint)
	if !ok {
		d.TotalBytes = 0
		return false
	}
	d.TotalBytes = total
	return true
}

// ReadPercent derives used/total as a percentage with the same lazy
// resolution contract as the memory and swap records.
func (d *DiskInfo) ReadPercent() bool {
	if d.UsedBytes == 0 {
		d.ReadUsed()
	}
	if d.UsedBytes == 0 {
		d.Percent = 0
		return false
	}
	if d.TotalBytes == 0 {
		d.ReadTotal()
	}
	if d.TotalBytes == 0 {
		d.Percent = 0
		return false
	}
	d.Percent = float64(d.UsedBytes) / float64(d.TotalBytes) * 100
	return true
}
