// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

// MemInfo holds the physical memory record.
type MemInfo struct {
	UsedBytes  int64
	TotalBytes int64
	Percent    float64

	source MemSource
}

// NewMemInfo returns a zero-valued memory record backed by the
// platform memory source.
func NewMemInfo() *MemInfo {
	return &MemInfo{source: newMemSource()}
}

// ReadUsed resolves used physical memory in bytes.
func (m *MemInfo) ReadUsed() bool {
	used, ok := m.source.Used()
	if !ok {
		m.UsedBytes = 0
		return false
	}
	m.UsedBytes = used
	return true
}

// ReadTotal resolves total physical memory in bytes.
func (m *MemInfo) ReadTotal() bool {
	total, ok := m.source.Total()
	if !ok {
		m.TotalBytes = 0
		return false
	}
	m.TotalBytes = total
	return true
}

// ReadPercent derives used/total as a percentage, resolving either
// operand first if it is still unset. Fails without dividing when
// either operand remains zero.
func (m *MemInfo) ReadPercent() bool {
	if m.UsedBytes == 0 {
		m.ReadUsed()
	}
	if m.UsedBytes == 0 {
		m.Percent = 0
		return false
	}
	if m.TotalBytes == 0 {
		m.ReadTotal()
	}
	if m.TotalBytes == 0 {
		m.Percent = 0
		return false
	}
	m.Percent = float64(m.UsedBytes) / float64(m.TotalBytes) * 100
	return true
}
