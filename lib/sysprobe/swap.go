// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

// SwapInfo holds the swap record.
type SwapInfo struct {
	UsedBytes  int64
	TotalBytes int64
	Percent    float64

	source SwapSource
}

// NewSwapInfo returns a zero-valued swap record backed by the platform
// swap source.
func NewSwapInfo() *SwapInfo {
	return &SwapInfo{source: newSwapSource()}
}

// ReadUsed resolves used swap in bytes. Total is resolved first if
// unset: on Linux used is derived as total minus free.
func (s *SwapInfo) ReadUsed() bool {
	if s.TotalBytes == 0 {
		s.ReadTotal()
	}
	used, ok := s.source.Used()
	if !ok {
		s.UsedBytes = 0
		return false
	}
	s.UsedBytes = used
	return true
}

// ReadTotal resolves total swap in bytes.
func (s *SwapInfo) ReadTotal() bool {
	total, ok := s.source.Total()
	if !ok {
		s.TotalBytes = 0
		return false
	}
	s.TotalBytes = total
	return true
}

// ReadPercent derives used/total as a percentage with the same lazy
// resolution contract as MemInfo.ReadPercent.
func (s *SwapInfo) ReadPercent() bool {
	if s.UsedBytes == 0 {
		s.ReadUsed()
	}
	if s.UsedBytes == 0 {
		s.Percent = 0
		return false
	}
	if s.TotalBytes == 0 {
		s.ReadTotal()
	}
	if s.TotalBytes == 0 {
		s.Percent = 0
		return false
	}
	s.Percent = float64(s.UsedBytes) / float64(s.TotalBytes) * 100
	return true
}
