// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux && !darwin && !freebsd

package sysprobe

func newCPUSource() CPUSource   { return unsupportedSource{} }
func newMemSource() MemSource   { return unsupportedSource{} }
func newSwapSource() SwapSource { return unsupportedSource{} }
func newDiskSource() DiskSource { return unsupportedSource{} }
