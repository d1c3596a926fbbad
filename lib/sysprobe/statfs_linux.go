// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package sysprobe

import "golang.org/x/sys/unix"

// statfsQuery reads filesystem statistics for a mount point. The
// fragment size (f_frsize) is the unit block counts are reported in.
func statfsQuery(path string) (FSStat, bool) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return FSStat{}, false
	}
	return FSStat{
		Blocks:       stat.Blocks,
		BlocksFree:   stat.Bfree,
		FragmentSize: int64(stat.Frsize),
	}, true
}
