// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

// unsupportedSource backs every domain on platforms the probes do not
// cover: each getter fails and every field stays at its sentinel, so
// the tool still runs and prints unset values instead of refusing to
// build.
type unsupportedSource struct{}

func (unsupportedSource) Cores() (int, bool) { return 0, false }
func (unsupportedSource) Model() (string, float64, bool) { return "", 0, false }
func (unsupportedSource) LoadAverages() ([3]float64, bool) { return [3]float64{}, false }
func (unsupportedSource) FanRPM() (int, bool) { return 0, false }
func (unsupportedSource) Temperature() (float64, bool) { return 0, false }
func (unsupportedSource) Uptime() (int64, bool) { return 0, false }
func (unsupportedSource) Used() (int64, bool) { return 0, false }
func (unsupportedSource) Total() (int64, bool) { return 0, false }
func (unsupportedSource) Device(string) (string, bool) { return "", false }
func (unsupportedSource) Name(string) (string, bool) { return "", false }
func (unsupportedSource) MountPoint(string) (string, bool) { return "", false }
func (unsupportedSource) FSType(string) (string, bool) { return "", false }
func (unsupportedSource) Usage(string) (int64, int64, bool) { return 0, 0, false }
