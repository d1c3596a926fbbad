// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package sysprobe

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree builds a synthetic pseudo-filesystem under a temp
// directory: each key is a relative file path, each value its content.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return root
}

// fakeCPUSource lets record tests script every platform answer.
type fakeCPUSource struct {
	cores    int
	coresOK  bool
	model    string
	clockGHz float64
	modelOK  bool
	load     [3]float64
	loadOK   bool
	fan      int
	fanOK    bool
	temp     float64
	tempOK   bool
	uptime   int64
	uptimeOK bool
}

func (s *fakeCPUSource) Cores() (int, bool)               { return s.cores, s.coresOK }
func (s *fakeCPUSource) Model() (string, float64, bool)   { return s.model, s.clockGHz, s.modelOK }
func (s *fakeCPUSource) LoadAverages() ([3]float64, bool) { return s.load, s.loadOK }
func (s *fakeCPUSource) FanRPM() (int, bool)              { return s.fan, s.fanOK }
func (s *fakeCPUSource) Temperature() (float64, bool)     { return s.temp, s.tempOK }
func (s *fakeCPUSource) Uptime() (int64, bool)            { return s.uptime, s.uptimeOK }

// fakeByteSource serves MemSource and SwapSource.
type fakeByteSource struct {
	used    int64
	usedOK  bool
	total   int64
	totalOK bool
}

func (s *fakeByteSource) Used() (int64, bool)  { return s.used, s.usedOK }
func (s *fakeByteSource) Total() (int64, bool) { return s.total, s.totalOK }
