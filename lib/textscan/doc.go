// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

// Package textscan provides the text-extraction primitives the probe
// packages are built on: recursive path search by regular expression
// ([FindFirst], [FindAll]), bounded in-string regex replacement
// ([ReplaceFirst], [ReplaceAll]), and whitespace normalization
// ([Trim]).
//
// The search functions walk a directory tree physically (symlinks are
// not followed) and match the pattern against the full path of every
// file and directory visited. Traversal order is whatever order the
// host filesystem yields — deterministic for a given tree at a given
// moment, but not sorted. Callers that can match more than one path
// must not depend on which one is returned.
//
// The replace functions carry a maximum-length guard: a replacement
// whose result would reach the cap is silently skipped rather than
// truncated. This mirrors the fixed-buffer behavior of the interfaces
// these helpers were designed around (CPU model strings, sysfs paths)
// where truncating mid-token is worse than leaving the input alone.
//
// This package knows nothing about operating-system metrics.
package textscan
