// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

package textscan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// errStopWalk is a sentinel returned from the walk callback to end the
// traversal early once enough matches have been collected.
var errStopWalk = errors.New("stop walk")

// replaceAllMaxPasses bounds ReplaceAll: a replacement whose text
// itself matches the pattern would otherwise never reach a fixed
// point.
const replaceAllMaxPasses = 32

// FindFirst walks baseDir and returns the first file or directory
// whose full path matches pattern. The second result is false when
// nothing matches, when baseDir does not exist, or when pattern does
// not compile.
func FindFirst(baseDir, pattern string) (string, bool) {
	matches := findMatches(baseDir, pattern, 1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// FindAll walks baseDir and collects up to max paths matching pattern,
// in traversal order. Matches beyond the cap are silently dropped. An
// empty result is not an error: it means the walk completed and
// nothing matched.
func FindAll(baseDir, pattern string, max int) []string {
	return findMatches(baseDir, pattern, max)
}

// findMatches implements FindFirst and FindAll. Entries that vanish or
// refuse access mid-walk are skipped: a probe scanning /sys has no
// business failing because one subtree is root-only. A failure of the
// walk machinery itself is different — if the process cannot enumerate
// the filesystem at all, no probe result can be trusted, so it aborts
// with a diagnostic.
func findMatches(baseDir, pattern string, max int) []string {
	if max <= 0 {
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}

	var matches []string
	walkErr := filepath.WalkDir(baseDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				return nil
			}
			return err
		}
		if !entry.IsDir() && !entry.Type().IsRegular() {
			return nil
		}
		if re.MatchString(path) {
			matches = append(matches, path)
			if len(matches) >= max {
				return errStopWalk
			}
		}
		return nil
	})
	if walkErr != nil && !errors.Is(walkErr, errStopWalk) {
		fmt.Fprintf(os.Stderr, "sysline: filesystem walk failed: %v\n", walkErr)
		os.Exit(1)
	}
	return matches
}

// ReplaceFirst replaces the first substring of subject matching
// pattern with replacement (taken literally, no group expansion) and
// returns the result. The subject is returned unchanged when the
// pattern does not compile, does not match, or when the replacement
// would grow the string to maxLen or beyond.
func ReplaceFirst(pattern, replacement, subject string, maxLen int) string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return subject
	}
	return replaceFirst(re, replacement, subject, maxLen)
}

// ReplaceAll applies ReplaceFirst repeatedly until a pass produces no
// change, so patterns that match in several places (or whose
// replacement exposes a new match) converge to a fixed point. The
// pattern is compiled once for all passes.
func ReplaceAll(pattern, replacement, subject string, maxLen int) string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return subject
	}
	for pass := 0; pass < replaceAllMaxPasses; pass++ {
		result := replaceFirst(re, replacement, subject, maxLen)
		if result == subject {
			break
		}
		subject = result
	}
	return subject
}

func replaceFirst(re *regexp.Regexp, replacement, subject string, maxLen int) string {
	loc := re.FindStringIndex(subject)
	if loc == nil {
		return subject
	}
	if len(subject)-(loc[1]-loc[0])+len(replacement) >= maxLen {
		return subject
	}
	return subject[:loc[0]] + replacement + subject[loc[1]:]
}

// Trim collapses every run of whitespace in s to a single space and
// strips leading and trailing whitespace.
func Trim(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
