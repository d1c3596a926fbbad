// Copyright 2026 The Sysline Authors
// SPDX-License-Identifier: Apache-2.0

// Sysline prints instantaneous host telemetry as labelled lines for a
// status bar to consume. It runs once per invocation: a bar refresh
// loop re-invokes it at whatever cadence it wants.
//
// Domains are selected positionally (cpu, mem, swap, disk) or all at
// once with --all. For each selected domain every getter runs in a
// fixed order and the resolved values print as
//
//	domain.field:<TAB>value
//
// with string values quoted. A getter that fails leaves its field at
// the zero value, which still prints — partial telemetry beats none on
// a status line. The output format belongs to this command, not to the
// probe library, and is not a stable interface.
//
// Exit codes:
//
//	0  ran (individual probe failures do not change the exit code)
//	1  the filesystem itself could not be enumerated
//	2  bad arguments
package main
