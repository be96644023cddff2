// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared user-facing message strings of bitable-schema.
//
// Keeping them in one place ensures the command, the service layer and the
// tests agree on the exact wording printed to stdout and stderr.
package app

const (
	// MsgNoTableIDsProvided is printed when document mode resolves no
	// tables from the configured table keys.
	MsgNoTableIDsProvided = "No table IDs provided."

	// MsgMissingTableIDsFormat is logged as a warning with the
	// comma-separated list of table keys that had no configured ID.
	MsgMissingTableIDsFormat = "Missing table IDs for: %s"

	// MsgWroteFormat confirms the path of the written schema document.
	MsgWroteFormat = "Wrote %s\n"
)
