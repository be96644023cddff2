// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command bitable-schema lists the field definitions of Lark Bitable tables.
//
// With a single table ID (--table-id or BITABLE_TABLE_ID) it prints one
// "name<TAB>type<TAB>id" line per field to stdout. Otherwise it documents
// every table named by --table-keys in a Markdown file.
//
// Exit codes: 0 on success, 2 on missing configuration, 1 on any other
// failure.
package main

import (
	"context"
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
