package service

import "errors"

var (
	// ErrNoTables is returned in document mode when none of the configured
	// table keys resolved to a table ID.
	ErrNoTables = errors.New("no table IDs provided")
)
