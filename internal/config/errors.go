package config

import (
	"errors"
	"strings"
)

var (
	// ErrMissingRequiredVars indicates that one or more credentials needed
	// to talk to the Lark API are not configured anywhere.
	ErrMissingRequiredVars = errors.New("missing required vars")
)

// MissingVarsError lists every required variable that was empty after all
// configuration layers were merged.
type MissingVarsError struct {
	Names []string
}

func (e *MissingVarsError) Error() string {
	return "Missing required vars: " + strings.Join(e.Names, ", ")
}

func (e *MissingVarsError) Unwrap() error {
	return ErrMissingRequiredVars
}
