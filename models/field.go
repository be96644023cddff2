// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Field is a single column definition of a Bitable table as returned by the
// fields listing endpoint.
type Field struct {
	// FieldID is the server-assigned identifier (e.g. "fldXXXXXXXX"). Unique
	// within a table.
	FieldID string `json:"field_id"`

	// FieldName is the human-readable column name. May contain any
	// characters, including "|" and newlines.
	FieldName string `json:"field_name"`

	// Type is the numeric field type code (1 = text, 3 = single select, ...).
	Type int `json:"type"`

	// UIType is the UI-specific subtype. Nil when the server omits it or
	// sends null.
	UIType *UIType `json:"ui_type,omitempty"`
}

// UIType is the textual form of a field's ui_type. The server sends either a
// number or a string name depending on the API revision, so both are
// accepted and kept verbatim.
type UIType string

// UnmarshalJSON accepts a JSON number or a JSON string. Any other value is
// kept as its raw JSON text.
func (u *UIType) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*u = UIType(strconv.FormatFloat(value, 'f', -1, 64))
	case string:
		*u = UIType(value)
	default:
		*u = UIType(bytes.TrimSpace(b))
	}

	return nil
}

// NewUIType returns a pointer to a UIType, handy for building fields in code.
func NewUIType(v string) *UIType {
	u := UIType(v)
	return &u
}

// Table is one Bitable table resolved from configuration together with the
// fields fetched for it.
type Table struct {
	// Key is the logical name of the table, i.e. the configuration variable
	// its ID was read from (e.g. "APPLICATIONS_TABLE_ID").
	Key string

	// ID is the remote table identifier ("tblXXXXXXXX").
	ID string

	// Fields holds the table's fields in server order. Empty until fetched.
	Fields []Field
}
