// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render formats fetched Bitable fields for output.
//
// Two mutually exclusive modes exist: [Lines] writes tab-separated lines for
// a single table, [Markdown] builds a schema document covering many tables.
// Both use [TypeLabel] for the type column.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/MKhiriev/bitable-schema/models"
)

// DocumentTitle is the top-level heading of the Markdown document.
const DocumentTitle = "Bitable Schema"

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

// TypeLabel returns the numeric type code, or "<type> (ui_type <ui_type>)"
// when the field carries a ui_type.
func TypeLabel(f models.Field) string {
	if f.UIType == nil {
		return strconv.Itoa(f.Type)
	}
	return fmt.Sprintf("%d (ui_type %s)", f.Type, *f.UIType)
}

// Lines writes one "name<TAB>type<TAB>id" line per field to w.
func Lines(w io.Writer, fields []models.Field) error {
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", f.FieldName, TypeLabel(f), f.FieldID); err != nil {
			return fmt.Errorf("write field line: %w", err)
		}
	}
	return nil
}

// Markdown renders tables as a Markdown document: a title, then per table a
// "## key (id)" heading and a three-column field table. The result always
// ends with exactly one newline.
func Markdown(tables []models.Table) string {
	var b strings.Builder

	b.WriteString("# " + DocumentTitle + "\n\n")
	for _, table := range tables {
		fmt.Fprintf(&b, "## %s (%s)\n\n", table.Key, table.ID)
		b.WriteString("| Field | Type | Field ID |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, f := range table.Fields {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				escapeCell(f.FieldName), escapeCell(TypeLabel(f)), escapeCell(f.FieldID))
		}
		b.WriteString("\n")
	}

	return strings.TrimRightFunc(b.String(), unicode.IsSpace) + "\n"
}

// escapeCell keeps a value inside its table cell: pipes are escaped and
// newlines collapse to a space.
func escapeCell(v string) string {
	return cellEscaper.Replace(v)
}
