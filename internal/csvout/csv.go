// Package csvout renders generated rows to CSV documents for the bulk
// importer. Escaping is deliberately explicit: a field is quoted if and
// only if it contains a comma, a double quote, or a newline, so that
// serialization is idempotent under a standard CSV round trip.
package csvout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Field escapes a single CSV value. Internal double quotes are doubled.
// Empty values emit an empty field.
func Field(v string) string {
	if !strings.ContainsAny(v, ",\"\n\r") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// Row renders one newline-terminated CSV row.
func Row(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = Field(f)
	}
	return strings.Join(escaped, ",") + "\n"
}

// Document renders a header row followed by data rows. Every row must
// have the same column count as the header.
func Document(header []string, rows [][]string) (string, error) {
	var b strings.Builder
	b.WriteString(Row(header))
	for i, row := range rows {
		if len(row) != len(header) {
			return "", fmt.Errorf("row %d has %d columns, header has %d", i, len(row), len(header))
		}
		b.WriteString(Row(row))
	}
	return b.String(), nil
}

// WriteFile renders the document and writes it to path, creating the
// parent directory if needed. Any underlying failure propagates; there
// is no partial-write cleanup.
func WriteFile(path string, header []string, rows [][]string) error {
	doc, err := Document(header, rows)
	if err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
