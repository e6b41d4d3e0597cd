package parser

import "strings"

// ColumnIndex maps a column name to the ordered list of positions at which it
// appears in the header row. Survey exports repeat column names for every
// repeating-group slot, so the position order is the only way to tell which
// logical slot a value belongs to.
type ColumnIndex map[string][]int

// BuildColumnIndex indexes a header row. Position order equals left-to-right
// header order. An empty header list yields an empty index.
func BuildColumnIndex(headers []string) ColumnIndex {
	index := make(ColumnIndex, len(headers))
	for position, header := range headers {
		index[header] = append(index[header], position)
	}
	return index
}

// Value returns the trimmed cell value for the occurrence-th appearance of a
// column, or "" when the occurrence or the cell does not exist.
func (c ColumnIndex) Value(row []string, column string, occurrence int) string {
	positions := c[column]
	if occurrence < 0 || occurrence >= len(positions) {
		return ""
	}
	position := positions[occurrence]
	if position >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[position])
}

// Occurrences returns how many times a column name appears in the header.
func (c ColumnIndex) Occurrences(column string) int {
	return len(c[column])
}
