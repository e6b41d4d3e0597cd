package parser

import (
	"facpoints/scoring"
	"facpoints/survey"
)

// Table is one header-first tabular export. Column names in Headers may
// repeat; rows are positional and may be shorter than the header.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ParseTable parses every row of a table into submissions, preserving row
// order. Rows without a derivable identity are dropped. A table without a
// header yields no submissions and no error.
func ParseTable(table Table, templates []Template, source scoring.Source) []survey.Submission {
	if len(table.Headers) == 0 {
		return nil
	}

	index := BuildColumnIndex(table.Headers)

	submissions := make([]survey.Submission, 0, len(table.Rows))
	for _, row := range table.Rows {
		if submission, ok := ParseRow(row, index, templates, source); ok {
			submissions = append(submissions, *submission)
		}
	}
	return submissions
}
