package parser

import (
	"fmt"

	"facpoints/scoring"
	"facpoints/survey"
)

// FileResult summarizes one imported file.
type FileResult struct {
	Path        string
	RowsRead    int
	RowsParsed  int
	RowsSkipped int
}

// Result accumulates counters across an import run. Submissions keep the
// original row order across files; aggregation depends on it.
type Result struct {
	FilesProcessed int
	RowsRead       int
	RowsParsed     int
	RowsSkipped    int
	Files          []FileResult
	Submissions    []survey.Submission
}

// Run reads and parses every input file in order. The template table is
// validated once up front; an overlap is a configuration error, not a data
// error.
func Run(paths []string, format string, templates []Template, source scoring.Source) (*Result, error) {
	if err := ValidateTemplates(templates); err != nil {
		return nil, fmt.Errorf("validate templates: %w", err)
	}

	result := &Result{Submissions: make([]survey.Submission, 0, 256)}
	for _, path := range paths {
		sourceFormat, err := InferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		table, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		submissions := ParseTable(table, templates, source)

		fileResult := FileResult{
			Path:        path,
			RowsRead:    len(table.Rows),
			RowsParsed:  len(submissions),
			RowsSkipped: len(table.Rows) - len(submissions),
		}
		result.Files = append(result.Files, fileResult)
		result.FilesProcessed++
		result.RowsRead += fileResult.RowsRead
		result.RowsParsed += fileResult.RowsParsed
		result.RowsSkipped += fileResult.RowsSkipped
		result.Submissions = append(result.Submissions, submissions...)
	}

	return result, nil
}
