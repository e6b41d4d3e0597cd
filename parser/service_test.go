package parser

import (
	"os"
	"path/filepath"
	"testing"

	"facpoints/scoring"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestRun_ParsesCSVAndCountsSkippedRows(t *testing.T) {
	csvContent := "Record ID,First name,Last name,UNMC email address,Which quarter are you reporting?\n" +
		"1,Jane,Doe,jdoe@unmc.edu,Q1\n" +
		"2,,,,\n" +
		"3,John,Smith,jsmith@unmc.edu,Q2\n"
	path := writeTempCSV(t, "export.csv", csvContent)

	result, err := Run([]string{path}, "", DefaultTemplates(), scoring.NewStaticSource())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FilesProcessed != 1 || result.RowsRead != 3 || result.RowsParsed != 2 || result.RowsSkipped != 1 {
		t.Fatalf("unexpected counters: %+v", result)
	}
	if len(result.Submissions) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(result.Submissions))
	}
	if result.Submissions[0].Quarter != "Q1" || result.Submissions[1].Quarter != "Q2" {
		t.Fatalf("submissions out of order: %q, %q", result.Submissions[0].Quarter, result.Submissions[1].Quarter)
	}
}

func TestRun_StripsUTF8BOM(t *testing.T) {
	csvContent := "\xEF\xBB\xBFRecord ID,First name,Last name\n1,Jane,Doe\n"
	path := writeTempCSV(t, "bom.csv", csvContent)

	result, err := Run([]string{path}, "csv", DefaultTemplates(), scoring.NewStaticSource())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Submissions) != 1 || result.Submissions[0].RecordID != "1" {
		t.Fatalf("BOM not stripped: %+v", result.Submissions)
	}
}

func TestRun_PreservesRowOrderAcrossFiles(t *testing.T) {
	first := writeTempCSV(t, "q1.csv", "First name,Last name,Which quarter are you reporting?\nJane,Doe,Q1\n")
	second := writeTempCSV(t, "q2.csv", "First name,Last name,Which quarter are you reporting?\nJane,Doe,Q2\n")

	result, err := Run([]string{first, second}, "csv", DefaultTemplates(), scoring.NewStaticSource())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Submissions) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(result.Submissions))
	}
	if result.Submissions[0].Quarter != "Q1" || result.Submissions[1].Quarter != "Q2" {
		t.Fatalf("file order not preserved: %q, %q", result.Submissions[0].Quarter, result.Submissions[1].Quarter)
	}
}

func TestRun_InvalidTemplatesRejected(t *testing.T) {
	templates := []Template{
		{Category: "a", Subcategory: "one", TypeColumn: "Your role", MaxSlots: 5},
		{Category: "a", Subcategory: "two", TypeColumn: "Your role", MaxSlots: 5, StartOffset: 3},
	}

	if _, err := Run(nil, "csv", templates, scoring.NewStaticSource()); err == nil {
		t.Fatalf("expected template validation error")
	}
}

func TestInferFormat(t *testing.T) {
	format, err := InferFormat("export.xlsx", "")
	if err != nil || format != "excel" {
		t.Fatalf("expected excel, got %q (err: %v)", format, err)
	}
	format, err = InferFormat("export.csv", "")
	if err != nil || format != "csv" {
		t.Fatalf("expected csv, got %q (err: %v)", format, err)
	}
	format, err = InferFormat("export.dat", "csv")
	if err != nil || format != "csv" {
		t.Fatalf("explicit format must win, got %q (err: %v)", format, err)
	}
	if _, err := InferFormat("export.dat", ""); err == nil {
		t.Fatalf("expected error for unknown extension")
	}
}
