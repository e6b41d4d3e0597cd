package aggregate

import (
	"testing"

	"facpoints/parser"
	"facpoints/scoring"
	"facpoints/survey"
)

// Exercises the whole pipeline: parse two rows for the same person, aggregate,
// index, and recalculate.
func TestParseAggregateRecalculate(t *testing.T) {
	headers := []string{
		"Record ID", "First name", "Last name", "UNMC email address",
		"Which quarter are you reporting?",
		"Committee type", "Committee name", "Your role (member, chair, etc.)", "Points for Committee #1",
		"Lecture/curriculum type", "Lecture title", "Date delivered", "Points for Lecture #1",
		"Total Citizenship Points", "Total Education Points", "TOTAL AVC ACADEMIC PRODUCTIVITY POINTS",
		"Complete?",
	}
	rows := [][]string{
		{
			"101", "Jane", "Doe", "jdoe@unmc.edu", "Q1",
			"Minor or ad hoc committee", "QI Taskforce", "Member", "100",
			"", "", "", "",
			"100", "0", "100",
			"Complete",
		},
		{
			"102", "Jane", "Doe", "JDoe@UNMC.edu", "Q2",
			"", "", "", "",
			"New Lecture", "Airway Basics", "2026-04-02", "250",
			"0", "250", "250",
			"Incomplete",
		},
	}

	source := scoring.NewStaticSource()
	submissions := parser.ParseTable(parser.Table{Headers: headers, Rows: rows}, parser.DefaultTemplates(), source)
	if len(submissions) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(submissions))
	}

	faculty := ByFaculty(submissions)
	if len(faculty) != 1 {
		t.Fatalf("expected the differently-cased emails to merge, got %d records", len(faculty))
	}
	record := faculty["jdoe@unmc.edu"]
	if record == nil {
		t.Fatalf("missing record, keys: %v", recordKeys(faculty))
	}

	if !record.HasIncomplete {
		t.Fatalf("Q2 submission was incomplete; the record must carry the flag")
	}
	if record.Totals[survey.TotalKey] != 350 {
		t.Fatalf("expected 350 export-sum total, got %d", record.Totals[survey.TotalKey])
	}
	if len(record.QuartersReported) != 2 {
		t.Fatalf("expected Q1 and Q2, got %v", record.QuartersReported)
	}

	index := BuildActivityIndex(faculty)
	if len(index["citizenship.committees"]) != 1 {
		t.Fatalf("expected committee entry in index")
	}
	if len(index["education.lectures"]) != 1 {
		t.Fatalf("expected lecture entry in index")
	}
	if index["education.lectures"][0].Quarter != "Q2" {
		t.Fatalf("lecture entry not stamped with its quarter: %+v", index["education.lectures"][0])
	}

	// committee_minor 100 + lecture_new 250.
	record.Totals = scoring.Recalculate(record, source)
	if record.Totals[survey.CategoryCitizenship] != 100 || record.Totals[survey.CategoryEducation] != 250 {
		t.Fatalf("unexpected recalculated category totals: %v", record.Totals)
	}
	if record.Totals[survey.TotalKey] != 350 {
		t.Fatalf("expected 350 recalculated total, got %d", record.Totals[survey.TotalKey])
	}
}
