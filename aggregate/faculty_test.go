package aggregate

import (
	"testing"

	"facpoints/survey"
)

func submissionWithTotals(email, first, last, quarter string, complete bool, citizenship, total int) survey.Submission {
	return survey.Submission{
		FirstName:  first,
		LastName:   last,
		Email:      email,
		Quarter:    quarter,
		Complete:   complete,
		Activities: survey.NewActivities(),
		Totals: map[string]int{
			survey.CategoryCitizenship: citizenship,
			survey.TotalKey:            total,
		},
	}
}

func TestByFaculty_EmailNormalization(t *testing.T) {
	submissions := []survey.Submission{
		submissionWithTotals("JDoe@UNMC.edu", "Jane", "Doe", "Q1", true, 100, 100),
		submissionWithTotals("jdoe@unmc.edu", "Jane", "Doe", "Q2", true, 100, 100),
	}

	faculty := ByFaculty(submissions)

	if len(faculty) != 1 {
		t.Fatalf("expected 1 faculty record, got %d", len(faculty))
	}
	record, ok := faculty["jdoe@unmc.edu"]
	if !ok {
		t.Fatalf("expected record keyed by lowercased email")
	}
	if len(record.QuartersReported) != 2 {
		t.Fatalf("expected 2 quarters, got %v", record.QuartersReported)
	}
}

func TestByFaculty_NameKeyDoesNotMergeWithEmailKey(t *testing.T) {
	submissions := []survey.Submission{
		submissionWithTotals("jdoe@unmc.edu", "Jane", "Doe", "Q1", true, 100, 100),
		submissionWithTotals("", "Jane", "Doe", "Q2", true, 100, 100),
	}

	faculty := ByFaculty(submissions)

	if len(faculty) != 2 {
		t.Fatalf("email-keyed and name-keyed submissions must stay separate, got %d records", len(faculty))
	}
	if _, ok := faculty["doe, jane"]; !ok {
		t.Fatalf("expected name-keyed record %q, got keys: %v", "doe, jane", recordKeys(faculty))
	}
}

func TestByFaculty_AdditiveTotals(t *testing.T) {
	submissions := []survey.Submission{
		submissionWithTotals("jdoe@unmc.edu", "Jane", "Doe", "Q1", true, 100, 100),
		submissionWithTotals("jdoe@unmc.edu", "Jane", "Doe", "Q2", true, 100, 100),
	}

	record := ByFaculty(submissions)["jdoe@unmc.edu"]

	if record.Totals[survey.CategoryCitizenship] != 200 {
		t.Fatalf("expected 200 citizenship points, got %d", record.Totals[survey.CategoryCitizenship])
	}
	if record.Totals[survey.TotalKey] != 200 {
		t.Fatalf("expected 200 total points, got %d", record.Totals[survey.TotalKey])
	}
}

func TestByFaculty_IncompletenessIsMonotonic(t *testing.T) {
	submissions := []survey.Submission{
		submissionWithTotals("jdoe@unmc.edu", "Jane", "Doe", "Q1", false, 0, 0),
		submissionWithTotals("jdoe@unmc.edu", "Jane", "Doe", "Q2", true, 0, 0),
	}

	record := ByFaculty(submissions)["jdoe@unmc.edu"]
	if !record.HasIncomplete {
		t.Fatalf("one incomplete submission must mark the whole record incomplete")
	}
	if len(record.Submissions) != 2 {
		t.Fatalf("expected 2 submission refs, got %d", len(record.Submissions))
	}
}

func TestByFaculty_SingletonFirstWriteWins(t *testing.T) {
	first := submissionWithTotals("jdoe@unmc.edu", "Jane", "Doe", "Q1", true, 0, 0)
	first.Activities[survey.CategoryEducation]["teaching_awards"].Single = &survey.Entry{
		Type: "Teacher of the Year", Points: 7500,
	}
	second := submissionWithTotals("jdoe@unmc.edu", "Jane", "Doe", "Q2", true, 0, 0)
	second.Activities[survey.CategoryEducation]["teaching_awards"].Single = &survey.Entry{
		Type: "Top 25% Teaching Evaluations", Points: 2500,
	}

	record := ByFaculty([]survey.Submission{first, second})["jdoe@unmc.edu"]

	single := record.Activities[survey.CategoryEducation]["teaching_awards"].Single
	if single == nil || single.Type != "Teacher of the Year" {
		t.Fatalf("expected first-write-wins singleton, got %+v", single)
	}
	if single.Quarter != "Q1" {
		t.Fatalf("expected singleton stamped with its quarter, got %q", single.Quarter)
	}
}

func TestByFaculty_ListEntriesConcatenateWithStamps(t *testing.T) {
	first := submissionWithTotals("jdoe@unmc.edu", "Jane", "Doe", "Q1", true, 0, 0)
	first.RecordID = "101"
	first.Activities[survey.CategoryCitizenship]["committees"].Entries = []survey.Entry{
		{Type: "Minor or ad hoc committee", Points: 100},
	}
	second := submissionWithTotals("jdoe@unmc.edu", "Jane", "Doe", "Q2", true, 0, 0)
	second.RecordID = "102"
	second.Activities[survey.CategoryCitizenship]["committees"].Entries = []survey.Entry{
		{Type: "Minor or ad hoc committee", Points: 100},
	}

	record := ByFaculty([]survey.Submission{first, second})["jdoe@unmc.edu"]

	entries := record.Activities[survey.CategoryCitizenship]["committees"].Entries
	if len(entries) != 2 {
		t.Fatalf("expected 2 concatenated entries, got %d", len(entries))
	}
	if entries[0].Quarter != "Q1" || entries[0].RecordID != "101" {
		t.Fatalf("first entry not stamped: %+v", entries[0])
	}
	if entries[1].Quarter != "Q2" || entries[1].RecordID != "102" {
		t.Fatalf("second entry not stamped: %+v", entries[1])
	}
}

func TestByFaculty_SkipsSubmissionsWithoutKey(t *testing.T) {
	faculty := ByFaculty([]survey.Submission{
		submissionWithTotals("", "", "", "Q1", true, 0, 0),
	})
	if len(faculty) != 0 {
		t.Fatalf("expected no records for keyless submissions, got %d", len(faculty))
	}
}

func recordKeys(faculty map[string]*survey.FacultyRecord) []string {
	keys := make([]string, 0, len(faculty))
	for key := range faculty {
		keys = append(keys, key)
	}
	return keys
}
