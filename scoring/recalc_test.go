package scoring

import (
	"reflect"
	"testing"

	"facpoints/survey"
)

func recordWithActivities() *survey.FacultyRecord {
	record := &survey.FacultyRecord{
		Email:      "jdoe@unmc.edu",
		Activities: survey.NewActivities(),
		Manual:     survey.NewActivities(),
		Totals:     map[string]int{},
	}
	record.Activities[survey.CategoryCitizenship]["committees"].Entries = []survey.Entry{
		{Type: "UNMC standing committee", InternalType: "unmc", Points: 999},
	}
	return record
}

func TestRecalculate_InternalTypeMapsToRuleKey(t *testing.T) {
	record := recordWithActivities()

	totals := Recalculate(record, NewStaticSource())

	// committee_unmc is 1000 regardless of the parse-time 999.
	if totals[survey.CategoryCitizenship] != 1000 {
		t.Fatalf("expected 1000 citizenship points, got %d", totals[survey.CategoryCitizenship])
	}
	if totals[survey.TotalKey] != 1000 {
		t.Fatalf("expected 1000 total, got %d", totals[survey.TotalKey])
	}
	entry := record.Activities[survey.CategoryCitizenship]["committees"].Entries[0]
	if entry.CalculatedPoints != 1000 {
		t.Fatalf("expected calculated points written back, got %d", entry.CalculatedPoints)
	}
	if entry.Points != 999 {
		t.Fatalf("parse-time points must stay untouched, got %d", entry.Points)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	record := recordWithActivities()
	source := NewStaticSource()

	first := Recalculate(record, source)
	second := Recalculate(record, source)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recalculation must be idempotent: %v vs %v", first, second)
	}
}

func TestRecalculate_ImpactFactorEntry(t *testing.T) {
	record := &survey.FacultyRecord{
		Activities: survey.NewActivities(),
		Manual:     survey.NewActivities(),
	}
	record.Activities[survey.CategoryContentExpert]["publications_peer"].Entries = []survey.Entry{
		{InternalType: "coauth", Fields: map[string]string{"impact_factor": "20"}},
	}

	totals := Recalculate(record, NewStaticSource())

	// Base 300 per IF, IF capped at 15: 4500.
	if totals[survey.CategoryContentExpert] != 4500 {
		t.Fatalf("expected 4500 content expert points, got %d", totals[survey.CategoryContentExpert])
	}
}

func TestRecalculate_InvalidImpactFactorDefaultsToOne(t *testing.T) {
	record := &survey.FacultyRecord{
		Activities: survey.NewActivities(),
		Manual:     survey.NewActivities(),
	}
	record.Activities[survey.CategoryContentExpert]["publications_peer"].Entries = []survey.Entry{
		{InternalType: "first_senior", Fields: map[string]string{"impact_factor": "pending"}},
	}

	totals := Recalculate(record, NewStaticSource())

	if totals[survey.CategoryContentExpert] != 1000 {
		t.Fatalf("expected base points for invalid impact factor, got %d", totals[survey.CategoryContentExpert])
	}
}

func TestRecalculate_CountModifierUsesEntryCount(t *testing.T) {
	record := &survey.FacultyRecord{
		Activities: survey.NewActivities(),
		Manual:     survey.NewActivities(),
	}
	record.Activities[survey.CategoryEducation]["feedback"].Single = &survey.Entry{
		RuleKey: "mytip_each",
		Count:   10,
	}

	totals := Recalculate(record, NewStaticSource())

	if totals[survey.CategoryEducation] != 250 {
		t.Fatalf("expected 250 education points, got %d", totals[survey.CategoryEducation])
	}
}

func TestRecalculate_UnresolvedEntryKeepsParsedPoints(t *testing.T) {
	record := &survey.FacultyRecord{
		Activities: survey.NewActivities(),
		Manual:     survey.NewActivities(),
	}
	record.Activities[survey.CategoryCitizenship]["committees"].Entries = []survey.Entry{
		{Type: "Some future committee type", Points: 175},
	}

	totals := Recalculate(record, NewStaticSource())

	if totals[survey.CategoryCitizenship] != 175 {
		t.Fatalf("expected parse-time points for unresolved entry, got %d", totals[survey.CategoryCitizenship])
	}
}

func TestRecalculate_ManualActivitiesScored(t *testing.T) {
	record := &survey.FacultyRecord{
		Activities: survey.NewActivities(),
		Manual:     survey.NewActivities(),
	}
	record.Manual[survey.CategoryLeadership]["society_leadership"].Entries = []survey.Entry{
		{RuleKey: "society_committee_chair", Fields: map[string]string{"society": "ASA"}},
	}

	totals := Recalculate(record, NewStaticSource())

	rule, ok := NewStaticSource().Rule("society_committee_chair")
	if !ok {
		t.Fatalf("expected society_committee_chair in the default rules")
	}
	if totals[survey.CategoryLeadership] != rule.BasePoints {
		t.Fatalf("expected %d leadership points from manual entry, got %d", rule.BasePoints, totals[survey.CategoryLeadership])
	}
}
