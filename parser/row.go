package parser

import (
	"strconv"
	"strings"

	"facpoints/scoring"
	"facpoints/survey"
)

// Identity and singleton column names from the survey export.
const (
	columnRecordID  = "Record ID"
	columnFirstName = "First name"
	columnLastName  = "Last name"
	columnEmail     = "UNMC email address"
	columnQuarter   = "Which quarter are you reporting?"
	columnComplete  = "Complete?"

	columnEvalCompletion      = "Did you complete ≥80% of your assigned trainee evaluations this quarter?"
	columnTeachingRecognition = "Which teaching recognition applies?"
	columnRotationNames       = "Rotation name(s) you direct"
	columnMTRWinner           = "Were you an MTR Winner this quarter?"
	columnMyTIPCount          = "How many MyTIPreport evaluations did you complete?"
	columnGrantReviewType     = "Grant review type"

	completeValue = "Complete"
)

// totalColumns maps the export's row-level summary columns to totals keys.
var totalColumns = map[string]string{
	"Total Citizenship Points":               survey.CategoryCitizenship,
	"Total Education Points":                 survey.CategoryEducation,
	"Total Research Points":                  survey.CategoryResearch,
	"Total Leadership Points":                survey.CategoryLeadership,
	"Total Content Expert Points":            survey.CategoryContentExpert,
	"TOTAL AVC ACADEMIC PRODUCTIVITY POINTS": survey.TotalKey,
}

// ParseRow builds one submission from a raw row. It returns false when the
// row carries no usable identity (no name pair and no email); such rows are
// test entries or abandoned surveys and are filtered, not failed.
func ParseRow(row []string, index ColumnIndex, templates []Template, source scoring.Source) (*survey.Submission, bool) {
	firstName := index.Value(row, columnFirstName, 0)
	lastName := index.Value(row, columnLastName, 0)
	email := index.Value(row, columnEmail, 0)
	if (firstName == "" || lastName == "") && email == "" {
		return nil, false
	}

	submission := &survey.Submission{
		RecordID:   index.Value(row, columnRecordID, 0),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      strings.ToLower(email),
		Quarter:    index.Value(row, columnQuarter, 0),
		Complete:   parseCompletion(row, index),
		Activities: survey.NewActivities(),
		Totals:     parseTotals(row, index),
	}

	for _, template := range templates {
		entries := ExtractEntries(row, index, template)
		if len(entries) == 0 {
			continue
		}
		submission.Activities[template.Category][template.Subcategory].Entries = entries
	}

	parseSingletons(row, index, submission.Activities, source)

	return submission, true
}

// parseCompletion reads the final "Complete?" occurrence, which reflects the
// whole survey rather than an individual section. A missing column counts as
// complete; the survey tool always emits it, so absence means a trimmed test
// fixture rather than an abandoned submission.
func parseCompletion(row []string, index ColumnIndex) bool {
	occurrences := index.Occurrences(columnComplete)
	if occurrences == 0 {
		return true
	}
	return index.Value(row, columnComplete, occurrences-1) == completeValue
}

func parseTotals(row []string, index ColumnIndex) map[string]int {
	totals := make(map[string]int, len(totalColumns))
	for column, key := range totalColumns {
		totals[key] = 0
		if raw := index.Value(row, column, 0); raw != "" {
			if points, err := parsePoints(raw); err == nil {
				totals[key] = points
			}
		}
	}
	return totals
}

// parseSingletons fills the single-entry subcategories, converting each
// response to points through the scoring source.
func parseSingletons(row []string, index ColumnIndex, activities survey.Activities, source scoring.Source) {
	if index.Value(row, columnEvalCompletion, 0) == "Yes" {
		activities[survey.CategoryCitizenship]["evaluations"].Single = &survey.Entry{
			InternalType: "eval_80_completion",
			Fields:       map[string]string{"completed": "Yes"},
			Points:       scoring.FixedPoints(source, "eval_80_completion"),
		}
	}

	if recognition := index.Value(row, columnTeachingRecognition, 0); recognition != "" {
		if code, ok := teachingRecognitionTypes[recognition]; ok {
			activities[survey.CategoryEducation]["teaching_awards"].Single = &survey.Entry{
				Type:         recognition,
				InternalType: code,
				Points:       scoring.FixedPoints(source, code),
			}
		}
	}

	if rotations := index.Value(row, columnRotationNames, 0); rotations != "" {
		activities[survey.CategoryEducation]["rotation_director"].Single = &survey.Entry{
			InternalType: "rotation_director",
			Fields:       map[string]string{"rotations": rotations},
			Points:       scoring.FixedPoints(source, "rotation_director"),
		}
	}

	parseFeedback(row, index, activities, source)

	if reviewType := index.Value(row, columnGrantReviewType, 0); reviewType != "" {
		if code, ok := grantReviewTypes[reviewType]; ok {
			activities[survey.CategoryResearch]["grant_review"].Single = &survey.Entry{
				Type:         reviewType,
				InternalType: code,
				Points:       scoring.FixedPoints(source, code),
			}
		}
	}
}

// parseFeedback combines the MTR winner flag and the MyTIPreport evaluation
// count into one entry. The MyTIP part is a per-count rule with a cap.
func parseFeedback(row []string, index ColumnIndex, activities survey.Activities, source scoring.Source) {
	mtrWinner := index.Value(row, columnMTRWinner, 0) == "Yes"

	myTIPCount := 0
	if raw := index.Value(row, columnMyTIPCount, 0); raw != "" {
		if count, err := strconv.Atoi(raw); err == nil && count > 0 {
			myTIPCount = count
		}
	}

	if !mtrWinner && myTIPCount == 0 {
		return
	}

	myTIPPoints := 0
	if myTIPCount > 0 {
		myTIPPoints = scoring.CountPoints(source, "mytip_each", myTIPCount)
	}
	mtrPoints := 0
	if mtrWinner {
		mtrPoints = scoring.FixedPoints(source, "mtr_winner")
	}

	fields := map[string]string{}
	if mtrWinner {
		fields["mtr_winner"] = "Yes"
	}
	if myTIPCount > 0 {
		fields["mytip_count"] = strconv.Itoa(myTIPCount)
	}

	activities[survey.CategoryEducation]["feedback"].Single = &survey.Entry{
		Fields: fields,
		Count:  myTIPCount,
		Points: myTIPPoints + mtrPoints,
	}
}
