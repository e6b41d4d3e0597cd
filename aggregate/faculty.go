package aggregate

import (
	"strings"

	"facpoints/survey"
)

// ByFaculty folds submissions into one record per person, keyed by normalized
// email or "last, first" name. Submissions without a derivable key are
// skipped.
//
// The fold is order-sensitive: singleton subcategories are first-write-wins
// across submissions, so callers must pass submissions in original row order
// for deterministic output. List subcategories concatenate; period labels
// dedupe in first-seen order; totals add; incompleteness is monotonic.
func ByFaculty(submissions []survey.Submission) map[string]*survey.FacultyRecord {
	faculty := make(map[string]*survey.FacultyRecord)

	for _, submission := range submissions {
		key := submission.Key()
		if key == "" {
			continue
		}

		record, ok := faculty[key]
		if !ok {
			record = newFacultyRecord(submission)
			faculty[key] = record
		}

		if submission.Quarter != "" && !containsString(record.QuartersReported, submission.Quarter) {
			record.QuartersReported = append(record.QuartersReported, submission.Quarter)
		}

		record.Submissions = append(record.Submissions, survey.SubmissionRef{
			RecordID: submission.RecordID,
			Quarter:  submission.Quarter,
			Complete: submission.Complete,
		})
		if !submission.Complete {
			record.HasIncomplete = true
		}

		mergeActivities(record.Activities, submission.Activities, submission.Quarter, submission.RecordID)

		for _, key := range totalsKeys() {
			record.Totals[key] += submission.Totals[key]
		}
	}

	return faculty
}

func newFacultyRecord(submission survey.Submission) *survey.FacultyRecord {
	displayName := submission.Email
	if submission.LastName != "" && submission.FirstName != "" {
		displayName = submission.LastName + ", " + submission.FirstName
	}

	totals := make(map[string]int, 6)
	for _, key := range totalsKeys() {
		totals[key] = 0
	}

	return &survey.FacultyRecord{
		Email:            strings.ToLower(submission.Email),
		FirstName:        submission.FirstName,
		LastName:         submission.LastName,
		DisplayName:      displayName,
		QuartersReported: []string{},
		Activities:       survey.NewActivities(),
		Manual:           survey.NewActivities(),
		Totals:           totals,
	}
}

// mergeActivities merges one submission's activity tree into the aggregate,
// stamping each merged entry with its originating period and record id.
// List subcategories append; singletons write only when the target is still
// empty.
func mergeActivities(target, source survey.Activities, quarter, recordID string) {
	for category, subcategories := range source {
		targetSubcategories, ok := target[category]
		if !ok {
			continue
		}
		for subcategory, value := range subcategories {
			targetValue, ok := targetSubcategories[subcategory]
			if !ok || value == nil {
				continue
			}

			if value.Single != nil && targetValue.Single == nil {
				entry := *value.Single
				entry.Quarter = quarter
				entry.RecordID = recordID
				targetValue.Single = &entry
			}

			for _, entry := range value.Entries {
				entry.Quarter = quarter
				entry.RecordID = recordID
				targetValue.Entries = append(targetValue.Entries, entry)
			}
		}
	}
}

func totalsKeys() []string {
	return append(survey.CategoryKeys(), survey.TotalKey)
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
