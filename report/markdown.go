package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"facpoints/survey"
)

// column describes one table column of a subcategory's activity table.
type column struct {
	key    string
	header string
	points bool
}

// tableColumns holds the per-subcategory table layouts. The "type" key reads
// the entry's raw type label; "quarter" and "points" read entry metadata;
// everything else reads a detail field.
var tableColumns = map[string][]column{
	"committees": {
		{key: "type", header: "Committee Type"},
		{key: "name", header: "Committee Name"},
		{key: "role", header: "Role"},
		{key: "quarter", header: "Quarter"},
		{key: "points", header: "Points", points: true},
	},
	"department_activities": {
		{key: "type", header: "Activity"},
		{key: "name", header: "Topic/Name"},
		{key: "date", header: "Date"},
		{key: "points", header: "Points", points: true},
	},
	"lectures": {
		{key: "type", header: "Type"},
		{key: "title", header: "Title"},
		{key: "date", header: "Date"},
		{key: "points", header: "Points", points: true},
	},
	"board_prep": {
		{key: "type", header: "Activity"},
		{key: "date", header: "Date"},
		{key: "location", header: "Location"},
		{key: "points", header: "Points", points: true},
	},
	"mentorship": {
		{key: "type", header: "Type"},
		{key: "trainee", header: "Trainee"},
		{key: "title", header: "Title"},
		{key: "meeting", header: "Meeting/Journal"},
		{key: "points", header: "Points", points: true},
	},
	"grant_awards": {
		{key: "type", header: "Award Level"},
		{key: "title", header: "Grant Title"},
		{key: "agency", header: "Agency"},
		{key: "points", header: "Points", points: true},
	},
	"grant_submissions": {
		{key: "type", header: "Outcome"},
		{key: "title", header: "Grant Title"},
		{key: "agency", header: "Agency"},
		{key: "date", header: "Date"},
		{key: "points", header: "Points", points: true},
	},
	"thesis_committees": {
		{key: "type", header: "Student"},
		{key: "program", header: "Program"},
		{key: "title", header: "Title"},
		{key: "points", header: "Points", points: true},
	},
	"education_leadership": {
		{key: "type", header: "Role"},
		{key: "name", header: "Course/Workshop"},
		{key: "date", header: "Date"},
		{key: "points", header: "Points", points: true},
	},
	"society_leadership": {
		{key: "type", header: "Role"},
		{key: "society", header: "Society/Organization"},
		{key: "points", header: "Points", points: true},
	},
	"board_leadership": {
		{key: "type", header: "Role"},
		{key: "board", header: "Board/Organization"},
		{key: "points", header: "Points", points: true},
	},
	"speaking": {
		{key: "type", header: "Type"},
		{key: "title", header: "Title"},
		{key: "conference", header: "Conference"},
		{key: "date", header: "Date"},
		{key: "location", header: "Location"},
		{key: "points", header: "Points", points: true},
	},
	"publications_peer": {
		{key: "type", header: "Role"},
		{key: "title", header: "Title"},
		{key: "journal", header: "Journal"},
		{key: "impact_factor", header: "IF"},
		{key: "doi", header: "DOI"},
		{key: "date", header: "Date"},
		{key: "points", header: "Points", points: true},
	},
	"publications_nonpeer": {
		{key: "type", header: "Role"},
		{key: "title", header: "Title"},
		{key: "outlet", header: "Outlet"},
		{key: "date", header: "Date"},
		{key: "points", header: "Points", points: true},
	},
	"pathways": {
		{key: "type", header: "Type"},
		{key: "name", header: "Pathway Name"},
		{key: "division", header: "Division"},
		{key: "points", header: "Points", points: true},
	},
	"textbooks": {
		{key: "type", header: "Role"},
		{key: "textbook", header: "Textbook"},
		{key: "section", header: "Section"},
		{key: "chapter", header: "Chapter"},
		{key: "points", header: "Points", points: true},
	},
	"abstracts": {
		{key: "type", header: "Role"},
		{key: "title", header: "Title"},
		{key: "meeting", header: "Meeting"},
		{key: "date", header: "Date"},
		{key: "location", header: "Location"},
		{key: "points", header: "Points", points: true},
	},
	"journal_editorial": {
		{key: "type", header: "Role"},
		{key: "journal", header: "Journal"},
		{key: "points", header: "Points", points: true},
	},
}

// FacultySummary renders one faculty member's Markdown summary: point table
// first, then activity detail grouped by category in taxonomy order.
func FacultySummary(record *survey.FacultyRecord, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Academic Achievement Summary: %s\n\n", record.DisplayName)

	if record.HasIncomplete {
		b.WriteString("> **[INCOMPLETE]** This summary includes data from incomplete survey submissions.\n\n")
	}

	b.WriteString("## Summary Information\n\n")
	fmt.Fprintf(&b, "- **Name:** %s\n", record.DisplayName)
	if record.Email != "" {
		fmt.Fprintf(&b, "- **Email:** %s\n", record.Email)
	}
	if len(record.QuartersReported) > 0 {
		fmt.Fprintf(&b, "- **Quarters Reported:** %s\n", strings.Join(record.QuartersReported, ", "))
	}
	fmt.Fprintf(&b, "- **Report Generated:** %s\n\n", generatedAt.Format("2006-01-02 15:04"))

	b.WriteString("## Point Summary\n\n")
	b.WriteString("| Category | Points |\n")
	b.WriteString("|----------|-------:|\n")
	for _, category := range survey.Categories {
		fmt.Fprintf(&b, "| %s | %s |\n", category.Name, formatPoints(record.Totals[category.Key]))
	}
	fmt.Fprintf(&b, "| **TOTAL** | **%s** |\n\n", formatPoints(record.Totals[survey.TotalKey]))

	for _, category := range survey.Categories {
		subcategories := record.Activities[category.Key]
		if !categoryHasData(subcategories) {
			continue
		}

		fmt.Fprintf(&b, "## %s\n\n", category.Name)

		for _, subcategory := range category.Subcategories {
			value := subcategories[subcategory.Key]
			if value == nil {
				continue
			}
			section := formatSubcategory(subcategory, value)
			if section != "" {
				b.WriteString(section)
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func categoryHasData(subcategories map[string]*survey.Value) bool {
	for _, value := range subcategories {
		if value == nil {
			continue
		}
		if value.Single != nil && !value.Single.IsEmpty() {
			return true
		}
		if len(value.Entries) > 0 {
			return true
		}
	}
	return false
}

func formatSubcategory(info survey.SubcategoryInfo, value *survey.Value) string {
	var b strings.Builder

	if value.Single != nil && !value.Single.IsEmpty() {
		fmt.Fprintf(&b, "### %s\n\n", info.Name)
		b.WriteString(formatSingleEntry(info.Key, value.Single))
		return b.String()
	}

	if len(value.Entries) > 0 {
		fmt.Fprintf(&b, "### %s\n\n", info.Name)
		b.WriteString(activityTable(info.Key, value.Entries, nil))
		b.WriteString("\n")
		return b.String()
	}

	return ""
}

// formatSingleEntry renders the singleton subcategories as bullet lines.
func formatSingleEntry(subcategory string, entry *survey.Entry) string {
	var b strings.Builder
	points := entryDisplayPoints(*entry)

	switch subcategory {
	case "evaluations":
		if entry.Field("completed") == "Yes" {
			fmt.Fprintf(&b, "- Completed ≥80%% of trainee evaluations: **%s points**\n", formatPoints(points))
		}
	case "teaching_awards", "grant_review":
		if entry.Type != "" {
			fmt.Fprintf(&b, "- %s: **%s points**\n", entry.Type, formatPoints(points))
		}
	case "rotation_director":
		if rotations := entry.Field("rotations"); rotations != "" {
			fmt.Fprintf(&b, "- Rotation Director (%s): **%s points**\n", rotations, formatPoints(points))
		}
	case "feedback":
		if entry.Field("mtr_winner") == "Yes" {
			b.WriteString("- MTR Winner\n")
		}
		if count := entry.Field("mytip_count"); count != "" {
			fmt.Fprintf(&b, "- MyTIPreport Evaluations (%s)\n", count)
		}
		fmt.Fprintf(&b, "- Feedback total: **%s points**\n", formatPoints(points))
	default:
		keys := make([]string, 0, len(entry.Fields))
		for key := range entry.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", key, entry.Fields[key])
		}
	}

	return b.String()
}

// activityTable renders entries as a Markdown table using the subcategory's
// column layout. Extra columns, when given, are prepended (used to add a
// Faculty column in activity reports).
func activityTable(subcategory string, entries []survey.Entry, extraValues []string) string {
	columns, ok := tableColumns[subcategory]
	if !ok {
		return genericList(entries)
	}

	var b strings.Builder

	b.WriteString("|")
	if extraValues != nil {
		b.WriteString(" Faculty |")
	}
	for _, col := range columns {
		fmt.Fprintf(&b, " %s |", col.header)
	}
	b.WriteString("\n|")
	if extraValues != nil {
		b.WriteString("---|")
	}
	for _, col := range columns {
		if col.points {
			b.WriteString("---:|")
		} else {
			b.WriteString("---|")
		}
	}
	b.WriteString("\n")

	for i, entry := range entries {
		b.WriteString("|")
		if extraValues != nil {
			fmt.Fprintf(&b, " %s |", cellOrDash(extraValues[i]))
		}
		for _, col := range columns {
			fmt.Fprintf(&b, " %s |", cellOrDash(cellValue(entry, col)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func cellValue(entry survey.Entry, col column) string {
	switch col.key {
	case "type":
		return entry.Type
	case "quarter":
		return entry.Quarter
	case "points":
		if points := entryDisplayPoints(entry); points != 0 {
			return formatPoints(points)
		}
		return ""
	default:
		return entry.Field(col.key)
	}
}

func cellOrDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func genericList(entries []survey.Entry) string {
	var b strings.Builder
	for _, entry := range entries {
		parts := make([]string, 0, len(entry.Fields)+2)
		if entry.Type != "" {
			parts = append(parts, entry.Type)
		}
		keys := make([]string, 0, len(entry.Fields))
		for key := range entry.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", key, entry.Fields[key]))
		}
		if points := entryDisplayPoints(entry); points != 0 {
			parts = append(parts, fmt.Sprintf("points: %s", formatPoints(points)))
		}
		if len(parts) > 0 {
			fmt.Fprintf(&b, "- %s\n", strings.Join(parts, ", "))
		}
	}
	return b.String()
}

// entryDisplayPoints prefers the recalculated value when one has been written.
func entryDisplayPoints(entry survey.Entry) int {
	if entry.CalculatedPoints != 0 {
		return entry.CalculatedPoints
	}
	return entry.Points
}

// ActivityReport renders one activity-index key ("category.subcategory") as a
// Markdown report grouped by faculty member, alphabetical by display name.
func ActivityReport(activityKey string, entries []survey.IndexedEntry, generatedAt time.Time) string {
	var b strings.Builder

	parts := strings.SplitN(activityKey, ".", 2)
	if len(parts) != 2 {
		return fmt.Sprintf("# Invalid activity key: %s\n", activityKey)
	}
	categoryKey, subcategory := parts[0], parts[1]

	categoryName := categoryKey
	if category, ok := survey.CategoryByKey(categoryKey); ok {
		categoryName = category.Name
	}

	fmt.Fprintf(&b, "# %s\n\n", survey.SubcategoryName(subcategory))
	fmt.Fprintf(&b, "**Category:** %s\n", categoryName)
	fmt.Fprintf(&b, "**Total Entries:** %d\n", len(entries))
	fmt.Fprintf(&b, "**Report Generated:** %s\n\n", generatedAt.Format("2006-01-02 15:04"))

	totalPoints := 0
	for _, entry := range entries {
		totalPoints += entryDisplayPoints(entry.Entry)
	}
	fmt.Fprintf(&b, "**Total Points (all faculty):** %s\n\n", formatPoints(totalPoints))

	b.WriteString("## Entries by Faculty Member\n\n")

	byFaculty := make(map[string][]survey.IndexedEntry)
	names := make([]string, 0)
	for _, entry := range entries {
		name := entry.DisplayName
		if name == "" {
			name = entry.Email
		}
		if _, seen := byFaculty[name]; !seen {
			names = append(names, name)
		}
		byFaculty[name] = append(byFaculty[name], entry)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	for _, name := range names {
		facultyEntries := byFaculty[name]

		marker := ""
		for _, entry := range facultyEntries {
			if entry.HasIncomplete {
				marker = " [INCOMPLETE]"
				break
			}
		}
		fmt.Fprintf(&b, "### %s%s\n\n", name, marker)

		plain := make([]survey.Entry, len(facultyEntries))
		for i, entry := range facultyEntries {
			plain[i] = entry.Entry
		}
		b.WriteString(activityTable(subcategory, plain, nil))
		b.WriteString("\n")
	}

	return b.String()
}

// CombinedActivityReport concatenates activity reports for several index keys
// into one document with a contents list.
func CombinedActivityReport(index map[string][]survey.IndexedEntry, activityKeys []string, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("# Selected Academic Activities Report\n\n")
	fmt.Fprintf(&b, "**Report Generated:** %s\n", generatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Activity Types Included:** %d\n\n", len(activityKeys))

	b.WriteString("## Contents\n\n")
	for _, key := range activityKeys {
		parts := strings.SplitN(key, ".", 2)
		if len(parts) != 2 {
			continue
		}
		name := survey.SubcategoryName(parts[1])
		anchor := strings.NewReplacer(" ", "-", "/", "-").Replace(strings.ToLower(name))
		fmt.Fprintf(&b, "- [%s](#%s)\n", name, anchor)
	}
	b.WriteString("\n---\n\n")

	for _, key := range activityKeys {
		entries := index[key]
		if len(entries) == 0 {
			continue
		}
		b.WriteString(ActivityReport(key, entries, generatedAt))
		b.WriteString("\n---\n\n")
	}

	return b.String()
}

// formatPoints renders an integer with thousands separators.
func formatPoints(points int) string {
	sign := ""
	if points < 0 {
		sign = "-"
		points = -points
	}

	digits := fmt.Sprintf("%d", points)
	if len(digits) <= 3 {
		return sign + digits
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return sign + strings.Join(groups, ",")
}
