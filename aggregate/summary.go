package aggregate

import (
	"sort"
	"strings"

	"facpoints/survey"
)

// Summary is the dataset-wide roll-up used by the CLI's run reports.
type Summary struct {
	TotalFaculty    int
	CompleteCount   int
	IncompleteCount int
	GrandTotals     map[string]int
}

// Summarize computes counts and dataset-wide totals over all records.
func Summarize(faculty map[string]*survey.FacultyRecord) Summary {
	summary := Summary{GrandTotals: make(map[string]int, 6)}
	for _, key := range totalsKeys() {
		summary.GrandTotals[key] = 0
	}

	for _, record := range faculty {
		summary.TotalFaculty++
		if record.HasIncomplete {
			summary.IncompleteCount++
		} else {
			summary.CompleteCount++
		}
		for _, key := range totalsKeys() {
			summary.GrandTotals[key] += record.Totals[key]
		}
	}

	return summary
}

// FacultyListItem is one row of the sorted faculty listing.
type FacultyListItem struct {
	Key           string
	DisplayName   string
	TotalPoints   int
	HasIncomplete bool
	Quarters      []string
}

// FacultyList returns all records sorted by display name, case-insensitive.
func FacultyList(faculty map[string]*survey.FacultyRecord) []FacultyListItem {
	items := make([]FacultyListItem, 0, len(faculty))
	for key, record := range faculty {
		items = append(items, FacultyListItem{
			Key:           key,
			DisplayName:   record.DisplayName,
			TotalPoints:   record.Totals[survey.TotalKey],
			HasIncomplete: record.HasIncomplete,
			Quarters:      record.QuartersReported,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		left := strings.ToLower(items[i].DisplayName)
		right := strings.ToLower(items[j].DisplayName)
		if left != right {
			return left < right
		}
		return items[i].Key < items[j].Key
	})
	return items
}

// ActivityTypeItem describes one populated activity-index key.
type ActivityTypeItem struct {
	Key          string
	DisplayName  string
	CategoryName string
	Count        int
}

// ActivityTypes lists the index keys that hold data, sorted by category name
// then display name.
func ActivityTypes(index map[string][]survey.IndexedEntry) []ActivityTypeItem {
	items := make([]ActivityTypeItem, 0, len(index))
	for key, entries := range index {
		if len(entries) == 0 {
			continue
		}
		parts := strings.SplitN(key, ".", 2)
		if len(parts) != 2 {
			continue
		}

		categoryName := parts[0]
		if category, ok := survey.CategoryByKey(parts[0]); ok {
			categoryName = category.Name
		}

		items = append(items, ActivityTypeItem{
			Key:          key,
			DisplayName:  survey.SubcategoryName(parts[1]),
			CategoryName: categoryName,
			Count:        len(entries),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CategoryName != items[j].CategoryName {
			return items[i].CategoryName < items[j].CategoryName
		}
		return items[i].DisplayName < items[j].DisplayName
	})
	return items
}
