package report

import (
	"sort"
	"strconv"
	"strings"

	"facpoints/survey"
)

// PointsRow is one faculty member's line in the points summary export.
type PointsRow struct {
	LastName      string
	FirstName     string
	Email         string
	Quarters      string
	Status        string
	CategoryTotal map[string]int
	Total         int
}

// PointsHeaders returns the export column headers in order.
func PointsHeaders() []string {
	headers := []string{"Last Name", "First Name", "Email", "Quarters Reported", "Status"}
	for _, category := range survey.Categories {
		headers = append(headers, category.Name+" Points")
	}
	return append(headers, "TOTAL POINTS")
}

// PointsRows flattens faculty records into export rows sorted by surname then
// given name, case-insensitive.
func PointsRows(faculty map[string]*survey.FacultyRecord) []PointsRow {
	rows := make([]PointsRow, 0, len(faculty))
	for _, record := range faculty {
		status := "Complete"
		if record.HasIncomplete {
			status = "Incomplete"
		}

		categoryTotal := make(map[string]int, len(survey.Categories))
		for _, key := range survey.CategoryKeys() {
			categoryTotal[key] = record.Totals[key]
		}

		rows = append(rows, PointsRow{
			LastName:      record.LastName,
			FirstName:     record.FirstName,
			Email:         record.Email,
			Quarters:      strings.Join(record.QuartersReported, ", "),
			Status:        status,
			CategoryTotal: categoryTotal,
			Total:         record.Totals[survey.TotalKey],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		left := strings.ToLower(rows[i].LastName)
		right := strings.ToLower(rows[j].LastName)
		if left != right {
			return left < right
		}
		return strings.ToLower(rows[i].FirstName) < strings.ToLower(rows[j].FirstName)
	})
	return rows
}

func (r PointsRow) values() []string {
	values := []string{r.LastName, r.FirstName, r.Email, r.Quarters, r.Status}
	for _, key := range survey.CategoryKeys() {
		values = append(values, strconv.Itoa(r.CategoryTotal[key]))
	}
	return append(values, strconv.Itoa(r.Total))
}
