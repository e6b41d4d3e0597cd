package survey

import "strings"

// Category keys used across parsing, aggregation, and reporting.
const (
	CategoryCitizenship   = "citizenship"
	CategoryEducation     = "education"
	CategoryResearch      = "research"
	CategoryLeadership    = "leadership"
	CategoryContentExpert = "content_expert"
)

// TotalKey is the grand-total slot in a totals map alongside the five categories.
const TotalKey = "total"

// CategoryKeys returns the five activity categories in report order.
func CategoryKeys() []string {
	return []string{
		CategoryCitizenship,
		CategoryEducation,
		CategoryResearch,
		CategoryLeadership,
		CategoryContentExpert,
	}
}

// Entry is one reported activity. Type holds the raw survey label verbatim;
// InternalType holds the mapped type code when the label is known. RuleKey,
// when set, pins the scoring rule directly (used for manually added entries).
type Entry struct {
	Type             string            `json:"type,omitempty"`
	InternalType     string            `json:"internal_type,omitempty"`
	RuleKey          string            `json:"rule_key,omitempty"`
	Fields           map[string]string `json:"fields,omitempty"`
	Count            int               `json:"count,omitempty"`
	Points           int               `json:"points,omitempty"`
	CalculatedPoints int               `json:"calculated_points,omitempty"`
	Quarter          string            `json:"quarter,omitempty"`
	RecordID         string            `json:"record_id,omitempty"`
}

// Field returns a detail field value, or "" when absent.
func (e Entry) Field(key string) string {
	if e.Fields == nil {
		return ""
	}
	return e.Fields[key]
}

// IsEmpty reports whether the entry carries no data at all.
func (e Entry) IsEmpty() bool {
	return e.Type == "" && e.Points == 0 && len(e.Fields) == 0
}

// Value is the tagged subcategory variant: a subcategory is either a single
// entry (evaluations, teaching awards, ...) or a list of entries (committees,
// lectures, ...). Which shape applies is fixed per subcategory key, never
// inferred from the data.
type Value struct {
	Single  *Entry  `json:"single,omitempty"`
	Entries []Entry `json:"entries,omitempty"`
}

// Activities is the nested category -> subcategory -> Value structure shared
// by submissions and aggregated faculty records.
type Activities map[string]map[string]*Value

// NewActivities builds the full empty tree for every known category and
// subcategory.
func NewActivities() Activities {
	activities := make(Activities, len(Categories))
	for _, category := range Categories {
		subcategories := make(map[string]*Value, len(category.Subcategories))
		for _, subcategory := range category.Subcategories {
			subcategories[subcategory.Key] = &Value{}
		}
		activities[category.Key] = subcategories
	}
	return activities
}

// Submission is one parsed survey row: one person's report for one period.
type Submission struct {
	RecordID   string         `json:"record_id"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Email      string         `json:"email"`
	Quarter    string         `json:"quarter"`
	Complete   bool           `json:"complete"`
	Activities Activities     `json:"activities"`
	Totals     map[string]int `json:"totals"`
}

// Key returns the aggregation key for this submission: the lowercased email
// when present, else a lowercased "last, first" name. Empty when neither is
// derivable; such submissions are skipped by the aggregator.
func (s Submission) Key() string {
	if email := strings.ToLower(strings.TrimSpace(s.Email)); email != "" {
		return email
	}
	first := strings.TrimSpace(s.FirstName)
	last := strings.TrimSpace(s.LastName)
	if first == "" || last == "" {
		return ""
	}
	return strings.ToLower(last) + ", " + strings.ToLower(first)
}

// SubmissionRef is the per-submission metadata kept on an aggregated record.
type SubmissionRef struct {
	RecordID string `json:"record_id"`
	Quarter  string `json:"quarter"`
	Complete bool   `json:"complete"`
}

// FacultyRecord is the aggregated cross-period record for one person.
// Manual holds activities added outside the survey import; the recalculator
// scores both trees.
type FacultyRecord struct {
	Email            string          `json:"email"`
	FirstName        string          `json:"first_name"`
	LastName         string          `json:"last_name"`
	DisplayName      string          `json:"display_name"`
	QuartersReported []string        `json:"quarters_reported"`
	Submissions      []SubmissionRef `json:"submissions"`
	HasIncomplete    bool            `json:"has_incomplete"`
	Activities       Activities      `json:"activities"`
	Manual           Activities      `json:"manual_activities"`
	Totals           map[string]int  `json:"totals"`
}

// IndexedEntry is an activity entry projected into the per-activity-type
// index, with the owning faculty's display fields attached.
type IndexedEntry struct {
	Entry
	Email         string `json:"email"`
	DisplayName   string `json:"display_name"`
	HasIncomplete bool   `json:"has_incomplete"`
}
