package parser

import (
	"fmt"
	"sort"

	"facpoints/survey"
)

// DetailColumn names a column read at the same occurrence index as the type
// column, and the report-friendly key it is stored under in the entry.
type DetailColumn struct {
	Column string
	Key    string
}

// Template describes one repeating-group section of the survey export.
//
// TypeColumn's occurrences drive slot discovery: slot i reads occurrence
// StartOffset+i. StartOffset separates templates that share a literal column
// name (several "Your role" sections exist); the occupied occurrence ranges
// must not overlap, which ValidateTemplates enforces at startup.
//
// PointsPattern is a fmt pattern taking the 1-based slot number. Points
// columns are numbered per template, so their occurrence index is anchored at
// StartOffset rather than at the slot's own occurrence.
//
// TypeMap maps raw survey labels to internal type codes. A label mapped to ""
// is the "answered by mistake" escape choice: the slot is skipped entirely.
// Unmapped labels are kept verbatim with no internal code.
type Template struct {
	Category      string
	Subcategory   string
	TypeColumn    string
	DetailColumns []DetailColumn
	PointsPattern string
	MaxSlots      int
	StartOffset   int
	TypeMap       map[string]string
}

// DefaultTemplates returns the repeating-group table for the current survey
// version. Adding a new repeating section means adding one entry here.
func DefaultTemplates() []Template {
	return []Template{
		{
			Category:    survey.CategoryCitizenship,
			Subcategory: "committees",
			TypeColumn:  "Committee type",
			DetailColumns: []DetailColumn{
				{Column: "Committee name", Key: "name"},
				{Column: "Your role (member, chair, etc.)", Key: "role"},
			},
			PointsPattern: "Points for Committee #%d",
			MaxSlots:      5,
			TypeMap:       committeeTypes,
		},
		{
			Category:    survey.CategoryCitizenship,
			Subcategory: "department_activities",
			TypeColumn:  "Activity type",
			DetailColumns: []DetailColumn{
				{Column: "Date of activity", Key: "date"},
				{Column: "Name of Visiting Professor, Shadow Student, or Topic", Key: "name"},
			},
			PointsPattern: "Points for Activity #%d",
			MaxSlots:      15,
			TypeMap:       departmentActivityTypes,
		},
		{
			Category:    survey.CategoryEducation,
			Subcategory: "lectures",
			TypeColumn:  "Lecture/curriculum type",
			DetailColumns: []DetailColumn{
				{Column: "Lecture title", Key: "title"},
				{Column: "Date delivered", Key: "date"},
			},
			PointsPattern: "Points for Lecture #%d",
			MaxSlots:      8,
			TypeMap:       lectureTypes,
		},
		{
			Category:    survey.CategoryEducation,
			Subcategory: "board_prep",
			TypeColumn:  "Board prep activity type",
			DetailColumns: []DetailColumn{
				{Column: "Date of activity", Key: "date"},
				{Column: "Location", Key: "location"},
			},
			PointsPattern: "Points for Activity #%d",
			MaxSlots:      5,
			StartOffset:   1, // occurrence 0 of the shared detail columns belongs to department activities
			TypeMap:       boardPrepTypes,
		},
		{
			Category:    survey.CategoryEducation,
			Subcategory: "mentorship",
			TypeColumn:  "Mentorship type",
			DetailColumns: []DetailColumn{
				{Column: "Trainee name", Key: "trainee"},
				{Column: "Title of poster/abstract/presentation/publication", Key: "title"},
				{Column: "Meeting/journal name", Key: "meeting"},
				{Column: "Date", Key: "date"},
			},
			PointsPattern: "Points for Activity #%d",
			MaxSlots:      5,
			StartOffset:   2, // after department activities and board prep
			TypeMap:       mentorshipTypes,
		},
		{
			Category:    survey.CategoryResearch,
			Subcategory: "grant_awards",
			TypeColumn:  "Award level",
			DetailColumns: []DetailColumn{
				{Column: "Grant title", Key: "title"},
				{Column: "PI name (if not you)", Key: "pi"},
				{Column: "Funding agency", Key: "agency"},
			},
			PointsPattern: "Points for Award #%d",
			MaxSlots:      5,
			TypeMap:       grantAwardLevels,
		},
		{
			Category:    survey.CategoryResearch,
			Subcategory: "grant_submissions",
			TypeColumn:  "Submission type/outcome",
			DetailColumns: []DetailColumn{
				{Column: "Grant title", Key: "title"},
				{Column: "Agency", Key: "agency"},
				{Column: "Submission date", Key: "date"},
			},
			PointsPattern: "Points for Submission #%d",
			MaxSlots:      5,
			TypeMap:       grantSubmissionTypes,
		},
		{
			Category:    survey.CategoryResearch,
			Subcategory: "thesis_committees",
			TypeColumn:  "Graduate student name",
			DetailColumns: []DetailColumn{
				{Column: "Program/degree (PhD, MS, etc.)", Key: "program"},
				{Column: "Thesis/dissertation title", Key: "title"},
			},
			PointsPattern: "Points for Committee #%d",
			MaxSlots:      3,
		},
		{
			Category:    survey.CategoryLeadership,
			Subcategory: "education_leadership",
			TypeColumn:  "Leadership role type",
			DetailColumns: []DetailColumn{
				{Column: "Course/workshop/guideline name", Key: "name"},
				{Column: "Date (first day if multi-day)", Key: "date"},
			},
			PointsPattern: "Points for Role #%d",
			MaxSlots:      5,
			TypeMap:       educationLeadershipTypes,
		},
		{
			Category:    survey.CategoryLeadership,
			Subcategory: "society_leadership",
			TypeColumn:  "Society role type",
			DetailColumns: []DetailColumn{
				{Column: "Society/organization name", Key: "society"},
			},
			PointsPattern: "Points for Role #%d",
			MaxSlots:      5,
			StartOffset:   1, // "Points for Role" numbering follows education leadership
			TypeMap:       societyLeadershipTypes,
		},
		{
			Category:    survey.CategoryLeadership,
			Subcategory: "board_leadership",
			TypeColumn:  "Board role type",
			DetailColumns: []DetailColumn{
				{Column: "Board/organization name", Key: "board"},
			},
			PointsPattern: "Points for Role #%d",
			MaxSlots:      5,
			StartOffset:   2, // after education and society leadership
			TypeMap:       boardLeadershipTypes,
		},
		{
			Category:    survey.CategoryContentExpert,
			Subcategory: "speaking",
			TypeColumn:  "Speaking type",
			DetailColumns: []DetailColumn{
				{Column: "Title of talk/workshop", Key: "title"},
				{Column: "Conference/meeting name", Key: "conference"},
				{Column: "Date", Key: "date"},
				{Column: "Location", Key: "location"},
			},
			PointsPattern: "Points for Event #%d",
			MaxSlots:      15,
			TypeMap:       speakingTypes,
		},
		{
			Category:    survey.CategoryContentExpert,
			Subcategory: "publications_peer",
			TypeColumn:  "Your role",
			DetailColumns: []DetailColumn{
				{Column: "Publication title", Key: "title"},
				{Column: "Journal name", Key: "journal"},
				{Column: "Journal Impact Factor (max 15)", Key: "impact_factor"},
				{Column: "Publication date", Key: "date"},
				{Column: "DOI", Key: "doi"},
			},
			PointsPattern: "Points for Publication #%d",
			MaxSlots:      5,
			TypeMap:       publicationRoles,
		},
		{
			Category:    survey.CategoryContentExpert,
			Subcategory: "publications_nonpeer",
			TypeColumn:  "Your role",
			DetailColumns: []DetailColumn{
				{Column: "Publication title", Key: "title"},
				{Column: "Journal/newsletter/outlet", Key: "outlet"},
				{Column: "Publication date", Key: "date"},
			},
			PointsPattern: "Points for Publication #%d",
			MaxSlots:      3,
			StartOffset:   5, // "Your role" occurrences 0-4 belong to peer publications
			TypeMap:       publicationRoles,
		},
		{
			Category:    survey.CategoryContentExpert,
			Subcategory: "pathways",
			TypeColumn:  "Pathway activity",
			DetailColumns: []DetailColumn{
				{Column: "Pathway name", Key: "name"},
				{Column: "What Division oversees this Pathway?", Key: "division"},
			},
			PointsPattern: "Points for Pathway #%d",
			MaxSlots:      3,
			TypeMap:       pathwayTypes,
		},
		{
			Category:    survey.CategoryContentExpert,
			Subcategory: "textbooks",
			TypeColumn:  "Your role",
			DetailColumns: []DetailColumn{
				{Column: "Textbook title", Key: "textbook"},
				{Column: "Section name", Key: "section"},
				{Column: "Chapter title (if applicable)", Key: "chapter"},
			},
			PointsPattern: "Points for Contribution #%d",
			MaxSlots:      3,
			StartOffset:   8, // after peer and non-peer publications
			TypeMap:       textbookRoles,
		},
		{
			Category:    survey.CategoryContentExpert,
			Subcategory: "abstracts",
			TypeColumn:  "Your role",
			DetailColumns: []DetailColumn{
				{Column: "Abstract/poster title", Key: "title"},
				{Column: "Meeting (MARC, ASA, SCA, etc.)", Key: "meeting"},
				{Column: "Date", Key: "date"},
				{Column: "Location", Key: "location"},
			},
			PointsPattern: "Points for Abstract #%d",
			MaxSlots:      5,
			StartOffset:   11, // after peer publications, non-peer publications, and textbooks
			TypeMap:       abstractRoles,
		},
		{
			Category:    survey.CategoryContentExpert,
			Subcategory: "journal_editorial",
			TypeColumn:  "Editorial role",
			DetailColumns: []DetailColumn{
				{Column: "Journal name", Key: "journal"},
			},
			PointsPattern: "Points for Role #%d",
			MaxSlots:      3,
			StartOffset:   3, // "Points for Role" numbering follows the three leadership sections
			TypeMap:       journalEditorialTypes,
		},
	}
}

// ValidateTemplates checks that templates sharing a type column claim
// disjoint occurrence ranges [StartOffset, StartOffset+MaxSlots). Overlap is
// a configuration error: two sections would silently read each other's data.
func ValidateTemplates(templates []Template) error {
	byColumn := make(map[string][]Template)
	for i, template := range templates {
		if template.TypeColumn == "" {
			return fmt.Errorf("template %s.%s: type column is required", template.Category, template.Subcategory)
		}
		if template.MaxSlots <= 0 {
			return fmt.Errorf("template %s.%s: max slots must be > 0", template.Category, template.Subcategory)
		}
		if template.StartOffset < 0 {
			return fmt.Errorf("template %s.%s: start offset must be >= 0", template.Category, template.Subcategory)
		}
		byColumn[template.TypeColumn] = append(byColumn[template.TypeColumn], templates[i])
	}

	for column, group := range byColumn {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			return group[i].StartOffset < group[j].StartOffset
		})
		for i := 1; i < len(group); i++ {
			previous := group[i-1]
			current := group[i]
			if previous.StartOffset+previous.MaxSlots > current.StartOffset {
				return fmt.Errorf(
					"templates %s.%s and %s.%s overlap on column %q: [%d,%d) vs [%d,%d)",
					previous.Category, previous.Subcategory,
					current.Category, current.Subcategory,
					column,
					previous.StartOffset, previous.StartOffset+previous.MaxSlots,
					current.StartOffset, current.StartOffset+current.MaxSlots,
				)
			}
		}
	}

	return nil
}
