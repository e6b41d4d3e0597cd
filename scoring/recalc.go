package scoring

import (
	"strconv"

	"facpoints/survey"
)

// subcategoryDefaultRuleKeys covers subcategories whose entries all score the
// same rule regardless of type (thesis committees store the student name in
// the type slot).
var subcategoryDefaultRuleKeys = map[string]string{
	"thesis_committees": "thesis_member",
}

// subcategoryRuleKeys maps internal type codes to rule keys where the two
// differ. Subcategories absent here use the internal type code as the rule
// key directly.
var subcategoryRuleKeys = map[string]map[string]string{
	"committees": {
		"unmc":   "committee_unmc",
		"nebmed": "committee_nebmed",
		"minor":  "committee_minor",
	},
	"mentorship": {
		"poster":           "mentorship_poster",
		"abstract":         "mentorship_abstract",
		"presentation":     "mentorship_presentation",
		"publication":      "mentorship_publication",
		"resident_advisor": "resident_advisor",
	},
	"grant_submissions": {
		"scored":     "grant_sub_scored",
		"not_scored": "grant_sub_not_scored",
		"mentor":     "grant_sub_mentor",
	},
	"publications_peer": {
		"first_senior": "pub_peer_first_senior_per_if",
		"coauth":       "pub_peer_coauth_per_if",
	},
	"publications_nonpeer": {
		"first_senior": "pub_nonpeer_first_senior",
		"coauth":       "pub_nonpeer_coauth",
	},
	"textbooks": {
		"senior_editor_major":  "textbook_senior_editor_major",
		"senior_editor_minor":  "textbook_senior_editor_minor",
		"section_editor_major": "textbook_section_editor_major",
		"section_editor_minor": "textbook_section_editor_minor",
		"chapter_first_major":  "chapter_first_senior_major",
		"chapter_first_minor":  "chapter_first_senior_minor",
		"chapter_coauth_major": "chapter_coauth_major",
		"chapter_coauth_minor": "chapter_coauth_minor",
	},
	"abstracts": {
		"first_senior":         "abstract_first_senior",
		"second_trainee_first": "abstract_2nd_trainee_1st",
		"coauth":               "abstract_coauth",
	},
	"journal_editorial": {
		"editor_chief":    "journal_editor_chief",
		"section_editor":  "journal_section_editor",
		"special_edition": "journal_special_edition",
		"editorial_board": "journal_editorial_board",
		"adhoc_reviewer":  "journal_adhoc_reviewer",
	},
}

// Recalculate recomputes point totals for one faculty record from the given
// rule source, independently of the points captured at parse time, so rule
// changes apply retroactively. Both the imported and the manually added
// activity trees are scored. Every visited entry gets CalculatedPoints set.
//
// Resolution per entry: an explicit RuleKey wins; else the internal type maps
// through the subcategory table; an unresolved entry keeps its parse-time
// points (or zero). The computation reads only immutable entry inputs, so
// running it twice yields identical totals.
func Recalculate(record *survey.FacultyRecord, source Source) map[string]int {
	totals := make(map[string]int, 6)
	for _, key := range survey.CategoryKeys() {
		totals[key] = 0
	}

	recalculateTree(record.Activities, source, totals)
	recalculateTree(record.Manual, source, totals)

	grand := 0
	for _, key := range survey.CategoryKeys() {
		grand += totals[key]
	}
	totals[survey.TotalKey] = grand

	return totals
}

func recalculateTree(activities survey.Activities, source Source, totals map[string]int) {
	for category, subcategories := range activities {
		for subcategory, value := range subcategories {
			if value == nil {
				continue
			}
			if value.Single != nil {
				points := entryPoints(value.Single, subcategory, source)
				value.Single.CalculatedPoints = points
				totals[category] += points
			}
			for i := range value.Entries {
				points := entryPoints(&value.Entries[i], subcategory, source)
				value.Entries[i].CalculatedPoints = points
				totals[category] += points
			}
		}
	}
}

func entryPoints(entry *survey.Entry, subcategory string, source Source) int {
	key := resolveRuleKey(entry, subcategory)
	if key == "" {
		return entry.Points
	}

	rule, ok := source.Rule(key)
	if !ok {
		// Rule tables lag behind survey content; degrade to the captured value.
		return entry.Points
	}

	switch rule.Modifier {
	case ModifierCount:
		count := entry.Count
		if count <= 0 {
			count = 1
		}
		return CountPoints(source, key, count)
	case ModifierImpactFactor:
		return ImpactFactorPoints(source, key, entryImpactFactor(entry))
	default:
		return FixedPoints(source, key)
	}
}

func resolveRuleKey(entry *survey.Entry, subcategory string) string {
	if entry.RuleKey != "" {
		return entry.RuleKey
	}
	if key, ok := subcategoryDefaultRuleKeys[subcategory]; ok {
		return key
	}
	if entry.InternalType == "" {
		return ""
	}
	if mapping, ok := subcategoryRuleKeys[subcategory]; ok {
		if key, ok := mapping[entry.InternalType]; ok {
			return key
		}
	}
	return entry.InternalType
}

func entryImpactFactor(entry *survey.Entry) float64 {
	raw := entry.Field("impact_factor")
	if raw == "" {
		return 1
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		return 1
	}
	return value
}
