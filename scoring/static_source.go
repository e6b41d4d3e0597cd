package scoring

// StaticSource is an in-memory rule table. The built-in defaults mirror the
// department's published point schedule; overrides replace or add individual
// rules without touching the rest.
type StaticSource struct {
	rules map[string]Rule
}

// NewStaticSource returns the default rule table with overrides applied.
func NewStaticSource(overrides ...Rule) *StaticSource {
	rules := make(map[string]Rule, len(defaultRules)+len(overrides))
	for _, rule := range defaultRules {
		rules[rule.Key] = rule
	}
	for _, rule := range overrides {
		if rule.Modifier == "" {
			rule.Modifier = ModifierFixed
		}
		rules[rule.Key] = rule
	}
	return &StaticSource{rules: rules}
}

// NewStaticSourceFromRules builds a source from an explicit rule set only,
// with no defaults. Used to wrap rule rows loaded from a database.
func NewStaticSourceFromRules(rules []Rule) *StaticSource {
	table := make(map[string]Rule, len(rules))
	for _, rule := range rules {
		if rule.Modifier == "" {
			rule.Modifier = ModifierFixed
		}
		table[rule.Key] = rule
	}
	return &StaticSource{rules: table}
}

func (s *StaticSource) Rule(key string) (Rule, bool) {
	rule, ok := s.rules[key]
	return rule, ok
}

// Rules returns all rules in the source, in no particular order.
func (s *StaticSource) Rules() []Rule {
	rules := make([]Rule, 0, len(s.rules))
	for _, rule := range s.rules {
		rules = append(rules, rule)
	}
	return rules
}

func fixed(key string, base int) Rule {
	return Rule{Key: key, BasePoints: base, Modifier: ModifierFixed}
}

var defaultRules = []Rule{
	// Citizenship
	fixed("eval_80_completion", 2000),
	fixed("committee_unmc", 1000),
	fixed("committee_nebmed", 500),
	fixed("committee_minor", 100),
	fixed("grand_rounds_host", 300),
	fixed("grand_rounds_attend", 50),
	fixed("journal_club_host", 300),
	fixed("journal_club_attend", 50),
	fixed("student_shadow", 50),

	// Education: teaching recognition
	fixed("teacher_of_year", 7500),
	fixed("teacher_of_year_honorable", 5000),
	fixed("teaching_top25", 2500),
	fixed("teaching_25_65", 1000),

	// Education: lectures and curriculum
	fixed("unmc_grand_rounds_presenter", 500),
	fixed("lecture_new", 250),
	fixed("lecture_revised", 100),
	fixed("lecture_orals_mm", 75),
	fixed("lecture_existing", 50),
	fixed("com_core_new", 500),
	fixed("com_core_revised", 250),
	fixed("com_adhoc_new", 250),
	fixed("com_adhoc_revised", 100),

	// Education: board prep
	fixed("mock_applied_exam", 1000),
	fixed("osce_new", 250),
	fixed("osce_reviewer", 150),
	fixed("mock_oral_examiner", 50),

	// Education: other
	fixed("rotation_director", 500),
	fixed("mentorship_poster", 250),
	fixed("mentorship_abstract", 500),
	fixed("mentorship_presentation", 100),
	fixed("mentorship_publication", 100),
	fixed("resident_advisor", 50),
	fixed("mtr_winner", 250),
	{Key: "mytip_each", BasePoints: 25, Modifier: ModifierCount, MaxPoints: 3000},

	// Research
	fixed("nih_standing", 5000),
	fixed("nih_adhoc", 2500),
	fixed("grant_100k_plus", 5000),
	fixed("grant_50_99k", 3000),
	fixed("grant_10_49k", 2500),
	fixed("grant_under_10k", 1500),
	fixed("grant_sub_scored", 2000),
	fixed("grant_sub_not_scored", 500),
	fixed("grant_sub_mentor", 250),
	fixed("thesis_member", 1000),

	// Leadership: education
	fixed("course_director_national", 3000),
	fixed("workshop_director", 500),
	fixed("panel_moderator", 250),
	fixed("unmc_course_director", 1000),
	fixed("unmc_moderator", 100),
	fixed("guideline_writing_lead", 1000),

	// Leadership: society
	fixed("society_bod", 5000),
	fixed("society_rrc", 5000),
	fixed("society_committee_chair", 3000),
	fixed("society_committee_member", 1000),

	// Leadership: board
	fixed("boards_editor", 5000),
	fixed("writing_committee_chair", 3000),
	fixed("board_examiner", 2000),
	fixed("question_writer", 1000),

	// Content expert: speaking
	fixed("lecture_national_international", 500),
	fixed("lecture_regional_unmc", 250),
	fixed("workshop_national", 250),
	fixed("workshop_regional", 100),
	fixed("visiting_prof_grand_rounds", 500),
	fixed("non_anes_unmc_grand_rounds", 250),

	// Content expert: publications (per impact-factor point for peer review)
	{Key: "pub_peer_first_senior_per_if", BasePoints: 1000, Modifier: ModifierImpactFactor},
	{Key: "pub_peer_coauth_per_if", BasePoints: 300, Modifier: ModifierImpactFactor},
	fixed("pub_nonpeer_first_senior", 500),
	fixed("pub_nonpeer_coauth", 150),

	// Content expert: pathways
	fixed("pathway_new", 300),
	fixed("pathway_revised", 150),

	// Content expert: textbooks
	fixed("textbook_senior_editor_major", 20000),
	fixed("textbook_senior_editor_minor", 10000),
	fixed("textbook_section_editor_major", 10000),
	fixed("textbook_section_editor_minor", 5000),
	fixed("chapter_first_senior_major", 7000),
	fixed("chapter_first_senior_minor", 3000),
	fixed("chapter_coauth_major", 3000),
	fixed("chapter_coauth_minor", 500),

	// Content expert: abstracts
	fixed("abstract_first_senior", 500),
	fixed("abstract_2nd_trainee_1st", 500),
	fixed("abstract_coauth", 250),

	// Content expert: journal editorial
	fixed("journal_editor_chief", 20000),
	fixed("journal_section_editor", 10000),
	fixed("journal_special_edition", 10000),
	fixed("journal_editorial_board", 5000),
	fixed("journal_adhoc_reviewer", 1000),
}
