package parser

// mistakeLabel is the survey's escape choice for sections a respondent opened
// by accident. A type map value of "" marks the label as this sentinel: the
// slot is skipped even when other fields are populated.
const mistakeLabel = "I mistakenly answered Yes - I did not do this activity"

var committeeTypes = map[string]string{
	"UNMC standing committee (admissions, GME, curriculum, senate, IRB)": "unmc",
	"Nebraska Medicine standing committee (MEC/med staff)":               "nebmed",
	"Minor or ad hoc committee":                                          "minor",
	mistakeLabel:                                                         "",
}

var departmentActivityTypes = map[string]string{
	"Grand Rounds Host":                   "grand_rounds_host",
	"Grand Rounds Attendance (in person)": "grand_rounds_attend",
	"Journal Club Host":                   "journal_club_host",
	"Journal Club Attendance":             "journal_club_attend",
	"Student Shadowing Mentor":            "student_shadow",
	mistakeLabel:                          "",
}

var teachingRecognitionTypes = map[string]string{
	"Teacher of the Year":                    "teacher_of_year",
	"Teacher of the Year - Honorable Mention": "teacher_of_year_honorable",
	"Top 25% Teaching Evaluations":           "teaching_top25",
	"25-65% Teaching Evaluations":            "teaching_25_65",
}

var lectureTypes = map[string]string{
	"New Lecture":                                  "lecture_new",
	"Revised Existing Lecture":                     "lecture_revised",
	"Existing Lecture (no revision)":               "lecture_existing",
	"Resident M&M and Practice Oral Boards Session": "lecture_orals_mm",
	"UNMC Grand Rounds (presenter)":                "unmc_grand_rounds_presenter",
	"Core COM Faculty - New Lecture":               "com_core_new",
	"Core COM Faculty - Revised Lecture":           "com_core_revised",
	"Ad Hoc COM Faculty - New Lecture":             "com_adhoc_new",
	"Ad Hoc COM Faculty - Revised Lecture":         "com_adhoc_revised",
	mistakeLabel:                                   "",
}

var boardPrepTypes = map[string]string{
	"Mock Applied Exam Faculty":      "mock_applied_exam",
	"New OSCE Preparation":           "osce_new",
	"OSCE Reviewer (per 5 videos)":   "osce_reviewer",
	"Mock Oral Examiner (per session)": "mock_oral_examiner",
	mistakeLabel:                     "",
}

var mentorshipTypes = map[string]string{
	"Poster presentation (MARC/ASA/SCA/other)": "poster",
	"Research abstract mentorship":             "abstract",
	"Presentation mentoring":                   "presentation",
	"Publication mentoring":                    "publication",
	"Resident Advisor":                         "resident_advisor",
	mistakeLabel:                               "",
}

var grantReviewTypes = map[string]string{
	"NIH Study Section - Standing": "nih_standing",
	"NIH Study Section - Ad Hoc":   "nih_adhoc",
}

var grantAwardLevels = map[string]string{
	"Grant ≥ $100,000":             "grant_100k_plus",
	"Grant $50,000-99,999":         "grant_50_99k",
	"Direct costs $10,000-49,999":  "grant_10_49k",
	"Direct costs < $10,000":       "grant_under_10k",
}

var grantSubmissionTypes = map[string]string{
	"Scored submission":     "scored",
	"Not scored submission": "not_scored",
	"Mentor on submission":  "mentor",
}

var educationLeadershipTypes = map[string]string{
	"Course Director (national/international)": "course_director_national",
	"Workshop Director":                        "workshop_director",
	"Panel Moderator":                          "panel_moderator",
	"UNMC Course Director":                     "unmc_course_director",
	"UNMC Moderator":                           "unmc_moderator",
	"Guideline Writing Lead":                   "guideline_writing_lead",
	mistakeLabel:                               "",
}

var societyLeadershipTypes = map[string]string{
	"Society BOD Member":           "society_bod",
	"Society RRC Member":           "society_rrc",
	"Major Board Committee Chair":  "society_committee_chair",
	"Major Board Committee Member": "society_committee_member",
	mistakeLabel:                   "",
}

var boardLeadershipTypes = map[string]string{
	"Boards Editor":           "boards_editor",
	"Writing Committee Chair": "writing_committee_chair",
	"Board Examiner":          "board_examiner",
	"Question Writer":         "question_writer",
	mistakeLabel:              "",
}

var speakingTypes = map[string]string{
	"International/National Lecture":       "lecture_national_international",
	"Regional/UNMC Lecture":                "lecture_regional_unmc",
	"National Workshop":                    "workshop_national",
	"Regional/UNMC Workshop":               "workshop_regional",
	"Visiting Professor Grand Rounds":      "visiting_prof_grand_rounds",
	"Non-Anesthesiology UNMC Grand Rounds": "non_anes_unmc_grand_rounds",
	mistakeLabel:                           "",
}

var publicationRoles = map[string]string{
	"First or Senior Author": "first_senior",
	"Co-author":              "coauth",
}

var textbookRoles = map[string]string{
	"Textbook Senior Editor (Major)":      "senior_editor_major",
	"Textbook Senior Editor (Minor)":      "senior_editor_minor",
	"Textbook Section Editor (Major)":     "section_editor_major",
	"Textbook Section Editor (Minor)":     "section_editor_minor",
	"Chapter First/Senior Author (Major)": "chapter_first_major",
	"Chapter First/Senior Author (Minor)": "chapter_first_minor",
	"Chapter Co-author (Major)":           "chapter_coauth_major",
	"Chapter Co-author (Minor)":           "chapter_coauth_minor",
	mistakeLabel:                          "",
}

var abstractRoles = map[string]string{
	"First or Senior Author":         "first_senior",
	"2nd Author with Trainee as 1st": "second_trainee_first",
	"Co-author":                      "coauth",
	mistakeLabel:                     "",
}

var pathwayTypes = map[string]string{
	"New Clinical Pathway":     "pathway_new",
	"Revised Clinical Pathway": "pathway_revised",
	mistakeLabel:               "",
}

var journalEditorialTypes = map[string]string{
	"Journal Editor-in-Chief":                           "editor_chief",
	"Journal Section Editor":                            "section_editor",
	"Journal Special Edition Editor":                    "special_edition",
	"Editorial Board Member":                            "editorial_board",
	"Ad Hoc Reviewer (4+ reviews/year for same journal)": "adhoc_reviewer",
	mistakeLabel:                                        "",
}
