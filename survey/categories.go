package survey

// SubcategoryKind distinguishes the two subcategory shapes.
type SubcategoryKind int

const (
	// KindSingleton subcategories hold at most one entry per record.
	KindSingleton SubcategoryKind = iota
	// KindRepeated subcategories accumulate a list of entries.
	KindRepeated
)

type SubcategoryInfo struct {
	Key  string
	Name string
	Kind SubcategoryKind
}

type CategoryInfo struct {
	Key           string
	Name          string
	Subcategories []SubcategoryInfo
}

// Categories is the fixed activity taxonomy: five categories, each with its
// subcategories in report order.
var Categories = []CategoryInfo{
	{
		Key:  CategoryCitizenship,
		Name: "Citizenship",
		Subcategories: []SubcategoryInfo{
			{Key: "evaluations", Name: "Trainee Evaluation Completion (≥80%)", Kind: KindSingleton},
			{Key: "committees", Name: "Committee Membership", Kind: KindRepeated},
			{Key: "department_activities", Name: "Department Citizenship Activities", Kind: KindRepeated},
		},
	},
	{
		Key:  CategoryEducation,
		Name: "Education",
		Subcategories: []SubcategoryInfo{
			{Key: "teaching_awards", Name: "Teaching Awards & Recognition", Kind: KindSingleton},
			{Key: "lectures", Name: "Lectures & Curriculum", Kind: KindRepeated},
			{Key: "board_prep", Name: "Board Preparation Activities", Kind: KindRepeated},
			{Key: "mentorship", Name: "Trainee Mentorship", Kind: KindRepeated},
			{Key: "feedback", Name: "MyTIPreport & MTR", Kind: KindSingleton},
			{Key: "rotation_director", Name: "Rotation Director", Kind: KindSingleton},
		},
	},
	{
		Key:  CategoryResearch,
		Name: "Research",
		Subcategories: []SubcategoryInfo{
			{Key: "grant_review", Name: "Grant Review (NIH Study Section)", Kind: KindSingleton},
			{Key: "grant_awards", Name: "Grant Awards", Kind: KindRepeated},
			{Key: "grant_submissions", Name: "Grant Submissions", Kind: KindRepeated},
			{Key: "thesis_committees", Name: "Thesis/Dissertation Committees", Kind: KindRepeated},
		},
	},
	{
		Key:  CategoryLeadership,
		Name: "Leadership",
		Subcategories: []SubcategoryInfo{
			{Key: "education_leadership", Name: "Education Leadership", Kind: KindRepeated},
			{Key: "society_leadership", Name: "Society Leadership", Kind: KindRepeated},
			{Key: "board_leadership", Name: "Board Examination Leadership", Kind: KindRepeated},
		},
	},
	{
		Key:  CategoryContentExpert,
		Name: "Content Expert",
		Subcategories: []SubcategoryInfo{
			{Key: "speaking", Name: "Invited Speaking", Kind: KindRepeated},
			{Key: "publications_peer", Name: "Peer-Reviewed Publications", Kind: KindRepeated},
			{Key: "publications_nonpeer", Name: "Non-Peer-Reviewed Publications", Kind: KindRepeated},
			{Key: "pathways", Name: "Clinical Pathways", Kind: KindRepeated},
			{Key: "textbooks", Name: "Textbook Contributions", Kind: KindRepeated},
			{Key: "abstracts", Name: "Research Abstracts", Kind: KindRepeated},
			{Key: "journal_editorial", Name: "Journal Editorial Roles", Kind: KindRepeated},
		},
	},
}

// CategoryByKey returns the taxonomy entry for a category key.
func CategoryByKey(key string) (CategoryInfo, bool) {
	for _, category := range Categories {
		if category.Key == key {
			return category, true
		}
	}
	return CategoryInfo{}, false
}

// SubcategoryName returns the display name for a subcategory key, falling
// back to the key itself for unknown subcategories.
func SubcategoryName(key string) string {
	for _, category := range Categories {
		for _, subcategory := range category.Subcategories {
			if subcategory.Key == key {
				return subcategory.Name
			}
		}
	}
	return key
}
