package aggregate

import "facpoints/survey"

// BuildActivityIndex flattens every faculty record into a per-activity-type
// index keyed "category.subcategory". Each entry carries the owning faculty's
// display fields so activity-centric reports need no back-reference. Empty
// singletons are never emitted. Order within a key follows map iteration over
// faculty and is not deterministic; consumers sort for display.
func BuildActivityIndex(faculty map[string]*survey.FacultyRecord) map[string][]survey.IndexedEntry {
	index := make(map[string][]survey.IndexedEntry)

	for _, record := range faculty {
		for category, subcategories := range record.Activities {
			for subcategory, value := range subcategories {
				if value == nil {
					continue
				}
				key := category + "." + subcategory

				if value.Single != nil && !value.Single.IsEmpty() {
					index[key] = append(index[key], indexedEntry(*value.Single, record))
				}
				for _, entry := range value.Entries {
					if entry.IsEmpty() {
						continue
					}
					index[key] = append(index[key], indexedEntry(entry, record))
				}
			}
		}
	}

	return index
}

func indexedEntry(entry survey.Entry, record *survey.FacultyRecord) survey.IndexedEntry {
	return survey.IndexedEntry{
		Entry:         entry,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		HasIncomplete: record.HasIncomplete,
	}
}
