package parser

import (
	"fmt"
	"strconv"
	"strings"

	"facpoints/survey"
)

// ExtractEntries reads every occupied slot of one repeating-group section
// from a row.
//
// Slot i lives at occurrence StartOffset+i of the type column. A missing
// occurrence means the section is exhausted and extraction stops; a blank
// type value means the slot was left empty and extraction continues, so
// occupied slots need not be contiguous. A slot becomes an entry only when it
// carries positive points or at least one populated detail field; a bare type
// with nothing else is noise from a half-answered section.
func ExtractEntries(row []string, index ColumnIndex, template Template) []survey.Entry {
	positions := index[template.TypeColumn]

	var entries []survey.Entry
	for slot := 0; slot < template.MaxSlots; slot++ {
		occurrence := template.StartOffset + slot
		if occurrence >= len(positions) {
			break
		}
		position := positions[occurrence]
		if position >= len(row) {
			continue
		}

		rawType := strings.TrimSpace(row[position])
		if rawType == "" {
			continue
		}

		internalType := ""
		if template.TypeMap != nil {
			code, known := template.TypeMap[rawType]
			if known && code == "" {
				// The respondent opened this section by mistake.
				continue
			}
			internalType = code
		}

		entry := survey.Entry{Type: rawType, InternalType: internalType}
		for _, detail := range template.DetailColumns {
			if detail.Column == template.TypeColumn {
				continue
			}
			if value := index.Value(row, detail.Column, occurrence); value != "" {
				if entry.Fields == nil {
					entry.Fields = make(map[string]string, len(template.DetailColumns))
				}
				entry.Fields[detail.Key] = value
			}
		}

		// Points columns are numbered per template ("Points for Committee #2"),
		// so each formatted name repeats once per template sharing it and is
		// read at the template's own anchor occurrence.
		pointsColumn := fmt.Sprintf(template.PointsPattern, slot+1)
		if raw := index.Value(row, pointsColumn, template.StartOffset); raw != "" {
			if points, err := parsePoints(raw); err == nil && points > 0 {
				entry.Points = points
			}
		}

		if entry.Points > 0 || len(entry.Fields) > 0 {
			entries = append(entries, entry)
		}
	}

	return entries
}

// parsePoints accepts integers and decimal strings; the survey exports
// pre-computed points as decimals ("1000.0").
func parsePoints(raw string) (int, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("parse points %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("points must not be negative")
	}
	return int(value), nil
}
