package parser

import (
	"testing"
)

func committeeTemplate() Template {
	return Template{
		Category:    "citizenship",
		Subcategory: "committees",
		TypeColumn:  "Committee type",
		DetailColumns: []DetailColumn{
			{Column: "Committee name", Key: "name"},
			{Column: "Your role (member, chair, etc.)", Key: "role"},
		},
		PointsPattern: "Points for Committee #%d",
		MaxSlots:      3,
		TypeMap:       committeeTypes,
	}
}

func TestExtractEntries_BlankSlotSkippedLaterSlotKept(t *testing.T) {
	headers := []string{
		"Committee type", "Committee name", "Points for Committee #1",
		"Committee type", "Committee name", "Points for Committee #2",
		"Committee type", "Committee name", "Points for Committee #3",
	}
	row := []string{
		"Minor or ad hoc committee", "QI Taskforce", "100",
		"", "", "",
		"Minor or ad hoc committee", "Safety Board", "100",
	}

	entries := ExtractEntries(row, BuildColumnIndex(headers), committeeTemplate())

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Field("name") != "QI Taskforce" || entries[1].Field("name") != "Safety Board" {
		t.Fatalf("unexpected entry names: %q, %q", entries[0].Field("name"), entries[1].Field("name"))
	}
}

func TestExtractEntries_MissingOccurrenceStopsExtraction(t *testing.T) {
	// Header carries only one slot; later slots are exhausted, not blank.
	headers := []string{"Committee type", "Committee name", "Points for Committee #1"}
	row := []string{"Minor or ad hoc committee", "QI Taskforce", "100"}

	entries := ExtractEntries(row, BuildColumnIndex(headers), committeeTemplate())

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestExtractEntries_InclusionRule(t *testing.T) {
	headers := []string{
		"Committee type", "Committee name", "Points for Committee #1",
		"Committee type", "Committee name", "Points for Committee #2",
		"Committee type", "Committee name", "Points for Committee #3",
	}
	// Slot 1: type only, no points, no details -> dropped.
	// Slot 2: detail field, no points -> kept.
	// Slot 3: points only -> kept.
	row := []string{
		"Minor or ad hoc committee", "", "",
		"Minor or ad hoc committee", "QI Taskforce", "",
		"Minor or ad hoc committee", "", "100",
	}

	entries := ExtractEntries(row, BuildColumnIndex(headers), committeeTemplate())

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Field("name") != "QI Taskforce" || entries[0].Points != 0 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Points != 100 {
		t.Fatalf("expected 100 points on second entry, got %d", entries[1].Points)
	}
}

func TestExtractEntries_MistakeAnswerSkipped(t *testing.T) {
	headers := []string{"Committee type", "Committee name", "Points for Committee #1"}
	row := []string{"I mistakenly answered Yes - I did not do this activity", "junk", "100"}

	entries := ExtractEntries(row, BuildColumnIndex(headers), committeeTemplate())

	if len(entries) != 0 {
		t.Fatalf("expected no entries for the mistake answer, got %d", len(entries))
	}
}

func TestExtractEntries_UnmappedTypeKeptWithoutInternalCode(t *testing.T) {
	headers := []string{"Committee type", "Committee name", "Points for Committee #1"}
	row := []string{"Some future committee type", "New Board", ""}

	entries := ExtractEntries(row, BuildColumnIndex(headers), committeeTemplate())

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Type != "Some future committee type" || entries[0].InternalType != "" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestExtractEntries_StartOffsetSeparatesSharedColumn(t *testing.T) {
	// Two sections share the "Your role" column: peer publications own
	// occurrences 0-1, non-peer publications own occurrence 2.
	peer := Template{
		Category:    "content_expert",
		Subcategory: "publications_peer",
		TypeColumn:  "Your role",
		DetailColumns: []DetailColumn{
			{Column: "Publication title", Key: "title"},
		},
		PointsPattern: "Points for Publication #%d",
		MaxSlots:      2,
		TypeMap:       publicationRoles,
	}
	nonpeer := Template{
		Category:    "content_expert",
		Subcategory: "publications_nonpeer",
		TypeColumn:  "Your role",
		DetailColumns: []DetailColumn{
			{Column: "Publication title", Key: "title"},
		},
		PointsPattern: "Points for Publication #%d",
		MaxSlots:      1,
		StartOffset:   2,
		TypeMap:       publicationRoles,
	}

	headers := []string{
		"Your role", "Publication title", "Points for Publication #1",
		"Your role", "Publication title", "Points for Publication #2",
		"Your role", "Publication title", "Points for Publication #1",
	}
	row := []string{
		"First or Senior Author", "Peer Paper A", "1000",
		"Co-author", "Peer Paper B", "300",
		"Co-author", "Newsletter Piece", "50",
	}
	index := BuildColumnIndex(headers)

	peerEntries := ExtractEntries(row, index, peer)
	if len(peerEntries) != 2 {
		t.Fatalf("expected 2 peer entries, got %d", len(peerEntries))
	}
	if peerEntries[0].Field("title") != "Peer Paper A" || peerEntries[1].Field("title") != "Peer Paper B" {
		t.Fatalf("peer entries read the wrong occurrences: %+v", peerEntries)
	}

	nonpeerEntries := ExtractEntries(row, index, nonpeer)
	if len(nonpeerEntries) != 1 {
		t.Fatalf("expected 1 non-peer entry, got %d", len(nonpeerEntries))
	}
	if nonpeerEntries[0].Field("title") != "Newsletter Piece" || nonpeerEntries[0].Points != 50 {
		t.Fatalf("non-peer entry read the wrong occurrence: %+v", nonpeerEntries[0])
	}
}

func TestParsePoints(t *testing.T) {
	if points, err := parsePoints("1000.0"); err != nil || points != 1000 {
		t.Fatalf("expected 1000, got %d (err: %v)", points, err)
	}
	if points, err := parsePoints(" 250 "); err != nil || points != 250 {
		t.Fatalf("expected 250, got %d (err: %v)", points, err)
	}
	if _, err := parsePoints("-5"); err == nil {
		t.Fatalf("expected error for negative points")
	}
	if _, err := parsePoints("abc"); err == nil {
		t.Fatalf("expected error for non-numeric points")
	}
}
