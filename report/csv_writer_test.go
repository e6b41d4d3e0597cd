package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"facpoints/survey"
)

func TestCSVWriter_WritesHeaderAndRows(t *testing.T) {
	faculty := map[string]*survey.FacultyRecord{
		"a@unmc.edu": {
			FirstName: "Amy", LastName: "Adams", Email: "a@unmc.edu",
			QuartersReported: []string{"Q1"},
			Totals: map[string]int{
				survey.CategoryCitizenship: 100,
				survey.TotalKey:            100,
			},
		},
	}
	path := filepath.Join(t.TempDir(), "points.csv")

	writer := &CSVWriter{}
	if err := writer.Write(path, PointsRows(faculty)); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus 1 row, got %d records", len(records))
	}
	if records[0][0] != "Last Name" || records[0][len(records[0])-1] != "TOTAL POINTS" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	row := records[1]
	if row[0] != "Adams" || row[1] != "Amy" || row[4] != "Complete" || row[len(row)-1] != "100" {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestWriterForFormat(t *testing.T) {
	if _, err := WriterForFormat("csv"); err != nil {
		t.Fatalf("csv writer: %v", err)
	}
	if _, err := WriterForFormat("Excel"); err != nil {
		t.Fatalf("excel writer: %v", err)
	}
	if _, err := WriterForFormat("pdf"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
