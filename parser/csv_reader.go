package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type CSVReader struct{}

func (r *CSVReader) Read(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(stripBOM(file))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("read csv header: %w", err)
	}

	table := Table{Headers: headers, Rows: make([][]string, 0, 128)}
	rowNumber := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read csv row %d: %w", rowNumber+1, err)
		}
		table.Rows = append(table.Rows, row)
		rowNumber++
	}

	return table, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripBOM drops a UTF-8 byte order mark; the survey tool exports with one.
func stripBOM(reader io.Reader) io.Reader {
	buffered := bufio.NewReader(reader)
	prefix, err := buffered.Peek(3)
	if err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = buffered.Discard(3)
	}
	return buffered
}
