package table

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/teranos/eventgen/errors"
)

// CSV is the RFC 4180 codec.
type CSV struct{}

func (CSV) Format() string { return "csv" }

// Write creates path and writes the header followed by one record per row.
func (CSV) Write(path string, schema Schema, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create CSV file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(schema.Columns); err != nil {
		return errors.Wrap(err, "failed to write headers")
	}
	for _, row := range rows {
		if err := writer.Write(row.Values(schema.Columns)); err != nil {
			return errors.Wrap(err, "failed to write row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush CSV")
	}
	return file.Close()
}

// Read parses path; the first record is the header.
func (CSV) Read(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Newf("%s has no header row", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read headers")
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read rows")
	}

	return &Table{
		Schema: Schema{Columns: header},
		Rows:   rowsFromRecords(header, records),
	}, nil
}
