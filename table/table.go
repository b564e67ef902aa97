// Package table writes and reads named row sets with a caller-fixed column order.
//
// A Schema travels alongside every row collection: the schema decides which
// columns exist and in what order, regardless of which keys a Row happens to
// carry. Writers always emit the header, so an empty table still has a stable,
// mergeable shape.
package table

import (
	"path/filepath"
	"strings"

	"github.com/teranos/eventgen/errors"
)

// Schema is an ordered list of column names under a table name.
type Schema struct {
	Name    string
	Columns []string
}

// FileName returns the table's file name for the given format (e.g. persons.csv).
func (s Schema) FileName(format string) string {
	return s.Name + "." + format
}

// Row maps column name to value. Missing columns read as "".
type Row map[string]string

// Values projects the row onto columns in order.
func (r Row) Values(columns []string) []string {
	values := make([]string, len(columns))
	for i, column := range columns {
		values[i] = r[column]
	}
	return values
}

// Table is a schema with its rows.
type Table struct {
	Schema Schema
	Rows   []Row
}

// Codec writes and reads one on-disk table format.
type Codec interface {
	// Format is the format name and file extension (csv, xlsx)
	Format() string
	Write(path string, schema Schema, rows []Row) error
	Read(path string) (*Table, error)
}

// ForFormat returns the codec for a format name.
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "csv":
		return CSV{}, nil
	case "xlsx":
		return XLSX{}, nil
	default:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "format %q", format),
			"supported formats: csv, xlsx")
	}
}

// WriteTable writes t into dir using codec and returns the file path.
func WriteTable(codec Codec, dir string, t Table) (string, error) {
	path := filepath.Join(dir, t.Schema.FileName(codec.Format()))
	if err := codec.Write(path, t.Schema, t.Rows); err != nil {
		return "", errors.Wrapf(err, "write table %s", t.Schema.Name)
	}
	return path, nil
}

// ReadTable reads the table named name from dir using codec.
func ReadTable(codec Codec, dir, name string) (*Table, error) {
	path := filepath.Join(dir, Schema{Name: name}.FileName(codec.Format()))
	t, err := codec.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read table %s", name)
	}
	t.Schema.Name = name
	return t, nil
}

// rowsFromRecords zips records with header. Short records are padded with "".
func rowsFromRecords(header []string, records [][]string) []Row {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row := make(Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
