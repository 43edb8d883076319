// Package dataset moves observation matrices between CSV files and the
// matrix package, and generates synthetic mixtures for demos.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/fastica/matrix"
)

var (
	// ErrEmpty is returned when a CSV source holds no data rows.
	ErrEmpty = errors.New("dataset: no data rows")

	// ErrParse wraps a field that is not a finite number.
	ErrParse = errors.New("dataset: malformed value")
)

// CSVOptions controls CSV parsing and formatting.
type CSVOptions struct {
	Header    bool // first record holds column names
	Delimiter rune // ',' when zero
}

func (o CSVOptions) comma() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// ReadCSV parses r into a matrix, one record per observation.
// Blank lines are skipped; every record must have the same width.
func ReadCSV(r io.Reader, opts CSVOptions) (*matrix.Dense, []string, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.comma()
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	var header []string
	if opts.Header && len(records) > 0 {
		header, records = records[0], records[1:]
	}
	if len(records) == 0 {
		return nil, header, ErrEmpty
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, header, fmt.Errorf("%w: record %d field %d: %v", ErrParse, i+1, j+1, err)
			}
			rows[i][j] = v
		}
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, header, err
	}
	return m, header, nil
}

// ReadCSVFile opens path and calls ReadCSV.
func ReadCSVFile(path string, opts CSVOptions) (*matrix.Dense, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ReadCSV(f, opts)
}

// WriteCSV writes m to w. A nil header writes no header record even when
// opts.Header is set.
func WriteCSV(w io.Writer, m *matrix.Dense, header []string, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.comma()

	if opts.Header && header != nil {
		if len(header) != m.Cols() {
			return fmt.Errorf("dataset: header has %d names for %d columns", len(header), m.Cols())
		}
		if err := cw.Write(header); err != nil {
			return err
		}
	}

	record := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j, v := range m.RawRow(i) {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile creates path and calls WriteCSV.
func WriteCSVFile(path string, m *matrix.Dense, header []string, opts CSVOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, m, header, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ColumnNames returns prefix0..prefix{n-1}.
func ColumnNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = prefix + strconv.Itoa(i)
	}
	return names
}
