package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cristianoliveira/pawmatch/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
)

// SimpleFormatter formats one dog per line.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatDogs writes "id  name (breed, age N)" lines.
func (f *SimpleFormatter) FormatDogs(dogs []domain.Dog, writer io.Writer) error {
	for _, d := range dogs {
		_, err := fmt.Fprintf(writer, "%-20s  %s (%s, age %d)\n", d.ID, d.Name, d.Breed, d.Age)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatBreeds writes one breed per line.
func (f *SimpleFormatter) FormatBreeds(breeds []string, writer io.Writer) error {
	for _, b := range breeds {
		if _, err := fmt.Fprintln(writer, b); err != nil {
			return err
		}
	}
	return nil
}

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// Style is the go-pretty border style.
	Style table.Style

	// ColumnWidths caps each column; longer cells end in "...".
	ColumnWidths map[string]int
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		Style:       table.StyleRounded,
		ColumnWidths: map[string]int{
			"ID":    20,
			"Name":  16,
			"Breed": 24,
			"Age":   3,
			"Zip":   5,
		},
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	Name      string
	Width     int
	Extractor func(domain.Dog) string
}

// TableFormatter formats dogs as a bordered table.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a TableFormatter with the default columns.
func NewTableFormatter() *TableFormatter {
	config := DefaultTableConfig()
	w := config.ColumnWidths
	return &TableFormatter{
		config: config,
		columns: []TableColumn{
			{Name: "ID", Width: w["ID"], Extractor: func(d domain.Dog) string { return d.ID }},
			{Name: "Name", Width: w["Name"], Extractor: func(d domain.Dog) string { return d.Name }},
			{Name: "Breed", Width: w["Breed"], Extractor: func(d domain.Dog) string { return d.Breed }},
			{Name: "Age", Width: w["Age"], Extractor: func(d domain.Dog) string { return strconv.Itoa(d.Age) }},
			{Name: "Zip", Width: w["Zip"], Extractor: func(d domain.Dog) string { return d.ZipCode }},
		},
	}
}

// FormatDogs writes one row per dog. No dogs writes nothing.
func (f *TableFormatter) FormatDogs(dogs []domain.Dog, writer io.Writer) error {
	if len(dogs) == 0 {
		return nil
	}
	t := f.newWriter()
	if f.config.ShowHeaders {
		header := make(table.Row, len(f.columns))
		for i, col := range f.columns {
			header[i] = col.Name
		}
		t.AppendHeader(header)
	}
	for _, d := range dogs {
		row := make(table.Row, len(f.columns))
		for i, col := range f.columns {
			row[i] = truncateString(col.Extractor(d), col.Width)
		}
		t.AppendRow(row)
	}
	_, err := fmt.Fprintln(writer, t.Render())
	return err
}

// FormatBreeds writes a single-column table.
func (f *TableFormatter) FormatBreeds(breeds []string, writer io.Writer) error {
	if len(breeds) == 0 {
		return nil
	}
	t := f.newWriter()
	if f.config.ShowHeaders {
		t.AppendHeader(table.Row{"Breed"})
	}
	for _, b := range breeds {
		t.AppendRow(table.Row{b})
	}
	_, err := fmt.Fprintln(writer, t.Render())
	return err
}

func (f *TableFormatter) newWriter() table.Writer {
	t := table.NewWriter()
	t.SetStyle(f.config.Style)
	return t
}

// JSONFormatter formats dogs as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatDogs writes dogs as a JSON array. No dogs writes "[]".
func (f *JSONFormatter) FormatDogs(dogs []domain.Dog, writer io.Writer) error {
	if dogs == nil {
		dogs = []domain.Dog{}
	}
	return writeJSON(writer, dogs)
}

// FormatBreeds writes breeds as a JSON array of strings.
func (f *JSONFormatter) FormatBreeds(breeds []string, writer io.Writer) error {
	if breeds == nil {
		breeds = []string{}
	}
	return writeJSON(writer, breeds)
}

func writeJSON(writer io.Writer, v any) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
