package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"catstat/domain/dataset"
)

// Reader loads a tabular file into an in-memory Table. Excel files are read
// from Sheet1; anything with a .csv extension is read as CSV.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for the given file path
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read loads the file into a column-oriented table
func (r *Reader) Read() (*dataset.MemoryTable, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	default:
		return r.readExcel()
	}
}

func (r *Reader) readExcel() (*dataset.MemoryTable, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return fromRows(rows)
}

func (r *Reader) readCSV() (*dataset.MemoryTable, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return fromRows(rows)
}

// fromRows converts header+data string rows into a column-oriented table.
// Short rows are padded with empty strings, matching spreadsheet semantics.
func fromRows(rows [][]string) (*dataset.MemoryTable, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have at least a header row and one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		name := strings.TrimSpace(header)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		headers[i] = name
	}

	columns := make([][]string, len(headers))
	for _, row := range rows[1:] {
		for i := range headers {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			columns[i] = append(columns[i], value)
		}
	}

	table := dataset.NewMemoryTable()
	for i, name := range headers {
		table.AddColumn(name, columns[i])
	}
	return table, nil
}
