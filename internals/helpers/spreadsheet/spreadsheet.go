// file: internals/helpers/spreadsheet/spreadsheet.go
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

/* ===============================
   Row source (CSV / XLSX)
=================================*/

// Rows reads an uploaded spreadsheet into an ordered [][]string.
// CSV is picked by file extension; everything else goes through excelize
// (first worksheet only). Only an unreadable file errors here; bad data
// rows are the adapters' problem, never a parse failure.
func Rows(r io.Reader, filename string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return csvRows(r)
	}
	return excelRows(r)
}

func csvRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are tolerated
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff") // Excel-exported BOM
	}
	return rows, nil
}

func excelRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no worksheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

/* ===============================
   Header-keyed lookup
=================================*/

// HeaderIndex maps normalized header names to their column index.
type HeaderIndex map[string]int

// Normalize lowercases and strips spaces/underscores so that
// "School Name", "SCHOOL_NAME" and "schoolname" all collide.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func BuildHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := Normalize(h)
		if key == "" {
			continue
		}
		if _, exists := idx[key]; !exists {
			idx[key] = i
		}
	}
	return idx
}

// Lookup resolves the first matching synonym.
func (h HeaderIndex) Lookup(synonyms ...string) (int, bool) {
	for _, s := range synonyms {
		if i, ok := h[Normalize(s)]; ok {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the trimmed cell at idx, or "" when the row is short.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

/* ===============================
   Per-row errors
=================================*/

// RowError records a dropped row by its 1-based position in the file.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
