// Package workbook owns every spreadsheet the tool touches: the text corpus,
// the custom dictionary, the two-sheet review/result workbook and the debug
// token dump. All files are xlsx, read and written with excelize.
package workbook

import (
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TextRow is one row of the text corpus: the 1-based spreadsheet row number
// and the raw text held in the text column.
type TextRow struct {
	Row  int
	Text string
}

// LoadTextRows reads the text corpus from the first sheet of the workbook at
// path. The text column is autodetected by a header cell equal to "text"
// (trimmed, case-insensitive); without such a header the first column is
// used and no header row is assumed. Empty cells are skipped.
func LoadTextRows(path string) ([]TextRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening text workbook %s: %v", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading text workbook %s: %v", path, err)
	}

	col, hasHeader := findTextColumn(rows)
	if hasHeader {
		log.Printf("[Workbook] Column %d has title \"text\"", col+1)
	} else {
		log.Printf("[Workbook] No column with title \"text\", defaulting to column A")
	}

	start := 0
	if hasHeader {
		start = 1
	}

	var textRows []TextRow
	for i := start; i < len(rows); i++ {
		text := cellAt(rows[i], col)
		if text == "" {
			continue
		}
		textRows = append(textRows, TextRow{Row: i + 1, Text: text})
	}
	return textRows, nil
}

// SaveTextRows writes a copy of the corpus workbook at inPath to outPath with
// the text cells replaced by the given rows. Cell styling and the other
// columns of the input are preserved.
func SaveTextRows(inPath, outPath string, rows []TextRow) error {
	f, err := excelize.OpenFile(inPath)
	if err != nil {
		return fmt.Errorf("error opening text workbook %s: %v", inPath, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	existing, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("error reading text workbook %s: %v", inPath, err)
	}
	col, _ := findTextColumn(existing)

	for _, row := range rows {
		cell, err := excelize.CoordinatesToCellName(col+1, row.Row)
		if err != nil {
			return fmt.Errorf("error addressing row %d: %v", row.Row, err)
		}
		if err := f.SetCellValue(sheet, cell, row.Text); err != nil {
			return fmt.Errorf("error writing row %d: %v", row.Row, err)
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("error saving text workbook %s: %v", outPath, err)
	}
	return nil
}

// LoadDictionaryEntries reads the custom dictionary: column A of the first
// sheet, one raw entry per row. Pipe-splitting of bundled synonyms is the
// dictionary stack's concern, not the file format's.
func LoadDictionaryEntries(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dictionary workbook %s: %v", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading dictionary workbook %s: %v", path, err)
	}

	var entries []string
	for _, row := range rows {
		if entry := cellAt(row, 0); entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// AppendDictionaryWords appends one row per word to the custom dictionary
// workbook and rewrites the whole file in place. Existing rows are retained
// untouched; the dictionary only grows.
func AppendDictionaryWords(path string, words []string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("error opening dictionary workbook %s: %v", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("error reading dictionary workbook %s: %v", path, err)
	}

	next := len(rows) + 1
	for _, word := range words {
		cell := fmt.Sprintf("A%d", next)
		if err := f.SetCellValue(sheet, cell, word); err != nil {
			return fmt.Errorf("error appending dictionary word %q: %v", word, err)
		}
		next++
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("error saving dictionary workbook %s: %v", path, err)
	}
	return nil
}

// DedupeTextRows removes duplicate text rows from the corpus workbook in
// place: the first occurrence of each text is kept, the survivors are
// compacted upward under the header and the freed cells are cleared.
// Returns the number of rows removed.
func DedupeTextRows(path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("error opening text workbook %s: %v", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("error reading text workbook %s: %v", path, err)
	}

	col, hasHeader := findTextColumn(rows)
	start := 0
	if hasHeader {
		start = 1
	}

	seen := make(map[string]bool)
	var unique []string
	for i := start; i < len(rows); i++ {
		text := cellAt(rows[i], col)
		if seen[text] {
			continue
		}
		seen[text] = true
		unique = append(unique, text)
	}
	removed := len(rows) - start - len(unique)

	for i := start; i < len(rows); i++ {
		cell, err := excelize.CoordinatesToCellName(col+1, i+1)
		if err != nil {
			return 0, fmt.Errorf("error addressing row %d: %v", i+1, err)
		}
		value := ""
		if idx := i - start; idx < len(unique) {
			value = unique[idx]
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return 0, fmt.Errorf("error writing row %d: %v", i+1, err)
		}
	}

	if err := f.Save(); err != nil {
		return 0, fmt.Errorf("error saving text workbook %s: %v", path, err)
	}
	return removed, nil
}

// findTextColumn scans the first row for a header cell equal to "text".
// Returns the 0-based column index and whether a header row exists.
func findTextColumn(rows [][]string) (int, bool) {
	if len(rows) == 0 {
		return 0, false
	}
	for j, cell := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(cell), "text") {
			return j, true
		}
	}
	return 0, false
}

// cellAt returns the value at a column index; excelize trims trailing empty
// cells from each row, so short rows read as empty.
func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
