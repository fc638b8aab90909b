package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the result workbook.
const (
	SheetNotCorrected = "Not Corrected"
	SheetCorrected    = "Corrected"
)

// ResultRow is one recorded outcome of the checking phase. Correction is
// empty on not-corrected rows. The two URLs are reviewer conveniences: a
// search query scoped to the word and one scoped to its context.
type ResultRow struct {
	Word        string
	Correction  string
	Row         int
	Context     string
	Suggestions []string
	WordURL     string
	ContextURL  string
}

// WriteResults writes a fresh result workbook with the "Not Corrected" and
// "Corrected" sheets laid out for the human reviewer: bold headers, fixed
// column widths, hyperlinked word and context cells, and an empty
// "User Action" column A awaiting decisions.
func WriteResults(path string, notCorrected, corrected []ResultRow) error {
	f := excelize.NewFile()
	defer f.Close()

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("error creating header style: %v", err)
	}
	linkStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "1265BE", Underline: "single"}})
	if err != nil {
		return fmt.Errorf("error creating hyperlink style: %v", err)
	}

	if _, err := f.NewSheet(SheetNotCorrected); err != nil {
		return fmt.Errorf("error creating sheet %q: %v", SheetNotCorrected, err)
	}
	if _, err := f.NewSheet(SheetCorrected); err != nil {
		return fmt.Errorf("error creating sheet %q: %v", SheetCorrected, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("error removing default sheet: %v", err)
	}

	if err := writeNotCorrectedSheet(f, boldStyle, linkStyle, notCorrected); err != nil {
		return err
	}
	if err := writeCorrectedSheet(f, boldStyle, linkStyle, corrected); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving result workbook %s: %v", path, err)
	}
	return nil
}

func writeNotCorrectedSheet(f *excelize.File, boldStyle, linkStyle int, results []ResultRow) error {
	sheet := SheetNotCorrected

	headers := []string{"User Action", "Word", "Row", "Original Context", "Suggestions"}
	for j, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("error writing header on %q: %v", sheet, err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", boldStyle); err != nil {
		return fmt.Errorf("error styling header on %q: %v", sheet, err)
	}

	widths := map[string]float64{"A": 20, "B": 25, "C": 5, "D": 100, "E": 20, "F": 20, "G": 20}
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("error sizing column %s on %q: %v", col, sheet, err)
		}
	}

	for i, result := range results {
		row := i + 2
		if err := setLinkedCell(f, sheet, 2, row, result.Word, result.WordURL, linkStyle); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellName(3, row), result.Row); err != nil {
			return fmt.Errorf("error writing row reference on %q: %v", sheet, err)
		}
		if err := setLinkedCell(f, sheet, 4, row, result.Context, result.ContextURL, linkStyle); err != nil {
			return err
		}
		for j, suggestion := range result.Suggestions {
			if err := f.SetCellValue(sheet, cellName(5+j, row), suggestion); err != nil {
				return fmt.Errorf("error writing suggestion on %q: %v", sheet, err)
			}
		}
	}
	return nil
}

func writeCorrectedSheet(f *excelize.File, boldStyle, linkStyle int, results []ResultRow) error {
	sheet := SheetCorrected

	headers := []string{"User Action", "Word", "Correction", "Row", "Original Context", "Suggestions"}
	for j, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("error writing header on %q: %v", sheet, err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", boldStyle); err != nil {
		return fmt.Errorf("error styling header on %q: %v", sheet, err)
	}

	widths := map[string]float64{"A": 20, "B": 25, "C": 25, "D": 5, "E": 100, "F": 20, "G": 20, "H": 20}
	for col, width := range widths {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("error sizing column %s on %q: %v", col, sheet, err)
		}
	}

	for i, result := range results {
		row := i + 2
		if err := setLinkedCell(f, sheet, 2, row, result.Word, result.WordURL, linkStyle); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellName(3, row), result.Correction); err != nil {
			return fmt.Errorf("error writing correction on %q: %v", sheet, err)
		}
		if err := f.SetCellValue(sheet, cellName(4, row), result.Row); err != nil {
			return fmt.Errorf("error writing row reference on %q: %v", sheet, err)
		}
		if err := setLinkedCell(f, sheet, 5, row, result.Context, result.ContextURL, linkStyle); err != nil {
			return err
		}
		for j, suggestion := range result.Suggestions {
			if err := f.SetCellValue(sheet, cellName(6+j, row), suggestion); err != nil {
				return fmt.Errorf("error writing suggestion on %q: %v", sheet, err)
			}
		}
	}
	return nil
}

// WriteDebugWords writes the raw token dump produced by debug mode: every
// checked token, one per row, on a single sheet.
func WriteDebugWords(path string, words []string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Words Checked"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("error creating debug sheet: %v", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("error removing default sheet: %v", err)
	}

	for i, word := range words {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), word); err != nil {
			return fmt.Errorf("error writing debug word: %v", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving debug workbook %s: %v", path, err)
	}
	return nil
}

// setLinkedCell writes a value with an external hyperlink and the hyperlink
// style.
func setLinkedCell(f *excelize.File, sheet string, col, row int, value, link string, linkStyle int) error {
	cell := cellName(col, row)
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("error writing cell %s on %q: %v", cell, sheet, err)
	}
	if link != "" {
		if err := f.SetCellHyperLink(sheet, cell, link, "External"); err != nil {
			return fmt.Errorf("error linking cell %s on %q: %v", cell, sheet, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, linkStyle); err != nil {
			return fmt.Errorf("error styling cell %s on %q: %v", cell, sheet, err)
		}
	}
	return nil
}

// cellName is CoordinatesToCellName without the error path; coordinates here
// are always small positive constants.
func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
