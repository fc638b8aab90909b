package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReviewRow is one reviewed result row read back from the result workbook:
// the reviewer's "User Action" cell plus the recorded word, correction (on
// the Corrected sheet), corpus row reference and suggestion list.
type ReviewRow struct {
	Action      string
	Word        string
	Correction  string
	Row         int
	Suggestions []string
}

// LoadReview reads both sheets of a reviewed result workbook. The sheet
// layouts are the ones WriteResults produces; a workbook missing either
// sheet is invalid.
func LoadReview(path string) (notCorrected, corrected []ReviewRow, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening result workbook %s: %v", path, err)
	}
	defer f.Close()

	notCorrected, err = loadReviewSheet(f, SheetNotCorrected, false)
	if err != nil {
		return nil, nil, err
	}
	corrected, err = loadReviewSheet(f, SheetCorrected, true)
	if err != nil {
		return nil, nil, err
	}
	return notCorrected, corrected, nil
}

func loadReviewSheet(f *excelize.File, sheet string, hasCorrection bool) ([]ReviewRow, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %v", sheet, err)
	}

	// Column layout shifts by one on the Corrected sheet, which carries the
	// recorded correction between the word and the row reference.
	rowCol, suggestionCol := 2, 4
	if hasCorrection {
		rowCol, suggestionCol = 3, 5
	}

	var review []ReviewRow
	for i := 1; i < len(rows); i++ { // skip header row
		word := cellAt(rows[i], 1)
		if word == "" {
			continue
		}

		rowRef, err := strconv.Atoi(strings.TrimSpace(cellAt(rows[i], rowCol)))
		if err != nil {
			return nil, fmt.Errorf("error parsing row reference on sheet %q line %d: %v", sheet, i+1, err)
		}

		r := ReviewRow{
			Action: cellAt(rows[i], 0),
			Word:   word,
			Row:    rowRef,
		}
		if hasCorrection {
			r.Correction = cellAt(rows[i], 2)
		}
		for j := suggestionCol; j < len(rows[i]); j++ {
			if suggestion := cellAt(rows[i], j); suggestion != "" {
				r.Suggestions = append(r.Suggestions, suggestion)
			}
		}
		review = append(review, r)
	}
	return review, nil
}
