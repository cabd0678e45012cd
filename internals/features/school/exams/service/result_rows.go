// file: internals/features/school/exams/service/result_rows.go
package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	examModel "schoolku_backend/internals/features/school/exams/model"
	"schoolku_backend/internals/helpers/spreadsheet"
)

/* ===============================
   Exam-result upload adapter (positional layout)

   Result sheets are a fixed template, so fields resolve by column
   index, not header text:

     0  roll number
     1  student name
     2  subject 1 marks
     3  subject 2 marks
     4  subject 3 marks
     5  subject 4 marks

   The template carries one or two leading label rows; they are detected
   by marker strings ("roll"/"name") or by an all-zero numeric shape and
   skipped.
=================================*/

const (
	colRoll  = 0
	colName  = 1
	colMarks = 2 // first of up to four subject columns
)

// MaxSubjects is the widest result layout the template supports.
const MaxSubjects = 4

// ResultRow is the validated intermediate record for one result line.
type ResultRow struct {
	Roll       int
	Name       string
	Marks      [MaxSubjects]float64
	Total      float64
	Percentage float64
}

// Percentage computes total/maxTotal*100 rounded to two decimals.
// A zero (or negative) denominator yields 0, never an error.
func Percentage(total, maxTotal float64) float64 {
	if maxTotal <= 0 {
		return 0
	}
	return math.Round(total/maxTotal*100*100) / 100
}

// isLabelRow reports whether a leading row is template furniture rather
// than data: marker strings in the roll/name slots, or a fully zero
// numeric shape where even the roll parses to 0.
func isLabelRow(row []string) bool {
	roll := strings.ToLower(spreadsheet.Cell(row, colRoll))
	name := strings.ToLower(spreadsheet.Cell(row, colName))
	if strings.Contains(roll, "roll") || strings.Contains(name, "name") || strings.Contains(roll, "name") {
		return true
	}

	if n, err := strconv.Atoi(roll); err == nil && n == 0 {
		allZero := true
		for i := 0; i < MaxSubjects; i++ {
			v, err := strconv.ParseFloat(spreadsheet.Cell(row, colMarks+i), 64)
			if err == nil && v != 0 {
				allZero = false
				break
			}
		}
		return allZero
	}
	return false
}

// AdaptResultRows maps a fixed-layout sheet to result rows. subjects is
// the number of scored columns (1..4); maxTotal the declared maximum
// across them. Row errors carry the original 1-based numbers.
func AdaptResultRows(rows [][]string, subjects int, maxTotal float64) ([]ResultRow, []spreadsheet.RowError) {
	if subjects < 1 {
		subjects = 1
	}
	if subjects > MaxSubjects {
		subjects = MaxSubjects
	}

	// At most the first two rows may be header/label rows.
	start := 0
	for start < len(rows) && start < 2 && isLabelRow(rows[start]) {
		start++
	}

	var (
		out     []ResultRow
		dropped []spreadsheet.RowError
	)

	for i := start; i < len(rows); i++ {
		rowNum := i + 1
		row := rows[i]

		rollStr := spreadsheet.Cell(row, colRoll)
		roll, err := strconv.Atoi(rollStr)
		if err != nil || roll < 1 {
			dropped = append(dropped, spreadsheet.RowError{Row: rowNum, Reason: fmt.Sprintf("roll number %q is not a positive integer", rollStr)})
			continue
		}

		name := spreadsheet.Cell(row, colName)
		if name == "" {
			dropped = append(dropped, spreadsheet.RowError{Row: rowNum, Reason: "student name is empty"})
			continue
		}

		r := ResultRow{Roll: roll, Name: name}
		bad := false
		for s := 0; s < subjects; s++ {
			cell := spreadsheet.Cell(row, colMarks+s)
			if cell == "" {
				cell = "0" // absent subject cell counts as zero marks
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				dropped = append(dropped, spreadsheet.RowError{Row: rowNum, Reason: fmt.Sprintf("subject %d marks %q is not numeric", s+1, cell)})
				bad = true
				break
			}
			r.Marks[s] = v
			r.Total += v
		}
		if bad {
			continue
		}

		r.Percentage = Percentage(r.Total, maxTotal)
		out = append(out, r)
	}

	return out, dropped
}

// ToModel converts an adapted row into a store row for one exam. Rank
// fields start as placeholders until the recalculation procedures run.
func (r ResultRow) ToModel(examID uuid.UUID, schoolCode, class, section string) examModel.ExamResultModel {
	return examModel.ExamResultModel{
		ResultExamID:         examID,
		ResultSchoolCode:     schoolCode,
		ResultRoll:           r.Roll,
		ResultStudentName:    r.Name,
		ResultClass:          class,
		ResultSection:        section,
		ResultMarks1:         r.Marks[0],
		ResultMarks2:         r.Marks[1],
		ResultMarks3:         r.Marks[2],
		ResultMarks4:         r.Marks[3],
		ResultTotal:          r.Total,
		ResultPercentage:     r.Percentage,
		ResultClassRank:      examModel.RankPlaceholder,
		ResultSchoolRank:     examModel.RankPlaceholder,
		ResultAllSchoolsRank: examModel.RankPlaceholder,
	}
}
