// file: internals/features/school/students/service/import_rows.go
package service

import (
	"fmt"
	"strconv"

	studentModel "schoolku_backend/internals/features/school/students/model"
	"schoolku_backend/internals/helpers/spreadsheet"
)

/* ===============================
   Student upload adapter (header-keyed)

   Resolves fields by case-insensitive, trimmed header-synonym matching.
   Bad rows are dropped with a 1-based row number and a reason; only a
   missing required column is a file-level error.
=================================*/

// StudentRow is the validated intermediate record for one upload line.
type StudentRow struct {
	Roll          int
	Name          string
	Class         string
	Section       string
	Gender        string
	GuardianPhone string
}

// AdaptStudentRows maps a header-keyed sheet to student rows. Class and
// section fall back to the upload's contextual parameters when the sheet
// has no such columns.
func AdaptStudentRows(rows [][]string, defaultClass, defaultSection string) ([]StudentRow, []spreadsheet.RowError, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet is empty")
	}

	hdr := spreadsheet.BuildHeaderIndex(rows[0])

	rollIdx, ok := hdr.Lookup("roll no", "roll number", "roll", "rollno")
	if !ok {
		return nil, nil, fmt.Errorf("missing required column: roll number")
	}
	nameIdx, ok := hdr.Lookup("student name", "name")
	if !ok {
		return nil, nil, fmt.Errorf("missing required column: student name")
	}
	classIdx, hasClass := hdr.Lookup("class", "grade")
	sectionIdx, hasSection := hdr.Lookup("section", "sec")
	genderIdx, hasGender := hdr.Lookup("gender", "sex")
	guardianIdx, hasGuardian := hdr.Lookup("guardian phone", "guardian contact", "parent contact", "parent phone")

	var (
		out     []StudentRow
		dropped []spreadsheet.RowError
	)

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, header is row 1

		name := spreadsheet.Cell(row, nameIdx)
		if name == "" {
			dropped = append(dropped, spreadsheet.RowError{Row: rowNum, Reason: "student name is empty"})
			continue
		}

		rollStr := spreadsheet.Cell(row, rollIdx)
		roll, err := strconv.Atoi(rollStr)
		if err != nil || roll < 1 {
			dropped = append(dropped, spreadsheet.RowError{Row: rowNum, Reason: fmt.Sprintf("roll number %q is not a positive integer", rollStr)})
			continue
		}

		r := StudentRow{
			Roll:    roll,
			Name:    name,
			Class:   defaultClass,
			Section: defaultSection,
		}
		if hasClass {
			if v := spreadsheet.Cell(row, classIdx); v != "" {
				r.Class = v
			}
		}
		if hasSection {
			if v := spreadsheet.Cell(row, sectionIdx); v != "" {
				r.Section = v
			}
		}
		if r.Class == "" || r.Section == "" {
			dropped = append(dropped, spreadsheet.RowError{Row: rowNum, Reason: "class/section missing and no default provided"})
			continue
		}
		if hasGender {
			r.Gender = spreadsheet.Cell(row, genderIdx)
		}
		if hasGuardian {
			r.GuardianPhone = spreadsheet.Cell(row, guardianIdx)
		}

		out = append(out, r)
	}

	return out, dropped, nil
}

// ToModel converts an adapted row into a store row for schoolCode.
func (r StudentRow) ToModel(schoolCode string) studentModel.StudentModel {
	m := studentModel.StudentModel{
		StudentSchoolCode: schoolCode,
		StudentRoll:       r.Roll,
		StudentName:       r.Name,
		StudentClass:      r.Class,
		StudentSection:    r.Section,
	}
	if r.Gender != "" {
		g := r.Gender
		m.StudentGender = &g
	}
	if r.GuardianPhone != "" {
		p := r.GuardianPhone
		m.StudentGuardianPhone = &p
	}
	return m
}
