package service

import "testing"

func TestAdaptStudentRows(t *testing.T) {
	rows := [][]string{
		{"Roll No", "Student Name", "Gender", "Guardian Phone"},
		{"1", "Anil Kumar", "M", "9876500001"},
		{"", "No Roll", "F", ""},
		{"3", "", "M", ""},
		{"x7", "Bad Roll", "F", ""},
		{"5", "Divya", "", "9876500005"},
	}

	out, dropped, err := AdaptStudentRows(rows, "6", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// N=5 data rows, M=3 invalid -> exactly N-M accepted and M errors
	if len(out) != 2 {
		t.Fatalf("want 2 accepted rows, got %d", len(out))
	}
	if len(dropped) != 3 {
		t.Fatalf("want 3 dropped rows, got %d: %v", len(dropped), dropped)
	}

	// errors cite the original 1-based row numbers
	wantRows := []int{3, 4, 5}
	for i, d := range dropped {
		if d.Row != wantRows[i] {
			t.Fatalf("dropped[%d].Row = %d, want %d", i, d.Row, wantRows[i])
		}
		if d.Reason == "" {
			t.Fatalf("dropped[%d] has no reason", i)
		}
	}

	if out[0].Roll != 1 || out[0].Name != "Anil Kumar" || out[0].Class != "6" || out[0].Section != "A" {
		t.Fatalf("unexpected first row: %+v", out[0])
	}
	if out[1].Roll != 5 || out[1].GuardianPhone != "9876500005" {
		t.Fatalf("unexpected second row: %+v", out[1])
	}
}

func TestAdaptStudentRowsHeaderSynonyms(t *testing.T) {
	rows := [][]string{
		{"ROLL_NUMBER", "NAME", "CLASS", "SEC"},
		{"12", "Farah", "8", "B"},
	}
	out, dropped, err := AdaptStudentRows(rows, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dropped) != 0 || len(out) != 1 {
		t.Fatalf("unexpected outcome: out=%v dropped=%v", out, dropped)
	}
	// sheet columns override the (empty) contextual defaults
	if out[0].Class != "8" || out[0].Section != "B" {
		t.Fatalf("class/section not taken from sheet: %+v", out[0])
	}
}

func TestAdaptStudentRowsMissingColumn(t *testing.T) {
	rows := [][]string{
		{"Student Name", "Gender"},
		{"Anil", "M"},
	}
	if _, _, err := AdaptStudentRows(rows, "6", "A"); err == nil {
		t.Fatal("expected file-level error for missing roll column")
	}
}

func TestStudentRowToModel(t *testing.T) {
	m := StudentRow{Roll: 4, Name: "Kiran", Class: "7", Section: "C", Gender: "F"}.ToModel("TS2507")
	if m.StudentSchoolCode != "TS2507" || m.StudentRoll != 4 {
		t.Fatalf("unexpected model: %+v", m)
	}
	if m.StudentGender == nil || *m.StudentGender != "F" {
		t.Fatal("gender not carried")
	}
	if m.StudentGuardianPhone != nil {
		t.Fatal("empty guardian phone must stay nil")
	}
}
