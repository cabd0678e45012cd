package service

import (
	"testing"

	"github.com/google/uuid"
)

func TestPercentage(t *testing.T) {
	if got := Percentage(180, 200); got != 90.00 {
		t.Fatalf("180/200: got %v, want 90.00", got)
	}
	if got := Percentage(100, 0); got != 0 {
		t.Fatalf("zero denominator: got %v, want 0", got)
	}
	if got := Percentage(1, 3); got != 33.33 {
		t.Fatalf("rounding: got %v, want 33.33", got)
	}
	if got := Percentage(2, 3); got != 66.67 {
		t.Fatalf("rounding up: got %v, want 66.67", got)
	}
}

func TestAdaptResultRowsSkipsLabelRows(t *testing.T) {
	rows := [][]string{
		{"Roll No", "Student Name", "Maths", "Physics", "Chemistry", "Biology"},
		{"0", "", "0", "0", "0", "0"}, // all-zero marker row
		{"1", "Anil", "45", "40", "48", "47"},
		{"2", "Bhavya", "50", "50", "50", "50"},
	}

	out, dropped := AdaptResultRows(rows, 4, 200)
	if len(dropped) != 0 {
		t.Fatalf("unexpected drops: %v", dropped)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 rows, got %d", len(out))
	}
	if out[0].Total != 180 || out[0].Percentage != 90.00 {
		t.Fatalf("row 1 totals wrong: %+v", out[0])
	}
	if out[1].Total != 200 || out[1].Percentage != 100.00 {
		t.Fatalf("row 2 totals wrong: %+v", out[1])
	}
}

func TestAdaptResultRowsNoHeader(t *testing.T) {
	// first data row must survive when the sheet has no label rows
	rows := [][]string{
		{"1", "Anil", "45", "40"},
	}
	out, dropped := AdaptResultRows(rows, 2, 100)
	if len(out) != 1 || len(dropped) != 0 {
		t.Fatalf("data row eaten by header heuristic: out=%v dropped=%v", out, dropped)
	}
	if out[0].Total != 85 || out[0].Percentage != 85.00 {
		t.Fatalf("unexpected row: %+v", out[0])
	}
}

func TestAdaptResultRowsRowErrors(t *testing.T) {
	rows := [][]string{
		{"Roll", "Name", "S1", "S2"},
		{"1", "Anil", "45", "40"},
		{"abc", "Bad Roll", "10", "10"},
		{"3", "", "10", "10"},
		{"4", "Bad Marks", "ten", "10"},
		{"5", "Divya", "50", ""},
	}

	out, dropped := AdaptResultRows(rows, 2, 100)
	if len(out) != 2 {
		t.Fatalf("want 2 accepted, got %d: %+v", len(out), out)
	}
	if len(dropped) != 3 {
		t.Fatalf("want 3 dropped, got %d: %v", len(dropped), dropped)
	}
	wantRows := []int{3, 4, 5}
	for i, d := range dropped {
		if d.Row != wantRows[i] {
			t.Fatalf("dropped[%d].Row = %d, want %d", i, d.Row, wantRows[i])
		}
	}
	// empty subject cell counts as zero, row still accepted
	if out[1].Roll != 5 || out[1].Total != 50 {
		t.Fatalf("empty-cell row mishandled: %+v", out[1])
	}
}

func TestResultRowToModel(t *testing.T) {
	r := ResultRow{Roll: 7, Name: "Kiran", Marks: [4]float64{40, 45, 0, 0}, Total: 85, Percentage: 85}
	m := r.ToModel(uuid.Nil, "TS2507", "10", "A")
	if m.ResultClassRank != "-" || m.ResultSchoolRank != "-" || m.ResultAllSchoolsRank != "-" {
		t.Fatalf("rank fields must start as placeholders: %+v", m)
	}
	if m.ResultTotal != 85 || m.ResultMarks2 != 45 {
		t.Fatalf("marks not carried: %+v", m)
	}
}
