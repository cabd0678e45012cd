package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRowsCSV(t *testing.T) {
	in := strings.NewReader("\ufeffSchool Name,State,School Number\nABC Public School,Telangana,7\nXYZ School,Kerala,12\n")
	rows, err := Rows(in, "schools.csv")
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "School Name" {
		t.Fatalf("BOM not stripped from header: %q", rows[0][0])
	}
	if rows[2][1] != "Kerala" {
		t.Fatalf("unexpected cell: %q", rows[2][1])
	}
}

func TestRowsCSVRagged(t *testing.T) {
	in := strings.NewReader("a,b,c\n1,2\n3,4,5,6\n")
	rows, err := Rows(in, "data.CSV")
	if err != nil {
		t.Fatalf("ragged csv must not error: %v", err)
	}
	if len(rows[1]) != 2 || len(rows[2]) != 4 {
		t.Fatalf("row lengths not preserved: %v", rows)
	}
}

func TestRowsXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	_ = f.SetSheetRow(sheet, "A1", &[]any{"Roll No", "Name"})
	_ = f.SetSheetRow(sheet, "A2", &[]any{1, "Anil"})
	_ = f.SetSheetRow(sheet, "A3", &[]any{2, "Bhavya"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("build fixture: %v", err)
	}

	rows, err := Rows(&buf, "students.xlsx")
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rows))
	}
	if rows[1][0] != "1" || rows[2][1] != "Bhavya" {
		t.Fatalf("unexpected cells: %v", rows)
	}
}

func TestRowsUnreadable(t *testing.T) {
	if _, err := Rows(strings.NewReader("not an xlsx"), "garbage.xlsx"); err == nil {
		t.Fatal("expected error for unreadable xlsx")
	}
}

func TestHeaderIndexLookup(t *testing.T) {
	idx := BuildHeaderIndex([]string{" School Name ", "STATE", "SCHOOL_NUMBER", ""})

	if i, ok := idx.Lookup("schoolname"); !ok || i != 0 {
		t.Fatalf("schoolname: got (%d,%v)", i, ok)
	}
	if i, ok := idx.Lookup("School Number", "school no"); !ok || i != 2 {
		t.Fatalf("school number: got (%d,%v)", i, ok)
	}
	if _, ok := idx.Lookup("district"); ok {
		t.Fatal("district should not resolve")
	}
}

func TestCellBounds(t *testing.T) {
	row := []string{"a", " b "}
	if Cell(row, 1) != "b" {
		t.Fatalf("trim failed: %q", Cell(row, 1))
	}
	if Cell(row, 5) != "" || Cell(row, -1) != "" {
		t.Fatal("out-of-range cells must be empty")
	}
}
