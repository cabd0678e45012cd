package service

import (
	"regexp"
	"testing"
)

var codeShape = regexp.MustCompile(`^[A-Z]{2}\d{4}$`)

func TestDeriveSchoolCode(t *testing.T) {
	states := DefaultStateTable()

	cases := []struct {
		name         string
		state        string
		academicYear string
		schoolNumber string
		want         string
		wantErr      bool
	}{
		{"example from the books", "Telangana", "2025-2026", "7", "TS2507", false},
		{"sequence truncated to two digits", "Telangana", "2025-2026", "123", "TS2512", false},
		{"state lookup is case-insensitive", "  kerala ", "2024-2025", "01", "KL2401", false},
		{"non-digits stripped from sequence", "Maharashtra", "2023-2024", "No. 4-B", "MH2304", false},
		{"upper bound", "Delhi", "2025-2026", "99", "DL2599", false},
		{"unknown state", "Atlantis", "2025-2026", "7", "", true},
		{"empty year", "Telangana", "", "7", "", true},
		{"year without range", "Telangana", "2025", "7", "", true},
		{"sequence zero", "Telangana", "2025-2026", "0", "", true},
		{"sequence with no digits", "Telangana", "2025-2026", "abc", "", true},
		{"empty sequence", "Telangana", "2025-2026", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DeriveSchoolCode(states, tc.state, tc.academicYear, tc.schoolNumber)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
			if !codeShape.MatchString(got) {
				t.Fatalf("code %q does not match ^[A-Z]{2}\\d{4}$", got)
			}
		})
	}
}

func TestDeriveSchoolCodeDeterministic(t *testing.T) {
	states := DefaultStateTable()
	first, err := DeriveSchoolCode(states, "Tamil Nadu", "2025-2026", "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := DeriveSchoolCode(states, "Tamil Nadu", "2025-2026", "42")
		if err != nil || again != first {
			t.Fatalf("derivation not stable: %q vs %q (err %v)", first, again, err)
		}
	}
}

func TestDeriveSchoolCodeInjectedTable(t *testing.T) {
	custom := StateTable{"wonderland": "WL"}
	got, err := DeriveSchoolCode(custom, "Wonderland", "2030-2031", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "WL3005" {
		t.Fatalf("got %q, want WL3005", got)
	}
	if _, err := DeriveSchoolCode(custom, "Telangana", "2030-2031", "5"); err == nil {
		t.Fatal("default states must not leak into an injected table")
	}
}
