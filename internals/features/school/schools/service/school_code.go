// file: internals/features/school/schools/service/school_code.go
package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/* ===============================
   School code deriver

   A school's natural key is ABBR + YY + NN:
     ABBR  2-letter state abbreviation
     YY    last two digits of the academic-year start
     NN    zero-padded sequence number 01..99
   e.g. ("Telangana", "2025-2026", "7") -> "TS2507".

   Pure and deterministic; the single-create handler and the bulk
   upload path share this exact function.
=================================*/

// StateTable maps state/union-territory names to abbreviations.
// Injected so tests (or another locale) can swap the table out.
type StateTable map[string]string

// DefaultStateTable covers the Indian states and union territories.
func DefaultStateTable() StateTable {
	return StateTable{
		"andhra pradesh":    "AP",
		"arunachal pradesh": "AR",
		"assam":             "AS",
		"bihar":             "BR",
		"chhattisgarh":      "CG",
		"goa":               "GA",
		"gujarat":           "GJ",
		"haryana":           "HR",
		"himachal pradesh":  "HP",
		"jharkhand":         "JH",
		"karnataka":         "KA",
		"kerala":            "KL",
		"madhya pradesh":    "MP",
		"maharashtra":       "MH",
		"manipur":           "MN",
		"meghalaya":         "ML",
		"mizoram":           "MZ",
		"nagaland":          "NL",
		"odisha":            "OD",
		"punjab":            "PB",
		"rajasthan":         "RJ",
		"sikkim":            "SK",
		"tamil nadu":        "TN",
		"telangana":         "TS",
		"tripura":           "TR",
		"uttar pradesh":     "UP",
		"uttarakhand":       "UK",
		"west bengal":       "WB",

		"andaman and nicobar islands": "AN",
		"chandigarh":                  "CH",
		"dadra and nagar haveli and daman and diu": "DD",
		"delhi":             "DL",
		"jammu and kashmir": "JK",
		"ladakh":            "LA",
		"lakshadweep":       "LD",
		"puducherry":        "PY",
	}
}

var (
	academicYearRe = regexp.MustCompile(`^\s*(\d{4})\s*-\s*\d{4}\s*$`)
	nonDigitRe     = regexp.MustCompile(`\D`)
)

// DeriveSchoolCode composes the canonical school code or reports why the
// input is invalid.
func DeriveSchoolCode(states StateTable, state, academicYear, schoolNumber string) (string, error) {
	abbr, ok := states[strings.ToLower(strings.TrimSpace(state))]
	if !ok {
		return "", fmt.Errorf("unknown state %q", strings.TrimSpace(state))
	}

	m := academicYearRe.FindStringSubmatch(academicYear)
	if m == nil {
		return "", fmt.Errorf("academic year %q is not in YYYY-YYYY format", strings.TrimSpace(academicYear))
	}
	yy := m[1][2:]

	// Strip non-digits, keep the first two digits. "123" becomes "12",
	// truncation is the documented behavior, not an error.
	digits := nonDigitRe.ReplaceAllString(schoolNumber, "")
	if digits == "" {
		return "", fmt.Errorf("school number %q has no digits", strings.TrimSpace(schoolNumber))
	}
	if len(digits) > 2 {
		digits = digits[:2]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", fmt.Errorf("school number %q is not numeric", strings.TrimSpace(schoolNumber))
	}
	if n < 1 || n > 99 {
		return "", fmt.Errorf("school number must be between 1 and 99, got %d", n)
	}

	return fmt.Sprintf("%s%s%02d", abbr, yy, n), nil
}
