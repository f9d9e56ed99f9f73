// Package normalize provides the primitive coercions applied to every raw
// scalar read from a bureau report: numeric coercion, string trimming and
// the bureau date reformatting with its sentinel values.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// CoerceString converts any raw node value to a trimmed string.
// Nil and empty input yield "".
func CoerceString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", s))
	}
}

// CoerceNumber converts any raw node value to a float64. Everything except
// digits, '.' and '-' is stripped before parsing, so "1,234.50 INR" parses
// as 1234.50. Missing, empty or unparseable input yields 0, never NaN.
func CoerceNumber(v interface{}) float64 {
	s := CoerceString(v)
	if s == "" {
		return 0
	}
	stripped := nonNumeric.ReplaceAllString(s, "")
	n, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatReportDate reformats a bureau date from YYYYMMDD to DD/MM/YYYY.
// Anything that is not exactly 8 characters is returned unchanged so a
// suspicious value stays visible instead of being blanked. The bureau's
// sentinel patterns for "unknown" (year 0001, month 00, day 00) yield "".
func FormatReportDate(v interface{}) string {
	s := CoerceString(v)
	if s == "" {
		return ""
	}
	if len(s) != 8 {
		return s
	}

	year := s[0:4]
	month := s[4:6]
	day := s[6:8]

	if year == "0001" || month == "00" || day == "00" {
		return ""
	}

	return day + "/" + month + "/" + year
}
