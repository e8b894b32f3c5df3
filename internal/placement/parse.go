package placement

import (
	"strconv"
	"strings"
)

// Best-effort form-field parsers. They report success explicitly instead of
// returning an error so lenient callers can drop a bad field to absent while
// strict callers can still branch on ok.

func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
