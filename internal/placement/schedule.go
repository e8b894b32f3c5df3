package placement

import "time"

// IST is the single display timezone. Stored instants carry whatever zone the
// store gave them; everything user-facing renders at UTC+05:30.
var IST = time.FixedZone("IST", 5*3600+30*60)

const (
	inputLayout = "2006-01-02T15:04"
	dateLayout  = "2006-01-02"
	humanLayout = "Jan 2, 2006, 3:04 PM"
)

// FormatInput renders an instant the way a datetime-local control expects it:
// YYYY-MM-DDTHH:mm in IST. Absent instants render as the empty string.
func FormatInput(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(IST).Format(inputLayout)
}

// ParseInput is the persistence direction: a datetime-local value read as IST
// wall-clock time. Seconds come back normalized to :00 and the +05:30 offset
// is fixed, not computed. Empty or unparsable input degrades to absent.
func ParseInput(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(inputLayout, s, IST)
	if err != nil {
		return nil
	}
	return &t
}

// FormatDate and ParseDate are the date-only pair used for visit dates.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.In(IST).Format(dateLayout)
}

func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, IST)
	if err != nil {
		return nil
	}
	return &t
}

// FormatHuman renders an instant for display, e.g. "Jan 15, 2026, 9:30 AM".
func FormatHuman(t *time.Time) string {
	if t == nil {
		return "Not scheduled"
	}
	return t.In(IST).Format(humanLayout)
}
