package placement

import (
	"testing"
	"time"
)

func TestFormatInput(t *testing.T) {
	if got := FormatInput(nil); got != "" {
		t.Fatalf("absent instant: want empty got %q", got)
	}

	// 04:00 UTC is 09:30 IST
	utc := time.Date(2026, 1, 15, 4, 0, 0, 0, time.UTC)
	if got := FormatInput(&utc); got != "2026-01-15T09:30" {
		t.Fatalf("want 2026-01-15T09:30 got %q", got)
	}
}

func TestParseInput(t *testing.T) {
	if got := ParseInput(""); got != nil {
		t.Fatalf("empty string: want absent got %v", got)
	}
	if got := ParseInput("yesterday at noon"); got != nil {
		t.Fatalf("garbage input: want absent got %v", got)
	}

	got := ParseInput("2026-01-15T09:30")
	if got == nil {
		t.Fatal("want instant got absent")
	}
	if got.Second() != 0 || got.Nanosecond() != 0 {
		t.Fatalf("seconds not normalized: %v", got)
	}
	_, offset := got.Zone()
	if offset != 5*3600+30*60 {
		t.Fatalf("offset not fixed at +05:30: %d", offset)
	}
	if !got.Equal(time.Date(2026, 1, 15, 4, 0, 0, 0, time.UTC)) {
		t.Fatalf("wrong instant: %v", got)
	}
}

// Round trip holds exactly for any instant with zero seconds.
func TestInputRoundTrip(t *testing.T) {
	cases := []time.Time{
		time.Date(2026, 1, 15, 9, 30, 0, 0, IST),
		time.Date(2025, 12, 31, 23, 59, 0, 0, IST),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, want := range cases {
		got := ParseInput(FormatInput(&want))
		if got == nil || !got.Equal(want) {
			t.Fatalf("round trip broke for %v: got %v", want, got)
		}
	}

	// seconds are deliberately not preserved
	withSeconds := time.Date(2026, 1, 15, 9, 30, 45, 0, IST)
	got := ParseInput(FormatInput(&withSeconds))
	if got == nil || !got.Equal(time.Date(2026, 1, 15, 9, 30, 0, 0, IST)) {
		t.Fatalf("seconds should truncate to :00, got %v", got)
	}
}

func TestFormatHuman(t *testing.T) {
	if got := FormatHuman(nil); got != "Not scheduled" {
		t.Fatalf(`want "Not scheduled" got %q`, got)
	}

	morning := time.Date(2026, 1, 15, 9, 30, 0, 0, IST)
	if got := FormatHuman(&morning); got != "Jan 15, 2026, 9:30 AM" {
		t.Fatalf("got %q", got)
	}

	// 10:00 UTC is 15:30 IST
	afternoon := time.Date(2026, 11, 3, 10, 0, 0, 0, time.UTC)
	if got := FormatHuman(&afternoon); got != "Nov 3, 2026, 3:30 PM" {
		t.Fatalf("got %q", got)
	}
}

func TestDateRoundTrip(t *testing.T) {
	if got := FormatDate(nil); got != "" {
		t.Fatalf("absent date: want empty got %q", got)
	}
	if got := ParseDate(""); got != nil {
		t.Fatalf("empty date: want absent got %v", got)
	}
	d := ParseDate("2026-02-01")
	if d == nil || FormatDate(d) != "2026-02-01" {
		t.Fatalf("round trip broke: %v", d)
	}
}
