package placement

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

type SortKey string

const (
	SortByName                 SortKey = "name"
	SortByStatus               SortKey = "status"
	SortByRegistrationDeadline SortKey = "registration_deadline"
	SortByCTC                  SortKey = "ctc"
	SortByOA                   SortKey = "oa"
	SortByInterview            SortKey = "interview"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Filter keeps companies matching the search text (against name or any role,
// case-insensitive substring) and the status filter (compared against the
// stored status, not the derived one). "all" or empty passes every status.
func Filter(companies []model.Company, search, status string) []model.Company {
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]model.Company, 0, len(companies))
	for _, c := range companies {
		if !matchesSearch(c, q) {
			continue
		}
		if status != "" && status != "all" && !strings.EqualFold(string(c.Status), status) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesSearch(c model.Company, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	for _, role := range c.Roles {
		if strings.Contains(strings.ToLower(role), q) {
			return true
		}
	}
	return false
}

// Sort returns a freshly ordered slice; the input is never mutated. The
// direction toggle applies to every key. Desc is each key's "front page"
// order: Z→A names, latest dates first, richest CTC first, furthest-along
// status first. Absent instants count as the epoch, so they lead ascending
// order and trail descending.
func Sort(companies []model.Company, key SortKey, dir SortDir, now time.Time) []model.Company {
	out := make([]model.Company, len(companies))
	copy(out, companies)

	if key == SortByStatus {
		sortByStatus(out, dir, now)
		return out
	}

	var cmp func(a, b model.Company) int
	switch key {
	case SortByName:
		cmp = func(a, b model.Company) int { return strings.Compare(a.Name, b.Name) }
	case SortByRegistrationDeadline:
		cmp = func(a, b model.Company) int {
			return compareInstants(a.RegistrationDeadline, b.RegistrationDeadline)
		}
	case SortByOA:
		cmp = func(a, b model.Company) int { return compareInstants(a.OADateTime, b.OADateTime) }
	case SortByInterview:
		cmp = func(a, b model.Company) int {
			return compareInstants(a.InterviewDateTime, b.InterviewDateTime)
		}
	case SortByCTC:
		cmp = func(a, b model.Company) int {
			av, bv := ParseCTC(a.OfferedCTC), ParseCTC(b.OfferedCTC)
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareInstants(a, b *time.Time) int {
	at, bt := instantMillis(a), instantMillis(b)
	switch {
	case at < bt:
		return -1
	case at > bt:
		return 1
	}
	return 0
}

// absent milestones collapse to the epoch
func instantMillis(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}

var ctcNumber = regexp.MustCompile(`[\d,.]+`)

// ParseCTC pulls a comparable number out of a free-text package string by
// taking the first run of digits, commas and dots: "12 LPA" -> 12,
// "Base: 8L, Bonus: 2L" -> 8. Absent or unparsable text counts as 0.
func ParseCTC(s *string) float64 {
	if s == nil {
		return 0
	}
	m := ctcNumber.FindString(*s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// statusPriority is the fixed ranking used by the status sort, furthest-along
// first. Derived "upcoming" with a deadline is split into registration_done /
// registration_pending before ranking.
var statusPriority = []string{
	"completed",
	"interviews_done",
	"oa_done",
	"ppt_done",
	"registration_done",
	"registration_pending",
	"ongoing",
	"upcoming",
	"cancelled",
}

func statusRank(c model.Company, now time.Time) int {
	key := string(DeriveCompanyStatus(c, now))
	if key == string(model.StatusUpcoming) && c.RegistrationDeadline != nil {
		if now.After(*c.RegistrationDeadline) {
			key = "registration_done"
		} else {
			key = "registration_pending"
		}
	}
	for i, s := range statusPriority {
		if s == key {
			return i
		}
	}
	return -1
}

func sortByStatus(out []model.Company, dir SortDir, now time.Time) {
	type ranked struct {
		c    model.Company
		rank int
	}
	rs := make([]ranked, len(out))
	for i, c := range out {
		rs[i] = ranked{c: c, rank: statusRank(c, now)}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		ri, rj := rs[i].rank, rs[j].rank
		// unranked entries trail in both directions, tied among themselves
		if ri == -1 {
			return false
		}
		if rj == -1 {
			return true
		}
		if dir == SortAsc {
			return ri > rj
		}
		return ri < rj
	})
	for i, r := range rs {
		out[i] = r.c
	}
}
