package placement

import (
	"testing"
	"time"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

func strp(s string) *string { return &s }

func company(name string, roles ...string) model.Company {
	return model.Company{Name: name, Roles: roles, Status: model.StatusUpcoming}
}

func names(list []model.Company) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Name
	}
	return out
}

func sameOrder(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	acme := company("Acme", "SDE")
	globex := company("Globex", "Analyst")
	globex.Status = model.StatusOngoing
	all := []model.Company{acme, globex}

	if got := Filter(all, "sde", "all"); !sameOrder(names(got), "Acme") {
		t.Fatalf("role search: got %v", names(got))
	}
	if got := Filter(all, "GLOB", "all"); !sameOrder(names(got), "Globex") {
		t.Fatalf("name search is case-insensitive: got %v", names(got))
	}
	// status filter matches the stored status, not the derived one
	if got := Filter(all, "", "ongoing"); !sameOrder(names(got), "Globex") {
		t.Fatalf("status filter: got %v", names(got))
	}
	if got := Filter(all, "", "all"); len(got) != 2 {
		t.Fatalf("all passes everything: got %v", names(got))
	}
	if got := Filter(all, "sde", "ongoing"); len(got) != 0 {
		t.Fatalf("search and status are conjunctive: got %v", names(got))
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	all := []model.Company{company("Zeta"), company("Acme")}
	_ = Filter(all, "acme", "all")
	if all[0].Name != "Zeta" || all[1].Name != "Acme" {
		t.Fatal("input slice was reordered")
	}
}

func TestSortByName(t *testing.T) {
	list := []model.Company{company("Zeta"), company("Acme"), company("Mono")}

	asc := Sort(list, SortByName, SortAsc, now)
	if !sameOrder(names(asc), "Acme", "Mono", "Zeta") {
		t.Fatalf("asc: got %v", names(asc))
	}
	desc := Sort(list, SortByName, SortDesc, now)
	if !sameOrder(names(desc), "Zeta", "Mono", "Acme") {
		t.Fatalf("desc: got %v", names(desc))
	}
	if !sameOrder(names(list), "Zeta", "Acme", "Mono") {
		t.Fatal("input slice was mutated")
	}
}

func TestSortByDeadlineAbsentFirst(t *testing.T) {
	early := company("Early")
	early.RegistrationDeadline = ts(-48 * time.Hour)
	late := company("Late")
	late.RegistrationDeadline = ts(48 * time.Hour)
	unset := company("Unset")

	asc := Sort([]model.Company{late, unset, early}, SortByRegistrationDeadline, SortAsc, now)
	if !sameOrder(names(asc), "Unset", "Early", "Late") {
		t.Fatalf("asc, absent as epoch first: got %v", names(asc))
	}
	desc := Sort([]model.Company{late, unset, early}, SortByRegistrationDeadline, SortDesc, now)
	if !sameOrder(names(desc), "Late", "Early", "Unset") {
		t.Fatalf("desc, absent last: got %v", names(desc))
	}
}

func TestParseCTC(t *testing.T) {
	cases := []struct {
		in   *string
		want float64
	}{
		{strp("12 LPA"), 12},
		{strp("Base: 8L, Bonus: 2L"), 8},
		{strp("10,50,000 INR"), 1050000},
		{strp("around 7.5 lakh"), 7.5},
		{strp("competitive"), 0},
		{strp(""), 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := ParseCTC(tc.in); got != tc.want {
			in := "<nil>"
			if tc.in != nil {
				in = *tc.in
			}
			t.Fatalf("%q: want %v got %v", in, tc.want, got)
		}
	}
}

func TestSortByCTC(t *testing.T) {
	rich := company("Rich")
	rich.OfferedCTC = strp("24 LPA")
	mid := company("Mid")
	mid.OfferedCTC = strp("Base: 8L, Bonus: 2L")
	poor := company("Poor")

	desc := Sort([]model.Company{mid, poor, rich}, SortByCTC, SortDesc, now)
	if !sameOrder(names(desc), "Rich", "Mid", "Poor") {
		t.Fatalf("desc: got %v", names(desc))
	}
	asc := Sort([]model.Company{mid, poor, rich}, SortByCTC, SortAsc, now)
	if !sameOrder(names(asc), "Poor", "Mid", "Rich") {
		t.Fatalf("asc: got %v", names(asc))
	}
}

func TestSortByStatus(t *testing.T) {
	done := company("InterviewsDone")
	done.InterviewDateTime = ts(-time.Hour)

	regDone := company("RegDone")
	regDone.RegistrationDeadline = ts(-time.Hour)

	regPending := company("RegPending")
	regPending.RegistrationDeadline = ts(time.Hour)

	ongoing := company("Ongoing")
	ongoing.OADateTime = ts(time.Hour)
	// a passed deadline alone must not demote a drive with events ahead
	ongoing.RegistrationDeadline = ts(-time.Hour)

	cancelled := company("Cancelled")
	cancelled.Status = model.StatusCancelled

	bare := company("Bare")

	list := []model.Company{bare, cancelled, regPending, ongoing, done, regDone}

	desc := Sort(list, SortByStatus, SortDesc, now)
	if !sameOrder(names(desc), "InterviewsDone", "RegDone", "RegPending", "Ongoing", "Bare", "Cancelled") {
		t.Fatalf("desc: got %v", names(desc))
	}

	asc := Sort(list, SortByStatus, SortAsc, now)
	if !sameOrder(names(asc), "Cancelled", "Bare", "Ongoing", "RegPending", "RegDone", "InterviewsDone") {
		t.Fatalf("asc: got %v", names(asc))
	}
}

func TestSortByStatusRegistrationTieBreak(t *testing.T) {
	// both drives have no status-qualifying milestones and stored upcoming;
	// the one whose deadline already passed ranks first
	passed := company("Passed")
	passed.RegistrationDeadline = ts(-time.Hour)
	open := company("Open")
	open.RegistrationDeadline = ts(time.Hour)

	got := Sort([]model.Company{open, passed}, SortByStatus, SortDesc, now)
	if !sameOrder(names(got), "Passed", "Open") {
		t.Fatalf("got %v", names(got))
	}
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	list := []model.Company{company("B"), company("A")}
	got := Sort(list, SortKey("visits"), SortDesc, now)
	if !sameOrder(names(got), "B", "A") {
		t.Fatalf("got %v", names(got))
	}
}
