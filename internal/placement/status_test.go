package placement

import (
	"testing"
	"time"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, IST)

func ts(offset time.Duration) *time.Time {
	t := now.Add(offset)
	return &t
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name              string
		stored            model.PlacementStatus
		reg, ppt, oa, iv  *time.Time
		want              model.PlacementStatus
	}{
		{"cancelled overrides everything", model.StatusCancelled, ts(time.Hour), ts(-time.Hour), ts(-time.Hour), ts(-time.Hour), model.StatusCancelled},
		{"cancelled with no milestones", model.StatusCancelled, nil, nil, nil, nil, model.StatusCancelled},
		{"registration still open wins over passed events", model.StatusUpcoming, ts(time.Hour), ts(-2 * time.Hour), ts(-time.Hour), nil, model.StatusUpcoming},
		{"interview passed", model.StatusUpcoming, ts(-24 * time.Hour), ts(-3 * time.Hour), ts(-2 * time.Hour), ts(-time.Hour), model.StatusInterviewsDone},
		{"oa passed, interview ahead", model.StatusUpcoming, ts(-24 * time.Hour), ts(-2 * time.Hour), ts(-time.Hour), ts(time.Hour), model.StatusOADone},
		{"ppt passed, rest ahead", model.StatusUpcoming, nil, ts(-time.Hour), ts(time.Hour), ts(2 * time.Hour), model.StatusPPTDone},
		{"only future events means ongoing", model.StatusUpcoming, nil, ts(time.Hour), nil, ts(2 * time.Hour), model.StatusOngoing},
		{"nothing scheduled falls back to upcoming", model.StatusUpcoming, nil, nil, nil, nil, model.StatusUpcoming},
		{"stored completed is never derived", model.StatusCompleted, nil, nil, nil, ts(-time.Hour), model.StatusInterviewsDone},
		{"stored completed with empty schedule degrades to upcoming", model.StatusCompleted, nil, nil, nil, nil, model.StatusUpcoming},
		{"stored ongoing is ignored by derivation", model.StatusOngoing, nil, nil, ts(-time.Hour), nil, model.StatusOADone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveStatus(tc.stored, tc.reg, tc.ppt, tc.oa, tc.iv, now)
			if got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}

func TestStatusBadge(t *testing.T) {
	cases := []struct {
		status   model.PlacementStatus
		emphasis Emphasis
		label    string
	}{
		{model.StatusUpcoming, EmphasisLow, "Upcoming"},
		{model.StatusOngoing, EmphasisHigh, "Ongoing"},
		{model.StatusPPTDone, EmphasisLow, "PPT done"},
		{model.StatusOADone, EmphasisLow, "OA done"},
		{model.StatusInterviewsDone, EmphasisMedium, "Completed"},
		{model.StatusCompleted, EmphasisMedium, "Completed"},
		{model.StatusCancelled, EmphasisCritical, "Cancelled"},
	}
	for _, tc := range cases {
		b := StatusBadge(tc.status)
		if b.Emphasis != tc.emphasis || b.Label != tc.label {
			t.Fatalf("%s: want (%s, %q) got (%s, %q)", tc.status, tc.emphasis, tc.label, b.Emphasis, b.Label)
		}
	}
}

func TestStatusBadgePanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown status")
		}
	}()
	StatusBadge(model.PlacementStatus("bogus"))
}
