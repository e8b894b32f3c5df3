package placement

import (
	"fmt"
	"time"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

// DeriveStatus classifies a drive from its milestone schedule relative to an
// explicit evaluation time. First match wins:
//
//	cancelled override > registration still open > interview passed >
//	OA passed > PPT passed > any event ahead > upcoming fallback
//
// The stored status is ignored for every value except cancelled, so a stored
// "completed" only shows through when no milestone rule fires first.
func DeriveStatus(stored model.PlacementStatus, reg, ppt, oa, iv *time.Time, now time.Time) model.PlacementStatus {
	if stored == model.StatusCancelled {
		return model.StatusCancelled
	}
	if reg != nil && now.Before(*reg) {
		return model.StatusUpcoming
	}
	if iv != nil && now.After(*iv) {
		return model.StatusInterviewsDone
	}
	if oa != nil && now.After(*oa) {
		return model.StatusOADone
	}
	if ppt != nil && now.After(*ppt) {
		return model.StatusPPTDone
	}
	if (oa != nil && now.Before(*oa)) || (ppt != nil && now.Before(*ppt)) || (iv != nil && now.Before(*iv)) {
		return model.StatusOngoing
	}
	return model.StatusUpcoming
}

// DeriveCompanyStatus is DeriveStatus over a record.
func DeriveCompanyStatus(c model.Company, now time.Time) model.PlacementStatus {
	return DeriveStatus(c.Status, c.RegistrationDeadline, c.PPTDateTime, c.OADateTime, c.InterviewDateTime, now)
}

type Emphasis string

const (
	EmphasisLow      Emphasis = "low"
	EmphasisMedium   Emphasis = "medium"
	EmphasisHigh     Emphasis = "high"
	EmphasisCritical Emphasis = "critical"
)

// Badge is the display form of a status.
type Badge struct {
	Emphasis Emphasis `json:"emphasis"`
	Label    string   `json:"label"`
}

// StatusBadge is total over the closed status set. Both eventual states,
// interviews_done and completed, present as "Completed". A value outside the
// set is a programming error, not a runtime condition.
func StatusBadge(s model.PlacementStatus) Badge {
	switch s {
	case model.StatusUpcoming:
		return Badge{EmphasisLow, "Upcoming"}
	case model.StatusOngoing:
		return Badge{EmphasisHigh, "Ongoing"}
	case model.StatusPPTDone:
		return Badge{EmphasisLow, "PPT done"}
	case model.StatusOADone:
		return Badge{EmphasisLow, "OA done"}
	case model.StatusInterviewsDone, model.StatusCompleted:
		return Badge{EmphasisMedium, "Completed"}
	case model.StatusCancelled:
		return Badge{EmphasisCritical, "Cancelled"}
	}
	panic(fmt.Sprintf("placement: unknown status %q", s))
}
