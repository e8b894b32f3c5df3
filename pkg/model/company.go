package model

import (
	"time"

	"github.com/google/uuid"
)

// PlacementStatus is the closed set of drive states. The stored value is
// editor-controlled; the value shown to students is usually derived from the
// milestone schedule instead (see internal/placement).
type PlacementStatus string

const (
	StatusUpcoming       PlacementStatus = "upcoming"
	StatusOngoing        PlacementStatus = "ongoing"
	StatusPPTDone        PlacementStatus = "ppt_done"
	StatusOADone         PlacementStatus = "oa_done"
	StatusInterviewsDone PlacementStatus = "interviews_done"
	StatusCompleted      PlacementStatus = "completed"
	StatusCancelled      PlacementStatus = "cancelled"
)

func (s PlacementStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusPPTDone, StatusOADone,
		StatusInterviewsDone, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Company is a recruitment drive. Every milestone instant is nullable:
// absent means "not yet scheduled", never the zero time.
type Company struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Description          *string         `json:"description"`
	LogoURL              *string         `json:"logo_url"`
	WebsiteURL           *string         `json:"website_url"`
	VisitDate            *time.Time      `json:"visit_date"`
	RegistrationDeadline *time.Time      `json:"registration_deadline"`
	PPTDateTime          *time.Time      `json:"ppt_datetime"`
	OADateTime           *time.Time      `json:"oa_datetime"`
	InterviewDateTime    *time.Time      `json:"interview_datetime"`
	CGPACutoff           *float64        `json:"cgpa_cutoff"`
	OfferedCTC           *string         `json:"offered_ctc"`
	CTCDistribution      *string         `json:"ctc_distribution"`
	Roles                []string        `json:"roles"`
	PeopleSelected       *int            `json:"people_selected"`
	Status               PlacementStatus `json:"status"`
	BondDetails          *string         `json:"bond_details"`
	JobLocation          *string         `json:"job_location"`
	EligibilityCriteria  *string         `json:"eligibility_criteria"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// CompanyForm is the editable state of a company record: every field a plain
// string the way a form control holds it. Datetimes use the datetime-local
// shape (YYYY-MM-DDTHH:mm, IST), roles are comma separated.
type CompanyForm struct {
	Name                 string          `json:"name" binding:"required"`
	Description          string          `json:"description"`
	LogoURL              string          `json:"logo_url"`
	WebsiteURL           string          `json:"website_url"`
	VisitDate            string          `json:"visit_date"`
	RegistrationDeadline string          `json:"registration_deadline"`
	CGPACutoff           string          `json:"cgpa_cutoff"`
	PPTDateTime          string          `json:"ppt_datetime"`
	OADateTime           string          `json:"oa_datetime"`
	InterviewDateTime    string          `json:"interview_datetime"`
	OfferedCTC           string          `json:"offered_ctc"`
	CTCDistribution      string          `json:"ctc_distribution"`
	Roles                string          `json:"roles"`
	PeopleSelected       string          `json:"people_selected"`
	Status               PlacementStatus `json:"status"`
	BondDetails          string          `json:"bond_details"`
	JobLocation          string          `json:"job_location"`
	EligibilityCriteria  string          `json:"eligibility_criteria"`
}

type CompanyListQuery struct {
	Search  string `json:"search" form:"search"`
	Status  string `json:"status" form:"status,default=all"`
	SortBy  string `json:"sort_by" form:"sort_by,default=registration_deadline"`
	SortDir string `json:"sort_dir" form:"sort_dir,default=desc"`
}

// CompanyRow is a list entry: the record plus its derived presentation.
type CompanyRow struct {
	Company
	DerivedStatus  PlacementStatus `json:"derived_status"`
	StatusLabel    string          `json:"status_label"`
	StatusEmphasis string          `json:"status_emphasis"`
}
