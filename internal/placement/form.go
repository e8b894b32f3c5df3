package placement

import (
	"strconv"
	"strings"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

// FormValues flattens a stored record into the all-string editable state:
// milestone instants through FormatInput, numbers through strconv, roles
// comma-joined, absent optionals as empty strings.
func FormValues(c model.Company) model.CompanyForm {
	f := model.CompanyForm{
		Name:                 c.Name,
		Description:          textOrEmpty(c.Description),
		LogoURL:              textOrEmpty(c.LogoURL),
		WebsiteURL:           textOrEmpty(c.WebsiteURL),
		VisitDate:            FormatDate(c.VisitDate),
		RegistrationDeadline: FormatInput(c.RegistrationDeadline),
		PPTDateTime:          FormatInput(c.PPTDateTime),
		OADateTime:           FormatInput(c.OADateTime),
		InterviewDateTime:    FormatInput(c.InterviewDateTime),
		OfferedCTC:           textOrEmpty(c.OfferedCTC),
		CTCDistribution:      textOrEmpty(c.CTCDistribution),
		Roles:                strings.Join(c.Roles, ", "),
		Status:               c.Status,
		BondDetails:          textOrEmpty(c.BondDetails),
		JobLocation:          textOrEmpty(c.JobLocation),
		EligibilityCriteria:  textOrEmpty(c.EligibilityCriteria),
	}
	if c.CGPACutoff != nil {
		f.CGPACutoff = strconv.FormatFloat(*c.CGPACutoff, 'f', -1, 64)
	}
	if c.PeopleSelected != nil {
		f.PeopleSelected = strconv.Itoa(*c.PeopleSelected)
	}
	return f
}

// BuildCompany normalizes submitted form state into a persistable record.
// Empty strings become absent values, never empty text; numeric and datetime
// fields parse best-effort and silently drop to absent. Range checks (CGPA
// 0-10) stay with the input control, not here.
func BuildCompany(f model.CompanyForm) model.Company {
	c := model.Company{
		Name:                 strings.TrimSpace(f.Name),
		Description:          optText(f.Description),
		LogoURL:              optText(f.LogoURL),
		WebsiteURL:           optText(f.WebsiteURL),
		VisitDate:            ParseDate(f.VisitDate),
		RegistrationDeadline: ParseInput(f.RegistrationDeadline),
		PPTDateTime:          ParseInput(f.PPTDateTime),
		OADateTime:           ParseInput(f.OADateTime),
		InterviewDateTime:    ParseInput(f.InterviewDateTime),
		OfferedCTC:           optText(f.OfferedCTC),
		CTCDistribution:      optText(f.CTCDistribution),
		Roles:                splitRoles(f.Roles),
		Status:               f.Status,
		BondDetails:          optText(f.BondDetails),
		JobLocation:          optText(f.JobLocation),
		EligibilityCriteria:  optText(f.EligibilityCriteria),
	}
	if c.Status == "" {
		c.Status = model.StatusUpcoming
	}
	if v, ok := ParseDecimal(f.CGPACutoff); ok {
		c.CGPACutoff = &v
	}
	if v, ok := ParseInt(f.PeopleSelected); ok {
		c.PeopleSelected = &v
	}
	return c
}

func optText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// splitRoles turns "SDE, Data Analyst" into trimmed non-empty names; an
// empty input stays absent.
func splitRoles(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if r := strings.TrimSpace(p); r != "" {
			roles = append(roles, r)
		}
	}
	if len(roles) == 0 {
		return nil
	}
	return roles
}
