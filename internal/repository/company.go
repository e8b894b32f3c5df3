package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

const companyCols = `id, name, description, logo_url, website_url, visit_date,
registration_deadline, ppt_datetime, oa_datetime, interview_datetime,
cgpa_cutoff, offered_ctc, ctc_distribution, roles, people_selected, status,
bond_details, job_location, eligibility_criteria, created_at, updated_at`

func scanCompany(row pgx.Row) (model.Company, error) {
	var c model.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.LogoURL, &c.WebsiteURL, &c.VisitDate,
		&c.RegistrationDeadline, &c.PPTDateTime, &c.OADateTime, &c.InterviewDateTime,
		&c.CGPACutoff, &c.OfferedCTC, &c.CTCDistribution, &c.Roles, &c.PeopleSelected, &c.Status,
		&c.BondDetails, &c.JobLocation, &c.EligibilityCriteria, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// ListCompanies returns the full snapshot, newest first. Filtering and
// sorting happen in-process; the store only feeds the pipeline.
func (r *Repository) ListCompanies(ctx context.Context) ([]model.Company, error) {
	q := fmt.Sprintf(`SELECT %s FROM companies ORDER BY created_at DESC`, companyCols)

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	var out []model.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *Repository) GetCompanyByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	q := fmt.Sprintf(`SELECT %s FROM companies WHERE id = $1`, companyCols)

	c, err := scanCompany(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("company not found: %w", err)
		}
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return &c, nil
}

func (r *Repository) CreateCompany(ctx context.Context, c *model.Company) (uuid.UUID, error) {
	const q = `
INSERT INTO companies (
	name, description, logo_url, website_url, visit_date,
	registration_deadline, ppt_datetime, oa_datetime, interview_datetime,
	cgpa_cutoff, offered_ctc, ctc_distribution, roles, people_selected, status,
	bond_details, job_location, eligibility_criteria
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		c.Name, c.Description, c.LogoURL, c.WebsiteURL, c.VisitDate,
		c.RegistrationDeadline, c.PPTDateTime, c.OADateTime, c.InterviewDateTime,
		c.CGPACutoff, c.OfferedCTC, c.CTCDistribution, c.Roles, c.PeopleSelected, c.Status,
		c.BondDetails, c.JobLocation, c.EligibilityCriteria,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert company: %w", err)
	}
	return id, nil
}

func (r *Repository) UpdateCompany(ctx context.Context, id uuid.UUID, c *model.Company) error {
	const q = `
UPDATE companies SET
	name = $1, description = $2, logo_url = $3, website_url = $4, visit_date = $5,
	registration_deadline = $6, ppt_datetime = $7, oa_datetime = $8, interview_datetime = $9,
	cgpa_cutoff = $10, offered_ctc = $11, ctc_distribution = $12, roles = $13,
	people_selected = $14, status = $15, bond_details = $16, job_location = $17,
	eligibility_criteria = $18, updated_at = now()
WHERE id = $19`

	tag, err := r.db.Exec(ctx, q,
		c.Name, c.Description, c.LogoURL, c.WebsiteURL, c.VisitDate,
		c.RegistrationDeadline, c.PPTDateTime, c.OADateTime, c.InterviewDateTime,
		c.CGPACutoff, c.OfferedCTC, c.CTCDistribution, c.Roles,
		c.PeopleSelected, c.Status, c.BondDetails, c.JobLocation,
		c.EligibilityCriteria, id,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("company not found")
	}
	return nil
}
