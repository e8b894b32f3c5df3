package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

func (r *Repository) ListExperiencesByCompany(ctx context.Context, companyID uuid.UUID) ([]model.InterviewExperience, error) {
	const q = `
SELECT id, company_id, user_id, round_name, experience, difficulty, result, tips, created_at
FROM interview_experiences
WHERE company_id = $1
ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, companyID)
	if err != nil {
		return nil, fmt.Errorf("query experiences: %w", err)
	}
	defer rows.Close()

	var out []model.InterviewExperience
	for rows.Next() {
		var e model.InterviewExperience
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.UserID, &e.RoundName, &e.Experience,
			&e.Difficulty, &e.Result, &e.Tips, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *Repository) CreateExperience(ctx context.Context, e *model.InterviewExperience) error {
	const q = `
INSERT INTO interview_experiences (company_id, user_id, round_name, experience, difficulty, result, tips)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q,
		e.CompanyID, e.UserID, e.RoundName, e.Experience, e.Difficulty, e.Result, e.Tips,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert experience: %w", err)
	}
	return nil
}

// ListSelectedProfiles returns the profiles of users who reported a
// "selected" result for the company.
func (r *Repository) ListSelectedProfiles(ctx context.Context, companyID uuid.UUID) ([]model.Profile, error) {
	const q = `
SELECT DISTINCT p.id, p.user_id, p.email, p.full_name, p.avatar_url, p.created_at, p.updated_at
FROM profiles p
INNER JOIN interview_experiences e ON e.user_id = p.user_id
WHERE e.company_id = $1
  AND e.user_id IS NOT NULL
  AND e.result ILIKE '%selected%'`

	rows, err := r.db.Query(ctx, q, companyID)
	if err != nil {
		return nil, fmt.Errorf("query selected profiles: %w", err)
	}
	defer rows.Close()

	var out []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Email, &p.FullName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
