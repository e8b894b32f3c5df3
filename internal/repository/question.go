package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

func (r *Repository) ListQuestionsByCompany(ctx context.Context, companyID uuid.UUID) ([]model.InterviewQuestion, error) {
	const q = `
SELECT id, company_id, user_id, question, answer, topic, question_type, created_at
FROM interview_questions
WHERE company_id = $1
ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, companyID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []model.InterviewQuestion
	for rows.Next() {
		var qu model.InterviewQuestion
		if err := rows.Scan(&qu.ID, &qu.CompanyID, &qu.UserID, &qu.Question,
			&qu.Answer, &qu.Topic, &qu.QuestionType, &qu.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, qu)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *Repository) CreateQuestion(ctx context.Context, qu *model.InterviewQuestion) error {
	const q = `
INSERT INTO interview_questions (company_id, user_id, question, answer, topic, question_type)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q,
		qu.CompanyID, qu.UserID, qu.Question, qu.Answer, qu.Topic, qu.QuestionType,
	).Scan(&qu.ID, &qu.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}
