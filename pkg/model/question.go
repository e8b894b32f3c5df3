package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewQuestion struct {
	ID           uuid.UUID  `json:"id"`
	CompanyID    uuid.UUID  `json:"company_id"`
	UserID       *uuid.UUID `json:"user_id"`
	Question     string     `json:"question"`
	Answer       *string    `json:"answer"`
	Topic        *string    `json:"topic"`
	QuestionType *string    `json:"question_type"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CreateQuestionReq struct {
	Question     string `json:"question" binding:"required"`
	Answer       string `json:"answer"`
	Topic        string `json:"topic"`
	QuestionType string `json:"question_type"`
}
