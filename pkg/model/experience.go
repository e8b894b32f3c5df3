package model

import (
	"time"

	"github.com/google/uuid"
)

// InterviewExperience is one shared round write-up. Records are append-only:
// there is no update path once a student posts one.
type InterviewExperience struct {
	ID         uuid.UUID  `json:"id"`
	CompanyID  uuid.UUID  `json:"company_id"`
	UserID     *uuid.UUID `json:"user_id"`
	RoundName  string     `json:"round_name"`
	Experience string     `json:"experience"`
	Difficulty *string    `json:"difficulty"`
	Result     *string    `json:"result"`
	Tips       *string    `json:"tips"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CreateExperienceReq struct {
	RoundName  string `json:"round_name" binding:"required"`
	Experience string `json:"experience" binding:"required"`
	Difficulty string `json:"difficulty"`
	Result     string `json:"result"`
	Tips       string `json:"tips"`
}
