package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

type UserClaims struct {
	UserID uuid.UUID     `json:"user_id"`
	Email  string        `json:"email"`
	Role   model.AppRole `json:"role"`
	jwt.RegisteredClaims
}

func NewUserClaims(userID uuid.UUID, email string, role model.AppRole, duration time.Duration) (*UserClaims, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("error generating token id: %w", err)
	}

	now := time.Now()
	return &UserClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}, nil
}
