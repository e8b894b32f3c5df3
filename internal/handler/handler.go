package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Dileepadari/placement-navigator/internal/auth"
	"github.com/Dileepadari/placement-navigator/internal/cache"
	"github.com/Dileepadari/placement-navigator/internal/fetcher"
	"github.com/Dileepadari/placement-navigator/internal/ws"
	"github.com/Dileepadari/placement-navigator/pkg/model"
)

// Narrow store interfaces: exactly the operations the handlers need, so the
// logic tests against function-field mocks instead of a live backing store.

type CompanyStore interface {
	ListCompanies(ctx context.Context) ([]model.Company, error)
	GetCompanyByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	CreateCompany(ctx context.Context, c *model.Company) (uuid.UUID, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, c *model.Company) error
}

type ExperienceStore interface {
	ListExperiencesByCompany(ctx context.Context, companyID uuid.UUID) ([]model.InterviewExperience, error)
	CreateExperience(ctx context.Context, e *model.InterviewExperience) error
	ListSelectedProfiles(ctx context.Context, companyID uuid.UUID) ([]model.Profile, error)
}

type QuestionStore interface {
	ListQuestionsByCompany(ctx context.Context, companyID uuid.UUID) ([]model.InterviewQuestion, error)
	CreateQuestion(ctx context.Context, q *model.InterviewQuestion) error
}

type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash, fullName string) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserRole(ctx context.Context, userID uuid.UUID) (model.AppRole, error)
}

type Handler struct {
	Logger      *zap.Logger
	Companies   CompanyStore
	Experiences ExperienceStore
	Questions   QuestionStore
	Users       UserStore
	Cache       *cache.Cache     // optional
	Hub         *ws.Hub          // optional
	Fetcher     *fetcher.Fetcher // optional
	TokenMaker  *auth.JWTMaker
	TokenTTL    time.Duration
	Now         func() time.Time // injectable clock, defaults to time.Now
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// GetClaimsFromContext retrieves the verified claims set by the auth
// middleware, or nil for anonymous requests.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.UserClaims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.UserClaims)
	if !ok {
		return nil
	}
	return claims
}

// companyChanged runs the post-write fan-out: drop the cached snapshot and
// tell connected clients to re-fetch. Both halves are best-effort.
func (h *Handler) companyChanged(ctx context.Context, event string, id uuid.UUID) {
	if h.Cache != nil {
		if err := h.Cache.InvalidateCompanies(ctx); err != nil {
			h.Logger.Warn("cache invalidation failed", zap.Error(err))
		}
	}
	if h.Hub != nil {
		msg, _ := json.Marshal(gin.H{"event": event, "company_id": id})
		h.Hub.Broadcast(msg)
	}
}
