package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Dileepadari/placement-navigator/pkg/model"
	"github.com/Dileepadari/placement-navigator/pkg/response"
)

func (h *Handler) ListExperiences(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid company ID")
		return
	}

	experiences, err := h.Experiences.ListExperiencesByCompany(c.Request.Context(), companyID)
	if err != nil {
		h.Logger.Error("list_experiences: fetch failed",
			zap.String("company_id", companyID.String()), zap.Error(err))
		response.StoreError(c, err)
		return
	}

	response.OKWithMeta(c, experiences, &response.Meta{Total: len(experiences)})
}

// CreateExperience appends a shared round write-up. Any authenticated user
// may post; records are never edited afterwards.
func (h *Handler) CreateExperience(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid company ID")
		return
	}

	var req model.CreateExperienceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	exp := &model.InterviewExperience{
		CompanyID:  companyID,
		RoundName:  req.RoundName,
		Experience: req.Experience,
		Difficulty: optText(req.Difficulty),
		Result:     optText(req.Result),
		Tips:       optText(req.Tips),
	}
	if claims := h.GetClaimsFromContext(c); claims != nil {
		exp.UserID = &claims.UserID
	}

	if err := h.Experiences.CreateExperience(c.Request.Context(), exp); err != nil {
		h.Logger.Error("create_experience: insert failed",
			zap.String("company_id", companyID.String()), zap.Error(err))
		response.StoreError(c, err)
		return
	}

	h.Logger.Info("create_experience: experience shared",
		zap.String("company_id", companyID.String()),
		zap.String("experience_id", exp.ID.String()),
	)

	response.Created(c, exp)
}

func optText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
