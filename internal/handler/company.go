package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Dileepadari/placement-navigator/internal/placement"
	"github.com/Dileepadari/placement-navigator/pkg/model"
	"github.com/Dileepadari/placement-navigator/pkg/response"
)

// ListCompanies serves the main drive listing: snapshot fetch (cached),
// then the in-process search/status/sort pipeline, then derived presentation.
func (h *Handler) ListCompanies(c *gin.Context) {
	var q model.CompanyListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	ctx := c.Request.Context()
	companies, cached := []model.Company(nil), false
	if h.Cache != nil {
		companies, cached = h.Cache.GetCompanies(ctx)
	}
	if !cached {
		var err error
		companies, err = h.Companies.ListCompanies(ctx)
		if err != nil {
			h.Logger.Error("list_companies: fetch failed", zap.Error(err))
			response.StoreError(c, err)
			return
		}
		if h.Cache != nil {
			if err := h.Cache.SetCompanies(ctx, companies); err != nil {
				h.Logger.Warn("list_companies: cache write failed", zap.Error(err))
			}
		}
	}

	now := h.now()
	filtered := placement.Filter(companies, q.Search, q.Status)
	sorted := placement.Sort(filtered, placement.SortKey(q.SortBy), placement.SortDir(q.SortDir), now)

	rows := make([]model.CompanyRow, len(sorted))
	for i, company := range sorted {
		derived := placement.DeriveCompanyStatus(company, now)
		badge := placement.StatusBadge(derived)
		rows[i] = model.CompanyRow{
			Company:        company,
			DerivedStatus:  derived,
			StatusLabel:    badge.Label,
			StatusEmphasis: string(badge.Emphasis),
		}
	}

	response.OKWithMeta(c, rows, &response.Meta{Total: len(rows)})
}

// GetCompany returns the drive with its experiences, questions and
// selected-applicant profiles. The secondary fetches are isolated: one
// failing logs and degrades to empty without touching the rest.
func (h *Handler) GetCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid company ID")
		return
	}

	ctx := c.Request.Context()
	company, err := h.Companies.GetCompanyByID(ctx, id)
	if err != nil {
		response.NotFound(c, "company not found")
		return
	}

	experiences, err := h.Experiences.ListExperiencesByCompany(ctx, id)
	if err != nil {
		h.Logger.Warn("get_company: experiences fetch failed", zap.String("company_id", id.String()), zap.Error(err))
		experiences = nil
	}
	questions, err := h.Questions.ListQuestionsByCompany(ctx, id)
	if err != nil {
		h.Logger.Warn("get_company: questions fetch failed", zap.String("company_id", id.String()), zap.Error(err))
		questions = nil
	}
	selected, err := h.Experiences.ListSelectedProfiles(ctx, id)
	if err != nil {
		h.Logger.Warn("get_company: selected profiles fetch failed", zap.String("company_id", id.String()), zap.Error(err))
		selected = nil
	}

	derived := placement.DeriveCompanyStatus(*company, h.now())
	badge := placement.StatusBadge(derived)

	response.OK(c, gin.H{
		"company": model.CompanyRow{
			Company:        *company,
			DerivedStatus:  derived,
			StatusLabel:    badge.Label,
			StatusEmphasis: string(badge.Emphasis),
		},
		"experiences":       experiences,
		"questions":         questions,
		"selected_profiles": selected,
	})
}

// GetCompanyForm returns the record flattened to editable form state.
func (h *Handler) GetCompanyForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid company ID")
		return
	}

	company, err := h.Companies.GetCompanyByID(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, "company not found")
		return
	}

	response.OK(c, placement.FormValues(*company))
}

func (h *Handler) CreateCompany(c *gin.Context) {
	var form model.CompanyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if form.Status != "" && !form.Status.Valid() {
		response.BadRequest(c, "invalid status value")
		return
	}

	ctx := c.Request.Context()
	payload := placement.BuildCompany(form)
	h.prefillDescription(c, &payload)

	id, err := h.Companies.CreateCompany(ctx, &payload)
	if err != nil {
		h.Logger.Error("create_company: insert failed", zap.String("name", payload.Name), zap.Error(err))
		response.StoreError(c, err)
		return
	}

	h.Logger.Info("create_company: company created",
		zap.String("company_id", id.String()),
		zap.String("name", payload.Name),
	)
	h.companyChanged(ctx, "company_created", id)

	response.Created(c, gin.H{"id": id})
}

func (h *Handler) UpdateCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid company ID")
		return
	}

	var form model.CompanyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if form.Status != "" && !form.Status.Valid() {
		response.BadRequest(c, "invalid status value")
		return
	}

	ctx := c.Request.Context()
	payload := placement.BuildCompany(form)

	if err := h.Companies.UpdateCompany(ctx, id, &payload); err != nil {
		h.Logger.Error("update_company: update failed", zap.String("company_id", id.String()), zap.Error(err))
		response.StoreError(c, err)
		return
	}

	h.Logger.Info("update_company: company updated", zap.String("company_id", id.String()))
	h.companyChanged(ctx, "company_updated", id)

	response.Message(c, "company updated successfully")
}

// prefillDescription scrapes the company website for a meta description when
// the editor left the field blank. Best effort only.
func (h *Handler) prefillDescription(c *gin.Context, payload *model.Company) {
	if h.Fetcher == nil || payload.Description != nil || payload.WebsiteURL == nil {
		return
	}
	meta, err := h.Fetcher.SiteMeta(c.Request.Context(), *payload.WebsiteURL)
	if err != nil {
		h.Logger.Warn("create_company: website metadata fetch failed",
			zap.String("url", *payload.WebsiteURL), zap.Error(err))
		return
	}
	if meta.Description != "" {
		payload.Description = &meta.Description
	}
}
