package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Dileepadari/placement-navigator/internal/auth"
	"github.com/Dileepadari/placement-navigator/pkg/model"
)

func TestCreateExperienceAttribution(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()
	var stored *model.InterviewExperience

	h := newTestHandler()
	h.Experiences = &experienceStoreMock{
		create: func(ctx context.Context, e *model.InterviewExperience) error {
			stored = e
			return nil
		},
	}

	claims, err := auth.NewUserClaims(userID, "student@iiit.ac.in", model.RoleViewer, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/companies/:id/experiences", func(c *gin.Context) {
		c.Set("claims", claims)
		h.CreateExperience(c)
	})

	body := []byte(`{"round_name": "Technical Round 1", "experience": "Two graph problems.", "result": "Selected"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/"+companyID.String()+"/experiences", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if stored == nil {
		t.Fatal("create was never called")
	}
	if stored.CompanyID != companyID {
		t.Errorf("company id = %s, want %s", stored.CompanyID, companyID)
	}
	if stored.UserID == nil || *stored.UserID != userID {
		t.Errorf("user id = %v, want attribution to %s", stored.UserID, userID)
	}
	if stored.Result == nil || *stored.Result != "Selected" {
		t.Errorf("result = %v, want Selected", stored.Result)
	}
	if stored.Tips != nil {
		t.Errorf("tips = %v, want absent for empty field", stored.Tips)
	}
}

func TestCreateExperienceMissingFields(t *testing.T) {
	h := newTestHandler()
	h.Experiences = &experienceStoreMock{
		create: func(ctx context.Context, e *model.InterviewExperience) error {
			t.Fatal("store must not be reached on invalid input")
			return nil
		},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/companies/:id/experiences", h.CreateExperience)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/companies/"+uuid.NewString()+"/experiences",
		bytes.NewReader([]byte(`{"round_name": "OA"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
