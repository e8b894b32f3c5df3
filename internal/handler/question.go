package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Dileepadari/placement-navigator/pkg/model"
	"github.com/Dileepadari/placement-navigator/pkg/response"
)

func (h *Handler) ListQuestions(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid company ID")
		return
	}

	questions, err := h.Questions.ListQuestionsByCompany(c.Request.Context(), companyID)
	if err != nil {
		h.Logger.Error("list_questions: fetch failed",
			zap.String("company_id", companyID.String()), zap.Error(err))
		response.StoreError(c, err)
		return
	}

	response.OKWithMeta(c, questions, &response.Meta{Total: len(questions)})
}

// CreateQuestion appends a contributed interview question; append-only like
// experiences.
func (h *Handler) CreateQuestion(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid company ID")
		return
	}

	var req model.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	q := &model.InterviewQuestion{
		CompanyID:    companyID,
		Question:     req.Question,
		Answer:       optText(req.Answer),
		Topic:        optText(req.Topic),
		QuestionType: optText(req.QuestionType),
	}
	if claims := h.GetClaimsFromContext(c); claims != nil {
		q.UserID = &claims.UserID
	}

	if err := h.Questions.CreateQuestion(c.Request.Context(), q); err != nil {
		h.Logger.Error("create_question: insert failed",
			zap.String("company_id", companyID.String()), zap.Error(err))
		response.StoreError(c, err)
		return
	}

	h.Logger.Info("create_question: question added",
		zap.String("company_id", companyID.String()),
		zap.String("question_id", q.ID.String()),
	)

	response.Created(c, q)
}
