package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Dileepadari/placement-navigator/pkg"
	"github.com/Dileepadari/placement-navigator/pkg/model"
	"github.com/Dileepadari/placement-navigator/pkg/response"
)

// SignUp creates a user with the default viewer role.
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("signup: bad request", zap.Error(err))
		response.BadRequest(c, err.Error())
		return
	}

	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("signup: failed to hash password", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	id, err := h.Users.CreateUser(c.Request.Context(), req.Email, pwHash, req.FullName)
	if err != nil {
		h.Logger.Warn("signup: user create failed", zap.String("email", req.Email), zap.Error(err))
		// hide store details; duplicate email is the common case
		response.BadRequest(c, "could not create user")
		return
	}

	h.Logger.Info("signup: user created", zap.String("user_id", id.String()))
	response.Created(c, gin.H{"id": id})
}

// Login verifies credentials and returns a JWT carrying the user's role.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("login: bad request", zap.Error(err))
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		h.Logger.Warn("login: user not found", zap.String("email", req.Email), zap.Error(err))
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		h.Logger.Warn("login: password mismatch", zap.String("email", req.Email))
		response.Unauthorized(c, "invalid credentials")
		return
	}

	role, err := h.Users.GetUserRole(ctx, user.ID)
	if err != nil {
		h.Logger.Error("login: role lookup failed", zap.String("email", req.Email), zap.Error(err))
		role = model.RoleViewer
	}

	token, claims, err := h.TokenMaker.GenerateToken(user.ID, user.Email, role, h.TokenTTL)
	if err != nil {
		h.Logger.Error("login: error creating token", zap.Error(err))
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.LoginRes{
		AccessToken: token,
		ExpiresAt:   claims.RegisteredClaims.ExpiresAt.Time,
		Role:        role,
	})
}

// Me returns the caller's identity as carried in the token.
func (h *Handler) Me(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	response.OK(c, gin.H{
		"user_id":  claims.UserID,
		"email":    claims.Email,
		"role":     claims.Role,
		"can_edit": claims.Role.CanEdit(),
	})
}
