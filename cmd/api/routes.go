package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dileepadari/placement-navigator/internal/ws"
)

func (app *application) routes() http.Handler {
	if !app.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.requestLogger())
	r.Use(app.corsMiddleware())
	if app.Config.Limiter.Enabled {
		r.Use(app.rateLimit())
	}

	h := app.Handler

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": app.Config.Env})
	})
	r.GET("/ws", ws.Serve(app.Hub, app.Logger))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/signup", h.SignUp)
		v1.POST("/login", h.Login)

		v1.GET("/companies", h.ListCompanies)
		v1.GET("/companies/:id", h.GetCompany)
		v1.GET("/companies/:id/experiences", h.ListExperiences)
		v1.GET("/companies/:id/questions", h.ListQuestions)

		authed := v1.Group("/")
		authed.Use(app.authMiddleware())
		{
			authed.GET("/me", h.Me)
			authed.POST("/companies/:id/experiences", h.CreateExperience)
			authed.POST("/companies/:id/questions", h.CreateQuestion)

			editor := authed.Group("/")
			editor.Use(app.editorMiddleware())
			{
				editor.POST("/companies", h.CreateCompany)
				editor.PUT("/companies/:id", h.UpdateCompany)
				editor.GET("/companies/:id/form", h.GetCompanyForm)
			}
		}
	}

	return r
}
