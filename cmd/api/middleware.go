package main

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Dileepadari/placement-navigator/pkg/response"
)

func (app *application) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func (app *application) corsMiddleware() gin.HandlerFunc {
	allowed := app.Config.GetCORSOrigins()
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			for _, o := range allowed {
				if o == origin || o == "*" {
					c.Header("Access-Control-Allow-Origin", origin)
					c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
					c.Header("Vary", "Origin")
					break
				}
			}
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// rateLimit keeps a limiter per client IP and prunes entries not seen
// for three minutes.
func (app *application) rateLimit() gin.HandlerFunc {
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}
	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	go func() {
		for range time.Tick(time.Minute) {
			mu.Lock()
			for ip, cl := range clients {
				if time.Since(cl.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(rate.Limit(app.Config.Limiter.RPS), app.Config.Limiter.Burst)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()
		allow := cl.limiter.Allow()
		mu.Unlock()

		if !allow {
			response.TooManyRequests(c, "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (app *application) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}
		fields := strings.Fields(header)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
			response.Unauthorized(c, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := app.Handler.TokenMaker.VerifyToken(fields[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set("claims", claims)
		c.Next()
	}
}

func (app *application) editorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := app.Handler.GetClaimsFromContext(c)
		if claims == nil || !claims.Role.CanEdit() {
			response.Forbidden(c, "editor access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
