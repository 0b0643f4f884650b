package handler

import (
	"net/http"
	"time"
	"wager-ledger/internal/auth"
	"wager-ledger/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const claimsKey = "claims"

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get("requestID")
		requestID, _ := rid.(string)

		ev := logger.Info()
		if status >= http.StatusInternalServerError {
			ev = logger.Error()
		}
		if claims := claimsFrom(c); claims != nil {
			ev = ev.Str("actor", claims.Actor())
		}
		ev.Str("request_id", requestID).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", raw).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}

// AuthMiddleware requires a valid bearer token and stores its claims on the context.
func AuthMiddleware(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifier.FromHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: err.Error(),
				Code:  "UNAUTHORIZED",
			})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		if claims == nil || !claims.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
				Error: model.ErrForbidden.Error(),
				Code:  "FORBIDDEN",
			})
			return
		}
		c.Next()
	}
}

func claimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// callerAccount returns the account of a player token, or aborts with 403.
func callerAccount(c *gin.Context) (int64, bool) {
	claims := claimsFrom(c)
	if claims == nil || claims.AccountID <= 0 {
		c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
			Error: "token is not bound to an account",
			Code:  "FORBIDDEN",
		})
		return 0, false
	}
	return claims.AccountID, true
}

// canSee reports whether the caller may read a resource owned by accountID.
func canSee(c *gin.Context, accountID int64) bool {
	claims := claimsFrom(c)
	if claims == nil {
		return false
	}
	return claims.AccountID == accountID || claims.HasRole(auth.RoleReviewer)
}
