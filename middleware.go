package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	decisionKey     = "decision"
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// 中间件：API Key 认证
func authMiddleware(a *Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		decision := a.AuthorizeHeader(authHeader)
		slog.Info("authorize",
			"requestId", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"hasHeader", authHeader != "",
			"authorized", decision.IsAuthorized,
		)
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing API key"})
			c.Abort()
			return
		}
		if !decision.IsAuthorized {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid API key"})
			c.Abort()
			return
		}
		c.Set(decisionKey, decision)
		c.Next()
	}
}

// 中间件：请求 ID
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if len(id) == 0 {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
