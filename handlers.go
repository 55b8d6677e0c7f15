package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

func newRouter(a *Authorizer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware())

	r.GET("/health", healthHandler)
	r.Any("/authorize", authMiddleware(a), authorizeHandler)
	return r
}

// 健康检查接口
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "OK"})
}

// 授权接口，供 nginx auth_request / Traefik ForwardAuth 调用
func authorizeHandler(c *gin.Context) {
	v, ok := c.Get(decisionKey)
	decision, _ := v.(Decision)
	if !ok || !decision.IsAuthorized {
		slog.Error("authorizeHandler reached without decision", "requestId", c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "missing authorization decision"})
		return
	}
	c.JSON(http.StatusOK, decision)
}
