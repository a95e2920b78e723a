package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Session tokens travel in this header, not in Authorization.
const authTokenHeader = "x-auth-token"

// Gin context keys set by the gateway for downstream handlers.
const (
	ctxUserID   = "userId"
	ctxUsername = "username"
)

// authTokenMiddleware is the request gateway for owner-scoped routes.
// Missing token → 401, failed verification → 403; both carry no body.
// On success the verified identity is attached to the request context.
func (h *Handler) authTokenMiddleware(c *gin.Context) {
	token := c.GetHeader(authTokenHeader)
	if token == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ident, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	c.Set(ctxUserID, ident.UserID)
	c.Set(ctxUsername, ident.Username)
	c.Next()
}

// callerID returns the authenticated user id stored by the gateway.
func callerID(c *gin.Context) int {
	return c.GetInt(ctxUserID)
}
