package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// requireAdmin guards the administrative dump endpoint with a bearer
// token. With no token configured the endpoint is unreachable.
func (h *Handlers) requireAdmin(c *gin.Context) {
	if h.adminToken == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, StatusResponse{
			Status:  "error",
			Message: "Administrative access is not configured",
		})
		return
	}

	auth := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
		c.AbortWithStatusJSON(http.StatusForbidden, StatusResponse{
			Status:  "error",
			Message: "Invalid or missing admin token",
		})
		return
	}

	c.Next()
}
