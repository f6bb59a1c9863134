package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"paybyphone/session"
)

// AdminAuth gates the admin JSON API behind the shared admin secret,
// compared in constant time.
func AdminAuth(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		given := c.GetHeader("X-Admin-Password")
		if subtle.ConstantTimeCompare([]byte(given), []byte(password)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// AdminPage renders the dashboard shell; the page itself fetches the JSON
// endpoints with the admin secret.
func (h *Handler) AdminPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{})
}

// AdminSessions returns every session keyed by identifier, timestamps as
// RFC 3339 strings.
func (h *Handler) AdminSessions(c *gin.Context) {
	all := h.store.ListAll()
	out := make(map[string]session.Session, len(all))
	for _, s := range all {
		out[s.ID] = s
	}
	c.JSON(http.StatusOK, out)
}

// AdminStats returns store aggregates.
func (h *Handler) AdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}
