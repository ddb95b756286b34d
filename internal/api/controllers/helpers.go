package controllers

import "github.com/gin-gonic/gin"

// actor returns the authenticated admin email for activity attribution.
// Public endpoints have no JWT context and fall back to "Admin".
func actor(c *gin.Context) string {
	if email := c.GetString("actor_email"); email != "" {
		return email
	}
	return "Admin"
}
