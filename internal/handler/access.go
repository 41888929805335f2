package handler

import (
	"strconv"

	"collably/internal/domain"
	"collably/internal/models"

	"github.com/gin-gonic/gin"
)

// participant reports whether the user may act on the collaboration. Admins
// always may; everyone else must be one of its two parties.
func participant(c *models.Collaboration, userID uint, role string) bool {
	if role == domain.RoleAdmin {
		return true
	}
	return c.BrandID == userID || c.InfluencerID == userID
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return def
	}
	return v
}
