package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jamiifund/admin/internal/middleware"
	"jamiifund/admin/internal/repository"
)

type adminStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// UpdateAdminStatus activates or deactivates a fellow admin account.
// Deactivation does not revoke outstanding tokens; the session endpoint
// rejects the account on its next check.
func (h HandlerSet) UpdateAdminStatus(c *gin.Context) {
	var req adminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "active must be true or false"})
		return
	}

	id := c.Param("id")
	if claims, ok := middleware.ClaimsFrom(c); ok && claims.Sub == id && !*req.Active {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot deactivate your own account"})
		return
	}

	if err := h.admins.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
			return
		}
		h.log.Error().Err(err).Str("admin_id", id).Msg("update admin status failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update admin"})
		return
	}

	action := "deactivated"
	if *req.Active {
		action = "reactivated"
	}
	h.recordActivity(c, "admin_status", "Admin "+id+" "+action)

	c.JSON(http.StatusOK, gin.H{"message": "admin status updated"})
}
