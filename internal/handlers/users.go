package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"

	"jamiifund/admin/internal/models"
	"jamiifund/admin/internal/repository"
)

func (h HandlerSet) ListPendingUsers(c *gin.Context) {
	users, err := h.users.ListPending(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list pending users failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

type verificationRequest struct {
	Status models.VerificationStatus `json:"status" binding:"required,oneof=approved rejected"`
}

func (h HandlerSet) UpdateUserVerification(c *gin.Context) {
	var req verificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}

	id := c.Param("id")
	if err := h.users.UpdateVerification(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.log.Error().Err(err).Str("user_id", id).Msg("update verification failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	h.recordActivity(c, "user_verification", "User "+id+" marked "+string(req.Status))

	c.JSON(http.StatusOK, gin.H{"message": "verification updated"})
}

// recordActivity appends to the dashboard activity feed. Best effort: a feed
// write never fails the admin action it describes.
func (h HandlerSet) recordActivity(c *gin.Context, activityType, description string) {
	activity := models.Activity{
		ID:          ksuid.New().String(),
		Type:        activityType,
		Description: description,
	}
	if err := h.activities.Record(c.Request.Context(), activity); err != nil {
		h.log.Warn().Err(err).Str("type", activityType).Msg("record activity failed")
	}
}
