package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jamiifund/admin/internal/repository"
)

func (h HandlerSet) ListCampaigns(c *gin.Context) {
	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be a boolean"})
			return
		}
		featured = &value
	}

	campaigns, err := h.campaigns.List(c.Request.Context(), featured)
	if err != nil {
		h.log.Error().Err(err).Msg("list campaigns failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load campaigns"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

func (h HandlerSet) ListPendingCampaigns(c *gin.Context) {
	campaigns, err := h.campaigns.ListPending(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list pending campaigns failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load campaigns"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

type campaignStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
	Note   string `json:"note"`
}

func (h HandlerSet) UpdateCampaignStatus(c *gin.Context) {
	var req campaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}

	var note *string
	if req.Note != "" {
		note = &req.Note
	}

	id := c.Param("id")
	if err := h.campaigns.UpdateStatus(c.Request.Context(), id, req.Status, note); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		h.log.Error().Err(err).Str("campaign_id", id).Msg("update campaign status failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update campaign"})
		return
	}

	h.recordActivity(c, "campaign_verification", "Campaign "+id+" marked "+req.Status)

	c.JSON(http.StatusOK, gin.H{"message": "campaign status updated"})
}

type campaignUpdateRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	TargetAmount int64  `json:"target_amount" binding:"required,gt=0"`
	IsFeatured   bool   `json:"is_featured"`
}

func (h HandlerSet) UpdateCampaign(c *gin.Context) {
	var req campaignUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	campaign, err := h.campaigns.Update(c.Request.Context(), id, repository.CampaignUpdate{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		IsFeatured:   req.IsFeatured,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		h.log.Error().Err(err).Str("campaign_id", id).Msg("update campaign failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update campaign"})
		return
	}

	h.recordActivity(c, "campaign_updated", "Campaign \""+campaign.Title+"\" updated")

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

func (h HandlerSet) DeleteCampaign(c *gin.Context) {
	id := c.Param("id")
	if err := h.campaigns.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		h.log.Error().Err(err).Str("campaign_id", id).Msg("delete campaign failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete campaign"})
		return
	}

	h.recordActivity(c, "campaign_deleted", "Campaign "+id+" deleted")

	c.JSON(http.StatusOK, gin.H{"message": "campaign deleted"})
}
