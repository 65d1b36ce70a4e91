package handlers

import (
	"net/http"

	"sohoconnect/models"
	"sohoconnect/services/campaign"

	"github.com/gin-gonic/gin"
)

// CampaignHandler exposes the internal email campaign tooling.
type CampaignHandler struct {
	Svc campaign.CampaignService
}

func NewCampaignHandler(svc campaign.CampaignService) *CampaignHandler {
	return &CampaignHandler{Svc: svc}
}

// UploadCampaignLeadsHandler upserts a batch of campaign recipients.
func (h *CampaignHandler) UploadCampaignLeadsHandler(c *gin.Context) {
	var input struct {
		Leads []models.CampaignLead `json:"leads"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	count, err := h.Svc.UploadLeads(c.Request.Context(), input.Leads)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploaded": count})
}

// GenerateCampaignHandler drafts campaign copy.
func (h *CampaignHandler) GenerateCampaignHandler(c *gin.Context) {
	var req campaign.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	email, err := h.Svc.GenerateEmail(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, email)
}

// SendCampaignHandler delivers a campaign to a lead segment.
func (h *CampaignHandler) SendCampaignHandler(c *gin.Context) {
	var req campaign.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	report, err := h.Svc.SendCampaign(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "partial": report})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetCampaignLogsHandler lists send logs for a campaign.
func (h *CampaignHandler) GetCampaignLogsHandler(c *gin.Context) {
	logs, err := h.Svc.GetLogs(c.Request.Context(), c.Param("campaign"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch logs", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
