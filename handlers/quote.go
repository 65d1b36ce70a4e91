package handlers

import (
	"net/http"

	"sohoconnect/models"
	"sohoconnect/services/lead"
	"sohoconnect/services/quote"

	"github.com/gin-gonic/gin"
)

// QuoteHandler exposes the quote calculator and lead capture endpoints.
type QuoteHandler struct {
	Quote quote.QuoteService
	Leads lead.LeadService
}

func NewQuoteHandler(quoteSvc quote.QuoteService, leadSvc lead.LeadService) *QuoteHandler {
	return &QuoteHandler{Quote: quoteSvc, Leads: leadSvc}
}

// GetServicesHandler lists the service catalog, optionally filtered by category.
func (h *QuoteHandler) GetServicesHandler(c *gin.Context) {
	services := h.Quote.GetAvailableServices()
	if category := c.Query("category"); category != "" {
		filtered := make([]models.Service, 0, len(services))
		for _, svc := range services {
			if string(svc.Category) == category {
				filtered = append(filtered, svc)
			}
		}
		services = filtered
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// QuoteEstimateHandler computes an estimate for the selected services.
func (h *QuoteHandler) QuoteEstimateHandler(c *gin.Context) {
	var input struct {
		Services []string `json:"services"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	estimate := h.Quote.CalculateQuoteEstimate(input.Services)
	c.JSON(http.StatusOK, gin.H{"estimate": estimate})
}

// CaptureLeadHandler scores and stores a quote-form submission.
func (h *QuoteHandler) CaptureLeadHandler(c *gin.Context) {
	var input struct {
		models.QuoteFormData
		lead.UTMParams
		SourceForm string `json:"sourceForm"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.SourceForm == "" {
		input.SourceForm = "quote-calculator"
	}

	result, err := h.Leads.CaptureLead(c.Request.Context(), input.QuoteFormData, input.SourceForm, input.UTMParams)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetLeadsByTierHandler lists captured leads for a tier. Internal use.
func (h *QuoteHandler) GetLeadsByTierHandler(c *gin.Context) {
	tier := models.LeadTier(c.Param("tier"))
	switch tier {
	case models.TierHot, models.TierWarm, models.TierCold:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "tier must be hot, warm, or cold"})
		return
	}

	leads, err := h.Leads.GetLeadsByTier(c.Request.Context(), tier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch leads", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tier": tier, "leads": leads})
}
