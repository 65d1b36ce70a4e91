package handlers

import (
	"errors"
	"net/http"

	"sohoconnect/services/consultation"

	"github.com/gin-gonic/gin"
)

// ConsultationHandler exposes the guided consultation flow endpoints.
type ConsultationHandler struct {
	Svc consultation.ConsultationService
}

func NewConsultationHandler(svc consultation.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{Svc: svc}
}

// StartConsultationHandler opens a session for the requested category and
// returns the first question.
func (h *ConsultationHandler) StartConsultationHandler(c *gin.Context) {
	var input struct {
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, q, err := h.Svc.StartSession(c.Request.Context(), input.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start consultation", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sess.ID, "session": sess, "question": q})
}

// AnswerConsultationHandler applies an option selection. A nil question in
// the response means the flow finished and recommendations are on the session.
func (h *ConsultationHandler) AnswerConsultationHandler(c *gin.Context) {
	var input struct {
		OptionID string `json:"optionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sess, q, err := h.Svc.Answer(c.Request.Context(), c.Param("sessionID"), input.OptionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "question": q, "done": sess.Done})
}

// BackConsultationHandler steps to the previous question. Backing out of the
// first question exits the flow and discards the session.
func (h *ConsultationHandler) BackConsultationHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	sess, q, err := h.Svc.Back(c.Request.Context(), sessionID)
	if errors.Is(err, consultation.ErrFlowExited) {
		if derr := h.Svc.CancelSession(c.Request.Context(), sessionID); derr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to discard session", "details": derr.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"exited": true})
		return
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess, "question": q})
}

// CancelConsultationHandler discards the session.
func (h *ConsultationHandler) CancelConsultationHandler(c *gin.Context) {
	if err := h.Svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
