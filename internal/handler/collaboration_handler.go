package handler

import (
	"net/http"
	"time"

	"collably/internal/middleware"
	"collably/internal/repository"
	"collably/internal/service"
	"collably/pkg/money"

	"github.com/gin-gonic/gin"
)

type CollaborationHandler struct {
	collabSvc *service.CollaborationService
	collabs   *repository.CollaborationRepository
}

func NewCollaborationHandler(collabSvc *service.CollaborationService, collabs *repository.CollaborationRepository) *CollaborationHandler {
	return &CollaborationHandler{collabSvc: collabSvc, collabs: collabs}
}

func (h *CollaborationHandler) Create(c *gin.Context) {
	var req struct {
		CampaignID     uint       `json:"campaign_id" binding:"required"`
		InfluencerID   uint       `json:"influencer_id" binding:"required"`
		Amount         string     `json:"amount" binding:"required"`
		Currency       string     `json:"currency"`
		StartDate      *time.Time `json:"start_date"`
		EndDate        *time.Time `json:"end_date"`
		ContentDueDate *time.Time `json:"content_due_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amountCents, err := money.ParseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collab, err := h.collabSvc.Create(middleware.GetUserID(c), service.CreateCollaborationInput{
		CampaignID:     req.CampaignID,
		InfluencerID:   req.InfluencerID,
		AmountCents:    amountCents,
		Currency:       req.Currency,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		ContentDueDate: req.ContentDueDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"collaboration": collab})
}

func (h *CollaborationHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	collab, err := h.collabSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if !participant(collab, userID, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"collaboration":     collab,
		"available_actions": h.collabSvc.AvailableActions(collab.Status, role),
	})
}

func (h *CollaborationHandler) List(c *gin.Context) {
	list, err := h.collabs.ListForUser(middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collaborations": list})
}

// Transition applies a lifecycle action (ACCEPT, DECLINE, SUBMIT_CONTENT...)
// on behalf of the caller.
func (h *CollaborationHandler) Transition(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	var req struct {
		Action string `json:"action" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	collab, err := h.collabSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !participant(collab, userID, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	updated, err := h.collabSvc.Transition(id, userID, role, req.Action, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"collaboration":     updated,
		"available_actions": h.collabSvc.AvailableActions(updated.Status, role),
	})
}

func (h *CollaborationHandler) History(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	collab, err := h.collabSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !participant(collab, middleware.GetUserID(c), middleware.GetRole(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	history, err := h.collabs.History(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}
