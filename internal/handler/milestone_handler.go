package handler

import (
	"net/http"

	"collably/internal/domain"
	"collably/internal/middleware"
	"collably/internal/repository"
	"collably/internal/service"
	"collably/pkg/money"

	"github.com/gin-gonic/gin"
)

type MilestoneHandler struct {
	milestoneSvc *service.MilestoneService
	collabSvc    *service.CollaborationService
	milestones   *repository.MilestoneRepository
}

func NewMilestoneHandler(milestoneSvc *service.MilestoneService, collabSvc *service.CollaborationService, milestones *repository.MilestoneRepository) *MilestoneHandler {
	return &MilestoneHandler{milestoneSvc: milestoneSvc, collabSvc: collabSvc, milestones: milestones}
}

// CreateBatch defines the payment schedule for a collaboration. Amounts must
// sum to the agreed amount.
func (h *MilestoneHandler) CreateBatch(c *gin.Context) {
	collabID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	var req struct {
		Milestones []struct {
			Title  string `json:"title" binding:"required"`
			Amount string `json:"amount" binding:"required"`
		} `json:"milestones" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collab, err := h.collabSvc.GetByID(collabID)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if !participant(collab, userID, role) || (role != domain.RoleAdmin && userID != collab.BrandID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	items := make([]service.MilestoneInput, 0, len(req.Milestones))
	for _, m := range req.Milestones {
		cents, err := money.ParseAmount(m.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		items = append(items, service.MilestoneInput{Title: m.Title, AmountCents: cents})
	}
	created, err := h.milestoneSvc.CreateBatch(collabID, items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"milestones": created})
}

func (h *MilestoneHandler) List(c *gin.Context) {
	collabID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	collab, err := h.collabSvc.GetByID(collabID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !participant(collab, middleware.GetUserID(c), middleware.GetRole(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	list, err := h.milestones.ListByCollaboration(collabID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestones": list})
}

// UpdateStatus approves or rejects a milestone. Payment is driven by escrow
// release, not this endpoint.
func (h *MilestoneHandler) UpdateStatus(c *gin.Context) {
	milestoneID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid milestone id"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.milestones.GetByID(milestoneID)
	if err != nil {
		respondError(c, domain.ErrNotFound)
		return
	}
	collab, err := h.collabSvc.GetByID(m.CollaborationID)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if !participant(collab, userID, role) || (role != domain.RoleAdmin && userID != collab.BrandID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	updated, err := h.milestoneSvc.UpdateStatus(milestoneID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestone": updated})
}
