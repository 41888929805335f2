package handler

import (
	"errors"
	"net/http"

	"collably/internal/domain"
	"collably/internal/middleware"
	"collably/internal/repository"
	"collably/internal/service"
	"collably/pkg/money"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EscrowHandler struct {
	escrowSvc *service.EscrowService
	collabSvc *service.CollaborationService
	escrows   *repository.EscrowRepository
}

func NewEscrowHandler(escrowSvc *service.EscrowService, collabSvc *service.CollaborationService, escrows *repository.EscrowRepository) *EscrowHandler {
	return &EscrowHandler{escrowSvc: escrowSvc, collabSvc: collabSvc, escrows: escrows}
}

// Create opens the escrow account for a collaboration. Brand side only.
func (h *EscrowHandler) Create(c *gin.Context) {
	var req struct {
		CollaborationID uint   `json:"collaboration_id" binding:"required"`
		Amount          string `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collab, err := h.collabSvc.GetByID(req.CollaborationID)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if role != domain.RoleAdmin && userID != collab.BrandID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	var amountCents int64
	if req.Amount != "" {
		amountCents, err = money.ParseAmount(req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	e, err := h.escrowSvc.CreateAccount(service.CreateEscrowInput{
		CollaborationID: req.CollaborationID,
		AmountCents:     amountCents,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"escrow": e})
}

func (h *EscrowHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid escrow id"})
		return
	}
	e, err := h.escrowSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if role != domain.RoleAdmin && userID != e.BrandID && userID != e.InfluencerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"escrow": e})
}

func (h *EscrowHandler) Fund(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid escrow id"})
		return
	}
	e, err := h.escrowSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if role != domain.RoleAdmin && userID != e.BrandID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	funded, err := h.escrowSvc.Fund(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"escrow": funded})
}

// Release pays out of held funds, either a milestone tranche or an explicit
// amount. Brand or admin.
func (h *EscrowHandler) Release(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid escrow id"})
		return
	}
	var req struct {
		MilestoneID *uint  `json:"milestone_id"`
		Amount      string `json:"amount"`
		Reason      string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e, err := h.escrowSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if role != domain.RoleAdmin && userID != e.BrandID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	in := service.ReleaseEscrowInput{MilestoneID: req.MilestoneID, Reason: req.Reason}
	if req.Amount != "" {
		cents, err := money.ParseAmount(req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		in.AmountCents = &cents
	}
	released, err := h.escrowSvc.Release(id, userID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"escrow": released})
}

// Refund returns all held funds to the brand. Admin only; routed accordingly.
func (h *EscrowHandler) Refund(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid escrow id"})
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)
	e, err := h.escrowSvc.Refund(id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"escrow": e})
}

func (h *EscrowHandler) Releases(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid escrow id"})
		return
	}
	e, err := h.escrowSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if role != domain.RoleAdmin && userID != e.BrandID && userID != e.InfluencerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	list, err := h.escrows.ListReleases(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, domain.ErrNotFound)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"releases": list})
}
