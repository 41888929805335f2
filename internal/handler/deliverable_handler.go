package handler

import (
	"net/http"

	"collably/internal/domain"
	"collably/internal/middleware"
	"collably/internal/models"
	"collably/internal/repository"
	"collably/internal/service"

	"github.com/gin-gonic/gin"
)

type DeliverableHandler struct {
	deliverableSvc *service.DeliverableService
	collabSvc      *service.CollaborationService
	deliverables   *repository.DeliverableRepository
}

func NewDeliverableHandler(deliverableSvc *service.DeliverableService, collabSvc *service.CollaborationService, deliverables *repository.DeliverableRepository) *DeliverableHandler {
	return &DeliverableHandler{deliverableSvc: deliverableSvc, collabSvc: collabSvc, deliverables: deliverables}
}

func (h *DeliverableHandler) Create(c *gin.Context) {
	collabID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
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
	if !participant(collab, middleware.GetUserID(c), middleware.GetRole(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	d, err := h.deliverableSvc.Create(collabID, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"deliverable": d})
}

func (h *DeliverableHandler) List(c *gin.Context) {
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
	list, err := h.deliverables.ListByCollaboration(collabID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deliverables": list})
}

// Submit uploads a new content version. Influencer side only.
func (h *DeliverableHandler) Submit(c *gin.Context) {
	deliverableID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deliverable id"})
		return
	}
	var req struct {
		MediaURLs []string `json:"media_urls" binding:"required,min=1"`
		Caption   string   `json:"caption"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collab, err := h.collabForDeliverable(deliverableID)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if role != domain.RoleAdmin && userID != collab.InfluencerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	d, err := h.deliverableSvc.Submit(deliverableID, service.SubmitDeliverableInput{
		MediaURLs: req.MediaURLs,
		Caption:   req.Caption,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deliverable": d})
}

// Review approves or bounces the current version. Brand side only.
func (h *DeliverableHandler) Review(c *gin.Context) {
	deliverableID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deliverable id"})
		return
	}
	var req struct {
		Decision string `json:"decision" binding:"required"`
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collab, err := h.collabForDeliverable(deliverableID)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if role != domain.RoleAdmin && userID != collab.BrandID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	d, err := h.deliverableSvc.Review(deliverableID, userID, service.ReviewDeliverableInput{
		Decision: req.Decision,
		Feedback: req.Feedback,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deliverable": d})
}

func (h *DeliverableHandler) Versions(c *gin.Context) {
	deliverableID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deliverable id"})
		return
	}
	collab, err := h.collabForDeliverable(deliverableID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !participant(collab, middleware.GetUserID(c), middleware.GetRole(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	versions, err := h.deliverableSvc.Versions(deliverableID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

func (h *DeliverableHandler) collabForDeliverable(deliverableID uint) (*models.Collaboration, error) {
	d, err := h.deliverables.GetByID(deliverableID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return h.collabSvc.GetByID(d.CollaborationID)
}
