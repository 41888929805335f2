package handler

import (
	"errors"
	"net/http"

	"collably/internal/domain"
	"collably/internal/middleware"
	"collably/internal/repository"
	"collably/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContractHandler struct {
	contractSvc *service.ContractService
	collabSvc   *service.CollaborationService
	contracts   *repository.ContractRepository
}

func NewContractHandler(contractSvc *service.ContractService, collabSvc *service.CollaborationService, contracts *repository.ContractRepository) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc, collabSvc: collabSvc, contracts: contracts}
}

func (h *ContractHandler) Generate(c *gin.Context) {
	collabID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	var req struct {
		TemplateID  *uint  `json:"template_id"`
		CustomTerms string `json:"custom_terms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	collab, err := h.collabSvc.GetByID(collabID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !participant(collab, userID, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	contract, err := h.contractSvc.Generate(collabID, userID, role, service.GenerateContractInput{
		TemplateID:  req.TemplateID,
		CustomTerms: req.CustomTerms,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contract": contract})
}

func (h *ContractHandler) Sign(c *gin.Context) {
	collabID, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid collaboration id"})
		return
	}
	var req struct {
		Signature string `json:"signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	collab, err := h.collabSvc.GetByID(collabID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !participant(collab, userID, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	contract, err := h.contractSvc.Sign(collabID, userID, role, service.SignContractInput{
		Signature: req.Signature,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract": contract})
}

func (h *ContractHandler) Get(c *gin.Context) {
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
	contract, err := h.contracts.GetByCollaboration(collabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, domain.ErrNotFound)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract": contract})
}
