package handler

import (
	"errors"
	"net/http"

	"collably/internal/domain"
	"collably/internal/middleware"
	"collably/internal/models"
	"collably/internal/repository"
	"collably/pkg/money"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CampaignHandler struct {
	campaigns *repository.CampaignRepository
}

func NewCampaignHandler(campaigns *repository.CampaignRepository) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req struct {
		Title    string `json:"title" binding:"required"`
		Brief    string `json:"brief"`
		Budget   string `json:"budget" binding:"required"`
		Currency string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	budgetCents, err := money.ParseAmount(req.Budget)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	campaign := &models.Campaign{
		BrandID:     middleware.GetUserID(c),
		Title:       req.Title,
		Brief:       req.Brief,
		BudgetCents: budgetCents,
	}
	if req.Currency != "" {
		campaign.Currency = req.Currency
	}
	if err := h.campaigns.Create(campaign); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"campaign": campaign})
}

func (h *CampaignHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}
	campaign, err := h.campaigns.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, domain.ErrNotFound)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

func (h *CampaignHandler) ListMine(c *gin.Context) {
	list, err := h.campaigns.ListByBrand(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": list})
}
