package handler

import (
	"errors"
	"net/http"
	"time"

	"collably/internal/domain"
	"collably/internal/middleware"
	"collably/internal/repository"
	"collably/internal/service"
	"collably/pkg/money"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	invoiceSvc *service.InvoiceService
	collabSvc  *service.CollaborationService
	invoices   *repository.InvoiceRepository
}

func NewInvoiceHandler(invoiceSvc *service.InvoiceService, collabSvc *service.CollaborationService, invoices *repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc, collabSvc: collabSvc, invoices: invoices}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var req struct {
		Type            string     `json:"type" binding:"required"`
		CollaborationID *uint      `json:"collaboration_id"`
		CounterpartyID  uint       `json:"counterparty_id"`
		Tax             string     `json:"tax"`
		PlatformFee     string     `json:"platform_fee"`
		Currency        string     `json:"currency"`
		DueDate         *time.Time `json:"due_date"`
		LineItems       []struct {
			Description string `json:"description" binding:"required"`
			Quantity    int    `json:"quantity"`
			Amount      string `json:"amount" binding:"required"`
		} `json:"line_items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)

	in := service.CreateInvoiceInput{
		Type:            req.Type,
		CollaborationID: req.CollaborationID,
		Currency:        req.Currency,
		DueDate:         req.DueDate,
	}
	if req.CollaborationID != nil {
		collab, err := h.collabSvc.GetByID(*req.CollaborationID)
		if err != nil {
			respondError(c, err)
			return
		}
		if !participant(collab, userID, role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		in.BrandID = collab.BrandID
		in.InfluencerID = collab.InfluencerID
		if in.Currency == "" {
			in.Currency = collab.Currency
		}
	} else {
		switch role {
		case domain.RoleBrand:
			in.BrandID = userID
			in.InfluencerID = req.CounterpartyID
		case domain.RoleInfluencer:
			in.InfluencerID = userID
			in.BrandID = req.CounterpartyID
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "collaboration_id required"})
			return
		}
	}
	var err error
	if req.Tax != "" {
		if in.TaxCents, err = money.ParseAmount(req.Tax); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.PlatformFee != "" {
		if in.PlatformFeeCents, err = money.ParseAmount(req.PlatformFee); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	for _, it := range req.LineItems {
		cents, err := money.ParseAmount(it.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		in.LineItems = append(in.LineItems, service.LineItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			AmountCents: cents,
		})
	}
	inv, err := h.invoiceSvc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoice": inv})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}
	inv, err := h.invoices.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, domain.ErrNotFound)
			return
		}
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if role != domain.RoleAdmin && userID != inv.BrandID && userID != inv.InfluencerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": inv})
}

func (h *InvoiceHandler) List(c *gin.Context) {
	list, err := h.invoices.ListForUser(middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": list})
}

func (h *InvoiceHandler) Send(c *gin.Context) {
	h.setStatus(c, func(id uint) (interface{}, error) { return h.invoiceSvc.Send(id) })
}

func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	h.setStatus(c, func(id uint) (interface{}, error) { return h.invoiceSvc.MarkPaid(id) })
}

func (h *InvoiceHandler) setStatus(c *gin.Context, apply func(uint) (interface{}, error)) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}
	inv, err := h.invoices.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, domain.ErrNotFound)
			return
		}
		respondError(c, err)
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	if role != domain.RoleAdmin && userID != inv.BrandID && userID != inv.InfluencerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	updated, err := apply(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": updated})
}
