package handler

import (
	"net/http"

	"collably/internal/middleware"
	"collably/internal/service"

	"github.com/gin-gonic/gin"
)

type PayoutMethodHandler struct {
	payoutSvc *service.PayoutMethodService
}

func NewPayoutMethodHandler(payoutSvc *service.PayoutMethodService) *PayoutMethodHandler {
	return &PayoutMethodHandler{payoutSvc: payoutSvc}
}

func (h *PayoutMethodHandler) Add(c *gin.Context) {
	var req struct {
		Type         string `json:"type" binding:"required"`
		BankName     string `json:"bank_name"`
		AccountName  string `json:"account_name"`
		AccountLast4 string `json:"account_last4"`
		PaypalEmail  string `json:"paypal_email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.payoutSvc.Add(middleware.GetUserID(c), service.AddPayoutMethodInput{
		Type:         req.Type,
		BankName:     req.BankName,
		AccountName:  req.AccountName,
		AccountLast4: req.AccountLast4,
		PaypalEmail:  req.PaypalEmail,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payout_method": m})
}

func (h *PayoutMethodHandler) List(c *gin.Context) {
	list, err := h.payoutSvc.List(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payout_methods": list})
}

func (h *PayoutMethodHandler) SetDefault(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payout method id"})
		return
	}
	m, err := h.payoutSvc.SetDefault(middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payout_method": m})
}

func (h *PayoutMethodHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payout method id"})
		return
	}
	if err := h.payoutSvc.Delete(middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Verify is the admin KYC boundary; a method must be verified before it can
// receive withdrawals.
func (h *PayoutMethodHandler) Verify(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payout method id"})
		return
	}
	m, err := h.payoutSvc.Verify(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payout_method": m})
}
