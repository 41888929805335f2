package handler

import (
	"net/http"

	"collably/internal/domain"
	"collably/internal/middleware"
	"collably/internal/service"
	"collably/pkg/money"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletSvc *service.WalletService
}

func NewWalletHandler(walletSvc *service.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

func (h *WalletHandler) Balance(c *gin.Context) {
	balance, err := h.walletSvc.Balance(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"balance":   balance,
		"available": money.Format(balance.AvailableCents),
		"pending":   money.Format(balance.PendingCents),
	})
}

// Deposit credits funds entering the platform. The payment gateway callback
// would hit this after confirming the charge.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req struct {
		Amount    string `json:"amount" binding:"required"`
		Reference string `json:"reference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amountCents, err := money.ParseAmount(req.Amount)
	if err != nil || amountCents == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": money.ErrBadAmount.Error()})
		return
	}
	userID, role := middleware.GetUserID(c), middleware.GetRole(c)
	walletType := domain.WalletTypeInfluencer
	if role == domain.RoleBrand {
		walletType = domain.WalletTypeBrand
	}
	w, err := h.walletSvc.Deposit(userID, walletType, amountCents, req.Reference)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallet": w})
}

func (h *WalletHandler) Withdraw(c *gin.Context) {
	var req struct {
		Amount         string `json:"amount" binding:"required"`
		PayoutMethodID uint   `json:"payout_method_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amountCents, err := money.ParseAmount(req.Amount)
	if err != nil || amountCents == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": money.ErrBadAmount.Error()})
		return
	}
	txn, err := h.walletSvc.Withdraw(middleware.GetUserID(c), service.WithdrawInput{
		AmountCents:    amountCents,
		PayoutMethodID: req.PayoutMethodID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

func (h *WalletHandler) Transactions(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	if limit > 200 {
		limit = 200
	}
	offset := queryInt(c, "offset", 0)
	list, err := h.walletSvc.Transactions(middleware.GetUserID(c), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": list})
}
