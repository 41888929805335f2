package handler

import (
	"errors"
	"log"
	"net/http"

	"collably/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps the business error taxonomy to HTTP statuses. Anything
// outside the taxonomy is an infrastructure failure and surfaces as a 500
// without leaking detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrAlreadySigned),
		errors.Is(err, domain.ErrContractNotFullySigned):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrExceedsHeld),
		errors.Is(err, domain.ErrInvalidPayoutMethod),
		errors.Is(err, domain.ErrPayoutMethodNotVerified),
		errors.Is(err, domain.ErrNothingToRefund),
		errors.Is(err, domain.ErrMissingReleaseTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[HTTP] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
