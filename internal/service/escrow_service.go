package service

import (
	"errors"
	"fmt"
	"time"

	"collably/internal/domain"
	"collably/internal/models"
	"collably/pkg/money"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EscrowService moves brand money in and out of trust. Invariants it must
// never break, even under concurrent callers: heldCents + releasedCents <=
// totalAmountCents, heldCents never negative, heldCents decreases only via
// release or refund.
type EscrowService struct {
	db *gorm.DB
}

func NewEscrowService(db *gorm.DB) *EscrowService {
	return &EscrowService{db: db}
}

var releasableStatuses = []string{domain.EscrowStatusFunded, domain.EscrowStatusPartiallyReleased}

type CreateEscrowInput struct {
	CollaborationID uint
	AmountCents     int64 // 0 = the collaboration's agreed amount
}

// CreateAccount opens the escrow for a collaboration. The platform fee is
// computed from the commission rate snapshotted on the collaboration row,
// never from live config, so it cannot diverge from the fee promised at
// proposal time.
func (s *EscrowService) CreateAccount(in CreateEscrowInput) (*models.EscrowAccount, error) {
	var c models.Collaboration
	if err := s.db.First(&c, in.CollaborationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	amount := in.AmountCents
	if amount == 0 {
		amount = c.AgreedAmountCents
	}
	fees := money.CalculateFees(amount, c.CommissionRateBps)
	e := &models.EscrowAccount{
		CollaborationID:   c.ID,
		BrandID:           c.BrandID,
		InfluencerID:      c.InfluencerID,
		TotalAmountCents:  amount,
		HeldCents:         0,
		PlatformFeeCents:  fees.PlatformFeeCents,
		CommissionRateBps: c.CommissionRateBps,
		Currency:          c.Currency,
		Status:            domain.EscrowStatusPending,
	}
	if err := s.db.Create(e).Error; err != nil {
		// unique index on collaboration_id: one escrow per collaboration
		if _, err2 := s.getByCollaboration(c.ID); err2 == nil {
			return nil, domain.ErrInvalidState
		}
		return nil, err
	}
	return e, nil
}

// Fund debits the brand wallet by the full escrow amount and marks the
// account FUNDED, atomically. A wallet short of the total fails with
// ErrInsufficientBalance and leaves the escrow PENDING.
func (s *EscrowService) Fund(escrowID, actorID uint) (*models.EscrowAccount, error) {
	var out models.EscrowAccount
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var e models.EscrowAccount
		if err := tx.First(&e, escrowID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if e.Status != domain.EscrowStatusPending {
			return domain.ErrInvalidState
		}
		var w models.Wallet
		if err := tx.Where("user_id = ? AND type = ?", e.BrandID, domain.WalletTypeBrand).First(&w).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("brand wallet not found: %w", domain.ErrNotFound)
			}
			return err
		}
		if w.BalanceCents < e.TotalAmountCents {
			return domain.ErrInsufficientBalance
		}
		ref := fmt.Sprintf("escrow_%d", e.ID)
		if _, err := debitWallet(tx, w.ID, e.TotalAmountCents, domain.TxTypeEscrowHold, ref, "funds held in escrow"); err != nil {
			return err
		}
		now := time.Now()
		res := tx.Model(&models.EscrowAccount{}).
			Where("id = ? AND status = ?", e.ID, domain.EscrowStatusPending).
			Updates(map[string]interface{}{
				"held_cents": e.TotalAmountCents,
				"status":     domain.EscrowStatusFunded,
				"funded_at":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidState
		}
		return tx.First(&out, e.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type ReleaseEscrowInput struct {
	MilestoneID *uint
	AmountCents *int64
	Reason      string
}

// Release moves funds out of held toward the influencer. An explicit amount
// is the net transferable sum and is credited in full. A milestone target
// releases the milestone's tranche in one transaction: its net portion goes
// to the influencer, its fee portion leaves held as the platform's take, and
// the milestone is marked PAID.
func (s *EscrowService) Release(escrowID, actorID uint, in ReleaseEscrowInput) (*models.EscrowAccount, error) {
	if in.MilestoneID == nil && in.AmountCents == nil {
		return nil, domain.ErrMissingReleaseTarget
	}
	var out models.EscrowAccount
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var e models.EscrowAccount
		if err := tx.First(&e, escrowID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if e.Status != domain.EscrowStatusFunded && e.Status != domain.EscrowStatusPartiallyReleased {
			return fmt.Errorf("escrow is not in a releasable state: %w", domain.ErrInvalidState)
		}

		var milestone *models.Milestone
		var netCents, feeCents int64
		if in.MilestoneID != nil {
			var m models.Milestone
			if err := tx.First(&m, *in.MilestoneID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrNotFound
				}
				return err
			}
			if m.CollaborationID != e.CollaborationID {
				return domain.ErrInvalidState
			}
			fees := money.CalculateFees(m.AmountCents, e.CommissionRateBps)
			netCents, feeCents = fees.NetAmountCents, fees.PlatformFeeCents
			milestone = &m
		}
		if in.AmountCents != nil {
			netCents = *in.AmountCents
			if milestone == nil {
				feeCents = 0
			}
		}
		deduct := netCents + feeCents
		if deduct <= 0 {
			return domain.ErrMissingReleaseTarget
		}
		if deduct > e.HeldCents {
			return domain.ErrExceedsHeld
		}

		remaining := e.HeldCents - deduct
		status := domain.EscrowStatusPartiallyReleased
		updates := map[string]interface{}{
			"held_cents":     gorm.Expr("held_cents - ?", deduct),
			"released_cents": gorm.Expr("released_cents + ?", deduct),
			"status":         status,
		}
		if remaining == 0 {
			status = domain.EscrowStatusFullyReleased
			updates["status"] = status
			updates["released_at"] = time.Now()
		}
		// Guarded on held_cents: a concurrent release that drained the
		// account first makes this a zero-row update.
		res := tx.Model(&models.EscrowAccount{}).
			Where("id = ? AND status IN ? AND held_cents >= ?", e.ID, releasableStatuses, deduct).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrExceedsHeld
		}

		influencerWallet, err := getOrCreateWalletTx(tx, e.InfluencerID, domain.WalletTypeInfluencer, e.Currency)
		if err != nil {
			return err
		}
		ref := fmt.Sprintf("escrow_%d", e.ID)
		if _, err := creditWallet(tx, influencerWallet.ID, netCents, domain.TxTypePayout, ref, in.Reason); err != nil {
			return err
		}
		var brandWallet models.Wallet
		if err := tx.Where("user_id = ? AND type = ?", e.BrandID, domain.WalletTypeBrand).First(&brandWallet).Error; err == nil {
			if err := auditWallet(tx, brandWallet.ID, -netCents, domain.TxTypeEscrowRelease, ref, in.Reason); err != nil {
				return err
			}
			if feeCents > 0 {
				if err := auditWallet(tx, brandWallet.ID, -feeCents, domain.TxTypePlatformFee, ref, "platform commission"); err != nil {
					return err
				}
			}
		}

		release := &models.EscrowRelease{
			EscrowAccountID: e.ID,
			MilestoneID:     in.MilestoneID,
			AmountCents:     netCents,
			Reason:          in.Reason,
			ActorID:         actorID,
			Reference:       uuid.NewString(),
		}
		if err := tx.Create(release).Error; err != nil {
			return err
		}

		if milestone != nil {
			now := time.Now()
			if err := tx.Model(&models.Milestone{}).Where("id = ?", milestone.ID).
				Updates(map[string]interface{}{"status": domain.MilestoneStatusPaid, "paid_at": now}).Error; err != nil {
				return err
			}
		}
		return tx.First(&out, e.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Refund returns every cent still held to the brand wallet and closes the
// account as REFUNDED.
func (s *EscrowService) Refund(escrowID uint, reason string) (*models.EscrowAccount, error) {
	var out models.EscrowAccount
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var e models.EscrowAccount
		if err := tx.First(&e, escrowID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if e.HeldCents == 0 {
			return domain.ErrNothingToRefund
		}
		res := tx.Model(&models.EscrowAccount{}).
			Where("id = ? AND held_cents = ?", e.ID, e.HeldCents).
			Updates(map[string]interface{}{
				"held_cents": 0,
				"status":     domain.EscrowStatusRefunded,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidState
		}
		brandWallet, err := getOrCreateWalletTx(tx, e.BrandID, domain.WalletTypeBrand, e.Currency)
		if err != nil {
			return err
		}
		ref := fmt.Sprintf("escrow_%d", e.ID)
		if _, err := creditWallet(tx, brandWallet.ID, e.HeldCents, domain.TxTypeRefund, ref, reason); err != nil {
			return err
		}
		return tx.First(&out, e.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EscrowService) GetByID(id uint) (*models.EscrowAccount, error) {
	var e models.EscrowAccount
	if err := s.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *EscrowService) getByCollaboration(collabID uint) (*models.EscrowAccount, error) {
	var e models.EscrowAccount
	if err := s.db.Where("collaboration_id = ?", collabID).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func getOrCreateWalletTx(tx *gorm.DB, userID uint, walletType, currency string) (*models.Wallet, error) {
	var w models.Wallet
	err := tx.Where("user_id = ? AND type = ?", userID, walletType).First(&w).Error
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	w = models.Wallet{UserID: userID, Type: walletType, Currency: currency}
	if err := tx.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}
