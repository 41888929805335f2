package service

import (
	"errors"
	"fmt"

	"collably/config"
	"collably/internal/domain"
	"collably/internal/models"

	"gorm.io/gorm"
)

type WalletService struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewWalletService(cfg *config.Config, db *gorm.DB) *WalletService {
	return &WalletService{cfg: cfg, db: db}
}

// GetOrCreate lazily creates the wallet on first access. Safe under
// concurrent first access: the (user, type) unique index makes the loser of
// a create race fall back to reading the winner's row.
func (s *WalletService) GetOrCreate(userID uint, walletType string) (*models.Wallet, error) {
	var w models.Wallet
	err := s.db.Where("user_id = ? AND type = ?", userID, walletType).First(&w).Error
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	w = models.Wallet{UserID: userID, Type: walletType, Currency: s.cfg.Platform.DefaultCurrency}
	if err := s.db.Create(&w).Error; err != nil {
		var existing models.Wallet
		if err2 := s.db.Where("user_id = ? AND type = ?", userID, walletType).First(&existing).Error; err2 == nil {
			return &existing, nil
		}
		return nil, err
	}
	return &w, nil
}

type Balance struct {
	AvailableCents int64  `json:"available_cents"`
	PendingCents   int64  `json:"pending_cents"`
	Currency       string `json:"currency"`
}

// Balance is a pure read; it never creates a wallet and reports zeros in the
// default currency when none exists yet.
func (s *WalletService) Balance(userID uint) (Balance, error) {
	var w models.Wallet
	err := s.db.Where("user_id = ?", userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Balance{Currency: s.cfg.Platform.DefaultCurrency}, nil
	}
	if err != nil {
		return Balance{}, err
	}
	return Balance{
		AvailableCents: w.BalanceCents,
		PendingCents:   w.PendingBalanceCents,
		Currency:       w.Currency,
	}, nil
}

// Deposit credits funds entering the platform (the payment gateway boundary
// sits outside this engine).
func (s *WalletService) Deposit(userID uint, walletType string, amountCents int64, reference string) (*models.Wallet, error) {
	w, err := s.GetOrCreate(userID, walletType)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		_, err := creditWallet(tx, w.ID, amountCents, domain.TxTypeDeposit, reference, "funds deposited")
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrCreate(userID, walletType)
}

type WithdrawInput struct {
	AmountCents    int64
	PayoutMethodID uint
}

// Withdraw debits the wallet toward a verified payout method owned by the
// user. The debit and its ledger row commit atomically.
func (s *WalletService) Withdraw(userID uint, in WithdrawInput) (*models.WalletTransaction, error) {
	var out models.WalletTransaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var w models.Wallet
		if err := tx.Where("user_id = ?", userID).First(&w).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("wallet not found: %w", domain.ErrNotFound)
			}
			return err
		}
		var method models.PayoutMethod
		if err := tx.Where("id = ? AND user_id = ?", in.PayoutMethodID, userID).First(&method).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrInvalidPayoutMethod
			}
			return err
		}
		if !method.IsVerified {
			return domain.ErrPayoutMethodNotVerified
		}
		if in.AmountCents > w.BalanceCents {
			return domain.ErrInsufficientBalance
		}
		ref := fmt.Sprintf("payout_method_%d", method.ID)
		if _, err := debitWallet(tx, w.ID, in.AmountCents, domain.TxTypeWithdrawal, ref, "withdrawal to payout method"); err != nil {
			return err
		}
		return tx.Where("wallet_id = ?", w.ID).Order("id DESC").First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Transactions lists a user's ledger rows newest-first.
func (s *WalletService) Transactions(userID uint, limit, offset int) ([]models.WalletTransaction, error) {
	var w models.Wallet
	err := s.db.Where("user_id = ?", userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.WalletTransaction{}, nil
	}
	if err != nil {
		return nil, err
	}
	var list []models.WalletTransaction
	err = s.db.Where("wallet_id = ?", w.ID).Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}
