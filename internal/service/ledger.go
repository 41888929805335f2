package service

import (
	"collably/internal/domain"
	"collably/internal/models"

	"gorm.io/gorm"
)

// Ledger helpers shared by the wallet and escrow services. Every balance
// change happens through these, inside the caller's transaction, and lands
// an append-only WalletTransaction row carrying the post-movement balance.

// creditWallet adds amountCents to the wallet and records the movement.
func creditWallet(tx *gorm.DB, walletID uint, amountCents int64, txType, reference, description string) (int64, error) {
	if err := tx.Model(&models.Wallet{}).Where("id = ?", walletID).
		Update("balance_cents", gorm.Expr("balance_cents + ?", amountCents)).Error; err != nil {
		return 0, err
	}
	return recordMovement(tx, walletID, amountCents, txType, reference, description)
}

// debitWallet subtracts amountCents, guarded so the balance can never go
// negative: the WHERE clause re-checks the balance at write time, so a
// concurrent debit that would overdraw sees zero rows updated and fails
// with ErrInsufficientBalance instead of corrupting the balance.
func debitWallet(tx *gorm.DB, walletID uint, amountCents int64, txType, reference, description string) (int64, error) {
	res := tx.Model(&models.Wallet{}).
		Where("id = ? AND balance_cents >= ?", walletID, amountCents).
		Update("balance_cents", gorm.Expr("balance_cents - ?", amountCents))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, domain.ErrInsufficientBalance
	}
	return recordMovement(tx, walletID, -amountCents, txType, reference, description)
}

// auditWallet records a movement that does not touch the wallet balance
// (escrow-side activity surfaced in the owner's ledger).
func auditWallet(tx *gorm.DB, walletID uint, amountCents int64, txType, reference, description string) error {
	_, err := recordMovement(tx, walletID, amountCents, txType, reference, description)
	return err
}

func recordMovement(tx *gorm.DB, walletID uint, amountCents int64, txType, reference, description string) (int64, error) {
	var w models.Wallet
	if err := tx.First(&w, walletID).Error; err != nil {
		return 0, err
	}
	row := &models.WalletTransaction{
		WalletID:          walletID,
		Type:              txType,
		AmountCents:       amountCents,
		BalanceAfterCents: w.BalanceCents,
		Reference:         reference,
		Description:       description,
	}
	if err := tx.Create(row).Error; err != nil {
		return 0, err
	}
	return w.BalanceCents, nil
}
