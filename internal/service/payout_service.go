package service

import (
	"errors"

	"collably/internal/domain"
	"collably/internal/models"

	"gorm.io/gorm"
)

type PayoutMethodService struct {
	db *gorm.DB
}

func NewPayoutMethodService(db *gorm.DB) *PayoutMethodService {
	return &PayoutMethodService{db: db}
}

type AddPayoutMethodInput struct {
	Type         string // BANK | PAYPAL
	BankName     string
	AccountName  string
	AccountLast4 string
	PaypalEmail  string
}

// Add creates a payout method. The user's first method becomes the default.
func (s *PayoutMethodService) Add(userID uint, in AddPayoutMethodInput) (*models.PayoutMethod, error) {
	if in.Type != domain.PayoutMethodBank && in.Type != domain.PayoutMethodPaypal {
		return nil, domain.ErrInvalidPayoutMethod
	}
	var out models.PayoutMethod
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PayoutMethod{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		out = models.PayoutMethod{
			UserID:       userID,
			Type:         in.Type,
			IsDefault:    count == 0,
			BankName:     in.BankName,
			AccountName:  in.AccountName,
			AccountLast4: in.AccountLast4,
			PaypalEmail:  in.PaypalEmail,
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetDefault unsets any current default and promotes the given method, as
// one atomic step so there is never a moment with two defaults visible.
func (s *PayoutMethodService) SetDefault(userID, methodID uint) (*models.PayoutMethod, error) {
	var out models.PayoutMethod
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", methodID, userID).First(&out).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := tx.Model(&models.PayoutMethod{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		out.IsDefault = true
		return tx.Model(&out).Update("is_default", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the method. Deleting the default promotes an arbitrary
// surviving method in the same transaction; deleting a non-default touches
// nothing else.
func (s *PayoutMethodService) Delete(userID, methodID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var m models.PayoutMethod
		if err := tx.Where("id = ? AND user_id = ?", methodID, userID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		if !m.IsDefault {
			return nil
		}
		var next models.PayoutMethod
		err := tx.Where("user_id = ?", userID).Order("id ASC").First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&next).Update("is_default", true).Error
	})
}

func (s *PayoutMethodService) List(userID uint) ([]models.PayoutMethod, error) {
	var list []models.PayoutMethod
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&list).Error
	return list, err
}

// Verify marks a method usable for withdrawals (admin/KYC boundary).
func (s *PayoutMethodService) Verify(methodID uint) (*models.PayoutMethod, error) {
	var m models.PayoutMethod
	if err := s.db.First(&m, methodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	m.IsVerified = true
	if err := s.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
