package service

import (
	"errors"
	"time"

	"collably/internal/domain"
	"collably/internal/models"

	"gorm.io/gorm"
)

type MilestoneService struct {
	db *gorm.DB
}

func NewMilestoneService(db *gorm.DB) *MilestoneService {
	return &MilestoneService{db: db}
}

type MilestoneInput struct {
	Title       string
	AmountCents int64
}

// CreateBatch creates the full milestone set for a collaboration in one
// transaction. The amounts must sum to the agreed amount within one cent,
// checked at creation time only.
func (s *MilestoneService) CreateBatch(collabID uint, items []MilestoneInput) ([]models.Milestone, error) {
	var out []models.Milestone
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var c models.Collaboration
		if err := tx.First(&c, collabID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		var sum int64
		for _, it := range items {
			sum += it.AmountCents
		}
		diff := sum - c.AgreedAmountCents
		if diff < -1 || diff > 1 {
			return domain.ErrAmountMismatch
		}
		out = make([]models.Milestone, 0, len(items))
		for i, it := range items {
			m := models.Milestone{
				CollaborationID: collabID,
				Title:           it.Title,
				Position:        i + 1,
				AmountCents:     it.AmountCents,
				Status:          domain.MilestoneStatusPending,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			out = append(out, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus moves a milestone between PENDING, APPROVED, PAID and
// REJECTED, stamping approvedAt / paidAt as it goes. It never moves money;
// a PAID transition is driven by the escrow release that references the
// milestone.
func (s *MilestoneService) UpdateStatus(milestoneID uint, status string) (*models.Milestone, error) {
	switch status {
	case domain.MilestoneStatusPending, domain.MilestoneStatusApproved,
		domain.MilestoneStatusPaid, domain.MilestoneStatusRejected:
	default:
		return nil, domain.ErrInvalidState
	}
	var m models.Milestone
	if err := s.db.First(&m, milestoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	now := time.Now()
	m.Status = status
	switch status {
	case domain.MilestoneStatusApproved:
		m.ApprovedAt = &now
	case domain.MilestoneStatusPaid:
		m.PaidAt = &now
	}
	if err := s.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
