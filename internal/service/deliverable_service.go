package service

import (
	"errors"
	"time"

	"collably/internal/domain"
	"collably/internal/models"

	"gorm.io/gorm"
)

type DeliverableService struct {
	db *gorm.DB
}

func NewDeliverableService(db *gorm.DB) *DeliverableService {
	return &DeliverableService{db: db}
}

// Create registers a required piece of content for a collaboration.
func (s *DeliverableService) Create(collabID uint, title, description string) (*models.Deliverable, error) {
	var c models.Collaboration
	if err := s.db.First(&c, collabID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	d := &models.Deliverable{
		CollaborationID: collabID,
		Title:           title,
		Description:     description,
		CurrentVersion:  0,
		Status:          domain.DeliverableStatusPending,
	}
	if err := s.db.Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

type SubmitDeliverableInput struct {
	MediaURLs []string
	Caption   string
}

// Submit creates the next immutable version and flags all earlier versions
// superseded in the same transaction. Versions are never deleted.
func (s *DeliverableService) Submit(deliverableID uint, in SubmitDeliverableInput) (*models.Deliverable, error) {
	var out models.Deliverable
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var d models.Deliverable
		if err := tx.First(&d, deliverableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		newVersion := d.CurrentVersion + 1
		if err := tx.Model(&models.DeliverableVersion{}).
			Where("deliverable_id = ? AND version < ?", d.ID, newVersion).
			Update("superseded", true).Error; err != nil {
			return err
		}
		v := models.DeliverableVersion{
			DeliverableID: d.ID,
			Version:       newVersion,
			MediaURLs:     in.MediaURLs,
			Caption:       in.Caption,
			SubmittedAt:   time.Now(),
		}
		if err := tx.Create(&v).Error; err != nil {
			return err
		}
		d.CurrentVersion = newVersion
		d.Status = domain.DeliverableStatusSubmitted
		if err := tx.Save(&d).Error; err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type ReviewDeliverableInput struct {
	Decision string // APPROVED, REVISION_NEEDED, REJECTED
	Feedback string
}

// Review acts on the current version only; it never creates a new one.
// REVISION_NEEDED is stored as REVISION_REQUESTED.
func (s *DeliverableService) Review(deliverableID, reviewerID uint, in ReviewDeliverableInput) (*models.Deliverable, error) {
	var status string
	switch in.Decision {
	case domain.ReviewDecisionApproved:
		status = domain.DeliverableStatusApproved
	case domain.ReviewDecisionRevisionNeeded:
		status = domain.DeliverableStatusRevisionRequested
	case domain.ReviewDecisionRejected:
		status = domain.DeliverableStatusRejected
	default:
		return nil, domain.ErrInvalidState
	}
	var out models.Deliverable
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var d models.Deliverable
		if err := tx.First(&d, deliverableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if d.CurrentVersion == 0 {
			return domain.ErrInvalidState
		}
		now := time.Now()
		if err := tx.Model(&models.DeliverableVersion{}).
			Where("deliverable_id = ? AND version = ?", d.ID, d.CurrentVersion).
			Updates(map[string]interface{}{
				"reviewed":    true,
				"reviewer_id": reviewerID,
				"feedback":    in.Feedback,
				"reviewed_at": now,
			}).Error; err != nil {
			return err
		}
		d.Status = status
		if status == domain.DeliverableStatusApproved {
			d.ApprovedAt = &now
		}
		if err := tx.Save(&d).Error; err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Versions returns every submitted version, newest first.
func (s *DeliverableService) Versions(deliverableID uint) ([]models.DeliverableVersion, error) {
	var d models.Deliverable
	if err := s.db.First(&d, deliverableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var list []models.DeliverableVersion
	err := s.db.Where("deliverable_id = ?", deliverableID).Order("version DESC").Find(&list).Error
	return list, err
}
