package service

import (
	"errors"
	"time"

	"collably/config"
	"collably/internal/domain"
	"collably/internal/models"
	"collably/pkg/money"

	"gorm.io/gorm"
)

// CollaborationService owns the lifecycle state machine. Status only ever
// changes through Transition (or the contract service driving it), and every
// change lands a CollaborationStatusHistory row in the same transaction.
type CollaborationService struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewCollaborationService(cfg *config.Config, db *gorm.DB) *CollaborationService {
	return &CollaborationService{cfg: cfg, db: db}
}

type CreateCollaborationInput struct {
	CampaignID     uint
	InfluencerID   uint
	AmountCents    int64
	Currency       string
	StartDate      *time.Time
	EndDate        *time.Time
	ContentDueDate *time.Time
}

// Create proposes terms to an influencer. The commission rate is resolved
// once here and snapshotted on the row; escrow fee math reads the snapshot,
// never the live config.
func (s *CollaborationService) Create(brandID uint, in CreateCollaborationInput) (*models.Collaboration, error) {
	var campaign models.Campaign
	if err := s.db.First(&campaign, in.CampaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if campaign.BrandID != brandID {
		return nil, domain.ErrForbidden
	}
	var influencer models.User
	if err := s.db.First(&influencer, in.InfluencerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	rate := s.cfg.Platform.CommissionRateBps
	fees := money.CalculateFees(in.AmountCents, rate)
	currency := in.Currency
	if currency == "" {
		currency = s.cfg.Platform.DefaultCurrency
	}
	c := &models.Collaboration{
		CampaignID:            in.CampaignID,
		BrandID:               brandID,
		InfluencerID:          in.InfluencerID,
		Status:                domain.StatusProposalSent,
		AgreedAmountCents:     fees.AmountCents,
		PlatformFeeCents:      fees.PlatformFeeCents,
		InfluencerPayoutCents: fees.NetAmountCents,
		CommissionRateBps:     rate,
		Currency:              currency,
		StartDate:             in.StartDate,
		EndDate:               in.EndDate,
		ContentDueDate:        in.ContentDueDate,
	}
	if err := s.db.Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// Transition applies action to the collaboration on behalf of the actor.
// The status write is guarded on the status read inside the transaction, so
// two concurrent transitions cannot both apply: the loser sees zero rows
// updated and fails with ErrInvalidTransition.
func (s *CollaborationService) Transition(collabID, actorID uint, role, action, reason string) (*models.Collaboration, error) {
	var out models.Collaboration
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var c models.Collaboration
		if err := tx.Preload("Contract").First(&c, collabID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		next, err := domain.ResolveTransition(c.Status, action, role)
		if err != nil {
			return err
		}
		if action == domain.ActionSign && next == domain.StatusContractSigned {
			if c.Contract == nil || !c.Contract.IsFullySigned {
				return domain.ErrContractNotFullySigned
			}
		}
		if err := applyStatus(tx, &c, next, actorID, action, reason); err != nil {
			return err
		}
		return tx.Preload("Contract").First(&out, collabID).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// applyStatus performs the guarded status write plus history append shared by
// Transition and the contract-driven status changes. Caller holds the tx.
func applyStatus(tx *gorm.DB, c *models.Collaboration, next string, actorID uint, action, reason string) error {
	now := time.Now()
	updates := map[string]interface{}{"status": next, "updated_at": now}
	switch next {
	case domain.StatusCompleted:
		updates["completed_at"] = now
	case domain.StatusCancelled:
		updates["cancelled_at"] = now
	}
	res := tx.Model(&models.Collaboration{}).
		Where("id = ? AND status = ?", c.ID, c.Status).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidTransition
	}
	history := &models.CollaborationStatusHistory{
		CollaborationID: c.ID,
		FromStatus:      c.Status,
		ToStatus:        next,
		ActorID:         actorID,
		Action:          action,
		Reason:          reason,
	}
	return tx.Create(history).Error
}

// AvailableActions is a pure lookup on the transition table.
func (s *CollaborationService) AvailableActions(status, role string) []string {
	return domain.AvailableActions(status, role)
}

func (s *CollaborationService) GetByID(id uint) (*models.Collaboration, error) {
	var c models.Collaboration
	if err := s.db.Preload("Contract").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
