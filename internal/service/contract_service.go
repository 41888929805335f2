package service

import (
	"errors"
	"fmt"
	"time"

	"collably/internal/domain"
	"collably/internal/models"
	"collably/pkg/money"

	"gorm.io/gorm"
)

type ContractService struct {
	db *gorm.DB
}

func NewContractService(db *gorm.DB) *ContractService {
	return &ContractService{db: db}
}

type GenerateContractInput struct {
	TemplateID  *uint
	CustomTerms string
}

// Generate creates the contract and drives the collaboration to
// CONTRACT_PENDING as one committed unit.
func (s *ContractService) Generate(collabID, actorID uint, role string, in GenerateContractInput) (*models.Contract, error) {
	var out models.Contract
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var c models.Collaboration
		if err := tx.First(&c, collabID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		next, err := domain.ResolveTransition(c.Status, domain.ActionGenerateContract, role)
		if err != nil {
			return err
		}
		terms := in.CustomTerms
		if in.TemplateID != nil {
			var tpl models.ContractTemplate
			if err := tx.First(&tpl, *in.TemplateID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrNotFound
				}
				return err
			}
			terms = tpl.Body
		}
		if terms == "" {
			terms = defaultTerms(&c)
		}
		out = models.Contract{
			CollaborationID: c.ID,
			TemplateID:      in.TemplateID,
			Terms:           terms,
		}
		if err := tx.Create(&out).Error; err != nil {
			return err
		}
		return applyStatus(tx, &c, next, actorID, domain.ActionGenerateContract, "contract generated")
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type SignContractInput struct {
	Signature string
	IPAddress string
}

// Sign records one party's signature. When the second signature lands the
// contract flips to fully signed and the collaboration advances to
// CONTRACT_SIGNED in the same transaction.
func (s *ContractService) Sign(collabID, userID uint, role string, in SignContractInput) (*models.Contract, error) {
	if role != domain.RoleBrand && role != domain.RoleInfluencer {
		return nil, domain.ErrForbidden
	}
	var out models.Contract
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var contract models.Contract
		if err := tx.Where("collaboration_id = ?", collabID).First(&contract).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		now := time.Now()
		switch role {
		case domain.RoleBrand:
			if contract.BrandSignedAt != nil {
				return domain.ErrAlreadySigned
			}
			contract.BrandSignedAt = &now
			contract.BrandSignature = in.Signature
			contract.BrandSignIP = in.IPAddress
		case domain.RoleInfluencer:
			if contract.InfluencerSignedAt != nil {
				return domain.ErrAlreadySigned
			}
			contract.InfluencerSignedAt = &now
			contract.InfluencerSignature = in.Signature
			contract.InfluencerSignIP = in.IPAddress
		}
		contract.IsFullySigned = contract.BrandSignedAt != nil && contract.InfluencerSignedAt != nil
		if err := tx.Save(&contract).Error; err != nil {
			return err
		}
		if contract.IsFullySigned {
			var c models.Collaboration
			if err := tx.First(&c, collabID).Error; err != nil {
				return err
			}
			if c.Status == domain.StatusContractPending {
				if err := applyStatus(tx, &c, domain.StatusContractSigned, userID, domain.ActionSign, "both parties signed"); err != nil {
					return err
				}
			}
		}
		out = contract
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func defaultTerms(c *models.Collaboration) string {
	return fmt.Sprintf(
		"Collaboration agreement for campaign %d.\nAgreed amount: %s %s.\nPlatform fee: %s %s.\nInfluencer payout: %s %s.",
		c.CampaignID,
		money.Format(c.AgreedAmountCents), c.Currency,
		money.Format(c.PlatformFeeCents), c.Currency,
		money.Format(c.InfluencerPayoutCents), c.Currency,
	)
}
