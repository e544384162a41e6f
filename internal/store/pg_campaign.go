package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// GetBillingConfig retrieves a config value
func (s *pgStore) GetBillingConfig(ctx context.Context, key string) (*schema.BillingConfig, error) {
	var cfg schema.BillingConfig
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get billing config: %w", err)
	}

	return &cfg, nil
}

// ListBillingConfig lists all config values ordered by key
func (s *pgStore) ListBillingConfig(ctx context.Context) ([]schema.BillingConfig, error) {
	var cfgs []schema.BillingConfig
	if err := s.db.WithContext(ctx).Order("key ASC").Find(&cfgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list billing config: %w", err)
	}

	return cfgs, nil
}

// UpsertBillingConfig creates or replaces a config value
func (s *pgStore) UpsertBillingConfig(ctx context.Context, cfg *schema.BillingConfig) error {
	columns := []string{"value", "updated_at"}
	if cfg.Description != nil {
		columns = append(columns, "description")
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(cfg).Error
	if err != nil {
		return fmt.Errorf("failed to upsert billing config: %w", err)
	}

	return nil
}

// CreateCampaign inserts a new campaign
func (s *pgStore) CreateCampaign(ctx context.Context, campaign *schema.Campaign) error {
	if err := s.db.WithContext(ctx).Create(campaign).Error; err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// GetCampaign retrieves a campaign by id
func (s *pgStore) GetCampaign(ctx context.Context, id string) (*schema.Campaign, error) {
	var campaign schema.Campaign
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return &campaign, nil
}

// LockCampaign retrieves a campaign with a row lock held until the transaction ends
func (s *pgStore) LockCampaign(ctx context.Context, id string) (*schema.Campaign, error) {
	var campaign schema.Campaign
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock campaign: %w", err)
	}

	return &campaign, nil
}

// AddCampaignSpend increments spent_micro; the CHECK constraint rejects overspending
func (s *pgStore) AddCampaignSpend(ctx context.Context, id string, amountMicro int64) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Campaign{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"spent_micro": gorm.Expr("spent_micro + ?", amountMicro),
			"updated_at":  gorm.Expr("now()"),
		})
	if result.Error != nil {
		if isCheckViolation(result.Error) {
			return domain.ErrCampaignBudgetExceeded
		}
		return fmt.Errorf("failed to add campaign spend: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCampaignNotFound
	}

	return nil
}

// CreateCampaignGrant inserts a grant
func (s *pgStore) CreateCampaignGrant(ctx context.Context, grant *schema.CampaignGrant) error {
	if err := s.db.WithContext(ctx).Create(grant).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrGrantAlreadyIssued
		}
		return fmt.Errorf("failed to create campaign grant: %w", err)
	}
	return nil
}
