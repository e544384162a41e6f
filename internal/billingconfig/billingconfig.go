package billingconfig

import (
	"context"
	"fmt"
	"strconv"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/adapter"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// Known keys
const (
	KeyFoundationBps    = "revenue.foundation_bps"
	KeyCommonsBps       = "revenue.commons_bps"
	KeyCommunityPoolBps = "revenue.community_pool_bps"

	KeyAgentDailyCapMicro        = "budget.default_daily_cap_micro"
	KeyAgentRefillThresholdMicro = "budget.default_refill_threshold_micro"

	KeyOverrunAlertThresholdMicro = "ledger.overrun_alert_threshold_micro"
)

// Reader reads runtime-tunable billing values
//
//go:generate mockgen -source=billingconfig.go -destination=../mocks/billing_config.go -package=mocks -mock_names=Reader=MockBillingConfigReader,Editor=MockBillingConfigEditor
type Reader interface {
	// GetInt64 returns the integer value of key, or def when the key is not set
	GetInt64(ctx context.Context, key string, def int64) (int64, error)
}

// Editor lists and changes billing values from the operations surfaces
type Editor interface {
	Reader
	Get(ctx context.Context, key string) (string, bool, error)
	List(ctx context.Context) ([]schema.BillingConfig, error)
	Set(ctx context.Context, key, value string, description *string) error
}

// Service reads and writes the billing_config table
type Service struct {
	store store.Store
	clock adapter.Clock
}

// NewService creates a billing config service
func NewService(st store.Store, clock adapter.Clock) *Service {
	return &Service{store: st, clock: clock}
}

// Get returns the raw value of key and whether it is set
func (s *Service) Get(ctx context.Context, key string) (string, bool, error) {
	cfg, err := s.store.GetBillingConfig(ctx, key)
	if err != nil {
		return "", false, err
	}
	if cfg == nil {
		return "", false, nil
	}
	return cfg.Value, true, nil
}

func (s *Service) GetInt64(ctx context.Context, key string, def int64) (int64, error) {
	value, ok, err := s.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("billing config %s: value %q is not an integer: %w", key, value, err)
	}
	return n, nil
}

// List returns every config value ordered by key
func (s *Service) List(ctx context.Context) ([]schema.BillingConfig, error) {
	return s.store.ListBillingConfig(ctx)
}

// Set writes a config value. Values of known integer keys are validated before they are stored.
func (s *Service) Set(ctx context.Context, key, value string, description *string) error {
	if key == "" {
		return fmt.Errorf("%w: key is required", domain.ErrInvalidArgument)
	}
	if err := validate(key, value); err != nil {
		return err
	}

	return s.store.UpsertBillingConfig(ctx, &schema.BillingConfig{
		Key:         key,
		Value:       value,
		Description: description,
		UpdatedAt:   s.clock.Now(),
	})
}

func validate(key, value string) error {
	switch key {
	case KeyFoundationBps, KeyCommonsBps, KeyCommunityPoolBps:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 || n > domain.BASIS_POINTS_DENOMINATOR {
			return fmt.Errorf("%w: %s must be an integer between 0 and %d", domain.ErrInvalidArgument, key, domain.BASIS_POINTS_DENOMINATOR)
		}
	case KeyAgentDailyCapMicro, KeyAgentRefillThresholdMicro, KeyOverrunAlertThresholdMicro:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidArgument, key)
		}
	}
	return nil
}

// RevenueSplit is the share of settled revenue credited to each system account, in basis points
type RevenueSplit struct {
	FoundationBps    int64
	CommonsBps       int64
	CommunityPoolBps int64
}

// Total returns the sum of all shares
func (r RevenueSplit) Total() int64 {
	return r.FoundationBps + r.CommonsBps + r.CommunityPoolBps
}

// GetRevenueSplit reads the revenue split; unset shares are zero
func GetRevenueSplit(ctx context.Context, r Reader) (RevenueSplit, error) {
	var split RevenueSplit
	var err error

	if split.FoundationBps, err = r.GetInt64(ctx, KeyFoundationBps, 0); err != nil {
		return RevenueSplit{}, err
	}
	if split.CommonsBps, err = r.GetInt64(ctx, KeyCommonsBps, 0); err != nil {
		return RevenueSplit{}, err
	}
	if split.CommunityPoolBps, err = r.GetInt64(ctx, KeyCommunityPoolBps, 0); err != nil {
		return RevenueSplit{}, err
	}
	if split.Total() > domain.BASIS_POINTS_DENOMINATOR {
		return RevenueSplit{}, fmt.Errorf("revenue split totals %d bps, more than %d", split.Total(), domain.BASIS_POINTS_DENOMINATOR)
	}

	return split, nil
}
