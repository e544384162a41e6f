package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func createTestAccount(t *testing.T, store Store, entityType domain.EntityType) *schema.CreditAccount {
	t.Helper()
	account, err := store.CreateAccount(context.Background(), CreateAccountInput{
		ID:         uuid.NewString(),
		EntityType: entityType,
		EntityID:   "entity-" + uuid.NewString(),
	})
	require.NoError(t, err)
	return account
}

func buildTestLot(accountID string, amount int64, origin domain.LotOrigin, expiresAt *time.Time) *schema.CreditLot {
	return &schema.CreditLot{
		ID:             uuid.NewString(),
		AccountID:      accountID,
		AmountMicro:    amount,
		RemainingMicro: amount,
		Origin:         origin,
		ExpiresAt:      expiresAt,
	}
}

func createTestLot(t *testing.T, store Store, accountID string, amount int64, expiresAt *time.Time) *schema.CreditLot {
	t.Helper()
	lot := buildTestLot(accountID, amount, domain.LotOriginDeposit, expiresAt)
	require.NoError(t, store.CreateLot(context.Background(), lot))
	return lot
}

func createTestReservation(t *testing.T, store Store, accountID string, amount int64, expiresAt time.Time) *schema.CreditReservation {
	t.Helper()
	reservation := &schema.CreditReservation{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		AmountMicro: amount,
		State:       domain.ReservationStateActive,
		ExpiresAt:   expiresAt,
	}
	require.NoError(t, store.CreateReservation(context.Background(), reservation))
	return reservation
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func stringPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

// =============================================================================
// Test: Accounts
// =============================================================================

func testAccounts(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get account", func(t *testing.T) {
		account := createTestAccount(t, store, domain.EntityTypeUser)

		got, err := store.GetAccount(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.EntityTypeUser, got.EntityType)
		assert.Equal(t, account.EntityID, got.EntityID)

		byEntity, err := store.GetAccountByEntity(ctx, domain.EntityTypeUser, account.EntityID)
		require.NoError(t, err)
		require.NotNil(t, byEntity)
		assert.Equal(t, account.ID, byEntity.ID)
	})

	t.Run("missing account returns nil", func(t *testing.T) {
		got, err := store.GetAccount(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)

		locked, err := store.LockAccount(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, locked)
	})

	t.Run("system account is unique per entity", func(t *testing.T) {
		first, err := store.EnsureSystemAccount(ctx, CreateAccountInput{
			ID:         uuid.NewString(),
			EntityType: domain.EntityTypeFoundation,
			EntityID:   domain.SYSTEM_ENTITY_ID,
		})
		require.NoError(t, err)

		second, err := store.EnsureSystemAccount(ctx, CreateAccountInput{
			ID:         uuid.NewString(),
			EntityType: domain.EntityTypeFoundation,
			EntityID:   domain.SYSTEM_ENTITY_ID,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("user entities may hold several accounts", func(t *testing.T) {
		entityID := "shared-" + uuid.NewString()
		for range 2 {
			_, err := store.CreateAccount(ctx, CreateAccountInput{
				ID:         uuid.NewString(),
				EntityType: domain.EntityTypeUser,
				EntityID:   entityID,
			})
			require.NoError(t, err)
		}
	})
}

// =============================================================================
// Test: Lots
// =============================================================================

func testLots(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("consumable lots are ordered by expiry then age", func(t *testing.T) {
		account := createTestAccount(t, store, domain.EntityTypeUser)

		permanent := createTestLot(t, store, account.ID, 1_000_000, nil)
		late := createTestLot(t, store, account.ID, 2_000_000, timePtr(now.Add(48*time.Hour)))
		soon := createTestLot(t, store, account.ID, 3_000_000, timePtr(now.Add(1*time.Hour)))
		expired := createTestLot(t, store, account.ID, 4_000_000, timePtr(now.Add(-1*time.Hour)))

		lots, err := store.LockConsumableLots(ctx, account.ID, now)
		require.NoError(t, err)
		require.Len(t, lots, 3)
		assert.Equal(t, soon.ID, lots[0].ID)
		assert.Equal(t, late.ID, lots[1].ID)
		assert.Equal(t, permanent.ID, lots[2].ID)

		expiredLots, err := store.LockExpiredLots(ctx, account.ID, now)
		require.NoError(t, err)
		require.Len(t, expiredLots, 1)
		assert.Equal(t, expired.ID, expiredLots[0].ID)

		spendable, err := store.SumSpendableLots(ctx, account.ID, now)
		require.NoError(t, err)
		assert.Equal(t, int64(6_000_000), spendable)

		accounts, err := store.ListAccountsWithExpiredLots(ctx, now, 100)
		require.NoError(t, err)
		assert.Contains(t, accounts, account.ID)

		all, err := store.ListAccountLots(ctx, account.ID)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("source ref is unique", func(t *testing.T) {
		account := createTestAccount(t, store, domain.EntityTypeUser)
		ref := "payment-" + uuid.NewString()

		lot := buildTestLot(account.ID, 5_000_000, domain.LotOriginDeposit, nil)
		lot.SourceRef = stringPtr(ref)
		require.NoError(t, store.CreateLot(ctx, lot))

		got, err := store.GetLotBySourceRef(ctx, ref)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, lot.ID, got.ID)

		err = store.Transaction(ctx, func(tx Store) error {
			dup := buildTestLot(account.ID, 5_000_000, domain.LotOriginDeposit, nil)
			dup.SourceRef = stringPtr(ref)
			return tx.CreateLot(ctx, dup)
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateSourceRef)
	})

	t.Run("a lot cannot be overdrawn", func(t *testing.T) {
		account := createTestAccount(t, store, domain.EntityTypeUser)
		lot := createTestLot(t, store, account.ID, 1_000_000, nil)

		err := store.Transaction(ctx, func(tx Store) error {
			return tx.CreateDebit(ctx, DebitInput{
				Debit: schema.CreditDebit{
					ID:          uuid.NewString(),
					AccountID:   account.ID,
					AmountMicro: 2_000_000,
					Reason:      domain.DebitReasonDirect,
				},
				Consumptions: []schema.LotConsumption{{LotID: lot.ID, AmountMicro: 2_000_000}},
			})
		})
		assert.Error(t, err)

		lots, err := store.ListAccountLots(ctx, account.ID)
		require.NoError(t, err)
		require.Len(t, lots, 1)
		assert.Equal(t, int64(1_000_000), lots[0].RemainingMicro)
	})
}

// =============================================================================
// Test: Debits
// =============================================================================

func testCreateDebit(t *testing.T, store Store) {
	ctx := context.Background()

	account := createTestAccount(t, store, domain.EntityTypeUser)
	first := createTestLot(t, store, account.ID, 1_000_000, nil)
	second := createTestLot(t, store, account.ID, 3_000_000, nil)

	err := store.CreateDebit(ctx, DebitInput{
		Debit: schema.CreditDebit{
			ID:          uuid.NewString(),
			AccountID:   account.ID,
			AmountMicro: 2_500_000,
			Reason:      domain.DebitReasonDirect,
		},
		Consumptions: []schema.LotConsumption{
			{LotID: first.ID, AmountMicro: 1_000_000},
			{LotID: second.ID, AmountMicro: 1_500_000},
		},
	})
	require.NoError(t, err)

	lots, err := store.ListAccountLots(ctx, account.ID)
	require.NoError(t, err)
	remaining := map[string]int64{}
	for _, lot := range lots {
		remaining[lot.ID] = lot.RemainingMicro
	}
	assert.Equal(t, int64(0), remaining[first.ID])
	assert.Equal(t, int64(1_500_000), remaining[second.ID])

	totals, err := store.GetConservationTotals(ctx, &account.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(4_000_000), totals.CreditedMicro.IntPart())
	assert.Equal(t, int64(2_500_000), totals.DebitedMicro.IntPart())
	assert.Equal(t, int64(1_500_000), totals.RemainingMicro.IntPart())
	assert.Equal(t, int64(2_500_000), totals.ConsumedMicro.IntPart())
	assert.True(t, totals.RemainingMicro.Equal(totals.CreditedMicro.Sub(totals.DebitedMicro)))
}

// =============================================================================
// Test: Reservations
// =============================================================================

func testReservations(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("active sums ignore expired holds", func(t *testing.T) {
		account := createTestAccount(t, store, domain.EntityTypeUser)
		createTestReservation(t, store, account.ID, 1_000_000, now.Add(5*time.Minute))
		createTestReservation(t, store, account.ID, 2_000_000, now.Add(-1*time.Minute))

		sum, err := store.SumActiveReservations(ctx, account.ID, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1_000_000), sum)

		count, err := store.CountActiveReservations(ctx, account.ID, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("expire moves lapsed holds to expired", func(t *testing.T) {
		account := createTestAccount(t, store, domain.EntityTypeUser)
		live := createTestReservation(t, store, account.ID, 1_000_000, now.Add(5*time.Minute))
		lapsed := createTestReservation(t, store, account.ID, 2_000_000, now.Add(-1*time.Minute))

		moved, err := store.ExpireReservations(ctx, now, 1000)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, moved, int64(1))

		got, err := store.GetReservation(ctx, lapsed.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStateExpired, got.State)

		got, err = store.GetReservation(ctx, live.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationStateActive, got.State)
	})

	t.Run("finalization id is unique across reservations", func(t *testing.T) {
		account := createTestAccount(t, store, domain.EntityTypeUser)
		first := createTestReservation(t, store, account.ID, 1_000_000, now.Add(5*time.Minute))
		second := createTestReservation(t, store, account.ID, 1_000_000, now.Add(5*time.Minute))
		finalizationID := "fin-" + uuid.NewString()

		first.State = domain.ReservationStateFinalized
		first.FinalizationID = stringPtr(finalizationID)
		first.FinalizedMicro = int64Ptr(500_000)
		first.ReleasedMicro = int64Ptr(500_000)
		first.FinalizedAt = timePtr(now)
		first.UpdatedAt = now
		require.NoError(t, store.UpdateReservation(ctx, first))

		got, err := store.GetReservationByFinalizationID(ctx, finalizationID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, int64(500_000), *got.FinalizedMicro)

		err = store.Transaction(ctx, func(tx Store) error {
			second.State = domain.ReservationStateFinalized
			second.FinalizationID = stringPtr(finalizationID)
			second.UpdatedAt = now
			return tx.UpdateReservation(ctx, second)
		})
		assert.ErrorIs(t, err, domain.ErrFinalizationConflict)
	})
}

// =============================================================================
// Test: Usage events
// =============================================================================

func testUsageEvents(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	account := createTestAccount(t, store, domain.EntityTypeUser)
	communityID := "community-" + uuid.NewString()

	var finalizationIDs []string
	for i := range 3 {
		reservation := createTestReservation(t, store, account.ID, 1_000_000, now.Add(5*time.Minute))
		finalizationID := fmt.Sprintf("fin-%d-%s", i, uuid.NewString())
		finalizationIDs = append(finalizationIDs, finalizationID)

		event := &schema.UsageEvent{
			EventID:                 ulid.Make().String(),
			AccountID:               account.ID,
			CommunityID:             stringPtr(communityID),
			TokensInput:             100,
			TokensOutput:            50,
			AmountMicro:             int64(100_000 * (i + 1)),
			ReservationID:           reservation.ID,
			FinalizationID:          finalizationID,
			ConservationGuardResult: schema.ConservationGuardPassed,
			CreatedAt:               now.Add(time.Duration(i) * time.Second),
		}
		if i == 2 {
			event.ConservationGuardResult = schema.ConservationGuardFailed
			event.ConservationGuardViolations = datatypes.JSON(`[{"invariant":"lot_balance"}]`)
		}
		require.NoError(t, store.CreateUsageEvent(ctx, event))
	}

	t.Run("list newest first", func(t *testing.T) {
		events, total, err := store.ListUsageEvents(ctx, UsageEventFilter{AccountID: &account.ID})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, events, 3)
		assert.Equal(t, finalizationIDs[2], events[0].FinalizationID)
		assert.Equal(t, finalizationIDs[0], events[2].FinalizationID)
	})

	t.Run("filter by community and guard failure", func(t *testing.T) {
		events, total, err := store.ListUsageEvents(ctx, UsageEventFilter{
			CommunityID:     &communityID,
			GuardFailedOnly: true,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, events, 1)
		assert.Equal(t, schema.ConservationGuardFailed, events[0].ConservationGuardResult)
	})

	t.Run("pagination", func(t *testing.T) {
		events, total, err := store.ListUsageEvents(ctx, UsageEventFilter{AccountID: &account.ID, Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, events, 1)
		assert.Equal(t, finalizationIDs[0], events[0].FinalizationID)
	})

	t.Run("get by finalization id", func(t *testing.T) {
		event, err := store.GetUsageEventByFinalizationID(ctx, finalizationIDs[1])
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, int64(200_000), event.AmountMicro)

		missing, err := store.GetUsageEventByFinalizationID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate finalization id is rejected", func(t *testing.T) {
		reservation := createTestReservation(t, store, account.ID, 1_000_000, now.Add(5*time.Minute))
		err := store.Transaction(ctx, func(tx Store) error {
			return tx.CreateUsageEvent(ctx, &schema.UsageEvent{
				EventID:                 ulid.Make().String(),
				AccountID:               account.ID,
				AmountMicro:             1,
				ReservationID:           reservation.ID,
				FinalizationID:          finalizationIDs[0],
				ConservationGuardResult: schema.ConservationGuardPassed,
			})
		})
		assert.ErrorIs(t, err, domain.ErrFinalizationConflict)
	})

	t.Run("events cannot be updated or deleted", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			return tx.(*pgStore).db.Exec("UPDATE usage_events SET amount_micro = 0 WHERE finalization_id = ?", finalizationIDs[0]).Error
		})
		assert.Error(t, err)

		err = store.Transaction(ctx, func(tx Store) error {
			return tx.(*pgStore).db.Exec("DELETE FROM usage_events WHERE finalization_id = ?", finalizationIDs[0]).Error
		})
		assert.Error(t, err)

		event, err := store.GetUsageEventByFinalizationID(ctx, finalizationIDs[0])
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, int64(100_000), event.AmountMicro)
	})
}

// =============================================================================
// Test: Conservation
// =============================================================================

func testConservation(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("holds beyond remaining credit are a shortfall", func(t *testing.T) {
		healthy := createTestAccount(t, store, domain.EntityTypeUser)
		createTestLot(t, store, healthy.ID, 5_000_000, nil)
		createTestReservation(t, store, healthy.ID, 4_000_000, now.Add(5*time.Minute))

		short := createTestAccount(t, store, domain.EntityTypeUser)
		createTestLot(t, store, short.ID, 1_000_000, nil)
		createTestReservation(t, store, short.ID, 3_000_000, now.Add(5*time.Minute))

		shortfalls, err := store.ListAccountShortfalls(ctx, now, 1000)
		require.NoError(t, err)

		found := map[string]AccountShortfall{}
		for _, s := range shortfalls {
			found[s.AccountID] = s
		}
		require.Contains(t, found, short.ID)
		assert.NotContains(t, found, healthy.ID)
		assert.Equal(t, int64(1_000_000), found[short.ID].RemainingMicro.IntPart())
		assert.Equal(t, int64(3_000_000), found[short.ID].ActiveReservationsMicro.IntPart())
	})

	t.Run("system totals balance", func(t *testing.T) {
		totals, err := store.GetConservationTotals(ctx, nil, now)
		require.NoError(t, err)
		assert.True(t, totals.RemainingMicro.Equal(totals.CreditedMicro.Sub(totals.DebitedMicro)))
		assert.True(t, totals.ConsumedMicro.Equal(totals.DebitedMicro))
	})
}

// =============================================================================
// Test: Agent budgets
// =============================================================================

func testAgentBudgets(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()
	day := domain.StartOfUTCDay(now)

	agent := createTestAccount(t, store, domain.EntityTypeAgent)

	t.Run("upsert and get budget", func(t *testing.T) {
		missing, err := store.GetAgentBudget(ctx, agent.ID)
		require.NoError(t, err)
		assert.Nil(t, missing)

		require.NoError(t, store.UpsertAgentBudget(ctx, &schema.AgentBudget{
			AccountID:            agent.ID,
			DailyCapMicro:        5_000_000,
			RefillThresholdMicro: 500_000,
			UpdatedAt:            now,
		}))
		require.NoError(t, store.UpsertAgentBudget(ctx, &schema.AgentBudget{
			AccountID:            agent.ID,
			DailyCapMicro:        7_000_000,
			RefillThresholdMicro: 700_000,
			UpdatedAt:            now,
		}))

		budget, err := store.GetAgentBudget(ctx, agent.ID)
		require.NoError(t, err)
		require.NotNil(t, budget)
		assert.Equal(t, int64(7_000_000), budget.DailyCapMicro)
		assert.Equal(t, int64(700_000), budget.RefillThresholdMicro)
	})

	t.Run("spend records are idempotent per reservation", func(t *testing.T) {
		reservation := createTestReservation(t, store, agent.ID, 1_000_000, now.Add(5*time.Minute))

		created, err := store.CreateAgentSpendRecord(ctx, &schema.AgentSpendRecord{
			AccountID:     agent.ID,
			ReservationID: reservation.ID,
			SpendDate:     day,
			AmountMicro:   800_000,
		})
		require.NoError(t, err)
		assert.True(t, created)

		created, err = store.CreateAgentSpendRecord(ctx, &schema.AgentSpendRecord{
			AccountID:     agent.ID,
			ReservationID: reservation.ID,
			SpendDate:     day,
			AmountMicro:   800_000,
		})
		require.NoError(t, err)
		assert.False(t, created)

		spent, err := store.SumAgentSpend(ctx, agent.ID, now)
		require.NoError(t, err)
		assert.Equal(t, int64(800_000), spent)

		spent, err = store.SumAgentSpend(ctx, agent.ID, now.Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(0), spent)
	})

	t.Run("active agent reservations within the day", func(t *testing.T) {
		other := createTestAccount(t, store, domain.EntityTypeAgent)
		hold := &schema.CreditReservation{
			ID:          uuid.NewString(),
			AccountID:   other.ID,
			AmountMicro: 300_000,
			State:       domain.ReservationStateActive,
			IsAgent:     true,
			ExpiresAt:   now.Add(5 * time.Minute),
		}
		require.NoError(t, store.CreateReservation(ctx, hold))
		createTestReservation(t, store, other.ID, 900_000, now.Add(5*time.Minute))

		sum, err := store.SumAgentActiveReservations(ctx, other.ID, day, day.Add(24*time.Hour), now)
		require.NoError(t, err)
		assert.Equal(t, int64(300_000), sum)
	})
}

// =============================================================================
// Test: Dead-letter queue
// =============================================================================

func testDLQ(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	due := &schema.BillingDLQEntry{
		OperationType: schema.DLQOperationDeposit,
		Payload:       datatypes.JSON(`{"account_id":"a"}`),
		MaxRetries:    3,
		Status:        schema.DLQStatusPending,
		NextRetryAt:   now.Add(-1 * time.Minute),
	}
	future := &schema.BillingDLQEntry{
		OperationType: schema.DLQOperationWebhook,
		Payload:       datatypes.JSON(`{}`),
		MaxRetries:    3,
		Status:        schema.DLQStatusPending,
		NextRetryAt:   now.Add(1 * time.Hour),
	}
	staleClaim := now.Add(-30 * time.Minute)
	stale := &schema.BillingDLQEntry{
		OperationType: schema.DLQOperationRefund,
		Payload:       datatypes.JSON(`{}`),
		MaxRetries:    3,
		Status:        schema.DLQStatusProcessing,
		NextRetryAt:   now.Add(-1 * time.Hour),
		ClaimedAt:     &staleClaim,
	}
	for _, e := range []*schema.BillingDLQEntry{due, future, stale} {
		require.NoError(t, store.CreateDLQEntry(ctx, e))
		require.NotZero(t, e.ID)
	}

	t.Run("claim takes due and stale entries only", func(t *testing.T) {
		claimed, err := store.ClaimDLQEntries(ctx, now, now.Add(-5*time.Minute), 10)
		require.NoError(t, err)

		ids := map[uint64]bool{}
		for _, e := range claimed {
			ids[e.ID] = true
			assert.Equal(t, schema.DLQStatusProcessing, e.Status)
			require.NotNil(t, e.ClaimedAt)
		}
		assert.True(t, ids[due.ID])
		assert.True(t, ids[stale.ID])
		assert.False(t, ids[future.ID])

		again, err := store.ClaimDLQEntries(ctx, now, now.Add(-5*time.Minute), 10)
		require.NoError(t, err)
		assert.Empty(t, again)
	})

	t.Run("outcome is kept only while the claim is held", func(t *testing.T) {
		firstClaim := now.UTC().Truncate(time.Microsecond)

		// A second worker retakes both entries once the first claim is stale
		later := now.Add(30 * time.Minute)
		retaken, err := store.ClaimDLQEntries(ctx, later, later.Add(-5*time.Minute), 10)
		require.NoError(t, err)
		require.Len(t, retaken, 2)

		var entry schema.BillingDLQEntry
		for _, e := range retaken {
			if e.ID == stale.ID {
				entry = e
			}
		}
		require.NotNil(t, entry.ClaimedAt)
		secondClaim := *entry.ClaimedAt

		outcome := entry
		outcome.Status = schema.DLQStatusCompleted
		outcome.CompletedAt = &later
		outcome.UpdatedAt = later

		held, err := store.ReleaseDLQClaim(ctx, &outcome, firstClaim)
		require.NoError(t, err)
		assert.False(t, held)

		current, err := store.GetDLQEntry(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.DLQStatusProcessing, current.Status)

		held, err = store.ReleaseDLQClaim(ctx, &outcome, secondClaim)
		require.NoError(t, err)
		assert.True(t, held)

		current, err = store.GetDLQEntry(ctx, stale.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.DLQStatusCompleted, current.Status)
		assert.Nil(t, current.ClaimedAt)
	})

	t.Run("update and list", func(t *testing.T) {
		entry, err := store.GetDLQEntry(ctx, due.ID)
		require.NoError(t, err)
		require.NotNil(t, entry)

		entry.Status = schema.DLQStatusManualReview
		entry.RetryCount = 3
		entry.ErrorMessage = stringPtr("boom")
		entry.UpdatedAt = now
		require.NoError(t, store.UpdateDLQEntry(ctx, entry))

		status := schema.DLQStatusManualReview
		entries, total, err := store.ListDLQEntries(ctx, DLQEntryFilter{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, entries, 1)
		assert.Equal(t, due.ID, entries[0].ID)
		assert.Equal(t, 3, entries[0].RetryCount)
		assert.Equal(t, "boom", *entries[0].ErrorMessage)

		missing, err := store.GetDLQEntry(ctx, 1<<62)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

// =============================================================================
// Test: Billing config
// =============================================================================

func testBillingConfig(t *testing.T, store Store) {
	ctx := context.Background()

	seeded, err := store.GetBillingConfig(ctx, "budget.default_daily_cap_micro")
	require.NoError(t, err)
	require.NotNil(t, seeded)
	assert.Equal(t, "10000000", seeded.Value)

	require.NoError(t, store.UpsertBillingConfig(ctx, &schema.BillingConfig{
		Key:       "revenue.foundation_bps",
		Value:     "500",
		UpdatedAt: time.Now().UTC(),
	}))

	updated, err := store.GetBillingConfig(ctx, "revenue.foundation_bps")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "500", updated.Value)
	require.NotNil(t, updated.Description)

	all, err := store.ListBillingConfig(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 6)

	missing, err := store.GetBillingConfig(ctx, "missing.key")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// =============================================================================
// Test: Campaigns
// =============================================================================

func testCampaigns(t *testing.T, store Store) {
	ctx := context.Background()

	campaign := &schema.Campaign{
		ID:          uuid.NewString(),
		Name:        "launch",
		BudgetMicro: 2_000_000,
	}
	require.NoError(t, store.CreateCampaign(ctx, campaign))

	t.Run("spend within budget", func(t *testing.T) {
		require.NoError(t, store.AddCampaignSpend(ctx, campaign.ID, 1_500_000))

		got, err := store.GetCampaign(ctx, campaign.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(1_500_000), got.SpentMicro)
	})

	t.Run("spend beyond budget is rejected", func(t *testing.T) {
		err := store.Transaction(ctx, func(tx Store) error {
			return tx.AddCampaignSpend(ctx, campaign.ID, 1_000_000)
		})
		assert.ErrorIs(t, err, domain.ErrCampaignBudgetExceeded)

		err = store.AddCampaignSpend(ctx, uuid.NewString(), 1)
		assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
	})

	t.Run("one grant per account", func(t *testing.T) {
		account := createTestAccount(t, store, domain.EntityTypeUser)
		lot := buildTestLot(account.ID, 100_000, domain.LotOriginGrant, nil)
		require.NoError(t, store.CreateLot(ctx, lot))

		grant := &schema.CampaignGrant{
			ID:          uuid.NewString(),
			CampaignID:  campaign.ID,
			AccountID:   account.ID,
			LotID:       lot.ID,
			AmountMicro: 100_000,
		}
		require.NoError(t, store.CreateCampaignGrant(ctx, grant))

		err := store.Transaction(ctx, func(tx Store) error {
			dup := *grant
			dup.ID = uuid.NewString()
			return tx.CreateCampaignGrant(ctx, &dup)
		})
		assert.ErrorIs(t, err, domain.ErrGrantAlreadyIssued)
	})

	t.Run("lock missing campaign", func(t *testing.T) {
		got, err := store.LockCampaign(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// RunStoreTests runs every store test against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Accounts", testAccounts},
		{"Lots", testLots},
		{"CreateDebit", testCreateDebit},
		{"Reservations", testReservations},
		{"UsageEvents", testUsageEvents},
		{"Conservation", testConservation},
		{"AgentBudgets", testAgentBudgets},
		{"DLQ", testDLQ},
		{"BillingConfig", testBillingConfig},
		{"Campaigns", testCampaigns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
