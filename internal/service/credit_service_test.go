package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/contract"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeStore is the shared in-memory backing for the fake unit of work. The
// store mutex stands in for the row lock a real transaction would take.
type fakeStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
	rows  []entity.CreditTransaction
	items []*entity.WardrobeItem
	plan  *entity.SubscriptionPlan
}

func newFakeStore(user *entity.User, plan *entity.SubscriptionPlan) *fakeStore {
	return &fakeStore{
		users: map[uuid.UUID]*entity.User{user.Id: user},
		plan:  plan,
	}
}

func (s *fakeStore) findRow(userId uuid.UUID, kind, key string) *entity.CreditTransaction {
	for i := range s.rows {
		r := s.rows[i]
		if r.UserId == userId && string(r.ActionKind) == kind && r.AnalysisKey == key {
			return &r
		}
	}
	return nil
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct{ store *fakeStore }

func (u *fakeUow) Begin(ctx context.Context) error { u.store.mu.Lock(); return nil }
func (u *fakeUow) Commit() error                   { u.store.mu.Unlock(); return nil }
func (u *fakeUow) Rollback() error                 { u.store.mu.Unlock(); return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}
func (u *fakeUow) SubscriptionRepository() contract.SubscriptionRepository {
	return &fakeSubRepo{store: u.store}
}
func (u *fakeUow) CreditRepository() contract.CreditRepository {
	return &fakeCreditRepo{store: u.store}
}
func (u *fakeUow) WardrobeRepository() contract.WardrobeRepository {
	return &fakeWardrobeRepo{store: u.store}
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, sp := range specs {
		if byID, ok := sp.(specification.ByID); ok {
			if u, found := r.store.users[byID.ID]; found {
				copied := *u
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	copied := *user
	r.store.users[user.Id] = &copied
	return nil
}

type fakeSubRepo struct{ store *fakeStore }

func (r *fakeSubRepo) FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error) {
	return nil, nil
}
func (r *fakeSubRepo) FindOnePlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error) {
	return nil, nil
}
func (r *fakeSubRepo) FindAllSubscriptions(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error) {
	return nil, nil
}
func (r *fakeSubRepo) CreateSubscription(ctx context.Context, sub *entity.UserSubscription) error {
	return nil
}
func (r *fakeSubRepo) CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	return nil
}
func (r *fakeSubRepo) ActivePlanFor(ctx context.Context, userId uuid.UUID) (*entity.SubscriptionPlan, error) {
	if r.store.plan != nil {
		copied := *r.store.plan
		return &copied, nil
	}
	return entity.FreePlan(), nil
}

type fakeCreditRepo struct{ store *fakeStore }

func (r *fakeCreditRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditTransaction, error) {
	return nil, nil
}
func (r *fakeCreditRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.rows)), nil
}

func (r *fakeCreditRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CreditTransaction, error) {
	for _, sp := range specs {
		if byKey, ok := sp.(specification.ByAnalysisKey); ok {
			return r.store.findRow(byKey.UserID, byKey.ActionKind, byKey.AnalysisKey), nil
		}
	}
	return nil, nil
}

func (r *fakeCreditRepo) Create(ctx context.Context, tx *entity.CreditTransaction) error {
	if r.store.findRow(tx.UserId, string(tx.ActionKind), tx.AnalysisKey) != nil {
		return gorm.ErrDuplicatedKey
	}
	r.store.rows = append(r.store.rows, *tx)
	return nil
}

type fakeWardrobeRepo struct{ store *fakeStore }

func (r *fakeWardrobeRepo) Create(ctx context.Context, item *entity.WardrobeItem) error {
	for _, it := range r.store.items {
		if it.UserId == item.UserId && it.AnalysisKey == item.AnalysisKey {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *item
	r.store.items = append(r.store.items, &copied)
	return nil
}

func (r *fakeWardrobeRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeWardrobeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WardrobeItem, error) {
	userId, key := wardrobeFilters(specs)
	for _, it := range r.store.items {
		if it.UserId == userId && (key == "" || it.AnalysisKey == key) {
			copied := *it
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeWardrobeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WardrobeItem, error) {
	userId, _ := wardrobeFilters(specs)
	out := []*entity.WardrobeItem{}
	for _, it := range r.store.items {
		if it.UserId == userId {
			copied := *it
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeWardrobeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	userId, _ := wardrobeFilters(specs)
	var n int64
	for _, it := range r.store.items {
		if it.UserId == userId {
			n++
		}
	}
	return n, nil
}

func wardrobeFilters(specs []specification.Specification) (userId uuid.UUID, analysisKey string) {
	for _, sp := range specs {
		switch v := sp.(type) {
		case specification.UserOwnedBy:
			userId = v.UserID
		case specification.FilterBy:
			if v.Field == "analysis_key" {
				analysisKey, _ = v.Value.(string)
			}
		}
	}
	return userId, analysisKey
}

func newTestCreditService(store *fakeStore) CreditService {
	return NewCreditService(&fakeFactory{store: store}, nil, nopLogger{})
}

func testUser() *entity.User {
	return &entity.User{
		Id:    uuid.New(),
		Email: "styler@example.com",
	}
}

func TestConsumeAllowsAndIncrements(t *testing.T) {
	user := testUser()
	store := newFakeStore(user, nil)
	svc := newTestCreditService(store)

	res, err := svc.Consume(context.Background(), user.Id, "scan-key-0001", entity.ActionScan)

	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, entity.ReasonOK, res.Reason)
	assert.Equal(t, 1, store.users[user.Id].ScansUsed)
	require.Len(t, store.rows, 1)
	assert.True(t, store.rows[0].Allowed)
}

func TestConsumeDeniesAtLimit(t *testing.T) {
	user := testUser()
	user.ScansUsed = 3 // free plan cap
	store := newFakeStore(user, nil)
	svc := newTestCreditService(store)

	res, err := svc.Consume(context.Background(), user.Id, "scan-key-0002", entity.ActionScan)

	require.NoError(t, err, "a denial is a result, not an error")
	assert.False(t, res.Allowed)
	assert.Equal(t, entity.ReasonQuotaExceeded, res.Reason)
	assert.Equal(t, 3, store.users[user.Id].ScansUsed, "counter untouched on denial")
	require.Len(t, store.rows, 1, "denials are recorded too")
	assert.False(t, store.rows[0].Allowed)
}

func TestConsumeReplayReturnsFirstOutcome(t *testing.T) {
	user := testUser()
	store := newFakeStore(user, nil)
	svc := newTestCreditService(store)
	ctx := context.Background()

	first, err := svc.Consume(ctx, user.Id, "scan-key-0003", entity.ActionScan)
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	for i := 0; i < 5; i++ {
		again, err := svc.Consume(ctx, user.Id, "scan-key-0003", entity.ActionScan)
		require.NoError(t, err)
		assert.Equal(t, first.Allowed, again.Allowed)
		assert.Equal(t, first.Reason, again.Reason)
		assert.True(t, again.Replayed)
	}

	assert.Equal(t, 1, store.users[user.Id].ScansUsed, "replays never spend a second credit")
	assert.Len(t, store.rows, 1)
}

func TestConsumeReplayedDenialStaysDenied(t *testing.T) {
	user := testUser()
	user.ScansUsed = 3
	store := newFakeStore(user, nil)
	svc := newTestCreditService(store)
	ctx := context.Background()

	first, err := svc.Consume(ctx, user.Id, "scan-key-0004", entity.ActionScan)
	require.NoError(t, err)
	require.False(t, first.Allowed)

	// Upgrade after the denial. The recorded outcome still wins for this key.
	store.plan = &entity.SubscriptionPlan{Name: "Pro", Slug: "pro-monthly", Unlimited: true}

	again, err := svc.Consume(ctx, user.Id, "scan-key-0004", entity.ActionScan)
	require.NoError(t, err)
	assert.False(t, again.Allowed)
	assert.Equal(t, first.Reason, again.Reason)
	assert.True(t, again.Replayed)

	// A fresh key sees the new plan.
	fresh, err := svc.Consume(ctx, user.Id, "scan-key-0005", entity.ActionScan)
	require.NoError(t, err)
	assert.True(t, fresh.Allowed)
}

func TestConsumeSameKeyConcurrently(t *testing.T) {
	user := testUser()
	store := newFakeStore(user, nil)
	svc := newTestCreditService(store)

	const callers = 16
	var wg sync.WaitGroup
	results := make([]bool, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.Consume(context.Background(), user.Id, "scan-key-0006", entity.ActionScan)
			if err == nil {
				results[i] = res.Allowed
			}
		}(i)
	}
	wg.Wait()

	for i, allowed := range results {
		assert.True(t, allowed, "caller %d", i)
	}
	assert.Equal(t, 1, store.users[user.Id].ScansUsed, "one credit across all racers")
	assert.Len(t, store.rows, 1)
}

func TestConsumeDistinctKeysSpendDistinctCredits(t *testing.T) {
	user := testUser()
	store := newFakeStore(user, nil)
	svc := newTestCreditService(store)
	ctx := context.Background()

	allowed := 0
	for i := 0; i < 5; i++ {
		res, err := svc.Consume(ctx, user.Id, fmt.Sprintf("scan-key-10%02d", i), entity.ActionScan)
		require.NoError(t, err)
		if res.Allowed {
			allowed++
		} else {
			assert.Equal(t, entity.ReasonQuotaExceeded, res.Reason)
		}
	}

	assert.Equal(t, 3, allowed, "free plan allows three scans")
	assert.Equal(t, 3, store.users[user.Id].ScansUsed)
}

func TestConsumeUnlimitedPlanNeverDenies(t *testing.T) {
	user := testUser()
	user.ScansUsed = 9000
	store := newFakeStore(user, &entity.SubscriptionPlan{Name: "Pro", Slug: "pro-monthly", Unlimited: true})
	svc := newTestCreditService(store)

	res, err := svc.Consume(context.Background(), user.Id, "scan-key-2000", entity.ActionScan)

	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 9001, store.users[user.Id].ScansUsed, "usage still tracked for display")
}

func TestConsumeScanLimitOverride(t *testing.T) {
	override := 1
	user := testUser()
	user.ScanLimitOverride = &override
	user.ScansUsed = 1
	store := newFakeStore(user, nil)
	svc := newTestCreditService(store)

	res, err := svc.Consume(context.Background(), user.Id, "scan-key-3000", entity.ActionScan)

	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, entity.ReasonQuotaExceeded, res.Reason)
}

func TestConsumeWardrobeAddUsesOwnCounter(t *testing.T) {
	user := testUser()
	user.ScansUsed = 3 // scan quota exhausted, wardrobe quota is separate
	store := newFakeStore(user, nil)
	svc := newTestCreditService(store)

	res, err := svc.Consume(context.Background(), user.Id, "add-key-0001", entity.ActionWardrobeAdd)

	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, store.users[user.Id].WardrobeAddsUsed)
	assert.Equal(t, 3, store.users[user.Id].ScansUsed)
}

func TestConsumeRejectsEmptyKey(t *testing.T) {
	user := testUser()
	store := newFakeStore(user, nil)
	svc := newTestCreditService(store)

	res, err := svc.Consume(context.Background(), user.Id, "", entity.ActionScan)

	require.Error(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, entity.ReasonOtherError, res.Reason)
	assert.Empty(t, store.rows)
}

func TestConsumeUnknownUser(t *testing.T) {
	user := testUser()
	store := newFakeStore(user, nil)
	svc := newTestCreditService(store)

	res, err := svc.Consume(context.Background(), uuid.New(), "scan-key-4000", entity.ActionScan)

	require.Error(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, entity.ReasonOtherError, res.Reason)
}
