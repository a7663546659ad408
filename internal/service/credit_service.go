// FILE: internal/service/credit_service.go
// The credit ledger: every scan and wardrobe-add passes through Consume
// before the expensive pipeline runs. A credit is spent the moment Consume
// allows the action; there is deliberately no refund path, even if the
// caller abandons the action afterwards (product decision, reproduced).
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/pkg/logger"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CreditService interface {
	// Consume spends one credit of the given kind, keyed by the client's
	// analysis key. Replays of a seen key return the first outcome without
	// touching the counters, with Replayed set so callers can skip work
	// the first pass already did. The returned error is set only for infra
	// failures (reason network_error/other_error); a denial is a normal
	// result, not an error.
	Consume(ctx context.Context, userId uuid.UUID, analysisKey string, kind entity.ActionKind) (*dto.ConsumeResult, error)
}

const replayCacheTTL = 24 * time.Hour

type keyLock struct {
	mu   sync.Mutex
	refs int
}

type creditService struct {
	uowFactory unitofwork.RepositoryFactory
	rdb        *redis.Client // replay fast-path, best-effort
	logger     logger.ILogger

	mu    sync.Mutex
	locks map[string]*keyLock
}

func NewCreditService(uowFactory unitofwork.RepositoryFactory, rdb *redis.Client, log logger.ILogger) CreditService {
	return &creditService{
		uowFactory: uowFactory,
		rdb:        rdb,
		logger:     log,
		locks:      make(map[string]*keyLock),
	}
}

func (s *creditService) Consume(ctx context.Context, userId uuid.UUID, analysisKey string, kind entity.ActionKind) (*dto.ConsumeResult, error) {
	if analysisKey == "" {
		return &dto.ConsumeResult{Allowed: false, Reason: entity.ReasonOtherError},
			fmt.Errorf("analysis key is required")
	}

	// Same-key concurrency: the second caller waits for the first and then
	// takes the replay path. Distinct keys proceed independently.
	lockKey := fmt.Sprintf("%s|%s|%s", userId, kind, analysisKey)
	s.acquire(lockKey)
	defer s.release(lockKey)

	if cached := s.cachedResult(ctx, lockKey); cached != nil {
		return cached, nil
	}

	result, err := s.consumeTx(ctx, userId, analysisKey, kind)
	if err != nil {
		return result, err
	}

	s.cacheResult(ctx, lockKey, result)
	return result, nil
}

func (s *creditService) consumeTx(ctx context.Context, userId uuid.UUID, analysisKey string, kind entity.ActionKind) (*dto.ConsumeResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return s.failure(err)
	}

	keySpec := specification.ByAnalysisKey{
		UserID:      userId,
		ActionKind:  string(kind),
		AnalysisKey: analysisKey,
	}

	// Replay: the ledger row is the authoritative first outcome.
	existing, err := uow.CreditRepository().FindOne(ctx, keySpec)
	if err != nil {
		_ = uow.Rollback()
		return s.failure(err)
	}
	if existing != nil {
		_ = uow.Rollback()
		return &dto.ConsumeResult{Allowed: existing.Allowed, Reason: existing.Reason, Replayed: true}, nil
	}

	// New key: lock the user row so concurrent distinct keys serialize on
	// the counter. This is the only lock held across the decrement.
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}, specification.LockForUpdate{})
	if err != nil {
		_ = uow.Rollback()
		return s.failure(err)
	}
	if user == nil {
		_ = uow.Rollback()
		return &dto.ConsumeResult{Allowed: false, Reason: entity.ReasonOtherError},
			fmt.Errorf("user %s not found", userId)
	}

	plan, err := uow.SubscriptionRepository().ActivePlanFor(ctx, userId)
	if err != nil {
		_ = uow.Rollback()
		return s.failure(err)
	}

	limit, used := quotaFor(plan, user, kind)
	unlimited := plan.Unlimited || limit == entity.LimitUnlimited

	tx := &entity.CreditTransaction{
		Id:          uuid.New(),
		UserId:      userId,
		ActionKind:  kind,
		AnalysisKey: analysisKey,
	}

	if !unlimited && used >= limit {
		// Denied: counters untouched, but the outcome is recorded so a
		// replayed key stays denied even after an upgrade.
		tx.Allowed = false
		tx.Reason = entity.ReasonQuotaExceeded
	} else {
		switch kind {
		case entity.ActionScan:
			user.ScansUsed++
		case entity.ActionWardrobeAdd:
			user.WardrobeAddsUsed++
		}
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			_ = uow.Rollback()
			return s.failure(err)
		}
		tx.Allowed = true
		tx.Reason = entity.ReasonOK
	}

	if err := uow.CreditRepository().Create(ctx, tx); err != nil {
		_ = uow.Rollback()
		// Another instance won the insert race; its row is the outcome.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.replayCommitted(ctx, keySpec)
		}
		return s.failure(err)
	}

	if err := uow.Commit(); err != nil {
		return s.failure(err)
	}

	s.logger.Info("CREDIT", "Credit consumed", map[string]interface{}{
		"user_id": userId, "kind": kind, "allowed": tx.Allowed, "reason": tx.Reason,
	})
	return &dto.ConsumeResult{Allowed: tx.Allowed, Reason: tx.Reason}, nil
}

func (s *creditService) replayCommitted(ctx context.Context, keySpec specification.ByAnalysisKey) (*dto.ConsumeResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.CreditRepository().FindOne(ctx, keySpec)
	if err != nil {
		return s.failure(err)
	}
	if existing == nil {
		return &dto.ConsumeResult{Allowed: false, Reason: entity.ReasonOtherError},
			fmt.Errorf("ledger row vanished after duplicate-key conflict")
	}
	return &dto.ConsumeResult{Allowed: existing.Allowed, Reason: existing.Reason, Replayed: true}, nil
}

// failure classifies an infra error. Quota state is unchanged on every
// failure path, so the caller may retry with the same analysis key.
func (s *creditService) failure(err error) (*dto.ConsumeResult, error) {
	reason := entity.ReasonOtherError
	var netErr net.Error
	if errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		reason = entity.ReasonNetworkError
	}
	s.logger.Error("CREDIT", "Consume failed", map[string]interface{}{"reason": reason, "error": err.Error()})
	return &dto.ConsumeResult{Allowed: false, Reason: reason}, err
}

func quotaFor(plan *entity.SubscriptionPlan, user *entity.User, kind entity.ActionKind) (limit, used int) {
	switch kind {
	case entity.ActionScan:
		limit = plan.ScanLimit
		if user.ScanLimitOverride != nil {
			limit = *user.ScanLimitOverride
		}
		used = user.ScansUsed
	case entity.ActionWardrobeAdd:
		limit = plan.WardrobeAddLimit
		used = user.WardrobeAddsUsed
	}
	return limit, used
}

// --- per-key in-process locks ---

func (s *creditService) acquire(key string) {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()
	l.mu.Lock()
}

func (s *creditService) release(key string) {
	s.mu.Lock()
	l := s.locks[key]
	l.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, key)
	}
	s.mu.Unlock()
}

// --- redis replay fast path (best-effort) ---

func (s *creditService) cachedResult(ctx context.Context, lockKey string) *dto.ConsumeResult {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, "credit:replay:"+lockKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Debug("CREDIT", "Replay cache read failed", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}
	var res dto.ConsumeResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil
	}
	res.Replayed = true
	return &res
}

func (s *creditService) cacheResult(ctx context.Context, lockKey string, res *dto.ConsumeResult) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, "credit:replay:"+lockKey, raw, replayCacheTTL).Err(); err != nil {
		s.logger.Debug("CREDIT", "Replay cache write failed", map[string]interface{}{"error": err.Error()})
	}
}
