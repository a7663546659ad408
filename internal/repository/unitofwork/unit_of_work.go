package unitofwork

import (
	"context"

	"ai-stylist-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SubscriptionRepository() contract.SubscriptionRepository
	CreditRepository() contract.CreditRepository
	WardrobeRepository() contract.WardrobeRepository
}
