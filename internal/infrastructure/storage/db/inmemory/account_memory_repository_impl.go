package inmemory

import (
	"context"
	"sync"

	"github.com/auction-network/auctiond/internal/core/domain"
)

type accountInmemoryStore struct {
	accounts map[string]domain.Account
	locker   *sync.RWMutex
}

// copyAll is called with the store lock already held.
func (s *accountInmemoryStore) copyAll() map[string]domain.Account {
	accounts := make(map[string]domain.Account, len(s.accounts))
	for k, v := range s.accounts {
		accounts[k] = v
	}
	return accounts
}

type accountRepositoryImpl struct {
	store *accountInmemoryStore
}

// NewAccountRepositoryImpl returns a new inmemory AccountRepository
// implementation.
func NewAccountRepositoryImpl(store *accountInmemoryStore) domain.AccountRepository {
	return &accountRepositoryImpl{store}
}

func (r accountRepositoryImpl) GetOrCreateAccount(
	ctx context.Context, identity string,
) (*domain.Account, error) {
	if !inTx(ctx) {
		r.store.locker.Lock()
		defer r.store.locker.Unlock()
	}

	return r.getOrCreateAccount(identity), nil
}

func (r accountRepositoryImpl) UpdateAccount(
	ctx context.Context,
	identity string,
	updateFn func(a *domain.Account) (*domain.Account, error),
) error {
	if !inTx(ctx) {
		r.store.locker.Lock()
		defer r.store.locker.Unlock()
	}

	currentAccount := r.getOrCreateAccount(identity)

	updatedAccount, err := updateFn(currentAccount)
	if err != nil {
		return err
	}

	r.store.accounts[identity] = *updatedAccount
	return nil
}

func (r accountRepositoryImpl) getOrCreateAccount(identity string) *domain.Account {
	if a, ok := r.store.accounts[identity]; ok {
		return &a
	}

	account := domain.NewAccount(identity)
	r.store.accounts[identity] = *account
	return account
}
