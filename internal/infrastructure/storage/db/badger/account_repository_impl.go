package dbbadger

import (
	"context"
	"errors"

	"github.com/timshannon/badgerhold/v4"

	"github.com/auction-network/auctiond/internal/core/domain"
)

type accountRepositoryImpl struct {
	store *badgerhold.Store
}

// NewAccountRepositoryImpl returns a badger AccountRepository implementation.
func NewAccountRepositoryImpl(store *badgerhold.Store) domain.AccountRepository {
	return accountRepositoryImpl{store}
}

func (r accountRepositoryImpl) GetOrCreateAccount(
	ctx context.Context, identity string,
) (*domain.Account, error) {
	return r.getOrCreateAccount(ctx, identity)
}

func (r accountRepositoryImpl) UpdateAccount(
	ctx context.Context,
	identity string,
	updateFn func(a *domain.Account) (*domain.Account, error),
) error {
	currentAccount, err := r.getOrCreateAccount(ctx, identity)
	if err != nil {
		return err
	}

	updatedAccount, err := updateFn(currentAccount)
	if err != nil {
		return err
	}

	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxUpdate(tx, identity, *updatedAccount)
	}
	return r.store.Update(identity, *updatedAccount)
}

func (r accountRepositoryImpl) getOrCreateAccount(
	ctx context.Context, identity string,
) (*domain.Account, error) {
	var account domain.Account
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, identity, &account)
	} else {
		err = r.store.Get(identity, &account)
	}
	if err == nil {
		return &account, nil
	}
	if !errors.Is(err, badgerhold.ErrNotFound) {
		return nil, err
	}

	newAccount := domain.NewAccount(identity)
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxInsert(tx, identity, *newAccount)
	} else {
		err = r.store.Insert(identity, *newAccount)
	}
	if err != nil {
		return nil, err
	}
	return newAccount, nil
}
