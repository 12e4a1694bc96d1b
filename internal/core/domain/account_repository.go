package domain

import "context"

// AccountRepository is the abstraction for any kind of database intended to
// persist currency accounts.
type AccountRepository interface {
	// GetOrCreateAccount returns the account of the given identity, creating
	// an empty one if none exists.
	GetOrCreateAccount(ctx context.Context, identity string) (*Account, error)
	// UpdateAccount allows to commit balance changes in a transactional way.
	UpdateAccount(
		ctx context.Context,
		identity string,
		updateFn func(a *Account) (*Account, error),
	) error
}
