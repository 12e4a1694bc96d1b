package ports

import (
	"context"

	"github.com/auction-network/auctiond/internal/core/domain"
)

// RepoManager gives access to all the domain repositories and to the
// transactional context they share.
type RepoManager interface {
	AuctionRepository() domain.AuctionRepository
	HoldingRepository() domain.HoldingRepository
	AccountRepository() domain.AccountRepository
	AssetRepository() domain.AssetRepository

	Close()

	NewTransaction() Transaction
	// RunTransaction runs the handler within a single database transaction:
	// every repository access made through the handler's context is committed
	// or discarded as one unit.
	RunTransaction(
		ctx context.Context,
		readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)
}

// Transaction interface defines the method to commit or discard a database
// transaction.
type Transaction interface {
	Commit() error
	Discard()
}
