package domain

import "context"

// HoldingRepository is the abstraction for any kind of database intended to
// persist the custody ledger.
type HoldingRepository interface {
	// AddHolding persists the owner slot of a freshly issued asset.
	AddHolding(ctx context.Context, holding *Holding) error
	// GetHolding returns the owner slot of the given asset, or
	// ErrAssetNotFound.
	GetHolding(ctx context.Context, assetID string) (*Holding, error)
	// UpdateHolding allows to commit a custody move in a transactional way.
	UpdateHolding(
		ctx context.Context,
		assetID string,
		updateFn func(h *Holding) (*Holding, error),
	) error
}
