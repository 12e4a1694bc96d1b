package domain

import "context"

// AssetRepository is the abstraction for any kind of database intended to
// persist registry records of minted assets.
type AssetRepository interface {
	// AddAsset persists a new registry record.
	AddAsset(ctx context.Context, asset *Asset) error
	// GetAsset returns the registry record with the given id, or
	// ErrAssetNotFound.
	GetAsset(ctx context.Context, assetID string) (*Asset, error)
	// GetAllAssets returns all the registry records.
	GetAllAssets(ctx context.Context) ([]*Asset, error)
}
