package inmemory

import (
	"context"
	"sync"

	"github.com/auction-network/auctiond/internal/core/domain"
)

type assetInmemoryStore struct {
	assets map[string]domain.Asset
	locker *sync.RWMutex
}

// copyAll is called with the store lock already held.
func (s *assetInmemoryStore) copyAll() map[string]domain.Asset {
	assets := make(map[string]domain.Asset, len(s.assets))
	for k, v := range s.assets {
		assets[k] = v
	}
	return assets
}

type assetRepositoryImpl struct {
	store *assetInmemoryStore
}

// NewAssetRepositoryImpl returns a new inmemory AssetRepository
// implementation.
func NewAssetRepositoryImpl(store *assetInmemoryStore) domain.AssetRepository {
	return &assetRepositoryImpl{store}
}

func (r assetRepositoryImpl) AddAsset(
	ctx context.Context, asset *domain.Asset,
) error {
	if !inTx(ctx) {
		r.store.locker.Lock()
		defer r.store.locker.Unlock()
	}

	r.store.assets[asset.Id] = *asset
	return nil
}

func (r assetRepositoryImpl) GetAsset(
	ctx context.Context, assetID string,
) (*domain.Asset, error) {
	if !inTx(ctx) {
		r.store.locker.RLock()
		defer r.store.locker.RUnlock()
	}

	a, ok := r.store.assets[assetID]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	return &a, nil
}

func (r assetRepositoryImpl) GetAllAssets(
	ctx context.Context,
) ([]*domain.Asset, error) {
	if !inTx(ctx) {
		r.store.locker.RLock()
		defer r.store.locker.RUnlock()
	}

	assets := make([]*domain.Asset, 0, len(r.store.assets))
	for _, a := range r.store.assets {
		asset := a
		assets = append(assets, &asset)
	}
	return assets, nil
}
