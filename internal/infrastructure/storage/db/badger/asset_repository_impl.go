package dbbadger

import (
	"context"
	"errors"

	"github.com/timshannon/badgerhold/v4"

	"github.com/auction-network/auctiond/internal/core/domain"
)

type assetRepositoryImpl struct {
	store *badgerhold.Store
}

// NewAssetRepositoryImpl returns a badger AssetRepository implementation.
func NewAssetRepositoryImpl(store *badgerhold.Store) domain.AssetRepository {
	return assetRepositoryImpl{store}
}

func (r assetRepositoryImpl) AddAsset(
	ctx context.Context, asset *domain.Asset,
) error {
	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxInsert(tx, asset.Id, *asset)
	}
	return r.store.Insert(asset.Id, *asset)
}

func (r assetRepositoryImpl) GetAsset(
	ctx context.Context, assetID string,
) (*domain.Asset, error) {
	var asset domain.Asset
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, assetID, &asset)
	} else {
		err = r.store.Get(assetID, &asset)
	}
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}
	return &asset, nil
}

func (r assetRepositoryImpl) GetAllAssets(
	ctx context.Context,
) ([]*domain.Asset, error) {
	var found []domain.Asset
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxFind(tx, &found, &badgerhold.Query{})
	} else {
		err = r.store.Find(&found, &badgerhold.Query{})
	}
	if err != nil {
		return nil, err
	}

	assets := make([]*domain.Asset, 0, len(found))
	for i := range found {
		assets = append(assets, &found[i])
	}
	return assets, nil
}
