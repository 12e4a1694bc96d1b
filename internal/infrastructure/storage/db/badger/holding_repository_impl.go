package dbbadger

import (
	"context"
	"errors"

	"github.com/timshannon/badgerhold/v4"

	"github.com/auction-network/auctiond/internal/core/domain"
)

type holdingRepositoryImpl struct {
	store *badgerhold.Store
}

// NewHoldingRepositoryImpl returns a badger HoldingRepository implementation.
func NewHoldingRepositoryImpl(store *badgerhold.Store) domain.HoldingRepository {
	return holdingRepositoryImpl{store}
}

func (r holdingRepositoryImpl) AddHolding(
	ctx context.Context, holding *domain.Holding,
) error {
	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxInsert(tx, holding.AssetId, *holding)
	}
	return r.store.Insert(holding.AssetId, *holding)
}

func (r holdingRepositoryImpl) GetHolding(
	ctx context.Context, assetID string,
) (*domain.Holding, error) {
	return r.getHolding(ctx, assetID)
}

func (r holdingRepositoryImpl) UpdateHolding(
	ctx context.Context,
	assetID string,
	updateFn func(h *domain.Holding) (*domain.Holding, error),
) error {
	currentHolding, err := r.getHolding(ctx, assetID)
	if err != nil {
		return err
	}

	updatedHolding, err := updateFn(currentHolding)
	if err != nil {
		return err
	}

	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxUpdate(tx, assetID, *updatedHolding)
	}
	return r.store.Update(assetID, *updatedHolding)
}

func (r holdingRepositoryImpl) getHolding(
	ctx context.Context, assetID string,
) (*domain.Holding, error) {
	var holding domain.Holding
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, assetID, &holding)
	} else {
		err = r.store.Get(assetID, &holding)
	}
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, err
	}
	return &holding, nil
}
