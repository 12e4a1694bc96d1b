package inmemory

import (
	"context"
	"sync"

	"github.com/auction-network/auctiond/internal/core/domain"
)

type holdingInmemoryStore struct {
	holdings map[string]domain.Holding
	locker   *sync.RWMutex
}

// copyAll is called with the store lock already held.
func (s *holdingInmemoryStore) copyAll() map[string]domain.Holding {
	holdings := make(map[string]domain.Holding, len(s.holdings))
	for k, v := range s.holdings {
		holdings[k] = v
	}
	return holdings
}

type holdingRepositoryImpl struct {
	store *holdingInmemoryStore
}

// NewHoldingRepositoryImpl returns a new inmemory HoldingRepository
// implementation.
func NewHoldingRepositoryImpl(store *holdingInmemoryStore) domain.HoldingRepository {
	return &holdingRepositoryImpl{store}
}

func (r holdingRepositoryImpl) AddHolding(
	ctx context.Context, holding *domain.Holding,
) error {
	if !inTx(ctx) {
		r.store.locker.Lock()
		defer r.store.locker.Unlock()
	}

	r.store.holdings[holding.AssetId] = *holding
	return nil
}

func (r holdingRepositoryImpl) GetHolding(
	ctx context.Context, assetID string,
) (*domain.Holding, error) {
	if !inTx(ctx) {
		r.store.locker.RLock()
		defer r.store.locker.RUnlock()
	}

	return r.getHolding(assetID)
}

func (r holdingRepositoryImpl) UpdateHolding(
	ctx context.Context,
	assetID string,
	updateFn func(h *domain.Holding) (*domain.Holding, error),
) error {
	if !inTx(ctx) {
		r.store.locker.Lock()
		defer r.store.locker.Unlock()
	}

	currentHolding, err := r.getHolding(assetID)
	if err != nil {
		return err
	}

	updatedHolding, err := updateFn(currentHolding)
	if err != nil {
		return err
	}

	r.store.holdings[assetID] = *updatedHolding
	return nil
}

func (r holdingRepositoryImpl) getHolding(assetID string) (*domain.Holding, error) {
	h, ok := r.store.holdings[assetID]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	return &h, nil
}
