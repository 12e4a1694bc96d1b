package inmemory

import (
	"context"
	"sync"

	"github.com/auction-network/auctiond/internal/core/domain"
)

type auctionInmemoryStore struct {
	auctions map[string]domain.Auction
	locker   *sync.RWMutex
}

// copyAll is called with the store lock already held.
func (s *auctionInmemoryStore) copyAll() map[string]domain.Auction {
	auctions := make(map[string]domain.Auction, len(s.auctions))
	for k, v := range s.auctions {
		auctions[k] = cloneAuction(v)
	}
	return auctions
}

type auctionRepositoryImpl struct {
	store *auctionInmemoryStore
}

// NewAuctionRepositoryImpl returns a new inmemory AuctionRepository
// implementation.
func NewAuctionRepositoryImpl(store *auctionInmemoryStore) domain.AuctionRepository {
	return &auctionRepositoryImpl{store}
}

func (r auctionRepositoryImpl) AddAuction(
	ctx context.Context, auction *domain.Auction,
) error {
	if !inTx(ctx) {
		r.store.locker.Lock()
		defer r.store.locker.Unlock()
	}

	r.store.auctions[auction.Id] = cloneAuction(*auction)
	return nil
}

func (r auctionRepositoryImpl) GetAuction(
	ctx context.Context, auctionID string,
) (*domain.Auction, error) {
	if !inTx(ctx) {
		r.store.locker.RLock()
		defer r.store.locker.RUnlock()
	}

	return r.getAuction(auctionID)
}

func (r auctionRepositoryImpl) GetActiveAuctionByAsset(
	ctx context.Context, assetID string,
) (*domain.Auction, error) {
	if !inTx(ctx) {
		r.store.locker.RLock()
		defer r.store.locker.RUnlock()
	}

	for _, a := range r.store.auctions {
		if a.AssetId == assetID && a.IsActive() {
			auction := cloneAuction(a)
			return &auction, nil
		}
	}
	return nil, nil
}

func (r auctionRepositoryImpl) GetAllAuctions(
	ctx context.Context,
) ([]*domain.Auction, error) {
	if !inTx(ctx) {
		r.store.locker.RLock()
		defer r.store.locker.RUnlock()
	}

	auctions := make([]*domain.Auction, 0, len(r.store.auctions))
	for _, a := range r.store.auctions {
		auction := cloneAuction(a)
		auctions = append(auctions, &auction)
	}
	return auctions, nil
}

func (r auctionRepositoryImpl) UpdateAuction(
	ctx context.Context,
	auctionID string,
	updateFn func(a *domain.Auction) (*domain.Auction, error),
) error {
	if !inTx(ctx) {
		r.store.locker.Lock()
		defer r.store.locker.Unlock()
	}

	currentAuction, err := r.getAuction(auctionID)
	if err != nil {
		return err
	}

	updatedAuction, err := updateFn(currentAuction)
	if err != nil {
		return err
	}

	r.store.auctions[auctionID] = cloneAuction(*updatedAuction)
	return nil
}

func (r auctionRepositoryImpl) getAuction(auctionID string) (*domain.Auction, error) {
	a, ok := r.store.auctions[auctionID]
	if !ok {
		return nil, domain.ErrAuctionNotFound
	}
	auction := cloneAuction(a)
	return &auction, nil
}

// cloneAuction deep-copies the bid book so that callers never alias the
// slice backing the stored record.
func cloneAuction(a domain.Auction) domain.Auction {
	if a.Bids != nil {
		bids := make([]domain.Bid, len(a.Bids))
		copy(bids, a.Bids)
		a.Bids = bids
	}
	return a
}
