package dbbadger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/auction-network/auctiond/internal/core/domain"
)

type auctionRepositoryImpl struct {
	store *badgerhold.Store
}

// NewAuctionRepositoryImpl returns a badger AuctionRepository implementation.
func NewAuctionRepositoryImpl(store *badgerhold.Store) domain.AuctionRepository {
	return auctionRepositoryImpl{store}
}

func (r auctionRepositoryImpl) AddAuction(
	ctx context.Context, auction *domain.Auction,
) error {
	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxInsert(tx, auction.Id, *auction)
	}
	return r.store.Insert(auction.Id, *auction)
}

func (r auctionRepositoryImpl) GetAuction(
	ctx context.Context, auctionID string,
) (*domain.Auction, error) {
	return r.getAuction(ctx, auctionID)
}

func (r auctionRepositoryImpl) GetActiveAuctionByAsset(
	ctx context.Context, assetID string,
) (*domain.Auction, error) {
	query := badgerhold.
		Where("AssetId").Eq(assetID).
		And("Phase").Eq(domain.AuctionPhaseActive)

	auctions, err := r.findAuctions(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(auctions) <= 0 {
		return nil, nil
	}
	return &auctions[0], nil
}

func (r auctionRepositoryImpl) GetAllAuctions(
	ctx context.Context,
) ([]*domain.Auction, error) {
	found, err := r.findAuctions(ctx, &badgerhold.Query{})
	if err != nil {
		return nil, err
	}

	auctions := make([]*domain.Auction, 0, len(found))
	for i := range found {
		auctions = append(auctions, &found[i])
	}
	return auctions, nil
}

func (r auctionRepositoryImpl) UpdateAuction(
	ctx context.Context,
	auctionID string,
	updateFn func(a *domain.Auction) (*domain.Auction, error),
) error {
	currentAuction, err := r.getAuction(ctx, auctionID)
	if err != nil {
		return err
	}

	updatedAuction, err := updateFn(currentAuction)
	if err != nil {
		return err
	}

	if tx := txFromContext(ctx); tx != nil {
		return r.store.TxUpdate(tx, auctionID, *updatedAuction)
	}
	return r.store.Update(auctionID, *updatedAuction)
}

func (r auctionRepositoryImpl) getAuction(
	ctx context.Context, auctionID string,
) (*domain.Auction, error) {
	var auction domain.Auction
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxGet(tx, auctionID, &auction)
	} else {
		err = r.store.Get(auctionID, &auction)
	}
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrAuctionNotFound
		}
		return nil, err
	}
	return &auction, nil
}

func (r auctionRepositoryImpl) findAuctions(
	ctx context.Context, query *badgerhold.Query,
) ([]domain.Auction, error) {
	var auctions []domain.Auction
	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = r.store.TxFind(tx, &auctions, query)
	} else {
		err = r.store.Find(&auctions, query)
	}
	return auctions, err
}

func txFromContext(ctx context.Context) *badger.Txn {
	if tx, ok := ctx.Value("tx").(*badger.Txn); ok {
		return tx
	}
	return nil
}
