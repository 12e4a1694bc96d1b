package domain

import "context"

// AuctionRepository is the abstraction for any kind of database intended to
// persist Auctions. Terminal auctions are retained for audit history and
// never reused, a new sale of the same asset gets a new record.
type AuctionRepository interface {
	// AddAuction persists a new auction.
	AddAuction(ctx context.Context, auction *Auction) error
	// GetAuction returns the auction with the given id, or ErrAuctionNotFound.
	GetAuction(ctx context.Context, auctionID string) (*Auction, error)
	// GetActiveAuctionByAsset returns the active auction custodying the given
	// asset, or nil if none exists.
	GetActiveAuctionByAsset(ctx context.Context, assetID string) (*Auction, error)
	// GetAllAuctions returns all the auctions stored in the repository,
	// terminal ones included.
	GetAllAuctions(ctx context.Context) ([]*Auction, error)
	// UpdateAuction allows to commit multiple changes to the same auction in
	// a transactional way.
	UpdateAuction(
		ctx context.Context,
		auctionID string,
		updateFn func(a *Auction) (*Auction, error),
	) error
}
