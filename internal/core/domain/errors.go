package domain

import "errors"

var (
	// ErrNotSeller is thrown when a seller-only transition is attempted by
	// another identity.
	ErrNotSeller = errors.New("operation is restricted to the auction seller")
	// ErrNotAssetOwner is thrown when starting an auction for an asset the
	// caller does not control.
	ErrNotAssetOwner = errors.New("caller does not own the asset")
	// ErrSelfBid is thrown when the seller bids on their own auction.
	ErrSelfBid = errors.New("seller cannot bid on own auction")

	// ErrAuctionNotActive ...
	ErrAuctionNotActive = errors.New("auction is not active")
	// ErrAuctionAlreadyActive is thrown when starting an auction for an asset
	// that already has an active one.
	ErrAuctionAlreadyActive = errors.New("an active auction already exists for the asset")
	// ErrStaleState is thrown when an auction record changed since the caller
	// last observed it.
	ErrStaleState = errors.New("auction state is stale, re-fetch and retry")

	// ErrBelowFloor ...
	ErrBelowFloor = errors.New("bid amount is below the floor price")
	// ErrBidderNotFound ...
	ErrBidderNotFound = errors.New("no bid on record for bidder")

	// ErrInsufficientBalance ...
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrOwnershipMismatch is thrown by the custody ledger when the declared
	// sender of an asset move is not the current holder.
	ErrOwnershipMismatch = errors.New("asset is not held by the declared sender")

	// ErrAuctionNotFound ...
	ErrAuctionNotFound = errors.New("auction not found")
	// ErrAssetNotFound ...
	ErrAssetNotFound = errors.New("asset not found")
	// ErrCollectionNotFound ...
	ErrCollectionNotFound = errors.New("collection not found")
)
