package application

import "errors"

var (
	// ErrNullIdentity ...
	ErrNullIdentity = errors.New("caller identity must not be null")
	// ErrNullAssetId ...
	ErrNullAssetId = errors.New("asset id must not be null")
	// ErrNullAuctionId ...
	ErrNullAuctionId = errors.New("auction id must not be null")
	// ErrNullBidder ...
	ErrNullBidder = errors.New("bidder identity must not be null")
	// ErrNullAmount ...
	ErrNullAmount = errors.New("amount must be greater than zero")
)
