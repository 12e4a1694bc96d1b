package domain

import (
	"github.com/google/uuid"
)

const (
	AuctionPhaseUninitialized = iota
	AuctionPhaseActive
	AuctionPhaseSettled
	AuctionPhaseCancelled
)

// Auction is the data structure representing an unlimited auction entity:
// an escrowed asset, the seller controlling it and the book of outstanding
// bids. The auction has no closing time, only explicit seller action brings
// it to a terminal phase.
type Auction struct {
	Id         string
	AssetId    string
	Seller     string
	Phase      int
	StartTime  int64
	FloorPrice uint64
	Bids       []Bid
	// Version increases on every committed mutation and is used to detect
	// concurrent modifications of the same record.
	Version uint64
}

// NewAuction returns an auction with a new id and Uninitialized phase.
func NewAuction(seller, assetID string) *Auction {
	return &Auction{
		Id:      uuid.New().String(),
		AssetId: assetID,
		Seller:  seller,
		Phase:   AuctionPhaseUninitialized,
	}
}

// Start brings the auction from the Uninitialized to the Active phase,
// recording the start time and the immutable floor price.
func (a *Auction) Start(startTime int64, floorPrice uint64) error {
	if a.Phase != AuctionPhaseUninitialized {
		return ErrAuctionAlreadyActive
	}

	a.StartTime = startTime
	a.FloorPrice = floorPrice
	a.Phase = AuctionPhaseActive
	a.Version++
	return nil
}

// PlaceBid records a bid for the given bidder, or updates the amount of the
// bidder's existing bid. A bidder has at most one live bid per auction.
func (a *Auction) PlaceBid(bidder string, amount uint64, placedAt int64) error {
	if !a.IsActive() {
		return ErrAuctionNotActive
	}
	if bidder == a.Seller {
		return ErrSelfBid
	}
	if amount < a.FloorPrice {
		return ErrBelowFloor
	}

	if i := a.bidIndex(bidder); i >= 0 {
		a.Bids[i].Amount = amount
		a.Bids[i].PlacedAt = placedAt
	} else {
		a.Bids = append(a.Bids, Bid{Bidder: bidder, Amount: amount, PlacedAt: placedAt})
	}
	a.Version++
	return nil
}

// AcceptBid brings the auction to the Settled phase by selecting the named
// bidder's bid as the winning one. The seller may pick any recorded bid, not
// necessarily the highest. All bids are cleared and the winning one is
// returned so the caller can execute the settlement transfers.
func (a *Auction) AcceptBid(caller, bidder string) (Bid, error) {
	if caller != a.Seller {
		return Bid{}, ErrNotSeller
	}
	if !a.IsActive() {
		return Bid{}, ErrAuctionNotActive
	}

	i := a.bidIndex(bidder)
	if i < 0 {
		return Bid{}, ErrBidderNotFound
	}

	winningBid := a.Bids[i]
	a.Bids = nil
	a.Phase = AuctionPhaseSettled
	a.Version++
	return winningBid, nil
}

// RejectBid removes the named bidder's bid without closing the auction.
func (a *Auction) RejectBid(caller, bidder string) error {
	if caller != a.Seller {
		return ErrNotSeller
	}
	if !a.IsActive() {
		return ErrAuctionNotActive
	}

	i := a.bidIndex(bidder)
	if i < 0 {
		return ErrBidderNotFound
	}

	a.Bids = append(a.Bids[:i], a.Bids[i+1:]...)
	a.Version++
	return nil
}

// WithdrawBid removes the calling bidder's own bid without closing the
// auction.
func (a *Auction) WithdrawBid(bidder string) error {
	if !a.IsActive() {
		return ErrAuctionNotActive
	}

	i := a.bidIndex(bidder)
	if i < 0 {
		return ErrBidderNotFound
	}

	a.Bids = append(a.Bids[:i], a.Bids[i+1:]...)
	a.Version++
	return nil
}

// Cancel brings the auction to the Cancelled phase, clearing all bids. Since
// no funds are moved at bid time, clearing is a pure discard.
func (a *Auction) Cancel(caller string) error {
	if caller != a.Seller {
		return ErrNotSeller
	}
	if !a.IsActive() {
		return ErrAuctionNotActive
	}

	a.Bids = nil
	a.Phase = AuctionPhaseCancelled
	a.Version++
	return nil
}

// BidFor returns the recorded bid of the given bidder, if any.
func (a *Auction) BidFor(bidder string) (Bid, bool) {
	if i := a.bidIndex(bidder); i >= 0 {
		return a.Bids[i], true
	}
	return Bid{}, false
}

// IsActive returns whether the auction is in the Active phase.
func (a *Auction) IsActive() bool {
	return a.Phase == AuctionPhaseActive
}

// IsSettled returns whether the auction is in the Settled phase.
func (a *Auction) IsSettled() bool {
	return a.Phase == AuctionPhaseSettled
}

// IsCancelled returns whether the auction is in the Cancelled phase.
func (a *Auction) IsCancelled() bool {
	return a.Phase == AuctionPhaseCancelled
}

// IsTerminal returns whether the auction reached a terminal phase.
func (a *Auction) IsTerminal() bool {
	return a.IsSettled() || a.IsCancelled()
}

func (a *Auction) bidIndex(bidder string) int {
	for i := range a.Bids {
		if a.Bids[i].Bidder == bidder {
			return i
		}
	}
	return -1
}
