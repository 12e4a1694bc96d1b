package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/auction-network/auctiond/internal/core/domain"
)

const (
	seller  = "seller"
	bidder1 = "bidder1"
	bidder2 = "bidder2"
	assetID = "asset"
)

func TestAuctionStart(t *testing.T) {
	t.Parallel()

	auction := domain.NewAuction(seller, assetID)
	require.False(t, auction.IsActive())
	require.NotEmpty(t, auction.Id)

	err := auction.Start(time.Now().Unix(), 100)
	require.NoError(t, err)
	require.True(t, auction.IsActive())
	require.Equal(t, uint64(100), auction.FloorPrice)

	err = auction.Start(time.Now().Unix(), 200)
	require.ErrorIs(t, err, domain.ErrAuctionAlreadyActive)
	require.Equal(t, uint64(100), auction.FloorPrice)
}

func TestAuctionPlaceBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		bidder      string
		amount      uint64
		expectedErr error
	}{
		{
			name:   "clears_the_floor",
			bidder: bidder1,
			amount: 100,
		},
		{
			name:        "below_floor",
			bidder:      bidder1,
			amount:      99,
			expectedErr: domain.ErrBelowFloor,
		},
		{
			name:        "seller_self_bid",
			bidder:      seller,
			amount:      200,
			expectedErr: domain.ErrSelfBid,
		},
	}

	for i := range tests {
		tt := tests[i]

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auction := newActiveAuction(t)
			err := auction.PlaceBid(tt.bidder, tt.amount, time.Now().Unix())
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				require.Empty(t, auction.Bids)
				return
			}
			require.NoError(t, err)
			require.Len(t, auction.Bids, 1)
		})
	}
}

func TestAuctionRebidOverwritesAmount(t *testing.T) {
	t.Parallel()

	auction := newActiveAuction(t)

	require.NoError(t, auction.PlaceBid(bidder1, 150, 1))
	require.NoError(t, auction.PlaceBid(bidder2, 200, 2))
	require.NoError(t, auction.PlaceBid(bidder1, 120, 3))

	require.Len(t, auction.Bids, 2)
	bid, ok := auction.BidFor(bidder1)
	require.True(t, ok)
	require.Equal(t, uint64(120), bid.Amount)
	// insertion order is preserved on re-bid
	require.Equal(t, bidder1, auction.Bids[0].Bidder)
}

func TestAuctionAcceptBid(t *testing.T) {
	t.Parallel()

	auction := newActiveAuction(t)
	require.NoError(t, auction.PlaceBid(bidder1, 2_000_000_000, 1))
	require.NoError(t, auction.PlaceBid(bidder2, 3_000_000_000, 2))

	winningBid, err := auction.AcceptBid(seller, bidder2)
	require.NoError(t, err)
	require.Equal(t, bidder2, winningBid.Bidder)
	require.Equal(t, uint64(3_000_000_000), winningBid.Amount)
	require.True(t, auction.IsSettled())
	require.Empty(t, auction.Bids)
}

func TestAuctionAcceptAnyBidNotOnlyHighest(t *testing.T) {
	t.Parallel()

	auction := newActiveAuction(t)
	require.NoError(t, auction.PlaceBid(bidder1, 2_000_000_000, 1))
	require.NoError(t, auction.PlaceBid(bidder2, 3_000_000_000, 2))

	winningBid, err := auction.AcceptBid(seller, bidder1)
	require.NoError(t, err)
	require.Equal(t, uint64(2_000_000_000), winningBid.Amount)
	require.True(t, auction.IsSettled())
}

func TestFailingAuctionAcceptBid(t *testing.T) {
	t.Parallel()

	t.Run("not_seller", func(t *testing.T) {
		auction := newActiveAuctionWithBid(t)
		_, err := auction.AcceptBid(bidder1, bidder1)
		require.ErrorIs(t, err, domain.ErrNotSeller)
		require.True(t, auction.IsActive())
	})

	t.Run("bidder_not_found", func(t *testing.T) {
		auction := newActiveAuctionWithBid(t)
		_, err := auction.AcceptBid(seller, bidder2)
		require.ErrorIs(t, err, domain.ErrBidderNotFound)
		require.True(t, auction.IsActive())
		require.Len(t, auction.Bids, 1)
	})

	t.Run("not_active", func(t *testing.T) {
		auction := newActiveAuctionWithBid(t)
		require.NoError(t, auction.Cancel(seller))
		_, err := auction.AcceptBid(seller, bidder1)
		require.ErrorIs(t, err, domain.ErrAuctionNotActive)
	})
}

func TestAuctionRejectBid(t *testing.T) {
	t.Parallel()

	auction := newActiveAuction(t)
	require.NoError(t, auction.PlaceBid(bidder1, 150, 1))
	require.NoError(t, auction.PlaceBid(bidder2, 200, 2))

	err := auction.RejectBid(seller, bidder1)
	require.NoError(t, err)
	require.True(t, auction.IsActive())
	require.Len(t, auction.Bids, 1)
	require.Equal(t, bidder2, auction.Bids[0].Bidder)

	err = auction.RejectBid(seller, bidder1)
	require.ErrorIs(t, err, domain.ErrBidderNotFound)

	err = auction.RejectBid(bidder2, bidder2)
	require.ErrorIs(t, err, domain.ErrNotSeller)
}

func TestAuctionWithdrawBid(t *testing.T) {
	t.Parallel()

	auction := newActiveAuction(t)
	require.NoError(t, auction.PlaceBid(bidder1, 150, 1))
	require.NoError(t, auction.PlaceBid(bidder2, 200, 2))

	err := auction.WithdrawBid(bidder1)
	require.NoError(t, err)
	require.True(t, auction.IsActive())

	// only the caller's own bid is removed
	_, found := auction.BidFor(bidder1)
	require.False(t, found)
	_, found = auction.BidFor(bidder2)
	require.True(t, found)

	// withdrawing twice fails the second time
	err = auction.WithdrawBid(bidder1)
	require.ErrorIs(t, err, domain.ErrBidderNotFound)
}

func TestAuctionCancel(t *testing.T) {
	t.Parallel()

	auction := newActiveAuctionWithBid(t)

	err := auction.Cancel(bidder1)
	require.ErrorIs(t, err, domain.ErrNotSeller)

	err = auction.Cancel(seller)
	require.NoError(t, err)
	require.True(t, auction.IsCancelled())
	require.Empty(t, auction.Bids)
}

func TestAuctionPhaseIsMonotonic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		terminal func(a *domain.Auction)
	}{
		{
			name: "settled",
			terminal: func(a *domain.Auction) {
				_, err := a.AcceptBid(seller, bidder1)
				require.NoError(t, err)
			},
		},
		{
			name: "cancelled",
			terminal: func(a *domain.Auction) {
				require.NoError(t, a.Cancel(seller))
			},
		},
	}

	for i := range tests {
		tt := tests[i]

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auction := newActiveAuctionWithBid(t)
			tt.terminal(auction)
			require.True(t, auction.IsTerminal())

			// no operation can bring a terminal auction back to Active
			require.ErrorIs(t, auction.PlaceBid(bidder2, 500, 3), domain.ErrAuctionNotActive)
			_, err := auction.AcceptBid(seller, bidder1)
			require.ErrorIs(t, err, domain.ErrAuctionNotActive)
			require.ErrorIs(t, auction.RejectBid(seller, bidder1), domain.ErrAuctionNotActive)
			require.ErrorIs(t, auction.WithdrawBid(bidder1), domain.ErrAuctionNotActive)
			require.ErrorIs(t, auction.Cancel(seller), domain.ErrAuctionNotActive)
			require.True(t, auction.IsTerminal())
		})
	}
}

func TestAuctionVersionBumpsOnMutation(t *testing.T) {
	t.Parallel()

	auction := domain.NewAuction(seller, assetID)
	require.Zero(t, auction.Version)

	require.NoError(t, auction.Start(time.Now().Unix(), 100))
	require.Equal(t, uint64(1), auction.Version)

	require.NoError(t, auction.PlaceBid(bidder1, 150, 1))
	require.Equal(t, uint64(2), auction.Version)

	require.ErrorIs(t, auction.PlaceBid(bidder2, 10, 2), domain.ErrBelowFloor)
	require.Equal(t, uint64(2), auction.Version)

	require.NoError(t, auction.Cancel(seller))
	require.Equal(t, uint64(3), auction.Version)
}

func newActiveAuction(t *testing.T) *domain.Auction {
	t.Helper()

	auction := domain.NewAuction(seller, assetID)
	require.NoError(t, auction.Start(time.Now().Unix(), 100))
	return auction
}

func newActiveAuctionWithBid(t *testing.T) *domain.Auction {
	t.Helper()

	auction := newActiveAuction(t)
	require.NoError(t, auction.PlaceBid(bidder1, 150, time.Now().Unix()))
	return auction
}
