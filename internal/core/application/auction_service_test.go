package application_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/auction-network/auctiond/internal/core/application"
	"github.com/auction-network/auctiond/internal/core/domain"
	"github.com/auction-network/auctiond/internal/core/ports"
	"github.com/auction-network/auctiond/internal/infrastructure/storage/db/inmemory"
)

const (
	seller  = "seller"
	bidder1 = "bidder1"
	bidder2 = "bidder2"
)

var ctx = context.Background()

func TestStartAuction(t *testing.T) {
	t.Parallel()

	auctionSvc, registrySvc, _, assetID := newTestSetup(t)

	info, err := auctionSvc.StartAuction(ctx, seller, assetID, time.Now().Unix(), 100)
	require.NoError(t, err)
	require.Equal(t, "active", info.Phase)
	require.Equal(t, uint64(100), info.FloorPrice)

	// the asset is custodied by the auction's escrow slot
	ownerInfo, err := registrySvc.OwnerOf(ctx, assetID)
	require.NoError(t, err)
	require.Equal(t, domain.HolderEscrow, ownerInfo.Kind)
	require.Equal(t, info.Id, ownerInfo.Identity)

	// no second active auction for the same asset
	_, err = auctionSvc.StartAuction(ctx, seller, assetID, time.Now().Unix(), 100)
	require.ErrorIs(t, err, domain.ErrAuctionAlreadyActive)
}

func TestFailingStartAuction(t *testing.T) {
	t.Parallel()

	auctionSvc, _, _, assetID := newTestSetup(t)

	_, err := auctionSvc.StartAuction(ctx, bidder1, assetID, time.Now().Unix(), 100)
	require.ErrorIs(t, err, domain.ErrNotAssetOwner)

	_, err = auctionSvc.StartAuction(ctx, seller, "unknown", time.Now().Unix(), 100)
	require.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestAcceptBidSettlement(t *testing.T) {
	t.Parallel()

	auctionSvc, registrySvc, _, assetID := newTestSetup(t)
	auctionID := startAuction(t, auctionSvc, assetID, 100)

	_, err := registrySvc.Deposit(ctx, bidder2, 3_000_000_000)
	require.NoError(t, err)

	_, err = auctionSvc.PlaceBid(ctx, bidder1, auctionID, 2_000_000_000)
	require.NoError(t, err)
	_, err = auctionSvc.PlaceBid(ctx, bidder2, auctionID, 3_000_000_000)
	require.NoError(t, err)

	settlement, err := auctionSvc.AcceptBid(ctx, seller, auctionID, bidder2)
	require.NoError(t, err)
	require.Equal(t, uint64(3_000_000_000), settlement.Amount)
	require.Equal(t, bidder2, settlement.Winner)

	// asset ends at the winning bidder
	ownerInfo, err := registrySvc.OwnerOf(ctx, assetID)
	require.NoError(t, err)
	require.Equal(t, domain.HolderBidder, ownerInfo.Kind)
	require.Equal(t, bidder2, ownerInfo.Identity)

	// seller got the winning amount, winner paid it
	sellerBalance, err := registrySvc.Balance(ctx, seller)
	require.NoError(t, err)
	require.Equal(t, uint64(3_000_000_000), sellerBalance.Balance)
	winnerBalance, err := registrySvc.Balance(ctx, bidder2)
	require.NoError(t, err)
	require.Zero(t, winnerBalance.Balance)

	// bid book is cleared and the phase is terminal
	info, err := auctionSvc.GetAuction(ctx, auctionID)
	require.NoError(t, err)
	require.Equal(t, "settled", info.Phase)
	require.Empty(t, info.Bids)

	// every subsequent transition fails with AuctionNotActive
	_, err = auctionSvc.PlaceBid(ctx, bidder1, auctionID, 4_000_000_000)
	require.ErrorIs(t, err, domain.ErrAuctionNotActive)
	_, err = auctionSvc.RejectBid(ctx, seller, auctionID, bidder1)
	require.ErrorIs(t, err, domain.ErrAuctionNotActive)
	_, err = auctionSvc.WithdrawBid(ctx, bidder1, auctionID)
	require.ErrorIs(t, err, domain.ErrAuctionNotActive)
	_, err = auctionSvc.AcceptBid(ctx, seller, auctionID, bidder2)
	require.ErrorIs(t, err, domain.ErrAuctionNotActive)
	_, err = auctionSvc.CancelAuction(ctx, seller, auctionID)
	require.ErrorIs(t, err, domain.ErrAuctionNotActive)
}

func TestAcceptBidWithInsufficientBalance(t *testing.T) {
	t.Parallel()

	auctionSvc, registrySvc, _, assetID := newTestSetup(t)
	auctionID := startAuction(t, auctionSvc, assetID, 100)

	// bidder1 never deposited anything: the shortage surfaces only at
	// settlement time
	_, err := auctionSvc.PlaceBid(ctx, bidder1, auctionID, 500)
	require.NoError(t, err)

	_, err = auctionSvc.AcceptBid(ctx, seller, auctionID, bidder1)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// nothing of the failed settlement is observably applied
	info, err := auctionSvc.GetAuction(ctx, auctionID)
	require.NoError(t, err)
	require.Equal(t, "active", info.Phase)
	require.Len(t, info.Bids, 1)

	ownerInfo, err := registrySvc.OwnerOf(ctx, assetID)
	require.NoError(t, err)
	require.Equal(t, domain.HolderEscrow, ownerInfo.Kind)

	sellerBalance, err := registrySvc.Balance(ctx, seller)
	require.NoError(t, err)
	require.Zero(t, sellerBalance.Balance)
}

func TestCancelAuction(t *testing.T) {
	t.Parallel()

	auctionSvc, registrySvc, _, assetID := newTestSetup(t)
	auctionID := startAuction(t, auctionSvc, assetID, 100)

	_, err := registrySvc.Deposit(ctx, bidder1, 1000)
	require.NoError(t, err)
	_, err = auctionSvc.PlaceBid(ctx, bidder1, auctionID, 500)
	require.NoError(t, err)

	info, err := auctionSvc.CancelAuction(ctx, seller, auctionID)
	require.NoError(t, err)
	require.Equal(t, "cancelled", info.Phase)
	require.Empty(t, info.Bids)

	// asset returns to the seller
	ownerInfo, err := registrySvc.OwnerOf(ctx, assetID)
	require.NoError(t, err)
	require.Equal(t, domain.HolderSeller, ownerInfo.Kind)
	require.Equal(t, seller, ownerInfo.Identity)

	// the bidder incurred no currency loss
	bidderBalance, err := registrySvc.Balance(ctx, bidder1)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), bidderBalance.Balance)
}

func TestWithdrawBid(t *testing.T) {
	t.Parallel()

	auctionSvc, _, _, assetID := newTestSetup(t)
	auctionID := startAuction(t, auctionSvc, assetID, 100)

	_, err := auctionSvc.PlaceBid(ctx, bidder1, auctionID, 500)
	require.NoError(t, err)
	_, err = auctionSvc.PlaceBid(ctx, bidder2, auctionID, 600)
	require.NoError(t, err)

	info, err := auctionSvc.WithdrawBid(ctx, bidder1, auctionID)
	require.NoError(t, err)
	require.Equal(t, "active", info.Phase)
	require.Len(t, info.Bids, 1)
	require.Equal(t, bidder2, info.Bids[0].Bidder)

	_, err = auctionSvc.WithdrawBid(ctx, bidder1, auctionID)
	require.ErrorIs(t, err, domain.ErrBidderNotFound)
}

func TestPlaceBidBelowFloorIsIdempotentFailure(t *testing.T) {
	t.Parallel()

	auctionSvc, _, _, assetID := newTestSetup(t)
	auctionID := startAuction(t, auctionSvc, assetID, 1000)

	_, err := auctionSvc.PlaceBid(ctx, bidder1, auctionID, 999)
	require.ErrorIs(t, err, domain.ErrBelowFloor)

	info, err := auctionSvc.GetAuction(ctx, auctionID)
	require.NoError(t, err)
	require.Empty(t, info.Bids)
	require.Equal(t, uint64(1), info.Version)
}

func TestPlaceBidBySeller(t *testing.T) {
	t.Parallel()

	auctionSvc, _, _, assetID := newTestSetup(t)
	auctionID := startAuction(t, auctionSvc, assetID, 100)

	_, err := auctionSvc.PlaceBid(ctx, seller, auctionID, 500)
	require.ErrorIs(t, err, domain.ErrSelfBid)
}

func TestConcurrentAcceptAndCancel(t *testing.T) {
	t.Parallel()

	auctionSvc, registrySvc, _, assetID := newTestSetup(t)
	auctionID := startAuction(t, auctionSvc, assetID, 100)

	_, err := registrySvc.Deposit(ctx, bidder1, 1000)
	require.NoError(t, err)
	_, err = auctionSvc.PlaceBid(ctx, bidder1, auctionID, 500)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var acceptErr, cancelErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, acceptErr = auctionSvc.AcceptBid(ctx, seller, auctionID, bidder1)
	}()
	go func() {
		defer wg.Done()
		_, cancelErr = auctionSvc.CancelAuction(ctx, seller, auctionID)
	}()
	wg.Wait()

	// exactly one transition commits, the other observes a state failure
	require.True(t, (acceptErr == nil) != (cancelErr == nil))
	loserErr := acceptErr
	if loserErr == nil {
		loserErr = cancelErr
	}
	require.True(t,
		errors.Is(loserErr, domain.ErrAuctionNotActive) ||
			errors.Is(loserErr, domain.ErrStaleState),
	)

	// never a corrupted mixed state: the asset left escrow towards the
	// holder matching the terminal phase
	info, err := auctionSvc.GetAuction(ctx, auctionID)
	require.NoError(t, err)
	ownerInfo, err := registrySvc.OwnerOf(ctx, assetID)
	require.NoError(t, err)

	switch info.Phase {
	case "settled":
		require.Equal(t, domain.HolderBidder, ownerInfo.Kind)
		require.Equal(t, bidder1, ownerInfo.Identity)
	case "cancelled":
		require.Equal(t, domain.HolderSeller, ownerInfo.Kind)
		require.Equal(t, seller, ownerInfo.Identity)
	default:
		t.Fatalf("auction left in non-terminal phase %s", info.Phase)
	}
}

func TestResellAssetAfterWin(t *testing.T) {
	t.Parallel()

	auctionSvc, registrySvc, _, assetID := newTestSetup(t)
	auctionID := startAuction(t, auctionSvc, assetID, 100)

	_, err := registrySvc.Deposit(ctx, bidder1, 1000)
	require.NoError(t, err)
	_, err = auctionSvc.PlaceBid(ctx, bidder1, auctionID, 500)
	require.NoError(t, err)
	_, err = auctionSvc.AcceptBid(ctx, seller, auctionID, bidder1)
	require.NoError(t, err)

	// the winner now controls the asset and can put it up for sale again
	info, err := auctionSvc.StartAuction(ctx, bidder1, assetID, time.Now().Unix(), 200)
	require.NoError(t, err)
	require.Equal(t, bidder1, info.Seller)

	ownerInfo, err := registrySvc.OwnerOf(ctx, assetID)
	require.NoError(t, err)
	require.Equal(t, domain.HolderEscrow, ownerInfo.Kind)
	require.Equal(t, info.Id, ownerInfo.Identity)

	// the original seller has no say over the new sale
	_, err = auctionSvc.CancelAuction(ctx, seller, info.Id)
	require.ErrorIs(t, err, domain.ErrNotSeller)
}

func TestNewAuctionForAssetAfterTerminal(t *testing.T) {
	t.Parallel()

	auctionSvc, _, _, assetID := newTestSetup(t)
	auctionID := startAuction(t, auctionSvc, assetID, 100)

	_, err := auctionSvc.CancelAuction(ctx, seller, auctionID)
	require.NoError(t, err)

	// a new sale of the same asset gets a brand new record, the terminal
	// one is retained for audit
	newAuctionID := startAuction(t, auctionSvc, assetID, 200)
	require.NotEqual(t, auctionID, newAuctionID)

	infos, err := auctionSvc.ListAuctions(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
}

func newTestSetup(t *testing.T) (
	application.AuctionService, application.RegistryService,
	ports.RepoManager, string,
) {
	t.Helper()

	repoManager := inmemory.NewRepoManager()
	auctionSvc := application.NewAuctionService(repoManager)
	registrySvc := application.NewRegistryService(repoManager)

	collection, err := registrySvc.MintCollection(ctx, seller, "Collection1", "CXYZ", "collectionxyz")
	require.NoError(t, err)
	asset, err := registrySvc.MintAsset(ctx, seller, "XYZ", "ABC", "abcxyz", collection.Id)
	require.NoError(t, err)

	return auctionSvc, registrySvc, repoManager, asset.Id
}

func startAuction(
	t *testing.T, auctionSvc application.AuctionService,
	assetID string, floorPrice uint64,
) string {
	t.Helper()

	info, err := auctionSvc.StartAuction(ctx, seller, assetID, time.Now().Unix(), floorPrice)
	require.NoError(t, err)
	return info.Id
}
