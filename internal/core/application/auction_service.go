package application

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/auction-network/auctiond/internal/core/domain"
	"github.com/auction-network/auctiond/internal/core/ports"
)

// AuctionService is the application controller for the auction state
// machine. One operation at a time is in flight per auction record: the
// service serializes transitions on the same auction id and runs each of
// them within a single database transaction, so every operation is fully
// applied or fully rejected.
type AuctionService interface {
	StartAuction(
		ctx context.Context,
		seller, assetID string, startTime int64, floorPrice uint64,
	) (*AuctionInfo, error)
	PlaceBid(
		ctx context.Context,
		bidder, auctionID string, amount uint64,
	) (*AuctionInfo, error)
	AcceptBid(
		ctx context.Context,
		caller, auctionID, bidder string,
	) (*SettlementInfo, error)
	RejectBid(
		ctx context.Context,
		caller, auctionID, bidder string,
	) (*AuctionInfo, error)
	WithdrawBid(ctx context.Context, bidder, auctionID string) (*AuctionInfo, error)
	CancelAuction(ctx context.Context, caller, auctionID string) (*AuctionInfo, error)
	GetAuction(ctx context.Context, auctionID string) (*AuctionInfo, error)
	ListAuctions(ctx context.Context) ([]AuctionInfo, error)
}

type auctionService struct {
	repoManager ports.RepoManager
	executor    TransferExecutor
	locker      *keyLocker
}

// NewAuctionService returns an AuctionService backed by the given
// repositories.
func NewAuctionService(repoManager ports.RepoManager) AuctionService {
	return &auctionService{
		repoManager: repoManager,
		executor:    NewTransferExecutor(repoManager),
		locker:      newKeyLocker(),
	}
}

// StartAuction creates an active auction for the given asset and moves its
// custody from the seller to the auction's escrow slot.
func (s *auctionService) StartAuction(
	ctx context.Context,
	seller, assetID string, startTime int64, floorPrice uint64,
) (*AuctionInfo, error) {
	if seller == "" {
		return nil, ErrNullIdentity
	}
	if assetID == "" {
		return nil, ErrNullAssetId
	}

	unlock := s.locker.lock(assetID)
	defer unlock()

	auction := domain.NewAuction(seller, assetID)

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			holding, err := s.repoManager.HoldingRepository().GetHolding(ctx, assetID)
			if err != nil {
				return nil, err
			}
			if !holding.HeldBy(seller) {
				return nil, domain.ErrNotAssetOwner
			}

			active, err := s.repoManager.AuctionRepository().GetActiveAuctionByAsset(ctx, assetID)
			if err != nil {
				return nil, err
			}
			if active != nil {
				return nil, domain.ErrAuctionAlreadyActive
			}

			if err := auction.Start(startTime, floorPrice); err != nil {
				return nil, err
			}
			if err := s.repoManager.AuctionRepository().AddAuction(ctx, auction); err != nil {
				return nil, err
			}

			// the current slot may be tagged seller or bidder, a winning
			// bidder reselling an asset is a legitimate new seller
			moves := []Move{AssetMove{
				AssetId: assetID,
				From:    holding.Holder,
				To:      domain.EscrowHolder(auction.Id),
			}}
			return nil, s.executor.Execute(ctx, moves)
		},
	); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"auction": auction.Id,
		"asset":   assetID,
	}).Info("auction started")

	return auctionInfo(auction), nil
}

// PlaceBid records or updates a bid on an active auction. No funds move at
// bid time, the bid is a commitment record only.
func (s *auctionService) PlaceBid(
	ctx context.Context,
	bidder, auctionID string, amount uint64,
) (*AuctionInfo, error) {
	if bidder == "" {
		return nil, ErrNullIdentity
	}
	if auctionID == "" {
		return nil, ErrNullAuctionId
	}
	if amount == 0 {
		return nil, ErrNullAmount
	}

	placedAt := time.Now().Unix()
	return s.updateAuction(ctx, auctionID, func(a *domain.Auction) error {
		return a.PlaceBid(bidder, amount, placedAt)
	})
}

// AcceptBid settles an active auction on the named bidder's bid: the asset
// leaves escrow towards the winning bidder and the bid amount moves from the
// winning bidder to the seller, all as one unit.
func (s *auctionService) AcceptBid(
	ctx context.Context,
	caller, auctionID, bidder string,
) (*SettlementInfo, error) {
	if caller == "" {
		return nil, ErrNullIdentity
	}
	if auctionID == "" {
		return nil, ErrNullAuctionId
	}
	if bidder == "" {
		return nil, ErrNullBidder
	}

	unlock := s.locker.lock(auctionID)
	defer unlock()

	var settlement *SettlementInfo

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			var winningBid domain.Bid
			var assetID, seller string

			if err := s.repoManager.AuctionRepository().UpdateAuction(
				ctx, auctionID, func(a *domain.Auction) (*domain.Auction, error) {
					bid, err := a.AcceptBid(caller, bidder)
					if err != nil {
						return nil, err
					}
					winningBid = bid
					assetID = a.AssetId
					seller = a.Seller
					return a, nil
				},
			); err != nil {
				return nil, err
			}

			moves := []Move{
				AssetMove{
					AssetId: assetID,
					From:    domain.EscrowHolder(auctionID),
					To:      domain.BidderHolder(bidder),
				},
				CurrencyMove{
					From:   bidder,
					To:     seller,
					Amount: winningBid.Amount,
				},
			}
			if err := s.executor.Execute(ctx, moves); err != nil {
				return nil, err
			}

			settlement = &SettlementInfo{
				AuctionId: auctionID,
				AssetId:   assetID,
				Winner:    bidder,
				Amount:    winningBid.Amount,
			}
			return nil, nil
		},
	); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"auction": auctionID,
		"winner":  bidder,
		"amount":  settlement.Amount,
	}).Info("auction settled")

	return settlement, nil
}

// RejectBid removes the named bidder's bid, leaving the auction active.
func (s *auctionService) RejectBid(
	ctx context.Context,
	caller, auctionID, bidder string,
) (*AuctionInfo, error) {
	if caller == "" {
		return nil, ErrNullIdentity
	}
	if auctionID == "" {
		return nil, ErrNullAuctionId
	}
	if bidder == "" {
		return nil, ErrNullBidder
	}

	return s.updateAuction(ctx, auctionID, func(a *domain.Auction) error {
		return a.RejectBid(caller, bidder)
	})
}

// WithdrawBid removes the calling bidder's own bid, leaving the auction
// active.
func (s *auctionService) WithdrawBid(
	ctx context.Context, bidder, auctionID string,
) (*AuctionInfo, error) {
	if bidder == "" {
		return nil, ErrNullIdentity
	}
	if auctionID == "" {
		return nil, ErrNullAuctionId
	}

	return s.updateAuction(ctx, auctionID, func(a *domain.Auction) error {
		return a.WithdrawBid(bidder)
	})
}

// CancelAuction brings an active auction to the Cancelled phase and returns
// the asset from escrow to the seller. Outstanding bids are discarded, no
// bidder incurs any currency loss since no funds were ever moved for an
// unaccepted bid.
func (s *auctionService) CancelAuction(
	ctx context.Context, caller, auctionID string,
) (*AuctionInfo, error) {
	if caller == "" {
		return nil, ErrNullIdentity
	}
	if auctionID == "" {
		return nil, ErrNullAuctionId
	}

	unlock := s.locker.lock(auctionID)
	defer unlock()

	var updated *domain.Auction

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			var assetID, seller string

			if err := s.repoManager.AuctionRepository().UpdateAuction(
				ctx, auctionID, func(a *domain.Auction) (*domain.Auction, error) {
					if err := a.Cancel(caller); err != nil {
						return nil, err
					}
					assetID = a.AssetId
					seller = a.Seller
					updated = a
					return a, nil
				},
			); err != nil {
				return nil, err
			}

			moves := []Move{AssetMove{
				AssetId: assetID,
				From:    domain.EscrowHolder(auctionID),
				To:      domain.SellerHolder(seller),
			}}
			return nil, s.executor.Execute(ctx, moves)
		},
	); err != nil {
		return nil, err
	}

	log.WithField("auction", auctionID).Info("auction cancelled")

	return auctionInfo(updated), nil
}

// GetAuction returns the current view of the given auction, bid book
// included.
func (s *auctionService) GetAuction(
	ctx context.Context, auctionID string,
) (*AuctionInfo, error) {
	if auctionID == "" {
		return nil, ErrNullAuctionId
	}

	auction, err := s.repoManager.AuctionRepository().GetAuction(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	return auctionInfo(auction), nil
}

// ListAuctions returns all auctions, terminal ones included.
func (s *auctionService) ListAuctions(ctx context.Context) ([]AuctionInfo, error) {
	auctions, err := s.repoManager.AuctionRepository().GetAllAuctions(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]AuctionInfo, 0, len(auctions))
	for _, a := range auctions {
		infos = append(infos, *auctionInfo(a))
	}
	return infos, nil
}

// updateAuction serializes and commits a bid-book-only transition, ie. one
// that does not involve the transfer executor.
func (s *auctionService) updateAuction(
	ctx context.Context, auctionID string, transitionFn func(a *domain.Auction) error,
) (*AuctionInfo, error) {
	unlock := s.locker.lock(auctionID)
	defer unlock()

	var updated *domain.Auction

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.AuctionRepository().UpdateAuction(
				ctx, auctionID, func(a *domain.Auction) (*domain.Auction, error) {
					if err := transitionFn(a); err != nil {
						return nil, err
					}
					updated = a
					return a, nil
				},
			)
		},
	); err != nil {
		return nil, err
	}

	return auctionInfo(updated), nil
}

// keyLocker provides exclusive access keyed by auction (or asset) id for
// the duration of one transition. Entries are reference-counted and evicted
// once the last holder releases them, so the map stays bounded by the number
// of in-flight operations.
type keyLocker struct {
	mtx   sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func newKeyLocker() *keyLocker {
	return &keyLocker{locks: map[string]*keyLock{}}
}

func (l *keyLocker) lock(key string) func() {
	l.mtx.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{}
		l.locks[key] = kl
	}
	kl.refs++
	l.mtx.Unlock()

	kl.Lock()

	return func() {
		kl.Unlock()

		l.mtx.Lock()
		kl.refs--
		if kl.refs <= 0 {
			delete(l.locks, key)
		}
		l.mtx.Unlock()
	}
}
