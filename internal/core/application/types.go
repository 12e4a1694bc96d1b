package application

import (
	"github.com/auction-network/auctiond/internal/core/domain"
)

const (
	// DBBadger is the available persistent database type.
	DBBadger = "badger"
	// DBInMemory is the available volatile database type.
	DBInMemory = "inmemory"
)

// AuctionInfo is the view of an auction returned to callers.
type AuctionInfo struct {
	Id         string
	AssetId    string
	Seller     string
	Phase      string
	StartTime  int64
	FloorPrice uint64
	Bids       []BidInfo
	Version    uint64
}

// BidInfo is the view of a recorded bid.
type BidInfo struct {
	Bidder   string
	Amount   uint64
	PlacedAt int64
}

// SettlementInfo reports the terminal transfers of an accepted auction.
type SettlementInfo struct {
	AuctionId string
	AssetId   string
	Winner    string
	Amount    uint64
}

// AssetInfo is the view of a registry record.
type AssetInfo struct {
	Id           string
	Name         string
	Symbol       string
	Uri          string
	CollectionId string
	Issuer       string
	IssuedAt     int64
}

// OwnerInfo reports the current holder of an asset.
type OwnerInfo struct {
	AssetId  string
	Kind     string
	Identity string
}

// BalanceInfo reports a party's currency balance.
type BalanceInfo struct {
	Identity string
	Balance  uint64
}

func auctionInfo(a *domain.Auction) *AuctionInfo {
	bids := make([]BidInfo, 0, len(a.Bids))
	for _, b := range a.Bids {
		bids = append(bids, BidInfo{
			Bidder:   b.Bidder,
			Amount:   b.Amount,
			PlacedAt: b.PlacedAt,
		})
	}

	return &AuctionInfo{
		Id:         a.Id,
		AssetId:    a.AssetId,
		Seller:     a.Seller,
		Phase:      phaseString(a.Phase),
		StartTime:  a.StartTime,
		FloorPrice: a.FloorPrice,
		Bids:       bids,
		Version:    a.Version,
	}
}

func assetInfo(a *domain.Asset) *AssetInfo {
	return &AssetInfo{
		Id:           a.Id,
		Name:         a.Name,
		Symbol:       a.Symbol,
		Uri:          a.Uri,
		CollectionId: a.CollectionId,
		Issuer:       a.Issuer,
		IssuedAt:     a.IssuedAt,
	}
}

func phaseString(phase int) string {
	switch phase {
	case domain.AuctionPhaseActive:
		return "active"
	case domain.AuctionPhaseSettled:
		return "settled"
	case domain.AuctionPhaseCancelled:
		return "cancelled"
	default:
		return "uninitialized"
	}
}
