package httpinterface

import (
	"github.com/gin-gonic/gin"

	"github.com/auction-network/auctiond/internal/core/application"
)

func auctionResponse(info *application.AuctionInfo) gin.H {
	bids := make([]gin.H, 0, len(info.Bids))
	for _, b := range info.Bids {
		bids = append(bids, gin.H{
			"bidder":    b.Bidder,
			"amount":    b.Amount,
			"placed_at": b.PlacedAt,
		})
	}

	return gin.H{
		"auction_id":  info.Id,
		"asset_id":    info.AssetId,
		"seller":      info.Seller,
		"phase":       info.Phase,
		"start_time":  info.StartTime,
		"floor_price": info.FloorPrice,
		"bids":        bids,
		"version":     info.Version,
	}
}
