package httpinterface

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type startAuctionRequest struct {
	AssetId    string `json:"asset_id" binding:"required"`
	StartTime  int64  `json:"start_time"`
	FloorPrice uint64 `json:"floor_price"`
}

func (s *Service) startAuction(c *gin.Context) {
	seller, ok := caller(c)
	if !ok {
		return
	}

	var req startAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := s.auctionSvc.StartAuction(
		c.Request.Context(), seller, req.AssetId, req.StartTime, req.FloorPrice,
	)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, auctionResponse(info))
}

type placeBidRequest struct {
	Amount uint64 `json:"amount" binding:"required"`
}

func (s *Service) placeBid(c *gin.Context) {
	bidder, ok := caller(c)
	if !ok {
		return
	}

	var req placeBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := s.auctionSvc.PlaceBid(
		c.Request.Context(), bidder, c.Param("id"), req.Amount,
	)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, auctionResponse(info))
}

type bidderRequest struct {
	Bidder string `json:"bidder" binding:"required"`
}

func (s *Service) acceptBid(c *gin.Context) {
	seller, ok := caller(c)
	if !ok {
		return
	}

	var req bidderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settlement, err := s.auctionSvc.AcceptBid(
		c.Request.Context(), seller, c.Param("id"), req.Bidder,
	)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"auction_id": settlement.AuctionId,
		"asset_id":   settlement.AssetId,
		"winner":     settlement.Winner,
		"amount":     settlement.Amount,
	})
}

func (s *Service) rejectBid(c *gin.Context) {
	seller, ok := caller(c)
	if !ok {
		return
	}

	var req bidderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := s.auctionSvc.RejectBid(
		c.Request.Context(), seller, c.Param("id"), req.Bidder,
	)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, auctionResponse(info))
}

func (s *Service) withdrawBid(c *gin.Context) {
	bidder, ok := caller(c)
	if !ok {
		return
	}

	info, err := s.auctionSvc.WithdrawBid(c.Request.Context(), bidder, c.Param("id"))
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, auctionResponse(info))
}

func (s *Service) cancelAuction(c *gin.Context) {
	seller, ok := caller(c)
	if !ok {
		return
	}

	info, err := s.auctionSvc.CancelAuction(c.Request.Context(), seller, c.Param("id"))
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, auctionResponse(info))
}

func (s *Service) getAuction(c *gin.Context) {
	info, err := s.auctionSvc.GetAuction(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, auctionResponse(info))
}

func (s *Service) listAuctions(c *gin.Context) {
	infos, err := s.auctionSvc.ListAuctions(c.Request.Context())
	if err != nil {
		abortWithErr(c, err)
		return
	}

	auctions := make([]gin.H, 0, len(infos))
	for i := range infos {
		auctions = append(auctions, auctionResponse(&infos[i]))
	}
	c.JSON(http.StatusOK, gin.H{"auctions": auctions})
}
