package httpinterface

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auction-network/auctiond/internal/core/application"
)

type mintCollectionRequest struct {
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol" binding:"required"`
	Uri    string `json:"uri" binding:"required"`
}

func (s *Service) mintCollection(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}

	var req mintCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := s.registrySvc.MintCollection(
		c.Request.Context(), owner, req.Name, req.Symbol, req.Uri,
	)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, assetResponse(info))
}

type mintAssetRequest struct {
	Name         string `json:"name" binding:"required"`
	Symbol       string `json:"symbol" binding:"required"`
	Uri          string `json:"uri" binding:"required"`
	CollectionId string `json:"collection_id" binding:"required"`
}

func (s *Service) mintAsset(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}

	var req mintAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := s.registrySvc.MintAsset(
		c.Request.Context(), owner, req.Name, req.Symbol, req.Uri, req.CollectionId,
	)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, assetResponse(info))
}

func (s *Service) ownerOf(c *gin.Context) {
	info, err := s.registrySvc.OwnerOf(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"asset_id": info.AssetId,
		"kind":     info.Kind,
		"identity": info.Identity,
	})
}

type depositRequest struct {
	Amount uint64 `json:"amount" binding:"required"`
}

func (s *Service) deposit(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := s.registrySvc.Deposit(c.Request.Context(), identity, req.Amount)
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, balanceResponse(info))
}

func (s *Service) balance(c *gin.Context) {
	info, err := s.registrySvc.Balance(c.Request.Context(), c.Param("identity"))
	if err != nil {
		abortWithErr(c, err)
		return
	}
	c.JSON(http.StatusOK, balanceResponse(info))
}

func assetResponse(info *application.AssetInfo) gin.H {
	return gin.H{
		"asset_id":      info.Id,
		"name":          info.Name,
		"symbol":        info.Symbol,
		"uri":           info.Uri,
		"collection_id": info.CollectionId,
		"issuer":        info.Issuer,
		"issued_at":     info.IssuedAt,
	}
}

func balanceResponse(info *application.BalanceInfo) gin.H {
	return gin.H{
		"identity": info.Identity,
		"balance":  info.Balance,
	}
}
