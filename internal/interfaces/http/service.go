package httpinterface

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auction-network/auctiond/internal/core/application"
	"github.com/auction-network/auctiond/internal/core/domain"
)

// CallerHeader carries the authenticated caller identity. The signing layer
// that verifies it sits in front of the daemon and is trusted once a call is
// admitted.
const CallerHeader = "X-Auction-Caller"

// Service exposes the auction and registry operations over a JSON/HTTP
// interface, one synchronous call/result route per operation.
type Service struct {
	auctionSvc  application.AuctionService
	registrySvc application.RegistryService
}

// NewService returns the HTTP interface of the daemon.
func NewService(
	auctionSvc application.AuctionService,
	registrySvc application.RegistryService,
) *Service {
	return &Service{auctionSvc, registrySvc}
}

// Router mounts all the routes and returns the engine ready to be served.
func (s *Service) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/v1")

	v1.POST("/auctions", s.startAuction)
	v1.GET("/auctions", s.listAuctions)
	v1.GET("/auctions/:id", s.getAuction)
	v1.POST("/auctions/:id/bids", s.placeBid)
	v1.POST("/auctions/:id/accept", s.acceptBid)
	v1.POST("/auctions/:id/reject", s.rejectBid)
	v1.POST("/auctions/:id/withdraw", s.withdrawBid)
	v1.POST("/auctions/:id/cancel", s.cancelAuction)

	v1.POST("/collections", s.mintCollection)
	v1.POST("/assets", s.mintAsset)
	v1.GET("/assets/:id/owner", s.ownerOf)

	v1.POST("/accounts/deposit", s.deposit)
	v1.GET("/accounts/:identity/balance", s.balance)

	return router
}

func caller(c *gin.Context) (string, bool) {
	identity := c.GetHeader(CallerHeader)
	if identity == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "missing caller identity header " + CallerHeader,
		})
		return "", false
	}
	return identity, true
}

// statusFromErr maps the error taxonomy onto HTTP statuses: authorization
// failures to 403, state failures to 409, validation failures to 400 (404
// for unknown records), resource failures to 422.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotSeller),
		errors.Is(err, domain.ErrNotAssetOwner),
		errors.Is(err, domain.ErrSelfBid):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAuctionNotActive),
		errors.Is(err, domain.ErrAuctionAlreadyActive),
		errors.Is(err, domain.ErrStaleState):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBidderNotFound),
		errors.Is(err, domain.ErrAuctionNotFound),
		errors.Is(err, domain.ErrAssetNotFound),
		errors.Is(err, domain.ErrCollectionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBelowFloor),
		errors.Is(err, application.ErrNullIdentity),
		errors.Is(err, application.ErrNullAssetId),
		errors.Is(err, application.ErrNullAuctionId),
		errors.Is(err, application.ErrNullBidder),
		errors.Is(err, application.ErrNullAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrOwnershipMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWithErr(c *gin.Context, err error) {
	c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
}
