package domain

const (
	// HolderSeller tags an asset controlled by a party that may put it up
	// for sale.
	HolderSeller = "seller"
	// HolderEscrow tags an asset custodied by an auction's escrow slot. The
	// holder identity is the auction id.
	HolderEscrow = "escrow"
	// HolderBidder tags an asset delivered to a winning bidder.
	HolderBidder = "bidder"
)

// Holder identifies who currently controls an asset.
type Holder struct {
	Kind     string
	Identity string
}

// SellerHolder returns the holder for a party controlling an asset.
func SellerHolder(identity string) Holder {
	return Holder{Kind: HolderSeller, Identity: identity}
}

// EscrowHolder returns the holder for an auction's escrow slot.
func EscrowHolder(auctionID string) Holder {
	return Holder{Kind: HolderEscrow, Identity: auctionID}
}

// BidderHolder returns the holder for a winning bidder.
func BidderHolder(identity string) Holder {
	return Holder{Kind: HolderBidder, Identity: identity}
}

// Holding is the custody ledger entry for an asset: exactly one owner slot
// at all times. Every custody move passes through Transfer, which is the
// single choke point preventing the same asset from being spent twice.
type Holding struct {
	AssetId string
	Holder  Holder
}

// NewHolding returns the holding of a freshly issued asset, controlled by
// its issuer.
func NewHolding(assetID, owner string) *Holding {
	return &Holding{AssetId: assetID, Holder: SellerHolder(owner)}
}

// Transfer moves the asset from one holder to another. It fails with
// ErrOwnershipMismatch if the declared sender does not currently hold the
// asset.
func (h *Holding) Transfer(from, to Holder) error {
	if h.Holder != from {
		return ErrOwnershipMismatch
	}
	h.Holder = to
	return nil
}

// HeldBy returns whether the asset is directly controlled by the given
// party, ie. not custodied by an escrow slot.
func (h *Holding) HeldBy(identity string) bool {
	return h.Holder.Kind != HolderEscrow && h.Holder.Identity == identity
}
