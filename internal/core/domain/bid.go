package domain

// Bid is a commitment record, not a transfer: no funds are escrowed when a
// bid is placed, settlement transfers are deferred to the accept operation.
type Bid struct {
	Bidder string
	Amount uint64
	// PlacedAt is kept for audit only, never for expiry.
	PlacedAt int64
}
