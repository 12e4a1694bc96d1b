package domain

import (
	"time"

	"github.com/google/uuid"
)

// Asset is the registry record of a minted collection or item. Metadata is
// stored verbatim as issued.
type Asset struct {
	Id     string
	Name   string
	Symbol string
	Uri    string
	// CollectionId is empty for collections.
	CollectionId string
	Issuer       string
	IssuedAt     int64
}

// NewCollection returns the registry record of a new collection.
func NewCollection(issuer, name, symbol, uri string) *Asset {
	return &Asset{
		Id:       uuid.New().String(),
		Name:     name,
		Symbol:   symbol,
		Uri:      uri,
		Issuer:   issuer,
		IssuedAt: time.Now().Unix(),
	}
}

// NewAsset returns the registry record of a new item belonging to a
// collection.
func NewAsset(issuer, name, symbol, uri, collectionID string) *Asset {
	asset := NewCollection(issuer, name, symbol, uri)
	asset.CollectionId = collectionID
	return asset
}

// IsCollection returns whether the asset is a collection rather than an
// item.
func (a *Asset) IsCollection() bool {
	return a.CollectionId == ""
}
