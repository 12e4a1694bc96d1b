package dbbadger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/auction-network/auctiond/internal/core/domain"
	"github.com/auction-network/auctiond/internal/core/ports"
)

type repoManager struct {
	store *badgerhold.Store

	auctionRepository domain.AuctionRepository
	holdingRepository domain.HoldingRepository
	accountRepository domain.AccountRepository
	assetRepository   domain.AssetRepository
}

// NewRepoManager opens (or creates if not exists) the badger store on disk.
// All aggregates share the same store so that one badger transaction covers
// every repository touched by an operation.
func NewRepoManager(baseDbDir string, logger badger.Logger) (ports.RepoManager, error) {
	store, err := createDb(filepath.Join(baseDbDir, "auctiond"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening auctiond db: %w", err)
	}

	return &repoManager{
		store:             store,
		auctionRepository: NewAuctionRepositoryImpl(store),
		holdingRepository: NewHoldingRepositoryImpl(store),
		accountRepository: NewAccountRepositoryImpl(store),
		assetRepository:   NewAssetRepositoryImpl(store),
	}, nil
}

func (d *repoManager) AuctionRepository() domain.AuctionRepository {
	return d.auctionRepository
}

func (d *repoManager) HoldingRepository() domain.HoldingRepository {
	return d.holdingRepository
}

func (d *repoManager) AccountRepository() domain.AccountRepository {
	return d.accountRepository
}

func (d *repoManager) AssetRepository() domain.AssetRepository {
	return d.assetRepository
}

func (d *repoManager) Close() {
	d.store.Close()
}

// NewTransaction implements the RepoManager interface.
func (d *repoManager) NewTransaction() ports.Transaction {
	return d.store.Badger().NewTransaction(true)
}

// RunTransaction runs the handler within a single badger transaction,
// carried in the context so that every repository access joins it. A commit
// conflict surfaces as ErrStaleState: the record changed since the caller
// last observed it and the whole operation is discarded.
func (d *repoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	tx := d.store.Badger().NewTransaction(!readOnly)
	defer tx.Discard()

	ctx = context.WithValue(ctx, "tx", tx)

	res, err := handler(ctx)
	if err != nil {
		return nil, err
	}

	if !readOnly {
		if err := tx.Commit(); err != nil {
			if errors.Is(err, badger.ErrConflict) {
				return nil, domain.ErrStaleState
			}
			return nil, err
		}
	}
	return res, nil
}

// JSONEncode is a custom JSON based encoder for badger.
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)
	if err := en.Encode(value); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger.
func JSONDecode(data []byte, value interface{}) error {
	de := json.NewDecoder(bytes.NewReader(data))
	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
