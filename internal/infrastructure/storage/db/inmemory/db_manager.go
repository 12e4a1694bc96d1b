package inmemory

import (
	"context"
	"sync"

	"github.com/auction-network/auctiond/internal/core/domain"
	"github.com/auction-network/auctiond/internal/core/ports"
)

// RepoManager is the volatile implementation of ports.RepoManager, used by
// tests and by daemons started with the inmemory database type.
type RepoManager struct {
	auctionStore *auctionInmemoryStore
	holdingStore *holdingInmemoryStore
	accountStore *accountInmemoryStore
	assetStore   *assetInmemoryStore

	auctionRepository domain.AuctionRepository
	holdingRepository domain.HoldingRepository
	accountRepository domain.AccountRepository
	assetRepository   domain.AssetRepository

	// locker is shared by all the stores. A write transaction holds it
	// exclusively until it commits or is restored from its snapshot, so no
	// reader can observe uncommitted writes.
	locker *sync.RWMutex
}

// NewRepoManager returns a new empty inmemory RepoManager.
func NewRepoManager() ports.RepoManager {
	locker := &sync.RWMutex{}

	auctionStore := &auctionInmemoryStore{
		auctions: map[string]domain.Auction{},
		locker:   locker,
	}
	holdingStore := &holdingInmemoryStore{
		holdings: map[string]domain.Holding{},
		locker:   locker,
	}
	accountStore := &accountInmemoryStore{
		accounts: map[string]domain.Account{},
		locker:   locker,
	}
	assetStore := &assetInmemoryStore{
		assets: map[string]domain.Asset{},
		locker: locker,
	}

	return &RepoManager{
		auctionStore:      auctionStore,
		holdingStore:      holdingStore,
		accountStore:      accountStore,
		assetStore:        assetStore,
		auctionRepository: NewAuctionRepositoryImpl(auctionStore),
		holdingRepository: NewHoldingRepositoryImpl(holdingStore),
		accountRepository: NewAccountRepositoryImpl(accountStore),
		assetRepository:   NewAssetRepositoryImpl(assetStore),
		locker:            locker,
	}
}

func (d *RepoManager) AuctionRepository() domain.AuctionRepository {
	return d.auctionRepository
}

func (d *RepoManager) HoldingRepository() domain.HoldingRepository {
	return d.holdingRepository
}

func (d *RepoManager) AccountRepository() domain.AccountRepository {
	return d.accountRepository
}

func (d *RepoManager) AssetRepository() domain.AssetRepository {
	return d.assetRepository
}

func (d *RepoManager) Close() {}

// NewTransaction returns a no-op transaction: the inmemory stores commit
// through RunTransaction snapshots instead.
func (d *RepoManager) NewTransaction() ports.Transaction {
	return inmemoryTx{}
}

// RunTransaction takes the store lock for the whole handler, carrying a
// transaction marker in the context so that repository accesses join the
// held lock instead of re-acquiring it. A failing handler restores the
// stores from a snapshot before the lock is released, so readers only ever
// observe committed state.
func (d *RepoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	ctx = context.WithValue(ctx, "tx", inmemoryTx{})

	if readOnly {
		d.locker.RLock()
		defer d.locker.RUnlock()

		return handler(ctx)
	}

	d.locker.Lock()
	defer d.locker.Unlock()

	snapshot := d.snapshot()

	res, err := handler(ctx)
	if err != nil {
		d.restore(snapshot)
		return nil, err
	}
	return res, nil
}

type storeSnapshot struct {
	auctions map[string]domain.Auction
	holdings map[string]domain.Holding
	accounts map[string]domain.Account
	assets   map[string]domain.Asset
}

func (d *RepoManager) snapshot() storeSnapshot {
	return storeSnapshot{
		auctions: d.auctionStore.copyAll(),
		holdings: d.holdingStore.copyAll(),
		accounts: d.accountStore.copyAll(),
		assets:   d.assetStore.copyAll(),
	}
}

func (d *RepoManager) restore(s storeSnapshot) {
	d.auctionStore.auctions = s.auctions
	d.holdingStore.holdings = s.holdings
	d.accountStore.accounts = s.accounts
	d.assetStore.assets = s.assets
}

type inmemoryTx struct{}

func (inmemoryTx) Commit() error { return nil }
func (inmemoryTx) Discard()      {}

// inTx reports whether the context carries an inmemory transaction, ie. the
// store lock is already held by the enclosing RunTransaction.
func inTx(ctx context.Context) bool {
	_, ok := ctx.Value("tx").(inmemoryTx)
	return ok
}
