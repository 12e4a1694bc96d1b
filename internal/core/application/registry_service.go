package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/auction-network/auctiond/internal/core/domain"
	"github.com/auction-network/auctiond/internal/core/ports"
)

// RegistryService issues collection and item identities with owner-held
// custody slots, and exposes the read side of the custody ledger and of the
// currency accounts.
type RegistryService interface {
	MintCollection(
		ctx context.Context,
		owner, name, symbol, uri string,
	) (*AssetInfo, error)
	MintAsset(
		ctx context.Context,
		owner, name, symbol, uri, collectionID string,
	) (*AssetInfo, error)
	OwnerOf(ctx context.Context, assetID string) (*OwnerInfo, error)
	Deposit(ctx context.Context, identity string, amount uint64) (*BalanceInfo, error)
	Balance(ctx context.Context, identity string) (*BalanceInfo, error)
}

type registryService struct {
	repoManager ports.RepoManager
}

// NewRegistryService returns a RegistryService backed by the given
// repositories.
func NewRegistryService(repoManager ports.RepoManager) RegistryService {
	return &registryService{repoManager}
}

// MintCollection issues a new collection owned by the minting party.
func (s *registryService) MintCollection(
	ctx context.Context,
	owner, name, symbol, uri string,
) (*AssetInfo, error) {
	if owner == "" {
		return nil, ErrNullIdentity
	}

	collection := domain.NewCollection(owner, name, symbol, uri)
	if err := s.mint(ctx, collection); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"asset": collection.Id,
		"owner": owner,
	}).Info("collection minted")

	return assetInfo(collection), nil
}

// MintAsset issues a new item belonging to an existing collection, owned by
// the minting party.
func (s *registryService) MintAsset(
	ctx context.Context,
	owner, name, symbol, uri, collectionID string,
) (*AssetInfo, error) {
	if owner == "" {
		return nil, ErrNullIdentity
	}
	if collectionID == "" {
		return nil, domain.ErrCollectionNotFound
	}

	asset := domain.NewAsset(owner, name, symbol, uri, collectionID)

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			collection, err := s.repoManager.AssetRepository().GetAsset(ctx, collectionID)
			if err != nil {
				return nil, domain.ErrCollectionNotFound
			}
			if !collection.IsCollection() {
				return nil, domain.ErrCollectionNotFound
			}

			if err := s.repoManager.AssetRepository().AddAsset(ctx, asset); err != nil {
				return nil, err
			}
			return nil, s.repoManager.HoldingRepository().AddHolding(
				ctx, domain.NewHolding(asset.Id, owner),
			)
		},
	); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"asset":      asset.Id,
		"collection": collectionID,
		"owner":      owner,
	}).Info("asset minted")

	return assetInfo(asset), nil
}

// OwnerOf returns the current holder of the given asset.
func (s *registryService) OwnerOf(
	ctx context.Context, assetID string,
) (*OwnerInfo, error) {
	if assetID == "" {
		return nil, ErrNullAssetId
	}

	holding, err := s.repoManager.HoldingRepository().GetHolding(ctx, assetID)
	if err != nil {
		return nil, err
	}

	return &OwnerInfo{
		AssetId:  holding.AssetId,
		Kind:     holding.Holder.Kind,
		Identity: holding.Holder.Identity,
	}, nil
}

// Deposit credits the given identity's account. It stands in for the funding
// layer so that settlement has balances to move.
func (s *registryService) Deposit(
	ctx context.Context, identity string, amount uint64,
) (*BalanceInfo, error) {
	if identity == "" {
		return nil, ErrNullIdentity
	}
	if amount == 0 {
		return nil, ErrNullAmount
	}

	var balance uint64
	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.AccountRepository().UpdateAccount(
				ctx, identity, func(a *domain.Account) (*domain.Account, error) {
					a.Credit(amount)
					balance = a.Balance
					return a, nil
				},
			)
		},
	); err != nil {
		return nil, err
	}

	return &BalanceInfo{Identity: identity, Balance: balance}, nil
}

// Balance returns the given identity's account balance.
func (s *registryService) Balance(
	ctx context.Context, identity string,
) (*BalanceInfo, error) {
	if identity == "" {
		return nil, ErrNullIdentity
	}

	account, err := s.repoManager.AccountRepository().GetOrCreateAccount(ctx, identity)
	if err != nil {
		return nil, err
	}
	return &BalanceInfo{Identity: identity, Balance: account.Balance}, nil
}

func (s *registryService) mint(ctx context.Context, asset *domain.Asset) error {
	_, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if err := s.repoManager.AssetRepository().AddAsset(ctx, asset); err != nil {
				return nil, err
			}
			return nil, s.repoManager.HoldingRepository().AddHolding(
				ctx, domain.NewHolding(asset.Id, asset.Issuer),
			)
		},
	)
	return err
}
