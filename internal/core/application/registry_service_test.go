package application_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/auction-network/auctiond/internal/core/application"
	"github.com/auction-network/auctiond/internal/core/domain"
	"github.com/auction-network/auctiond/internal/infrastructure/storage/db/inmemory"
)

func TestMintCollectionAndAsset(t *testing.T) {
	t.Parallel()

	registrySvc := application.NewRegistryService(inmemory.NewRepoManager())

	collection, err := registrySvc.MintCollection(ctx, seller, "Collection1", "CXYZ", "collectionxyz")
	require.NoError(t, err)
	require.NotEmpty(t, collection.Id)
	require.Empty(t, collection.CollectionId)

	asset, err := registrySvc.MintAsset(ctx, seller, "XYZ", "ABC", "abcxyz", collection.Id)
	require.NoError(t, err)
	require.Equal(t, collection.Id, asset.CollectionId)

	// minting credits the owner's custody slot
	ownerInfo, err := registrySvc.OwnerOf(ctx, asset.Id)
	require.NoError(t, err)
	require.Equal(t, domain.HolderSeller, ownerInfo.Kind)
	require.Equal(t, seller, ownerInfo.Identity)
}

func TestFailingMintAsset(t *testing.T) {
	t.Parallel()

	registrySvc := application.NewRegistryService(inmemory.NewRepoManager())

	_, err := registrySvc.MintAsset(ctx, seller, "XYZ", "ABC", "abcxyz", "unknown")
	require.ErrorIs(t, err, domain.ErrCollectionNotFound)

	// an item cannot act as a collection
	collection, err := registrySvc.MintCollection(ctx, seller, "Collection1", "CXYZ", "collectionxyz")
	require.NoError(t, err)
	item, err := registrySvc.MintAsset(ctx, seller, "XYZ", "ABC", "abcxyz", collection.Id)
	require.NoError(t, err)

	_, err = registrySvc.MintAsset(ctx, seller, "ZZZ", "ZZZ", "zzz", item.Id)
	require.ErrorIs(t, err, domain.ErrCollectionNotFound)
}

func TestDepositAndBalance(t *testing.T) {
	t.Parallel()

	registrySvc := application.NewRegistryService(inmemory.NewRepoManager())

	balance, err := registrySvc.Balance(ctx, bidder1)
	require.NoError(t, err)
	require.Zero(t, balance.Balance)

	deposited, err := registrySvc.Deposit(ctx, bidder1, 1000)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), deposited.Balance)

	deposited, err = registrySvc.Deposit(ctx, bidder1, 500)
	require.NoError(t, err)
	require.Equal(t, uint64(1500), deposited.Balance)

	_, err = registrySvc.Deposit(ctx, bidder1, 0)
	require.ErrorIs(t, err, application.ErrNullAmount)
}

func TestOwnerOfUnknownAsset(t *testing.T) {
	t.Parallel()

	registrySvc := application.NewRegistryService(inmemory.NewRepoManager())

	_, err := registrySvc.OwnerOf(ctx, "unknown")
	require.ErrorIs(t, err, domain.ErrAssetNotFound)
}
