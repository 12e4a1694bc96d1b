package application

import (
	"context"

	"github.com/auction-network/auctiond/internal/core/domain"
	"github.com/auction-network/auctiond/internal/core/ports"
)

// Move is one custody or currency step of a settlement sequence.
type Move interface {
	isMove()
}

// AssetMove moves an asset between two holders of the custody ledger.
type AssetMove struct {
	AssetId string
	From    domain.Holder
	To      domain.Holder
}

func (AssetMove) isMove() {}

// CurrencyMove moves an amount of the smallest currency unit between two
// accounts.
type CurrencyMove struct {
	From   string
	To     string
	Amount uint64
}

func (CurrencyMove) isMove() {}

// TransferExecutor applies a sequence of custody and currency moves against
// the repositories. Execute must be invoked within a RunTransaction handler:
// a failure at any step makes the enclosing transaction discard, so no
// partial move is ever observably applied.
type TransferExecutor interface {
	Execute(ctx context.Context, moves []Move) error
}

type transferExecutor struct {
	repoManager ports.RepoManager
}

// NewTransferExecutor returns a TransferExecutor backed by the given
// repositories.
func NewTransferExecutor(repoManager ports.RepoManager) TransferExecutor {
	return &transferExecutor{repoManager}
}

func (x *transferExecutor) Execute(ctx context.Context, moves []Move) error {
	for _, m := range moves {
		switch move := m.(type) {
		case AssetMove:
			if err := x.moveAsset(ctx, move); err != nil {
				return err
			}
		case CurrencyMove:
			if err := x.moveCurrency(ctx, move); err != nil {
				return err
			}
		}
	}
	return nil
}

func (x *transferExecutor) moveAsset(ctx context.Context, move AssetMove) error {
	return x.repoManager.HoldingRepository().UpdateHolding(
		ctx, move.AssetId, func(h *domain.Holding) (*domain.Holding, error) {
			if err := h.Transfer(move.From, move.To); err != nil {
				return nil, err
			}
			return h, nil
		},
	)
}

func (x *transferExecutor) moveCurrency(ctx context.Context, move CurrencyMove) error {
	accountRepository := x.repoManager.AccountRepository()

	if err := accountRepository.UpdateAccount(
		ctx, move.From, func(a *domain.Account) (*domain.Account, error) {
			if err := a.Debit(move.Amount); err != nil {
				return nil, err
			}
			return a, nil
		},
	); err != nil {
		return err
	}

	return accountRepository.UpdateAccount(
		ctx, move.To, func(a *domain.Account) (*domain.Account, error) {
			a.Credit(move.Amount)
			return a, nil
		},
	)
}
