package domain

// Account holds a party's currency balance, expressed as an integer amount
// of the smallest currency unit.
type Account struct {
	Identity string
	Balance  uint64
}

// NewAccount returns an empty account for the given identity.
func NewAccount(identity string) *Account {
	return &Account{Identity: identity}
}

// Credit adds the given amount to the account balance.
func (a *Account) Credit(amount uint64) {
	a.Balance += amount
}

// Debit subtracts the given amount from the account balance, failing with
// ErrInsufficientBalance if the account does not cover it.
func (a *Account) Debit(amount uint64) error {
	if a.Balance < amount {
		return ErrInsufficientBalance
	}
	a.Balance -= amount
	return nil
}
