package domain

import "github.com/shopspring/decimal"

// Account 帳戶，由 Ledger 獨佔持有
type Account struct {
	ID      string
	Name    string
	Balance decimal.Decimal
}

// NewAccount 建立帳戶，初始餘額不可為負數
func NewAccount(name, id string, balance decimal.Decimal) (*Account, error) {
	if id == "" {
		return nil, ErrInvalidAccountID
	}
	if balance.IsNegative() {
		return nil, ErrAmountMustBePositive
	}
	return &Account{
		ID:      id,
		Name:    name,
		Balance: balance,
	}, nil
}

// Deposit 存款
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountMustBePositive
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw 提款，餘額不足時不變更
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrAmountMustBePositive
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}
