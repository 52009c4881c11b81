package domain

import "errors"

var (
	// ErrAmountMustBePositive 金額不可為負數 (0 允許)
	ErrAmountMustBePositive = errors.New("amount must not be negative")

	// ErrInvalidAmount 金額格式錯誤
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount 帳戶已存在
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidAccountID 帳戶 ID 不可為空
	ErrInvalidAccountID = errors.New("account id must not be empty")

	// ErrUnknownTransactionType 未知的交易類型
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)
