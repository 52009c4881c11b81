package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
)

// Ledger 是帳務系統的介面
type Ledger interface {
	// CreateAccount 新增帳戶，ID 已存在時回傳 domain.ErrDuplicateAccount
	CreateAccount(ctx context.Context, account *domain.Account) error
	// 不分 Deposit/Withdraw/Transfer，直接看 tran.Type 決定
	PostTransaction(ctx context.Context, tran *domain.Transaction) error
	// GetAccountBalance 取得帳戶餘額
	GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	// ListAccounts 回傳所有帳戶的快照
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
