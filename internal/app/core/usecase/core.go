package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-bank-ledger/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層，對外提供帳戶操作
type CoreUseCase struct {
	ledger Ledger
	logger *slog.Logger
}

func NewCoreUseCase(ledger Ledger, logger *slog.Logger) *CoreUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CoreUseCase{
		ledger: ledger,
		logger: logger,
	}
}

// CreateAccount 建立帳戶
//
// 參數:
//
//	ctx: 上下文
//	name: 帳戶名稱
//	id: 帳戶 ID (唯一)
//	initialBalance: 初始餘額，不可為負數
//
// 回傳:
//
//	*domain.Account: 新帳戶的快照
//	error: domain.ErrDuplicateAccount、domain.ErrInvalidAccountID、domain.ErrAmountMustBePositive
func (c *CoreUseCase) CreateAccount(ctx context.Context, name, id string, initialBalance decimal.Decimal) (*domain.Account, error) {
	// 重複 ID 優先於金額檢查
	_, err := c.ledger.GetAccountBalance(ctx, id)
	switch {
	case err == nil:
		return nil, c.rejectCreate(ctx, id, domain.ErrDuplicateAccount)
	case !errors.Is(err, domain.ErrAccountNotFound):
		return nil, c.rejectCreate(ctx, id, err)
	}

	account, err := domain.NewAccount(name, id, initialBalance)
	if err != nil {
		return nil, c.rejectCreate(ctx, id, err)
	}
	if err := c.ledger.CreateAccount(ctx, account); err != nil {
		return nil, c.rejectCreate(ctx, id, err)
	}
	c.logger.DebugContext(ctx, "account created", "account_id", id, "balance", initialBalance.String())
	snapshot := *account
	return &snapshot, nil
}

func (c *CoreUseCase) rejectCreate(ctx context.Context, id string, err error) error {
	c.logger.InfoContext(ctx, "create account rejected", "account_id", id, "error", err)
	return fmt.Errorf("create account %q: %w", id, err)
}

// Deposit 存款
func (c *CoreUseCase) Deposit(ctx context.Context, id string, amount decimal.Decimal) (*domain.Transaction, error) {
	return c.post(ctx, domain.NewTransaction(domain.TransactionTypeDeposit, "", id, amount))
}

// Withdraw 提款，餘額不足時回傳 domain.ErrInsufficientFunds
func (c *CoreUseCase) Withdraw(ctx context.Context, id string, amount decimal.Decimal) (*domain.Transaction, error) {
	return c.post(ctx, domain.NewTransaction(domain.TransactionTypeWithdraw, id, "", amount))
}

// Transfer 轉帳，任一帳戶不存在或餘額不足時兩邊都不變更
func (c *CoreUseCase) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (*domain.Transaction, error) {
	return c.post(ctx, domain.NewTransaction(domain.TransactionTypeTransfer, fromID, toID, amount))
}

// GetBalance 取得帳戶餘額
func (c *CoreUseCase) GetBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	balance, err := c.ledger.GetAccountBalance(ctx, id)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance %q: %w", id, err)
	}
	return balance, nil
}

// Accounts 回傳依 ID 排序的帳戶快照
func (c *CoreUseCase) Accounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := c.ledger.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (c *CoreUseCase) post(ctx context.Context, tran *domain.Transaction) (*domain.Transaction, error) {
	log := c.logger.With(
		"tx_id", tran.TransactionID.String(),
		"type", tran.Type.String(),
		"from", tran.From,
		"to", tran.To,
		"amount", tran.Amount.String(),
	)
	if err := c.ledger.PostTransaction(ctx, tran); err != nil {
		if isLedgerError(err) {
			log.InfoContext(ctx, "transaction rejected", "error", err)
		} else {
			log.ErrorContext(ctx, "transaction failed", "error", err)
		}
		return nil, fmt.Errorf("%s: %w", tran.Type, err)
	}
	log.DebugContext(ctx, "transaction posted")
	return tran, nil
}

// isLedgerError 判斷是否為可預期的業務錯誤
func isLedgerError(err error) bool {
	return errors.Is(err, domain.ErrAccountNotFound) ||
		errors.Is(err, domain.ErrInsufficientFunds) ||
		errors.Is(err, domain.ErrAmountMustBePositive) ||
		errors.Is(err, domain.ErrDuplicateAccount)
}
